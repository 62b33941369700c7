// Package slope builds slope-deflection equations for continuous beams and
// portal frames and assembles them into square linear systems.
package slope

import (
	"fmt"
	"math"
	"strings"
)

// Symbol names an unknown: a joint rotation, the story sway or a column drift.
type Symbol string

// SwaySymbol is the lateral translation of the frame's beam level.
const SwaySymbol Symbol = "δ"

// Theta returns the rotation unknown of a joint.
func Theta(joint string) Symbol {
	return Symbol("θ" + joint)
}

// Drift returns the relative end translation unknown of a column whose base slides.
func Drift(member string) Symbol {
	return Symbol("δ" + member)
}

// Values maps unknowns to numbers.
type Values map[Symbol]float64

// Term is one coefficient of an expression.
type Term struct {
	Symbol Symbol
	Coeff  float64
}

// Expr is a linear expression Σ coeff·symbol + constant.
// Terms keep the order in which symbols were first added.
type Expr struct {
	Terms    []Term
	Constant float64
}

// Const returns an expression with no unknowns.
func Const(c float64) Expr {
	return Expr{Constant: c}
}

// With returns a copy of e with c·sym added.
func (e Expr) With(sym Symbol, c float64) Expr {
	out := e.clone()
	for i := range out.Terms {
		if out.Terms[i].Symbol == sym {
			out.Terms[i].Coeff += c
			return out
		}
	}
	out.Terms = append(out.Terms, Term{Symbol: sym, Coeff: c})
	return out
}

// Plus returns a copy of e with c added to the constant.
func (e Expr) Plus(c float64) Expr {
	out := e.clone()
	out.Constant += c
	return out
}

// Add returns e + o.
func (e Expr) Add(o Expr) Expr {
	out := e.clone()
	for _, t := range o.Terms {
		out = out.With(t.Symbol, t.Coeff)
	}
	out.Constant += o.Constant
	return out
}

// Scale returns k·e.
func (e Expr) Scale(k float64) Expr {
	out := e.clone()
	for i := range out.Terms {
		out.Terms[i].Coeff *= k
	}
	out.Constant *= k
	return out
}

// Coeff returns the coefficient of sym, zero when absent.
func (e Expr) Coeff(sym Symbol) float64 {
	var c float64
	for _, t := range e.Terms {
		if t.Symbol == sym {
			c += t.Coeff
		}
	}
	return c
}

// IsConstant reports whether every coefficient is zero.
func (e Expr) IsConstant() bool {
	for _, t := range e.Terms {
		if t.Coeff != 0 {
			return false
		}
	}
	return true
}

// Eval substitutes vals into e. Missing symbols count as zero.
func (e Expr) Eval(vals Values) float64 {
	v := e.Constant
	for _, t := range e.Terms {
		v += t.Coeff * vals[t.Symbol]
	}
	return v
}

// Magnitude returns the largest absolute term of e under vals.
// Residuals are judged relative to it.
func (e Expr) Magnitude(vals Values) float64 {
	m := math.Abs(e.Constant)
	for _, t := range e.Terms {
		m = math.Max(m, math.Abs(t.Coeff*vals[t.Symbol]))
	}
	return m
}

func (e Expr) clone() Expr {
	out := Expr{Constant: e.Constant}
	if len(e.Terms) > 0 {
		out.Terms = make([]Term, len(e.Terms))
		copy(out.Terms, e.Terms)
	}
	return out
}

// String renders e as "1.6000θB + 0.4000θC - 20.8333".
func (e Expr) String() string {
	var sb strings.Builder
	for _, t := range e.Terms {
		if t.Coeff == 0 {
			continue
		}
		writeSigned(&sb, t.Coeff, string(t.Symbol))
	}
	if e.Constant != 0 || sb.Len() == 0 {
		writeSigned(&sb, e.Constant, "")
	}
	return sb.String()
}

func writeSigned(sb *strings.Builder, v float64, sym string) {
	switch {
	case sb.Len() == 0 && v < 0:
		sb.WriteString("-")
	case sb.Len() > 0 && v < 0:
		sb.WriteString(" - ")
	case sb.Len() > 0:
		sb.WriteString(" + ")
	}
	fmt.Fprintf(sb, "%.4f%s", math.Abs(v), sym)
}
