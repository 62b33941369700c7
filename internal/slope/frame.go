package slope

import (
	sdcerrors "github.com/Swissguarde/dimex-sdc/internal/errors"
	"github.com/Swissguarde/dimex-sdc/internal/structure"
)

// BaseShear returns the horizontal force the base support exerts on a column
// (positive to the right) in terms of the column end moments:
//
//	H = (M_base + M_top)/h − R0_base
//
// where R0_base is the base reaction of the column's own lateral load on a
// simply supported column.
func BaseShear(col structure.Member, base, top Expr) Expr {
	r0, _ := col.Load.SimpleReactions(col.Length)
	return base.Add(top).Scale(1 / col.Length).Plus(-r0)
}

// BuildFrame builds and assembles the slope-deflection model of a portal frame.
//
// Unknowns are θB and θC, the sway δ of an unbraced frame, θA/θD of released
// bases under ZeroMoment, and a drift δAB/δDC for every roller base. The sway
// pairs with the story shear equation ΣH + ΣP = 0; each drift pairs with a
// zero base shear equation for its column.
func BuildFrame(f structure.Frame, scheme Scheme) (*Model, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}
	ref := f.ReferenceRigidity
	if ref == 0 {
		ref = f.Beam.Rigidity
	}

	var unknowns []Symbol
	add := func(s Symbol) Symbol {
		unknowns = append(unknowns, s)
		return s
	}

	baseTheta := func(col structure.Member) Symbol {
		if col.Start.Released() && scheme == ZeroMoment {
			return add(Theta(col.From))
		}
		return ""
	}
	thetaA := baseTheta(f.Left)
	thetaB := add(Theta("B"))
	thetaC := add(Theta("C"))
	thetaD := baseTheta(f.Right)

	var sway Symbol
	if !f.Braced {
		sway = add(SwaySymbol)
	}
	chord := func(col structure.Member) Symbol {
		if col.Start == structure.Roller {
			return add(Drift(col.Label()))
		}
		return sway
	}
	chordAB := chord(f.Left)
	chordDC := chord(f.Right)

	release := func(col structure.Member) bool {
		return scheme == Modified && col.Start.Released()
	}

	model := &Model{Reference: ref, Scheme: scheme}
	terms := []memberTerms{
		{member: f.Left, start: thetaA, end: thetaB, chord: chordAB},
		{member: f.Beam, start: thetaB, end: thetaC},
		{member: f.Right, start: thetaD, end: thetaC, chord: chordDC},
	}
	terms[0].release.Start = release(f.Left)
	terms[2].release.Start = release(f.Right)

	var ends [3][2]EndEquation
	for i, mt := range terms {
		s, e, moments := buildMember(mt, ref)
		ends[i] = [2]EndEquation{s, e}
		model.FixedEnd = append(model.FixedEnd, moments)
		model.Ends = append(model.Ends, s, e)
	}
	ab, ba := ends[0][0], ends[0][1]
	bc, cb := ends[1][0], ends[1][1]
	dc, cd := ends[2][0], ends[2][1]

	var equations []Equation
	if thetaA != "" {
		equations = append(equations, Equation{Kind: Boundary, Label: "MAB = 0", Expr: ab.Expr})
	}
	equations = append(equations,
		Equation{Kind: JointEquilibrium, Label: "joint B", Expr: ba.Expr.Add(bc.Expr)},
		Equation{Kind: JointEquilibrium, Label: "joint C", Expr: cb.Expr.Add(cd.Expr)},
	)
	if thetaD != "" {
		equations = append(equations, Equation{Kind: Boundary, Label: "MDC = 0", Expr: dc.Expr})
	}

	hA := BaseShear(f.Left, ab.Expr, ba.Expr)
	hD := BaseShear(f.Right, dc.Expr, cd.Expr)
	if sway != "" {
		story := Const(f.LateralLoad +
			f.Left.Load.Total(f.Left.Length) +
			f.Right.Load.Total(f.Right.Length))
		if f.Left.Start != structure.Roller {
			story = story.Add(hA)
		}
		if f.Right.Start != structure.Roller {
			story = story.Add(hD)
		}
		equations = append(equations, Equation{Kind: ShearEquilibrium, Label: "story shear", Expr: story})
	}
	if f.Left.Start == structure.Roller {
		equations = append(equations, Equation{Kind: ShearEquilibrium, Label: "HA = 0", Expr: hA})
	}
	if f.Right.Start == structure.Roller {
		equations = append(equations, Equation{Kind: ShearEquilibrium, Label: "HD = 0", Expr: hD})
	}

	model.System = System{Unknowns: unknowns, Equations: equations}
	if len(unknowns) != len(equations) {
		return nil, sdcerrors.Newf(sdcerrors.CodeMalformedSystem,
			"frame system has %d equations for %d unknowns", len(equations), len(unknowns))
	}
	return model, nil
}
