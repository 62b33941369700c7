package analysis

import (
	"math"

	"github.com/Swissguarde/dimex-sdc/internal/slope"
)

// EndMoment is the final moment at one member end (kN·m, clockwise-positive).
type EndMoment struct {
	Label    string // e.g. "BA"
	Member   string // e.g. "AB"
	Value    float64
	FixedEnd float64
	Released bool
}

// MomentTable holds the final end moments in member order, start end first.
type MomentTable []EndMoment

// Get returns the moment with the given label. Unknown labels give zero.
func (t MomentTable) Get(label string) float64 {
	for _, m := range t {
		if m.Label == label {
			return m.Value
		}
	}
	return 0
}

// Lookup is Get with a presence flag.
func (t MomentTable) Lookup(label string) (EndMoment, bool) {
	for _, m := range t {
		if m.Label == label {
			return m, true
		}
	}
	return EndMoment{}, false
}

// Evaluate substitutes solved values into every end equation of the model.
func Evaluate(model *slope.Model, vals slope.Values) MomentTable {
	fixed := make(map[string]float64, 2*len(model.FixedEnd))
	for _, f := range model.FixedEnd {
		fixed[f.Label+"/start"] = f.Start
		fixed[f.Label+"/end"] = f.End
	}

	table := make(MomentTable, 0, len(model.Ends))
	for _, e := range model.Ends {
		key := e.Member + "/start"
		if e.End == slope.FarEnd {
			key = e.Member + "/end"
		}
		table = append(table, EndMoment{
			Label:    e.Label,
			Member:   e.Member,
			Value:    e.Expr.Eval(vals),
			FixedEnd: fixed[key],
			Released: e.Released,
		})
	}
	return table
}

// Check is the evaluated residual of one assembled equation.
type Check struct {
	Label    string
	Residual float64 // absolute, in the equation's units
	Relative float64 // Residual over the largest term
}

// selfCheck evaluates every equation with the solved values and returns the
// checks and the worst relative residual.
func selfCheck(sys slope.System, vals slope.Values) ([]Check, float64) {
	checks := make([]Check, 0, len(sys.Equations))
	worst := 0.0
	for _, eq := range sys.Equations {
		r := eq.Expr.Eval(vals)
		scale := eq.Expr.Magnitude(vals)
		rel := 0.0
		if scale > 0 {
			rel = math.Abs(r) / scale
		}
		if math.IsNaN(r) {
			rel = math.Inf(1)
		}
		worst = math.Max(worst, rel)
		checks = append(checks, Check{Label: eq.Label, Residual: r, Relative: rel})
	}
	return checks, worst
}
