package slope

import (
	"fmt"

	sdcerrors "github.com/Swissguarde/dimex-sdc/internal/errors"
	"github.com/Swissguarde/dimex-sdc/internal/structure"
)

// BuildBeam builds and assembles the slope-deflection model of a continuous beam.
//
// Interior pin supports contribute one rotation unknown and one joint
// equilibrium equation each; clamped supports contribute neither. A released
// terminal support either keeps its rotation paired with a moment = 0
// boundary equation (ZeroMoment) or is condensed out (Modified).
func BuildBeam(b structure.Beam, scheme Scheme) (*Model, error) {
	if err := b.Validate(); err != nil {
		return nil, err
	}
	n := len(b.Spans)
	ref := b.ReferenceRigidity
	if ref == 0 {
		ref = b.Spans[0].Rigidity
	}

	// Support restraints and rotation unknowns.
	restraint := make([]structure.Restraint, n+1)
	restraint[0] = b.Spans[0].Start
	for i := 1; i <= n; i++ {
		restraint[i] = b.Spans[i-1].End
	}
	terminal := func(i int) bool { return i == 0 || i == n }

	theta := make([]Symbol, n+1)
	var unknowns []Symbol
	for i, r := range restraint {
		switch {
		case !r.Released():
			// clamped, θ = 0
		case terminal(i) && scheme == Modified:
			// condensed out
		default:
			theta[i] = Theta(structure.JointLabel(i))
			unknowns = append(unknowns, theta[i])
		}
	}

	model := &Model{Reference: ref, Scheme: scheme}
	starts := make([]EndEquation, n)
	ends := make([]EndEquation, n)
	for i, span := range b.Spans {
		mt := memberTerms{
			member: span,
			start:  theta[i],
			end:    theta[i+1],
			psi:    (b.Settlement(i+1) - b.Settlement(i)) / span.Length,
		}
		if scheme == Modified {
			mt.release.Start = i == 0 && restraint[0].Released()
			mt.release.End = i == n-1 && restraint[n].Released()
		}
		s, e, moments := buildMember(mt, ref)
		starts[i], ends[i] = s, e
		model.FixedEnd = append(model.FixedEnd, moments)
		model.Ends = append(model.Ends, s, e)
	}

	var equations []Equation
	for i := range restraint {
		if theta[i] == "" {
			continue
		}
		joint := structure.JointLabel(i)
		switch {
		case i == 0:
			equations = append(equations, Equation{
				Kind:  Boundary,
				Label: fmt.Sprintf("M%s = 0", starts[0].Label),
				Expr:  starts[0].Expr,
			})
		case i == n:
			equations = append(equations, Equation{
				Kind:  Boundary,
				Label: fmt.Sprintf("M%s = 0", ends[n-1].Label),
				Expr:  ends[n-1].Expr,
			})
		default:
			equations = append(equations, Equation{
				Kind:  JointEquilibrium,
				Label: fmt.Sprintf("joint %s", joint),
				Expr:  ends[i-1].Expr.Add(starts[i].Expr),
			})
		}
	}

	model.System = System{Unknowns: unknowns, Equations: equations}
	if len(unknowns) != len(equations) {
		return nil, sdcerrors.Newf(sdcerrors.CodeMalformedSystem,
			"beam system has %d equations for %d unknowns", len(equations), len(unknowns))
	}
	return model, nil
}
