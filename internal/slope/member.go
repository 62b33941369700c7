package slope

import (
	"github.com/Swissguarde/dimex-sdc/internal/fem"
	"github.com/Swissguarde/dimex-sdc/internal/structure"
)

// memberTerms describes how one member is tied to the unknowns.
type memberTerms struct {
	member structure.Member

	// Rotation unknowns of the start and end joints; empty when the joint is
	// clamped or the end is condensed out.
	start, end Symbol

	// Translation unknown between the member ends, perpendicular to its axis.
	chord Symbol

	// Known chord rotation, clockwise-positive (settlement difference / L).
	psi float64

	// Ends condensed out with the modified equation.
	release fem.Release
}

// buildMember returns the two end equations and the fixed-end moments used.
//
//	M_ij = (2EI/L)(2θi + θj − 3ψ) + FEM_ij
//
// With rigidity-scaled unknowns u = EI_ref·θ the coefficients become
// 4k/L, 2k/L and −6k/L² where k = EI/EI_ref. A condensed far end turns the
// near end into (3EI/L)(θi − ψ) + FEM'_ij.
func buildMember(mt memberTerms, ref float64) (start, end EndEquation, moments fem.Moments) {
	m := mt.member
	l := m.Length
	k := m.Rigidity / ref
	moments = fem.ForMember(m, mt.release)

	start = EndEquation{Label: m.StartLabel(), Member: m.Label(), End: StartEnd}
	end = EndEquation{Label: m.EndLabel(), Member: m.Label(), End: FarEnd}

	switch {
	case mt.release.Start && mt.release.End:
		start.Released, end.Released = true, true
		start.Expr, end.Expr = Const(0), Const(0)
	case mt.release.End:
		end.Released, end.Expr = true, Const(0)
		start.Expr = condensed(mt.start, mt.chord, k, l, m.Rigidity, mt.psi, moments.Start)
	case mt.release.Start:
		start.Released, start.Expr = true, Const(0)
		end.Expr = condensed(mt.end, mt.chord, k, l, m.Rigidity, mt.psi, moments.End)
	default:
		start.Expr = full(mt.start, mt.end, mt.chord, k, l, m.Rigidity, mt.psi, moments.Start)
		end.Expr = full(mt.end, mt.start, mt.chord, k, l, m.Rigidity, mt.psi, moments.End)
	}
	return start, end, moments
}

func full(near, far, chord Symbol, k, l, ei, psi, fixedEnd float64) Expr {
	e := Const(fixedEnd - 6*ei*psi/l)
	if near != "" {
		e = e.With(near, 4*k/l)
	}
	if far != "" {
		e = e.With(far, 2*k/l)
	}
	if chord != "" {
		e = e.With(chord, -6*k/(l*l))
	}
	return e
}

func condensed(near, chord Symbol, k, l, ei, psi, fixedEnd float64) Expr {
	e := Const(fixedEnd - 3*ei*psi/l)
	if near != "" {
		e = e.With(near, 3*k/l)
	}
	if chord != "" {
		e = e.With(chord, -3*k/(l*l))
	}
	return e
}
