// Package fem computes fixed-end moments of prismatic members.
//
// Moments are clockwise-positive on the member end: a downward load on a
// fixed-fixed span gives a negative start moment and a positive end moment.
package fem

import (
	"github.com/Swissguarde/dimex-sdc/internal/structure"
)

// Moments holds the fixed-end moments of one member (kN·m).
type Moments struct {
	Label string
	Start float64
	End   float64
}

// Release marks member ends that carry no moment.
type Release struct {
	Start bool
	End   bool
}

// FixedFixed returns the fixed-end moments with both ends clamped.
func FixedFixed(length float64, load structure.Load) (start, end float64) {
	switch load.Kind {
	case structure.UniformLoad:
		// FEM = wL²/12
		m := load.Magnitude * length * length / 12
		return -m, m
	case structure.PointLoad:
		// FEM_start = Pab²/L², FEM_end = Pa²b/L²
		p, a, b := load.Magnitude, load.A, load.B
		l2 := length * length
		return -p * a * b * b / l2, p * a * a * b / l2
	}
	return 0, 0
}

// Calculate returns the fixed-end moments for the given end releases.
//
// With one end released the restrained end takes its fixed-fixed value minus
// half of the value carried over from the released end, which is 3/2 of the
// fixed-fixed value for a UDL. Released ends are zero.
func Calculate(length float64, load structure.Load, rel Release) (start, end float64) {
	fs, fe := FixedFixed(length, load)
	switch {
	case rel.Start && rel.End:
		return 0, 0
	case rel.End:
		return fs - fe/2, 0
	case rel.Start:
		return 0, fe - fs/2
	}
	return fs, fe
}

// ForMember computes the labelled fixed-end moments of a member.
func ForMember(m structure.Member, rel Release) Moments {
	s, e := Calculate(m.Length, m.Load, rel)
	return Moments{Label: m.Label(), Start: s, End: e}
}
