// Package bmsf derives closed-form shear force and bending moment diagrams of
// members whose end moments and reactions are known.
//
// Diagrams are in member-local coordinates: x runs from the start to the end,
// shear is positive upward on the left face and bending moment is
// sagging-positive, so Moment(0) is the start end moment and Moment(L) is the
// negated far end moment (clockwise-positive end moments).
package bmsf

import (
	"fmt"
	"math"
	"sort"

	"github.com/Swissguarde/dimex-sdc/internal/structure"
)

// Kind tags a critical point.
type Kind int

const (
	Start Kind = iota
	End
	PointLoad
	ZeroShear
)

func (k Kind) String() string {
	switch k {
	case Start:
		return "start"
	case End:
		return "end"
	case PointLoad:
		return "point load"
	case ZeroShear:
		return "zero shear"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// CriticalPoint is a location where shear or moment is extreme or discontinuous.
type CriticalPoint struct {
	X      float64 // m from the member start
	Shear  float64 // kN
	Moment float64 // kN·m
	Kind   Kind
}

// Diagram is the shear force and bending moment distribution of one member.
type Diagram struct {
	Label  string
	Length float64
	Load   structure.Load

	StartShear  float64 // shear just right of x = 0, the start reaction
	StartMoment float64 // bending moment at x = 0

	// Points are ordered by X. A point load yields two points at the same X,
	// the shear just left of the load and then just right of it, with a
	// zero-shear point between them when the shear changes sign there.
	Points []CriticalPoint
}

// edgeTolerance keeps zero-shear points off the member ends, relative to L.
const edgeTolerance = 1e-9

// New builds the diagram of a member from its start shear and start moment.
func New(label string, length float64, load structure.Load, startShear, startMoment float64) Diagram {
	d := Diagram{
		Label:       label,
		Length:      length,
		Load:        load,
		StartShear:  startShear,
		StartMoment: startMoment,
	}
	d.Points = d.criticalPoints()
	return d
}

// loadUpTo returns the resultant of the load on [0, x], counting a point load
// at exactly x only when inclusive is set.
func (d Diagram) loadUpTo(x float64, inclusive bool) float64 {
	x = math.Max(0, math.Min(x, d.Length))
	switch d.Load.Kind {
	case structure.UniformLoad:
		return d.Load.Magnitude * x
	case structure.PointLoad:
		if d.Load.A < x || (inclusive && d.Load.A == x) {
			return d.Load.Magnitude
		}
	}
	return 0
}

// Shear returns the shear force at x: the right-hand limit inside the member
// and the left-hand limit at x = L.
func (d Diagram) Shear(x float64) float64 {
	if x >= d.Length {
		return d.ShearLeft(d.Length)
	}
	return d.StartShear - d.loadUpTo(x, true)
}

// ShearLeft returns the left-hand limit of the shear force at x.
func (d Diagram) ShearLeft(x float64) float64 {
	return d.StartShear - d.loadUpTo(x, false)
}

// Moment returns the bending moment at x:
//
//	M(x) = M0 + V0·x − wx²/2          (UDL)
//	M(x) = M0 + V0·x − P·⟨x − a⟩      (point load)
func (d Diagram) Moment(x float64) float64 {
	x = math.Max(0, math.Min(x, d.Length))
	m := d.StartMoment + d.StartShear*x
	switch d.Load.Kind {
	case structure.UniformLoad:
		m -= d.Load.Magnitude * x * x / 2
	case structure.PointLoad:
		if x > d.Load.A {
			m -= d.Load.Magnitude * (x - d.Load.A)
		}
	}
	return m
}

// ZeroShearX returns the location where the shear vanishes inside the member.
func (d Diagram) ZeroShearX() (float64, bool) {
	eps := edgeTolerance * d.Length
	switch d.Load.Kind {
	case structure.UniformLoad:
		if d.Load.Magnitude == 0 {
			return 0, false
		}
		x := d.StartShear / d.Load.Magnitude
		if x > eps && x < d.Length-eps {
			return x, true
		}
	case structure.PointLoad:
		// Shear is constant on each side, so it can only change sign across the load.
		a := d.Load.A
		if a > eps && a < d.Length-eps && d.ShearLeft(a)*d.Shear(a) < 0 {
			return a, true
		}
	}
	return 0, false
}

func (d Diagram) criticalPoints() []CriticalPoint {
	pts := []CriticalPoint{{X: 0, Shear: d.Shear(0), Moment: d.StartMoment, Kind: Start}}

	eps := edgeTolerance * d.Length
	zx, hasZero := d.ZeroShearX()
	if d.Load.Kind == structure.PointLoad {
		if a := d.Load.A; a > eps && a < d.Length-eps {
			m := d.Moment(a)
			pts = append(pts, CriticalPoint{X: a, Shear: d.ShearLeft(a), Moment: m, Kind: PointLoad})
			if hasZero {
				pts = append(pts, CriticalPoint{X: a, Shear: 0, Moment: m, Kind: ZeroShear})
			}
			pts = append(pts, CriticalPoint{X: a, Shear: d.Shear(a), Moment: m, Kind: PointLoad})
		}
	} else if hasZero {
		pts = append(pts, CriticalPoint{X: zx, Shear: 0, Moment: d.Moment(zx), Kind: ZeroShear})
	}
	pts = append(pts, CriticalPoint{X: d.Length, Shear: d.ShearLeft(d.Length), Moment: d.Moment(d.Length), Kind: End})

	sort.SliceStable(pts, func(i, j int) bool { return pts[i].X < pts[j].X })
	return pts
}

// MaxMoment returns the critical point with the largest absolute moment.
func (d Diagram) MaxMoment() CriticalPoint {
	best := d.Points[0]
	for _, p := range d.Points[1:] {
		if math.Abs(p.Moment) > math.Abs(best.Moment) {
			best = p
		}
	}
	return best
}

// MaxShear returns the critical point with the largest absolute shear.
func (d Diagram) MaxShear() CriticalPoint {
	best := d.Points[0]
	for _, p := range d.Points[1:] {
		if math.Abs(p.Shear) > math.Abs(best.Shear) {
			best = p
		}
	}
	return best
}

// Sample is one plotted point of a diagram.
type Sample struct {
	X, Shear, Moment float64
}

// Sample evaluates the diagram on n equal intervals merged with the critical
// points, so plotted extremes are exact.
func (d Diagram) Sample(n int) []Sample {
	if n < 1 {
		n = 1
	}
	eps := edgeTolerance * d.Length
	var inner []CriticalPoint
	for _, p := range d.Points {
		if p.Kind != Start && p.Kind != End {
			inner = append(inner, p)
		}
	}
	near := func(x float64) bool {
		for _, p := range inner {
			if math.Abs(p.X-x) <= eps {
				return true
			}
		}
		return false
	}

	out := make([]Sample, 0, n+1+len(inner))
	for i := 0; i <= n; i++ {
		x := d.Length * float64(i) / float64(n)
		if near(x) {
			continue
		}
		out = append(out, Sample{X: x, Shear: d.Shear(x), Moment: d.Moment(x)})
	}
	for _, p := range inner {
		out = append(out, Sample{X: p.X, Shear: p.Shear, Moment: p.Moment})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].X < out[j].X })
	return out
}
