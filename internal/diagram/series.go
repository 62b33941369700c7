// Package diagram renders shear force and bending moment diagrams, in the
// terminal with asciigraph or to PNG, SVG and PDF files with gonum/plot.
package diagram

import (
	"github.com/Swissguarde/dimex-sdc/internal/bmsf"
)

// Quantity selects the plotted diagram.
type Quantity int

const (
	Shear Quantity = iota
	Moment
)

func (q Quantity) String() string {
	if q == Moment {
		return "Bending moment (kN·m)"
	}
	return "Shear force (kN)"
}

// Abbrev returns SFD or BMD.
func (q Quantity) Abbrev() string {
	if q == Moment {
		return "BMD"
	}
	return "SFD"
}

func (q Quantity) of(s bmsf.Sample) float64 {
	if q == Moment {
		return s.Moment
	}
	return s.Shear
}

func (q Quantity) ofPoint(p bmsf.CriticalPoint) float64 {
	if q == Moment {
		return p.Moment
	}
	return p.Shear
}

// Run is a chain of members drawn end to end on one x axis, such as the spans
// of a continuous beam.
type Run struct {
	Title    string
	Diagrams []bmsf.Diagram
}

// Length returns the total length of the run.
func (r Run) Length() float64 {
	l := 0.0
	for _, d := range r.Diagrams {
		l += d.Length
	}
	return l
}

// Trace is a sampled run in global x.
type Trace struct {
	X, Y []float64

	// Critical points in global x.
	CriticalX, CriticalY []float64
}

// Trace samples every member of r with n intervals and offsets each member
// by the lengths before it.
func (r Run) Trace(q Quantity, n int) Trace {
	var t Trace
	offset := 0.0
	for _, d := range r.Diagrams {
		for _, s := range d.Sample(n) {
			t.X = append(t.X, offset+s.X)
			t.Y = append(t.Y, q.of(s))
		}
		for _, p := range d.Points {
			t.CriticalX = append(t.CriticalX, offset+p.X)
			t.CriticalY = append(t.CriticalY, q.ofPoint(p))
		}
		offset += d.Length
	}
	return t
}

// At evaluates the run at global x. Shear takes the right-hand limit except at
// the far end of the run.
func (r Run) At(q Quantity, x float64) float64 {
	offset := 0.0
	for i, d := range r.Diagrams {
		last := i == len(r.Diagrams)-1
		if x < offset+d.Length || last {
			local := x - offset
			if q == Moment {
				return d.Moment(local)
			}
			return d.Shear(local)
		}
		offset += d.Length
	}
	return 0
}
