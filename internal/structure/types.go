// Package structure describes the continuous beams and portal frames handed
// to the slope-deflection pipeline.
//
// Units are fixed: lengths in m, forces in kN, distributed loads in kN/m,
// moments in kN·m and flexural rigidity in kN·m².
package structure

import (
	"fmt"
	"strings"
)

// Restraint is the support condition at a member end.
// The zero value is Fixed.
type Restraint int

const (
	Fixed Restraint = iota
	Hinged
	Roller
)

// Released reports whether the restraint carries no moment.
func (r Restraint) Released() bool {
	return r == Hinged || r == Roller
}

func (r Restraint) String() string {
	switch r {
	case Fixed:
		return "fixed"
	case Hinged:
		return "hinged"
	case Roller:
		return "roller"
	}
	return fmt.Sprintf("Restraint(%d)", int(r))
}

// ParseRestraint parses "fixed", "hinged"/"pinned" or "roller".
func ParseRestraint(s string) (Restraint, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "fixed":
		return Fixed, nil
	case "hinged", "hinge", "pinned", "pin":
		return Hinged, nil
	case "roller":
		return Roller, nil
	}
	return Fixed, fmt.Errorf("unknown restraint %q", s)
}

// MarshalText implements encoding.TextMarshaler.
func (r Restraint) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (r *Restraint) UnmarshalText(text []byte) error {
	v, err := ParseRestraint(string(text))
	if err != nil {
		return err
	}
	*r = v
	return nil
}

// LoadKind selects the load variant.
type LoadKind int

const (
	NoLoad LoadKind = iota
	UniformLoad
	PointLoad
)

func (k LoadKind) String() string {
	switch k {
	case NoLoad:
		return "none"
	case UniformLoad:
		return "udl"
	case PointLoad:
		return "point"
	}
	return fmt.Sprintf("LoadKind(%d)", int(k))
}

// ParseLoadKind parses "none", "udl" or "point".
func ParseLoadKind(s string) (LoadKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none":
		return NoLoad, nil
	case "udl", "uniform":
		return UniformLoad, nil
	case "point", "pl":
		return PointLoad, nil
	}
	return NoLoad, fmt.Errorf("unknown load type %q", s)
}

// Load is the load carried by one member, transverse to its axis.
type Load struct {
	Kind      LoadKind
	Magnitude float64 // kN/m for UniformLoad, kN for PointLoad

	// Point load position; A + B equals the member length.
	A float64 // distance from the member start (m)
	B float64 // distance from the member end (m)
}

// UDL returns a uniformly distributed load of w kN/m.
func UDL(w float64) Load {
	return Load{Kind: UniformLoad, Magnitude: w}
}

// Point returns a point load of p kN at a from the start and b from the end.
func Point(p, a, b float64) Load {
	return Load{Kind: PointLoad, Magnitude: p, A: a, B: b}
}

// Total returns the resultant of the load over a member of the given length.
func (l Load) Total(length float64) float64 {
	switch l.Kind {
	case UniformLoad:
		return l.Magnitude * length
	case PointLoad:
		return l.Magnitude
	}
	return 0
}

// SimpleReactions returns the simply supported reactions at the start and end
// of a member of the given length, opposing the load.
func (l Load) SimpleReactions(length float64) (start, end float64) {
	switch l.Kind {
	case UniformLoad:
		half := l.Magnitude * length / 2
		return half, half
	case PointLoad:
		return l.Magnitude * l.B / length, l.Magnitude * l.A / length
	}
	return 0, 0
}

func (l Load) String() string {
	switch l.Kind {
	case UniformLoad:
		return fmt.Sprintf("UDL %.2f kN/m", l.Magnitude)
	case PointLoad:
		return fmt.Sprintf("P %.2f kN (a=%.2f m, b=%.2f m)", l.Magnitude, l.A, l.B)
	}
	return "none"
}

// Member is a prismatic span or column running from joint From to joint To.
type Member struct {
	From     string  // start joint label, e.g. "A"
	To       string  // end joint label, e.g. "B"
	Length   float64 // m
	Rigidity float64 // E·I (kN·m²)
	Load     Load
	Start    Restraint
	End      Restraint
}

// Label names the member, e.g. "AB".
func (m Member) Label() string {
	return m.From + m.To
}

// StartLabel names the moment at the start end, e.g. "AB".
func (m Member) StartLabel() string {
	return m.From + m.To
}

// EndLabel names the moment at the far end, e.g. "BA".
func (m Member) EndLabel() string {
	return m.To + m.From
}

// Beam is a continuous beam over len(Spans)+1 supports.
//
// The start restraint of the first span and the end restraint of the last span
// are the terminal supports. Interior supports are continuous: Hinged or Roller
// means the beam passes over a pin, Fixed means it is clamped there.
type Beam struct {
	Name  string
	Spans []Member

	// Settlements holds the downward settlement of each support (m).
	// It is either empty or has len(Spans)+1 entries.
	Settlements []float64

	// ReferenceRigidity scales the solved unknowns (EI_ref·θ).
	// Zero selects the rigidity of the first span.
	ReferenceRigidity float64
}

// SupportLabels returns A, B, C... for every support.
func (b Beam) SupportLabels() []string {
	labels := make([]string, len(b.Spans)+1)
	for i := range labels {
		labels[i] = JointLabel(i)
	}
	return labels
}

// Settlement returns the settlement of support i, or zero.
func (b Beam) Settlement(i int) float64 {
	if i < 0 || i >= len(b.Settlements) {
		return 0
	}
	return b.Settlements[i]
}

// Frame is a single-bay portal frame.
//
// Joints are A (left base), B (left top), C (right top) and D (right base).
// Both columns run base to top (AB and DC) and the beam runs B to C.
// Column loads act horizontally, positive to the right; A is measured from the base.
type Frame struct {
	Name  string
	Left  Member // AB, Start is the base restraint
	Beam  Member // BC
	Right Member // DC, Start is the base restraint

	// LateralLoad is a horizontal point load at beam level (kN, positive to the right).
	LateralLoad float64

	// Braced frames cannot sway.
	Braced bool

	// ReferenceRigidity scales the solved unknowns. Zero selects the beam rigidity.
	ReferenceRigidity float64
}

// Members returns the frame members in the order AB, BC, DC.
func (f Frame) Members() []Member {
	return []Member{f.Left, f.Beam, f.Right}
}

// JointLabel returns the letter for the i-th joint: A, B, ... Z, then J26, J27...
func JointLabel(i int) string {
	if i >= 0 && i < 26 {
		return string(rune('A' + i))
	}
	return fmt.Sprintf("J%d", i)
}

// NewBeam labels the spans AB, BC, CD... and returns the beam.
func NewBeam(name string, spans []Member, settlements []float64) Beam {
	labelled := make([]Member, len(spans))
	for i, s := range spans {
		s.From, s.To = JointLabel(i), JointLabel(i+1)
		labelled[i] = s
	}
	return Beam{Name: name, Spans: labelled, Settlements: settlements}
}

// NewFrame labels the members AB, BC and DC and returns the frame.
// The column tops and both beam ends are rigid joints.
func NewFrame(name string, left, beam, right Member) Frame {
	left.From, left.To, left.End = "A", "B", Fixed
	beam.From, beam.To, beam.Start, beam.End = "B", "C", Fixed, Fixed
	right.From, right.To, right.End = "D", "C", Fixed
	return Frame{Name: name, Left: left, Beam: beam, Right: right}
}
