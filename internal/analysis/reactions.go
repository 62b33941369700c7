package analysis

import (
	"github.com/Swissguarde/dimex-sdc/internal/bmsf"
	"github.com/Swissguarde/dimex-sdc/internal/structure"
)

// Direction of a reaction component.
type Direction int

const (
	Vertical   Direction = iota // positive upward
	Horizontal                  // positive to the right
)

func (d Direction) String() string {
	if d == Horizontal {
		return "horizontal"
	}
	return "vertical"
}

// Reaction is one support reaction component (kN).
type Reaction struct {
	Label     string // "RA", "VA", "HA", "Hbrace"
	Joint     string
	Direction Direction
	Value     float64
}

// ReactionTable lists reactions in support order.
type ReactionTable []Reaction

// Get returns the reaction with the given label. Unknown labels give zero.
func (t ReactionTable) Get(label string) float64 {
	for _, r := range t {
		if r.Label == label {
			return r.Value
		}
	}
	return 0
}

// Sum adds every reaction acting in d.
func (t ReactionTable) Sum(d Direction) float64 {
	s := 0.0
	for _, r := range t {
		if r.Direction == d {
			s += r.Value
		}
	}
	return s
}

// MemberEnds returns the transverse end reactions of a member from its end
// moments, in member-local coordinates:
//
//	R_start = R0_start − (M_start + M_end)/L
//	R_end   = R0_end   + (M_start + M_end)/L
func MemberEnds(m structure.Member, start, end float64) (rs, re float64) {
	r0s, r0e := m.Load.SimpleReactions(m.Length)
	c := (start + end) / m.Length
	return r0s - c, r0e + c
}

func memberDiagram(m structure.Member, moments MomentTable) bmsf.Diagram {
	ms, me := moments.Get(m.StartLabel()), moments.Get(m.EndLabel())
	rs, _ := MemberEnds(m, ms, me)
	return bmsf.New(m.Label(), m.Length, m.Load, rs, ms)
}

func beamReactions(b structure.Beam, moments MomentTable) (ReactionTable, []bmsf.Diagram) {
	n := len(b.Spans)
	support := make([]float64, n+1)
	diagrams := make([]bmsf.Diagram, 0, n)
	for i, span := range b.Spans {
		rs, re := MemberEnds(span, moments.Get(span.StartLabel()), moments.Get(span.EndLabel()))
		support[i] += rs
		support[i+1] += re
		diagrams = append(diagrams, memberDiagram(span, moments))
	}

	table := make(ReactionTable, 0, n+1)
	for i, v := range support {
		joint := structure.JointLabel(i)
		table = append(table, Reaction{Label: "R" + joint, Joint: joint, Direction: Vertical, Value: v})
	}
	return table, diagrams
}

// frameReactions derives the base reactions of a portal frame.
//
// Column loads act to the right, and a column's local start shear points to
// the left, so the base horizontal reaction is the negated start shear. The
// vertical reactions are the beam end shears carried down the columns.
func frameReactions(f structure.Frame, moments MomentTable) (ReactionTable, []bmsf.Diagram) {
	base := func(col structure.Member) float64 {
		rs, _ := MemberEnds(col, moments.Get(col.StartLabel()), moments.Get(col.EndLabel()))
		return -rs
	}
	ha, hd := base(f.Left), base(f.Right)
	va, vd := MemberEnds(f.Beam, moments.Get(f.Beam.StartLabel()), moments.Get(f.Beam.EndLabel()))

	table := ReactionTable{
		{Label: "HA", Joint: "A", Direction: Horizontal, Value: ha},
		{Label: "VA", Joint: "A", Direction: Vertical, Value: va},
		{Label: "HD", Joint: "D", Direction: Horizontal, Value: hd},
		{Label: "VD", Joint: "D", Direction: Vertical, Value: vd},
	}
	if f.Braced {
		applied := f.LateralLoad + f.Left.Load.Total(f.Left.Length) + f.Right.Load.Total(f.Right.Length)
		table = append(table, Reaction{
			Label:     "Hbrace",
			Joint:     "B",
			Direction: Horizontal,
			Value:     -(ha + hd + applied),
		})
	}

	diagrams := make([]bmsf.Diagram, 0, 3)
	for _, m := range f.Members() {
		diagrams = append(diagrams, memberDiagram(m, moments))
	}
	return table, diagrams
}
