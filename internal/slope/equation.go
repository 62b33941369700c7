package slope

import (
	"fmt"
	"strings"

	"github.com/Swissguarde/dimex-sdc/internal/fem"
)

// End selects a member end.
type End int

const (
	StartEnd End = iota
	FarEnd
)

// EndEquation is the slope-deflection expression of one member end moment.
type EndEquation struct {
	Label  string // moment label, e.g. "AB" for the moment at A of member AB
	Member string // member label, e.g. "AB"
	End    End
	Expr   Expr

	// Released is set when the end carries no moment and was condensed out of
	// the unknowns; Expr is then the constant zero.
	Released bool
}

// Kind distinguishes how an assembled equation was formed.
type Kind int

const (
	// JointEquilibrium sums the member end moments meeting at a joint.
	JointEquilibrium Kind = iota
	// ShearEquilibrium balances horizontal forces of the story or of one column.
	ShearEquilibrium
	// Boundary states that a released end carries no moment.
	Boundary
)

func (k Kind) String() string {
	switch k {
	case JointEquilibrium:
		return "joint"
	case ShearEquilibrium:
		return "shear"
	case Boundary:
		return "boundary"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Equation is an assembled equation Expr = 0.
type Equation struct {
	Kind  Kind
	Label string
	Expr  Expr
}

func (e Equation) String() string {
	return fmt.Sprintf("%s: %s = 0", e.Label, e.Expr)
}

// System is a square linear system: Equations[i] pairs with Unknowns[i].
type System struct {
	Unknowns  []Symbol
	Equations []Equation
}

// Count returns the number of equations of the given kind.
func (s System) Count(k Kind) int {
	n := 0
	for _, eq := range s.Equations {
		if eq.Kind == k {
			n++
		}
	}
	return n
}

func (s System) String() string {
	var sb strings.Builder
	for _, eq := range s.Equations {
		sb.WriteString(eq.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Scheme selects how a support release enters the system.
type Scheme int

const (
	// ZeroMoment keeps the released rotation as an unknown and pairs it with
	// an explicit moment = 0 boundary equation. Fixed-fixed FEMs are used.
	ZeroMoment Scheme = iota
	// Modified condenses the released rotation out with the modified
	// slope-deflection equation and propped FEMs.
	Modified
)

func (s Scheme) String() string {
	switch s {
	case ZeroMoment:
		return "zero-moment"
	case Modified:
		return "modified"
	}
	return fmt.Sprintf("Scheme(%d)", int(s))
}

// ParseScheme parses "zero-moment" or "modified".
func ParseScheme(s string) (Scheme, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "zero-moment", "zero":
		return ZeroMoment, nil
	case "modified", "condensed":
		return Modified, nil
	}
	return ZeroMoment, fmt.Errorf("unknown release scheme %q", s)
}

// Model is everything the builder derives before solving.
type Model struct {
	// Reference is EI_ref; solved unknowns are EI_ref·θ and EI_ref·δ.
	Reference float64
	Scheme    Scheme
	FixedEnd  []fem.Moments
	Ends      []EndEquation // start and end of every member, in member order
	System    System
}

// End returns the end equation with the given moment label.
func (m *Model) End(label string) (EndEquation, bool) {
	for _, e := range m.Ends {
		if e.Label == label {
			return e, true
		}
	}
	return EndEquation{}, false
}

// String labels a model for verbose diagnostics.
func (m *Model) String() string {
	return fmt.Sprintf("%d unknowns %v, scheme %s, EIref %g",
		len(m.System.Unknowns), m.System.Unknowns, m.Scheme, m.Reference)
}
