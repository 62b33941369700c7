package structure

import (
	"fmt"
	"math"

	sdcerrors "github.com/Swissguarde/dimex-sdc/internal/errors"
)

// MinBeamSpans is the smallest continuous beam accepted.
const MinBeamSpans = 3

// positionTolerance is the relative mismatch allowed between a+b and L.
const positionTolerance = 1e-6

func invalid(label, field, format string, args ...any) error {
	return sdcerrors.WithMetadata(
		sdcerrors.CodeInvalidInput,
		fmt.Sprintf("%s: %s", label, fmt.Sprintf(format, args...)),
		map[string]string{"member": label, "field": field},
	)
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// Validate checks geometry, rigidity and load of a single member.
func (m Member) Validate() error {
	label := m.Label()
	if !finite(m.Length) || m.Length <= 0 {
		return invalid(label, "length", "length must be positive, got %g", m.Length)
	}
	if !finite(m.Rigidity) || m.Rigidity <= 0 {
		return invalid(label, "rigidity", "rigidity EI must be positive, got %g", m.Rigidity)
	}
	return m.Load.validate(label, m.Length)
}

func (l Load) validate(label string, length float64) error {
	switch l.Kind {
	case NoLoad:
		return nil
	case UniformLoad, PointLoad:
	default:
		return invalid(label, "load", "unknown load kind %d", int(l.Kind))
	}
	if !finite(l.Magnitude) || l.Magnitude < 0 {
		return invalid(label, "load", "load magnitude must be non-negative, got %g", l.Magnitude)
	}
	if l.Kind == PointLoad {
		if !finite(l.A) || !finite(l.B) || l.A < 0 || l.B < 0 {
			return invalid(label, "load", "point load distances must be non-negative, got a=%g b=%g", l.A, l.B)
		}
		if math.Abs(l.A+l.B-length) > positionTolerance*length {
			return invalid(label, "load", "point load distances a=%g + b=%g do not add up to L=%g", l.A, l.B, length)
		}
	}
	return nil
}

// Validate checks the beam before any solve step.
func (b Beam) Validate() error {
	if len(b.Spans) < MinBeamSpans {
		return sdcerrors.Newf(sdcerrors.CodeInvalidInput,
			"a continuous beam needs at least %d spans, got %d", MinBeamSpans, len(b.Spans))
	}
	for _, s := range b.Spans {
		if err := s.Validate(); err != nil {
			return err
		}
	}
	for i := 1; i < len(b.Spans); i++ {
		prev, next := b.Spans[i-1], b.Spans[i]
		if prev.End != next.Start {
			return invalid(next.Label(), "start",
				"support %s is %s at the end of %s but %s at the start of %s",
				next.From, prev.End, prev.Label(), next.Start, next.Label())
		}
	}
	if len(b.Settlements) != 0 && len(b.Settlements) != len(b.Spans)+1 {
		return sdcerrors.Newf(sdcerrors.CodeInvalidInput,
			"settlements must list all %d supports, got %d", len(b.Spans)+1, len(b.Settlements))
	}
	for i, d := range b.Settlements {
		if !finite(d) {
			return sdcerrors.Newf(sdcerrors.CodeInvalidInput, "settlement at %s is not finite", JointLabel(i))
		}
	}
	if !finite(b.ReferenceRigidity) || b.ReferenceRigidity < 0 {
		return sdcerrors.Newf(sdcerrors.CodeInvalidInput,
			"reference rigidity must be non-negative, got %g", b.ReferenceRigidity)
	}
	return nil
}

// Validate checks the frame before any solve step.
func (f Frame) Validate() error {
	for _, m := range f.Members() {
		if err := m.Validate(); err != nil {
			return err
		}
	}
	if f.Left.End != Fixed || f.Right.End != Fixed {
		return sdcerrors.New(sdcerrors.CodeInvalidInput, "column tops must be rigidly connected to the beam")
	}
	if f.Beam.Start != Fixed || f.Beam.End != Fixed {
		return sdcerrors.New(sdcerrors.CodeInvalidInput, "beam ends must be rigidly connected to the columns")
	}
	if !finite(f.LateralLoad) {
		return sdcerrors.New(sdcerrors.CodeInvalidInput, "lateral load is not finite")
	}
	if !finite(f.ReferenceRigidity) || f.ReferenceRigidity < 0 {
		return sdcerrors.Newf(sdcerrors.CodeInvalidInput,
			"reference rigidity must be non-negative, got %g", f.ReferenceRigidity)
	}
	return nil
}
