package structure

import (
	"encoding/json"
	"fmt"
	"os"

	sdcerrors "github.com/Swissguarde/dimex-sdc/internal/errors"
	"github.com/Swissguarde/dimex-sdc/internal/loads"
)

// LoadInput is the JSON form of a member load.
//
// Either Magnitude or the load components are given. Components are factored
// with the selected combination, or summed when none is selected.
type LoadInput struct {
	Type      string  `json:"type"`
	Magnitude float64 `json:"magnitude,omitempty"`
	A         float64 `json:"a,omitempty"` // m from the member start (column base)
	B         float64 `json:"b,omitempty"` // m from the member end; derived when omitted

	loads.Components
}

// MemberInput is the JSON form of a span, column or frame beam.
type MemberInput struct {
	Length   float64  `json:"length,omitempty"`
	Height   float64  `json:"height,omitempty"` // columns
	Inertia  float64  `json:"inertia,omitempty"`
	Rigidity float64  `json:"rigidity,omitempty"`
	Start    string   `json:"start,omitempty"`
	End      string   `json:"end,omitempty"`
	Base     string   `json:"base,omitempty"` // columns
	Load     LoadInput `json:"load"`
}

// BeamFile is the JSON document describing a continuous beam.
type BeamFile struct {
	Name              string       `json:"name"`
	Description       string       `json:"description,omitempty"`
	Modulus           float64      `json:"modulus,omitempty"` // E (kN/m²), defaults to 1
	ReferenceRigidity float64      `json:"reference_rigidity,omitempty"`
	Spans             []MemberInput `json:"spans"`
	Settlements       []float64    `json:"settlements,omitempty"`
}

// FrameFile is the JSON document describing a portal frame.
type FrameFile struct {
	Name              string       `json:"name"`
	Description       string       `json:"description,omitempty"`
	Modulus           float64      `json:"modulus,omitempty"`
	ReferenceRigidity float64      `json:"reference_rigidity,omitempty"`
	Columns           []MemberInput `json:"columns"`
	Beam              MemberInput   `json:"beam"`
	LateralLoad       float64      `json:"lateral_load,omitempty"`
	Braced            bool         `json:"braced,omitempty"`
}

// LoadBeamFromFile loads and validates a beam definition from a JSON file.
// A nil combination sums load components unfactored.
func LoadBeamFromFile(path string, combo *loads.Combination) (Beam, error) {
	var doc BeamFile
	if err := readJSON(path, &doc); err != nil {
		return Beam{}, err
	}
	b, err := doc.Beam(combo)
	if err != nil {
		return Beam{}, err
	}
	if err := b.Validate(); err != nil {
		return Beam{}, err
	}
	return b, nil
}

// LoadFrameFromFile loads and validates a frame definition from a JSON file.
func LoadFrameFromFile(path string, combo *loads.Combination) (Frame, error) {
	var doc FrameFile
	if err := readJSON(path, &doc); err != nil {
		return Frame{}, err
	}
	f, err := doc.Frame(combo)
	if err != nil {
		return Frame{}, err
	}
	if err := f.Validate(); err != nil {
		return Frame{}, err
	}
	return f, nil
}

func readJSON(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return sdcerrors.Wrap(sdcerrors.CodeInvalidInput, "read "+path, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return sdcerrors.Wrap(sdcerrors.CodeInvalidInput, "parse "+path, err)
	}
	return nil
}

// Beam converts the document into a Beam.
func (doc BeamFile) Beam(combo *loads.Combination) (Beam, error) {
	spans := make([]Member, len(doc.Spans))
	for i, in := range doc.Spans {
		label := JointLabel(i) + JointLabel(i+1)
		m, err := in.member(label, doc.Modulus, combo)
		if err != nil {
			return Beam{}, err
		}
		if m.Start, err = ParseRestraint(in.Start); err != nil {
			return Beam{}, sdcerrors.Wrap(sdcerrors.CodeInvalidInput, label, err)
		}
		if m.End, err = ParseRestraint(in.End); err != nil {
			return Beam{}, sdcerrors.Wrap(sdcerrors.CodeInvalidInput, label, err)
		}
		spans[i] = m
	}
	b := NewBeam(doc.Name, spans, doc.Settlements)
	b.ReferenceRigidity = doc.ReferenceRigidity
	return b, nil
}

// Frame converts the document into a Frame.
func (doc FrameFile) Frame(combo *loads.Combination) (Frame, error) {
	if len(doc.Columns) != 2 {
		return Frame{}, sdcerrors.Newf(sdcerrors.CodeInvalidInput,
			"a portal frame has exactly 2 columns, got %d", len(doc.Columns))
	}
	var cols [2]Member
	for i, in := range doc.Columns {
		label := [2]string{"AB", "DC"}[i]
		if in.Length == 0 {
			in.Length = in.Height
		}
		m, err := in.member(label, doc.Modulus, combo)
		if err != nil {
			return Frame{}, err
		}
		base := in.Base
		if base == "" {
			base = in.Start
		}
		if m.Start, err = ParseRestraint(base); err != nil {
			return Frame{}, sdcerrors.Wrap(sdcerrors.CodeInvalidInput, label, err)
		}
		cols[i] = m
	}
	beam, err := doc.Beam.member("BC", doc.Modulus, combo)
	if err != nil {
		return Frame{}, err
	}
	f := NewFrame(doc.Name, cols[0], beam, cols[1])
	f.LateralLoad = doc.LateralLoad
	f.Braced = doc.Braced
	f.ReferenceRigidity = doc.ReferenceRigidity
	return f, nil
}

func (in MemberInput) member(label string, modulus float64, combo *loads.Combination) (Member, error) {
	if modulus == 0 {
		modulus = 1
	}
	m := Member{Length: in.Length, Rigidity: in.Rigidity}
	if m.Rigidity == 0 {
		m.Rigidity = modulus * in.Inertia
	}
	load, err := in.Load.load(m.Length, combo)
	if err != nil {
		return Member{}, sdcerrors.Wrap(sdcerrors.CodeInvalidInput, label, err)
	}
	m.Load = load
	return m, nil
}

func (in LoadInput) load(length float64, combo *loads.Combination) (Load, error) {
	kind, err := ParseLoadKind(in.Type)
	if err != nil {
		return Load{}, err
	}
	if kind == NoLoad {
		return Load{}, nil
	}

	magnitude := in.Magnitude
	if !in.Components.IsZero() {
		if in.Magnitude != 0 {
			return Load{}, fmt.Errorf("give either magnitude or load components, not both")
		}
		magnitude = in.Components.Service()
		if combo != nil {
			magnitude = combo.Factor(in.Components)
		}
	}

	l := Load{Kind: kind, Magnitude: magnitude}
	if kind == PointLoad {
		l.A, l.B = in.A, in.B
		if l.B == 0 && l.A != length {
			l.B = length - l.A
		}
	}
	return l, nil
}
