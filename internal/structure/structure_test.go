package structure

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"

	sdcerrors "github.com/Swissguarde/dimex-sdc/internal/errors"
	"github.com/Swissguarde/dimex-sdc/internal/loads"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func validBeam() Beam {
	span := Member{Length: 5, Rigidity: 1, Load: UDL(10), Start: Hinged, End: Hinged}
	return NewBeam("beam", []Member{span, span, span}, nil)
}

func TestNewBeamLabels(t *testing.T) {
	b := validBeam()
	if got := b.Spans[2].Label(); got != "CD" {
		t.Fatalf("expected CD, got %s", got)
	}
	if got := b.Spans[1].EndLabel(); got != "CB" {
		t.Fatalf("expected CB, got %s", got)
	}
	labels := b.SupportLabels()
	if len(labels) != 4 || labels[3] != "D" {
		t.Fatalf("unexpected support labels %v", labels)
	}
	if JointLabel(27) != "J27" {
		t.Fatalf("unexpected label %s", JointLabel(27))
	}
}

func TestParseRestraint(t *testing.T) {
	tests := []struct {
		in   string
		want Restraint
		ok   bool
	}{
		{"", Fixed, true},
		{"Fixed", Fixed, true},
		{"pinned", Hinged, true},
		{"roller", Roller, true},
		{"sliding", Fixed, false},
	}
	for _, tt := range tests {
		got, err := ParseRestraint(tt.in)
		if (err == nil) != tt.ok || got != tt.want {
			t.Errorf("ParseRestraint(%q) = %v, %v", tt.in, got, err)
		}
	}
	if !Roller.Released() || Fixed.Released() {
		t.Fatal("unexpected Released")
	}
}

func TestSimpleReactions(t *testing.T) {
	s, e := Point(30, 1, 3).SimpleReactions(4)
	if s != 22.5 || e != 7.5 {
		t.Fatalf("expected 22.5/7.5, got %v/%v", s, e)
	}
	s, e = UDL(10).SimpleReactions(4)
	if s != 20 || e != 20 {
		t.Fatalf("expected 20/20, got %v/%v", s, e)
	}
}

func TestBeamValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Beam)
	}{
		{"two spans", func(b *Beam) { b.Spans = b.Spans[:2] }},
		{"zero length", func(b *Beam) { b.Spans[0].Length = 0 }},
		{"negative rigidity", func(b *Beam) { b.Spans[1].Rigidity = -1 }},
		{"nan length", func(b *Beam) { b.Spans[2].Length = math.NaN() }},
		{"negative load", func(b *Beam) { b.Spans[0].Load = UDL(-1) }},
		{"point outside span", func(b *Beam) { b.Spans[0].Load = Point(10, 4, 4) }},
		{"support mismatch", func(b *Beam) { b.Spans[1].Start = Fixed }},
		{"settlement count", func(b *Beam) { b.Settlements = []float64{0, 0.01} }},
		{"negative reference", func(b *Beam) { b.ReferenceRigidity = -5 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := validBeam()
			tt.mutate(&b)
			err := b.Validate()
			if !errors.Is(err, sdcerrors.ErrInvalidInput) {
				t.Fatalf("expected invalid input, got %v", err)
			}
		})
	}
	if err := validBeam().Validate(); err != nil {
		t.Fatalf("valid beam rejected: %v", err)
	}
}

func TestFrameValidate(t *testing.T) {
	col := Member{Length: 3, Rigidity: 1}
	f := NewFrame("portal", col, Member{Length: 6, Rigidity: 1}, col)
	if err := f.Validate(); err != nil {
		t.Fatalf("valid frame rejected: %v", err)
	}
	f.Left.End = Hinged
	if err := f.Validate(); !errors.Is(err, sdcerrors.ErrInvalidInput) {
		t.Fatalf("expected invalid input, got %v", err)
	}
}

func TestLoadBeamFromFile(t *testing.T) {
	path := writeFile(t, "beam.json", `{
  "name": "Three span beam",
  "modulus": 200000000,
  "spans": [
    {"length": 5, "inertia": 0.0001, "start": "hinged", "end": "roller",
     "load": {"type": "udl", "dead": 10, "live": 5}},
    {"length": 6, "rigidity": 30000, "start": "roller", "end": "roller",
     "load": {"type": "point", "magnitude": 40, "a": 2}},
    {"length": 4, "inertia": 0.0001, "start": "roller", "end": "fixed"}
  ],
  "settlements": [0, 0.005, 0, 0]
}`)

	b, err := LoadBeamFromFile(path, nil)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if b.Name != "Three span beam" || len(b.Spans) != 3 {
		t.Fatalf("unexpected beam %+v", b)
	}
	if math.Abs(b.Spans[0].Rigidity-20000) > 1e-9 || b.Spans[1].Rigidity != 30000 {
		t.Fatalf("unexpected rigidities %v, %v", b.Spans[0].Rigidity, b.Spans[1].Rigidity)
	}
	if b.Spans[0].Load.Magnitude != 15 {
		t.Fatalf("expected service load 15, got %v", b.Spans[0].Load.Magnitude)
	}
	if l := b.Spans[1].Load; l.Kind != PointLoad || l.B != 4 {
		t.Fatalf("expected derived b = 4, got %+v", l)
	}
	if b.Spans[2].End != Fixed || b.Spans[0].Start != Hinged {
		t.Fatalf("unexpected restraints %v, %v", b.Spans[0].Start, b.Spans[2].End)
	}
	if b.Settlement(1) != 0.005 {
		t.Fatalf("unexpected settlement %v", b.Settlement(1))
	}

	combo, err := loads.Lookup("2")
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	b, err = LoadBeamFromFile(path, &combo)
	if err != nil {
		t.Fatalf("load with combination: %v", err)
	}
	if got := b.Spans[0].Load.Magnitude; math.Abs(got-20) > 1e-12 {
		t.Fatalf("expected 1.2·10 + 1.6·5 = 20, got %v", got)
	}
}

func TestLoadBeamFromFileErrors(t *testing.T) {
	tests := []struct {
		name, content string
	}{
		{"bad json", `{"spans": [`},
		{"bad restraint", `{"spans": [{"length": 5, "rigidity": 1, "start": "glued"}, {"length": 5, "rigidity": 1}, {"length": 5, "rigidity": 1}]}`},
		{"bad load type", `{"spans": [{"length": 5, "rigidity": 1, "load": {"type": "moment"}}, {"length": 5, "rigidity": 1}, {"length": 5, "rigidity": 1}]}`},
		{"magnitude and components", `{"spans": [{"length": 5, "rigidity": 1, "load": {"type": "udl", "magnitude": 3, "dead": 2}}, {"length": 5, "rigidity": 1}, {"length": 5, "rigidity": 1}]}`},
		{"too few spans", `{"spans": [{"length": 5, "rigidity": 1}]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadBeamFromFile(writeFile(t, "beam.json", tt.content), nil)
			if !errors.Is(err, sdcerrors.ErrInvalidInput) {
				t.Fatalf("expected invalid input, got %v", err)
			}
		})
	}

	_, err := LoadBeamFromFile(filepath.Join(t.TempDir(), "missing.json"), nil)
	if !errors.Is(err, sdcerrors.ErrInvalidInput) {
		t.Fatalf("expected invalid input for a missing file, got %v", err)
	}
}

func TestLoadFrameFromFile(t *testing.T) {
	path := writeFile(t, "frame.json", `{
  "name": "Portal",
  "columns": [
    {"height": 3, "rigidity": 1, "base": "fixed", "load": {"type": "udl", "magnitude": 4}},
    {"height": 3, "rigidity": 1, "base": "roller"}
  ],
  "beam": {"length": 6, "rigidity": 2, "load": {"type": "point", "magnitude": 20, "a": 2, "b": 4}},
  "lateral_load": 5
}`)

	f, err := LoadFrameFromFile(path, nil)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if f.Left.Label() != "AB" || f.Right.Label() != "DC" || f.Beam.Label() != "BC" {
		t.Fatalf("unexpected labels %s %s %s", f.Left.Label(), f.Beam.Label(), f.Right.Label())
	}
	if f.Left.Length != 3 || f.Right.Start != Roller || f.Left.Start != Fixed {
		t.Fatalf("unexpected columns %+v %+v", f.Left, f.Right)
	}
	if f.LateralLoad != 5 || f.Braced {
		t.Fatalf("unexpected lateral %v braced %v", f.LateralLoad, f.Braced)
	}
	if f.Beam.Rigidity != 2 || f.Beam.Load.A != 2 {
		t.Fatalf("unexpected beam %+v", f.Beam)
	}

	bad := writeFile(t, "frame.json", `{"columns": [{"height": 3, "rigidity": 1}], "beam": {"length": 6, "rigidity": 1}}`)
	if _, err := LoadFrameFromFile(bad, nil); !errors.Is(err, sdcerrors.ErrInvalidInput) {
		t.Fatalf("expected invalid input, got %v", err)
	}
}
