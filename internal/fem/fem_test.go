package fem

import (
	"math"
	"testing"

	"github.com/Swissguarde/dimex-sdc/internal/structure"
)

func approx(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func TestFixedFixedUDL(t *testing.T) {
	for _, tt := range []struct{ w, l float64 }{
		{10, 5}, {25, 7.5}, {0.5, 12}, {0, 4},
	} {
		s, e := FixedFixed(tt.l, structure.UDL(tt.w))
		want := tt.w * tt.l * tt.l / 12
		if !approx(s, -want, 1e-9) || !approx(e, want, 1e-9) {
			t.Errorf("w=%v L=%v: got (%v, %v), want (%v, %v)", tt.w, tt.l, s, e, -want, want)
		}
	}
}

func TestFixedFixedPoint(t *testing.T) {
	// P = 40 kN at a = 2, b = 4 on a 6 m span.
	s, e := FixedFixed(6, structure.Point(40, 2, 4))
	if !approx(s, -40*2*16.0/36, 1e-9) {
		t.Errorf("start = %v, want %v", s, -40*2*16.0/36)
	}
	if !approx(e, 40*4*4.0/36, 1e-9) {
		t.Errorf("end = %v, want %v", e, 40*4*4.0/36)
	}

	// Midspan load gives the familiar PL/8.
	s, e = FixedFixed(8, structure.Point(20, 4, 4))
	if !approx(s, -20, 1e-9) || !approx(e, 20, 1e-9) {
		t.Errorf("midspan: got (%v, %v), want (-20, 20)", s, e)
	}
}

func TestPropped(t *testing.T) {
	tests := []struct {
		name       string
		length     float64
		load       structure.Load
		rel        Release
		start, end float64
	}{
		{"udl end released", 5, structure.UDL(10), Release{End: true}, -10 * 25.0 / 8, 0},
		{"udl start released", 5, structure.UDL(10), Release{Start: true}, 0, 10 * 25.0 / 8},
		// PL/8 + PL/16 = 3PL/16 at midspan
		{"midspan point end released", 8, structure.Point(20, 4, 4), Release{End: true}, -3 * 20 * 8.0 / 16, 0},
		{"both released", 5, structure.UDL(10), Release{Start: true, End: true}, 0, 0},
		{"none released", 5, structure.UDL(10), Release{}, -250.0 / 12, 250.0 / 12},
		{"no load", 5, structure.Load{}, Release{End: true}, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, e := Calculate(tt.length, tt.load, tt.rel)
			if !approx(s, tt.start, 1e-9) || !approx(e, tt.end, 1e-9) {
				t.Errorf("got (%v, %v), want (%v, %v)", s, e, tt.start, tt.end)
			}
		})
	}
}

func TestProppedUDLIsThreeHalvesFixed(t *testing.T) {
	fs, _ := FixedFixed(6, structure.UDL(12))
	ps, _ := Calculate(6, structure.UDL(12), Release{End: true})
	if !approx(ps, 1.5*fs, 1e-9) {
		t.Errorf("propped = %v, want 1.5 × %v", ps, fs)
	}
}

func TestForMember(t *testing.T) {
	m := structure.Member{From: "B", To: "C", Length: 4, Rigidity: 1, Load: structure.UDL(6)}
	got := ForMember(m, Release{})
	if got.Label != "BC" || !approx(got.Start, -8, 1e-12) || !approx(got.End, 8, 1e-12) {
		t.Errorf("ForMember() = %+v", got)
	}
}
