package loads

import (
	"math"
	"testing"
)

func TestFactor(t *testing.T) {
	c := Components{Dead: 6, Live: 4}

	tests := []struct {
		id   string
		want float64
	}{
		{"1", 8.4},
		{"2", 13.6},
		{"6", 5.4},
	}
	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			combo, err := Lookup(tt.id)
			if err != nil {
				t.Fatal(err)
			}
			if got := combo.Factor(c); math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("Factor() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestLookupUnknown(t *testing.T) {
	if _, err := Lookup("42"); err == nil {
		t.Fatal("expected an error for an unknown combination")
	}
}

func TestGoverning(t *testing.T) {
	value, combo := Governing(Components{Dead: 6, Live: 4}, Combinations)
	if combo.ID != "2" {
		t.Errorf("governing combination = %s, want 2", combo.ID)
	}
	if math.Abs(value-13.6) > 1e-12 {
		t.Errorf("governing value = %v, want 13.6", value)
	}
}

func TestServiceAndIsZero(t *testing.T) {
	if !(Components{}).IsZero() {
		t.Error("zero components should report IsZero")
	}
	if got := (Components{Dead: 1, Wind: 2}).Service(); got != 3 {
		t.Errorf("Service() = %v, want 3", got)
	}
}
