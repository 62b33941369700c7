package solver

import (
	"errors"
	"math"
	"testing"

	sdcerrors "github.com/Swissguarde/dimex-sdc/internal/errors"
	"github.com/Swissguarde/dimex-sdc/internal/slope"
)

func equation(label string, e slope.Expr) slope.Equation {
	return slope.Equation{Kind: slope.JointEquilibrium, Label: label, Expr: e}
}

func TestSolveTwoByTwo(t *testing.T) {
	sys := slope.System{
		Unknowns: []slope.Symbol{"x", "y"},
		Equations: []slope.Equation{
			equation("first", slope.Const(-5).With("x", 2).With("y", 1)),
			equation("second", slope.Const(-10).With("x", 1).With("y", 3)),
		},
	}
	sol, err := Solve(sys, 0)
	if err != nil {
		t.Fatalf("solve: %v", err)
	}
	if math.Abs(sol.Value("x")-1) > 1e-12 || math.Abs(sol.Value("y")-3) > 1e-12 {
		t.Fatalf("expected x=1, y=3, got %v", sol.Values)
	}
	if sol.Condition < 1 {
		t.Fatalf("condition estimate below 1: %v", sol.Condition)
	}
}

func TestSolveBadlyScaledRows(t *testing.T) {
	// Rows differ by ten orders of magnitude but the system is well posed.
	sys := slope.System{
		Unknowns: []slope.Symbol{"x", "y"},
		Equations: []slope.Equation{
			equation("big", slope.Const(-3e10).With("x", 1e10).With("y", 1e10)),
			equation("small", slope.Const(-1).With("x", 1).With("y", -1)),
		},
	}
	sol, err := Solve(sys, 0)
	if err != nil {
		t.Fatalf("solve: %v", err)
	}
	if math.Abs(sol.Value("x")-2) > 1e-9 || math.Abs(sol.Value("y")-1) > 1e-9 {
		t.Fatalf("expected x=2, y=1, got %v", sol.Values)
	}
}

func TestSolveEmpty(t *testing.T) {
	sol, err := Solve(slope.System{}, 0)
	if err != nil {
		t.Fatalf("solve: %v", err)
	}
	if len(sol.Values) != 0 {
		t.Fatalf("expected no values, got %v", sol.Values)
	}
}

func TestSolveErrors(t *testing.T) {
	tests := []struct {
		name string
		sys  slope.System
		want error
	}{
		{
			name: "singular",
			sys: slope.System{
				Unknowns: []slope.Symbol{"x", "y"},
				Equations: []slope.Equation{
					equation("a", slope.Const(-1).With("x", 1).With("y", 1)),
					equation("b", slope.Const(-2).With("x", 2).With("y", 2)),
				},
			},
			want: sdcerrors.ErrUnstableStructure,
		},
		{
			name: "zero row",
			sys: slope.System{
				Unknowns: []slope.Symbol{"x", "y"},
				Equations: []slope.Equation{
					equation("a", slope.Const(-1).With("x", 1).With("y", 1)),
					equation("story shear", slope.Const(10)),
				},
			},
			want: sdcerrors.ErrUnstableStructure,
		},
		{
			name: "zero column",
			sys: slope.System{
				Unknowns: []slope.Symbol{"x", "y"},
				Equations: []slope.Equation{
					equation("a", slope.Const(-1).With("x", 1)),
					equation("b", slope.Const(-2).With("x", 2).With("y", 0)),
				},
			},
			want: sdcerrors.ErrUnstableStructure,
		},
		{
			name: "count mismatch",
			sys: slope.System{
				Unknowns:  []slope.Symbol{"x", "y"},
				Equations: []slope.Equation{equation("a", slope.Const(-1).With("x", 1))},
			},
			want: sdcerrors.ErrMalformedSystem,
		},
		{
			name: "foreign symbol",
			sys: slope.System{
				Unknowns:  []slope.Symbol{"x"},
				Equations: []slope.Equation{equation("a", slope.Const(-1).With("z", 1))},
			},
			want: sdcerrors.ErrMalformedSystem,
		},
		{
			name: "duplicate unknown",
			sys: slope.System{
				Unknowns: []slope.Symbol{"x", "x"},
				Equations: []slope.Equation{
					equation("a", slope.Const(-1).With("x", 1)),
					equation("b", slope.Const(-1).With("x", 2)),
				},
			},
			want: sdcerrors.ErrMalformedSystem,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sol, err := Solve(tt.sys, 0)
			if !errors.Is(err, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, err)
			}
			if sol != nil {
				t.Fatalf("expected no solution, got %v", sol.Values)
			}
		})
	}
}
