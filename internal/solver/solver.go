// Package solver solves the square linear systems assembled from
// slope-deflection equations.
package solver

import (
	"math"
	"strconv"

	"gonum.org/v1/gonum/mat"

	sdcerrors "github.com/Swissguarde/dimex-sdc/internal/errors"
	"github.com/Swissguarde/dimex-sdc/internal/slope"
)

// DefaultTolerance is the smallest reciprocal condition number accepted.
const DefaultTolerance = 1e-9

// Solution holds the solved, rigidity-scaled unknowns.
type Solution struct {
	Unknowns []slope.Symbol
	Values   slope.Values

	// Condition is the 1-norm condition estimate of the equilibrated matrix.
	Condition float64
}

// Value returns the solved value of sym, zero when sym is not an unknown.
func (s *Solution) Value(sym slope.Symbol) float64 {
	return s.Values[sym]
}

// Solve solves sys by LU factorisation with partial pivoting.
//
// Rows and columns are equilibrated first so the tolerance is relative to the
// matrix scale. A reciprocal condition number below tol (DefaultTolerance when
// tol <= 0), a zero row or a zero column reports UnstableStructure and no
// values.
func Solve(sys slope.System, tol float64) (*Solution, error) {
	if tol <= 0 {
		tol = DefaultTolerance
	}
	n := len(sys.Unknowns)
	if n != len(sys.Equations) {
		return nil, sdcerrors.Newf(sdcerrors.CodeMalformedSystem,
			"%d equations for %d unknowns", len(sys.Equations), n)
	}

	index := make(map[slope.Symbol]int, n)
	for j, u := range sys.Unknowns {
		if _, dup := index[u]; dup {
			return nil, sdcerrors.Newf(sdcerrors.CodeMalformedSystem, "unknown %s listed twice", u)
		}
		index[u] = j
	}

	sol := &Solution{Unknowns: sys.Unknowns, Values: make(slope.Values, n), Condition: 1}
	if n == 0 {
		return sol, nil
	}

	a := mat.NewDense(n, n, nil)
	b := mat.NewVecDense(n, nil)
	for i, eq := range sys.Equations {
		for _, t := range eq.Expr.Terms {
			j, ok := index[t.Symbol]
			if !ok {
				return nil, sdcerrors.Newf(sdcerrors.CodeMalformedSystem,
					"%s references %s, which is not an unknown of the system", eq.Label, t.Symbol)
			}
			a.Set(i, j, a.At(i, j)+t.Coeff)
		}
		b.SetVec(i, -eq.Expr.Constant)
	}

	rowScale, colScale, err := equilibrate(a, sys)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		b.SetVec(i, b.AtVec(i)*rowScale[i])
	}

	var lu mat.LU
	lu.Factorize(a)
	cond := lu.Cond()
	if math.IsInf(cond, 0) || math.IsNaN(cond) || 1/cond < tol {
		return nil, sdcerrors.WithMetadata(sdcerrors.CodeUnstableStructure,
			"no unique solution: the coefficient matrix is singular",
			map[string]string{"condition": formatCond(cond)})
	}

	var y mat.VecDense
	if err := lu.SolveVecTo(&y, false, b); err != nil {
		return nil, sdcerrors.Wrap(sdcerrors.CodeUnstableStructure, "no unique solution", err)
	}
	for j, u := range sys.Unknowns {
		sol.Values[u] = y.AtVec(j) * colScale[j]
	}
	sol.Condition = cond
	return sol, nil
}

// equilibrate scales a in place so every row and column has unit max norm.
func equilibrate(a *mat.Dense, sys slope.System) (rowScale, colScale []float64, err error) {
	n, _ := a.Dims()
	rowScale = make([]float64, n)
	colScale = make([]float64, n)

	for i := 0; i < n; i++ {
		m := 0.0
		for j := 0; j < n; j++ {
			m = math.Max(m, math.Abs(a.At(i, j)))
		}
		if m == 0 {
			return nil, nil, sdcerrors.Newf(sdcerrors.CodeUnstableStructure,
				"no unique solution: %s does not involve any unknown", sys.Equations[i].Label)
		}
		rowScale[i] = 1 / m
		for j := 0; j < n; j++ {
			a.Set(i, j, a.At(i, j)*rowScale[i])
		}
	}
	for j := 0; j < n; j++ {
		m := 0.0
		for i := 0; i < n; i++ {
			m = math.Max(m, math.Abs(a.At(i, j)))
		}
		if m == 0 {
			return nil, nil, sdcerrors.Newf(sdcerrors.CodeUnstableStructure,
				"no unique solution: %s is not restrained by any equation", sys.Unknowns[j])
		}
		colScale[j] = 1 / m
		for i := 0; i < n; i++ {
			a.Set(i, j, a.At(i, j)*colScale[j])
		}
	}
	return rowScale, colScale, nil
}

func formatCond(c float64) string {
	if math.IsInf(c, 0) {
		return "inf"
	}
	return strconv.FormatFloat(c, 'g', 4, 64)
}
