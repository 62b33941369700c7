// Package analysis runs the slope-deflection pipeline end to end:
// fixed-end moments, equations, solution, final moments, reactions and
// BMSF diagrams.
//
// Every call is independent. Either the whole Result is returned or an error
// and no partial result.
package analysis

import (
	"fmt"
	"math"

	"github.com/Swissguarde/dimex-sdc/internal/bmsf"
	sdcerrors "github.com/Swissguarde/dimex-sdc/internal/errors"
	"github.com/Swissguarde/dimex-sdc/internal/fem"
	"github.com/Swissguarde/dimex-sdc/internal/slope"
	"github.com/Swissguarde/dimex-sdc/internal/solver"
	"github.com/Swissguarde/dimex-sdc/internal/structure"
)

// DefaultResidualTolerance bounds the equilibrium self-check, relative to the
// largest term of each equation.
const DefaultResidualTolerance = 1e-6

// maxRigiditySpread is the largest EI ratio between members accepted before
// precision is lost in the scaled system.
const maxRigiditySpread = 1e12

// Options tunes one analysis.
type Options struct {
	Scheme            slope.Scheme
	SingularTolerance float64 // solver.DefaultTolerance when zero
	ResidualTolerance float64 // DefaultResidualTolerance when zero
}

// DefaultOptions returns the options used when none are given.
func DefaultOptions() Options {
	return Options{
		Scheme:            slope.ZeroMoment,
		SingularTolerance: solver.DefaultTolerance,
		ResidualTolerance: DefaultResidualTolerance,
	}
}

// StructureKind is the analysed system.
type StructureKind int

const (
	ContinuousBeam StructureKind = iota
	PortalFrame
)

func (k StructureKind) String() string {
	if k == PortalFrame {
		return "portal frame"
	}
	return "continuous beam"
}

// Result bundles everything the pipeline derives for one structure.
type Result struct {
	Name string
	Kind StructureKind

	Model     *slope.Model
	Solution  *solver.Solution
	Moments   MomentTable
	Reactions ReactionTable
	Diagrams  []bmsf.Diagram
	Checks    []Check

	// MaxResidual is the worst relative residual over all assembled equations.
	MaxResidual float64
}

// FixedEndMoments returns the fixed-end moments used by the equations.
func (r *Result) FixedEndMoments() []fem.Moments {
	return r.Model.FixedEnd
}

// Unscaled converts a solved unknown back to a bare rotation (rad) or
// translation (m) by dividing out the reference rigidity.
func (r *Result) Unscaled(sym slope.Symbol) float64 {
	return r.Solution.Value(sym) / r.Model.Reference
}

// Diagram returns the diagram of the member with the given label.
func (r *Result) Diagram(label string) (bmsf.Diagram, bool) {
	for _, d := range r.Diagrams {
		if d.Label == label {
			return d, true
		}
	}
	return bmsf.Diagram{}, false
}

// AnalyzeBeam solves a continuous beam.
func AnalyzeBeam(b structure.Beam, opts Options) (*Result, error) {
	if err := b.Validate(); err != nil {
		return nil, err
	}
	if err := checkSpread(b.Spans); err != nil {
		return nil, err
	}
	model, err := slope.BuildBeam(b, opts.Scheme)
	if err != nil {
		return nil, fmt.Errorf("build beam equations: %w", err)
	}
	res, err := solve(model, opts)
	if err != nil {
		return nil, err
	}
	res.Name, res.Kind = b.Name, ContinuousBeam
	res.Reactions, res.Diagrams = beamReactions(b, res.Moments)
	return res, nil
}

// AnalyzeFrame solves a single-bay portal frame.
func AnalyzeFrame(f structure.Frame, opts Options) (*Result, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}
	if err := checkSpread(f.Members()); err != nil {
		return nil, err
	}
	model, err := slope.BuildFrame(f, opts.Scheme)
	if err != nil {
		return nil, fmt.Errorf("build frame equations: %w", err)
	}
	res, err := solve(model, opts)
	if err != nil {
		return nil, err
	}
	res.Name, res.Kind = f.Name, PortalFrame
	res.Reactions, res.Diagrams = frameReactions(f, res.Moments)
	return res, nil
}

func solve(model *slope.Model, opts Options) (*Result, error) {
	sol, err := solver.Solve(model.System, opts.SingularTolerance)
	if err != nil {
		return nil, fmt.Errorf("solve %d unknowns: %w", len(model.System.Unknowns), err)
	}
	tol := opts.ResidualTolerance
	if tol <= 0 {
		tol = DefaultResidualTolerance
	}
	checks, worst := selfCheck(model.System, sol.Values)
	if worst > tol {
		return nil, sdcerrors.WithMetadata(sdcerrors.CodeNumericDegeneracy,
			fmt.Sprintf("equilibrium self-check failed: relative residual %.3g exceeds %.3g", worst, tol),
			map[string]string{"residual": fmt.Sprintf("%g", worst)})
	}
	return &Result{
		Model:       model,
		Solution:    sol,
		Moments:     Evaluate(model, sol.Values),
		Checks:      checks,
		MaxResidual: worst,
	}, nil
}

func checkSpread(members []structure.Member) error {
	lo, hi := math.Inf(1), 0.0
	for _, m := range members {
		lo = math.Min(lo, m.Rigidity)
		hi = math.Max(hi, m.Rigidity)
	}
	if hi/lo > maxRigiditySpread {
		return sdcerrors.Newf(sdcerrors.CodeNumericDegeneracy,
			"rigidity ratio %.3g between members exceeds %.0e", hi/lo, maxRigiditySpread)
	}
	return nil
}
