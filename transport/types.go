// Package transport implements the semi-discrete optimal-transport
// core: the Kantorovich dual's gradient and Hessian assemblers, and the
// damped Newton–KMT driver that solves for the weights ψ making every
// Laguerre cell's area match its target mass.
//
// Construction of the Laguerre diagram itself is delegated to a
// laguerre.Builder the caller supplies (see package laguerre); this
// package only consumes the triangulated diagram it produces.
package transport

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/ot2d/sdot/geom2d"
	"github.com/ot2d/sdot/linsolve"
)

// Seeds is the ordered, immutable set of points {xi} a Solver is built
// from. N = len(Seeds) must be at least 2.
type Seeds = []geom2d.Point

// Masses is a length-N vector of target Laguerre-cell areas νi, each
// strictly positive and summing to |Ω|.
type Masses = []float64

// Weights is a length-N vector of dual weights ψi: the solver's state.
type Weights = []float64

// Options configures a Solver.
type Options struct {
	// Solver selects the linear-solve strategy used at each Newton
	// step: linsolve.Direct or linsolve.Iterative.
	Solver linsolve.Method
	// Regularization is the Tikhonov coefficient α applied as α·νi on
	// the Hessian diagonal. Used by both solve paths: it kills the
	// constant-vector kernel for the direct factorization, and acts as
	// the consistent diagonal shift for the iterative path.
	Regularization float64
	// MaxOuter caps the number of outer Newton iterations Solve will
	// run before returning ErrDidNotConverge.
	MaxOuter int
	// MaxLineSearch caps the number of step-halving substeps per outer
	// iteration before the step is abandoned.
	MaxLineSearch int
	// Tol is the relative convergence tolerance: Solve stops once the
	// L∞ gradient error falls below Tol * max(ν).
	Tol float64
	// Verbose enables per-iteration progress logging through Logger.
	Verbose bool
	// Logger receives per-iteration progress when Verbose is set. The
	// zero value logs nothing; use NewOptions to get a no-op logger
	// that is safe to use directly.
	Logger zerolog.Logger
}

// NewOptions returns the solver's defaults: direct solve, α = 1e-6,
// MaxOuter = 200, MaxLineSearch = 10, Tol = 0.01, logging disabled.
func NewOptions() Options {
	return Options{
		Solver:         linsolve.Direct,
		Regularization: 1e-6,
		MaxOuter:       200,
		MaxLineSearch:  10,
		Tol:            0.01,
		Logger:         zerolog.Nop(),
	}
}

// ErrInputInvalid is returned by NewSolver when the seeds or target
// masses fail validation: duplicate seeds, a seed outside Ω, a
// non-positive mass, or masses that don't sum to |Ω|.
var ErrInputInvalid = errors.New("transport: invalid input")

// ErrLinearSolveFailed is returned by Solve and OneIteration when the
// linear solve for an outer iteration's Newton step fails. The step is
// solved once per outer iteration; the line-search substeps rescale it
// and do not solve again.
var ErrLinearSolveFailed = errors.New("transport: linear solve failed")

// ErrInterrupted is returned by Solve and OneIteration when the
// Solver's Stop flag was observed between outer iterations. The Weights
// Solve returns with it hold the best ψ found so far.
var ErrInterrupted = errors.New("transport: solve interrupted")

// ErrDidNotConverge is returned by Solve when the outer-iteration cap
// is reached before the gradient error falls below tolerance.
type ErrDidNotConverge struct {
	// Weights is the best ψ found before the cap was hit.
	Weights Weights
	// Err is the final L∞ gradient error.
	Err float64
}

func (e *ErrDidNotConverge) Error() string {
	return fmt.Sprintf("transport: did not converge after outer iteration cap (final error %.6g)", e.Err)
}
