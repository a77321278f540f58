// Package linsolve solves the symmetric linear system H·p = b that
// appears at every Newton step of the optimal-transport dual, where H is
// the (possibly singular) P1-Laplacian on the current Laguerre diagram.
// Two interchangeable paths are provided, selected by Options.Method:
// a direct Cholesky factorization of H plus a small Tikhonov-regularized
// diagonal, and a Jacobi-preconditioned conjugate-gradient iteration on
// the same regularized operator. Both take the regularizing diagonal as
// an explicit, separately-stored vector rather than baking it into H, so
// that callers can still inspect H's unregularized, row-sum-zero
// Laplacian structure.
package linsolve

import (
	"errors"
	"fmt"
)

// Method selects which of the two linear-solve paths to use.
type Method int

const (
	// Direct factorizes H+diag(reg) with a Cholesky decomposition.
	Direct Method = iota
	// Iterative runs Jacobi-preconditioned conjugate gradients on the
	// operator x ↦ H·x + reg·x.
	Iterative
)

func (m Method) String() string {
	switch m {
	case Direct:
		return "direct"
	case Iterative:
		return "iterative"
	default:
		return fmt.Sprintf("Method(%d)", int(m))
	}
}

// Options configures a Solve call.
type Options struct {
	// Method chooses between the direct and iterative paths. The zero
	// value is Direct.
	Method Method

	// Tolerance is the relative residual tolerance used by the
	// iterative path: iteration stops when ‖r‖ ≤ Tolerance·‖b‖. Ignored
	// by the direct path. If zero, defaultTolerance is used.
	Tolerance float64

	// MaxIterations caps the number of CG iterations. Ignored by the
	// direct path. If zero, 10·N is used, where N is the system size.
	MaxIterations int
}

const defaultTolerance = 1e-3

// ErrFailed is returned when the direct path's factorization is not
// positive definite, or the iterative path exhausts MaxIterations
// without reaching Tolerance.
var ErrFailed = errors.New("linsolve: failed to solve symmetric system")

// Matrix is the view of a symmetric sparse matrix that linsolve needs:
// entry access for the direct path's dense factorization, diagonal
// extraction for the iterative path's Jacobi preconditioner, and
// matrix-vector multiplication for the iterative path's CG recurrence.
// *sparsemat.CSR satisfies Matrix.
type Matrix interface {
	Dims() (r, c int)
	At(i, j int) float64
	Diag() []float64
	MulVecTo(dst []float64, trans bool, x []float64)
}

// Solve finds p such that H·p ≈ b, where H is represented by h, and a
// non-negative regularizing diagonal reg is added to H's diagonal before
// solving (reg may be nil, meaning no regularization; the direct path
// then fails with ErrFailed on the singular constant-vector kernel of a
// row-sum-zero Laplacian H). h must be symmetric; Solve does not check
// this.
func Solve(h Matrix, n int, reg, b []float64, opts Options) ([]float64, error) {
	if reg == nil {
		reg = make([]float64, n)
	}
	switch opts.Method {
	case Iterative:
		return solveIterative(h, n, reg, b, opts)
	default:
		return solveDirect(h, n, reg, b)
	}
}
