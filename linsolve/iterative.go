package linsolve

import (
	"fmt"
	"math"
)

// solveIterative runs Jacobi-preconditioned conjugate gradients on the
// operator x ↦ H·x + reg·x, with preconditioner x ↦ x/diag(H+reg),
// starting from the zero vector. It follows the same ρ/β/α recurrence as
// gonum.org/v1/gonum/linsolve's CG method, written as a plain loop
// rather than that package's resumable Method state machine since the
// operator here never changes shape across an outer Newton iteration.
func solveIterative(h Matrix, n int, reg, b []float64, opts Options) ([]float64, error) {
	tol := opts.Tolerance
	if tol == 0 {
		tol = defaultTolerance
	}
	maxIter := opts.MaxIterations
	if maxIter == 0 {
		maxIter = 10 * n
	}

	precond := make([]float64, n)
	hDiag := h.Diag()
	for i := range precond {
		precond[i] = hDiag[i] + reg[i]
	}

	bNorm := norm2(b)
	if bNorm == 0 {
		bNorm = 1
	}

	x := make([]float64, n)
	r := append([]float64(nil), b...) // r = b - H*0
	z := make([]float64, n)
	p := make([]float64, n)
	ap := make([]float64, n)

	jacobi(z, precond, r)
	copy(p, z)
	rho := dot(r, z)

	for iter := 0; iter < maxIter; iter++ {
		applyOperator(ap, h, reg, p)
		denom := dot(p, ap)
		if denom == 0 {
			return nil, fmt.Errorf("%w: breakdown (p·Ap = 0) at iteration %d", ErrFailed, iter)
		}
		alpha := rho / denom
		for i := range x {
			x[i] += alpha * p[i]
			r[i] -= alpha * ap[i]
		}

		if norm2(r) <= tol*bNorm {
			return x, nil
		}

		jacobi(z, precond, r)
		rhoNew := dot(r, z)
		beta := rhoNew / rho
		for i := range p {
			p[i] = z[i] + beta*p[i]
		}
		rho = rhoNew
	}
	return nil, fmt.Errorf("%w: iteration cap %d reached without converging to tolerance %g", ErrFailed, maxIter, tol)
}

// applyOperator computes dst = H*x + reg*x.
func applyOperator(dst []float64, h Matrix, reg, x []float64) {
	h.MulVecTo(dst, false, x)
	for i := range dst {
		dst[i] += reg[i] * x[i]
	}
}

// jacobi applies the Jacobi preconditioner dst = r/precond elementwise.
// A zero precond[i] falls back to the identity at that coordinate
// rather than dividing by zero.
func jacobi(dst, precond, r []float64) {
	for i := range dst {
		if precond[i] == 0 {
			dst[i] = r[i]
			continue
		}
		dst[i] = r[i] / precond[i]
	}
}

func dot(a, b []float64) float64 {
	var s float64
	for i := range a {
		s += a[i] * b[i]
	}
	return s
}

func norm2(a []float64) float64 {
	return math.Sqrt(dot(a, a))
}
