package linsolve

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// solveDirect factorizes H+diag(reg) with a Cholesky decomposition and
// solves for p. It mirrors the use of gonum.org/v1/gonum/mat's
// SymDense/Cholesky pair: build the dense symmetric view once, factorize
// it, and solve against the right-hand side vector.
func solveDirect(h Matrix, n int, reg, b []float64) ([]float64, error) {
	data := make([]float64, n*n)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			v := h.At(i, j)
			if i == j {
				v += reg[i]
			}
			data[i*n+j] = v
			data[j*n+i] = v
		}
	}
	sym := mat.NewSymDense(n, data)

	var chol mat.Cholesky
	if ok := chol.Factorize(sym); !ok {
		return nil, fmt.Errorf("%w: Cholesky factorization is not positive definite", ErrFailed)
	}

	var x mat.VecDense
	rhs := mat.NewVecDense(n, append([]float64(nil), b...))
	if err := chol.SolveVecTo(&x, rhs); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFailed, err)
	}

	p := make([]float64, n)
	for i := 0; i < n; i++ {
		p[i] = x.AtVec(i)
	}
	return p, nil
}
