package transport

import (
	"github.com/ot2d/sdot/geom2d"
	"github.com/ot2d/sdot/laguerre"
	"github.com/ot2d/sdot/sparsemat"
)

// BuildHessian assembles the P1-Laplacian sparse matrix H(ψ) of the
// Kantorovich dual from diag and the seed positions:
//
//	H[i,j] = -|eij| / (2*||xi-xj||)   for i != j with |eij| > 0
//	H[i,i] = -sum_{j!=i} H[i,j]
//
// where eij is the portion of the bisector between seeds i and j
// realized as internal triangle edges of diag. A single pass over every
// triangle's three edges finds the surviving (non-boundary,
// cross-cell) quadruplets and scatter-adds their contribution; each
// bisector edge is visited once from either side, which is exactly
// what symmetrizes H.
func BuildHessian(diag laguerre.Diagram, seeds []geom2d.Point, n int) *sparsemat.CSR {
	tm := sparsemat.NewTripletMatrix(n, n)
	rowSum := make([]float64, n)

	for t := 0; t < diag.NumTriangles(); t++ {
		tri := diag.T[t]
		i := diag.Tseed[t]
		for k := 0; k < 3; k++ {
			jRaw := diag.Tadj[t][k]
			if jRaw < 0 {
				continue // edge lies on ∂Ω
			}
			j := diag.Tseed[jRaw]
			if j == i {
				continue // edge interior to seed i's own cell
			}
			u := diag.XY[tri[(k+1)%3]]
			v := diag.XY[tri[(k+2)%3]]
			edgeLen := geom2d.Dist(u, v)
			if edgeLen == 0 {
				continue // degenerate triangle contributes nothing
			}
			dist := geom2d.Dist(seeds[i], seeds[j])
			c := -edgeLen / (2 * dist)
			tm.AddTriple(int(i), int(j), c)
			rowSum[i] += c
		}
	}

	diagVals := make([]float64, n)
	for i, s := range rowSum {
		diagVals[i] = -s
	}
	tm.AddToDiagonal(diagVals)
	return tm.Finalize()
}
