package transport

import "github.com/ot2d/sdot/laguerre"

// CellAreas computes a(ψ), the length-N vector whose i-th entry is the
// measure of seed i's Laguerre cell: the sum of the areas of the
// triangles diag labels with seed i. Cells with no triangle get area 0.
// If dst is non-nil it is reused (and zeroed first); otherwise a new
// slice is allocated.
func CellAreas(diag laguerre.Diagram, n int, dst []float64) []float64 {
	if dst == nil {
		dst = make([]float64, n)
	} else {
		for i := range dst {
			dst[i] = 0
		}
	}
	for t := 0; t < diag.NumTriangles(); t++ {
		dst[diag.Tseed[t]] += diag.Triangle(t).Area()
	}
	return dst
}

// nonEmptyCells returns the number of distinct seed labels that own at
// least one triangle of diag. The Newton driver's line search rejects a
// trial step unless this equals n (every cell non-empty), before it
// applies the KMT checks.
func nonEmptyCells(diag laguerre.Diagram, n int) int {
	seen := make([]bool, n)
	count := 0
	for t := 0; t < diag.NumTriangles(); t++ {
		i := diag.Tseed[t]
		if !seen[i] {
			seen[i] = true
			count++
		}
	}
	return count
}
