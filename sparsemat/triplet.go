// Package sparsemat implements the triplet-accumulation sparse matrix
// builder used to assemble the Kantorovich dual's Hessian: callers push
// (row, col, value) triples in any order, possibly repeating the same
// coordinate many times, and Finalize collapses them into an immutable
// compressed-sparse-row matrix.
package sparsemat

import "fmt"

// TripletMatrix accumulates (i, j, value) triples for an r×c matrix.
// Repeated coordinates accumulate by summation, matching the scatter-add
// assembly used by the Hessian of the Laguerre-diagram Laplacian. The
// zero value is not usable; construct with NewTripletMatrix.
type TripletMatrix struct {
	r, c int
	data []triplet
}

type triplet struct {
	i, j int
	v    float64
}

// NewTripletMatrix returns an empty r×c triplet matrix.
func NewTripletMatrix(r, c int) *TripletMatrix {
	if r <= 0 || c <= 0 {
		panic("sparsemat: invalid shape")
	}
	return &TripletMatrix{r: r, c: c}
}

// Dims returns the matrix's row and column count.
func (m *TripletMatrix) Dims() (r, c int) {
	return m.r, m.c
}

// AddTriple accumulates v at (i, j). Panics if i or j are out of range;
// use AddTriples with ignoreOOB to skip invalid coordinates instead.
func (m *TripletMatrix) AddTriple(i, j int, v float64) {
	if i < 0 || m.r <= i {
		panic(fmt.Sprintf("sparsemat: row index %d out of range [0,%d)", i, m.r))
	}
	if j < 0 || m.c <= j {
		panic(fmt.Sprintf("sparsemat: column index %d out of range [0,%d)", j, m.c))
	}
	if v == 0 {
		return
	}
	m.data = append(m.data, triplet{i, j, v})
}

// AddTriples accumulates the parallel slices I, J, V as triples
// (I[k], J[k], V[k]). If ignoreOOB is true, out-of-range coordinates are
// silently dropped; otherwise AddTriples panics on the first one, same
// as AddTriple.
func (m *TripletMatrix) AddTriples(i, j []int, v []float64, ignoreOOB bool) {
	if len(i) != len(j) || len(i) != len(v) {
		panic("sparsemat: mismatched triple slice lengths")
	}
	for k := range i {
		if ignoreOOB && (i[k] < 0 || m.r <= i[k] || j[k] < 0 || m.c <= j[k]) {
			continue
		}
		m.AddTriple(i[k], j[k], v[k])
	}
}

// AddToDiagonal adds d[k] to the (k,k) entry for every k in range.
// len(d) must not exceed min(r,c).
func (m *TripletMatrix) AddToDiagonal(d []float64) {
	for k, dv := range d {
		m.AddTriple(k, k, dv)
	}
}

// NNZ returns the number of accumulated (possibly repeated) triples.
func (m *TripletMatrix) NNZ() int {
	return len(m.data)
}

// Finalize collapses the accumulated triples into an immutable CSR
// matrix, summing repeated coordinates and dropping entries that sum to
// exactly zero.
func (m *TripletMatrix) Finalize() *CSR {
	return newCSR(m.r, m.c, m.data)
}
