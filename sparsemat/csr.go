package sparsemat

import "sort"

// CSR is an immutable compressed-sparse-row matrix produced by
// (*TripletMatrix).Finalize.
type CSR struct {
	r, c     int
	rowStart []int
	colIdx   []int
	values   []float64
	diag     []float64
	hasDiag  bool
}

func newCSR(r, c int, data []triplet) *CSR {
	sort.Slice(data, func(a, b int) bool {
		if data[a].i != data[b].i {
			return data[a].i < data[b].i
		}
		return data[a].j < data[b].j
	})

	rowStart := make([]int, r+1)
	colIdx := make([]int, 0, len(data))
	values := make([]float64, 0, len(data))

	n := 0
	for n < len(data) {
		i, j := data[n].i, data[n].j
		sum := 0.0
		for n < len(data) && data[n].i == i && data[n].j == j {
			sum += data[n].v
			n++
		}
		if sum != 0 {
			colIdx = append(colIdx, j)
			values = append(values, sum)
			rowStart[i+1]++
		}
	}
	for i := 0; i < r; i++ {
		rowStart[i+1] += rowStart[i]
	}

	m := &CSR{r: r, c: c, rowStart: rowStart, colIdx: colIdx, values: values}
	if r == c {
		m.diag = make([]float64, r)
		m.hasDiag = true
		for i := 0; i < r; i++ {
			for k := rowStart[i]; k < rowStart[i+1]; k++ {
				if colIdx[k] == i {
					m.diag[i] = values[k]
				}
			}
		}
	}
	return m
}

// Dims returns the matrix's row and column count.
func (m *CSR) Dims() (r, c int) {
	return m.r, m.c
}

// NNZ returns the number of stored (non-cancelling) entries.
func (m *CSR) NNZ() int {
	return len(m.values)
}

// Diag returns the matrix's diagonal, extracted at Finalize time. It is
// only valid for square matrices.
func (m *CSR) Diag() []float64 {
	if !m.hasDiag {
		panic("sparsemat: Diag called on a non-square matrix")
	}
	return m.diag
}

// At returns the value stored at (i, j), or 0 if none is stored.
func (m *CSR) At(i, j int) float64 {
	if i < 0 || m.r <= i || j < 0 || m.c <= j {
		panic("sparsemat: index out of range")
	}
	for k := m.rowStart[i]; k < m.rowStart[i+1]; k++ {
		if m.colIdx[k] == j {
			return m.values[k]
		}
	}
	return 0
}

// MulVecTo computes y = M*x (or y = Mᵀ*x if trans) and stores the result
// in dst, which must have length equal to the appropriate dimension.
// MulVecTo zeroes dst before accumulating.
func (m *CSR) MulVecTo(dst []float64, trans bool, x []float64) {
	if trans {
		if len(x) != m.r || len(dst) != m.c {
			panic("sparsemat: dimension mismatch")
		}
	} else {
		if len(x) != m.c || len(dst) != m.r {
			panic("sparsemat: dimension mismatch")
		}
	}
	for k := range dst {
		dst[k] = 0
	}
	for i := 0; i < m.r; i++ {
		for k := m.rowStart[i]; k < m.rowStart[i+1]; k++ {
			j := m.colIdx[k]
			v := m.values[k]
			if trans {
				dst[j] += v * x[i]
			} else {
				dst[i] += v * x[j]
			}
		}
	}
}
