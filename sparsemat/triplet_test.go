package sparsemat

import (
	"math"
	"testing"
)

func TestFinalizeAccumulatesDuplicates(t *testing.T) {
	t.Parallel()
	m := NewTripletMatrix(3, 3)
	m.AddTriple(0, 0, 1)
	m.AddTriple(0, 0, 2) // duplicate, should sum to 3
	m.AddTriple(0, 1, -1)
	m.AddTriple(1, 1, 4)
	m.AddTriple(2, 2, 5)

	csr := m.Finalize()
	want := [3][3]float64{
		{3, -1, 0},
		{0, 4, 0},
		{0, 0, 5},
	}
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if got := csr.At(i, j); got != want[i][j] {
				t.Errorf("At(%d,%d) = %v, want %v", i, j, got, want[i][j])
			}
		}
	}
}

func TestFinalizeDropsExactCancellation(t *testing.T) {
	t.Parallel()
	m := NewTripletMatrix(2, 2)
	m.AddTriple(0, 0, 1)
	m.AddTriple(0, 0, -1)
	csr := m.Finalize()
	if csr.NNZ() != 0 {
		t.Errorf("NNZ() = %d, want 0 after exact cancellation", csr.NNZ())
	}
}

func TestDiag(t *testing.T) {
	t.Parallel()
	m := NewTripletMatrix(3, 3)
	m.AddTriple(0, 0, 1)
	m.AddTriple(1, 1, 2)
	m.AddTriple(2, 2, 3)
	m.AddTriple(0, 1, 9)
	csr := m.Finalize()
	want := []float64{1, 2, 3}
	got := csr.Diag()
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Diag()[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestAddToDiagonal(t *testing.T) {
	t.Parallel()
	m := NewTripletMatrix(2, 2)
	m.AddTriple(0, 0, 1)
	m.AddToDiagonal([]float64{0.5, 2})
	csr := m.Finalize()
	if got, want := csr.At(0, 0), 1.5; got != want {
		t.Errorf("At(0,0) = %v, want %v", got, want)
	}
	if got, want := csr.At(1, 1), 2.0; got != want {
		t.Errorf("At(1,1) = %v, want %v", got, want)
	}
}

func TestMulVecTo(t *testing.T) {
	t.Parallel()
	m := NewTripletMatrix(2, 2)
	m.AddTriple(0, 0, 2)
	m.AddTriple(0, 1, 1)
	m.AddTriple(1, 0, 1)
	m.AddTriple(1, 1, 3)
	csr := m.Finalize()

	x := []float64{1, 2}
	dst := make([]float64, 2)
	csr.MulVecTo(dst, false, x)
	want := []float64{4, 7}
	for i := range want {
		if math.Abs(dst[i]-want[i]) > 1e-12 {
			t.Errorf("MulVecTo()[%d] = %v, want %v", i, dst[i], want[i])
		}
	}
}

func TestAddTriplesIgnoreOOB(t *testing.T) {
	t.Parallel()
	m := NewTripletMatrix(2, 2)
	m.AddTriples([]int{0, 5}, []int{0, 5}, []float64{1, 1}, true)
	csr := m.Finalize()
	if got, want := csr.At(0, 0), 1.0; got != want {
		t.Errorf("At(0,0) = %v, want %v", got, want)
	}
}

func TestAddTriplesRejectsOOB(t *testing.T) {
	t.Parallel()
	defer func() {
		if recover() == nil {
			t.Error("expected panic on out-of-bounds triple without ignoreOOB")
		}
	}()
	m := NewTripletMatrix(2, 2)
	m.AddTriples([]int{5}, []int{5}, []float64{1}, false)
}
