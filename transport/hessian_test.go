package transport

import (
	"math"
	"testing"

	"github.com/ot2d/sdot/geom2d"
	"github.com/ot2d/sdot/laguerre"
)

// diagonalSplitDiagram returns the unit square split along its diagonal
// (0,0)-(1,1) into two triangles, in the canonical Tadj convention
// (column k = neighbor across the edge opposite vertex k). The only
// internal edge is the diagonal itself, shared between the two cells.
func diagonalSplitDiagram() laguerre.Diagram {
	return laguerre.Diagram{
		XY: []geom2d.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}},
		T: [][3]uint32{
			{0, 1, 2},
			{0, 2, 3},
		},
		Tadj: [][3]int32{
			{-1, 1, -1},
			{-1, -1, 0},
		},
		Tseed: []uint32{0, 1},
	}
}

func TestBuildHessianDiagonalSplit(t *testing.T) {
	t.Parallel()
	diag := diagonalSplitDiagram()
	seeds := []geom2d.Point{{X: 0.75, Y: 0.25}, {X: 0.25, Y: 0.75}}
	h := BuildHessian(diag, seeds, 2)

	// |diagonal| = sqrt(2), seed distance = sqrt(0.5); H[0,1] = -1.
	if got, want := h.At(0, 1), -1.0; math.Abs(got-want) > 1e-9 {
		t.Errorf("H[0,1] = %v, want %v", got, want)
	}
	if got, want := h.At(1, 0), -1.0; math.Abs(got-want) > 1e-9 {
		t.Errorf("H[1,0] = %v, want %v", got, want)
	}
	if got, want := h.At(0, 0), 1.0; math.Abs(got-want) > 1e-9 {
		t.Errorf("H[0,0] = %v, want %v", got, want)
	}
	if got, want := h.At(1, 1), 1.0; math.Abs(got-want) > 1e-9 {
		t.Errorf("H[1,1] = %v, want %v", got, want)
	}
}

func TestBuildHessianRowSumZero(t *testing.T) {
	t.Parallel()
	diag := diagonalSplitDiagram()
	seeds := []geom2d.Point{{X: 0.75, Y: 0.25}, {X: 0.25, Y: 0.75}}
	h := BuildHessian(diag, seeds, 2)
	n, _ := h.Dims()
	for i := 0; i < n; i++ {
		var sum float64
		for j := 0; j < n; j++ {
			sum += h.At(i, j)
		}
		if math.Abs(sum) > 1e-9 {
			t.Errorf("row %d sums to %v, want 0", i, sum)
		}
	}
}

func TestBuildHessianSkipsInteriorAndBoundaryEdges(t *testing.T) {
	t.Parallel()
	// A single triangle fully owned by one seed has no off-diagonal
	// contributions at all: every edge is a domain boundary.
	diag := laguerre.Diagram{
		XY:    []geom2d.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}},
		T:     [][3]uint32{{0, 1, 2}},
		Tadj:  [][3]int32{{-1, -1, -1}},
		Tseed: []uint32{0},
	}
	seeds := []geom2d.Point{{X: 0.25, Y: 0.25}}
	h := BuildHessian(diag, seeds, 1)
	if got := h.At(0, 0); got != 0 {
		t.Errorf("H[0,0] = %v, want 0 (no bisectors)", got)
	}

	// Two triangles owned by the same seed share an edge interior to
	// that seed's cell: it is not a bisector and contributes nothing.
	interior := diagonalSplitDiagram()
	interior.Tseed = []uint32{0, 0}
	h = BuildHessian(interior, seeds, 1)
	if got := h.At(0, 0); got != 0 {
		t.Errorf("H[0,0] = %v, want 0 (shared edge is interior to one cell)", got)
	}
}
