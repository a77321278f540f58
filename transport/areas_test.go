package transport

import (
	"math"
	"testing"

	"github.com/ot2d/sdot/geom2d"
	"github.com/ot2d/sdot/laguerre"
)

// twoTriangleDiagram returns a diagram with two unit-right triangles
// (total area 1), the first owned by seed 0, the second by seed 1,
// sharing their hypotenuse as the sole internal (bisector) edge.
func twoTriangleDiagram() laguerre.Diagram {
	return laguerre.Diagram{
		XY: []geom2d.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}},
		T: [][3]uint32{
			{0, 1, 2},
			{0, 2, 3},
		},
		// Only areas and labels matter here, so adjacency is left fully
		// boundary; see diagonalSplitDiagram in the Hessian tests for the
		// same two triangles cross-linked across their diagonal (0,2).
		Tadj:  [][3]int32{{-1, -1, -1}, {-1, -1, -1}},
		Tseed: []uint32{0, 1},
	}
}

func TestCellAreas(t *testing.T) {
	t.Parallel()
	diag := twoTriangleDiagram()
	a := CellAreas(diag, 2, nil)
	if math.Abs(a[0]-0.5) > 1e-12 || math.Abs(a[1]-0.5) > 1e-12 {
		t.Errorf("CellAreas = %v, want [0.5, 0.5]", a)
	}
}

func TestCellAreasEmptyCellIsZero(t *testing.T) {
	t.Parallel()
	diag := twoTriangleDiagram()
	a := CellAreas(diag, 3, nil) // seed 2 owns no triangle
	if a[2] != 0 {
		t.Errorf("a[2] = %v, want 0", a[2])
	}
}

func TestCellAreasReusesDst(t *testing.T) {
	t.Parallel()
	diag := twoTriangleDiagram()
	dst := []float64{99, 99}
	got := CellAreas(diag, 2, dst)
	if &got[0] != &dst[0] {
		t.Error("CellAreas did not reuse the provided destination slice")
	}
}

func TestNonEmptyCells(t *testing.T) {
	t.Parallel()
	diag := twoTriangleDiagram()
	if got := nonEmptyCells(diag, 2); got != 2 {
		t.Errorf("nonEmptyCells = %d, want 2", got)
	}
	if got := nonEmptyCells(diag, 3); got != 2 {
		t.Errorf("nonEmptyCells = %d, want 2 (seed 2 has no triangle)", got)
	}
}
