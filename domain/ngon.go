package domain

import (
	"math"

	"github.com/ot2d/sdot/geom2d"
)

// NewRegularNGon builds a regular n-sided polygon centered at the
// origin with the given circumradius, fan-triangulated about its
// centroid. n must be at least 3. Vertex 1 lies on the positive x axis,
// so n=4 gives a square rotated by 45° about the origin, not the unit
// square [0,1]² (use UnitSquare for that).
func NewRegularNGon(n int, radius float64) Mesh {
	if n < 3 {
		panic("domain: NewRegularNGon requires at least 3 sides")
	}
	verts := make([]geom2d.Point, n+1)
	verts[0] = geom2d.Point{} // centroid, vertex 0
	for k := 0; k < n; k++ {
		theta := 2 * math.Pi * float64(k) / float64(n)
		verts[k+1] = geom2d.Point{X: radius * math.Cos(theta), Y: radius * math.Sin(theta)}
	}
	tris := make([][3]uint32, n)
	for k := 0; k < n; k++ {
		next := uint32((k+1)%n) + 1
		tris[k] = [3]uint32{0, uint32(k + 1), next}
	}
	return Mesh{Vertices: verts, Triangles: tris}
}

// UnitSquare returns the domain [0,1]² as two triangles, the domain
// used throughout the spec's worked examples.
func UnitSquare() Mesh {
	return Mesh{
		Vertices: []geom2d.Point{
			{0, 0}, {1, 0}, {1, 1}, {0, 1},
		},
		Triangles: [][3]uint32{
			{0, 1, 2},
			{0, 2, 3},
		},
	}
}
