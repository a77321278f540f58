// Package domain builds the bounded polygonal transport domain Ω and
// samples seed points inside it. None of this is part of the
// optimal-transport core (spec treats Ω and the seeds as plain data);
// it exists so the CLI and the test suite can construct realistic
// inputs without a GUI or an external mesh tool.
package domain

import "github.com/ot2d/sdot/geom2d"

// Mesh is a triangulated bounded polygonal domain Ω.
type Mesh struct {
	Vertices  []geom2d.Point
	Triangles [][3]uint32
}

// Area returns the total area of the mesh, the measure |Ω|.
func (m Mesh) Area() float64 {
	var total float64
	for _, tri := range m.Triangles {
		t := geom2d.Triangle{m.Vertices[tri[0]], m.Vertices[tri[1]], m.Vertices[tri[2]]}
		total += t.Area()
	}
	return total
}

// Contains reports whether p lies inside (or on the boundary of) one of
// the mesh's triangles. It is a simple linear scan, adequate for the
// small domains used by the CLI and tests.
func (m Mesh) Contains(p geom2d.Point) bool {
	for _, tri := range m.Triangles {
		a, b, c := m.Vertices[tri[0]], m.Vertices[tri[1]], m.Vertices[tri[2]]
		if pointInTriangle(p, a, b, c) {
			return true
		}
	}
	return false
}

// BoundaryLoop returns the vertices of the mesh's outer boundary, in
// CCW order, by stitching together the triangle edges that appear in
// only one triangle. It assumes m is simply connected with consistently
// oriented (CCW) triangles, true of every mesh this package builds.
func (m Mesh) BoundaryLoop() []geom2d.Point {
	next := make(map[uint32]uint32)
	count := make(map[[2]uint32]int)
	for _, tri := range m.Triangles {
		for k := 0; k < 3; k++ {
			a, b := tri[k], tri[(k+1)%3]
			count[[2]uint32{a, b}]++
		}
	}
	for key := range count {
		a, b := key[0], key[1]
		if count[[2]uint32{b, a}] == 0 {
			next[a] = b
		}
	}
	if len(next) == 0 {
		return nil
	}
	var start uint32
	for v := range next {
		start = v
		break
	}
	loop := []geom2d.Point{m.Vertices[start]}
	for cur := start; ; {
		nv, ok := next[cur]
		if !ok || nv == start {
			break
		}
		loop = append(loop, m.Vertices[nv])
		cur = nv
	}
	return loop
}

func pointInTriangle(p, a, b, c geom2d.Point) bool {
	d1 := b.Sub(a).Cross(p.Sub(a))
	d2 := c.Sub(b).Cross(p.Sub(b))
	d3 := a.Sub(c).Cross(p.Sub(c))
	hasNeg := d1 < 0 || d2 < 0 || d3 < 0
	hasPos := d1 > 0 || d2 > 0 || d3 > 0
	return !(hasNeg && hasPos)
}
