package native

import "github.com/ot2d/sdot/geom2d"

// cell is a convex polygon under construction: CCW vertices, paired with
// a tag per edge (vertices[k], vertices[(k+1)%n]) giving the seed index
// that cut that edge, or noTag if the edge is still an untouched piece
// of the domain boundary.
type cell struct {
	verts []geom2d.Point
	tags  []int32
}

const noTag = int32(-1)

// clipHalfPlane intersects c with the half-plane {x : x·normal <= rhs}
// and returns the result. Edges wholly inside keep their tag; the edge
// introduced by the cut, if any, is tagged with newTag. Because c is
// convex and the cut is linear, at most one new edge is ever introduced.
func clipHalfPlane(c cell, normal geom2d.Point, rhs float64, newTag int32) cell {
	n := len(c.verts)
	if n == 0 {
		return c
	}
	f := func(p geom2d.Point) float64 { return p.Dot(normal) - rhs }

	var out cell
	for k := 0; k < n; k++ {
		a, b := c.verts[k], c.verts[(k+1)%n]
		tag := c.tags[k]
		fa, fb := f(a), f(b)
		aIn, bIn := fa <= 0, fb <= 0

		switch {
		case aIn && bIn:
			out.verts = append(out.verts, a)
			out.tags = append(out.tags, tag)
		case aIn && !bIn:
			ip := segmentIntersect(a, b, fa, fb)
			out.verts = append(out.verts, a, ip)
			out.tags = append(out.tags, tag, newTag)
		case !aIn && bIn:
			ip := segmentIntersect(a, b, fa, fb)
			out.verts = append(out.verts, ip)
			out.tags = append(out.tags, tag)
		default:
			// both outside: edge fully dropped
		}
	}
	return out
}

// segmentIntersect returns the point where segment (a,b) crosses the
// clip line, given the half-plane function values fa, fb at its
// endpoints (fa, fb have opposite sign).
func segmentIntersect(a, b geom2d.Point, fa, fb float64) geom2d.Point {
	t := fa / (fa - fb)
	return a.Add(b.Sub(a).Scale(t))
}
