package domain

import (
	"math/rand/v2"

	"github.com/ot2d/sdot/geom2d"
)

// SampleUniform draws n points uniformly distributed over m by picking a
// triangle with probability proportional to its area and then a
// uniformly random point inside it via barycentric coordinates. It
// mirrors the tutorials' Points.sample_surface(nb_points=N) step.
func SampleUniform(rng *rand.Rand, m Mesh, n int) []geom2d.Point {
	areas := make([]float64, len(m.Triangles))
	var total float64
	for i, tri := range m.Triangles {
		t := geom2d.Triangle{m.Vertices[tri[0]], m.Vertices[tri[1]], m.Vertices[tri[2]]}
		areas[i] = t.Area()
		total += areas[i]
	}

	pts := make([]geom2d.Point, n)
	for k := 0; k < n; k++ {
		target := rng.Float64() * total
		idx := 0
		for acc := areas[0]; acc < target && idx < len(areas)-1; idx, acc = idx+1, acc+areas[idx+1] {
		}
		tri := m.Triangles[idx]
		a, b, c := m.Vertices[tri[0]], m.Vertices[tri[1]], m.Vertices[tri[2]]
		pts[k] = samplePointInTriangle(rng, a, b, c)
	}
	return pts
}

func samplePointInTriangle(rng *rand.Rand, a, b, c geom2d.Point) geom2d.Point {
	r1, r2 := rng.Float64(), rng.Float64()
	if r1+r2 > 1 {
		r1, r2 = 1-r1, 1-r2
	}
	ab := b.Sub(a)
	ac := c.Sub(a)
	return a.Add(ab.Scale(r1)).Add(ac.Scale(r2))
}

// Shrink maps each point p to origin + factor*(p-origin), clustering the
// seeds into a small zone around origin. It generalizes the tutorials'
// `coords[:] = 0.125 + coords/4.0` seed-shrinking trick (origin=(0,0),
// factor=0.25, followed by a 0.125 translation — expressed here as
// Shrink(pts, origin, factor) with origin chosen so the translation
// falls out of the scale-about-origin form).
func Shrink(pts []geom2d.Point, origin geom2d.Point, factor float64) []geom2d.Point {
	out := make([]geom2d.Point, len(pts))
	for i, p := range pts {
		out[i] = origin.Add(p.Sub(origin).Scale(factor))
	}
	return out
}
