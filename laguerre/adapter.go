package laguerre

import (
	"github.com/ot2d/sdot/domain"
	"github.com/ot2d/sdot/geom2d"
)

// mergeTolerance is the distance below which two vertices produced by a
// Builder are considered coincident and collapsed to one, per spec §4.4.
const mergeTolerance = 1e-10

// Adapter wraps an external Builder and normalizes its output into the
// canonical Diagram form. It keeps no diagram storage of its own: every
// call to Build allocates a new Diagram, buffers are not reused across
// calls, and a Diagram returned by an earlier call stays valid.
type Adapter struct {
	builder Builder
}

// NewAdapter wraps b.
func NewAdapter(b Builder) *Adapter {
	return &Adapter{builder: b}
}

// Build requests a diagram for (omega, seeds, weights) from the wrapped
// Builder and normalizes it:
//
//  1. Merge coincident vertices (distance ≤ 1e-10) so that a bisector
//     edge shared by two independently clipped cells resolves to the
//     same pair of vertex indices on both sides.
//  2. Fan-triangulate every (now merged) polygonal cell from its vertex
//     0, and cross-link the fan triangles of neighboring cells across
//     the bisector edges FaceAdj named, by matching each edge against
//     its (exactly, post-merge) reversed counterpart on the other
//     cell's fan.
//  3. Permute the resulting native adjacency columns [1,2,0] so that
//     column k gives the neighbor across the edge opposite vertex k,
//     the convention this module's assemblers expect (the fan
//     triangulation above naturally produces column k = neighbor
//     across edge (k,(k+1)%3) instead, the same native convention a
//     Builder's own output would use if it triangulated).
//
// Any degenerate (near-zero-area) triangle this produces at a cell
// boundary is left in place; it naturally contributes 0 to both the
// area vector and the Hessian (spec §4.6).
func (a *Adapter) Build(omega domain.Mesh, seeds []geom2d.Point, weights []float64) (Diagram, error) {
	raw, err := a.builder.Build(omega, seeds, weights)
	if err != nil {
		return Diagram{}, err
	}

	xy, remap := mergeVertices(raw.XY, mergeTolerance)
	t, tadjNative, tseed := triangulateFaces(raw, remap)

	tadj := make([][3]int32, len(tadjNative))
	for i, nb := range tadjNative {
		tadj[i] = [3]int32{nb[1], nb[2], nb[0]}
	}

	return Diagram{XY: xy, T: t, Tadj: tadj, Tseed: tseed}, nil
}

// triangulateFaces fan-triangulates every cell of raw from its vertex 0
// (vertex indices already passed through remap), and cross-links the
// fan triangles of neighboring cells across the bisector edges
// raw.FaceAdj named. The returned Tadj uses the native convention:
// column k is the neighbor across edge (k,(k+1)%3).
func triangulateFaces(raw RawDiagram, remap []uint32) ([][3]uint32, [][3]int32, []uint32) {
	var (
		t     [][3]uint32
		tadj  [][3]int32
		tseed []uint32
	)

	// pending records one side of a bisector edge, keyed by its
	// (already-merged) endpoints, awaiting the matching, reversed edge
	// from the cell on the other side. Since merging gives both sides of
	// a physical edge identical vertex indices, the match is an exact
	// map lookup, not a geometric search.
	type pendingEdge struct{ tri, col int }
	pending := make(map[[2]uint32]pendingEdge)
	link := func(triIdx, col int, a, b uint32) {
		key := [2]uint32{b, a}
		if other, ok := pending[key]; ok {
			tadj[triIdx][col] = int32(other.tri)
			tadj[other.tri][other.col] = int32(triIdx)
			delete(pending, key)
			return
		}
		pending[[2]uint32{a, b}] = pendingEdge{tri: triIdx, col: col}
	}

	for c, face := range raw.Faces {
		m := len(face)
		verts := make([]uint32, m)
		for k, v := range face {
			verts[k] = remap[v]
		}
		tagOf := func(k int) int32 { return geom2d.ToSigned(raw.FaceAdj[c][k]) }

		for k := 1; k <= m-2; k++ {
			triIdx := len(t)
			p0, pk, pk1 := verts[0], verts[k], verts[(k+1)%m]
			t = append(t, [3]uint32{p0, pk, pk1})
			tseed = append(tseed, raw.Seed[c])

			row := [3]int32{-1, -1, -1}
			if k > 1 {
				row[0] = int32(triIdx - 1)
			}
			if k < m-2 {
				row[2] = int32(triIdx + 1)
			}
			tadj = append(tadj, row)

			if k == 1 && tagOf(0) >= 0 {
				link(triIdx, 0, p0, pk)
			}
			if k == m-2 && tagOf(m-1) >= 0 {
				link(triIdx, 2, pk1, p0)
			}
			if tagOf(k) >= 0 {
				link(triIdx, 1, pk, pk1)
			}
		}
	}

	return t, tadj, tseed
}

// mergeVertices collapses points within tol of each other, returning the
// deduplicated point list and a remap slice such that remap[i] is the
// new index of the original vertex i. The algorithm is the O(V²)
// all-pairs comparison adequate for the mesh sizes this module targets;
// a production adapter facing large meshes would bucket by a spatial
// grid first.
func mergeVertices(xy []geom2d.Point, tol float64) ([]geom2d.Point, []uint32) {
	remap := make([]uint32, len(xy))
	merged := make([]geom2d.Point, 0, len(xy))
	for i, p := range xy {
		found := -1
		for j, q := range merged {
			if geom2d.Dist2(p, q) <= tol*tol {
				found = j
				break
			}
		}
		if found < 0 {
			merged = append(merged, p)
			found = len(merged) - 1
		}
		remap[i] = uint32(found)
	}
	return merged, remap
}
