// Package native is a minimal, unoptimized implementation of
// laguerre.Builder: it clips the domain polygon against each seed's
// power-distance bisectors with the rest of the seeds. It hands back
// one convex polygonal cell per seed, untriangulated and with no
// attempt to merge vertices across cells — both the laguerre package's
// responsibility — so the solver is runnable end to end without wiring
// in a real computational-geometry library, not as a performant
// reference.
package native

import (
	"github.com/ot2d/sdot/domain"
	"github.com/ot2d/sdot/geom2d"
	"github.com/ot2d/sdot/laguerre"
)

// Builder clips Ω against the power bisectors of a weighted point set,
// satisfying laguerre.Builder.
type Builder struct{}

// NewBuilder returns a ready-to-use Builder.
func NewBuilder() Builder { return Builder{} }

var _ laguerre.Builder = Builder{}

// Build implements laguerre.Builder.
func (Builder) Build(omega domain.Mesh, seeds []geom2d.Point, weights []float64) (laguerre.RawDiagram, error) {
	boundary := omega.BoundaryLoop()
	n := len(seeds)
	if weights == nil {
		weights = make([]float64, n)
	}

	var (
		xy    []geom2d.Point
		faces [][]uint32
		adj   [][]uint32
		seed  []uint32
	)

	for i := 0; i < n; i++ {
		c := cell{verts: append([]geom2d.Point(nil), boundary...)}
		c.tags = make([]int32, len(c.verts))
		for k := range c.tags {
			c.tags[k] = noTag
		}
		for j := 0; j < n; j++ {
			if j == i || len(c.verts) == 0 {
				continue
			}
			normal := seeds[j].Sub(seeds[i])
			rhs := 0.5 * (seeds[j].Norm2() - weights[j] - seeds[i].Norm2() + weights[i])
			c = clipHalfPlane(c, normal, rhs, int32(j))
		}
		if len(c.verts) < 3 {
			return laguerre.RawDiagram{}, laguerre.ErrEmptyCell
		}

		base := uint32(len(xy))
		xy = append(xy, c.verts...)

		face := make([]uint32, len(c.verts))
		faceAdj := make([]uint32, len(c.verts))
		for k := range c.verts {
			face[k] = base + uint32(k)
			if c.tags[k] == noTag {
				faceAdj[k] = geom2d.NoIndex
			} else {
				faceAdj[k] = uint32(c.tags[k])
			}
		}
		faces = append(faces, face)
		adj = append(adj, faceAdj)
		seed = append(seed, uint32(i))
	}

	return laguerre.RawDiagram{XY: xy, Faces: faces, FaceAdj: adj, Seed: seed}, nil
}
