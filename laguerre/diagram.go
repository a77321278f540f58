// Package laguerre defines the data contract between the optimal
// transport core and the external producer that clips a Laguerre
// diagram out of (Ω, seeds, ψ), and adapts that producer's raw,
// untriangulated cells into the canonical triangulated form the rest
// of the core consumes.
//
// Construction of the diagram itself is out of scope for this module
// (see spec §1): Builder is the interface an external collaborator must
// satisfy, and laguerre/native ships one concrete, unoptimized
// implementation so the solver is runnable end to end without a real
// computational-geometry dependency.
package laguerre

import (
	"errors"

	"github.com/ot2d/sdot/domain"
	"github.com/ot2d/sdot/geom2d"
)

// ErrEmptyCell is returned by a Builder when some seed's Laguerre cell
// is empty for the requested weights, before any vertex merging takes
// place. The Newton–KMT driver treats this as a line-search rejection
// (see the transport package) rather than a fatal error.
var ErrEmptyCell = errors.New("laguerre: a seed's Laguerre cell is empty")

// RawDiagram is the clipped, but not yet triangulated or merged, output
// a Builder hands back: one convex polygonal cell per seed. Faces[c]
// lists cell c's vertices, as indices into XY, in CCW order; a Builder
// is free to give every cell its own private copy of a shared boundary
// vertex, since two independently clipped neighboring cells will not in
// general compute bit-identical coordinates for the bisector edge they
// share — Adapter.Build merges near-coincident vertices before
// triangulating. FaceAdj[c][k] names what lies across the edge
// (Faces[c][k], Faces[c][(k+1)%len(Faces[c]))): the index of the seed
// whose cell lies on the other side, or geom2d.NoIndex if that edge lies
// on ∂Ω. Seed[c] is the seed index cell c belongs to.
type RawDiagram struct {
	XY      []geom2d.Point
	Faces   [][]uint32
	FaceAdj [][]uint32
	Seed    []uint32
}

// Builder computes the Laguerre diagram of a weighted point set clipped
// to a domain, as one convex polygonal cell per seed. It is a pure
// function of its arguments: for the same (omega, seeds, weights) it
// returns the same diagram. Builder does not triangulate its cells or
// merge coincident vertices between them; Adapter.Build does both.
type Builder interface {
	Build(omega domain.Mesh, seeds []geom2d.Point, weights []float64) (RawDiagram, error)
}

// Diagram is the normalized, canonical-adjacency form of a Laguerre
// diagram that the transport package's gradient and Hessian assemblers
// consume. Column k of Tadj gives the neighboring triangle across the
// edge opposite vertex k, i.e. the edge (T[t][(k+1)%3], T[t][(k+2)%3]).
// NO_INDEX is represented as -1.
type Diagram struct {
	XY    []geom2d.Point
	T     [][3]uint32
	Tadj  [][3]int32
	Tseed []uint32
}

// NumTriangles returns the number of triangles in the diagram.
func (d Diagram) NumTriangles() int {
	return len(d.T)
}

// Triangle returns the geometric triangle for triangle index t.
func (d Diagram) Triangle(t int) geom2d.Triangle {
	v := d.T[t]
	return geom2d.Triangle{d.XY[v[0]], d.XY[v[1]], d.XY[v[2]]}
}
