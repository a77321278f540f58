// Package geom2d provides the small set of planar geometry primitives
// shared by the optimal-transport core: points, triangles, and the
// typed index conventions used to describe a triangulated mesh.
package geom2d

import "math"

// Point is a point (or free vector) in the plane.
type Point struct {
	X, Y float64
}

// Add returns the vector sum of p and q.
func (p Point) Add(q Point) Point {
	return Point{p.X + q.X, p.Y + q.Y}
}

// Sub returns p minus q.
func (p Point) Sub(q Point) Point {
	return Point{p.X - q.X, p.Y - q.Y}
}

// Scale returns p scaled by f.
func (p Point) Scale(f float64) Point {
	return Point{p.X * f, p.Y * f}
}

// Dot returns the dot product p·q.
func (p Point) Dot(q Point) float64 {
	return p.X*q.X + p.Y*q.Y
}

// Cross returns the z-component of the 3D cross product p×q.
func (p Point) Cross(q Point) float64 {
	return p.X*q.Y - p.Y*q.X
}

// Norm returns the Euclidean length of p.
func (p Point) Norm() float64 {
	return math.Hypot(p.X, p.Y)
}

// Norm2 returns the squared Euclidean length of p.
func (p Point) Norm2() float64 {
	return p.X*p.X + p.Y*p.Y
}

// Dist returns the Euclidean distance between p and q.
func Dist(p, q Point) float64 {
	return p.Sub(q).Norm()
}

// Dist2 returns the squared Euclidean distance between p and q.
func Dist2(p, q Point) float64 {
	return p.Sub(q).Norm2()
}
