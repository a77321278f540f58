package geom2d

// Triangle is a triangle in the plane given by its three vertices.
type Triangle [3]Point

// SignedArea returns the signed area of t. It is positive when the
// vertices are in counter-clockwise order.
func (t Triangle) SignedArea() float64 {
	return 0.5 * t[0].Sub(t[2]).Cross(t[1].Sub(t[2]))
}

// Area returns the unsigned area of t.
func (t Triangle) Area() float64 {
	a := t.SignedArea()
	if a < 0 {
		return -a
	}
	return a
}

// Centroid returns the arithmetic mean of t's vertices.
func (t Triangle) Centroid() Point {
	return t[0].Add(t[1]).Add(t[2]).Scale(1.0 / 3.0)
}

// Degenerate reports whether t has zero (within tol) area, e.g. because
// two of its vertices coincide.
func (t Triangle) Degenerate(tol float64) bool {
	a := t.Area()
	return a <= tol
}
