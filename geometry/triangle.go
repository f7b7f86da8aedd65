package geometry

import "math"

// Triangle is three points with a circumcircle computed once at construction
type Triangle struct {
	A, B, C Point

	circumcenter Point
	radiusSq     float64
	degenerate   bool
}

// NewTriangle builds the triangle abc and computes its circumcircle.
// Collinear points produce a degenerate triangle with no circumcircle.
func NewTriangle(a, b, c Point) Triangle {
	t := Triangle{A: a, B: b, C: c}

	d := 2 * (a.X*(b.Y-c.Y) + b.X*(c.Y-a.Y) + c.X*(a.Y-b.Y))
	if math.Abs(d) <= Epsilon {
		t.degenerate = true
		return t
	}

	aDot, bDot, cDot := a.Dot(a), b.Dot(b), c.Dot(c)
	ux := (aDot*(b.Y-c.Y) + bDot*(c.Y-a.Y) + cDot*(a.Y-b.Y)) / d
	uy := (aDot*(c.X-b.X) + bDot*(a.X-c.X) + cDot*(b.X-a.X)) / d
	t.circumcenter = Point{ux, uy}
	t.radiusSq = a.DistanceSq(t.circumcenter)
	return t
}

// Degenerate reports whether the three points are collinear
func (t Triangle) Degenerate() bool {
	return t.degenerate
}

// Circumcenter returns the center of the circumcircle. The second result is
// false for degenerate triangles.
func (t Triangle) Circumcenter() (Point, bool) {
	return t.circumcenter, !t.degenerate
}

// Circumradius returns the radius of the circumcircle, or 0 when degenerate
func (t Triangle) Circumradius() float64 {
	return math.Sqrt(t.radiusSq)
}

// InCircumcircle reports whether p lies strictly inside the circumcircle.
// A degenerate triangle contains nothing.
func (t Triangle) InCircumcircle(p Point) bool {
	if t.degenerate {
		return false
	}
	return p.DistanceSq(t.circumcenter) < t.radiusSq
}

// Points returns the vertices in construction order
func (t Triangle) Points() [3]Point {
	return [3]Point{t.A, t.B, t.C}
}

// Edges returns (a,b), (b,c) and (c,a)
func (t Triangle) Edges() [3]Segment {
	return [3]Segment{{t.A, t.B}, {t.B, t.C}, {t.C, t.A}}
}

// HasVertex reports whether p is one of the vertices
func (t Triangle) HasVertex(p Point) bool {
	return t.A == p || t.B == p || t.C == p
}

// SharesVertex reports whether t and o have at least one vertex in common
func (t Triangle) SharesVertex(o Triangle) bool {
	return t.HasVertex(o.A) || t.HasVertex(o.B) || t.HasVertex(o.C)
}

// HasEdge reports whether s is one of the edges of t, in either direction
func (t Triangle) HasEdge(s Segment) bool {
	for _, e := range t.Edges() {
		if e.Equal(s) {
			return true
		}
	}
	return false
}
