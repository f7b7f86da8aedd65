package geometry

import "fmt"

// Segment is an undirected line segment between A and B
type Segment struct {
	A, B Point
}

// Seg is shorthand for Segment{A: a, B: b}
func Seg(a, b Point) Segment {
	return Segment{A: a, B: b}
}

func (s Segment) String() string {
	return fmt.Sprintf("[%v - %v]", s.A, s.B)
}

// Equal reports whether s and o join the same two points, in either direction
func (s Segment) Equal(o Segment) bool {
	return (s.A == o.A && s.B == o.B) || (s.A == o.B && s.B == o.A)
}

// Canonical returns s with its endpoints ordered, so that two equal segments
// have identical canonical forms and can be used as map keys.
func (s Segment) Canonical() Segment {
	if s.B.Less(s.A) {
		return Segment{A: s.B, B: s.A}
	}
	return s
}

// Vector returns B - A
func (s Segment) Vector() Point {
	return s.B.Sub(s.A)
}

// Length returns the distance between the endpoints
func (s Segment) Length() float64 {
	return s.A.Distance(s.B)
}

// LengthSq returns the squared distance between the endpoints
func (s Segment) LengthSq() float64 {
	return s.A.DistanceSq(s.B)
}

// HasEndpoint reports whether p is one of the endpoints of s
func (s Segment) HasEndpoint(p Point) bool {
	return s.A == p || s.B == p
}

// PointAt returns A + t*(B - A)
func (s Segment) PointAt(t float64) Point {
	return s.A.Add(s.Vector().Scale(t))
}

// Intersect returns the point where s crosses o.
//
// Both segments are written as A + t*(B - A); the crossing is reported only
// when both parameters lie in [0, 1) and the directions are not parallel.
// Collinear overlapping segments are not resolved to a point and report false.
func (s Segment) Intersect(o Segment) (Point, bool) {
	r := s.Vector()
	q := o.Vector()
	c := r.Cross(q)
	if c > -ParallelEpsilon && c < ParallelEpsilon {
		return Point{}, false
	}

	w := o.A.Sub(s.A)
	t := w.Cross(q) / c
	u := w.Cross(r) / c
	if t < 0 || t >= 1 || u < 0 || u >= 1 {
		return Point{}, false
	}
	return s.PointAt(t), true
}

// Bounds returns the smallest rectangle holding both endpoints
func (s Segment) Bounds() Rect {
	return RectFromCorners(s.A, s.B)
}
