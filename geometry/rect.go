package geometry

import "math"

// Rect is an axis-aligned rectangle described by its center and half extents
type Rect struct {
	Center     Point
	HalfWidth  float64
	HalfHeight float64
}

// NewRect builds a rectangle centered on center with the given full size
func NewRect(center Point, width, height float64) Rect {
	return Rect{Center: center, HalfWidth: width / 2, HalfHeight: height / 2}
}

// RectFromCorners builds the rectangle spanning the two corners
func RectFromCorners(a, b Point) Rect {
	minX, maxX := math.Min(a.X, b.X), math.Max(a.X, b.X)
	minY, maxY := math.Min(a.Y, b.Y), math.Max(a.Y, b.Y)
	return Rect{
		Center:     Point{(minX + maxX) / 2, (minY + maxY) / 2},
		HalfWidth:  (maxX - minX) / 2,
		HalfHeight: (maxY - minY) / 2,
	}
}

// Min returns the corner with the smallest coordinates
func (r Rect) Min() Point {
	return Point{r.Center.X - r.HalfWidth, r.Center.Y - r.HalfHeight}
}

// Max returns the corner with the largest coordinates
func (r Rect) Max() Point {
	return Point{r.Center.X + r.HalfWidth, r.Center.Y + r.HalfHeight}
}

// Width returns the full width
func (r Rect) Width() float64 { return 2 * r.HalfWidth }

// Height returns the full height
func (r Rect) Height() float64 { return 2 * r.HalfHeight }

// Area returns width * height
func (r Rect) Area() float64 { return r.Width() * r.Height() }

// Overlaps reports whether r and o share a region of positive area.
// Rectangles that only touch along an edge or a corner do not overlap.
func (r Rect) Overlaps(o Rect) bool {
	dx := math.Abs(r.Center.X - o.Center.X)
	dy := math.Abs(r.Center.Y - o.Center.Y)
	return dx < r.HalfWidth+o.HalfWidth && dy < r.HalfHeight+o.HalfHeight
}

// Contains reports whether p lies strictly inside r
func (r Rect) Contains(p Point) bool {
	return math.Abs(p.X-r.Center.X) < r.HalfWidth && math.Abs(p.Y-r.Center.Y) < r.HalfHeight
}

// Edges returns the left, right, top and bottom edges of r
func (r Rect) Edges() [4]Segment {
	lo, hi := r.Min(), r.Max()
	return [4]Segment{
		{Point{lo.X, lo.Y}, Point{lo.X, hi.Y}},
		{Point{hi.X, lo.Y}, Point{hi.X, hi.Y}},
		{Point{lo.X, lo.Y}, Point{hi.X, lo.Y}},
		{Point{lo.X, hi.Y}, Point{hi.X, hi.Y}},
	}
}

// IntersectSegment returns every point where s crosses an edge of r.
// The result holds between zero and four points in no particular order.
func (r Rect) IntersectSegment(s Segment) []Point {
	var hits []Point
	for _, edge := range r.Edges() {
		if p, ok := s.Intersect(edge); ok {
			hits = append(hits, p)
		}
	}
	return hits
}

// Crossed reports whether s passes through r, either by crossing one of its
// edges or by having an endpoint strictly inside it.
func (r Rect) Crossed(s Segment) bool {
	if r.Contains(s.A) || r.Contains(s.B) {
		return true
	}
	return len(r.IntersectSegment(s)) > 0
}
