package geometry

import (
	"fmt"
	"math"
)

// Point is a 2-D position or vector. Equality is exact coordinate equality.
type Point struct {
	X, Y float64
}

// Pt is shorthand for Point{X: x, Y: y}
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

func (p Point) String() string {
	return fmt.Sprintf("{x: %g, y: %g}", p.X, p.Y)
}

// Add returns p + o
func (p Point) Add(o Point) Point {
	return Point{p.X + o.X, p.Y + o.Y}
}

// Sub returns p - o
func (p Point) Sub(o Point) Point {
	return Point{p.X - o.X, p.Y - o.Y}
}

// Scale multiplies both coordinates by f
func (p Point) Scale(f float64) Point {
	return Point{p.X * f, p.Y * f}
}

// Dot returns the dot product of p and o
func (p Point) Dot(o Point) float64 {
	return p.X*o.X + p.Y*o.Y
}

// Cross returns the z component of the 3-D cross product of p and o
func (p Point) Cross(o Point) float64 {
	return p.X*o.Y - p.Y*o.X
}

// LengthSq returns the squared length of p
func (p Point) LengthSq() float64 {
	return p.Dot(p)
}

// Length returns the euclidean length of p
func (p Point) Length() float64 {
	return math.Sqrt(p.LengthSq())
}

// DistanceSq returns the squared distance between p and o
func (p Point) DistanceSq(o Point) float64 {
	return o.Sub(p).LengthSq()
}

// Distance returns the euclidean distance between p and o
func (p Point) Distance(o Point) float64 {
	return math.Sqrt(p.DistanceSq(o))
}

// Normalize returns the unit vector pointing the same way as p.
// The second result is false when p has (near) zero length, in which case
// the zero vector is returned.
func (p Point) Normalize() (Point, bool) {
	l := p.Length()
	if l < Epsilon || math.IsNaN(l) || math.IsInf(l, 0) {
		return Point{}, false
	}
	return Point{p.X / l, p.Y / l}, true
}

// DirectionTo returns the unit vector from p towards o.
// Returns false when p and o coincide.
func (p Point) DirectionTo(o Point) (Point, bool) {
	return o.Sub(p).Normalize()
}

// Snap rounds both coordinates to the nearest multiple of quantum.
// A non-positive quantum leaves p untouched.
func (p Point) Snap(quantum float64) Point {
	return Point{SnapValue(p.X, quantum), SnapValue(p.Y, quantum)}
}

// SnapValue rounds v to the nearest multiple of quantum
func SnapValue(v, quantum float64) float64 {
	if quantum <= 0 {
		return v
	}
	return math.Round(v/quantum) * quantum
}

// Less orders points by X, then by Y
func (p Point) Less(o Point) bool {
	if p.X != o.X {
		return p.X < o.X
	}
	return p.Y < o.Y
}
