package generation

import (
	"math"
	"math/rand"

	"dungeon-layout/geometry"
)

// ScatterPoints samples n points uniformly inside the disk of the given
// radius around center, snapped to the grid quantum.
func ScatterPoints(rng *rand.Rand, center geometry.Point, radius float64, n int, quantum float64) []geometry.Point {
	points := make([]geometry.Point, 0, n)
	for i := 0; i < n; i++ {
		r := radius * math.Sqrt(rng.Float64())
		theta := 2 * math.Pi * rng.Float64()
		p := center.Add(geometry.Pt(r*math.Cos(theta), r*math.Sin(theta)))
		points = append(points, p.Snap(quantum))
	}
	return points
}

// RandomDimension returns a value drawn from [lo, hi] snapped to the grid
// quantum. The result is the multiple of quantum nearest the draw, clamped
// to the multiples that lie inside [lo, hi], and never smaller than one
// quantum. When no multiple fits, the smallest one at or above lo is
// returned; Config.Validate rejects such ranges.
func RandomDimension(rng *rand.Rand, lo, hi, quantum float64) float64 {
	d := geometry.SnapValue(lo+rng.Float64()*(hi-lo), quantum)
	if quantum <= 0 {
		return d
	}
	minD := math.Max(gridCeil(lo, quantum), quantum)
	maxD := gridFloor(hi, quantum)
	if d > maxD {
		d = maxD
	}
	if d < minD {
		d = minD
	}
	return d
}

// gridCeil returns the smallest multiple of quantum not below v
func gridCeil(v, quantum float64) float64 {
	return math.Ceil(v/quantum) * quantum
}

// gridFloor returns the largest multiple of quantum not above v
func gridFloor(v, quantum float64) float64 {
	return math.Floor(v/quantum) * quantum
}
