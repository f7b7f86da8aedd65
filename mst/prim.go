// Package mst builds minimum spanning trees over point sets.
package mst

import (
	"math"

	"dungeon-layout/geometry"
)

// Prim returns the edges of a minimum spanning tree over points, using the
// squared euclidean distance as edge weight.
//
// The tree grows from points[0]. Each round scans every (reached, unreached)
// pair and takes the first pair found with the smallest weight, so ties are
// broken by input order. Every returned segment starts at the point that was
// already reached. n points produce n-1 segments; fewer than two points
// produce none.
func Prim(points []geometry.Point) []geometry.Segment {
	if len(points) < 2 {
		return nil
	}

	reached := make([]geometry.Point, 0, len(points))
	unreached := make([]geometry.Point, len(points)-1)
	reached = append(reached, points[0])
	copy(unreached, points[1:])

	tree := make([]geometry.Segment, 0, len(points)-1)
	for len(unreached) > 0 {
		minDist := math.Inf(1)
		rIdx, uIdx := 0, 0
		for i, r := range reached {
			for j, u := range unreached {
				if d := r.DistanceSq(u); d < minDist {
					minDist = d
					rIdx, uIdx = i, j
				}
			}
		}

		next := unreached[uIdx]
		tree = append(tree, geometry.Seg(reached[rIdx], next))
		reached = append(reached, next)
		unreached = append(unreached[:uIdx], unreached[uIdx+1:]...)
	}
	return tree
}

// TotalWeight sums the squared lengths of edges
func TotalWeight(edges []geometry.Segment) float64 {
	total := 0.0
	for _, e := range edges {
		total += e.LengthSq()
	}
	return total
}
