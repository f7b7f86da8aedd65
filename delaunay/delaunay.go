// Package delaunay triangulates point sets with the incremental
// Bowyer-Watson algorithm.
package delaunay

import (
	"github.com/paulmach/orb"
	"github.com/zyedidia/generic/mapset"

	"dungeon-layout/geometry"
)

const (
	// superTrianglePadding is added around the bounding box of the input
	// before the scaffold triangle is built
	superTrianglePadding = 5

	// superTriangleScale multiplies the padded box's width + height to get
	// the leg length of the scaffold triangle
	superTriangleScale = 3
)

// Triangulate returns the Delaunay triangulation of points.
//
// Points are inserted in input order; repeated points are ignored after their
// first occurrence. Fewer than three distinct points, or a fully collinear
// set, produce an empty result.
func Triangulate(points []geometry.Point) []geometry.Triangle {
	pts := uniquePoints(points)
	if len(pts) < 3 {
		return nil
	}

	super := SuperTriangle(pts)
	mesh := []geometry.Triangle{super}
	for _, p := range pts {
		mesh = insertPoint(mesh, p)
	}

	scaffold := mapset.New[geometry.Point]()
	scaffold.Put(super.A)
	scaffold.Put(super.B)
	scaffold.Put(super.C)

	result := make([]geometry.Triangle, 0, len(mesh))
	for _, t := range mesh {
		if scaffold.Has(t.A) || scaffold.Has(t.B) || scaffold.Has(t.C) {
			continue
		}
		result = append(result, t)
	}
	return result
}

// SuperTriangle builds a triangle that strictly contains every point.
// It is a right triangle anchored at the padded bounding box's min corner.
func SuperTriangle(points []geometry.Point) geometry.Triangle {
	mp := make(orb.MultiPoint, len(points))
	for i, p := range points {
		mp[i] = orb.Point{p.X, p.Y}
	}
	bound := mp.Bound().Pad(superTrianglePadding)

	lenX := bound.Max[0] - bound.Min[0]
	lenY := bound.Max[1] - bound.Min[1]
	leg := superTriangleScale * (lenX + lenY)

	a := geometry.Pt(bound.Min[0], bound.Min[1])
	b := a.Add(geometry.Pt(0, leg))
	c := a.Add(geometry.Pt(leg, 0))
	return geometry.NewTriangle(a, b, c)
}

// insertPoint removes every triangle whose circumcircle strictly contains p
// and re-triangulates the resulting cavity as a fan around p.
func insertPoint(mesh []geometry.Triangle, p geometry.Point) []geometry.Triangle {
	var bad []geometry.Triangle
	kept := mesh[:0]
	for _, t := range mesh {
		if t.InCircumcircle(p) {
			bad = append(bad, t)
		} else {
			kept = append(kept, t)
		}
	}

	for _, e := range cavityBoundary(bad) {
		t := geometry.NewTriangle(e.A, e.B, p)
		if t.Degenerate() {
			// p sits on the edge; the triangle has no area and is left out
			continue
		}
		kept = append(kept, t)
	}
	return kept
}

// cavityBoundary returns the edges of bad that are not shared with another
// bad triangle. Edge order follows the order of bad.
func cavityBoundary(bad []geometry.Triangle) []geometry.Segment {
	counts := make(map[geometry.Segment]int, len(bad)*3)
	for _, t := range bad {
		for _, e := range t.Edges() {
			counts[e.Canonical()]++
		}
	}

	var boundary []geometry.Segment
	for _, t := range bad {
		for _, e := range t.Edges() {
			if counts[e.Canonical()] == 1 {
				boundary = append(boundary, e)
			}
		}
	}
	return boundary
}

// Edges returns the distinct edges of a triangulation in first-seen order
func Edges(triangles []geometry.Triangle) []geometry.Segment {
	seen := mapset.New[geometry.Segment]()
	var edges []geometry.Segment
	for _, t := range triangles {
		for _, e := range t.Edges() {
			key := e.Canonical()
			if seen.Has(key) {
				continue
			}
			seen.Put(key)
			edges = append(edges, e)
		}
	}
	return edges
}

func uniquePoints(points []geometry.Point) []geometry.Point {
	seen := mapset.New[geometry.Point]()
	out := make([]geometry.Point, 0, len(points))
	for _, p := range points {
		if seen.Has(p) {
			continue
		}
		seen.Put(p)
		out = append(out, p)
	}
	return out
}
