package mst

import (
	"math/rand"
	"testing"

	"dungeon-layout/geometry"
)

// connected reports whether edges join every point into one component
func connected(points []geometry.Point, edges []geometry.Segment) bool {
	if len(points) == 0 {
		return true
	}
	adj := make(map[geometry.Point][]geometry.Point)
	for _, e := range edges {
		adj[e.A] = append(adj[e.A], e.B)
		adj[e.B] = append(adj[e.B], e.A)
	}
	seen := map[geometry.Point]bool{points[0]: true}
	stack := []geometry.Point{points[0]}
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, n := range adj[p] {
			if !seen[n] {
				seen[n] = true
				stack = append(stack, n)
			}
		}
	}
	for _, p := range points {
		if !seen[p] {
			return false
		}
	}
	return true
}

func TestPrimPlusShape(t *testing.T) {
	points := []geometry.Point{
		geometry.Pt(0, 0),
		geometry.Pt(10, 0),
		geometry.Pt(-10, 0),
		geometry.Pt(0, 10),
		geometry.Pt(0, -10),
	}
	edges := Prim(points)
	if len(edges) != 4 {
		t.Fatalf("got %d edges, want 4", len(edges))
	}
	if w := TotalWeight(edges); w != 400 {
		t.Errorf("total squared weight = %v, want 400", w)
	}
	for _, e := range edges {
		if !e.HasEndpoint(geometry.Pt(0, 0)) {
			t.Errorf("edge %v does not touch the center", e)
		}
	}
	if !connected(points, edges) {
		t.Error("tree is not connected")
	}
}

func TestPrimRandomSets(t *testing.T) {
	rnd := rand.New(rand.NewSource(7))
	for _, n := range []int{2, 3, 9, 33, 80} {
		points := make([]geometry.Point, n)
		for i := range points {
			points[i] = geometry.Pt(float64(rnd.Intn(1000)), float64(rnd.Intn(1000))+rnd.Float64())
		}
		edges := Prim(points)
		if len(edges) != n-1 {
			t.Errorf("n=%d: got %d edges, want %d", n, len(edges), n-1)
		}
		if !connected(points, edges) {
			t.Errorf("n=%d: tree is not connected", n)
		}
	}
}

func TestPrimIsMinimal(t *testing.T) {
	// a unit square with one far point: the best tree uses three sides
	// of the square plus the shortest link to the far point
	points := []geometry.Point{
		geometry.Pt(0, 0), geometry.Pt(1, 0), geometry.Pt(1, 1), geometry.Pt(0, 1), geometry.Pt(5, 1),
	}
	edges := Prim(points)
	if w := TotalWeight(edges); w != 3+16 {
		t.Errorf("total squared weight = %v, want 19", w)
	}
}

func TestPrimDegenerateInput(t *testing.T) {
	if got := Prim(nil); len(got) != 0 {
		t.Errorf("nil input gave %v", got)
	}
	if got := Prim([]geometry.Point{geometry.Pt(3, 4)}); len(got) != 0 {
		t.Errorf("single point gave %v", got)
	}
}

func TestPrimDoesNotMutateInput(t *testing.T) {
	points := []geometry.Point{geometry.Pt(0, 0), geometry.Pt(3, 0), geometry.Pt(1, 0)}
	before := append([]geometry.Point(nil), points...)
	Prim(points)
	for i := range points {
		if points[i] != before[i] {
			t.Fatalf("input modified at %d: %v != %v", i, points[i], before[i])
		}
	}
}
