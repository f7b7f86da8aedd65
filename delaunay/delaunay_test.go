package delaunay

import (
	"math/rand"
	"testing"

	"dungeon-layout/geometry"
)

func checkDelaunay(t *testing.T, triangles []geometry.Triangle, points []geometry.Point) {
	t.Helper()
	for _, tri := range triangles {
		if tri.Degenerate() {
			t.Errorf("degenerate triangle in output: %v %v %v", tri.A, tri.B, tri.C)
			continue
		}
		for _, p := range points {
			if tri.HasVertex(p) {
				continue
			}
			if tri.InCircumcircle(p) {
				t.Errorf("point %v lies inside circumcircle of (%v, %v, %v)", p, tri.A, tri.B, tri.C)
			}
		}
	}
}

func TestSquareSplitsAlongOneDiagonal(t *testing.T) {
	points := []geometry.Point{
		geometry.Pt(0, 0), geometry.Pt(10, 0), geometry.Pt(0, 10), geometry.Pt(10, 10),
	}
	tris := Triangulate(points)
	if len(tris) != 2 {
		t.Fatalf("got %d triangles, want 2", len(tris))
	}

	diagA := geometry.Seg(points[0], points[3])
	diagB := geometry.Seg(points[1], points[2])
	hasA := tris[0].HasEdge(diagA) && tris[1].HasEdge(diagA)
	hasB := tris[0].HasEdge(diagB) && tris[1].HasEdge(diagB)
	if hasA == hasB {
		t.Fatalf("expected exactly one shared diagonal, got (0,0)-(10,10)=%v (10,0)-(0,10)=%v", hasA, hasB)
	}

	checkDelaunay(t, tris, points)
}

func TestTriangulateRandomSetsAreDelaunay(t *testing.T) {
	rnd := rand.New(rand.NewSource(0))
	for _, n := range []int{3, 4, 10, 40, 120} {
		points := make([]geometry.Point, n)
		for i := range points {
			points[i] = geometry.Pt(rnd.Float64()*500-250, rnd.Float64()*300)
		}
		tris := Triangulate(points)
		if len(tris) == 0 {
			t.Fatalf("n=%d: empty triangulation", n)
		}
		checkDelaunay(t, tris, points)

		input := make(map[geometry.Point]bool, n)
		for _, p := range points {
			input[p] = true
		}
		for _, tri := range tris {
			for _, v := range tri.Points() {
				if !input[v] {
					t.Fatalf("n=%d: scaffold vertex %v survived", n, v)
				}
			}
		}
	}
}

func TestTriangulateGridPoints(t *testing.T) {
	var points []geometry.Point
	for x := 0; x < 5; x++ {
		for y := 0; y < 4; y++ {
			points = append(points, geometry.Pt(float64(x*16), float64(y*16)))
		}
	}
	tris := Triangulate(points)
	// a 5x4 lattice has 4*3 cells, each split in two
	if len(tris) != 24 {
		t.Errorf("got %d triangles, want 24", len(tris))
	}
	checkDelaunay(t, tris, points)
}

func TestTriangulateInsufficientInput(t *testing.T) {
	if got := Triangulate(nil); len(got) != 0 {
		t.Errorf("nil input gave %d triangles", len(got))
	}
	two := []geometry.Point{geometry.Pt(0, 0), geometry.Pt(1, 1)}
	if got := Triangulate(two); len(got) != 0 {
		t.Errorf("two points gave %d triangles", len(got))
	}
	dupes := []geometry.Point{geometry.Pt(0, 0), geometry.Pt(1, 1), geometry.Pt(1, 1), geometry.Pt(0, 0)}
	if got := Triangulate(dupes); len(got) != 0 {
		t.Errorf("two distinct points gave %d triangles", len(got))
	}
}

func TestTriangulateCollinear(t *testing.T) {
	points := []geometry.Point{
		geometry.Pt(0, 0), geometry.Pt(10, 0), geometry.Pt(20, 0), geometry.Pt(30, 0),
	}
	if got := Triangulate(points); len(got) != 0 {
		t.Errorf("collinear input gave %d triangles, want 0", len(got))
	}
}

func TestSuperTriangleContainsPoints(t *testing.T) {
	points := []geometry.Point{geometry.Pt(-40, -10), geometry.Pt(25, 60), geometry.Pt(100, -3)}
	super := SuperTriangle(points)
	if super.Degenerate() {
		t.Fatal("super triangle is degenerate")
	}
	for _, p := range points {
		if !super.InCircumcircle(p) {
			t.Errorf("point %v outside the super triangle circumcircle", p)
		}
		// barycentric sign test for strict containment
		d1 := geometry.Seg(super.A, super.B).Vector().Cross(p.Sub(super.A))
		d2 := geometry.Seg(super.B, super.C).Vector().Cross(p.Sub(super.B))
		d3 := geometry.Seg(super.C, super.A).Vector().Cross(p.Sub(super.C))
		neg := d1 < 0 && d2 < 0 && d3 < 0
		pos := d1 > 0 && d2 > 0 && d3 > 0
		if !neg && !pos {
			t.Errorf("point %v not strictly inside the super triangle", p)
		}
	}
}

func TestEdgesAreUnique(t *testing.T) {
	points := []geometry.Point{
		geometry.Pt(0, 0), geometry.Pt(10, 0), geometry.Pt(0, 10), geometry.Pt(10, 10),
	}
	edges := Edges(Triangulate(points))
	// four sides plus one diagonal
	if len(edges) != 5 {
		t.Fatalf("got %d edges, want 5: %v", len(edges), edges)
	}
	for i := range edges {
		for j := i + 1; j < len(edges); j++ {
			if edges[i].Equal(edges[j]) {
				t.Errorf("duplicate edge %v", edges[i])
			}
		}
	}
}
