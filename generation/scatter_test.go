package generation

import (
	"math/rand"
	"testing"

	"dungeon-layout/geometry"
)

func TestScatterPointsStayInDisk(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	center := geometry.Pt(400, 400)
	points := ScatterPoints(rng, center, 92, 500, 4)

	if len(points) != 500 {
		t.Fatalf("got %d points, want 500", len(points))
	}
	for _, p := range points {
		// snapping can move a point at most half a quantum per axis
		if p.Distance(center) > 92+4 {
			t.Errorf("point %v lies outside the spawn disk", p)
		}
		if p != p.Snap(4) {
			t.Errorf("point %v is not grid aligned", p)
		}
	}
}

func TestRandomDimension(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	for i := 0; i < 200; i++ {
		d := RandomDimension(rng, 16, 64, 4)
		if d < 16 || d > 64 {
			t.Fatalf("dimension %g outside [16, 64]", d)
		}
		if d != geometry.SnapValue(d, 4) {
			t.Fatalf("dimension %g is not a multiple of 4", d)
		}
	}
	if d := RandomDimension(rng, 0, 1, 4); d != 4 {
		t.Errorf("tiny dimension = %g, want one quantum", d)
	}
}

func TestRandomDimensionStaysInsideUnalignedBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for i := 0; i < 500; i++ {
		d := RandomDimension(rng, 17, 62, 4)
		if d < 20 || d > 60 {
			t.Fatalf("dimension %g outside the aligned range [20, 60]", d)
		}
	}
}
