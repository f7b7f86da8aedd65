package generation

import (
	"math/rand"
	"testing"

	"dungeon-layout/geometry"
)

func room(id RoomID, x, y, w, h float64) Room {
	return Room{ID: id, Center: geometry.Pt(x, y), Width: w, Height: h}
}

var testParams = SeparationParams{Step: 8, Jitter: 2, GridQuantum: 4}

func TestPushApartMovesAwayFromNeighbour(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	a := room(0, 0, 0, 20, 20)
	b := room(1, 10, 0, 20, 20)

	moved := PushApart(a, []Room{a, b}, testParams, rng)
	if !moved.IsColliding {
		t.Fatal("expected a collision")
	}
	if moved.Center.X >= a.Center.X {
		t.Errorf("room should move left, away from its neighbour: %v", moved.Center)
	}
	if moved.Center.X != geometry.SnapValue(moved.Center.X, 4) || moved.Center.Y != geometry.SnapValue(moved.Center.Y, 4) {
		t.Errorf("position %v is not grid aligned", moved.Center)
	}
	if a.Center != geometry.Pt(0, 0) {
		t.Error("PushApart modified its input")
	}
}

func TestPushApartCoincidentCenters(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	a := room(0, 0, 0, 16, 16)
	b := room(1, 0, 0, 16, 16)

	moved := PushApart(a, []Room{b}, testParams, rng)
	if !moved.IsColliding {
		t.Fatal("expected a collision")
	}
	if moved.Center == a.Center {
		t.Error("coincident rooms must still be pushed apart")
	}
}

func TestPushApartSkipsItself(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	a := room(4, 0, 0, 16, 16)
	moved := PushApart(a, []Room{a}, testParams, rng)
	if moved.IsColliding || moved.Center != a.Center {
		t.Errorf("room collided with itself: %+v", moved)
	}
}

func TestSeparationJitterSurvivesSnapping(t *testing.T) {
	params := DefaultConfig().separationParams()
	rng := rand.New(rand.NewSource(8))
	a := room(0, 0, 0, 20, 20)
	b := room(1, 10, 0, 20, 20)

	// the push is purely horizontal, so any vertical offset comes from jitter
	sideways := 0
	for i := 0; i < 64; i++ {
		if moved := PushApart(a, []Room{b}, params, rng); moved.Center.Y != 0 {
			sideways++
		}
	}
	if sideways == 0 {
		t.Error("jitter never moved a room off its push axis after snapping")
	}
}

func TestSeparationConverges(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	var rooms []Room
	for i := 0; i < 24; i++ {
		rooms = append(rooms, room(RoomID(i), float64(rng.Intn(10)*4), float64(rng.Intn(10)*4), 16+float64(rng.Intn(5)*4), 16+float64(rng.Intn(5)*4)))
	}

	params := DefaultConfig().separationParams()
	passes := 0
	for SeparationPass(rooms, params, rng) {
		passes++
		if passes > 1000 {
			t.Fatal("separation did not converge")
		}
	}
	if AnyOverlap(rooms) {
		t.Fatal("rooms still overlap after convergence")
	}
	for _, r := range rooms {
		if r.IsColliding {
			t.Errorf("room %d still flagged colliding", r.ID)
		}
	}
}

func TestSeparationIdempotentAtConvergence(t *testing.T) {
	rooms := []Room{
		room(0, 0, 0, 16, 16),
		room(1, 16, 0, 16, 16), // touching only
		room(2, 0, 40, 8, 8),
	}
	before := append([]Room(nil), rooms...)

	rng := rand.New(rand.NewSource(9))
	if SeparationPass(rooms, testParams, rng) {
		t.Fatal("non-overlapping rooms reported a collision")
	}
	for i := range rooms {
		if rooms[i] != before[i] {
			t.Errorf("room %d changed: %+v -> %+v", i, before[i], rooms[i])
		}
	}
}

func TestAnyOverlap(t *testing.T) {
	if AnyOverlap([]Room{room(0, 0, 0, 10, 10), room(1, 10, 0, 10, 10)}) {
		t.Error("touching rooms reported as overlapping")
	}
	if !AnyOverlap([]Room{room(0, 0, 0, 10, 10), room(1, 9, 0, 10, 10)}) {
		t.Error("overlap not detected")
	}
}
