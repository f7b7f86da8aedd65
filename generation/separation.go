package generation

import (
	"math"
	"math/rand"

	"dungeon-layout/geometry"
)

// SeparationParams controls one relaxation step of the separation solver
type SeparationParams struct {
	Step        float64 // distance a room is pushed per overlapping neighbour
	Jitter      float64 // scale of the uniform [-0.5, 0.5]² jitter
	GridQuantum float64 // positions snap to multiples of this
}

// PushApart returns room moved away from every room in others it overlaps.
//
// Overlaps are tested against the room's updated position as it moves, in
// the order of others. Each overlap pushes the room along the unit direction
// from the other room's center to its own, adds jitter and snaps to the grid.
// Rooms with the same ID as room are skipped. IsColliding reports whether
// any overlap was found.
func PushApart(room Room, others []Room, params SeparationParams, rng *rand.Rand) Room {
	room.IsColliding = false
	for _, other := range others {
		if other.ID == room.ID {
			continue
		}
		if !room.Rect().Overlaps(other.Rect()) {
			continue
		}
		room.IsColliding = true

		dir, ok := other.Center.DirectionTo(room.Center)
		if !ok {
			// coincident centers have no direction; pick one at random
			theta := 2 * math.Pi * rng.Float64()
			dir = geometry.Pt(math.Cos(theta), math.Sin(theta))
		}
		jitter := geometry.Pt(rng.Float64()-0.5, rng.Float64()-0.5).Scale(params.Jitter)
		room.Center = room.Center.Add(dir.Scale(params.Step)).Add(jitter).Snap(params.GridQuantum)
	}
	return room
}

// SeparationPass runs PushApart once for every room, in order, writing each
// result back before the next room is processed. It reports whether any
// room was found colliding. A pass over rooms that do not overlap changes
// nothing.
func SeparationPass(rooms []Room, params SeparationParams, rng *rand.Rand) bool {
	colliding := false
	for i := range rooms {
		rooms[i] = PushApart(rooms[i], rooms, params, rng)
		if rooms[i].IsColliding {
			colliding = true
		}
	}
	return colliding
}

// AnyOverlap reports whether any two rooms overlap
func AnyOverlap(rooms []Room) bool {
	for i := range rooms {
		for j := i + 1; j < len(rooms); j++ {
			if rooms[i].Rect().Overlaps(rooms[j].Rect()) {
				return true
			}
		}
	}
	return false
}
