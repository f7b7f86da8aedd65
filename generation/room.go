package generation

import "dungeon-layout/geometry"

// RoomID identifies a room for the lifetime of a layout
type RoomID int

// Room is an axis-aligned rectangle positioned by its center
type Room struct {
	ID     RoomID
	Center geometry.Point
	Width  float64
	Height float64

	IsMain         bool // anchor for triangulation, MST and corridors
	IsIntermediate bool // crossed by a corridor and kept
	IsHallway      bool // carved along a corridor
	IsColliding    bool // only meaningful while separating
}

// Rect returns the room's rectangle
func (r Room) Rect() geometry.Rect {
	return geometry.NewRect(r.Center, r.Width, r.Height)
}

// Area returns width * height
func (r Room) Area() float64 {
	return r.Width * r.Height
}

// Kept reports whether the room survives pruning after corridor routing
func (r Room) Kept() bool {
	return r.IsMain || r.IsIntermediate || r.IsHallway
}

// Role returns a short label for the room's role flags
func (r Room) Role() string {
	switch {
	case r.IsMain:
		return "main"
	case r.IsIntermediate:
		return "intermediate"
	case r.IsHallway:
		return "hallway"
	default:
		return "filler"
	}
}
