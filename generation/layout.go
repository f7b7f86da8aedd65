package generation

import (
	"math"

	"dungeon-layout/geometry"
)

// Layout is the aggregate produced by a generation run. The pipeline owns the
// live instance; everything handed out is a copy.
type Layout struct {
	center geometry.Point

	rooms      []Room
	nextRoomID RoomID

	triangles          []geometry.Triangle
	triangulationEdges []geometry.Segment
	spanningEdges      []geometry.Segment
	skeletonEdges      []geometry.Segment
	corridors          []geometry.Segment
}

func newLayout(center geometry.Point) *Layout {
	return &Layout{center: center}
}

// addRoom appends a room with a fresh ID and returns its index
func (l *Layout) addRoom(center geometry.Point, width, height float64) int {
	l.rooms = append(l.rooms, Room{
		ID:     l.nextRoomID,
		Center: center,
		Width:  width,
		Height: height,
	})
	l.nextRoomID++
	return len(l.rooms) - 1
}

// indexOf returns the slice index of the room with the given ID, or -1
func (l *Layout) indexOf(id RoomID) int {
	for i := range l.rooms {
		if l.rooms[i].ID == id {
			return i
		}
	}
	return -1
}

// prune drops every room that is neither main, intermediate nor hallway and
// returns how many were removed
func (l *Layout) prune() int {
	kept := l.rooms[:0]
	for _, r := range l.rooms {
		if r.Kept() {
			kept = append(kept, r)
		}
	}
	removed := len(l.rooms) - len(kept)
	l.rooms = kept
	return removed
}

// Center returns the spawn center the layout was generated around
func (l *Layout) Center() geometry.Point {
	return l.center
}

// Rooms returns every room in creation order
func (l *Layout) Rooms() []Room {
	return append([]Room(nil), l.rooms...)
}

// Room looks a room up by ID
func (l *Layout) Room(id RoomID) (Room, bool) {
	if i := l.indexOf(id); i >= 0 {
		return l.rooms[i], true
	}
	return Room{}, false
}

// MainRooms returns the rooms flagged main, in creation order
func (l *Layout) MainRooms() []Room {
	var main []Room
	for _, r := range l.rooms {
		if r.IsMain {
			main = append(main, r)
		}
	}
	return main
}

// MainRoomCenters returns the centers of the main rooms, in creation order
func (l *Layout) MainRoomCenters() []geometry.Point {
	var centers []geometry.Point
	for _, r := range l.rooms {
		if r.IsMain {
			centers = append(centers, r.Center)
		}
	}
	return centers
}

// Triangles returns the Delaunay triangles over the main room centers
func (l *Layout) Triangles() []geometry.Triangle {
	return append([]geometry.Triangle(nil), l.triangles...)
}

// TriangulationEdges returns the distinct edges of the triangulation
func (l *Layout) TriangulationEdges() []geometry.Segment {
	return append([]geometry.Segment(nil), l.triangulationEdges...)
}

// SpanningEdges returns the minimum spanning tree over the main room centers
func (l *Layout) SpanningEdges() []geometry.Segment {
	return append([]geometry.Segment(nil), l.spanningEdges...)
}

// SkeletonEdges returns the edges that survived reduction: the spanning tree
// plus the re-added loop edges
func (l *Layout) SkeletonEdges() []geometry.Segment {
	return append([]geometry.Segment(nil), l.skeletonEdges...)
}

// Corridors returns the axis-aligned corridor legs routed so far
func (l *Layout) Corridors() []geometry.Segment {
	return append([]geometry.Segment(nil), l.corridors...)
}

// Bounds returns the rectangle enclosing every room. The second result is
// false for a layout without rooms.
func (l *Layout) Bounds() (geometry.Rect, bool) {
	if len(l.rooms) == 0 {
		return geometry.Rect{}, false
	}
	lo := geometry.Pt(math.Inf(1), math.Inf(1))
	hi := geometry.Pt(math.Inf(-1), math.Inf(-1))
	for _, r := range l.rooms {
		rect := r.Rect()
		rmin, rmax := rect.Min(), rect.Max()
		lo = geometry.Pt(math.Min(lo.X, rmin.X), math.Min(lo.Y, rmin.Y))
		hi = geometry.Pt(math.Max(hi.X, rmax.X), math.Max(hi.Y, rmax.Y))
	}
	return geometry.RectFromCorners(lo, hi), true
}

// Clone returns a deep copy that shares nothing with l
func (l *Layout) Clone() *Layout {
	return &Layout{
		center:             l.center,
		rooms:              l.Rooms(),
		nextRoomID:         l.nextRoomID,
		triangles:          l.Triangles(),
		triangulationEdges: l.TriangulationEdges(),
		spanningEdges:      l.SpanningEdges(),
		skeletonEdges:      l.SkeletonEdges(),
		corridors:          l.Corridors(),
	}
}
