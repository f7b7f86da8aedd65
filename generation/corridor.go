package generation

import (
	"math"

	"github.com/peterstace/simplefeatures/rtree"

	"dungeon-layout/geometry"
)

// CorridorParams controls how skeleton edges become corridors
type CorridorParams struct {
	Center      geometry.Point // reference point used to orient corridors
	Step        float64        // spacing of hallway rooms along a leg
	HallwaySize float64        // side of a square hallway room
}

// CorridorLegs turns a skeleton edge into an L-shaped path of one or two
// axis-aligned legs.
//
// The endpoint farther from center starts the path. When the start is at
// least as far from center horizontally as vertically the path runs
// vertically first, meeting the horizontal leg at (start.X, end.Y);
// otherwise it runs horizontally first through (end.X, start.Y).
// Zero-length legs are omitted.
func CorridorLegs(edge geometry.Segment, center geometry.Point) []geometry.Segment {
	start, end := edge.A, edge.B
	if end.DistanceSq(center) > start.DistanceSq(center) {
		start, end = end, start
	}

	d := start.Sub(center)
	elbow := geometry.Pt(end.X, start.Y)
	if math.Abs(d.X) >= math.Abs(d.Y) {
		elbow = geometry.Pt(start.X, end.Y)
	}

	legs := make([]geometry.Segment, 0, 2)
	for _, leg := range [2]geometry.Segment{{A: start, B: elbow}, {A: elbow, B: end}} {
		if leg.A != leg.B {
			legs = append(legs, leg)
		}
	}
	return legs
}

// Stations returns the points along leg where hallway rooms are placed:
// every step units from leg.A, plus leg.B when it does not fall on a step.
func Stations(leg geometry.Segment, step float64) []geometry.Point {
	length := leg.Length()
	if length < geometry.Epsilon || step <= 0 {
		return []geometry.Point{leg.A}
	}
	dir := leg.Vector().Scale(1 / length)
	n := int(math.Floor(length/step + geometry.Epsilon))

	stations := make([]geometry.Point, 0, n+2)
	for k := 0; k <= n; k++ {
		stations = append(stations, leg.A.Add(dir.Scale(float64(k)*step)))
	}
	if length-float64(n)*step > geometry.Epsilon {
		stations = append(stations, leg.B)
	}
	return stations
}

// CorridorRouter carves corridors into a layout. Rooms are indexed in an
// R-tree keyed by their position in the layout's room slice, so the router
// must finish before the layout is pruned.
type CorridorRouter struct {
	layout *Layout
	params CorridorParams
	index  *rtree.RTree
}

// RouteResult summarises the work done for one skeleton edge
type RouteResult struct {
	Legs     []geometry.Segment
	Promoted int // rooms newly flagged intermediate
	Hallways int // hallway rooms carved
}

func newCorridorRouter(layout *Layout, params CorridorParams) *CorridorRouter {
	items := make([]rtree.BulkItem, len(layout.rooms))
	for i, r := range layout.rooms {
		items[i] = rtree.BulkItem{Box: rectBox(r.Rect()), RecordID: i}
	}
	return &CorridorRouter{
		layout: layout,
		params: params,
		index:  rtree.BulkLoad(items),
	}
}

// Route builds the legs for edge, promotes the rooms they cross and carves
// hallway rooms wherever a leg runs through empty space.
func (c *CorridorRouter) Route(edge geometry.Segment) RouteResult {
	res := RouteResult{Legs: CorridorLegs(edge, c.params.Center)}
	for _, leg := range res.Legs {
		res.Promoted += c.promoteCrossed(leg)
		res.Hallways += c.carve(leg)
		c.layout.corridors = append(c.layout.corridors, leg)
	}
	return res
}

// promoteCrossed flags every filler room crossed by leg as intermediate
func (c *CorridorRouter) promoteCrossed(leg geometry.Segment) int {
	promoted := 0
	_ = c.index.RangeSearch(rectBox(leg.Bounds()), func(i int) error {
		r := &c.layout.rooms[i]
		if r.IsMain || r.IsHallway || r.IsIntermediate {
			return nil
		}
		if r.Rect().Crossed(leg) {
			r.IsIntermediate = true
			promoted++
		}
		return nil
	})
	return promoted
}

// carve places a hallway room at every station of leg that is still free
func (c *CorridorRouter) carve(leg geometry.Segment) int {
	size := c.params.HallwaySize
	placed := 0
	for _, p := range Stations(leg, c.params.Step) {
		rect := geometry.NewRect(p, size, size)
		if c.overlapsAny(rect) {
			continue
		}
		i := c.layout.addRoom(p, size, size)
		c.layout.rooms[i].IsHallway = true
		c.index.Insert(rectBox(rect), i)
		placed++
	}
	return placed
}

// overlapsAny reports whether rect strictly overlaps any indexed room. The
// R-tree search treats touching boxes as candidates; the exact test does not.
func (c *CorridorRouter) overlapsAny(rect geometry.Rect) bool {
	found := false
	_ = c.index.RangeSearch(rectBox(rect), func(i int) error {
		if c.layout.rooms[i].Rect().Overlaps(rect) {
			found = true
			return rtree.Stop
		}
		return nil
	})
	return found
}

func rectBox(r geometry.Rect) rtree.Box {
	lo, hi := r.Min(), r.Max()
	return rtree.Box{MinX: lo.X, MinY: lo.Y, MaxX: hi.X, MaxY: hi.Y}
}
