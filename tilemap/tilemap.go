// Package tilemap rasterises a finished layout into a grid of tiles with
// box-drawing walls, for ASCII output and tile rendering.
package tilemap

import (
	"math"
	"strings"

	"dungeon-layout/generation"
	"dungeon-layout/geometry"
)

// TileMap stores a rasterised layout. Cell (x, y) covers the world square
// starting at Origin + (x, y) * TileSize.
type TileMap struct {
	Width    int
	Height   int
	Origin   geometry.Point
	TileSize float64
	Tiles    [][]TileType
}

// NewTileMap creates an empty map with the given dimensions
func NewTileMap(width, height int, origin geometry.Point, tileSize float64) *TileMap {
	m := &TileMap{
		Width:    width,
		Height:   height,
		Origin:   origin,
		TileSize: tileSize,
		Tiles:    make([][]TileType, height),
	}
	for y := range m.Tiles {
		m.Tiles[y] = make([]TileType, width)
	}
	return m
}

// At returns the tile at (x, y). Out of bounds is empty.
func (m *TileMap) At(x, y int) TileType {
	if x < 0 || x >= m.Width || y < 0 || y >= m.Height {
		return TileEmpty
	}
	return m.Tiles[y][x]
}

// SetTile sets the tile at the given position
func (m *TileMap) SetTile(x, y int, t TileType) {
	if x >= 0 && x < m.Width && y >= 0 && y < m.Height {
		m.Tiles[y][x] = t
	}
}

// CellOf returns the cell containing world point p
func (m *TileMap) CellOf(p geometry.Point) (x, y int) {
	return int(math.Floor((p.X - m.Origin.X) / m.TileSize)),
		int(math.Floor((p.Y - m.Origin.Y) / m.TileSize))
}

// CellCenter returns the world position of the center of cell (x, y)
func (m *TileMap) CellCenter(x, y int) geometry.Point {
	return m.Origin.Add(geometry.Pt((float64(x)+0.5)*m.TileSize, (float64(y)+0.5)*m.TileSize))
}

// Count returns how many cells hold tile type t
func (m *TileMap) Count(t TileType) int {
	n := 0
	for _, row := range m.Tiles {
		for _, tile := range row {
			if tile == t {
				n++
			}
		}
	}
	return n
}

// String renders the map one line per row using each tile's glyph
func (m *TileMap) String() string {
	var sb strings.Builder
	for y, row := range m.Tiles {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for _, t := range row {
			sb.WriteRune(t.Definition().Glyph)
		}
	}
	return sb.String()
}

// Rasterize converts a layout into a tile map with cells of tileSize world
// units. Main and intermediate rooms become floor, hallway rooms and
// corridor legs become corridor, and every empty cell touching either is
// walled. A layout without rooms yields an empty map.
func Rasterize(layout *generation.Layout, tileSize float64) *TileMap {
	return rasterize(layout.Rooms(), layout.Corridors(), tileSize)
}

func rasterize(rooms []generation.Room, corridors []geometry.Segment, tileSize float64) *TileMap {
	if len(rooms) == 0 || tileSize <= 0 {
		return NewTileMap(0, 0, geometry.Point{}, tileSize)
	}

	lo := geometry.Pt(math.Inf(1), math.Inf(1))
	hi := geometry.Pt(math.Inf(-1), math.Inf(-1))
	for _, r := range rooms {
		rmin, rmax := r.Rect().Min(), r.Rect().Max()
		lo = geometry.Pt(math.Min(lo.X, rmin.X), math.Min(lo.Y, rmin.Y))
		hi = geometry.Pt(math.Max(hi.X, rmax.X), math.Max(hi.Y, rmax.Y))
	}
	// one spare cell on every side for the outer walls
	origin := geometry.Pt(math.Floor(lo.X/tileSize)*tileSize-tileSize, math.Floor(lo.Y/tileSize)*tileSize-tileSize)
	width := int(math.Ceil((hi.X-origin.X)/tileSize)) + 1
	height := int(math.Ceil((hi.Y-origin.Y)/tileSize)) + 1

	m := NewTileMap(width, height, origin, tileSize)
	for _, r := range rooms {
		tile := TileFloor
		if r.IsHallway && !r.IsMain && !r.IsIntermediate {
			tile = TileCorridor
		}
		m.fillRoom(r.Rect(), tile)
	}
	for _, c := range corridors {
		m.traceCorridor(c)
	}
	m.buildWalls()
	ApplyBoxDrawingWalls(m)
	return m
}

// fillRoom sets every cell whose center lies in [min, max) of rect
func (m *TileMap) fillRoom(rect geometry.Rect, tile TileType) {
	rmin, rmax := rect.Min(), rect.Max()
	x0, y0 := m.CellOf(rmin)
	x1, y1 := m.CellOf(rmax)
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			c := m.CellCenter(x, y)
			if c.X < rmin.X || c.X >= rmax.X || c.Y < rmin.Y || c.Y >= rmax.Y {
				continue
			}
			if m.At(x, y) != TileFloor {
				m.SetTile(x, y, tile)
			}
		}
	}
}

// traceCorridor marks the empty cells an axis-aligned leg runs through
func (m *TileMap) traceCorridor(leg geometry.Segment) {
	x0, y0 := m.CellOf(leg.A)
	x1, y1 := m.CellOf(leg.B)
	if x0 > x1 {
		x0, x1 = x1, x0
	}
	if y0 > y1 {
		y0, y1 = y1, y0
	}
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			if m.At(x, y) == TileEmpty {
				m.SetTile(x, y, TileCorridor)
			}
		}
	}
}

// buildWalls turns every empty cell with a walkable cell among its eight
// neighbours into a wall
func (m *TileMap) buildWalls() {
	var walls [][2]int
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			if m.Tiles[y][x] == TileEmpty && m.touchesWalkable(x, y) {
				walls = append(walls, [2]int{x, y})
			}
		}
	}
	for _, w := range walls {
		m.Tiles[w[1]][w[0]] = TileWall
	}
}

func (m *TileMap) touchesWalkable(x, y int) bool {
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if (dx != 0 || dy != 0) && m.At(x+dx, y+dy).IsWalkable() {
				return true
			}
		}
	}
	return false
}

// ApplyBoxDrawingWalls replaces every wall tile with the box drawing tile
// matching its wall neighbours. Out of bounds does not connect.
func ApplyBoxDrawingWalls(m *TileMap) {
	masks := make([][]int, m.Height)
	for y := 0; y < m.Height; y++ {
		masks[y] = make([]int, m.Width)
		for x := 0; x < m.Width; x++ {
			if m.Tiles[y][x].IsWall() {
				masks[y][x] = CalculateWallMask(m, x, y)
			}
		}
	}

	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			if m.Tiles[y][x].IsWall() {
				m.Tiles[y][x] = WallTileLookup[masks[y][x]]
			}
		}
	}
}

// CalculateWallMask calculates the bitmask value for a wall tile
// based on which adjacent tiles are walls
func CalculateWallMask(m *TileMap, x, y int) int {
	mask := 0
	if m.At(x, y-1).IsWall() {
		mask |= WallConnectTop
	}
	if m.At(x+1, y).IsWall() {
		mask |= WallConnectRight
	}
	if m.At(x, y+1).IsWall() {
		mask |= WallConnectBottom
	}
	if m.At(x-1, y).IsWall() {
		mask |= WallConnectLeft
	}
	return mask
}
