// Package render draws layout snapshots with ebiten.
package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"dungeon-layout/generation"
	"dungeon-layout/geometry"
	"dungeon-layout/tilemap"
)

// Palette
var (
	ColorBackground    = color.RGBA{0, 0, 0, 255}
	ColorMainRoom      = color.RGBA{0, 100, 0, 255}
	ColorIntermediate  = color.RGBA{0, 0, 100, 255}
	ColorFiller        = color.RGBA{15, 15, 15, 255}
	ColorHallway       = color.RGBA{100, 80, 0, 255}
	ColorOutline       = color.RGBA{255, 255, 255, 255}
	ColorColliding     = color.RGBA{255, 0, 0, 255}
	ColorTriangulation = color.RGBA{90, 90, 90, 255}
	ColorSkeleton      = color.RGBA{0, 220, 0, 255}
	ColorCorridor      = color.RGBA{255, 220, 0, 255}
)

// RoomFill returns the fill color for a room's role
func RoomFill(r generation.Room) color.Color {
	switch {
	case r.IsMain:
		return ColorMainRoom
	case r.IsIntermediate:
		return ColorIntermediate
	case r.IsHallway:
		return ColorHallway
	}
	return ColorFiller
}

// RoomOutline returns the outline color for a room
func RoomOutline(r generation.Room) color.Color {
	if r.IsColliding {
		return ColorColliding
	}
	return ColorOutline
}

// LayoutRenderer draws a layout snapshot into a rectangular screen area
type LayoutRenderer struct {
	Width, Height float64
	Margin        float64

	ShowTriangulation bool
	ShowTiles         bool
}

// NewLayoutRenderer creates a renderer for an area of the given size
func NewLayoutRenderer(width, height, margin float64) *LayoutRenderer {
	return &LayoutRenderer{
		Width:             width,
		Height:            height,
		Margin:            margin,
		ShowTriangulation: true,
	}
}

// ToggleTriangulation shows or hides the full triangulation
func (r *LayoutRenderer) ToggleTriangulation() {
	r.ShowTriangulation = !r.ShowTriangulation
}

// ToggleTiles switches between the room view and the rasterised tile view
func (r *LayoutRenderer) ToggleTiles() {
	r.ShowTiles = !r.ShowTiles
}

// Draw renders layout onto screen. tiles may be nil; it is only drawn when
// the tile view is enabled.
func (r *LayoutRenderer) Draw(screen *ebiten.Image, layout *generation.Layout, tiles *tilemap.TileMap) {
	bounds, ok := layout.Bounds()
	if !ok {
		return
	}
	t := Fit(bounds, r.Width, r.Height, r.Margin)

	if r.ShowTiles && tiles != nil {
		r.drawTiles(screen, tiles, t)
		return
	}

	for _, room := range layout.Rooms() {
		x, y, w, h := t.ApplyRect(room.Rect())
		vector.DrawFilledRect(screen, x, y, w, h, RoomFill(room), false)
		vector.StrokeRect(screen, x, y, w, h, 1, RoomOutline(room), false)
	}

	if r.ShowTriangulation {
		r.drawSegments(screen, layout.TriangulationEdges(), t, 1, ColorTriangulation)
	}
	r.drawSegments(screen, layout.SkeletonEdges(), t, 2, ColorSkeleton)
	r.drawSegments(screen, layout.Corridors(), t, 2, ColorCorridor)
}

func (r *LayoutRenderer) drawSegments(screen *ebiten.Image, segments []geometry.Segment, t Transform, width float32, clr color.Color) {
	for _, s := range segments {
		a, b := t.Apply(s.A), t.Apply(s.B)
		vector.StrokeLine(screen, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), width, clr, true)
	}
}

// drawTiles draws every non-empty tile as a square in its foreground color
func (r *LayoutRenderer) drawTiles(screen *ebiten.Image, m *tilemap.TileMap, t Transform) {
	size := float32(m.TileSize * t.Scale)
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			tile := m.At(x, y)
			if tile == tilemap.TileEmpty {
				continue
			}
			corner := t.Apply(m.Origin.Add(geometry.Pt(float64(x)*m.TileSize, float64(y)*m.TileSize)))
			vector.DrawFilledRect(screen, float32(corner.X), float32(corner.Y), size, size, tile.Definition().FG, false)
		}
	}
}
