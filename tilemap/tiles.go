package tilemap

import "image/color"

// TileType classifies one cell of a rasterised layout
type TileType int

// Tile types
const (
	TileEmpty TileType = iota
	TileFloor
	TileCorridor
	TileWall

	// Box drawing wall tiles
	TileWallHorizontal  // ─
	TileWallVertical    // │
	TileWallTopLeft     // ┌
	TileWallTopRight    // ┐
	TileWallBottomLeft  // └
	TileWallBottomRight // ┘
	TileWallTeeLeft     // ├
	TileWallTeeRight    // ┤
	TileWallTeeTop      // ┬
	TileWallTeeBottom   // ┴
	TileWallCross       // ┼
)

// TileDefinition describes the visual appearance of a tile type
type TileDefinition struct {
	Glyph rune        // The character used in ASCII output
	FG    color.Color // Foreground color
}

// NewTileDefinition creates a tile definition using a character code
func NewTileDefinition(glyph rune, fg color.Color) TileDefinition {
	return TileDefinition{Glyph: glyph, FG: fg}
}

var definitions = func() map[TileType]TileDefinition {
	wallColor := color.RGBA{160, 160, 160, 255}
	return map[TileType]TileDefinition{
		TileEmpty:           NewTileDefinition(' ', color.RGBA{0, 0, 0, 255}),
		TileFloor:           NewTileDefinition('.', color.RGBA{64, 64, 64, 255}),
		TileCorridor:        NewTileDefinition(',', color.RGBA{139, 69, 19, 255}), // Brown
		TileWall:            NewTileDefinition('#', color.RGBA{128, 128, 128, 255}),
		TileWallHorizontal:  NewTileDefinition('─', wallColor),
		TileWallVertical:    NewTileDefinition('│', wallColor),
		TileWallTopLeft:     NewTileDefinition('┌', wallColor),
		TileWallTopRight:    NewTileDefinition('┐', wallColor),
		TileWallBottomLeft:  NewTileDefinition('└', wallColor),
		TileWallBottomRight: NewTileDefinition('┘', wallColor),
		TileWallTeeLeft:     NewTileDefinition('├', wallColor),
		TileWallTeeRight:    NewTileDefinition('┤', wallColor),
		TileWallTeeTop:      NewTileDefinition('┬', wallColor),
		TileWallTeeBottom:   NewTileDefinition('┴', wallColor),
		TileWallCross:       NewTileDefinition('┼', wallColor),
	}
}()

// Definition returns the visual definition for a tile type
func (t TileType) Definition() TileDefinition {
	if def, exists := definitions[t]; exists {
		return def
	}
	// Magenta for undefined tiles
	return TileDefinition{Glyph: '?', FG: color.RGBA{255, 0, 255, 255}}
}

// IsWall reports whether t is any kind of wall
func (t TileType) IsWall() bool {
	return t >= TileWall && t <= TileWallCross
}

// IsWalkable reports whether t is floor or corridor
func (t TileType) IsWalkable() bool {
	return t == TileFloor || t == TileCorridor
}

// Wall connection constants used for box drawing walls
const (
	WallConnectTop    = 1
	WallConnectRight  = 2
	WallConnectBottom = 4
	WallConnectLeft   = 8
)

// WallTileLookup maps a connection mask to its box drawing tile
var WallTileLookup = [16]TileType{
	0:  TileWall,            // No connections (isolated wall)
	1:  TileWallVertical,    // Top only
	2:  TileWallHorizontal,  // Right only
	3:  TileWallBottomLeft,  // Top and right
	4:  TileWallVertical,    // Bottom only
	5:  TileWallVertical,    // Top and bottom
	6:  TileWallTopLeft,     // Right and bottom
	7:  TileWallTeeLeft,     // Top, right, bottom
	8:  TileWallHorizontal,  // Left only
	9:  TileWallBottomRight, // Top and left
	10: TileWallHorizontal,  // Left and right
	11: TileWallTeeBottom,   // Top, left, right
	12: TileWallTopRight,    // Left and bottom
	13: TileWallTeeRight,    // Top, left, bottom
	14: TileWallTeeTop,      // Right, bottom, left
	15: TileWallCross,       // All four neighbours
}
