package generation

import (
	"fmt"
	"math"

	"dungeon-layout/geometry"
)

// Config enumerates every knob of a generation run
type Config struct {
	PointCount  int            // Number of rooms scattered in the spawn disk
	RoomMinSize float64        // Lower bound for room width and height
	RoomMaxSize float64        // Upper bound for room width and height
	SpawnRadius float64        // Radius of the spawn disk
	Center      geometry.Point // Center of the spawn disk, also the corridor reference point
	TileSize    float64        // Grid quantum every position and size snaps to

	MainRoomCount   int     // Number of rooms promoted to main
	MainRoomSpacing float64 // Minimum distance between main room centers (0 = take the largest)
	ReAddCount      int     // Non-MST triangulation edges kept to create loops

	CorridorStep float64 // Spacing of hallway rooms along a corridor
	HallwaySize  float64 // Side of a square hallway room

	SeparationStep      float64 // Push distance applied per collision
	SeparationJitter    float64 // Scale of the random jitter added per collision, at least TileSize
	MaxSeparationPasses int     // Passes allowed before the layout is declared unstable

	Seed int64
}

// DefaultConfig returns the standard configuration
func DefaultConfig() Config {
	return Config{
		PointCount:  32,
		RoomMinSize: 16,
		RoomMaxSize: 64,
		SpawnRadius: 92,
		TileSize:    4,

		MainRoomCount:   8,
		MainRoomSpacing: 48,
		ReAddCount:      2,

		CorridorStep: 8,
		HallwaySize:  8,

		SeparationStep:      8,
		SeparationJitter:    8,
		MaxSeparationPasses: 500,
	}
}

// DungeonSize defines the size category of a dungeon
type DungeonSize int

const (
	SizeSmall  DungeonSize = iota // A handful of rooms
	SizeNormal                    // The default configuration
	SizeLarge                     // Twice the rooms of normal
	SizeHuge                      // Four times the rooms of normal
)

func (s DungeonSize) String() string {
	switch s {
	case SizeSmall:
		return "small"
	case SizeNormal:
		return "normal"
	case SizeLarge:
		return "large"
	case SizeHuge:
		return "huge"
	}
	return fmt.Sprintf("DungeonSize(%d)", int(s))
}

// ParseDungeonSize converts a size name back to a DungeonSize
func ParseDungeonSize(name string) (DungeonSize, error) {
	for _, s := range []DungeonSize{SizeSmall, SizeNormal, SizeLarge, SizeHuge} {
		if s.String() == name {
			return s, nil
		}
	}
	return SizeNormal, newError(CodeInvalidConfig, "unknown dungeon size %q", name)
}

// ConfigForSize returns the default configuration scaled to a size category
func ConfigForSize(size DungeonSize) Config {
	cfg := DefaultConfig()
	switch size {
	case SizeSmall:
		cfg.PointCount = 14
		cfg.SpawnRadius = 60
		cfg.MainRoomCount = 4
		cfg.ReAddCount = 1
	case SizeLarge:
		cfg.PointCount = 64
		cfg.SpawnRadius = 150
		cfg.MainRoomCount = 14
		cfg.ReAddCount = 3
		cfg.MaxSeparationPasses = 2000
	case SizeHuge:
		cfg.PointCount = 128
		cfg.SpawnRadius = 220
		cfg.MainRoomCount = 24
		cfg.ReAddCount = 5
		cfg.MaxSeparationPasses = 5000
	}
	return cfg
}

// Validate fails fast on configurations the pipeline cannot run
func (c Config) Validate() error {
	finite := func(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }

	switch {
	case c.PointCount < 1:
		return newError(CodeInvalidConfig, "point count must be at least 1, got %d", c.PointCount)
	case !finite(c.RoomMinSize) || !finite(c.RoomMaxSize) || c.RoomMinSize <= 0:
		return newError(CodeInvalidConfig, "room sizes must be positive, got [%g, %g]", c.RoomMinSize, c.RoomMaxSize)
	case c.RoomMaxSize < c.RoomMinSize:
		return newError(CodeInvalidConfig, "room max size %g is below min size %g", c.RoomMaxSize, c.RoomMinSize)
	case !finite(c.SpawnRadius) || c.SpawnRadius < 0:
		return newError(CodeInvalidConfig, "spawn radius must be non-negative, got %g", c.SpawnRadius)
	case !finite(c.Center.X) || !finite(c.Center.Y):
		return newError(CodeInvalidConfig, "center %v is not finite", c.Center)
	case !finite(c.TileSize) || c.TileSize <= 0:
		return newError(CodeInvalidConfig, "tile size must be positive, got %g", c.TileSize)
	case gridCeil(c.RoomMinSize, c.TileSize) > c.RoomMaxSize:
		return newError(CodeInvalidConfig, "room sizes [%g, %g] hold no multiple of tile size %g", c.RoomMinSize, c.RoomMaxSize, c.TileSize)
	case c.MainRoomCount < 1:
		return newError(CodeInvalidConfig, "main room count must be at least 1, got %d", c.MainRoomCount)
	case c.MainRoomCount > c.PointCount:
		return newError(CodeInvalidConfig, "main room count %d exceeds the %d available rooms", c.MainRoomCount, c.PointCount)
	case !finite(c.MainRoomSpacing) || c.MainRoomSpacing < 0:
		return newError(CodeInvalidConfig, "main room spacing must be non-negative, got %g", c.MainRoomSpacing)
	case c.ReAddCount < 0:
		return newError(CodeInvalidConfig, "re-add count must be non-negative, got %d", c.ReAddCount)
	case !finite(c.CorridorStep) || c.CorridorStep <= 0:
		return newError(CodeInvalidConfig, "corridor step must be positive, got %g", c.CorridorStep)
	case !finite(c.HallwaySize) || c.HallwaySize <= 0:
		return newError(CodeInvalidConfig, "hallway size must be positive, got %g", c.HallwaySize)
	case !finite(c.SeparationStep) || c.SeparationStep <= 0:
		return newError(CodeInvalidConfig, "separation step must be positive, got %g", c.SeparationStep)
	case !finite(c.SeparationJitter) || c.SeparationJitter < c.TileSize:
		// smaller jitter is rounded away by snapping and cannot break a stand-off
		return newError(CodeInvalidConfig, "separation jitter %g is below tile size %g", c.SeparationJitter, c.TileSize)
	case c.MaxSeparationPasses < 1:
		return newError(CodeInvalidConfig, "max separation passes must be at least 1, got %d", c.MaxSeparationPasses)
	}
	return nil
}

func (c Config) separationParams() SeparationParams {
	return SeparationParams{
		Step:        c.SeparationStep,
		Jitter:      c.SeparationJitter,
		GridQuantum: c.TileSize,
	}
}
