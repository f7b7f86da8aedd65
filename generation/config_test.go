package generation

import (
	"errors"
	"math"
	"testing"
)

func TestDefaultConfigValid(t *testing.T) {
	for _, size := range []DungeonSize{SizeSmall, SizeNormal, SizeLarge, SizeHuge} {
		if err := ConfigForSize(size).Validate(); err != nil {
			t.Errorf("%s: %v", size, err)
		}
	}
	if ConfigForSize(SizeNormal) != DefaultConfig() {
		t.Error("normal size should match the default configuration")
	}
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"no points", func(c *Config) { c.PointCount = 0 }},
		{"zero min size", func(c *Config) { c.RoomMinSize = 0 }},
		{"max below min", func(c *Config) { c.RoomMaxSize = c.RoomMinSize - 1 }},
		{"negative radius", func(c *Config) { c.SpawnRadius = -1 }},
		{"nan center", func(c *Config) { c.Center.X = math.NaN() }},
		{"zero tile", func(c *Config) { c.TileSize = 0 }},
		{"no main rooms", func(c *Config) { c.MainRoomCount = 0 }},
		{"too many main rooms", func(c *Config) { c.MainRoomCount = c.PointCount + 1 }},
		{"negative spacing", func(c *Config) { c.MainRoomSpacing = -1 }},
		{"negative re-add", func(c *Config) { c.ReAddCount = -1 }},
		{"zero corridor step", func(c *Config) { c.CorridorStep = 0 }},
		{"zero hallway", func(c *Config) { c.HallwaySize = 0 }},
		{"infinite separation step", func(c *Config) { c.SeparationStep = math.Inf(1) }},
		{"negative jitter", func(c *Config) { c.SeparationJitter = -0.5 }},
		{"jitter below tile size", func(c *Config) { c.SeparationJitter = c.TileSize / 2 }},
		{"room sizes between tiles", func(c *Config) { c.RoomMinSize, c.RoomMaxSize = 17, 19 }},
		{"no separation passes", func(c *Config) { c.MaxSeparationPasses = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Validate() = %v, want invalid config", err)
			}
		})
	}
}

func TestParseDungeonSize(t *testing.T) {
	for _, size := range []DungeonSize{SizeSmall, SizeNormal, SizeLarge, SizeHuge} {
		got, err := ParseDungeonSize(size.String())
		if err != nil || got != size {
			t.Errorf("ParseDungeonSize(%q) = %v, %v", size.String(), got, err)
		}
	}
	if _, err := ParseDungeonSize("gigantic"); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("unknown size: got %v, want invalid config", err)
	}
}

func TestGenerationErrorMatching(t *testing.T) {
	err := newError(CodeLayoutUnstable, "rooms still overlap after %d separation passes", 3)
	if got, want := err.Error(), "[layout_unstable] rooms still overlap after 3 separation passes"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
	if !errors.Is(err, ErrLayoutUnstable) {
		t.Error("errors.Is should match on code")
	}
	if errors.Is(err, ErrInvalidConfig) {
		t.Error("errors.Is matched the wrong code")
	}

	var genErr *GenerationError
	if !errors.As(error(err), &genErr) || genErr.Code != CodeLayoutUnstable {
		t.Errorf("errors.As = %v", genErr)
	}
}
