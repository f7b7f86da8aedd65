package generation

import (
	"fmt"
	"math/rand"
	"time"
)

// DungeonGenerator hands out pipelines for successive layouts. Each pipeline
// gets its own seed drawn from the generator, so a generator seeded with
// SetSeed yields the same sequence of layouts every time.
type DungeonGenerator struct {
	cfg        Config
	rng        *rand.Rand
	logMessage func(string)
}

// NewDungeonGenerator creates a new dungeon generator seeded from the clock
func NewDungeonGenerator(cfg Config, logFunc func(string)) *DungeonGenerator {
	return &DungeonGenerator{
		cfg:        cfg,
		rng:        rand.New(rand.NewSource(time.Now().UnixNano())),
		logMessage: logFunc,
	}
}

// SetSeed allows setting a specific seed for reproducible dungeons
func (g *DungeonGenerator) SetSeed(seed int64) {
	g.rng = rand.New(rand.NewSource(seed))
}

// Config returns the configuration new pipelines start from
func (g *DungeonGenerator) Config() Config {
	return g.cfg
}

// NextPipeline returns a pipeline for the next layout in the sequence
func (g *DungeonGenerator) NextPipeline() (*Pipeline, error) {
	cfg := g.cfg
	cfg.Seed = g.rng.Int63()
	if g.logMessage != nil {
		g.logMessage(fmt.Sprintf("Starting layout with seed %d", cfg.Seed))
	}
	return NewPipeline(cfg, g.logMessage)
}
