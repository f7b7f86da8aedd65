package main

import (
	"fmt"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"dungeon-layout/config"
	"dungeon-layout/events"
	"dungeon-layout/generation"
	"dungeon-layout/logs"
	"dungeon-layout/render"
	"dungeon-layout/tilemap"
)

// Game implements ebiten.Game interface. It steps a generation pipeline on a
// timer and draws the layout as it is built.
type Game struct {
	generator  *generation.DungeonGenerator
	pipeline   *generation.Pipeline
	messageLog *logs.MessageLog
	renderer   *render.LayoutRenderer

	layout *generation.Layout // snapshot taken after the last step
	tiles  *tilemap.TileMap   // rasterised once the pipeline is done

	ticks     int
	paused    bool
	showLog   bool
	logScroll int
}

// NewGame creates a viewer and starts the first layout
func NewGame(generator *generation.DungeonGenerator, messageLog *logs.MessageLog) (*Game, error) {
	areaWidth, areaHeight := config.GetLayoutArea()
	g := &Game{
		generator:  generator,
		messageLog: messageLog,
		renderer:   render.NewLayoutRenderer(float64(areaWidth), float64(areaHeight), config.LayoutMargin),
	}
	if err := g.regenerate(); err != nil {
		return nil, err
	}
	return g, nil
}

// regenerate discards the current pipeline and starts a new one
func (g *Game) regenerate() error {
	pipeline, err := g.generator.NextPipeline()
	if err != nil {
		return fmt.Errorf("start pipeline: %w", err)
	}
	pipeline.Events().Subscribe(generation.EventPhaseChanged, func(e events.Event) {
		changed := e.(generation.PhaseChangedEvent)
		g.messageLog.Addf("Phase %s -> %s", changed.From, changed.To)
		if changed.To == generation.PhaseDone {
			g.tiles = tilemap.Rasterize(pipeline.Layout(), g.generator.Config().TileSize)
		}
	})
	pipeline.Events().Subscribe(generation.EventGenerationFailed, func(e events.Event) {
		failed := e.(generation.GenerationFailedEvent)
		g.messageLog.Addf("ERROR: %s failed: %v", failed.Phase, failed.Err)
	})

	g.pipeline = pipeline
	g.layout = pipeline.Layout()
	g.tiles = nil
	g.ticks = 0
	return nil
}

// step advances the pipeline once and refreshes the snapshot
func (g *Game) step() {
	if g.pipeline.Err() != nil || g.pipeline.Phase() == generation.PhaseDone {
		return
	}
	// failures are reported through the failed event
	_, _ = g.pipeline.Advance()
	g.layout = g.pipeline.Layout()
}

// Update updates the viewer state.
func (g *Game) Update() error {
	// Toggle message log window with F1 key
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		g.showLog = !g.showLog
		g.logScroll = 0
	}
	if g.showLog {
		if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
			g.showLog = false
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) && g.logScroll < g.messageLog.Len()-1 {
			g.logScroll++
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) && g.logScroll > 0 {
			g.logScroll--
		}
		return nil
	}

	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		if err := g.regenerate(); err != nil {
			return err
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyT) {
		g.renderer.ToggleTriangulation()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		g.renderer.ToggleTiles()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.step()
		return nil
	}

	if g.paused {
		return nil
	}
	g.ticks++
	if g.ticks%config.StepInterval == 0 {
		g.step()
	}
	return nil
}

// Draw draws the viewer screen.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(render.ColorBackground)

	if g.showLog {
		g.drawMessageLog(screen)
		return
	}

	g.renderer.Draw(screen, g.layout, g.tiles)
	g.drawStatusPanel(screen)
}

// drawStatusPanel prints the pipeline state and the newest messages
func (g *Game) drawStatusPanel(screen *ebiten.Image) {
	_, areaHeight := config.GetLayoutArea()

	status := fmt.Sprintf("Seed %d  Phase %s  Rooms %d  Passes %d",
		g.pipeline.Config().Seed, g.pipeline.Phase(), len(g.layout.Rooms()), g.pipeline.SeparationPasses())
	if g.paused {
		status += "  [paused]"
	}
	if err := g.pipeline.Err(); err != nil {
		status += "  " + err.Error()
	}

	lines := []string{status, "Space: pause | N: step | R: regenerate | T: triangulation | M: tiles | F1: log"}
	lines = append(lines, g.messageLog.RecentMessages(config.StatusMessages)...)
	ebitenutil.DebugPrintAt(screen, strings.Join(lines, "\n"), 8, areaHeight)
}

// drawMessageLog draws the scrollable message log overlay
func (g *Game) drawMessageLog(screen *ebiten.Image) {
	messages := g.messageLog.RecentMessages(g.logScroll + config.LogMessages)
	if g.logScroll < len(messages) {
		messages = messages[g.logScroll:]
	} else {
		messages = nil
	}

	var sb strings.Builder
	sb.WriteString("MESSAGE LOG (Up/Down to scroll, Esc to close)\n\n")
	for _, m := range messages {
		sb.WriteString(m)
		sb.WriteByte('\n')
	}
	ebitenutil.DebugPrintAt(screen, sb.String(), 8, 8)
}

// Layout implements ebiten.Game's Layout.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.GetScreenDimensions()
}
