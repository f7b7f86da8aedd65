package generation

import (
	"fmt"
	"math/rand"

	"dungeon-layout/delaunay"
	"dungeon-layout/events"
	"dungeon-layout/mst"
)

// Pipeline runs a generation one bounded unit of work at a time.
//
// Every call to Advance works on the current phase and moves to the next one
// once that phase's work is complete. A Pipeline is not safe for concurrent
// use; callers drive it from a single loop (a frame tick, a test, Run).
type Pipeline struct {
	cfg    Config
	rng    *rand.Rand
	layout *Layout
	phase  Phase
	err    error

	passes     int // separation passes run so far
	router     *CorridorRouter
	routedNext int // index of the next skeleton edge to route

	events     *events.EventManager
	logMessage func(string) // Function for logging messages
}

// NewPipeline validates cfg and returns a pipeline positioned at
// PhaseScatter. logFunc may be nil.
func NewPipeline(cfg Config, logFunc func(string)) (*Pipeline, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Pipeline{
		cfg:        cfg,
		rng:        rand.New(rand.NewSource(cfg.Seed)),
		layout:     newLayout(cfg.Center),
		phase:      PhaseScatter,
		events:     events.NewEventManager(),
		logMessage: logFunc,
	}, nil
}

// Config returns the configuration the pipeline was built with
func (p *Pipeline) Config() Config {
	return p.cfg
}

// Events returns the manager phase changes and failures are emitted on
func (p *Pipeline) Events() *events.EventManager {
	return p.events
}

// Phase returns the phase the next Advance will work on
func (p *Pipeline) Phase() Phase {
	return p.phase
}

// Err returns the error that stopped the pipeline, if any
func (p *Pipeline) Err() error {
	return p.err
}

// SeparationPasses returns how many separation passes have run
func (p *Pipeline) SeparationPasses() int {
	return p.passes
}

// Layout returns a snapshot of the current layout. Partially generated
// layouts are valid to inspect.
func (p *Pipeline) Layout() *Layout {
	return p.layout.Clone()
}

// CanComplete reports whether the next Advance will finish the current
// phase. It is false once the pipeline is done or has failed.
func (p *Pipeline) CanComplete() bool {
	if p.err != nil {
		return false
	}
	switch p.phase {
	case PhaseSeparate:
		return !AnyOverlap(p.layout.rooms)
	case PhaseRouteCorridors:
		return p.routedNext >= len(p.layout.skeletonEdges)-1
	case PhaseDone:
		return false
	}
	return true
}

// Advance performs one unit of work. After PhaseDone it does nothing; after
// a failure it keeps returning the same error.
func (p *Pipeline) Advance() (PhaseStatus, error) {
	status := PhaseStatus{Phase: p.phase, Done: p.phase == PhaseDone}
	if p.err != nil {
		return status, p.err
	}

	var (
		completed bool
		err       error
	)
	switch p.phase {
	case PhaseDone:
		return status, nil
	case PhaseScatter:
		completed = p.scatter()
	case PhaseSeparate:
		completed, err = p.separate()
	case PhaseSelectMainRooms:
		completed = p.selectMainRooms()
	case PhaseTriangulate:
		completed = p.triangulate()
	case PhaseBuildSkeleton:
		completed = p.buildSkeleton()
	case PhaseRouteCorridors:
		completed = p.routeCorridors()
	}

	if err != nil {
		p.err = err
		p.log(fmt.Sprintf("Generation failed during %s: %v", p.phase, err))
		p.events.Emit(GenerationFailedEvent{Phase: p.phase, Err: err})
		return status, err
	}

	if completed {
		from := p.phase
		p.phase = p.phase.next()
		status.Completed = true
		status.Done = p.phase == PhaseDone
		p.events.Emit(PhaseChangedEvent{From: from, To: p.phase})
	}
	return status, nil
}

// RunPhase advances until the current phase completes or fails
func (p *Pipeline) RunPhase() (PhaseStatus, error) {
	for {
		status, err := p.Advance()
		if err != nil || status.Completed || status.Done {
			return status, err
		}
	}
}

// Run drives the pipeline to PhaseDone and returns the finished layout
func (p *Pipeline) Run() (*Layout, error) {
	for p.phase != PhaseDone {
		if _, err := p.RunPhase(); err != nil {
			return nil, err
		}
	}
	return p.Layout(), nil
}

func (p *Pipeline) log(message string) {
	if p.logMessage != nil {
		p.logMessage(message)
	}
}

func (p *Pipeline) scatter() bool {
	points := ScatterPoints(p.rng, p.cfg.Center, p.cfg.SpawnRadius, p.cfg.PointCount, p.cfg.TileSize)
	for _, pt := range points {
		w := RandomDimension(p.rng, p.cfg.RoomMinSize, p.cfg.RoomMaxSize, p.cfg.TileSize)
		h := RandomDimension(p.rng, p.cfg.RoomMinSize, p.cfg.RoomMaxSize, p.cfg.TileSize)
		p.layout.addRoom(pt, w, h)
	}
	p.log(fmt.Sprintf("Scattered %d rooms within radius %g", len(points), p.cfg.SpawnRadius))
	return true
}

func (p *Pipeline) separate() (bool, error) {
	p.passes++
	if !SeparationPass(p.layout.rooms, p.cfg.separationParams(), p.rng) {
		p.log(fmt.Sprintf("Rooms separated after %d passes", p.passes))
		return true, nil
	}
	if p.passes >= p.cfg.MaxSeparationPasses {
		return false, newError(CodeLayoutUnstable,
			"rooms still overlap after %d separation passes", p.passes)
	}
	return false, nil
}

func (p *Pipeline) selectMainRooms() bool {
	ids := SelectMainRooms(p.layout.rooms, p.cfg.MainRoomCount, p.cfg.MainRoomSpacing)
	for _, id := range ids {
		if i := p.layout.indexOf(id); i >= 0 {
			p.layout.rooms[i].IsMain = true
		}
	}
	p.log(fmt.Sprintf("Selected %d main rooms", len(ids)))
	return true
}

func (p *Pipeline) triangulate() bool {
	p.layout.triangles = delaunay.Triangulate(p.layout.MainRoomCenters())
	p.layout.triangulationEdges = delaunay.Edges(p.layout.triangles)
	p.log(fmt.Sprintf("Triangulated main rooms into %d triangles (%d edges)",
		len(p.layout.triangles), len(p.layout.triangulationEdges)))
	return true
}

func (p *Pipeline) buildSkeleton() bool {
	p.layout.spanningEdges = mst.Prim(p.layout.MainRoomCenters())
	p.layout.skeletonEdges = ReduceSkeleton(p.layout.triangulationEdges, p.layout.spanningEdges, p.cfg.ReAddCount, p.rng)
	p.log(fmt.Sprintf("Skeleton keeps %d edges (%d spanning, %d loops)",
		len(p.layout.skeletonEdges), len(p.layout.spanningEdges),
		len(p.layout.skeletonEdges)-len(p.layout.spanningEdges)))
	return true
}

func (p *Pipeline) routeCorridors() bool {
	if p.router == nil {
		p.router = newCorridorRouter(p.layout, CorridorParams{
			Center:      p.cfg.Center,
			Step:        p.cfg.CorridorStep,
			HallwaySize: p.cfg.HallwaySize,
		})
	}

	if p.routedNext < len(p.layout.skeletonEdges) {
		edge := p.layout.skeletonEdges[p.routedNext]
		p.routedNext++
		res := p.router.Route(edge)
		p.log(fmt.Sprintf("Routed corridor %d/%d: %d legs, %d hallway rooms, %d rooms promoted",
			p.routedNext, len(p.layout.skeletonEdges), len(res.Legs), res.Hallways, res.Promoted))
	}
	if p.routedNext < len(p.layout.skeletonEdges) {
		return false
	}

	p.router = nil
	removed := p.layout.prune()
	p.log(fmt.Sprintf("Pruned %d unused rooms, %d rooms remain", removed, len(p.layout.rooms)))
	return true
}

// GenerateLayout runs a complete generation for cfg
func GenerateLayout(cfg Config) (*Layout, error) {
	p, err := NewPipeline(cfg, nil)
	if err != nil {
		return nil, err
	}
	return p.Run()
}
