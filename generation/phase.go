package generation

import "fmt"

// Phase is one step of the generation pipeline. Phases only move forward.
type Phase int

const (
	PhaseScatter Phase = iota
	PhaseSeparate
	PhaseSelectMainRooms
	PhaseTriangulate
	PhaseBuildSkeleton
	PhaseRouteCorridors
	PhaseDone
)

var phaseNames = [...]string{
	PhaseScatter:         "Scatter",
	PhaseSeparate:        "Separate",
	PhaseSelectMainRooms: "SelectMainRooms",
	PhaseTriangulate:     "Triangulate",
	PhaseBuildSkeleton:   "BuildSkeleton",
	PhaseRouteCorridors:  "RouteCorridors",
	PhaseDone:            "Done",
}

func (p Phase) String() string {
	if p >= 0 && int(p) < len(phaseNames) {
		return phaseNames[p]
	}
	return fmt.Sprintf("Phase(%d)", int(p))
}

// next returns the phase that follows p
func (p Phase) next() Phase {
	if p >= PhaseDone {
		return PhaseDone
	}
	return p + 1
}

// PhaseStatus describes the outcome of one Advance call
type PhaseStatus struct {
	Phase     Phase // the phase the call worked on
	Completed bool  // Phase finished during this call
	Done      bool  // the pipeline has reached PhaseDone
}
