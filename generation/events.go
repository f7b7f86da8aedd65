package generation

import "dungeon-layout/events"

// Event types emitted by a Pipeline
const (
	EventPhaseChanged     events.EventType = "generation.phase_changed"
	EventGenerationFailed events.EventType = "generation.failed"
)

// PhaseChangedEvent is emitted every time the pipeline enters a new phase
type PhaseChangedEvent struct {
	From, To Phase
}

func (PhaseChangedEvent) Type() events.EventType { return EventPhaseChanged }

// GenerationFailedEvent is emitted once when a phase fails
type GenerationFailedEvent struct {
	Phase Phase
	Err   error
}

func (GenerationFailedEvent) Type() events.EventType { return EventGenerationFailed }
