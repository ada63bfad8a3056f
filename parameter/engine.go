package parameter

import "time"

// Game Loop & Engine Timing
const (
	// FrameUpdateInterval is the host frame interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// MaxStepSeconds caps a single simulation step so a stalled host cannot tunnel entities
	MaxStepSeconds = 0.1

	// EventDrainPasses bounds how many times a tick re-drains events pushed by handlers
	EventDrainPasses = 8
)

// ECS & Resources Limits
const (
	// EventQueueSize is the initial event buffer capacity, the buffer grows past it
	EventQueueSize = 1024
)
