package engine

import (
	"math/rand"

	"github.com/lixenwraith/xgalaga/config"
	"github.com/lixenwraith/xgalaga/core"
	"github.com/lixenwraith/xgalaga/status"
)

// Resource holds singleton simulation state, accessed via World.Resources
type Resource struct {
	Time   *TimeResource
	Config *config.Config
	Game   *GameStateResource
	Wave   *WaveResource
	Player *PlayerResource
	Input  *InputResource

	// Rand is the only randomness source of the simulation
	Rand *rand.Rand

	// Telemetry
	Status *status.Registry
}

// TimeResource is updated by World.Update at the start of a tick
type TimeResource struct {
	// SimTime is accumulated simulated seconds, frozen while paused
	SimTime float64

	// DeltaTime is the clamped step length in seconds
	DeltaTime float64

	FrameNumber int64
}

// PlayerResource tracks the ship entity, zero when no ship exists
type PlayerResource struct {
	Entity core.Entity
}

// InputResource holds the held-state movement and fire intents for the current tick
// Edge detection is the consumer's job
type InputResource struct {
	MoveLeft  bool
	MoveRight bool
	Fire      bool
}

// GameStateResource is the progress state read by the host UI
// Score and GameOver are written by collision, Victory by the director
type GameStateResource struct {
	Score    int
	GameOver bool
	Victory  bool
	Paused   bool
}

// Terminal reports whether the run has ended
func (g *GameStateResource) Terminal() bool {
	return g.GameOver || g.Victory
}
