package engine

import (
	"github.com/lixenwraith/xgalaga/component"
	"github.com/lixenwraith/xgalaga/config"
)

// WaveState is the director phase
type WaveState uint8

const (
	WaveSpawning WaveState = iota
	WaveFighting
	WaveWaiting
	WaveLevelCompleted
)

func (s WaveState) String() string {
	switch s {
	case WaveSpawning:
		return "spawning"
	case WaveFighting:
		return "fighting"
	case WaveWaiting:
		return "waiting"
	case WaveLevelCompleted:
		return "level_completed"
	}
	return "unknown"
}

// WaveResource is the director state machine data
// Only DirectorSystem transitions State; collision bumps KilledByPlayer
type WaveResource struct {
	Level     int
	Wave      int
	State     WaveState
	Direction component.Direction

	Spawned        int
	KilledByPlayer int
	Rammed         int // Destroyed by ship contact, never a kill

	// Perfect is the last completed wave's result, cleared when the next wave starts spawning
	Perfect bool

	SpawnTimer component.TimerComponent
	PauseTimer component.TimerComponent
}

// Reset returns to level 1 wave 1 spawning
func (w *WaveResource) Reset(cfg *config.Config) {
	*w = WaveResource{
		Level:      1,
		Wave:       1,
		State:      WaveSpawning,
		Direction:  cfg.Wave.DirectionFor(1),
		SpawnTimer: component.NewRepeatingTimer(cfg.Wave.SpawnCadence),
		PauseTimer: component.NewOnceTimer(cfg.Wave.Pause),
	}
}

// GlobalWave is the 1-based wave count across levels
func (w *WaveResource) GlobalWave(wavesPerLevel int) int {
	return (w.Level-1)*wavesPerLevel + w.Wave
}
