package audio

import (
	"time"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/xgalaga/event"
)

// SoundType identifies a cue
type SoundType int

const (
	SoundPlayerShot SoundType = iota
	SoundEnemyShot
	SoundExplosion
	SoundShipHit
	SoundPickup
	SoundWaveStart
	SoundLevelComplete
	SoundGameOver
	SoundVictory

	soundTypeCount
)

var soundNames = [soundTypeCount]string{
	"player_shot",
	"enemy_shot",
	"explosion",
	"ship_hit",
	"pickup",
	"wave_start",
	"level_complete",
	"game_over",
	"victory",
}

func (s SoundType) String() string {
	if s >= 0 && s < soundTypeCount {
		return soundNames[s]
	}
	return "unknown"
}

// soundFor maps a game event to its cue, ok is false for silent events
func soundFor(t event.EventType) (SoundType, bool) {
	switch t {
	case event.EventPlayerFired:
		return SoundPlayerShot, true
	case event.EventEnemyFired:
		return SoundEnemyShot, true
	case event.EventExplosion:
		return SoundExplosion, true
	case event.EventShipHit:
		return SoundShipHit, true
	case event.EventPickupCollected:
		return SoundPickup, true
	case event.EventWaveStarted:
		return SoundWaveStart, true
	case event.EventLevelCompleted:
		return SoundLevelComplete, true
	case event.EventGameOver:
		return SoundGameOver, true
	case event.EventVictory:
		return SoundVictory, true
	}
	return 0, false
}

func note(rate beep.SampleRate, freq float64, d time.Duration, shape WaveShape) beep.Streamer {
	return newEnvelope(NewTone(rate, freq, freq, d, shape), rate, d, 5*time.Millisecond, d/3)
}

// newSound builds a fresh finite streamer for st
func newSound(st SoundType, rate beep.SampleRate) beep.Streamer {
	switch st {
	case SoundPlayerShot:
		d := 60 * time.Millisecond
		return withVolume(newEnvelope(NewTone(rate, 1400, 700, d, ShapeSquare), rate, d, time.Millisecond, 30*time.Millisecond), 0.15)

	case SoundEnemyShot:
		d := 80 * time.Millisecond
		return withVolume(newEnvelope(NewTone(rate, 500, 300, d, ShapeSaw), rate, d, time.Millisecond, 40*time.Millisecond), 0.1)

	case SoundExplosion:
		d := 250 * time.Millisecond
		return withVolume(beep.Mix(
			newEnvelope(NewTone(rate, 0, 0, d, ShapeNoise), rate, d, 2*time.Millisecond, 200*time.Millisecond),
			newEnvelope(NewTone(rate, 120, 40, d, ShapeSine), rate, d, 2*time.Millisecond, 200*time.Millisecond),
		), 0.35)

	case SoundShipHit:
		d := 200 * time.Millisecond
		return withVolume(newEnvelope(NewTone(rate, 200, 60, d, ShapeSaw), rate, d, 5*time.Millisecond, 100*time.Millisecond), 0.4)

	case SoundPickup:
		return withVolume(beep.Seq(
			note(rate, 988, 60*time.Millisecond, ShapeSine),
			note(rate, 1319, 120*time.Millisecond, ShapeSine),
		), 0.3)

	case SoundWaveStart:
		return withVolume(beep.Seq(
			note(rate, 440, 80*time.Millisecond, ShapeSquare),
			note(rate, 660, 80*time.Millisecond, ShapeSquare),
		), 0.15)

	case SoundLevelComplete:
		return withVolume(beep.Seq(
			note(rate, 523, 100*time.Millisecond, ShapeSquare),
			note(rate, 659, 100*time.Millisecond, ShapeSquare),
			note(rate, 784, 200*time.Millisecond, ShapeSquare),
		), 0.2)

	case SoundGameOver:
		return withVolume(beep.Seq(
			note(rate, 392, 200*time.Millisecond, ShapeSaw),
			note(rate, 330, 200*time.Millisecond, ShapeSaw),
			note(rate, 262, 400*time.Millisecond, ShapeSaw),
		), 0.25)

	case SoundVictory:
		return withVolume(beep.Seq(
			note(rate, 523, 120*time.Millisecond, ShapeSquare),
			note(rate, 659, 120*time.Millisecond, ShapeSquare),
			note(rate, 784, 120*time.Millisecond, ShapeSquare),
			note(rate, 1047, 360*time.Millisecond, ShapeSquare),
		), 0.25)
	}
	return beep.Silence(0)
}
