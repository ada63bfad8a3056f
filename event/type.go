package event

import "fmt"

// EventType represents the type of game event
type EventType int

const (
	// === Lifecycle ===

	// EventGameReset signals a full restart, systems re-run Init
	// Trigger: Game.Reset | Consumer: all systems | Payload: nil
	EventGameReset EventType = iota

	// EventPaused and EventResumed mirror the pause toggle
	// Trigger: Game.Step | Consumer: host | Payload: nil
	EventPaused
	EventResumed

	// === Weapon ===

	// EventPlayerFired reports one player firing decision or rapid emission
	// Trigger: WeaponSystem | Consumer: host audio | Payload: *PlayerFiredPayload
	EventPlayerFired

	// EventEnemyFired reports one aimed enemy shot
	// Trigger: WeaponSystem | Consumer: host audio | Payload: *EnemyFiredPayload
	EventEnemyFired

	// === Director ===

	// EventEnemySpawned reports a new enemy
	// Trigger: DirectorSystem | Consumer: host | Payload: *EnemySpawnedPayload
	EventEnemySpawned

	// EventWaveStarted fires on the first spawn of a wave
	// Trigger: DirectorSystem | Consumer: host UI | Payload: *WavePayload
	EventWaveStarted

	// EventWaveCompleted fires once per wave when the last live enemy is gone
	// Trigger: DirectorSystem | Consumer: host UI | Payload: *WaveCompletedPayload
	EventWaveCompleted

	// EventLevelCompleted fires when the director enters LevelCompleted
	// Trigger: DirectorSystem | Consumer: host UI | Payload: *WavePayload
	EventLevelCompleted

	// EventVictory fires once when the final level is cleared
	// Trigger: DirectorSystem | Consumer: host UI | Payload: nil
	EventVictory

	// EventWaveSkipRequest forces the director into LevelCompleted
	// Trigger: CollisionSystem (skip pickup) | Consumer: DirectorSystem | Payload: nil
	EventWaveSkipRequest

	// === Collision ===

	// EventShipHit reports one point of ship damage
	// Trigger: CollisionSystem | Consumer: host | Payload: *ShipHitPayload
	EventShipHit

	// EventGameOver fires exactly once when health reaches zero
	// Trigger: CollisionSystem | Consumer: host UI | Payload: *GameOverPayload
	EventGameOver

	// EventEnemyKilled reports a player kill
	// Trigger: CollisionSystem | Consumer: LootSystem, host | Payload: *EnemyKilledPayload
	EventEnemyKilled

	// EventExplosion reports an explosion effect spawn
	// Trigger: CollisionSystem | Consumer: host audio | Payload: *ExplosionPayload
	EventExplosion

	// === Loot ===

	// EventPickupSpawned reports a drop
	// Trigger: LootSystem | Consumer: host | Payload: *PickupPayload
	EventPickupSpawned

	// EventPickupCollected reports a payload applied to the ship
	// Trigger: CollisionSystem | Consumer: LootSystem stats, host | Payload: *PickupPayload
	EventPickupCollected

	eventTypeCount // Sentinel
)

var eventTypeNames = [eventTypeCount]string{
	"GameReset",
	"Paused",
	"Resumed",
	"PlayerFired",
	"EnemyFired",
	"EnemySpawned",
	"WaveStarted",
	"WaveCompleted",
	"LevelCompleted",
	"Victory",
	"WaveSkipRequest",
	"ShipHit",
	"GameOver",
	"EnemyKilled",
	"Explosion",
	"PickupSpawned",
	"PickupCollected",
}

func (t EventType) String() string {
	if t >= 0 && t < eventTypeCount {
		return eventTypeNames[t]
	}
	return fmt.Sprintf("EventType(%d)", int(t))
}

// GameEvent is one routed event, Frame is the tick it was pushed in
type GameEvent struct {
	Type    EventType
	Payload any
	Frame   int64
}
