package event

import (
	"github.com/lixenwraith/xgalaga/component"
	"github.com/lixenwraith/xgalaga/core"
)

// PlayerFiredPayload carries the projectiles created by one decision
type PlayerFiredPayload struct {
	Weapon component.WeaponMode
	Count  int
}

// EnemyFiredPayload carries the shooter and its aim
type EnemyFiredPayload struct {
	Enemy core.Entity
	Kind  component.EnemyKind
	Pos   core.Vec2
}

// EnemySpawnedPayload carries the new enemy
type EnemySpawnedPayload struct {
	Entity    core.Entity
	Kind      component.EnemyKind
	Direction component.Direction
	Index     int // 0-based spawn index in the wave
}

// WavePayload identifies a wave
type WavePayload struct {
	Level     int
	Wave      int
	Direction component.Direction
}

// WaveCompletedPayload reports the outcome of a wave
type WaveCompletedPayload struct {
	Level   int
	Wave    int
	Kills   int
	Spawned int
	Perfect bool
}

// ShipHitPayload reports damage and remaining health
type ShipHitPayload struct {
	Health  int
	ByEnemy bool // false: enemy projectile
}

// GameOverPayload carries the final score
type GameOverPayload struct {
	Score int
	Level int
	Wave  int
}

// EnemyKilledPayload reports a player kill at the death position
type EnemyKilledPayload struct {
	Entity core.Entity
	Kind   component.EnemyKind
	Pos    core.Vec2
	Score  int
}

// ExplosionPayload reports an explosion position
type ExplosionPayload struct {
	Pos core.Vec2
}

// PickupPayload reports a pickup spawn or collection
type PickupPayload struct {
	Entity  core.Entity
	Payload component.PickupPayload
	Pos     core.Vec2
}
