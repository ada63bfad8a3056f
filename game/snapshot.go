package game

import (
	"cmp"
	"slices"

	"github.com/samber/lo"

	"github.com/lixenwraith/xgalaga/component"
	"github.com/lixenwraith/xgalaga/core"
	"github.com/lixenwraith/xgalaga/engine"
	"github.com/lixenwraith/xgalaga/event"
)

// EntityKind classifies a body for rendering
type EntityKind uint8

const (
	KindShip EntityKind = iota
	KindSoldier
	KindBoss
	KindPlayerProjectile
	KindEnemyProjectile
	KindPickup
	KindExplosion
	KindFloatingScore
)

func (k EntityKind) String() string {
	switch k {
	case KindShip:
		return "ship"
	case KindSoldier:
		return "soldier"
	case KindBoss:
		return "boss"
	case KindPlayerProjectile:
		return "player_projectile"
	case KindEnemyProjectile:
		return "enemy_projectile"
	case KindPickup:
		return "pickup"
	case KindExplosion:
		return "explosion"
	case KindFloatingScore:
		return "floating_score"
	}
	return "unknown"
}

// EntityView is a read-only copy of one body
type EntityView struct {
	ID   core.Entity
	Kind EntityKind
	Pos  core.Vec2
	Vel  core.Vec2

	Pickup component.PickupPayload // KindPickup
	Value  int                     // KindFloatingScore
	Life   float64                 // Remaining seconds for effects
}

// Snapshot is the state a host needs to draw one frame
type Snapshot struct {
	Frame   int64
	SimTime float64

	Width, Height float64

	// Entities ordered by id
	Entities []EntityView

	Score int
	Lives int
	Level int
	Wave  int

	WaveState engine.WaveState
	Direction component.Direction
	Perfect   bool

	Weapon         component.WeaponMode
	RapidRemaining int

	GameOver bool
	Victory  bool
	Paused   bool
}

// Count returns how many entities of kind are in the snapshot
func (s *Snapshot) Count(kind EntityKind) int {
	return lo.CountBy(s.Entities, func(v EntityView) bool {
		return v.Kind == kind
	})
}

// TickEffects is the result of one Step
type TickEffects struct {
	Snapshot Snapshot

	// Events are the one-shot notifications of this tick, in emission order
	Events []event.GameEvent

	Quit bool
}

// Has reports whether the tick emitted an event of type t
func (t *TickEffects) Has(typ event.EventType) bool {
	return lo.ContainsBy(t.Events, func(ev event.GameEvent) bool {
		return ev.Type == typ
	})
}

func buildSnapshot(w *engine.World) Snapshot {
	res := w.Resources
	cs := &w.Components

	views := lo.FilterMap(cs.Kinetic.All(), func(e core.Entity, _ int) (EntityView, bool) {
		kin, ok := cs.Kinetic.Get(e)
		if !ok {
			return EntityView{}, false
		}
		v := EntityView{ID: e, Pos: kin.Pos, Vel: kin.Vel}

		if _, ok := cs.Ship.Get(e); ok {
			v.Kind = KindShip
		} else if enemy, ok := cs.Enemy.Get(e); ok {
			v.Kind = KindSoldier
			if enemy.Kind == component.EnemyBoss {
				v.Kind = KindBoss
			}
		} else if p, ok := cs.Projectile.Get(e); ok {
			v.Kind = KindPlayerProjectile
			if p.Owner == component.FromEnemy {
				v.Kind = KindEnemyProjectile
			}
		} else if pickup, ok := cs.Pickup.Get(e); ok {
			v.Kind = KindPickup
			v.Pickup = pickup.Payload
		} else if fx, ok := cs.Effect.Get(e); ok {
			v.Kind = KindExplosion
			if fx.Kind == component.EffectFloatingScore {
				v.Kind = KindFloatingScore
				v.Value = fx.Value
			}
			v.Life = fx.Timer.Remaining
		} else {
			return EntityView{}, false
		}
		return v, true
	})
	slices.SortFunc(views, func(a, b EntityView) int {
		return cmp.Compare(a.ID, b.ID)
	})

	snap := Snapshot{
		Frame:     res.Time.FrameNumber,
		SimTime:   res.Time.SimTime,
		Width:     res.Config.Playfield.Width,
		Height:    res.Config.Playfield.Height,
		Entities:  views,
		Score:     res.Game.Score,
		Level:     res.Wave.Level,
		Wave:      res.Wave.Wave,
		WaveState: res.Wave.State,
		Direction: res.Wave.Direction,
		Perfect:   res.Wave.Perfect,
		GameOver:  res.Game.GameOver,
		Victory:   res.Game.Victory,
		Paused:    res.Game.Paused,
	}
	if ship, ok := cs.Ship.Get(res.Player.Entity); ok {
		snap.Lives = ship.Health
		snap.Weapon = ship.Weapon
		snap.RapidRemaining = ship.RapidRemaining
	}
	return snap
}
