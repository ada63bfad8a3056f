package system

import (
	"sync/atomic"

	"github.com/lixenwraith/xgalaga/component"
	"github.com/lixenwraith/xgalaga/core"
	"github.com/lixenwraith/xgalaga/engine"
	"github.com/lixenwraith/xgalaga/event"
	"github.com/lixenwraith/xgalaga/parameter"
)

// CollisionSystem resolves center-distance contacts once per tick
// Every projectile, enemy and pickup takes part in at most one outcome per tick
type CollisionSystem struct {
	world *engine.World

	// Tick-scoped pass state
	consumed  map[core.Entity]struct{}
	toDestroy []core.Entity

	shipEntity core.Entity
	ship       component.ShipComponent
	shipPos    core.Vec2
	shipAlive  bool

	statKilled *atomic.Int64
}

func NewCollisionSystem(world *engine.World) engine.System {
	s := &CollisionSystem{
		world:    world,
		consumed: make(map[core.Entity]struct{}),
	}
	s.statKilled = world.Resources.Status.Ints.Get("enemy.killed")
	s.Init()
	return s
}

func (s *CollisionSystem) Init() {
	s.statKilled.Store(0)
}

func (s *CollisionSystem) Name() string {
	return "collision"
}

func (s *CollisionSystem) Priority() int {
	return parameter.PriorityCollision
}

func (s *CollisionSystem) EventTypes() []event.EventType {
	return []event.EventType{event.EventGameReset}
}

func (s *CollisionSystem) HandleEvent(ev event.GameEvent) {
	if ev.Type == event.EventGameReset {
		s.Init()
	}
}

func (s *CollisionSystem) Update() {
	// Final score and health are frozen once the run has ended
	if s.world.Resources.Game.Terminal() {
		return
	}

	clear(s.consumed)
	s.toDestroy = s.toDestroy[:0]
	s.loadShip()

	s.resolvePickups()
	s.resolveEnemies()
	s.resolveEnemyProjectiles()

	if s.shipAlive {
		s.world.Components.Ship.Set(s.shipEntity, s.ship)
	}
	s.world.DestroyBatch(s.toDestroy)
}

func (s *CollisionSystem) loadShip() {
	s.shipEntity = s.world.Resources.Player.Entity
	s.shipAlive = false

	ship, ok := s.world.Components.Ship.Get(s.shipEntity)
	if !ok {
		return
	}
	kin, ok := s.world.Components.Kinetic.Get(s.shipEntity)
	if !ok {
		return
	}
	s.ship = ship
	s.shipPos = kin.Pos
	s.shipAlive = true
}

func (s *CollisionSystem) consume(e core.Entity) {
	s.consumed[e] = struct{}{}
	s.toDestroy = append(s.toDestroy, e)
}

func (s *CollisionSystem) isConsumed(e core.Entity) bool {
	_, ok := s.consumed[e]
	return ok
}

// resolvePickups applies every pickup within reach of the ship
func (s *CollisionSystem) resolvePickups() {
	if !s.shipAlive {
		return
	}
	radius := s.world.Resources.Config.Ship.PickupRadius

	for _, e := range s.world.Components.Pickup.All() {
		pickup, ok := s.world.Components.Pickup.Get(e)
		if !ok {
			continue
		}
		kin, ok := s.world.Components.Kinetic.Get(e)
		if !ok || kin.Pos.DistanceTo(s.shipPos) >= radius {
			continue
		}

		s.consume(e)
		switch pickup.Payload.Kind {
		case component.PickupWeapon:
			s.ship.Weapon = pickup.Payload.Weapon
			s.ship.RapidRemaining = 0
		case component.PickupExtraLife:
			s.ship.Health++
		case component.PickupSkipWave:
			s.world.PushEvent(event.EventWaveSkipRequest, nil)
		}
		s.world.PushEvent(event.EventPickupCollected, &event.PickupPayload{
			Entity: e, Payload: pickup.Payload, Pos: kin.Pos,
		})
	}
}

// resolveEnemies checks each enemy against the ship, then against player projectiles
func (s *CollisionSystem) resolveEnemies() {
	cfg := s.world.Resources.Config
	wave := s.world.Resources.Wave

	playerShots := s.projectilesOf(component.FromPlayer)

	for _, e := range s.world.Components.Enemy.All() {
		enemy, ok := s.world.Components.Enemy.Get(e)
		if !ok {
			continue
		}
		kin, ok := s.world.Components.Kinetic.Get(e)
		if !ok {
			continue
		}
		radius := cfg.Enemy.HitRadius(enemy.Kind)

		if s.shipAlive && kin.Pos.DistanceTo(s.shipPos) < radius {
			s.consume(e)
			wave.Rammed++
			SpawnExplosion(s.world, kin.Pos)
			s.damageShip(true)
			// Score freezes the moment the ram ends the game
			if s.world.Resources.Game.GameOver {
				return
			}
			continue
		}

		for _, p := range playerShots {
			if s.isConsumed(p) {
				continue
			}
			pk, ok := s.world.Components.Kinetic.Get(p)
			if !ok || pk.Pos.DistanceTo(kin.Pos) >= radius {
				continue
			}

			s.consume(p)
			s.consume(e)

			score := cfg.Enemy.ScoreFor(enemy.Kind)
			s.world.Resources.Game.Score += score
			wave.KilledByPlayer++
			s.statKilled.Add(1)

			SpawnExplosion(s.world, kin.Pos)
			SpawnFloatingScore(s.world, kin.Pos, score)
			s.world.PushEvent(event.EventEnemyKilled, &event.EnemyKilledPayload{
				Entity: e, Kind: enemy.Kind, Pos: kin.Pos, Score: score,
			})
			break
		}
	}
}

// resolveEnemyProjectiles checks hostile fire against the ship
func (s *CollisionSystem) resolveEnemyProjectiles() {
	radius := s.world.Resources.Config.Ship.HitRadius

	for _, p := range s.projectilesOf(component.FromEnemy) {
		if !s.shipAlive {
			return
		}
		kin, ok := s.world.Components.Kinetic.Get(p)
		if !ok || kin.Pos.DistanceTo(s.shipPos) >= radius {
			continue
		}
		s.consume(p)
		SpawnExplosion(s.world, s.shipPos)
		s.damageShip(false)
	}
}

// damageShip removes one health point and ends the game at zero
func (s *CollisionSystem) damageShip(byEnemy bool) {
	s.ship.Health--
	if s.ship.Health < 0 {
		s.ship.Health = 0
	}
	s.world.PushEvent(event.EventShipHit, &event.ShipHitPayload{Health: s.ship.Health, ByEnemy: byEnemy})

	if s.ship.Health > 0 {
		return
	}

	s.shipAlive = false
	s.toDestroy = append(s.toDestroy, s.shipEntity)

	game := s.world.Resources.Game
	if !game.GameOver {
		game.GameOver = true
		wave := s.world.Resources.Wave
		s.world.PushEvent(event.EventGameOver, &event.GameOverPayload{
			Score: game.Score, Level: wave.Level, Wave: wave.Wave,
		})
	}
}

func (s *CollisionSystem) projectilesOf(owner component.ProjectileOwner) []core.Entity {
	all := s.world.Components.Projectile.All()
	result := make([]core.Entity, 0, len(all))
	for _, e := range all {
		if p, ok := s.world.Components.Projectile.Get(e); ok && p.Owner == owner {
			result = append(result, e)
		}
	}
	return result
}
