package system

import (
	"sync/atomic"

	"github.com/tsujio/game-util/mathutil"

	"github.com/lixenwraith/xgalaga/component"
	"github.com/lixenwraith/xgalaga/core"
	"github.com/lixenwraith/xgalaga/engine"
	"github.com/lixenwraith/xgalaga/event"
	"github.com/lixenwraith/xgalaga/parameter"
)

// WeaponSystem creates projectiles for the ship on fire edges and for enemies on their timers
// It writes new projectiles and the ship's rapid queue, nothing else
type WeaponSystem struct {
	world *engine.World

	// prevFire is the fire intent of the previous tick for edge detection
	prevFire bool

	statPlayerShots *atomic.Int64
	statEnemyShots  *atomic.Int64
}

func NewWeaponSystem(world *engine.World) engine.System {
	s := &WeaponSystem{world: world}
	s.statPlayerShots = world.Resources.Status.Ints.Get("shots.player")
	s.statEnemyShots = world.Resources.Status.Ints.Get("shots.enemy")
	s.Init()
	return s
}

func (s *WeaponSystem) Init() {
	s.prevFire = false
	s.statPlayerShots.Store(0)
	s.statEnemyShots.Store(0)
}

func (s *WeaponSystem) Name() string {
	return "weapon"
}

func (s *WeaponSystem) Priority() int {
	return parameter.PriorityWeapon
}

func (s *WeaponSystem) EventTypes() []event.EventType {
	return []event.EventType{event.EventGameReset}
}

func (s *WeaponSystem) HandleEvent(ev event.GameEvent) {
	if ev.Type == event.EventGameReset {
		s.Init()
	}
}

func (s *WeaponSystem) Update() {
	dt := s.world.Resources.Time.DeltaTime

	fire := s.world.Resources.Input.Fire
	pressed := fire && !s.prevFire
	s.prevFire = fire

	// No one fires after game over or victory, a queued rapid burst is abandoned
	if s.world.Resources.Game.Terminal() {
		return
	}

	s.updatePlayer(dt, pressed)
	s.updateEnemies(dt)
}

func (s *WeaponSystem) updatePlayer(dt float64, pressed bool) {
	shipEntity := s.world.Resources.Player.Entity
	ship, ok := s.world.Components.Ship.Get(shipEntity)
	if !ok {
		return
	}
	kin, ok := s.world.Components.Kinetic.Get(shipEntity)
	if !ok {
		return
	}
	cfg := &s.world.Resources.Config.Weapon
	muzzle := kin.Pos.Add(core.V(0, cfg.MuzzleOffset))

	if pressed {
		if n := ship.Weapon.RapidCount(); n > 0 {
			// A new press restarts the queue, it never stacks
			ship.RapidRemaining = n
			ship.RapidTimer = component.NewRepeatingTimer(cfg.RapidInterval)
		} else {
			count := s.firePattern(ship.Weapon, muzzle)
			s.world.PushEvent(event.EventPlayerFired, &event.PlayerFiredPayload{Weapon: ship.Weapon, Count: count})
		}
	}

	if ship.RapidRemaining > 0 && ship.RapidTimer.Tick(dt) {
		s.spawnProjectile(muzzle, core.V(0, cfg.BulletSpeed), component.FromPlayer)
		s.statPlayerShots.Add(1)
		ship.RapidRemaining--
		s.world.PushEvent(event.EventPlayerFired, &event.PlayerFiredPayload{Weapon: ship.Weapon, Count: 1})
	}

	s.world.Components.Ship.Set(shipEntity, ship)
}

// firePattern emits the instant patterns and returns the projectile count
func (s *WeaponSystem) firePattern(mode component.WeaponMode, muzzle core.Vec2) int {
	cfg := &s.world.Resources.Config.Weapon
	speed := cfg.BulletSpeed
	count := 0
	shoot := func(offsetX, velX float64) {
		s.spawnProjectile(muzzle.Add(core.V(offsetX, 0)), core.V(velX, speed), component.FromPlayer)
		count++
	}

	switch mode {
	case component.WeaponDoubleParallel:
		shoot(-cfg.ParallelOffset, 0)
		shoot(cfg.ParallelOffset, 0)
	case component.WeaponDoubleV:
		shoot(0, -cfg.DivergeSpeed)
		shoot(0, cfg.DivergeSpeed)
	default:
		n := mode.FanCount()
		if n == 0 {
			shoot(0, 0)
			break
		}
		// Symmetric around straight up: step runs -(n-1)/2 .. (n-1)/2
		for i := 0; i < n; i++ {
			step := float64(i) - float64(n-1)/2
			shoot(0, step*cfg.FanStep)
		}
	}

	s.statPlayerShots.Add(int64(count))
	return count
}

func (s *WeaponSystem) updateEnemies(dt float64) {
	cfg := s.world.Resources.Config
	halfW, halfH := cfg.Playfield.Width/2, cfg.Playfield.Height/2

	shipKin, shipAlive := s.world.Components.Kinetic.Get(s.world.Resources.Player.Entity)

	for _, e := range s.world.Components.Enemy.All() {
		enemy, ok := s.world.Components.Enemy.Get(e)
		if !ok {
			continue
		}
		expired := enemy.FireTimer.Tick(dt)
		s.world.Components.Enemy.Set(e, enemy)
		if !expired || !shipAlive {
			continue
		}

		kin, ok := s.world.Components.Kinetic.Get(e)
		if !ok || !kin.Pos.Within(halfW, halfH) {
			continue
		}

		s.spawnProjectile(kin.Pos, aimAt(kin.Pos, shipKin.Pos, cfg.Enemy.BulletSpeed), component.FromEnemy)
		s.statEnemyShots.Add(1)
		s.world.PushEvent(event.EventEnemyFired, &event.EnemyFiredPayload{Enemy: e, Kind: enemy.Kind, Pos: kin.Pos})
	}
}

// aimAt returns a velocity of the given speed from 'from' toward 'to', straight down when they coincide
func aimAt(from, to core.Vec2, speed float64) core.Vec2 {
	dir := mathutil.NewVector2D(to.X-from.X, to.Y-from.Y)
	if dir.Norm() == 0 {
		return core.V(0, -speed)
	}
	v := dir.Normalize().Mul(speed)
	return core.V(v.X, v.Y)
}

func (s *WeaponSystem) spawnProjectile(pos, vel core.Vec2, owner component.ProjectileOwner) core.Entity {
	e := s.world.CreateEntity()
	s.world.Components.Kinetic.Set(e, component.KineticComponent{Pos: pos, Vel: vel})
	s.world.Components.Projectile.Set(e, component.ProjectileComponent{Owner: owner})
	return e
}
