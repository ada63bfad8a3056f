package system

import (
	"github.com/lixenwraith/xgalaga/component"
	"github.com/lixenwraith/xgalaga/config"
	"github.com/lixenwraith/xgalaga/core"
	"github.com/lixenwraith/xgalaga/engine"
	"github.com/lixenwraith/xgalaga/event"
)

// newWorld returns a seeded world with the given systems registered
func newWorld(cfg config.Config, ctors ...func(*engine.World) engine.System) *engine.World {
	w := engine.NewTestWorld(cfg)
	for _, ctor := range ctors {
		w.AddSystem(ctor(w))
	}
	return w
}

// tick runs one update plus event drain and returns the drained events
func tick(w *engine.World, dt float64) []event.GameEvent {
	w.Update(dt)
	return w.DrainEvents()
}

func countEvents(events []event.GameEvent, t event.EventType) int {
	n := 0
	for _, ev := range events {
		if ev.Type == t {
			n++
		}
	}
	return n
}

func spawnEnemy(w *engine.World, kind component.EnemyKind, pos, vel core.Vec2) core.Entity {
	e := w.CreateEntity()
	w.Components.Kinetic.Set(e, component.KineticComponent{Pos: pos, Vel: vel})
	w.Components.Enemy.Set(e, component.EnemyComponent{
		Kind:      kind,
		FireTimer: component.NewRepeatingTimer(w.Resources.Config.Enemy.FirePeriod(kind)),
	})
	return e
}

func spawnShot(w *engine.World, owner component.ProjectileOwner, pos, vel core.Vec2) core.Entity {
	e := w.CreateEntity()
	w.Components.Kinetic.Set(e, component.KineticComponent{Pos: pos, Vel: vel})
	w.Components.Projectile.Set(e, component.ProjectileComponent{Owner: owner})
	return e
}

func spawnPickup(w *engine.World, payload component.PickupPayload, pos core.Vec2) core.Entity {
	e := w.CreateEntity()
	w.Components.Kinetic.Set(e, component.KineticComponent{Pos: pos})
	w.Components.Pickup.Set(e, component.PickupComponent{Payload: payload})
	return e
}

func shipOf(w *engine.World) component.ShipComponent {
	ship, _ := w.Components.Ship.Get(w.Resources.Player.Entity)
	return ship
}

func setWeapon(w *engine.World, mode component.WeaponMode) {
	e := w.Resources.Player.Entity
	ship, _ := w.Components.Ship.Get(e)
	ship.Weapon = mode
	w.Components.Ship.Set(e, ship)
}

// projectileVelocities lists the velocities of projectiles of an owner
func projectileVelocities(w *engine.World, owner component.ProjectileOwner) []core.Vec2 {
	var result []core.Vec2
	for _, e := range w.Components.Projectile.All() {
		p, _ := w.Components.Projectile.Get(e)
		if p.Owner != owner {
			continue
		}
		kin, _ := w.Components.Kinetic.Get(e)
		result = append(result, kin.Vel)
	}
	return result
}
