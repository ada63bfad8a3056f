package game

import (
	"fmt"
	"math/rand"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/xgalaga/component"
	"github.com/lixenwraith/xgalaga/config"
	"github.com/lixenwraith/xgalaga/core"
	"github.com/lixenwraith/xgalaga/engine"
	"github.com/lixenwraith/xgalaga/event"
	"github.com/lixenwraith/xgalaga/status"
	"github.com/lixenwraith/xgalaga/system"
)

// Game owns one simulation and is driven by the host, one Step per frame
// Not safe for concurrent use
type Game struct {
	cfg   config.Config
	world *engine.World

	// pending holds events emitted outside Step, returned by the next Step
	pending []event.GameEvent

	statTicks    *atomic.Int64
	statEntities *atomic.Int64
	statPeak     *atomic.Int64
	statSimTime  *status.AtomicFloat
}

// New validates cfg and builds a game at level 1 wave 1 with a fresh ship
func New(cfg config.Config, opts ...Option) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("new game: %w", err)
	}

	var o options
	for _, opt := range opts {
		opt(&o)
	}
	rng := o.rng
	if rng == nil {
		rng = rand.New(rand.NewSource(resolveSeed(cfg.Sim.Seed, o)))
	}

	g := &Game{cfg: cfg}
	g.world = engine.NewWorld(&g.cfg, rng, o.registry)

	registry := g.world.Resources.Status
	g.statTicks = registry.Ints.Get("tick.count")
	g.statEntities = registry.Ints.Get("entity.count")
	g.statSimTime = registry.Floats.Get("sim.time")
	g.statPeak = registry.Ints.Get("event.peak")

	g.world.AddSystem(system.NewShipSystem(g.world))
	g.world.AddSystem(system.NewWeaponSystem(g.world))
	g.world.AddSystem(system.NewMovementSystem(g.world))
	g.world.AddSystem(system.NewEffectSystem(g.world))
	g.world.AddSystem(system.NewDirectorSystem(g.world))
	g.world.AddSystem(system.NewCollisionSystem(g.world))
	g.world.AddSystem(system.NewLootSystem(g.world))

	g.Reset()
	return g, nil
}

// resolveSeed picks the option seed, then a non-zero config seed, then the clock
// An explicit option seed is used as given, zero included
func resolveSeed(cfgSeed int64, o options) int64 {
	switch {
	case o.seeded:
		return o.seed
	case cfgSeed != 0:
		return cfgSeed
	}
	return time.Now().UnixNano()
}

// Reset reinitializes world and progress as a single transition and unpauses
func (g *Game) Reset() {
	w := g.world
	w.Clear()

	*w.Resources.Game = engine.GameStateResource{}
	*w.Resources.Time = engine.TimeResource{}
	*w.Resources.Input = engine.InputResource{}
	w.Resources.Status.Reset()

	ship := w.CreateEntity()
	w.Components.Kinetic.Set(ship, component.KineticComponent{Pos: core.V(0, g.cfg.Ship.StartY)})
	w.Components.Ship.Set(ship, component.ShipComponent{
		Health: g.cfg.Ship.Health,
		Weapon: g.cfg.StartWeaponMode(),
	})
	w.Resources.Player.Entity = ship

	// Systems re-run Init from the reset event, the director rewinds the wave here
	w.PushEvent(event.EventGameReset, nil)
	g.pending = append(g.pending, w.DrainEvents()...)
	g.statEntities.Store(int64(w.EntityCount()))
}

// Step advances the simulation by dt seconds under the given intents
// Quit short-circuits, Restart resets before anything else, a paused game skips all systems
func (g *Game) Step(dt float64, in Input) TickEffects {
	w := g.world

	if in.Quit {
		return g.effects(true)
	}
	if in.Restart {
		g.Reset()
	}
	if in.PauseToggle {
		game := w.Resources.Game
		game.Paused = !game.Paused
		if game.Paused {
			w.PushEvent(event.EventPaused, nil)
		} else {
			w.PushEvent(event.EventResumed, nil)
		}
	}

	if !w.Resources.Game.Paused {
		if dt < 0 {
			dt = 0
		} else if dt > g.cfg.Sim.MaxStep {
			dt = g.cfg.Sim.MaxStep
		}

		input := w.Resources.Input
		input.MoveLeft = in.MoveLeft
		input.MoveRight = in.MoveRight
		input.Fire = in.Fire

		w.Update(dt)

		g.statTicks.Add(1)
		g.statSimTime.Set(w.Resources.Time.SimTime)
	}

	g.pending = append(g.pending, w.DrainEvents()...)
	g.statEntities.Store(int64(w.EntityCount()))
	g.statPeak.Store(int64(w.EventPeak()))
	return g.effects(false)
}

func (g *Game) effects(quit bool) TickEffects {
	events := g.pending
	g.pending = nil
	return TickEffects{
		Snapshot: buildSnapshot(g.world),
		Events:   events,
		Quit:     quit,
	}
}

// Snapshot returns the current state without stepping
func (g *Game) Snapshot() Snapshot {
	return buildSnapshot(g.world)
}

// Config returns the construction config
func (g *Game) Config() config.Config {
	return g.cfg
}

// Status returns the metrics registry
func (g *Game) Status() *status.Registry {
	return g.world.Resources.Status
}

// World exposes the simulation world for tests and debugging hosts
func (g *Game) World() *engine.World {
	return g.world
}
