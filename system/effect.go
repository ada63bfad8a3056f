package system

import (
	"github.com/lixenwraith/xgalaga/component"
	"github.com/lixenwraith/xgalaga/core"
	"github.com/lixenwraith/xgalaga/engine"
	"github.com/lixenwraith/xgalaga/event"
	"github.com/lixenwraith/xgalaga/parameter"
)

// EffectSystem ages cosmetic effects and removes them on expiry
type EffectSystem struct {
	world *engine.World
}

func NewEffectSystem(world *engine.World) engine.System {
	s := &EffectSystem{world: world}
	s.Init()
	return s
}

func (s *EffectSystem) Init() {}

func (s *EffectSystem) Name() string {
	return "effect"
}

func (s *EffectSystem) Priority() int {
	return parameter.PriorityEffect
}

func (s *EffectSystem) EventTypes() []event.EventType {
	return nil
}

func (s *EffectSystem) HandleEvent(ev event.GameEvent) {}

func (s *EffectSystem) Update() {
	dt := s.world.Resources.Time.DeltaTime

	var toDestroy []core.Entity
	for _, e := range s.world.Components.Effect.All() {
		fx, ok := s.world.Components.Effect.Get(e)
		if !ok {
			continue
		}
		if fx.Timer.Tick(dt) {
			toDestroy = append(toDestroy, e)
			continue
		}
		s.world.Components.Effect.Set(e, fx)
	}
	s.world.DestroyBatch(toDestroy)
}

// SpawnExplosion creates a stationary explosion at pos
func SpawnExplosion(w *engine.World, pos core.Vec2) core.Entity {
	e := w.CreateEntity()
	w.Components.Kinetic.Set(e, component.KineticComponent{Pos: pos})
	w.Components.Effect.Set(e, component.EffectComponent{
		Kind:  component.EffectExplosion,
		Timer: component.NewOnceTimer(w.Resources.Config.Effect.ExplosionDuration),
	})
	w.PushEvent(event.EventExplosion, &event.ExplosionPayload{Pos: pos})
	return e
}

// SpawnFloatingScore creates rising score text at pos
func SpawnFloatingScore(w *engine.World, pos core.Vec2, value int) core.Entity {
	cfg := w.Resources.Config.Effect
	e := w.CreateEntity()
	w.Components.Kinetic.Set(e, component.KineticComponent{
		Pos: pos,
		Vel: core.V(0, cfg.FloatingScoreRise),
	})
	w.Components.Effect.Set(e, component.EffectComponent{
		Kind:  component.EffectFloatingScore,
		Value: value,
		Timer: component.NewOnceTimer(cfg.FloatingScoreDuration),
	})
	return e
}
