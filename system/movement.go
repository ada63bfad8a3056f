package system

import (
	"sync/atomic"

	"github.com/lixenwraith/xgalaga/core"
	"github.com/lixenwraith/xgalaga/engine"
	"github.com/lixenwraith/xgalaga/event"
	"github.com/lixenwraith/xgalaga/parameter"
)

// MovementSystem integrates every body and enforces playfield bounds
// The ship is clamped horizontally, everything else is culled past the margin
type MovementSystem struct {
	world *engine.World

	statCulled *atomic.Int64
}

func NewMovementSystem(world *engine.World) engine.System {
	s := &MovementSystem{world: world}
	s.statCulled = world.Resources.Status.Ints.Get("movement.culled")
	s.Init()
	return s
}

func (s *MovementSystem) Init() {
	s.statCulled.Store(0)
}

func (s *MovementSystem) Name() string {
	return "movement"
}

func (s *MovementSystem) Priority() int {
	return parameter.PriorityMovement
}

func (s *MovementSystem) EventTypes() []event.EventType {
	return []event.EventType{event.EventGameReset}
}

func (s *MovementSystem) HandleEvent(ev event.GameEvent) {
	if ev.Type == event.EventGameReset {
		s.Init()
	}
}

func (s *MovementSystem) Update() {
	dt := s.world.Resources.Time.DeltaTime
	cfg := s.world.Resources.Config
	ship := s.world.Resources.Player.Entity

	halfW := cfg.Playfield.Width / 2
	halfH := cfg.Playfield.Height / 2
	limit := halfW - cfg.Ship.Width/2
	cullX := halfW + cfg.Playfield.CullMargin
	cullY := halfH + cfg.Playfield.CullMargin

	var toDestroy []core.Entity
	for _, e := range s.world.Components.Kinetic.All() {
		kin, ok := s.world.Components.Kinetic.Get(e)
		if !ok {
			continue
		}
		kin.Pos = kin.Pos.Add(kin.Vel.Scale(dt))

		if e == ship {
			if kin.Pos.X < -limit {
				kin.Pos.X = -limit
			} else if kin.Pos.X > limit {
				kin.Pos.X = limit
			}
		} else if kin.Pos.X < -cullX || kin.Pos.X > cullX || kin.Pos.Y < -cullY || kin.Pos.Y > cullY {
			toDestroy = append(toDestroy, e)
			continue
		}
		s.world.Components.Kinetic.Set(e, kin)
	}

	if len(toDestroy) > 0 {
		s.world.DestroyBatch(toDestroy)
		s.statCulled.Add(int64(len(toDestroy)))
	}
}
