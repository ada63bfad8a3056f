package system

import (
	"github.com/lixenwraith/xgalaga/engine"
	"github.com/lixenwraith/xgalaga/event"
	"github.com/lixenwraith/xgalaga/parameter"
)

// ShipSystem turns held move intents into ship velocity
type ShipSystem struct {
	world *engine.World
}

func NewShipSystem(world *engine.World) engine.System {
	s := &ShipSystem{world: world}
	s.Init()
	return s
}

func (s *ShipSystem) Init() {}

func (s *ShipSystem) Name() string {
	return "ship"
}

func (s *ShipSystem) Priority() int {
	return parameter.PriorityShip
}

func (s *ShipSystem) EventTypes() []event.EventType {
	return nil
}

func (s *ShipSystem) HandleEvent(ev event.GameEvent) {}

func (s *ShipSystem) Update() {
	ship := s.world.Resources.Player.Entity
	kin, ok := s.world.Components.Kinetic.Get(ship)
	if !ok {
		return
	}

	in := s.world.Resources.Input
	// Control ends with the game, the ship holds where it stopped
	if s.world.Resources.Game.Terminal() {
		in = &engine.InputResource{}
	}
	dir := 0.0
	if in.MoveLeft {
		dir--
	}
	if in.MoveRight {
		dir++
	}
	kin.Vel.X = dir * s.world.Resources.Config.Ship.Speed
	kin.Vel.Y = 0
	s.world.Components.Kinetic.Set(ship, kin)
}
