package engine

import (
	"math/rand"

	"github.com/lixenwraith/xgalaga/component"
	"github.com/lixenwraith/xgalaga/config"
	"github.com/lixenwraith/xgalaga/core"
)

// NewTestWorld creates a world with a fixed seed for deterministic tests
func NewTestWorld(cfg config.Config) *World {
	return NewWorld(&cfg, rand.New(rand.NewSource(1)), nil)
}

// SpawnTestShip places a ship at pos with the configured health
func SpawnTestShip(w *World, pos core.Vec2) core.Entity {
	e := w.CreateEntity()
	w.Components.Kinetic.Set(e, component.KineticComponent{Pos: pos})
	w.Components.Ship.Set(e, component.ShipComponent{
		Health: w.Resources.Config.Ship.Health,
		Weapon: w.Resources.Config.StartWeaponMode(),
	})
	w.Resources.Player.Entity = e
	return e
}
