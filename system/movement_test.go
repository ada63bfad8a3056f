package system

import (
	"testing"

	"github.com/lixenwraith/xgalaga/component"
	"github.com/lixenwraith/xgalaga/config"
	"github.com/lixenwraith/xgalaga/core"
	"github.com/lixenwraith/xgalaga/engine"
)

// TestShipClampedToPlayfield verifies the ship never leaves [-limit, +limit] under held input
func TestShipClampedToPlayfield(t *testing.T) {
	cfg := config.Default()
	w := newWorld(cfg, NewShipSystem, NewMovementSystem)
	ship := engine.SpawnTestShip(w, core.V(0, cfg.Ship.StartY))
	limit := cfg.Playfield.Width/2 - cfg.Ship.Width/2

	w.Resources.Input.MoveRight = true
	for i := 0; i < 120; i++ {
		tick(w, 1.0/60)
		kin, _ := w.Components.Kinetic.Get(ship)
		if kin.Pos.X > limit || kin.Pos.X < -limit {
			t.Fatalf("tick %d: ship x %f outside ±%f", i, kin.Pos.X, limit)
		}
	}
	if kin, _ := w.Components.Kinetic.Get(ship); kin.Pos.X != limit {
		t.Errorf("ship x = %f, want pinned at %f", kin.Pos.X, limit)
	}

	w.Resources.Input.MoveRight = false
	w.Resources.Input.MoveLeft = true
	for i := 0; i < 240; i++ {
		tick(w, 1.0/60)
	}
	if kin, _ := w.Components.Kinetic.Get(ship); kin.Pos.X != -limit {
		t.Errorf("ship x = %f, want pinned at %f", kin.Pos.X, -limit)
	}
}

// TestShipOpposingInputsCancel verifies both move intents leave the ship still
func TestShipOpposingInputsCancel(t *testing.T) {
	w := newWorld(config.Default(), NewShipSystem, NewMovementSystem)
	ship := engine.SpawnTestShip(w, core.V(10, 0))

	w.Resources.Input.MoveLeft = true
	w.Resources.Input.MoveRight = true
	tick(w, 0.1)

	if kin, _ := w.Components.Kinetic.Get(ship); kin.Pos.X != 10 || kin.Vel.X != 0 {
		t.Errorf("ship moved: pos %v vel %v", kin.Pos, kin.Vel)
	}
}

// TestShipHoldsAfterVictory verifies steering input is ignored once the run ended
func TestShipHoldsAfterVictory(t *testing.T) {
	w := newWorld(config.Default(), NewShipSystem, NewMovementSystem)
	ship := engine.SpawnTestShip(w, core.V(10, -260))

	w.Resources.Input.MoveLeft = true
	tick(w, 0.1)
	kin, _ := w.Components.Kinetic.Get(ship)
	if kin.Vel.X >= 0 {
		t.Fatalf("ship not steering before victory, vel %v", kin.Vel)
	}
	stopped := kin.Pos

	w.Resources.Game.Victory = true
	for i := 0; i < 10; i++ {
		tick(w, 0.1)
	}
	if kin, _ := w.Components.Kinetic.Get(ship); kin.Pos != stopped || kin.Vel.X != 0 {
		t.Errorf("ship moved after victory: pos %v vel %v, want held at %v", kin.Pos, kin.Vel, stopped)
	}
}

// TestMovementCullsPastMargin verifies non-ship bodies are removed only beyond the margin
func TestMovementCullsPastMargin(t *testing.T) {
	cfg := config.Default()
	w := newWorld(cfg, NewMovementSystem)
	halfH := cfg.Playfield.Height / 2

	inside := spawnShot(w, component.FromPlayer, core.V(0, halfH+cfg.Playfield.CullMargin-10), core.V(0, 0))
	leaving := spawnShot(w, component.FromPlayer, core.V(0, halfH+cfg.Playfield.CullMargin-1), core.V(0, 700))
	sideways := spawnEnemy(w, component.EnemySoldier, core.V(-cfg.Playfield.Width/2-cfg.Playfield.CullMargin, 0), core.V(-120, 0))

	tick(w, 0.1)

	if !w.IsAlive(inside) {
		t.Error("entity inside margin was culled")
	}
	if w.IsAlive(leaving) || w.Components.Projectile.Has(leaving) {
		t.Error("projectile past top margin survived")
	}
	if w.IsAlive(sideways) || w.Components.Enemy.Has(sideways) {
		t.Error("enemy past left margin survived")
	}
	if got := w.Resources.Status.Ints.Get("movement.culled").Load(); got != 2 {
		t.Errorf("movement.culled = %d, want 2", got)
	}
}

// TestEffectExpiry verifies effects are removed once their timer runs out
func TestEffectExpiry(t *testing.T) {
	cfg := config.Default()
	w := newWorld(cfg, NewMovementSystem, NewEffectSystem)

	boom := SpawnExplosion(w, core.V(0, 0))
	text := SpawnFloatingScore(w, core.V(0, 0), 10)
	w.DrainEvents()

	tick(w, 0.2)
	if !w.IsAlive(boom) || !w.IsAlive(text) {
		t.Fatal("effects expired early")
	}
	if kin, _ := w.Components.Kinetic.Get(text); kin.Pos.Y <= 0 {
		t.Errorf("floating score did not rise: y=%f", kin.Pos.Y)
	}

	tick(w, 0.2) // 0.4s: explosion (0.3s) gone
	if w.IsAlive(boom) {
		t.Error("explosion outlived its duration")
	}
	if !w.IsAlive(text) {
		t.Error("floating score expired early")
	}

	for i := 0; i < 5; i++ {
		tick(w, 0.1)
	}
	if w.IsAlive(text) {
		t.Error("floating score outlived its duration")
	}
}
