package system

import (
	"testing"

	"github.com/lixenwraith/xgalaga/component"
	"github.com/lixenwraith/xgalaga/config"
	"github.com/lixenwraith/xgalaga/core"
	"github.com/lixenwraith/xgalaga/engine"
	"github.com/lixenwraith/xgalaga/event"
)

// noLootConfig disables drops so entity counts stay predictable
func noLootConfig() config.Config {
	cfg := config.Default()
	cfg.Loot.DropChance = 0
	return cfg
}

// TestProjectileKillsSoldier verifies a co-located player shot removes both and scores once
func TestProjectileKillsSoldier(t *testing.T) {
	cfg := noLootConfig()
	w := newWorld(cfg, NewCollisionSystem, NewLootSystem)
	engine.SpawnTestShip(w, core.V(0, -260))
	enemy := spawnEnemy(w, component.EnemySoldier, core.V(50, 100), core.Vec2{})
	shot := spawnShot(w, component.FromPlayer, core.V(50, 100), core.Vec2{})

	events := tick(w, 0.016)

	if w.IsAlive(enemy) || w.IsAlive(shot) {
		t.Fatal("enemy or projectile survived")
	}
	if w.Resources.Game.Score != cfg.Enemy.SoldierScore {
		t.Errorf("score = %d, want %d", w.Resources.Game.Score, cfg.Enemy.SoldierScore)
	}
	if w.Resources.Wave.KilledByPlayer != 1 {
		t.Errorf("kills = %d, want 1", w.Resources.Wave.KilledByPlayer)
	}
	if countEvents(events, event.EventEnemyKilled) != 1 || countEvents(events, event.EventExplosion) != 1 {
		t.Errorf("events = %v", events)
	}
	if w.Components.Effect.Count() != 2 {
		t.Errorf("effects = %d, want explosion and floating score", w.Components.Effect.Count())
	}
}

// TestScoreAdditivity verifies disjoint pairs on one tick score independently without double counting
func TestScoreAdditivity(t *testing.T) {
	cfg := noLootConfig()
	w := newWorld(cfg, NewCollisionSystem)
	engine.SpawnTestShip(w, core.V(0, -260))

	// Two soldiers and a boss, each with its own shot, plus one soldier overlapped by two shots
	spawnEnemy(w, component.EnemySoldier, core.V(-200, 100), core.Vec2{})
	spawnShot(w, component.FromPlayer, core.V(-200, 110), core.Vec2{})
	spawnEnemy(w, component.EnemySoldier, core.V(0, 100), core.Vec2{})
	spawnShot(w, component.FromPlayer, core.V(0, 90), core.Vec2{})
	spawnEnemy(w, component.EnemyBoss, core.V(200, 100), core.Vec2{})
	spawnShot(w, component.FromPlayer, core.V(230, 100), core.Vec2{})
	spawnEnemy(w, component.EnemySoldier, core.V(0, 250), core.Vec2{})
	spawnShot(w, component.FromPlayer, core.V(0, 250), core.Vec2{})
	spawnShot(w, component.FromPlayer, core.V(5, 250), core.Vec2{})

	tick(w, 0.016)

	want := 3*cfg.Enemy.SoldierScore + cfg.Enemy.BossScore
	if w.Resources.Game.Score != want {
		t.Errorf("score = %d, want %d", w.Resources.Game.Score, want)
	}
	if w.Resources.Wave.KilledByPlayer != 4 {
		t.Errorf("kills = %d, want 4", w.Resources.Wave.KilledByPlayer)
	}
	if w.Components.Enemy.Count() != 0 {
		t.Errorf("%d enemies survived", w.Components.Enemy.Count())
	}
	if n := len(projectileVelocities(w, component.FromPlayer)); n != 1 {
		t.Errorf("%d player projectiles left, want the one spare", n)
	}
}

// TestOneShotOneKill verifies a projectile between two enemies kills only one
func TestOneShotOneKill(t *testing.T) {
	w := newWorld(noLootConfig(), NewCollisionSystem)
	engine.SpawnTestShip(w, core.V(0, -260))
	spawnEnemy(w, component.EnemySoldier, core.V(-10, 0), core.Vec2{})
	spawnEnemy(w, component.EnemySoldier, core.V(10, 0), core.Vec2{})
	spawnShot(w, component.FromPlayer, core.V(0, 0), core.Vec2{})

	tick(w, 0.016)

	if w.Components.Enemy.Count() != 1 || w.Resources.Wave.KilledByPlayer != 1 {
		t.Errorf("enemies left %d, kills %d, want 1 and 1", w.Components.Enemy.Count(), w.Resources.Wave.KilledByPlayer)
	}
}

// TestThreeRamsGameOverOnce verifies three enemy contacts end the game exactly once
func TestThreeRamsGameOverOnce(t *testing.T) {
	w := newWorld(noLootConfig(), NewCollisionSystem)
	ship := engine.SpawnTestShip(w, core.V(0, -260))

	var gameOvers, hits int
	for i := 0; i < 3; i++ {
		spawnEnemy(w, component.EnemySoldier, core.V(5, -255), core.Vec2{})
		events := tick(w, 0.016)
		gameOvers += countEvents(events, event.EventGameOver)
		hits += countEvents(events, event.EventShipHit)

		wantHealth := 2 - i
		if i < 2 && shipOf(w).Health != wantHealth {
			t.Fatalf("ram %d: health %d, want %d", i+1, shipOf(w).Health, wantHealth)
		}
	}

	if !w.Resources.Game.GameOver || gameOvers != 1 || hits != 3 {
		t.Fatalf("game over=%v events=%d hits=%d", w.Resources.Game.GameOver, gameOvers, hits)
	}
	if w.IsAlive(ship) || w.Resources.Player.Entity != 0 {
		t.Error("ship not removed on game over")
	}
	if w.Resources.Wave.Rammed != 3 || w.Resources.Wave.KilledByPlayer != 0 {
		t.Errorf("rams=%d kills=%d", w.Resources.Wave.Rammed, w.Resources.Wave.KilledByPlayer)
	}

	// Further contacts no-op without a ship
	spawnEnemy(w, component.EnemySoldier, core.V(0, -260), core.Vec2{})
	if countEvents(tick(w, 0.016), event.EventGameOver) != 0 {
		t.Error("second game over event")
	}
}

// TestSimultaneousHitsStopAtZero verifies health never goes below zero within one tick
func TestSimultaneousHitsStopAtZero(t *testing.T) {
	w := newWorld(noLootConfig(), NewCollisionSystem)
	engine.SpawnTestShip(w, core.V(0, -260))
	for i := 0; i < 5; i++ {
		spawnShot(w, component.FromEnemy, core.V(float64(i), -260), core.Vec2{})
	}

	events := tick(w, 0.016)

	if countEvents(events, event.EventShipHit) != 3 || countEvents(events, event.EventGameOver) != 1 {
		t.Errorf("events = %v", events)
	}
	for _, ev := range events {
		if ev.Type == event.EventShipHit && ev.Payload.(*event.ShipHitPayload).Health < 0 {
			t.Error("health reported below zero")
		}
	}
	if n := len(projectileVelocities(w, component.FromEnemy)); n != 2 {
		t.Errorf("%d enemy projectiles left, want 2 unconsumed", n)
	}
}

// TestEnemyProjectileRadius verifies the ship hit threshold
func TestEnemyProjectileRadius(t *testing.T) {
	cfg := noLootConfig()
	w := newWorld(cfg, NewCollisionSystem)
	engine.SpawnTestShip(w, core.V(0, -260))
	miss := spawnShot(w, component.FromEnemy, core.V(cfg.Ship.HitRadius, -260), core.Vec2{})
	hit := spawnShot(w, component.FromEnemy, core.V(0, -260+cfg.Ship.HitRadius-1), core.Vec2{})

	tick(w, 0.016)

	if !w.IsAlive(miss) || w.IsAlive(hit) {
		t.Errorf("miss alive=%v hit alive=%v", w.IsAlive(miss), w.IsAlive(hit))
	}
	if shipOf(w).Health != cfg.Ship.Health-1 {
		t.Errorf("health = %d", shipOf(w).Health)
	}
}

// TestPickupPayloads verifies each payload applies and the pickup is consumed
func TestPickupPayloads(t *testing.T) {
	cfg := noLootConfig()
	w := newWorld(cfg, NewCollisionSystem, NewDirectorSystem, NewLootSystem)
	engine.SpawnTestShip(w, core.V(0, -260))

	ship := shipOf(w)
	ship.RapidRemaining = 2
	w.Components.Ship.Set(w.Resources.Player.Entity, ship)

	spawnPickup(w, component.PickupPayload{Kind: component.PickupWeapon, Weapon: component.WeaponTriple}, core.V(10, -260))
	spawnPickup(w, component.PickupPayload{Kind: component.PickupExtraLife}, core.V(-10, -260))
	far := spawnPickup(w, component.PickupPayload{Kind: component.PickupSkipWave}, core.V(0, 0))

	events := tick(w, 0.016)

	got := shipOf(w)
	if got.Weapon != component.WeaponTriple || got.RapidRemaining != 0 {
		t.Errorf("weapon = %v rapid = %d", got.Weapon, got.RapidRemaining)
	}
	if got.Health != cfg.Ship.Health+1 {
		t.Errorf("health = %d, want %d", got.Health, cfg.Ship.Health+1)
	}
	if countEvents(events, event.EventPickupCollected) != 2 || !w.IsAlive(far) {
		t.Errorf("collected %d, far pickup alive %v", countEvents(events, event.EventPickupCollected), w.IsAlive(far))
	}
	if got := w.Resources.Status.Ints.Get("loot.collects").Load(); got != 2 {
		t.Errorf("loot.collects = %d", got)
	}

	// Skip pickup reaches the director through the event queue
	kin, _ := w.Components.Kinetic.Get(far)
	kin.Pos = core.V(0, -260)
	w.Components.Kinetic.Set(far, kin)
	tick(w, 0.016)
	if w.Resources.Wave.State != engine.WaveLevelCompleted {
		t.Errorf("state = %v after skip pickup", w.Resources.Wave.State)
	}
}

// TestCollisionFrozenAfterTerminal verifies score stops changing once the run ended
func TestCollisionFrozenAfterTerminal(t *testing.T) {
	w := newWorld(noLootConfig(), NewCollisionSystem)
	engine.SpawnTestShip(w, core.V(0, -260))
	w.Resources.Game.Victory = true
	spawnEnemy(w, component.EnemySoldier, core.V(0, 0), core.Vec2{})
	spawnShot(w, component.FromPlayer, core.V(0, 0), core.Vec2{})

	tick(w, 0.016)
	if w.Resources.Game.Score != 0 || w.Components.Enemy.Count() != 1 {
		t.Errorf("score=%d enemies=%d after victory", w.Resources.Game.Score, w.Components.Enemy.Count())
	}
}

// TestFatalRamFreezesScore verifies kills later in the same pass do not score after the ship dies
func TestFatalRamFreezesScore(t *testing.T) {
	w := newWorld(noLootConfig(), NewCollisionSystem)
	engine.SpawnTestShip(w, core.V(0, -260))
	ship := shipOf(w)
	ship.Health = 1
	w.Components.Ship.Set(w.Resources.Player.Entity, ship)

	spawnEnemy(w, component.EnemySoldier, core.V(5, -255), core.Vec2{})
	target := spawnEnemy(w, component.EnemySoldier, core.V(0, 100), core.Vec2{})
	shot := spawnShot(w, component.FromPlayer, core.V(0, 100), core.Vec2{})

	events := tick(w, 0.016)

	if !w.Resources.Game.GameOver {
		t.Fatal("ram at one health did not end the game")
	}
	if w.Resources.Game.Score != 0 || w.Resources.Wave.KilledByPlayer != 0 {
		t.Errorf("score=%d kills=%d after fatal ram", w.Resources.Game.Score, w.Resources.Wave.KilledByPlayer)
	}
	if countEvents(events, event.EventEnemyKilled) != 0 {
		t.Errorf("enemy killed after game over, events %v", events)
	}
	if !w.IsAlive(target) || !w.IsAlive(shot) {
		t.Errorf("target alive=%v shot alive=%v, want both untouched", w.IsAlive(target), w.IsAlive(shot))
	}
	for _, ev := range events {
		if ev.Type == event.EventGameOver && ev.Payload.(*event.GameOverPayload).Score != 0 {
			t.Errorf("game over reported score %d", ev.Payload.(*event.GameOverPayload).Score)
		}
	}
}
