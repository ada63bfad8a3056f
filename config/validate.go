package config

import (
	"errors"
	"fmt"
	"math"

	"github.com/lixenwraith/xgalaga/component"
	"github.com/lixenwraith/xgalaga/parameter"
)

// Validate reports every violated rule at once
func (c *Config) Validate() error {
	var errs []error
	bad := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalid}, args...)...))
	}
	positive := func(name string, v float64) {
		if v <= 0 {
			bad("%s must be positive, got %g", name, v)
		}
	}

	positive("playfield.width", c.Playfield.Width)
	positive("playfield.height", c.Playfield.Height)
	if c.Playfield.CullMargin < 0 {
		bad("playfield.cull_margin must not be negative, got %g", c.Playfield.CullMargin)
	}
	// Spawn points sit EntryInset outside the field and must stay inside the cull box
	if c.Playfield.CullMargin <= c.Enemy.EntryInset {
		bad("playfield.cull_margin %g must exceed enemy.entry_inset %g", c.Playfield.CullMargin, c.Enemy.EntryInset)
	}
	if math.Abs(c.Ship.StartY) >= c.Playfield.Height/2 {
		bad("ship.start_y %g must lie inside the playfield half height %g", c.Ship.StartY, c.Playfield.Height/2)
	}
	if math.Abs(c.Enemy.EntryHeight) >= c.Playfield.Height/2 {
		bad("enemy.entry_height %g must lie inside the playfield half height %g", c.Enemy.EntryHeight, c.Playfield.Height/2)
	}

	positive("ship.speed", c.Ship.Speed)
	positive("ship.width", c.Ship.Width)
	positive("ship.hit_radius", c.Ship.HitRadius)
	positive("ship.pickup_radius", c.Ship.PickupRadius)
	if c.Ship.Health < 1 {
		bad("ship.health must be at least 1, got %d", c.Ship.Health)
	}
	if c.Ship.Width >= c.Playfield.Width {
		bad("ship.width %g does not fit playfield width %g", c.Ship.Width, c.Playfield.Width)
	}
	if _, err := component.ParseWeaponMode(c.Ship.StartWeapon); err != nil {
		bad("ship.start_weapon: %v", err)
	}

	positive("enemy.speed", c.Enemy.Speed)
	positive("enemy.soldier_hit_radius", c.Enemy.SoldierHitRadius)
	positive("enemy.boss_hit_radius", c.Enemy.BossHitRadius)
	positive("enemy.soldier_fire_period", c.Enemy.SoldierFirePeriod)
	positive("enemy.boss_fire_period", c.Enemy.BossFirePeriod)
	positive("enemy.bullet_speed", c.Enemy.BulletSpeed)
	if c.Enemy.FireJitter < 0 {
		bad("enemy.fire_jitter must not be negative, got %g", c.Enemy.FireJitter)
	}
	if c.Enemy.SoldierScore < 0 || c.Enemy.BossScore < 0 {
		bad("enemy scores must not be negative")
	}

	if c.Wave.EnemiesPerWave < 1 || c.Wave.EnemiesPerWave > parameter.MaxEnemiesPerWave {
		bad("wave.enemies_per_wave must be in 1..%d, got %d", parameter.MaxEnemiesPerWave, c.Wave.EnemiesPerWave)
	}
	if c.Wave.WavesPerLevel < 1 {
		bad("wave.waves_per_level must be at least 1, got %d", c.Wave.WavesPerLevel)
	}
	if c.Wave.Levels < 1 {
		bad("wave.levels must be at least 1, got %d", c.Wave.Levels)
	}
	positive("wave.spawn_cadence", c.Wave.SpawnCadence)
	if c.Wave.Pause < 0 {
		bad("wave.pause must not be negative, got %g", c.Wave.Pause)
	}
	for _, list := range [][]string{c.Wave.Scripted, c.Wave.Cycle} {
		for _, d := range list {
			if _, err := ParseDirection(d); err != nil {
				bad("wave direction: %v", err)
			}
		}
	}

	positive("weapon.bullet_speed", c.Weapon.BulletSpeed)
	positive("weapon.rapid_interval", c.Weapon.RapidInterval)

	if c.Loot.DropChance < 0 || c.Loot.DropChance > 1 {
		bad("loot.drop_chance must be in [0,1], got %g", c.Loot.DropChance)
	}
	if _, _, err := c.Loot.Resolve(); err != nil {
		errs = append(errs, err)
	}

	if c.Effect.ExplosionDuration < 0 || c.Effect.FloatingScoreDuration < 0 {
		bad("effect durations must not be negative")
	}
	positive("sim.max_step", c.Sim.MaxStep)

	return errors.Join(errs...)
}

// Resolve parses the drop table into payloads with parallel weights
// An empty table is allowed only when drops are disabled
func (c *LootConfig) Resolve() ([]component.PickupPayload, []float64, error) {
	payloads := make([]component.PickupPayload, 0, len(c.Table))
	weights := make([]float64, 0, len(c.Table))
	var sum float64

	for i, e := range c.Table {
		if e.Weight < 0 {
			return nil, nil, fmt.Errorf("%w: loot.table[%d] weight must not be negative, got %g", ErrInvalid, i, e.Weight)
		}
		var p component.PickupPayload
		switch e.Payload {
		case parameter.LootPayloadWeapon:
			mode, err := component.ParseWeaponMode(e.Weapon)
			if err != nil {
				return nil, nil, fmt.Errorf("%w: loot.table[%d]: %v", ErrInvalid, i, err)
			}
			p = component.PickupPayload{Kind: component.PickupWeapon, Weapon: mode}
		case parameter.LootPayloadExtraLife:
			p = component.PickupPayload{Kind: component.PickupExtraLife}
		case parameter.LootPayloadSkipWave:
			p = component.PickupPayload{Kind: component.PickupSkipWave}
		default:
			return nil, nil, fmt.Errorf("%w: loot.table[%d]: unknown payload %q", ErrInvalid, i, e.Payload)
		}
		payloads = append(payloads, p)
		weights = append(weights, e.Weight)
		sum += e.Weight
	}

	if sum <= 0 && c.DropChance > 0 {
		return nil, nil, fmt.Errorf("%w: loot.table weights must sum to a positive value", ErrInvalid)
	}
	return payloads, weights, nil
}
