package config

import (
	"errors"
	"fmt"

	"github.com/lixenwraith/xgalaga/component"
	"github.com/lixenwraith/xgalaga/parameter"
)

// ErrInvalid wraps every validation failure
var ErrInvalid = errors.New("invalid config")

// Config is fixed at game construction, there is no runtime reconfiguration
type Config struct {
	Playfield PlayfieldConfig `toml:"playfield"`
	Ship      ShipConfig      `toml:"ship"`
	Enemy     EnemyConfig     `toml:"enemy"`
	Wave      WaveConfig      `toml:"wave"`
	Weapon    WeaponConfig    `toml:"weapon"`
	Loot      LootConfig      `toml:"loot"`
	Effect    EffectConfig    `toml:"effect"`
	Sim       SimConfig       `toml:"sim"`
}

type PlayfieldConfig struct {
	Width      float64 `toml:"width"`
	Height     float64 `toml:"height"`
	CullMargin float64 `toml:"cull_margin"`
}

type ShipConfig struct {
	Speed        float64 `toml:"speed"`
	Width        float64 `toml:"width"`
	Height       float64 `toml:"height"`
	StartY       float64 `toml:"start_y"`
	Health       int     `toml:"health"`
	HitRadius    float64 `toml:"hit_radius"`
	PickupRadius float64 `toml:"pickup_radius"`
	StartWeapon  string  `toml:"start_weapon"`
}

type EnemyConfig struct {
	Speed             float64 `toml:"speed"`
	Drift             float64 `toml:"drift"`
	EntryHeight       float64 `toml:"entry_height"`
	EntryInset        float64 `toml:"entry_inset"`
	TopSpread         float64 `toml:"top_spread"`
	Size              float64 `toml:"size"`
	BossScale         float64 `toml:"boss_scale"`
	SoldierHitRadius  float64 `toml:"soldier_hit_radius"`
	BossHitRadius     float64 `toml:"boss_hit_radius"`
	SoldierScore      int     `toml:"soldier_score"`
	BossScore         int     `toml:"boss_score"`
	SoldierFirePeriod float64 `toml:"soldier_fire_period"`
	BossFirePeriod    float64 `toml:"boss_fire_period"`
	FireJitter        float64 `toml:"fire_jitter"`
	BulletSpeed       float64 `toml:"bullet_speed"`
}

type WaveConfig struct {
	EnemiesPerWave int     `toml:"enemies_per_wave"`
	WavesPerLevel  int     `toml:"waves_per_level"`
	Levels         int     `toml:"levels"`
	SpawnCadence   float64 `toml:"spawn_cadence"`
	Pause          float64 `toml:"pause"`
	BossEnabled    bool    `toml:"boss_enabled"`

	// PerfectCountsRams lets enemies destroyed by ramming the ship count toward the perfect quota
	// Off: only projectile kills count
	PerfectCountsRams bool `toml:"perfect_counts_rams"`

	Scripted []string `toml:"scripted"`
	Cycle    []string `toml:"cycle"`
}

type WeaponConfig struct {
	BulletSpeed    float64 `toml:"bullet_speed"`
	BulletWidth    float64 `toml:"bullet_width"`
	BulletHeight   float64 `toml:"bullet_height"`
	MuzzleOffset   float64 `toml:"muzzle_offset"`
	ParallelOffset float64 `toml:"parallel_offset"`
	DivergeSpeed   float64 `toml:"diverge_speed"`
	FanStep        float64 `toml:"fan_step"`
	RapidInterval  float64 `toml:"rapid_interval"`
}

type LootEntry struct {
	Payload string  `toml:"payload"`
	Weapon  string  `toml:"weapon,omitempty"`
	Weight  float64 `toml:"weight"`
}

type LootConfig struct {
	DropChance float64     `toml:"drop_chance"`
	Speed      float64     `toml:"speed"`
	Table      []LootEntry `toml:"table"`
}

type EffectConfig struct {
	ExplosionDuration     float64 `toml:"explosion_duration"`
	FloatingScoreDuration float64 `toml:"floating_score_duration"`
	FloatingScoreRise     float64 `toml:"floating_score_rise"`
}

type SimConfig struct {
	Seed    int64   `toml:"seed"` // 0 seeds from the clock
	MaxStep float64 `toml:"max_step"`
}

// Default returns the stock tuning
func Default() Config {
	table := make([]LootEntry, len(parameter.LootTable))
	for i, e := range parameter.LootTable {
		table[i] = LootEntry{Payload: e.Payload, Weapon: e.Weapon, Weight: e.Weight}
	}

	return Config{
		Playfield: PlayfieldConfig{
			Width:      parameter.PlayfieldWidth,
			Height:     parameter.PlayfieldHeight,
			CullMargin: parameter.CullMargin,
		},
		Ship: ShipConfig{
			Speed:        parameter.ShipSpeed,
			Width:        parameter.ShipWidth,
			Height:       parameter.ShipHeight,
			StartY:       parameter.ShipStartY,
			Health:       parameter.ShipHealth,
			HitRadius:    parameter.ShipHitRadius,
			PickupRadius: parameter.PickupRadius,
			StartWeapon:  component.WeaponSingle.String(),
		},
		Enemy: EnemyConfig{
			Speed:             parameter.EnemySpeed,
			Drift:             parameter.EnemyDrift,
			EntryHeight:       parameter.EnemyEntryHeight,
			EntryInset:        parameter.EnemyEntryInset,
			TopSpread:         parameter.EnemyTopSpread,
			Size:              parameter.EnemySize,
			BossScale:         parameter.BossScale,
			SoldierHitRadius:  parameter.SoldierHitRadius,
			BossHitRadius:     parameter.BossHitRadius,
			SoldierScore:      parameter.SoldierScore,
			BossScore:         parameter.BossScore,
			SoldierFirePeriod: parameter.SoldierFirePeriod,
			BossFirePeriod:    parameter.BossFirePeriod,
			FireJitter:        parameter.EnemyFireJitter,
			BulletSpeed:       parameter.EnemyBulletSpeed,
		},
		Wave: WaveConfig{
			EnemiesPerWave: parameter.EnemiesPerWave,
			WavesPerLevel:  parameter.WavesPerLevel,
			Levels:         parameter.Levels,
			SpawnCadence:   parameter.SpawnCadence,
			Pause:          parameter.WavePause,
			BossEnabled:    true,
			Scripted:       append([]string(nil), parameter.ScriptedDirections...),
			Cycle:          append([]string(nil), parameter.CycleDirections...),
		},
		Weapon: WeaponConfig{
			BulletSpeed:    parameter.BulletSpeed,
			BulletWidth:    parameter.BulletWidth,
			BulletHeight:   parameter.BulletHeight,
			MuzzleOffset:   parameter.MuzzleOffset,
			ParallelOffset: parameter.ParallelOffset,
			DivergeSpeed:   parameter.DivergeSpeed,
			FanStep:        parameter.FanStep,
			RapidInterval:  parameter.RapidInterval,
		},
		Loot: LootConfig{
			DropChance: parameter.LootDropChance,
			Speed:      parameter.PickupSpeed,
			Table:      table,
		},
		Effect: EffectConfig{
			ExplosionDuration:     parameter.ExplosionDuration,
			FloatingScoreDuration: parameter.FloatingScoreDuration,
			FloatingScoreRise:     parameter.FloatingScoreRise,
		},
		Sim: SimConfig{
			MaxStep: parameter.MaxStepSeconds,
		},
	}
}

// StartWeaponMode returns the parsed starting weapon, Validate guarantees it parses
func (c *Config) StartWeaponMode() component.WeaponMode {
	m, _ := component.ParseWeaponMode(c.Ship.StartWeapon)
	return m
}

// HitRadius returns the enemy collision threshold for kind
func (c *EnemyConfig) HitRadius(kind component.EnemyKind) float64 {
	if kind == component.EnemyBoss {
		return c.BossHitRadius
	}
	return c.SoldierHitRadius
}

// ScoreFor returns the kill award for kind
func (c *EnemyConfig) ScoreFor(kind component.EnemyKind) int {
	if kind == component.EnemyBoss {
		return c.BossScore
	}
	return c.SoldierScore
}

// FirePeriod returns the repeating fire interval for kind
func (c *EnemyConfig) FirePeriod(kind component.EnemyKind) float64 {
	if kind == component.EnemyBoss {
		return c.BossFirePeriod
	}
	return c.SoldierFirePeriod
}

// ParseDirection resolves a direction name
func ParseDirection(name string) (component.Direction, error) {
	switch name {
	case parameter.DirectionTop:
		return component.DirectionTop, nil
	case parameter.DirectionLeft:
		return component.DirectionLeft, nil
	case parameter.DirectionRight:
		return component.DirectionRight, nil
	}
	return component.DirectionTop, fmt.Errorf("unknown direction %q", name)
}

// DirectionFor returns the entry side of the 1-based global wave number
// Scripted entries drive the opening waves, Cycle repeats afterwards
func (c *WaveConfig) DirectionFor(global int) component.Direction {
	if global < 1 {
		global = 1
	}
	var name string
	switch {
	case global <= len(c.Scripted):
		name = c.Scripted[global-1]
	case len(c.Cycle) > 0:
		name = c.Cycle[(global-len(c.Scripted)-1)%len(c.Cycle)]
	default:
		return component.DirectionTop
	}
	d, _ := ParseDirection(name)
	return d
}
