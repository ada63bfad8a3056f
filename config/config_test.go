package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/lixenwraith/xgalaga/component"
)

// TestEmbeddedMatchesDefault verifies the shipped TOML documents exactly the compiled defaults
func TestEmbeddedMatchesDefault(t *testing.T) {
	cfg, err := Parse(embeddedDefault)
	if err != nil {
		t.Fatalf("embedded config failed to parse: %v", err)
	}
	if want := Default(); !reflect.DeepEqual(cfg, want) {
		t.Errorf("embedded config drifted from Default()\n got: %+v\nwant: %+v", cfg, want)
	}
}

// TestDefaultValidates verifies the stock tuning passes validation
func TestDefaultValidates(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Default().Validate() = %v", err)
	}
}

// TestParsePartialOverride verifies unspecified keys keep their defaults
func TestParsePartialOverride(t *testing.T) {
	cfg, err := Parse(`
[wave]
enemies_per_wave = 4
levels = 1
`)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if cfg.Wave.EnemiesPerWave != 4 || cfg.Wave.Levels != 1 {
		t.Errorf("override not applied: %+v", cfg.Wave)
	}
	if cfg.Wave.WavesPerLevel != 5 || cfg.Ship.Health != 3 {
		t.Errorf("defaults lost: waves_per_level=%d health=%d", cfg.Wave.WavesPerLevel, cfg.Ship.Health)
	}
}

// TestParseRejectsUnknownKeys verifies typos surface as errors
func TestParseRejectsUnknownKeys(t *testing.T) {
	_, err := Parse("[wave]\nenemies_per_wav = 4\n")
	if err == nil {
		t.Fatal("expected error for unknown key")
	}
	if !errors.Is(err, ErrInvalid) || !strings.Contains(err.Error(), "enemies_per_wav") {
		t.Errorf("unexpected error: %v", err)
	}
}

// TestValidateCollectsAllErrors verifies every violated rule is reported
func TestValidateCollectsAllErrors(t *testing.T) {
	cfg := Default()
	cfg.Wave.EnemiesPerWave = 11
	cfg.Loot.DropChance = 1.5
	cfg.Ship.StartWeapon = "laser"
	cfg.Wave.Cycle = []string{"down"}
	cfg.Playfield.CullMargin = 0

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !errors.Is(err, ErrInvalid) {
		t.Errorf("error does not wrap ErrInvalid: %v", err)
	}
	for _, want := range []string{"enemies_per_wave", "drop_chance", "start_weapon", "down", "cull_margin"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error missing %q: %v", want, err)
		}
	}
}

// TestValidatePlayfieldGeometry verifies spawn and start points must fit the cull box
func TestValidatePlayfieldGeometry(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"margin equals inset", func(c *Config) { c.Playfield.CullMargin = c.Enemy.EntryInset }, "cull_margin"},
		{"margin below inset", func(c *Config) { c.Enemy.EntryInset = c.Playfield.CullMargin + 5 }, "cull_margin"},
		{"ship below field", func(c *Config) { c.Ship.StartY = -c.Playfield.Height / 2 }, "start_y"},
		{"ship above field", func(c *Config) { c.Ship.StartY = c.Playfield.Height }, "start_y"},
		{"side entry above field", func(c *Config) { c.Enemy.EntryHeight = c.Playfield.Height / 2 }, "entry_height"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if !errors.Is(err, ErrInvalid) || !strings.Contains(err.Error(), tc.want) {
				t.Errorf("Validate() = %v, want %q rejected", err, tc.want)
			}
		})
	}

	cfg := Default()
	cfg.Playfield.CullMargin = cfg.Enemy.EntryInset + 1
	if err := cfg.Validate(); err != nil {
		t.Errorf("margin just above inset rejected: %v", err)
	}
}

// TestLootResolve verifies the default table parses into eight weighted payloads
func TestLootResolve(t *testing.T) {
	cfg := Default()
	payloads, weights, err := cfg.Loot.Resolve()
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if len(payloads) != 8 || len(weights) != 8 {
		t.Fatalf("got %d payloads, %d weights, want 8", len(payloads), len(weights))
	}

	var weaponWeight, total float64
	for i, p := range payloads {
		total += weights[i]
		if p.Kind == component.PickupWeapon {
			weaponWeight += weights[i]
		}
	}
	if weaponWeight != 8 || total != 10 {
		t.Errorf("weapon weight %g of %g, want 8 of 10", weaponWeight, total)
	}

	cfg.Loot.Table = append(cfg.Loot.Table, LootEntry{Payload: "shield", Weight: 1})
	if _, _, err := cfg.Loot.Resolve(); !errors.Is(err, ErrInvalid) {
		t.Errorf("unknown payload should fail with ErrInvalid, got %v", err)
	}
}

// TestDirectionFor verifies scripted opening waves then the cycle
func TestDirectionFor(t *testing.T) {
	cfg := Default()
	want := []component.Direction{
		component.DirectionLeft, component.DirectionRight, component.DirectionTop, // scripted
		component.DirectionTop, component.DirectionLeft, component.DirectionRight, // cycle
		component.DirectionTop,
	}
	for i, w := range want {
		if got := cfg.Wave.DirectionFor(i + 1); got != w {
			t.Errorf("wave %d: got %v, want %v", i+1, got, w)
		}
	}
}

// TestLoadAutoPriority verifies the custom path wins and missing files error
func TestLoadAutoPriority(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.toml")
	if err := os.WriteFile(path, []byte("[ship]\nhealth = 5\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, src, err := LoadAuto(path)
	if err != nil {
		t.Fatalf("LoadAuto(custom) failed: %v", err)
	}
	if src != SourceCustom || cfg.Ship.Health != 5 {
		t.Errorf("got source %s health %d, want custom 5", src, cfg.Ship.Health)
	}

	if _, _, err := LoadAuto(filepath.Join(dir, "missing.toml")); err == nil {
		t.Error("expected error for missing custom config")
	}
}
