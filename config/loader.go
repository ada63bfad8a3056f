package config

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
)

// DefaultConfigPath is the external config picked up from the working directory
const DefaultConfigPath = "xgalaga.toml"

//go:embed default.toml
var embeddedDefault string

// Source names where a config came from, for logging
type Source string

const (
	SourceCustom   Source = "custom"
	SourceDefault  Source = "default"
	SourceEmbedded Source = "embedded"
)

// LoadAuto loads config with priority: customPath > DefaultConfigPath > embedded
func LoadAuto(customPath string) (Config, Source, error) {
	// Priority 1: Custom path from CLI
	if customPath != "" {
		cfg, err := Load(customPath)
		return cfg, SourceCustom, err
	}

	// Priority 2: Default external config
	if fileExists(DefaultConfigPath) {
		cfg, err := Load(DefaultConfigPath)
		return cfg, SourceDefault, err
	}

	// Priority 3: Embedded fallback
	cfg, err := Parse(embeddedDefault)
	return cfg, SourceEmbedded, err
}

// Load decodes a TOML file over the defaults and validates the result
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	cfg, err := Parse(string(data))
	if err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes TOML text over the defaults and validates the result
// Keys that map to no field are rejected so typos do not silently fall back
func Parse(data string) (Config, error) {
	cfg := Default()
	md, err := toml.Decode(data, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to parse: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, fmt.Errorf("%w: unknown keys: %s", ErrInvalid, strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
