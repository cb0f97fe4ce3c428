// Package config loads the game configuration from a yaml file with
// environment-variable overrides on top.
package config

import (
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Environment variables recognized by loadFromEnv. Each one overrides
// the corresponding file value when set.
const (
	EnvASCII = "KLONDIKE_ASCII"
	EnvSound = "KLONDIKE_SOUND"
	EnvSeed  = "KLONDIKE_SEED"
)

const defaultSoundEnabled = true

// Config is the full runtime configuration of the game.
type Config struct {
	Display DisplayConfig `yaml:"display"`
	Sound   SoundConfig   `yaml:"sound"`
	Game    GameConfig    `yaml:"game"`
}

// DisplayConfig controls how the board is rendered.
type DisplayConfig struct {
	// ASCII switches card faces from Unicode suit glyphs to plain
	// letters (H, S, C, D) for terminals without glyph support.
	ASCII bool `yaml:"ascii"`
}

// SoundConfig controls the sound effects.
type SoundConfig struct {
	Enabled bool `yaml:"enabled"`
}

// GameConfig holds gameplay settings.
type GameConfig struct {
	// Seed pins the shuffle for reproducible deals. Zero means a fresh
	// random seed per deal.
	Seed uint64 `yaml:"seed"`
}

// Load reads the configuration from path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	// Unmarshal over the defaults: keys absent from the file keep their
	// default values, including booleans that default to true.
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	loadFromEnv(cfg)

	return cfg, nil
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Sound: SoundConfig{
			Enabled: defaultSoundEnabled,
		},
	}
}

// loadFromEnv applies environment-variable overrides. Values that fail
// to parse are ignored.
func loadFromEnv(cfg *Config) {
	if v, ok := lookupBool(EnvASCII); ok {
		cfg.Display.ASCII = v
	}
	if v, ok := lookupBool(EnvSound); ok {
		cfg.Sound.Enabled = v
	}
	if raw := os.Getenv(EnvSeed); raw != "" {
		if v, err := strconv.ParseUint(raw, 10, 64); err == nil {
			cfg.Game.Seed = v
		}
	}
}

func lookupBool(key string) (value, ok bool) {
	raw := os.Getenv(key)
	if raw == "" {
		return false, false
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, false
	}
	return v, true
}
