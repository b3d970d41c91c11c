// Package config loads service settings from an optional YAML file with
// environment variable overrides.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"aspect-api/internal/aspect"
	"aspect-api/internal/resolution"
)

// DefaultMaxDimension bounds request width/height at the API boundary.
const DefaultMaxDimension = 8192

// Config holds the service settings.
type Config struct {
	Port         string `yaml:"port"`
	MaxDimension int    `yaml:"maxDimension"`

	// Preset names applied when a request omits its preset list entirely.
	// Requests with an explicit (even empty) list override these.
	DefaultRatioPresets      []string `yaml:"defaultRatioPresets"`
	DefaultResolutionPresets []string `yaml:"defaultResolutionPresets"`
}

// Load builds the config from defaults, then the YAML file at path (skipped
// when path is empty), then environment overrides (PORT, MAX_DIMENSION).
func Load(path string) (*Config, error) {
	cfg := &Config{
		Port:         "8080",
		MaxDimension: DefaultMaxDimension,
		// All ratio presets on, no resolution presets: matches the behavior
		// of a host that ticks every ratio checkbox by default.
		DefaultRatioPresets: aspect.PresetNames(),
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config: %w", err)
		}
	}

	if port := os.Getenv("PORT"); port != "" {
		cfg.Port = port
	}
	if raw := os.Getenv("MAX_DIMENSION"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("parsing MAX_DIMENSION: %w", err)
		}
		cfg.MaxDimension = v
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.MaxDimension < 1 {
		return errors.New("maxDimension must be at least 1")
	}
	for _, name := range c.DefaultRatioPresets {
		if !aspect.IsPreset(name) {
			return fmt.Errorf("unknown ratio preset %q in defaultRatioPresets", name)
		}
	}
	for _, name := range c.DefaultResolutionPresets {
		if !resolution.IsPreset(name) {
			return fmt.Errorf("unknown resolution preset %q in defaultResolutionPresets", name)
		}
	}
	return nil
}
