package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("MAX_DIMENSION", "")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Port != "8080" {
		t.Fatalf("unexpected port: %s", cfg.Port)
	}
	if cfg.MaxDimension != DefaultMaxDimension {
		t.Fatalf("unexpected max dimension: %d", cfg.MaxDimension)
	}
	if len(cfg.DefaultRatioPresets) != 7 {
		t.Fatalf("expected all 7 ratio presets by default, got %v", cfg.DefaultRatioPresets)
	}
	if len(cfg.DefaultResolutionPresets) != 0 {
		t.Fatalf("expected no resolution presets by default, got %v", cfg.DefaultResolutionPresets)
	}
}

func TestLoadFile(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("MAX_DIMENSION", "")

	path := filepath.Join(t.TempDir(), "config.yaml")
	data := []byte("port: \"9090\"\nmaxDimension: 4096\ndefaultResolutionPresets:\n  - sdxl_1024x1024\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Port != "9090" || cfg.MaxDimension != 4096 {
		t.Fatalf("unexpected config: %+v", cfg)
	}
	if len(cfg.DefaultResolutionPresets) != 1 || cfg.DefaultResolutionPresets[0] != "sdxl_1024x1024" {
		t.Fatalf("unexpected resolution presets: %v", cfg.DefaultResolutionPresets)
	}
}

func TestLoadEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("port: \"9090\"\n"), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	t.Setenv("PORT", "7070")
	t.Setenv("MAX_DIMENSION", "2048")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Port != "7070" || cfg.MaxDimension != 2048 {
		t.Fatalf("env overrides not applied: %+v", cfg)
	}
}

func TestLoadRejectsUnknownPreset(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("MAX_DIMENSION", "")

	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("defaultRatioPresets:\n  - \"5:7\"\n"), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Fatalf("expected error for unknown preset")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}
