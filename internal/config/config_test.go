package config

import (
	"errors"
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/san-kum/particlesim/internal/physics"
	"github.com/san-kum/particlesim/internal/world"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Bodies != 400 {
		t.Errorf("expected 400 bodies, got %d", cfg.Bodies)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		t.Error("viewport should be positive")
	}
	if len(cfg.Palette) != len(physics.DefaultPalette) {
		t.Errorf("expected default palette, got %v", cfg.Palette)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   error
	}{
		{"negative bodies", func(c *Config) { c.Bodies = -1 }, world.ErrInvalidBodyCount},
		{"zero width", func(c *Config) { c.Width = 0 }, ErrInvalidViewport},
		{"negative height", func(c *Config) { c.Height = -5 }, ErrInvalidViewport},
		{"zero fps", func(c *Config) { c.FPS = 0 }, ErrInvalidFPS},
		{"zero scale", func(c *Config) { c.Scale = 0 }, ErrInvalidScale},
		{"empty palette", func(c *Config) { c.Palette = nil }, world.ErrEmptyPalette},
		{"bad colour", func(c *Config) { c.Palette = []string{"red"} }, ErrInvalidColor},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			if err := cfg.Validate(); !errors.Is(err, tt.want) {
				t.Errorf("Validate() = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sim.yaml")

	cfg := DefaultConfig()
	cfg.Bodies = 12
	cfg.Seed = 99
	cfg.Palette = []string{"#010203"}

	if err := Save(path, cfg); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if loaded.Bodies != 12 || loaded.Seed != 99 {
		t.Errorf("unexpected config: %+v", loaded)
	}
	if c := loaded.Colors(); len(c) != 1 || c[0] != "#010203" {
		t.Errorf("unexpected palette: %v", c)
	}
}

func TestLoadPartialKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sim.yaml")
	if err := os.WriteFile(path, []byte("bodies: 5\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Bodies != 5 {
		t.Errorf("expected 5 bodies, got %d", cfg.Bodies)
	}
	if cfg.Width != DefaultWidth || cfg.FPS != DefaultFPS {
		t.Errorf("defaults lost: %+v", cfg)
	}
}

func TestLoadOverPreset(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sim.yaml")
	if err := os.WriteFile(path, []byte("fps: 30\n"), 0644); err != nil {
		t.Fatal(err)
	}

	base := GetPreset("pinball")
	cfg, err := LoadOver(path, base)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.FPS != 30 {
		t.Errorf("expected file fps 30, got %d", cfg.FPS)
	}
	if cfg.Bodies != base.Bodies || cfg.Seed != base.Seed {
		t.Errorf("expected preset population kept, got %+v", cfg)
	}
	if base.FPS != DefaultFPS {
		t.Error("base must not be modified")
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sim.yaml")
	if err := os.WriteFile(path, []byte("width: -1\n"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); !errors.Is(err, ErrInvalidViewport) {
		t.Errorf("expected ErrInvalidViewport, got %v", err)
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("sparse")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if cfg.Bodies != 60 {
		t.Errorf("expected 60 bodies, got %d", cfg.Bodies)
	}
	if cfg.FPS != DefaultFPS {
		t.Errorf("preset should inherit fps, got %d", cfg.FPS)
	}

	if GetPreset("nonexistent") != nil {
		t.Error("expected nil for nonexistent preset")
	}
}

func TestPresetsValidate(t *testing.T) {
	names := ListPresets()
	sort.Strings(names)
	if len(names) != len(Presets) {
		t.Fatalf("expected %d presets, got %d", len(Presets), len(names))
	}
	for _, name := range names {
		if err := GetPreset(name).Validate(); err != nil {
			t.Errorf("preset %s invalid: %v", name, err)
		}
	}
}

func TestWorldOptions(t *testing.T) {
	cfg := GetPreset("pinball")
	w, err := world.New(cfg.Width, cfg.Height, cfg.WorldOptions()...)
	if err != nil {
		t.Fatalf("world.New failed: %v", err)
	}
	if w.Len() != 12 {
		t.Errorf("expected 12 bodies, got %d", w.Len())
	}

	again, _ := world.New(cfg.Width, cfg.Height, cfg.WorldOptions()...)
	if again.Bodies()[0] != w.Bodies()[0] {
		t.Error("seeded preset should be reproducible")
	}
}
