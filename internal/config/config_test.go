package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultLifeConfigIsValid(t *testing.T) {
	cfg := DefaultLifeConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("DefaultLifeConfig().Validate() = %v, expected nil", err)
	}

	w, h := cfg.Window.GridSize()
	if w != 70 || h != 50 {
		t.Errorf("GridSize() = %dx%d, expected 70x50", w, h)
	}
	if cfg.Seeding.Density != 0.3 {
		t.Errorf("Density = %v, expected 0.3", cfg.Seeding.Density)
	}
	if cfg.Simulation.TickRate != 10 {
		t.Errorf("TickRate = %d, expected 10", cfg.Simulation.TickRate)
	}
	if !cfg.Display.ShowGrid {
		t.Error("ShowGrid should default to true")
	}
	if cfg.Simulation.StartPaused {
		t.Error("StartPaused should default to false")
	}
}

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	cfg, err := Parse(defaultLifeYAML)
	if err != nil {
		t.Fatalf("Parse(embedded) failed: %v", err)
	}
	if cfg != DefaultLifeConfig() {
		t.Errorf("embedded config = %+v, expected %+v", cfg, DefaultLifeConfig())
	}
}

func TestGridSizeFloors(t *testing.T) {
	tests := []struct {
		w  WindowConfig
		gw int
		gh int
	}{
		{WindowConfig{Width: 700, Height: 500, CellSize: 10}, 70, 50},
		{WindowConfig{Width: 705, Height: 509, CellSize: 10}, 70, 50},
		{WindowConfig{Width: 7, Height: 5, CellSize: 1}, 7, 5},
		{WindowConfig{Width: 100, Height: 100, CellSize: 0}, 0, 0},
	}

	for _, tt := range tests {
		gw, gh := tt.w.GridSize()
		if gw != tt.gw || gh != tt.gh {
			t.Errorf("%+v.GridSize() = %dx%d, expected %dx%d", tt.w, gw, gh, tt.gw, tt.gh)
		}
	}
}

func TestDensityForPreset(t *testing.T) {
	tests := []struct {
		preset DensityPreset
		want   float64
	}{
		{PresetSparse, 0.15},
		{PresetNormal, 0.3},
		{PresetDense, 0.5},
	}

	for _, tt := range tests {
		t.Run(string(tt.preset), func(t *testing.T) {
			got, err := DensityForPreset(tt.preset)
			if err != nil {
				t.Fatalf("DensityForPreset(%q) error: %v", tt.preset, err)
			}
			if got != tt.want {
				t.Errorf("DensityForPreset(%q) = %v, expected %v", tt.preset, got, tt.want)
			}
		})
	}

	if _, err := DensityForPreset("crowded"); !errors.Is(err, ErrUnknownPreset) {
		t.Errorf("DensityForPreset(crowded) error = %v, expected ErrUnknownPreset", err)
	}
}

func TestApplyPreset(t *testing.T) {
	cfg := DefaultLifeConfig()
	if err := ApplyPreset(&cfg, ""); err != nil {
		t.Fatalf("ApplyPreset(\"\") error: %v", err)
	}
	if cfg.Seeding.Density != 0.3 {
		t.Errorf("empty preset changed density to %v", cfg.Seeding.Density)
	}

	if err := ApplyPreset(&cfg, "dense"); err != nil {
		t.Fatalf("ApplyPreset(dense) error: %v", err)
	}
	if cfg.Seeding.Density != 0.5 || cfg.Seeding.Preset != "dense" {
		t.Errorf("after dense preset: density=%v preset=%q", cfg.Seeding.Density, cfg.Seeding.Preset)
	}
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*LifeConfig)
	}{
		{"zero width", func(c *LifeConfig) { c.Window.Width = 0 }},
		{"negative height", func(c *LifeConfig) { c.Window.Height = -1 }},
		{"zero cell size", func(c *LifeConfig) { c.Window.CellSize = 0 }},
		{"cell larger than window", func(c *LifeConfig) { c.Window.CellSize = 600 }},
		{"density above one", func(c *LifeConfig) { c.Seeding.Density = 1.5 }},
		{"negative density", func(c *LifeConfig) { c.Seeding.Density = -0.1 }},
		{"unknown start", func(c *LifeConfig) { c.Seeding.Start = "glider" }},
		{"zero tick rate", func(c *LifeConfig) { c.Simulation.TickRate = 0 }},
		{"named color", func(c *LifeConfig) { c.Display.Colors.Alive = "green" }},
		{"bad hex color", func(c *LifeConfig) { c.Display.Colors.Grid = "#zzzzzz" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultLifeConfig()
			tt.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("Validate() = nil, expected error")
			}
		})
	}
}

func TestParsePartialOverridesDefaults(t *testing.T) {
	data := []byte(`
window:
  cell_size: 20
seeding:
  start: random
  preset: sparse
display:
  show_grid: false
`)
	cfg, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}
	if cfg.Window.Width != 700 || cfg.Window.CellSize != 20 {
		t.Errorf("Window = %+v, expected width 700 and cell size 20", cfg.Window)
	}
	if cfg.Seeding.Start != "random" || cfg.Seeding.Density != 0.15 {
		t.Errorf("Seeding = %+v, expected random at 0.15", cfg.Seeding)
	}
	if cfg.Display.ShowGrid {
		t.Error("ShowGrid should be false")
	}
	if cfg.Display.Colors.Alive != "#00ff00" {
		t.Errorf("Alive color = %q, expected default", cfg.Display.Colors.Alive)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"malformed", "window: [1, 2"},
		{"unknown preset", "seeding:\n  preset: crowded\n"},
		{"invalid density", "seeding:\n  density: 2\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse([]byte(tt.data)); err == nil {
				t.Error("Parse() = nil error, expected failure")
			}
		})
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "life.yaml")
	if err := os.WriteFile(path, []byte("simulation:\n  tick_rate: 30\n  start_paused: true\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Simulation.TickRate != 30 || !cfg.Simulation.StartPaused {
		t.Errorf("Simulation = %+v, expected tick 30 paused", cfg.Simulation)
	}
}

func TestLoadCustomPathMissingIsError(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Load(missing) = nil error, expected failure")
	}
}

func TestLoadFallsBackToDefault(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") failed: %v", err)
	}
	if cfg != DefaultLifeConfig() {
		t.Errorf("Load(\"\") = %+v, expected defaults", cfg)
	}
}

func TestLoadPrefersUserConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(t.TempDir())

	dir := filepath.Join(home, ".life", "configs")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "life.yaml"), []byte("window:\n  cell_size: 5\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") failed: %v", err)
	}
	if cfg.Window.CellSize != 5 {
		t.Errorf("CellSize = %d, expected 5 from user config", cfg.Window.CellSize)
	}
}
