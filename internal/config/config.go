// Package config provides YAML-based configuration loading and density
// presets for the life platform.
package config

import (
	"errors"
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

// LifeConfig contains all tunable settings for a life session.
type LifeConfig struct {
	Window     WindowConfig     `yaml:"window"`
	Seeding    SeedingConfig    `yaml:"seeding"`
	Simulation SimulationConfig `yaml:"simulation"`
	Display    DisplayConfig    `yaml:"display"`
}

// WindowConfig sizes the graphical window. The grid has
// floor(width/cell_size) x floor(height/cell_size) cells.
type WindowConfig struct {
	Width    int `yaml:"width"`
	Height   int `yaml:"height"`
	CellSize int `yaml:"cell_size"`
}

// SeedingConfig selects how fresh grids are produced.
type SeedingConfig struct {
	Start   string  `yaml:"start"`   // "blank" or "random"
	Density float64 `yaml:"density"` // Live-cell probability for "random"
	Preset  string  `yaml:"preset"`  // Optional density preset, overrides density
}

// SimulationConfig controls pacing.
type SimulationConfig struct {
	TickRate    int  `yaml:"tick_rate"` // Generations per second while running
	StartPaused bool `yaml:"start_paused"`
}

// DisplayConfig holds purely cosmetic settings.
type DisplayConfig struct {
	ShowGrid bool        `yaml:"show_grid"`
	Colors   ColorConfig `yaml:"colors"`
}

// ColorConfig maps drawing roles to hex colors ("#rrggbb").
type ColorConfig struct {
	Alive  string `yaml:"alive"`
	Dead   string `yaml:"dead"`
	Grid   string `yaml:"grid"`
	HUD    string `yaml:"hud"`
	Paused string `yaml:"paused"`
}

// DensityPreset represents a named live-cell density.
type DensityPreset string

const (
	PresetSparse DensityPreset = "sparse"
	PresetNormal DensityPreset = "normal"
	PresetDense  DensityPreset = "dense"
)

// ErrUnknownPreset is returned for preset names other than the defined ones.
var ErrUnknownPreset = errors.New("config: unknown density preset")

// DensityForPreset returns the density for a preset name.
func DensityForPreset(preset DensityPreset) (float64, error) {
	switch preset {
	case PresetSparse:
		return 0.15, nil
	case PresetNormal:
		return 0.3, nil
	case PresetDense:
		return 0.5, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownPreset, preset)
	}
}

// ApplyPreset sets the seeding density from a preset name.
// An empty name leaves the config unchanged.
func ApplyPreset(cfg *LifeConfig, preset string) error {
	if preset == "" {
		return nil
	}
	density, err := DensityForPreset(DensityPreset(preset))
	if err != nil {
		return err
	}
	cfg.Seeding.Preset = preset
	cfg.Seeding.Density = density
	return nil
}

// Validate reports the first setting that cannot produce a valid session.
func (c LifeConfig) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("config: window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.Window.CellSize <= 0 {
		return fmt.Errorf("config: cell_size must be positive, got %d", c.Window.CellSize)
	}
	if c.Window.CellSize > c.Window.Width || c.Window.CellSize > c.Window.Height {
		return fmt.Errorf("config: cell_size %d leaves no room for a cell in %dx%d window",
			c.Window.CellSize, c.Window.Width, c.Window.Height)
	}
	if !(c.Seeding.Density >= 0 && c.Seeding.Density <= 1) {
		return fmt.Errorf("config: density must be in [0,1], got %v", c.Seeding.Density)
	}
	if c.Seeding.Start != "blank" && c.Seeding.Start != "random" {
		return fmt.Errorf("config: start must be \"blank\" or \"random\", got %q", c.Seeding.Start)
	}
	if c.Simulation.TickRate <= 0 {
		return fmt.Errorf("config: tick_rate must be positive, got %d", c.Simulation.TickRate)
	}
	return c.Display.Colors.Validate()
}

// Validate checks that every color is "#rgb" or "#rrggbb".
func (c ColorConfig) Validate() error {
	for _, f := range []struct{ name, value string }{
		{"alive", c.Alive},
		{"dead", c.Dead},
		{"grid", c.Grid},
		{"hud", c.HUD},
		{"paused", c.Paused},
	} {
		if len(f.value) != 4 && len(f.value) != 7 {
			return fmt.Errorf("config: color %s must be #rgb or #rrggbb, got %q", f.name, f.value)
		}
		if _, err := colorful.Hex(f.value); err != nil {
			return fmt.Errorf("config: color %s: %w", f.name, err)
		}
	}
	return nil
}

// GridSize returns the number of whole cells that fit in the window.
func (c WindowConfig) GridSize() (int, int) {
	if c.CellSize <= 0 {
		return 0, 0
	}
	return c.Width / c.CellSize, c.Height / c.CellSize
}
