package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/pflag"

	"github.com/vovakirdan/tui-life/internal/config"
	"github.com/vovakirdan/tui-life/internal/registry"
)

// seedingFlags are the per-command overrides for how grids are seeded.
type seedingFlags struct {
	start   string
	density optionalFloat
	preset  string
}

func (f *seedingFlags) bind(fs *pflag.FlagSet) {
	fs.StringVar(&f.start, "start", "", "Seed strategy for the first grid: blank or random (default: config)")
	fs.Var(&f.density, "density", "Live-cell probability for random grids, 0 to 1 (default: config)")
	fs.StringVar(&f.preset, "preset", "", "Density preset: sparse, normal, dense")
}

// optionalFloat is a float flag that remembers whether it was given.
type optionalFloat struct {
	value float64
	set   bool
}

func (o *optionalFloat) String() string {
	if !o.set {
		return ""
	}
	return strconv.FormatFloat(o.value, 'g', -1, 64)
}

func (o *optionalFloat) Set(s string) error {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return err
	}
	o.value, o.set = v, true
	return nil
}

func (o *optionalFloat) Type() string { return "float" }

// loadConfig loads the config file and applies command-line overrides.
// An explicit --config path that fails to load is an error.
func loadConfig(sf seedingFlags) (config.LifeConfig, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.LifeConfig{}, err
	}
	if err := applyOverrides(&cfg, sf, flagFPS); err != nil {
		return config.LifeConfig{}, err
	}
	return cfg, nil
}

// applyOverrides layers flags over cfg. An explicit --density replaces any
// preset from the config file; a --preset flag wins over both. Out-of-range
// values are left for Validate to reject.
func applyOverrides(cfg *config.LifeConfig, sf seedingFlags, fps int) error {
	if sf.start != "" {
		if !registry.Exists(sf.start) {
			return fmt.Errorf("unknown seed strategy %q (run 'life list')", sf.start)
		}
		cfg.Seeding.Start = sf.start
	}
	if sf.density.set {
		cfg.Seeding.Density = sf.density.value
		cfg.Seeding.Preset = ""
	}
	if err := config.ApplyPreset(cfg, sf.preset); err != nil {
		return err
	}
	if fps > 0 {
		cfg.Simulation.TickRate = fps
	}
	return cfg.Validate()
}
