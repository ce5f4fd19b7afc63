package config

import (
	_ "embed"
)

//go:embed defaults/life.yaml
var defaultLifeYAML []byte

// DefaultLifeConfig returns the default configuration.
func DefaultLifeConfig() LifeConfig {
	return LifeConfig{
		Window: WindowConfig{
			Width:    700,
			Height:   500,
			CellSize: 10,
		},
		Seeding: SeedingConfig{
			Start:   "blank",
			Density: 0.3,
		},
		Simulation: SimulationConfig{
			TickRate:    10,
			StartPaused: false,
		},
		Display: DisplayConfig{
			ShowGrid: true,
			Colors: ColorConfig{
				Alive:  "#00ff00",
				Dead:   "#ffffff",
				Grid:   "#3c3c3c",
				HUD:    "#a8a8a8",
				Paused: "#ffaf00",
			},
		},
	}
}
