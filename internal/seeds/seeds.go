// Package seeds provides the grid generators a driver uses to start a run:
// an all-Dead grid and a grid randomized with a live-cell density.
package seeds

import (
	"github.com/vovakirdan/tui-life/internal/life"
	"github.com/vovakirdan/tui-life/internal/registry"
)

// Registered strategy IDs.
const (
	BlankID  = "blank"
	RandomID = "random"
)

// Blank seeds an all-Dead grid.
type Blank struct{}

// ID returns the strategy identifier.
func (Blank) ID() string { return BlankID }

// Title returns the display name.
func (Blank) Title() string { return "Blank" }

// Seed returns an all-Dead grid; src is unused.
func (Blank) Seed(width, height int, _ life.Source) (*life.Grid, error) {
	return life.New(width, height)
}

// Random seeds each cell Alive with probability Density.
type Random struct {
	Density float64
}

// ID returns the strategy identifier.
func (Random) ID() string { return RandomID }

// Title returns the display name.
func (Random) Title() string { return "Random" }

// Seed draws one value from src per cell.
func (r Random) Seed(width, height int, src life.Source) (*life.Grid, error) {
	return life.NewRandom(width, height, r.Density, src)
}

func init() {
	registry.Register(BlankID, func(registry.Options) registry.Seeder {
		return Blank{}
	})
	registry.Register(RandomID, func(opts registry.Options) registry.Seeder {
		return Random{Density: opts.Density}
	})
}
