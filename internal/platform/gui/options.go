// Package gui provides the Ebiten window driver. The window is only
// available when built with the ebiten tag; other builds return
// ErrUnavailable from Run.
package gui

import (
	"errors"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-life/internal/config"
	"github.com/vovakirdan/tui-life/internal/session"
)

// ErrUnavailable is returned by Run in builds without the ebiten tag.
var ErrUnavailable = errors.New("gui: window driver requires building with -tags ebiten")

// Options configures a window session.
type Options struct {
	// Life supplies the window size, cell size, seeding, pacing and colors.
	Life config.LifeConfig

	// Seed for random grids. 0 seeds from the clock.
	Seed int64

	// Recorder receives finished runs. May be nil.
	Recorder session.RunRecorder

	// Logger reports recorder failures. May be nil.
	Logger *log.Logger
}

// SessionConfig derives the session for a window: the grid has one cell
// per cell_size pixels in each direction, rounded down.
func (o Options) SessionConfig() session.Config {
	lc := o.Life
	w, h := lc.Window.GridSize()
	seed := o.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return session.Config{
		Width:       w,
		Height:      h,
		Density:     lc.Seeding.Density,
		Seed:        seed,
		Start:       lc.Seeding.Start,
		StartPaused: lc.Simulation.StartPaused,
		ShowGrid:    lc.Display.ShowGrid,
		Layout:      session.PixelLayout(lc.Window.CellSize),
	}
}
