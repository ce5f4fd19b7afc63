// Package session drives a Game of Life run on behalf of a user interface.
// A Session owns exactly one current grid and translates semantic input
// (pause, step, randomize, clear, paint) into engine calls. It never logs
// and never touches the terminal; drivers render it through core.Screen.
package session

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/vovakirdan/tui-life/internal/core"
	"github.com/vovakirdan/tui-life/internal/life"
	"github.com/vovakirdan/tui-life/internal/registry"
	"github.com/vovakirdan/tui-life/internal/seeds"
)

// Config describes a new session.
type Config struct {
	Width       int     // Grid columns
	Height      int     // Grid rows
	Density     float64 // Live-cell probability for the random strategy
	Seed        int64   // RNG seed; the same seed replays the same random grids
	Start       string  // Seeder ID for the first grid ("blank" or "random")
	StartPaused bool
	ShowGrid    bool
	Layout      Layout
}

// Stats is a snapshot of the current run.
type Stats struct {
	Generation     int
	Population     int
	PeakPopulation int
}

// Result is returned by Update after each tick.
type Result struct {
	Stats   Stats
	Paused  bool
	Stepped bool // Whether at least one generation was computed

	// Ended holds the run that was replaced by a new grid during this
	// tick, if it had advanced at least one generation.
	Ended *RunSummary
}

// RunSummary describes a finished run for the run history.
type RunSummary struct {
	Strategy        string
	Seed            int64
	Width           int
	Height          int
	Density         float64
	Generations     int
	PeakPopulation  int
	FinalPopulation int
	StartedAt       time.Time
	EndedAt         time.Time
}

// Session holds the single current grid and the driver-side flags around it.
type Session struct {
	cfg    Config
	rng    *rand.Rand
	random registry.Seeder
	blank  registry.Seeder

	grid       *life.Grid
	strategy   string
	generation int
	peak       int
	started    time.Time
	paused     bool
	showGrid   bool

	cursor    life.Coord // Last cell under the pointer
	hasCursor bool

	now func() time.Time
}

// New validates cfg and seeds the first grid with cfg.Start.
func New(cfg Config) (*Session, error) {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, fmt.Errorf("session: %w: %dx%d", life.ErrInvalidDimensions, cfg.Width, cfg.Height)
	}
	if !(cfg.Density >= 0 && cfg.Density <= 1) {
		return nil, fmt.Errorf("session: %w: density %v", life.ErrInvalidProbability, cfg.Density)
	}
	if cfg.Start == "" {
		cfg.Start = seeds.BlankID
	}
	if cfg.Layout == (Layout{}) {
		cfg.Layout = TerminalLayout()
	}

	opts := registry.Options{Density: cfg.Density}
	random, err := registry.Create(seeds.RandomID, opts)
	if err != nil {
		return nil, fmt.Errorf("session: %w", err)
	}
	blank, err := registry.Create(seeds.BlankID, opts)
	if err != nil {
		return nil, fmt.Errorf("session: %w", err)
	}

	s := &Session{
		cfg:      cfg,
		rng:      rand.New(rand.NewPCG(uint64(cfg.Seed), 0)),
		random:   random,
		blank:    blank,
		paused:   cfg.StartPaused,
		showGrid: cfg.ShowGrid,
		now:      time.Now,
	}
	if _, err := s.Reseed(cfg.Start); err != nil {
		return nil, err
	}
	return s, nil
}

// Grid returns the current generation. Callers must not keep it across
// Update calls: stepping replaces it.
func (s *Session) Grid() *life.Grid { return s.grid }

// Generation returns how many generations the current run has advanced.
func (s *Session) Generation() int { return s.generation }

// Paused reports whether automatic stepping is suspended.
func (s *Session) Paused() bool { return s.paused }

// ShowGrid reports whether the grid-line overlay is enabled.
func (s *Session) ShowGrid() bool { return s.showGrid }

// Strategy returns the seeder ID that produced the current run.
func (s *Session) Strategy() string { return s.strategy }

// Config returns the configuration the session was created with.
func (s *Session) Config() Config { return s.cfg }

// Stats returns counters for the current run.
func (s *Session) Stats() Stats {
	return Stats{
		Generation:     s.generation,
		Population:     s.grid.Population(),
		PeakPopulation: s.peak,
	}
}

// Summary describes the current run as if it ended now.
func (s *Session) Summary() RunSummary {
	return RunSummary{
		Strategy:        s.strategy,
		Seed:            s.cfg.Seed,
		Width:           s.grid.Width(),
		Height:          s.grid.Height(),
		Density:         s.cfg.Density,
		Generations:     s.generation,
		PeakPopulation:  s.peak,
		FinalPopulation: s.grid.Population(),
		StartedAt:       s.started,
		EndedAt:         s.now(),
	}
}

// Reseed replaces the grid with a fresh one from the named strategy and
// starts a new run. It returns the summary of the run it replaced when
// that run advanced at least one generation.
func (s *Session) Reseed(id string) (*RunSummary, error) {
	var seeder registry.Seeder
	switch id {
	case seeds.RandomID:
		seeder = s.random
	case seeds.BlankID:
		seeder = s.blank
	default:
		created, err := registry.Create(id, registry.Options{Density: s.cfg.Density})
		if err != nil {
			return nil, fmt.Errorf("session: %w", err)
		}
		seeder = created
	}

	grid, err := seeder.Seed(s.cfg.Width, s.cfg.Height, s.rng)
	if err != nil {
		return nil, fmt.Errorf("session: seed %s: %w", id, err)
	}

	var ended *RunSummary
	if s.grid != nil && s.generation > 0 {
		sum := s.Summary()
		ended = &sum
	}

	s.grid = grid
	s.strategy = seeder.ID()
	s.generation = 0
	s.peak = grid.Population()
	s.started = s.now()
	return ended, nil
}

// Randomize starts a new run from a random grid.
func (s *Session) Randomize() (*RunSummary, error) {
	return s.Reseed(seeds.RandomID)
}

// Clear starts a new run from a blank grid.
func (s *Session) Clear() (*RunSummary, error) {
	return s.Reseed(seeds.BlankID)
}

// TogglePause flips automatic stepping.
func (s *Session) TogglePause() { s.paused = !s.paused }

// ToggleGrid flips the grid-line overlay.
func (s *Session) ToggleGrid() { s.showGrid = !s.showGrid }

// Advance computes exactly one generation, regardless of pause.
func (s *Session) Advance() {
	s.grid = life.Step(s.grid)
	s.generation++
	if pop := s.grid.Population(); pop > s.peak {
		s.peak = pop
	}
}

// Tick advances one generation unless paused. It reports whether it stepped.
func (s *Session) Tick() bool {
	if s.paused {
		return false
	}
	s.Advance()
	return true
}

// Paint sets a single cell of the current grid.
func (s *Session) Paint(c life.Coord, status life.Status) error {
	if err := s.grid.Set(c, status); err != nil {
		return fmt.Errorf("session: paint: %w", err)
	}
	if status == life.Alive {
		if pop := s.grid.Population(); pop > s.peak {
			s.peak = pop
		}
	}
	return nil
}

// PaintAt paints the cell under a pointer position. Positions outside the
// grid are ignored; it reports whether a cell was painted.
func (s *Session) PaintAt(x, y int, status life.Status) bool {
	c, ok := s.CellAt(x, y)
	if !ok {
		return false
	}
	return s.Paint(c, status) == nil
}

// Update applies one frame of input and then ticks: pause, randomize,
// clear and overlay toggles first, then single-step, pointer edits, and
// finally automatic stepping.
func (s *Session) Update(in core.InputFrame) (Result, error) {
	var res Result

	if in.Has(core.ActionPause) {
		s.TogglePause()
	}
	if in.Has(core.ActionRandomize) {
		ended, err := s.Randomize()
		if err != nil {
			return res, err
		}
		res.Ended = ended
	}
	if in.Has(core.ActionClear) {
		ended, err := s.Clear()
		if err != nil {
			return res, err
		}
		if ended != nil {
			res.Ended = ended
		}
	}
	if in.Has(core.ActionToggleGrid) {
		s.ToggleGrid()
	}
	if in.Has(core.ActionStep) {
		s.Advance()
		res.Stepped = true
	}

	for _, ev := range in.Pointer {
		if c, ok := s.CellAt(ev.X, ev.Y); ok {
			s.cursor, s.hasCursor = c, true
		}
		switch ev.Button {
		case core.PointerLeft:
			s.PaintAt(ev.X, ev.Y, life.Alive)
		case core.PointerRight:
			s.PaintAt(ev.X, ev.Y, life.Dead)
		}
	}

	if s.Tick() {
		res.Stepped = true
	}

	res.Stats = s.Stats()
	res.Paused = s.paused
	return res, nil
}
