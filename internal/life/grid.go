// Package life implements Conway's Game of Life (B3/S23) on a finite grid.
// Grid edges truncate the neighborhood: cells outside the grid are never
// counted and never wrap to the opposite edge.
//
// The package has no external dependencies and performs no I/O, so drivers
// (terminal, window, SSH) can share it freely.
package life

import (
	"fmt"
	"iter"
	"math"
)

// Status is the state of a single cell.
type Status uint8

const (
	Dead Status = iota
	Alive
)

// Valid reports whether s is one of the two defined statuses.
func (s Status) Valid() bool {
	return s == Dead || s == Alive
}

// String returns a human-readable name for the status.
func (s Status) String() string {
	switch s {
	case Dead:
		return "Dead"
	case Alive:
		return "Alive"
	default:
		return fmt.Sprintf("Status(%d)", uint8(s))
	}
}

// Coord addresses a cell by column (X) and row (Y).
type Coord struct {
	X, Y int
}

// C is shorthand for Coord{X: x, Y: y}.
func C(x, y int) Coord {
	return Coord{X: x, Y: y}
}

// String returns the coordinate as "(x,y)".
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Grid is a dense, fixed-size field of cell statuses stored in row-major
// order: index = y*width + x. Every in-bounds coordinate holds exactly one
// status; dimensions never change after construction.
type Grid struct {
	w, h  int
	cells []Status
}

// New returns a width x height grid with every cell Dead. Dimensions whose
// cell count overflows int are rejected.
func New(width, height int) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	if width > math.MaxInt/height {
		return nil, fmt.Errorf("%w: %dx%d cells overflow", ErrInvalidDimensions, width, height)
	}
	return &Grid{w: width, h: height, cells: make([]Status, width*height)}, nil
}

// NewRandom returns a width x height grid where each cell is independently
// Alive with probability p. Each cell consumes exactly one draw from src,
// so a seeded source yields a reproducible grid.
func NewRandom(width, height int, p float64, src Source) (*Grid, error) {
	// NaN fails both comparisons, so test for the valid range instead.
	if !(p >= 0 && p <= 1) {
		return nil, fmt.Errorf("%w: %v not in [0,1]", ErrInvalidProbability, p)
	}
	g, err := New(width, height)
	if err != nil {
		return nil, err
	}
	for i := range g.cells {
		if src.Float64() < p {
			g.cells[i] = Alive
		}
	}
	return g, nil
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.w }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.h }

// InBounds reports whether c lies inside the grid.
func (g *Grid) InBounds(c Coord) bool {
	return c.X >= 0 && c.X < g.w && c.Y >= 0 && c.Y < g.h
}

func (g *Grid) index(c Coord) int {
	return c.Y*g.w + c.X
}

// Get returns the status at c.
func (g *Grid) Get(c Coord) (Status, error) {
	if !g.InBounds(c) {
		return Dead, fmt.Errorf("%w: %v in %dx%d grid", ErrOutOfBounds, c, g.w, g.h)
	}
	return g.cells[g.index(c)], nil
}

// Set overwrites the status at c in place. It is meant for interactive
// edits between generations; Step never mutates its input.
func (g *Grid) Set(c Coord, s Status) error {
	if !s.Valid() {
		return fmt.Errorf("%w: %v", ErrInvalidStatus, s)
	}
	if !g.InBounds(c) {
		return fmt.Errorf("%w: %v in %dx%d grid", ErrOutOfBounds, c, g.w, g.h)
	}
	g.cells[g.index(c)] = s
	return nil
}

// Population returns the number of Alive cells.
func (g *Grid) Population() int {
	n := 0
	for _, s := range g.cells {
		if s == Alive {
			n++
		}
	}
	return n
}

// All yields every coordinate and its status, row by row.
func (g *Grid) All() iter.Seq2[Coord, Status] {
	return func(yield func(Coord, Status) bool) {
		for y := range g.h {
			for x := range g.w {
				if !yield(C(x, y), g.cells[y*g.w+x]) {
					return
				}
			}
		}
	}
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	cells := make([]Status, len(g.cells))
	copy(cells, g.cells)
	return &Grid{w: g.w, h: g.h, cells: cells}
}

// Equal reports whether both grids have the same dimensions and contents.
func (g *Grid) Equal(other *Grid) bool {
	if other == nil || g.w != other.w || g.h != other.h {
		return false
	}
	for i, s := range g.cells {
		if s != other.cells[i] {
			return false
		}
	}
	return true
}
