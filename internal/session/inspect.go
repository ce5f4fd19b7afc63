package session

import (
	"fmt"

	"github.com/vovakirdan/tui-life/internal/life"
)

// Inspection describes one cell of the current grid and what the next
// generation does to it.
type Inspection struct {
	Cell      life.Coord
	Status    life.Status
	Neighbors int
	Next      life.Status
	Rule      string
}

// String formats the inspection for the status bar, e.g. "(3,4) 2n survival".
func (i Inspection) String() string {
	return fmt.Sprintf("%v %dn %s", i.Cell, i.Neighbors, i.Rule)
}

// Inspect reports the state of c and the rule that decides its next status.
func (s *Session) Inspect(c life.Coord) (Inspection, error) {
	status, err := s.grid.Get(c)
	if err != nil {
		return Inspection{}, fmt.Errorf("session: inspect: %w", err)
	}
	n, err := life.CountLiveNeighbors(s.grid, c)
	if err != nil {
		return Inspection{}, fmt.Errorf("session: inspect: %w", err)
	}
	return Inspection{
		Cell:      c,
		Status:    status,
		Neighbors: n,
		Next:      life.Next(status, n),
		Rule:      life.RuleName(status, n),
	}, nil
}

// Cursor returns the cell most recently under the pointer, if any.
func (s *Session) Cursor() (life.Coord, bool) {
	return s.cursor, s.hasCursor
}
