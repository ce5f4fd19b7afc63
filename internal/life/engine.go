package life

import "fmt"

// CountLiveNeighbors returns how many of the eight cells around c are Alive.
// Neighbor positions outside the grid contribute nothing.
func CountLiveNeighbors(g *Grid, c Coord) (int, error) {
	if !g.InBounds(c) {
		return 0, fmt.Errorf("%w: %v in %dx%d grid", ErrOutOfBounds, c, g.w, g.h)
	}
	return g.liveNeighbors(c.X, c.Y), nil
}

// liveNeighbors assumes (x, y) is in bounds.
func (g *Grid) liveNeighbors(x, y int) int {
	n := 0
	for dy := -1; dy <= 1; dy++ {
		ny := y + dy
		if ny < 0 || ny >= g.h {
			continue
		}
		row := ny * g.w
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx := x + dx
			if nx < 0 || nx >= g.w {
				continue
			}
			if g.cells[row+nx] == Alive {
				n++
			}
		}
	}
	return n
}

// Next applies the B3/S23 rule to a single cell.
func Next(current Status, neighbors int) Status {
	switch {
	case current == Alive && (neighbors == 2 || neighbors == 3):
		return Alive
	case current == Dead && neighbors == 3:
		return Alive
	default:
		return Dead
	}
}

// RuleName names the transition Next applies for the given inputs.
func RuleName(current Status, neighbors int) string {
	if current == Alive {
		switch {
		case neighbors < 2:
			return "under-population"
		case neighbors > 3:
			return "overcrowding"
		default:
			return "survival"
		}
	}
	if neighbors == 3 {
		return "reproduction"
	}
	return "stasis"
}

// Step computes the next generation into a new grid. Every neighbor count
// reads the input grid only, so the result never depends on cell order and
// the input is left untouched.
func Step(g *Grid) *Grid {
	next := &Grid{w: g.w, h: g.h, cells: make([]Status, len(g.cells))}
	for y := range g.h {
		for x := range g.w {
			idx := y*g.w + x
			next.cells[idx] = Next(g.cells[idx], g.liveNeighbors(x, y))
		}
	}
	return next
}
