package life

import (
	"fmt"
	"strings"
)

// Glyphs used by the text form of a grid.
const (
	AliveGlyph = '#'
	DeadGlyph  = '.'
)

// String renders the grid one row per line, '#' for Alive and '.' for Dead.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow(g.w*g.h + g.h)
	for y := range g.h {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := range g.w {
			if g.cells[y*g.w+x] == Alive {
				sb.WriteByte(AliveGlyph)
			} else {
				sb.WriteByte(DeadGlyph)
			}
		}
	}
	return sb.String()
}

// Parse builds a grid from the text form produced by String.
// Blank lines and surrounding whitespace are ignored; all rows must have
// the same length. 'O' and '*' are also accepted for Alive cells, and '_'
// for Dead cells.
func Parse(text string) (*Grid, error) {
	var rows []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		rows = append(rows, line)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: empty pattern", ErrInvalidDimensions)
	}

	width := len(rows[0])
	g, err := New(width, len(rows))
	if err != nil {
		return nil, err
	}
	for y, row := range rows {
		if len(row) != width {
			return nil, fmt.Errorf("life: row %d has %d cells, expected %d", y, len(row), width)
		}
		for x := range len(row) {
			switch row[x] {
			case AliveGlyph, 'O', '*':
				g.cells[y*width+x] = Alive
			case DeadGlyph, '_':
			default:
				return nil, fmt.Errorf("life: unexpected %q at %v", row[x], C(x, y))
			}
		}
	}
	return g, nil
}
