package session

import (
	"fmt"

	"github.com/vovakirdan/tui-life/internal/core"
	"github.com/vovakirdan/tui-life/internal/life"
)

// Glyphs used when drawing onto a core.Screen.
const (
	aliveRune = '█'
	gridRune  = '·'
)

// Render draws the current generation and, when the layout leaves room
// above the board, a status bar. The screen is cleared first.
func (s *Session) Render(dst *core.Screen) {
	dst.Clear()
	l := s.cfg.Layout

	for c, status := range s.grid.All() {
		x0 := l.OriginX + c.X*l.CellW
		y0 := l.OriginY + c.Y*l.CellH
		if x0 >= dst.Width() || y0 >= dst.Height() {
			continue
		}
		for dy := range l.CellH {
			for dx := range l.CellW {
				dst.SetCell(x0+dx, y0+dy, s.cellGlyph(status, dx, dy))
			}
		}
	}

	if l.OriginY > 0 {
		s.renderStatus(dst, l.OriginY-1)
	}
}

func (s *Session) cellGlyph(status life.Status, dx, dy int) core.Cell {
	if status == life.Alive {
		return core.Cell{Rune: aliveRune, Color: core.ColorAlive}
	}
	if s.showGrid && dx == 0 && dy == 0 {
		return core.Cell{Rune: gridRune, Color: core.ColorGridLine}
	}
	return core.Cell{Rune: ' ', Color: core.ColorDead}
}

func (s *Session) renderStatus(dst *core.Screen, y int) {
	st := s.Stats()
	line := fmt.Sprintf(" gen %d  pop %d  peak %d  %dx%d  %s",
		st.Generation, st.Population, st.PeakPopulation,
		s.grid.Width(), s.grid.Height(), s.strategy)
	if c, ok := s.Cursor(); ok {
		if in, err := s.Inspect(c); err == nil {
			line += "  " + in.String()
		}
	}
	dst.DrawTextColored(0, y, line, core.ColorHUD)

	if s.paused {
		label := "[PAUSED]"
		dst.DrawTextColored(dst.Width()-len(label)-1, y, label, core.ColorPaused)
	}
}
