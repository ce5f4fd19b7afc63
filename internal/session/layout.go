package session

import (
	"github.com/vovakirdan/tui-life/internal/core"
	"github.com/vovakirdan/tui-life/internal/life"
)

// Layout places the grid on a driver surface. Units are the driver's own:
// terminal characters for the TUI, pixels for the window.
type Layout struct {
	OriginX int // Left edge of the board
	OriginY int // Top edge of the board
	CellW   int // Units per cell horizontally
	CellH   int // Units per cell vertically
}

// TerminalLayout draws each cell two characters wide, which looks square
// in most terminal fonts, below a one-line status bar.
func TerminalLayout() Layout {
	return Layout{OriginX: 0, OriginY: 1, CellW: 2, CellH: 1}
}

// PixelLayout draws square cells of the given pixel size from the window origin.
func PixelLayout(cellSize int) Layout {
	return Layout{CellW: cellSize, CellH: cellSize}
}

// GridSize returns how many whole cells fit on a surface of the given size.
func (l Layout) GridSize(surfaceW, surfaceH int) (int, int) {
	return core.Cells(surfaceW-l.OriginX, l.CellW), core.Cells(surfaceH-l.OriginY, l.CellH)
}

// Board returns the area covered by a width x height grid.
func (l Layout) Board(width, height int) core.Rect {
	return core.NewRect(l.OriginX, l.OriginY, width*l.CellW, height*l.CellH)
}

// CellAt maps a surface position to the grid coordinate under it.
// It reports false for positions outside the board.
func (l Layout) CellAt(x, y, width, height int) (life.Coord, bool) {
	if !l.Board(width, height).Contains(x, y) {
		return life.Coord{}, false
	}
	c := life.C(core.CellIndex(x-l.OriginX, l.CellW), core.CellIndex(y-l.OriginY, l.CellH))
	return c, c.X >= 0 && c.X < width && c.Y >= 0 && c.Y < height
}

// CellAt maps a pointer position to a coordinate of the current grid.
func (s *Session) CellAt(x, y int) (life.Coord, bool) {
	return s.cfg.Layout.CellAt(x, y, s.grid.Width(), s.grid.Height())
}
