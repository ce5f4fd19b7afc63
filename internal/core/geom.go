// Package core provides fundamental types and utilities for the life platform.
// It contains no external dependencies (especially no Bubble Tea) so the
// drivers built on top of it stay testable.
package core

// Rect represents an axis-aligned area on a screen or window.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Cells returns how many whole cells of the given size fit in extent.
// Partial cells at the far edge are dropped; a non-positive size yields 0.
func Cells(extent, cellSize int) int {
	if cellSize <= 0 || extent <= 0 {
		return 0
	}
	return extent / cellSize
}

// CellIndex maps a position to the index of the cell containing it,
// rounding toward negative infinity so positions left of the origin
// never land in cell 0.
func CellIndex(pos, cellSize int) int {
	if cellSize <= 0 {
		return -1
	}
	if pos < 0 {
		return (pos - cellSize + 1) / cellSize
	}
	return pos / cellSize
}
