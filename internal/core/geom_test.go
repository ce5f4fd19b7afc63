package core

import "testing"

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"inside", 15, 15, true},
		{"top-left corner", 10, 10, true},
		{"bottom-right edge (exclusive)", 30, 25, false},
		{"outside left", 5, 15, false},
		{"outside right", 35, 15, false},
		{"outside top", 15, 5, false},
		{"outside bottom", 15, 30, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := r.Contains(tc.x, tc.y)
			if result != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, result, tc.expected)
			}
		})
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %d, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %d, expected 25", r.Bottom())
	}
}

func TestCells(t *testing.T) {
	tests := []struct {
		extent, size, expected int
	}{
		{700, 10, 70},
		{505, 10, 50}, // partial cell dropped
		{9, 10, 0},
		{80, 2, 40},
		{100, 0, 0},
		{-20, 10, 0},
	}

	for _, tc := range tests {
		if got := Cells(tc.extent, tc.size); got != tc.expected {
			t.Errorf("Cells(%d, %d) = %d, expected %d", tc.extent, tc.size, got, tc.expected)
		}
	}
}

func TestCellIndex(t *testing.T) {
	tests := []struct {
		pos, size, expected int
	}{
		{0, 10, 0},
		{9, 10, 0},
		{10, 10, 1},
		{35, 2, 17},
		{-1, 2, -1},
		{-2, 2, -1},
		{-3, 2, -2},
		{5, 0, -1},
	}

	for _, tc := range tests {
		if got := CellIndex(tc.pos, tc.size); got != tc.expected {
			t.Errorf("CellIndex(%d, %d) = %d, expected %d", tc.pos, tc.size, got, tc.expected)
		}
	}
}
