package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-life/internal/config"
	"github.com/vovakirdan/tui-life/internal/core"
)

// Theme maps core.Color roles to lipgloss styles.
type Theme map[core.Color]lipgloss.Style

// NewTheme builds a theme from configured hex colors. The board is drawn
// on the dead-cell color, so alive cells and grid dots share its background.
func NewTheme(c config.ColorConfig) Theme {
	board := lipgloss.Color(c.Dead)
	return Theme{
		core.ColorDefault:  lipgloss.NewStyle(),
		core.ColorAlive:    lipgloss.NewStyle().Foreground(lipgloss.Color(c.Alive)).Background(board),
		core.ColorDead:     lipgloss.NewStyle().Background(board),
		core.ColorGridLine: lipgloss.NewStyle().Foreground(lipgloss.Color(c.Grid)).Background(board),
		core.ColorHUD:      lipgloss.NewStyle().Foreground(lipgloss.Color(c.HUD)),
		core.ColorPaused:   lipgloss.NewStyle().Foreground(lipgloss.Color(c.Paused)).Bold(true),
	}
}

// Style returns the style for a role, falling back to the default style.
func (t Theme) Style(c core.Color) lipgloss.Style {
	if style, ok := t[c]; ok {
		return style
	}
	return t[core.ColorDefault]
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen, theme Theme) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same color for efficiency
		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(theme.Style(startColor).Render(run.String()))
		}
	}
	return sb.String()
}
