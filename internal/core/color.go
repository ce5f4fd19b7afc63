package core

// Color is the semantic role of a screen cell. Drivers map roles to
// concrete terminal or pixel colors from the configured theme.
type Color uint8

// Roles used when drawing a generation.
const (
	ColorDefault Color = iota
	ColorAlive
	ColorDead
	ColorGridLine
	ColorHUD
	ColorPaused
)

// String returns the role name used in theme configuration.
func (c Color) String() string {
	switch c {
	case ColorAlive:
		return "alive"
	case ColorDead:
		return "dead"
	case ColorGridLine:
		return "grid"
	case ColorHUD:
		return "hud"
	case ColorPaused:
		return "paused"
	default:
		return "default"
	}
}
