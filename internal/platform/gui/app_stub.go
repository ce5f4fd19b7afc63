//go:build !ebiten

package gui

// Run reports that the window driver is not compiled in.
func Run(Options) error {
	return ErrUnavailable
}
