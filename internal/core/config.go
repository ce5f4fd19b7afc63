package core

// RuntimeConfig contains configuration passed to a driver at startup.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters (or pixels for the window driver)
	ScreenH  int   // Screen height in characters (or pixels)
	TickRate int   // Generations per second while running
	Seed     int64 // RNG seed for reproducible random grids
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 10,
		Seed:     0, // 0 means use current time in platform layer
	}
}
