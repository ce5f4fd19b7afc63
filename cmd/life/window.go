package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-life/internal/platform/gui"
	"github.com/vovakirdan/tui-life/internal/storage"
)

var windowSeeding seedingFlags

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Open a desktop window sized from the config (default 700x500 pixels
with 10-pixel cells, a 70x50 grid). Requires a build with -tags ebiten.

Controls match 'life play': P pause, F step, R random, B blank,
G grid lines, left/right mouse paint live/dead, Q or Esc quits.

Examples:
  go run -tags ebiten ./cmd/life window
  life window --start random --preset dense`,
	Args: cobra.NoArgs,
	Run:  runWindow,
}

func init() {
	windowSeeding.bind(windowCmd.Flags())
}

func runWindow(cmd *cobra.Command, args []string) {
	lc, err := loadConfig(windowSeeding)
	if err != nil {
		fatal("%v", err)
	}

	logger := newLogger("life")
	opts := gui.Options{
		Life:   lc,
		Seed:   flagSeed,
		Logger: logger,
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open runs database", "error", err)
	} else {
		defer store.Close()
		opts.Recorder = store
	}

	if err := gui.Run(opts); err != nil {
		if store != nil {
			store.Close()
		}
		fatal("%v", err)
	}
}
