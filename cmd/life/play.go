package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-life/internal/core"
	"github.com/vovakirdan/tui-life/internal/platform/tui"
	"github.com/vovakirdan/tui-life/internal/session"
	"github.com/vovakirdan/tui-life/internal/storage"
)

var playSeeding seedingFlags

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start an interactive session sized to the terminal.

Controls:
  P/Space     - Pause or resume
  F/Right     - Step one generation
  R           - Random grid
  B           - Blank grid
  G           - Toggle grid dots
  Left mouse  - Paint live cells (click or drag)
  Right mouse - Paint dead cells
  ?           - More help
  Q/Ctrl+C    - Quit

Examples:
  life play
  life play --start random
  life play --start random --preset sparse
  life play --config ./my-life.yaml --fps 30`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playSeeding.bind(playCmd.Flags())
}

func runPlay(cmd *cobra.Command, args []string) {
	lc, err := loadConfig(playSeeding)
	if err != nil {
		fatal("%v", err)
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	opts := tui.Options{
		Session: session.Config{
			Density:     lc.Seeding.Density,
			Start:       lc.Seeding.Start,
			StartPaused: lc.Simulation.StartPaused,
			ShowGrid:    lc.Display.ShowGrid,
		},
		Runtime: core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: lc.Simulation.TickRate,
			Seed:     flagSeed,
		},
		Colors: lc.Display.Colors,
	}

	logger := newLogger("life")
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open runs database", "error", err)
		// Continue without storage
	} else {
		opts.Recorder = store
	}

	final, runErr := tui.Run(opts)

	if store != nil {
		store.Close()
	}

	if saveErr := final.SaveErr(); saveErr != nil {
		logger.Warn("some runs were not saved", "error", saveErr)
	}
	if runErr != nil {
		fatal("%v", runErr)
	}
	logger.Debug("session ended", "runs_saved", final.Saved())
}
