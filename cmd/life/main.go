// life runs Conway's Game of Life in the terminal, in a window, headless,
// or as an SSH server.
//
// Usage:
//
//	life play                - Play in the terminal, sized to fit
//	life window              - Play in a desktop window (build with -tags ebiten)
//	life run                 - Step a grid headless and report statistics
//	life serve               - Start SSH server for remote play
//	life runs                - Show recorded run history
//	life list                - List seed strategies
//
// Global flags:
//
//	--fps <rate>         - Generations per second (default: from config, 10)
//	--seed <value>       - RNG seed for reproducible random grids
//	--db <path>          - Run history database (default: ~/.life/runs.db)
//	--config <path>      - Config file (default search: ~/.life/configs, ./configs)
//	--log-level <level>  - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	// Import seed strategies to register them
	_ "github.com/vovakirdan/tui-life/internal/seeds"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "life",
	Short: "Conway's Game of Life for the terminal",
	Long: `life runs Conway's Game of Life (B3/S23) on a bounded grid.
Cells beyond the edges count as dead.

Available commands:
  play     - Interactive terminal session
  window   - Interactive desktop window
  run      - Headless simulation
  serve    - Start SSH server for remote play
  runs     - View run history
  list     - Show seed strategies

Examples:
  life play
  life play --start random --preset dense
  life run --width 64 --height 32 --generations 500 --print
  life serve --ssh :2222
  life runs --interactive`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Generations per second (0 = use config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.life/runs.db", "Path to run history database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(runsCmd)
}

// newLogger returns a stderr logger at the level from --log-level.
func newLogger(prefix string) *log.Logger {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		level = log.InfoLevel
	}
	return log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	})
}

// fatal prints an error and exits.
func fatal(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
