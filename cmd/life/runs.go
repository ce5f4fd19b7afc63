package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-life/internal/platform/tui"
	"github.com/vovakirdan/tui-life/internal/registry"
	"github.com/vovakirdan/tui-life/internal/storage"
)

var (
	flagRunsLimit       int
	flagRunsInteractive bool
	flagRunsClear       bool
)

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "Show run history",
	Long: `Display the longest recorded runs. A run is recorded when a grid that
advanced at least one generation is replaced or the session quits.

Examples:
  life runs
  life runs --limit 25
  life runs --interactive
  life runs --clear`,
	Args: cobra.NoArgs,
	Run:  runRuns,
}

func init() {
	runsCmd.Flags().IntVar(&flagRunsLimit, "limit", 10, "Number of runs to show")
	runsCmd.Flags().BoolVarP(&flagRunsInteractive, "interactive", "i", false, "Browse history in a table view")
	runsCmd.Flags().BoolVar(&flagRunsClear, "clear", false, "Delete all recorded runs")
}

func runRuns(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fatal("opening runs database: %v", err)
	}
	defer store.Close()

	if flagRunsClear {
		n, err := clearRuns(store)
		if err != nil {
			store.Close()
			fatal("%v", err)
		}
		fmt.Printf("Deleted %d runs.\n", n)
		return
	}

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	if flagRunsInteractive {
		if err := tui.RunRuns(store, width, height); err != nil {
			store.Close()
			fatal("%v", err)
		}
		return
	}

	if err := printRuns(os.Stdout, store, flagRunsLimit, width); err != nil {
		store.Close()
		fatal("%v", err)
	}
}

// clearRuns deletes the history and reports how many runs it held.
func clearRuns(store *storage.Store) (int, error) {
	n, err := store.RunCount()
	if err != nil {
		return 0, err
	}
	if err := store.ClearRuns(); err != nil {
		return 0, err
	}
	return n, nil
}

// printRuns writes the longest runs and the best run per seed strategy.
func printRuns(w io.Writer, store *storage.Store, limit, width int) error {
	runs, err := store.TopRuns(limit)
	if err != nil {
		return fmt.Errorf("retrieving runs: %w", err)
	}

	fmt.Fprintln(w, "Longest Runs")
	fmt.Fprintln(w)

	if len(runs) == 0 {
		fmt.Fprintln(w, "No runs recorded yet.")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Play 'life play', step a few generations, then press R, B or Q to record one.")
		return nil
	}

	fmt.Fprintln(w, tui.RunsTable(runs, width))
	fmt.Fprintln(w)

	for _, s := range registry.List() {
		longest, err := store.LongestRun(s.ID)
		if err != nil {
			return err
		}
		if longest > 0 {
			fmt.Fprintf(w, "Best %s: %d generations\n", s.ID, longest)
		}
	}

	if total, err := store.RunCount(); err == nil {
		fmt.Fprintf(w, "%d runs recorded\n", total)
	}
	return nil
}
