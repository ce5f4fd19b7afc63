package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-life/internal/session"
	"github.com/vovakirdan/tui-life/internal/storage"
)

var (
	runSeeding     seedingFlags
	flagRunWidth   int
	flagRunHeight  int
	flagRunGens    int
	flagRunEvery   int
	flagRunPrint   bool
	flagRunSave    bool
	flagRunTimeout time.Duration
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Step a grid headless",
	Long: `Seed a grid and step it a fixed number of generations without a UI.
Statistics are logged; --print writes the final grid to stdout using
'#' for live and '.' for dead cells.

Examples:
  life run --width 64 --height 32 --generations 500
  life run --seed 42 --preset dense --generations 100 --print
  life run --generations 10000 --log-every 1000 --save`,
	Args: cobra.NoArgs,
	Run:  runRun,
}

func init() {
	runSeeding.bind(runCmd.Flags())
	runCmd.Flags().IntVar(&flagRunWidth, "width", 0, "Grid columns (default: from config window)")
	runCmd.Flags().IntVar(&flagRunHeight, "height", 0, "Grid rows (default: from config window)")
	runCmd.Flags().IntVar(&flagRunGens, "generations", 100, "Generations to compute")
	runCmd.Flags().IntVar(&flagRunEvery, "log-every", 0, "Log statistics every N generations (0 = only at the end)")
	runCmd.Flags().BoolVar(&flagRunPrint, "print", false, "Print the final grid")
	runCmd.Flags().BoolVar(&flagRunSave, "save", false, "Record the run in the history database")
	runCmd.Flags().DurationVar(&flagRunTimeout, "timeout", 0, "Stop after this long (0 = no limit)")
}

func runRun(cmd *cobra.Command, args []string) {
	// Headless runs default to a random start; a blank grid never changes.
	if runSeeding.start == "" {
		runSeeding.start = "random"
	}
	lc, err := loadConfig(runSeeding)
	if err != nil {
		fatal("%v", err)
	}

	w, h := lc.Window.GridSize()
	if flagRunWidth > 0 {
		w = flagRunWidth
	}
	if flagRunHeight > 0 {
		h = flagRunHeight
	}
	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	sess, err := session.New(session.Config{
		Width:   w,
		Height:  h,
		Density: lc.Seeding.Density,
		Seed:    seed,
		Start:   lc.Seeding.Start,
	})
	if err != nil {
		fatal("%v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if flagRunTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, flagRunTimeout)
		defer cancel()
	}

	logger := newLogger("life-run")
	logger.Info("starting run",
		"size", fmt.Sprintf("%dx%d", w, h),
		"start", sess.Strategy(),
		"density", lc.Seeding.Density,
		"seed", seed,
		"population", sess.Stats().Population,
	)

	began := time.Now()
	if err := simulate(ctx, sess, flagRunGens, flagRunEvery, logger); err != nil {
		logger.Warn("run stopped early", "reason", err)
	}

	st := sess.Stats()
	logger.Info("run finished",
		"generations", st.Generation,
		"population", st.Population,
		"peak", st.PeakPopulation,
		"elapsed", time.Since(began).Round(time.Millisecond),
	)

	if flagRunSave {
		saveHeadless(sess.Summary(), logger)
	}
	if flagRunPrint {
		fmt.Println(sess.Grid().String())
	}
}

// simulate advances sess up to gens generations, logging every `every`
// generations when every > 0. It returns ctx.Err() if cancelled.
func simulate(ctx context.Context, sess *session.Session, gens, every int, logger *log.Logger) error {
	for i := range gens {
		if err := ctx.Err(); err != nil {
			return err
		}
		sess.Advance()
		if every > 0 && (i+1)%every == 0 {
			st := sess.Stats()
			logger.Debug("progress", "generation", st.Generation, "population", st.Population)
			if st.Population == 0 {
				logger.Info("population died out", "generation", st.Generation)
			}
		}
	}
	return nil
}

func saveHeadless(sum session.RunSummary, logger *log.Logger) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open runs database", "error", err)
		return
	}
	defer store.Close()

	id, err := session.Save(store, sum)
	if err != nil {
		logger.Warn("could not save run", "error", err)
		return
	}
	if id != 0 {
		logger.Info("run saved", "id", id)
	}
}
