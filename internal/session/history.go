package session

import (
	"fmt"

	"github.com/vovakirdan/tui-life/internal/storage"
)

// RunRecorder persists finished runs. *storage.Store satisfies it.
type RunRecorder interface {
	SaveRun(r storage.Run) (int64, error)
}

// Record converts a summary to a storage row.
func (r RunSummary) Record() storage.Run {
	return storage.Run{
		Strategy:        r.Strategy,
		Seed:            r.Seed,
		Width:           r.Width,
		Height:          r.Height,
		Density:         r.Density,
		Generations:     r.Generations,
		PeakPopulation:  r.PeakPopulation,
		FinalPopulation: r.FinalPopulation,
		StartedAt:       r.StartedAt,
		EndedAt:         r.EndedAt,
	}
}

// Save records a run that advanced at least one generation. Runs that
// never stepped are skipped and report a zero ID.
func Save(rec RunRecorder, sum RunSummary) (int64, error) {
	if rec == nil || sum.Generations == 0 {
		return 0, nil
	}
	id, err := rec.SaveRun(sum.Record())
	if err != nil {
		return 0, fmt.Errorf("session: save run: %w", err)
	}
	return id, nil
}
