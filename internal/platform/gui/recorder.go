package gui

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-life/internal/session"
)

// runLog records runs for the window. The final run is recorded at most
// once, whether the user quits with a key or closes the window.
type runLog struct {
	rec      session.RunRecorder
	logger   *log.Logger
	finished bool
	err      error
}

// record saves a run that ended while the window was open.
func (l *runLog) record(sum session.RunSummary) {
	if _, err := session.Save(l.rec, sum); err != nil {
		l.err = err
		if l.logger != nil {
			l.logger.Warn("could not save run", "error", err)
		}
	}
}

// finish saves the run in progress when the window closes. Later calls
// are no-ops.
func (l *runLog) finish(sum session.RunSummary) {
	if l.finished {
		return
	}
	l.finished = true
	l.record(sum)
}
