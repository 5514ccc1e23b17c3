// Package progress reports how far long-running evaluations have come.
package progress

import (
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/xtding233/shellgame/internal/shell"
)

// LogReporter logs a line per tracker every time another Step fraction of
// the work completes.
type LogReporter struct {
	Logger *zap.Logger
	Step   float64 // fraction between log lines, e.g. 0.1
}

// NewLogReporter creates a reporter that logs every 10%.
func NewLogReporter(logger *zap.Logger) *LogReporter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LogReporter{Logger: logger, Step: 0.1}
}

// Track implements shell.Reporter.
func (r *LogReporter) Track(label string, total int) shell.Tracker {
	step := r.Step
	if step <= 0 || step > 1 {
		step = 0.1
	}
	every := int(float64(total) * step)
	if every < 1 {
		every = 1
	}
	return &logTracker{
		log:   r.Logger.With(zap.String("job", label), zap.Int("total", total)),
		total: total,
		every: every,
		next:  every,
		start: time.Now(),
	}
}

type logTracker struct {
	mu    sync.Mutex
	log   *zap.Logger
	total int
	every int
	next  int
	done  int
	start time.Time
}

func (t *logTracker) Advance(n int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.done += n
	// only the last crossed threshold is logged for large jumps
	if t.done >= t.next && t.done < t.total {
		t.log.Debug("progress", zap.Int("done", t.done), zap.Float64("pct", 100*float64(t.done)/float64(t.total)))
		for t.next <= t.done {
			t.next += t.every
		}
	}
}

func (t *logTracker) Done() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.log.Info("job finished", zap.Int("done", t.done), zap.Duration("elapsed", time.Since(t.start)))
}

// Nop discards everything.
type Nop struct{}

func (Nop) Track(string, int) shell.Tracker { return nopTracker{} }

type nopTracker struct{}

func (nopTracker) Advance(int) {}
func (nopTracker) Done()       {}
