// Package stats keeps rolling timings for the step and geometry phases of a
// tick and reports their averages periodically.
package stats

import (
	"log/slog"
	"time"
)

// DefaultEvery is the number of generations between reports.
const DefaultEvery = 100

// Summary holds averaged phase durations over one reporting window.
type Summary struct {
	Generation int
	Samples    int
	AvgStep    time.Duration
	AvgBuild   time.Duration
	LiveCells  int
	Vertices   int
}

// Reporter accumulates per-tick timings and emits a Summary every N ticks.
type Reporter struct {
	every  int
	logger *slog.Logger

	steps  []time.Duration
	builds []time.Duration
	last   Summary

	onFlush func(Summary)
}

// NewReporter returns a Reporter that logs through logger every n ticks.
// A nil logger uses slog.Default.
func NewReporter(logger *slog.Logger, every int) *Reporter {
	if every <= 0 {
		every = DefaultEvery
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Reporter{every: every, logger: logger}
}

// OnFlush registers a callback invoked with each Summary after it is logged.
func (r *Reporter) OnFlush(fn func(Summary)) { r.onFlush = fn }

// Record adds the timings of one tick. generation is the count of completed
// generations after the tick.
func (r *Reporter) Record(generation int, step, build time.Duration, live, vertices int) {
	r.steps = append(r.steps, step)
	r.builds = append(r.builds, build)
	if generation%r.every != 0 {
		return
	}
	s := Summary{
		Generation: generation,
		Samples:    len(r.steps),
		AvgStep:    average(r.steps),
		AvgBuild:   average(r.builds),
		LiveCells:  live,
		Vertices:   vertices,
	}
	r.steps = r.steps[:0]
	r.builds = r.builds[:0]
	r.last = s
	r.logger.Info("generation timings",
		slog.Int("generation", s.Generation),
		slog.Int("samples", s.Samples),
		slog.Duration("step_avg", s.AvgStep),
		slog.Duration("build_avg", s.AvgBuild),
		slog.Int("live", s.LiveCells),
		slog.Int("vertices", s.Vertices),
	)
	if r.onFlush != nil {
		r.onFlush(s)
	}
}

// Last returns the most recent Summary.
func (r *Reporter) Last() Summary { return r.last }

// Reset drops pending samples, e.g. after the board is cleared.
func (r *Reporter) Reset() {
	r.steps = r.steps[:0]
	r.builds = r.builds[:0]
	r.last = Summary{}
}

func average(ds []time.Duration) time.Duration {
	if len(ds) == 0 {
		return 0
	}
	var total time.Duration
	for _, d := range ds {
		total += d
	}
	return total / time.Duration(len(ds))
}
