package app

import (
	"log/slog"
	"strconv"
	"time"

	"quadlife/internal/core"
	"quadlife/internal/render"
	"quadlife/internal/sims/life"
	"quadlife/internal/stats"
)

const (
	paramInterval = "interval_ms"
	paramCellSize = "cell_size"
)

// Runner ties the engine to geometry generation: every tick steps the board,
// rebuilds the vertex list and records timings.
type Runner struct {
	cfg      Config
	engine   *life.Engine
	pattern  core.Pattern
	pace     *core.FixedStep
	reporter *stats.Reporter
	logger   *slog.Logger

	vertices []render.Vertex
	running  bool
}

// NewRunner builds an engine sized for cfg and seeds it.
func NewRunner(cfg *Config, logger *slog.Logger) (*Runner, error) {
	if logger == nil {
		logger = slog.Default()
	}
	pattern, err := cfg.SeedPattern()
	if err != nil {
		return nil, err
	}
	ec := cfg.EngineConfig()
	w, h := ec.Width, ec.Height
	r := &Runner{
		cfg:      *cfg,
		engine:   life.New(ec),
		pattern:  pattern,
		pace:     core.NewFixedStep(cfg.Interval()),
		reporter: stats.NewReporter(logger, cfg.ReportEvery),
		logger:   logger,
	}
	r.Reseed()
	logger.Info("board ready",
		slog.String("pattern", cfg.Pattern),
		slog.Int("cols", w),
		slog.Int("rows", h),
		slog.Int("live", r.engine.LiveCount()),
	)
	return r, nil
}

// Engine exposes the underlying simulation.
func (r *Runner) Engine() *life.Engine { return r.engine }

// Reporter exposes the timing reporter.
func (r *Runner) Reporter() *stats.Reporter { return r.reporter }

// CellSize returns the current cell size in pixels.
func (r *Runner) CellSize() int { return r.cfg.CellSize }

// Canvas returns the canvas size in pixels.
func (r *Runner) Canvas() (int, int) { return r.cfg.CanvasWidth, r.cfg.CanvasHeight }

// Vertices returns the geometry of the current generation. The slice is
// replaced, never mutated, on every rebuild.
func (r *Runner) Vertices() []render.Vertex { return r.vertices }

// Running reports whether the simulation advances on its own.
func (r *Runner) Running() bool { return r.running && !r.engine.Finished() }

// Start resumes automatic stepping.
func (r *Runner) Start() {
	r.running = true
	r.pace.Reset()
}

// Stop pauses automatic stepping.
func (r *Runner) Stop() { r.running = false }

// Toggle switches between running and paused.
func (r *Runner) Toggle() {
	if r.running {
		r.Stop()
		return
	}
	r.Start()
}

// Update advances one generation when running and the interval has elapsed.
// It reports whether a generation was computed.
func (r *Runner) Update(now time.Time) bool {
	if !r.Running() {
		return false
	}
	if !r.pace.ShouldStepAt(now) {
		return false
	}
	if !r.Tick() {
		r.running = false
		return false
	}
	return true
}

// Tick computes one generation immediately, regardless of pacing.
func (r *Runner) Tick() bool {
	start := time.Now()
	if !r.engine.Step() {
		return false
	}
	stepped := time.Since(start)

	start = time.Now()
	r.Rebuild()
	built := time.Since(start)

	r.reporter.Record(r.engine.Generation(), stepped, built, r.engine.LiveCount(), len(r.vertices))
	return true
}

// Rebuild regenerates the vertex list from the current generation.
func (r *Runner) Rebuild() {
	r.vertices = render.Build(r.engine.Grid(), r.cfg.CellSize, r.cfg.CellSize)
}

// Reseed clears the board and applies the configured pattern.
func (r *Runner) Reseed() {
	r.engine.Seed(r.pattern)
	r.reporter.Reset()
	r.Rebuild()
}

// Clear stops the simulation and kills every cell.
func (r *Runner) Clear() {
	r.Stop()
	r.engine.Clear()
	r.reporter.Reset()
	r.Rebuild()
}

// CellAt converts a canvas pixel to grid coordinates.
func (r *Runner) CellAt(px, py int) (int, int) {
	return px / r.cfg.CellSize, py / r.cfg.CellSize
}

// ToggleAt flips the cell under canvas pixel (px, py). When row is set the
// whole row is toggled instead. Pixels outside the board are ignored.
func (r *Runner) ToggleAt(px, py int, row bool) bool {
	if px < 0 || py < 0 {
		return false
	}
	x, y := r.CellAt(px, py)
	size := r.engine.Size()
	if x >= size.W || y >= size.H {
		return false
	}
	var ok bool
	if row {
		ok = r.engine.FillRow(y)
	} else {
		ok = r.engine.Toggle(x, y)
	}
	if ok {
		r.Rebuild()
	}
	return ok
}

// SetCellSize resizes the board to fit the canvas at the new cell size. The
// board is cleared.
func (r *Runner) SetCellSize(size int) {
	if size <= 0 || size == r.cfg.CellSize {
		return
	}
	r.cfg.CellSize = size
	r.Stop()
	w, h := r.cfg.GridDims()
	r.engine.Resize(w, h)
	r.reporter.Reset()
	r.Rebuild()
	r.logger.Info("board resized", slog.Int("cell", size), slog.Int("cols", w), slog.Int("rows", h))
}

// SetInterval changes the delay between generations.
func (r *Runner) SetInterval(d time.Duration) {
	r.cfg.IntervalMS = int(d / time.Millisecond)
	r.pace.SetInterval(d)
}

// Parameters implements core.ParameterProvider.
func (r *Runner) Parameters() []core.Parameter {
	size := r.engine.Size()
	return []core.Parameter{
		{Key: "generation", Label: "Generation", Type: core.ParamTypeInt, Value: strconv.Itoa(r.engine.Generation())},
		{Key: "live", Label: "Live cells", Type: core.ParamTypeInt, Value: strconv.Itoa(r.engine.LiveCount())},
		{Key: "grid", Label: "Grid", Type: core.ParamTypeText, Value: strconv.Itoa(size.W) + "x" + strconv.Itoa(size.H)},
		{Key: "vertices", Label: "Vertices", Type: core.ParamTypeInt, Value: strconv.Itoa(len(r.vertices))},
		{Key: "running", Label: "Running", Type: core.ParamTypeBool, Value: strconv.FormatBool(r.Running())},
		{Key: paramInterval, Label: "Interval ms", Type: core.ParamTypeInt, Value: strconv.Itoa(r.cfg.IntervalMS)},
		{Key: paramCellSize, Label: "Cell size", Type: core.ParamTypeInt, Value: strconv.Itoa(r.cfg.CellSize)},
	}
}

// ParameterControls implements core.ParameterProvider.
func (r *Runner) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: paramInterval, Label: "Interval ms", Step: 10, Min: 0, Max: 1000, HasMin: true, HasMax: true},
		{Key: paramCellSize, Label: "Cell size", Step: 1, Min: 2, Max: 60, HasMin: true, HasMax: true},
	}
}

// SetIntParameter implements core.IntParameterSetter.
func (r *Runner) SetIntParameter(key string, value int) bool {
	for _, ctrl := range r.ParameterControls() {
		if ctrl.Key != key {
			continue
		}
		value = ctrl.Clamp(value)
		switch key {
		case paramInterval:
			r.SetInterval(time.Duration(value) * time.Millisecond)
		case paramCellSize:
			r.SetCellSize(value)
		}
		return true
	}
	return false
}
