package life

import (
	"quadlife/internal/core"
)

// Engine owns the current generation and a scratch grid, swapping them after
// every tick.
type Engine struct {
	cur *core.Grid
	nxt *core.Grid

	generation     int
	maxGenerations int
}

// New returns an Engine with an all-dead board sized by cfg.
func New(cfg Config) *Engine {
	e := &Engine{maxGenerations: cfg.MaxGenerations}
	e.Resize(cfg.Width, cfg.Height)
	return e
}

// Size returns the grid dimensions.
func (e *Engine) Size() core.Size { return e.cur.Size() }

// Grid returns the current generation. Callers must not keep it across a
// Step because the engine reuses the buffers.
func (e *Engine) Grid() *core.Grid { return e.cur }

// Cells exposes the current grid values.
func (e *Engine) Cells() []uint8 { return e.cur.Cells() }

// Generation reports the number of completed ticks.
func (e *Engine) Generation() int { return e.generation }

// MaxGenerations reports the generation limit, 0 meaning unlimited.
func (e *Engine) MaxGenerations() int { return e.maxGenerations }

// Finished reports whether the generation limit has been reached.
func (e *Engine) Finished() bool {
	return e.maxGenerations > 0 && e.generation >= e.maxGenerations
}

// LiveCount returns the number of live cells in the current generation.
func (e *Engine) LiveCount() int { return e.cur.LiveCount() }

// Step advances the simulation by one generation. It returns false without
// changing anything once the generation limit is reached.
func (e *Engine) Step() bool {
	if e.Finished() {
		return false
	}
	StepInto(e.nxt, e.cur)
	e.cur, e.nxt = e.nxt, e.cur
	e.generation++
	return true
}

// Toggle flips the cell at (x, y). Edits are only accepted before the first
// generation has been computed.
func (e *Engine) Toggle(x, y int) bool {
	if e.generation != 0 {
		return false
	}
	e.cur.Set(x, y, e.cur.At(x, y)^core.Alive)
	return true
}

// FillRow toggles every cell in row y, subject to the same rule as Toggle.
func (e *Engine) FillRow(y int) bool {
	if e.generation != 0 {
		return false
	}
	for x := 0; x < e.cur.Width(); x++ {
		e.cur.Set(x, y, e.cur.At(x, y)^core.Alive)
	}
	return true
}

// Clear kills every cell and resets the generation counter.
func (e *Engine) Clear() {
	e.cur.Clear()
	e.nxt.Clear()
	e.generation = 0
}

// Seed clears the board and applies p.
func (e *Engine) Seed(p core.Pattern) {
	e.Clear()
	if p != nil {
		p(e.cur)
	}
}

// Resize reallocates both buffers and clears the board.
func (e *Engine) Resize(w, h int) {
	e.cur = core.NewGrid(w, h)
	e.nxt = core.NewGrid(w, h)
	e.generation = 0
}
