package core

import "time"

// DefaultInterval is the delay between generations when none is configured.
const DefaultInterval = 20 * time.Millisecond

// FixedStep paces generation updates independently of the frame rate. A tick
// fires once more than one interval has elapsed since the previous tick.
type FixedStep struct {
	step time.Duration
	last time.Time
}

// NewFixedStep constructs a FixedStep controller with the given interval.
func NewFixedStep(interval time.Duration) *FixedStep {
	fs := &FixedStep{}
	fs.SetInterval(interval)
	return fs
}

// SetInterval changes the tick interval. It is safe to call from the main loop.
func (f *FixedStep) SetInterval(interval time.Duration) {
	if interval < 0 {
		interval = DefaultInterval
	}
	f.step = interval
}

// Interval reports the current tick interval.
func (f *FixedStep) Interval() time.Duration { return f.step }

// Reset forgets the previous tick so the next call starts a fresh interval.
func (f *FixedStep) Reset() { f.last = time.Time{} }

// ShouldStepAt reports whether the simulation should advance by one tick at
// clock reading now.
func (f *FixedStep) ShouldStepAt(now time.Time) bool {
	if f.last.IsZero() {
		f.last = now
	}
	if now.Sub(f.last) > f.step || f.step == 0 {
		f.last = now
		return true
	}
	return false
}
