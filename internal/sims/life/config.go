package life

import "strconv"

// DefaultMaxGenerations matches the point at which the simulation halts when
// no limit is configured.
const DefaultMaxGenerations = 1000

// Config holds parameters for the Life engine.
type Config struct {
	Width          int
	Height         int
	MaxGenerations int
}

// DefaultConfig returns the default configuration: a 1440x960 canvas divided
// into 2px cells.
func DefaultConfig() Config {
	return Config{Width: 720, Height: 480, MaxGenerations: DefaultMaxGenerations}
}

// FromMap populates a Config from a string map.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["max_generations"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.MaxGenerations = parsed
		}
	}
	return c
}
