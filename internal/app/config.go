package app

import (
	"errors"
	"flag"
	"fmt"
	"math"
	"os"
	"strconv"
	"time"

	"github.com/pelletier/go-toml/v2"

	"quadlife/internal/core"
	"quadlife/internal/sims/life"
)

// Config represents the command-line and file parameters for the application.
type Config struct {
	Pattern        string  `toml:"pattern"`
	Cells          string  `toml:"cells"`
	Seed           int64   `toml:"seed"`
	Density        float64 `toml:"density"`
	CanvasWidth    int     `toml:"canvas_width"`
	CanvasHeight   int     `toml:"canvas_height"`
	CellSize       int     `toml:"cell_size"`
	IntervalMS     int     `toml:"interval_ms"`
	MaxGenerations int     `toml:"max_generations"`
	ReportEvery    int     `toml:"report_every"`
	Debug          bool    `toml:"debug_coordinates"`

	ConfigPath string `toml:"-"`
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Pattern:        "midline",
		Seed:           42,
		Density:        0.5,
		CanvasWidth:    1440,
		CanvasHeight:   960,
		CellSize:       2,
		IntervalMS:     int(core.DefaultInterval / time.Millisecond),
		MaxGenerations: life.DefaultMaxGenerations,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.ConfigPath, "config", c.ConfigPath, "TOML file with default settings")
	fs.StringVar(&c.Pattern, "pattern", c.Pattern, "initial seeding pattern")
	fs.StringVar(&c.Cells, "cells", c.Cells, "coordinates for the cells pattern, e.g. 1,2;3,4")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for the random pattern")
	fs.Float64Var(&c.Density, "density", c.Density, "live-cell probability for the random pattern")
	fs.IntVar(&c.CanvasWidth, "width", c.CanvasWidth, "canvas width in pixels")
	fs.IntVar(&c.CanvasHeight, "height", c.CanvasHeight, "canvas height in pixels")
	fs.IntVar(&c.CellSize, "cell", c.CellSize, "cell size in pixels")
	fs.IntVar(&c.IntervalMS, "interval", c.IntervalMS, "milliseconds between generations")
	fs.IntVar(&c.MaxGenerations, "max", c.MaxGenerations, "stop after this many generations (0 = never)")
	fs.IntVar(&c.ReportEvery, "report", c.ReportEvery, "log timing averages every N generations")
	fs.BoolVar(&c.Debug, "debug", c.Debug, "show cell coordinates")
}

// Parse binds c to fs and parses args. When -config names a file, its values
// are applied first and explicitly passed flags then override them.
func (c *Config) Parse(fs *flag.FlagSet, args []string) error {
	c.Bind(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if c.ConfigPath != "" {
		if err := c.LoadFile(c.ConfigPath); err != nil {
			return err
		}
		if err := fs.Parse(args); err != nil {
			return err
		}
	}
	return c.Validate()
}

// LoadFile decodes a TOML file over the current values.
func (c *Config) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}
	if err := toml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("decode config %s: %w", path, err)
	}
	return nil
}

// Validate reports configuration values the simulation cannot run with.
func (c *Config) Validate() error {
	var errs []error
	if c.CellSize <= 0 {
		errs = append(errs, fmt.Errorf("cell size must be positive, got %d", c.CellSize))
	}
	if c.CanvasWidth <= 0 || c.CanvasHeight <= 0 {
		errs = append(errs, fmt.Errorf("canvas must be positive, got %dx%d", c.CanvasWidth, c.CanvasHeight))
	}
	if c.IntervalMS < 0 {
		errs = append(errs, fmt.Errorf("interval must not be negative, got %d", c.IntervalMS))
	}
	if c.MaxGenerations < 0 {
		errs = append(errs, fmt.Errorf("max generations must not be negative, got %d", c.MaxGenerations))
	}
	if _, err := c.SeedPattern(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// Params flattens the board settings into the key/value form read by
// life.FromMap and the pattern factories.
func (c *Config) Params() map[string]string {
	w, h := c.GridDims()
	return map[string]string{
		"w":               strconv.Itoa(w),
		"h":               strconv.Itoa(h),
		"max_generations": strconv.Itoa(c.MaxGenerations),
		"seed":            strconv.FormatInt(c.Seed, 10),
		"density":         strconv.FormatFloat(c.Density, 'f', -1, 64),
		"cells":           c.Cells,
	}
}

// SeedPattern resolves the configured seeding pattern.
func (c *Config) SeedPattern() (core.Pattern, error) {
	return life.Lookup(c.Pattern, c.Params())
}

// EngineConfig returns the engine settings for the configured board.
func (c *Config) EngineConfig() life.Config {
	return life.FromMap(c.Params())
}

// Interval returns the configured delay between generations.
func (c *Config) Interval() time.Duration {
	return time.Duration(c.IntervalMS) * time.Millisecond
}

// GridDims returns the board dimensions for the configured canvas and cell
// size.
func (c *Config) GridDims() (int, int) {
	return GridDims(c.CanvasWidth, c.CanvasHeight, c.CellSize)
}

// GridDims divides a canvas into cells, rounding to the nearest whole count.
func GridDims(canvasW, canvasH, cell int) (int, int) {
	if cell <= 0 {
		cell = 1
	}
	cols := int(math.Round(float64(canvasW) / float64(cell)))
	rows := int(math.Round(float64(canvasH) / float64(cell)))
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}
	return cols, rows
}
