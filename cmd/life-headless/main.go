// Command life-headless runs the simulation without a window and reports
// per-generation statistics.
package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/integrii/flaggy"

	"quadlife/internal/app"
	"quadlife/internal/render"
)

type options struct {
	every    int
	ascii    bool
	asciiMax int
	noColor  bool
}

func bind(p *flaggy.Parser, cfg *app.Config, o *options) {
	p.String(&cfg.ConfigPath, "c", "config", "TOML file with default settings")
	p.String(&cfg.Pattern, "p", "pattern", "Initial seeding pattern")
	p.String(&cfg.Cells, "", "cells", "Coordinates for the cells pattern, e.g. 1,2;3,4")
	p.Int64(&cfg.Seed, "s", "seed", "Seed for the random pattern")
	p.Float64(&cfg.Density, "d", "density", "Live-cell probability for the random pattern")
	p.Int(&cfg.CanvasWidth, "x", "width", "Canvas width in pixels")
	p.Int(&cfg.CanvasHeight, "y", "height", "Canvas height in pixels")
	p.Int(&cfg.CellSize, "", "cell", "Cell size in pixels")
	p.Int(&cfg.MaxGenerations, "m", "max", "Generations to run")
	p.Int(&cfg.ReportEvery, "r", "report", "Log timing averages every N generations")
	p.Int(&o.every, "e", "every", "Print a status line every N generations")
	p.Bool(&o.ascii, "a", "ascii", "Print the final board")
	p.Int(&o.asciiMax, "", "ascii-max", "Crop the printed board to this many columns and rows")
	p.Bool(&o.noColor, "", "no-color", "Disable coloured output")
}

func parse(args []string) (*app.Config, *options, error) {
	cfg := app.NewConfig()
	o := &options{every: 100, asciiMax: 120}

	newParser := func() *flaggy.Parser {
		p := flaggy.NewParser("life-headless")
		p.Description = "Runs Conway's Game of Life without a window"
		p.ShowHelpOnUnexpected = true
		bind(p, cfg, o)
		return p
	}
	if err := newParser().ParseArgs(args); err != nil {
		return nil, nil, err
	}
	if cfg.ConfigPath != "" {
		if err := cfg.LoadFile(cfg.ConfigPath); err != nil {
			return nil, nil, err
		}
		// Flags given on the command line win over the file.
		if err := newParser().ParseArgs(args); err != nil {
			return nil, nil, err
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}
	if cfg.MaxGenerations == 0 {
		return nil, nil, errors.New("a headless run needs a generation limit (--max)")
	}
	if o.every <= 0 {
		o.every = 100
	}
	return cfg, o, nil
}

func run(cfg *app.Config, o *options, pr *printer, logger *slog.Logger) error {
	runner, err := app.NewRunner(cfg, logger)
	if err != nil {
		return err
	}
	size := runner.Engine().Size()
	pr.config(cfg, size.W, size.H)

	start := time.Now()
	for runner.Tick() {
		gen := runner.Engine().Generation()
		if gen%o.every == 0 {
			vs := runner.Vertices()
			pr.status(gen, runner.Engine().LiveCount(), len(vs), render.DrawCount(vs))
		}
		if runner.Engine().LiveCount() == 0 {
			break
		}
	}
	pr.finished(runner.Engine().Generation(), runner.Engine().LiveCount(), time.Since(start), runner.Reporter().Last())

	if o.ascii {
		pr.board(render.Text(runner.Engine().Grid(), "█", "·", o.asciiMax, o.asciiMax))
	}
	return nil
}

func main() {
	cfg, o, err := parse(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	if err := run(cfg, o, newPrinter(os.Stdout, !o.noColor), logger); err != nil {
		logger.Error(err.Error())
		os.Exit(1)
	}
}
