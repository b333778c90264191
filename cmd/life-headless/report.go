package main

import (
	"fmt"
	"io"
	"time"

	"github.com/logrusorgru/aurora"

	"quadlife/internal/app"
	"quadlife/internal/stats"
)

type printer struct {
	w  io.Writer
	au aurora.Aurora
}

func newPrinter(w io.Writer, colors bool) *printer {
	return &printer{w: w, au: aurora.NewAurora(colors)}
}

func (p *printer) prop(name string, format string, values ...interface{}) {
	fmt.Fprintf(p.w, "  %s: %s\n", p.au.Green(name), fmt.Sprintf(format, values...))
}

func (p *printer) config(cfg *app.Config, cols, rows int) {
	fmt.Fprintln(p.w, p.au.Bold("Running configuration:"))
	p.prop("Pattern", "%s", cfg.Pattern)
	p.prop("Grid", "%d x %d (cell %dpx)", cols, rows, cfg.CellSize)
	p.prop("Generations", "%d", cfg.MaxGenerations)
}

func (p *printer) status(gen, live, vertices, drawCount int) {
	fmt.Fprintf(p.w, "  %s %6d  live %7d  vertices %8d  draw %8d\n",
		p.au.Cyan("generation"), gen, live, vertices, drawCount)
}

func (p *printer) finished(gen, live int, total time.Duration, last stats.Summary) {
	fmt.Fprintln(p.w, p.au.Bold("Finished:"))
	p.prop("Last generation", "%d", gen)
	p.prop("Live cells", "%d", live)
	p.prop("Total time", "%v", total.Round(time.Millisecond))
	if last.Samples > 0 {
		p.prop("Step avg", "%v", last.AvgStep)
		p.prop("Build avg", "%v", last.AvgBuild)
	}
	if live == 0 {
		fmt.Fprintln(p.w, p.au.Red("  the board is extinct"))
	}
}

func (p *printer) board(s string) {
	fmt.Fprintln(p.w, s)
}
