// Command life-term shows the simulation in a terminal.
package main

import (
	"flag"
	"io"
	"log"
	"log/slog"
	"os"

	"quadlife/internal/app"
	"quadlife/internal/termui"
)

func main() {
	cfg := app.NewConfig()
	// One terminal character per cell.
	cfg.CanvasWidth = 80
	cfg.CanvasHeight = 40
	cfg.CellSize = 1
	cfg.IntervalMS = 100
	cfg.MaxGenerations = 0
	if err := cfg.Parse(flag.CommandLine, os.Args[1:]); err != nil {
		log.Fatal(err)
	}

	// gocui owns the terminal, so runtime logs are discarded.
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	runner, err := app.NewRunner(cfg, logger)
	if err != nil {
		log.Fatal(err)
	}

	t, err := termui.New(runner, 0)
	if err != nil {
		log.Fatal(err)
	}
	if err := t.Run(); err != nil {
		log.Fatal(err)
	}
}
