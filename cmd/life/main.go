//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"
	"log/slog"
	"os"

	"quadlife/internal/app"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	if err := cfg.Parse(flag.CommandLine, os.Args[1:]); err != nil {
		log.Fatal(err)
	}

	runner, err := app.NewRunner(cfg, slog.Default())
	if err != nil {
		log.Fatal(err)
	}

	game := app.New(runner, cfg.Debug)
	w, h := game.Layout(0, 0)

	ebiten.SetWindowTitle("quadlife: " + cfg.Pattern)
	ebiten.SetWindowSize(w, h)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
