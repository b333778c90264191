//go:build ebiten

package app

import (
	"image/color"
	"time"

	"quadlife/internal/render"
	"quadlife/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// HUDWidth is the width of the parameter panel beside the board.
const HUDWidth = 220

// Game adapts a Runner to the ebiten.Game interface.
type Game struct {
	runner  *Runner
	painter *render.QuadPainter
	hud     *ui.HUD
	overlay *ui.Overlay

	lines     []render.Vertex
	linesCell int

	cellColor color.Color
	lineColor color.Color
	bgColor   color.Color
}

// New constructs a Game for the provided runner.
func New(r *Runner, debug bool) *Game {
	return &Game{
		runner:    r,
		painter:   render.NewQuadPainter(),
		hud:       ui.NewHUD("Game of Life", r, HUDWidth),
		overlay:   ui.NewOverlay(debug),
		cellColor: color.Black,
		lineColor: color.Gray{Y: 128},
		bgColor:   color.White,
	}
}

// Update handles per-frame input and advances the simulation when due.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.runner.Toggle()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.runner.Stop()
		g.runner.Tick()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.runner.Clear()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.runner.Stop()
		g.runner.Reseed()
	}
	g.overlay.Update()

	canvasW, canvasH := g.runner.Canvas()
	consumed := g.hud.Update(canvasW)
	if !consumed && inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		mx, my := ebiten.CursorPosition()
		if mx >= 0 && mx < canvasW && my >= 0 && my < canvasH {
			g.runner.ToggleAt(mx, my, ebiten.IsKeyPressed(ebiten.KeyShift))
		}
	}

	g.runner.Update(time.Now())
	return nil
}

// Draw renders gridlines, live cells, the debug overlay and the HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.bgColor)

	size := g.runner.Engine().Size()
	cell := g.runner.CellSize()
	if g.lines == nil || g.linesCell != cell {
		g.lines = render.GridLines(size.W, size.H, cell, cell)
		g.linesCell = cell
	}
	g.painter.Draw(screen, g.lines, g.lineColor)
	g.painter.Draw(screen, g.runner.Vertices(), g.cellColor)

	g.overlay.Draw(screen, size.W, size.H, cell)

	canvasW, canvasH := g.runner.Canvas()
	g.hud.Draw(screen, canvasW, canvasH)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	w, h := g.runner.Canvas()
	return w + g.hud.Width(), h
}
