//go:build ebiten

package ui

import (
	"image/color"

	"quadlife/internal/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// Overlay draws cell coordinate labels on top of the board.
type Overlay struct {
	show bool

	labels      []render.Label
	cacheCols   int
	cacheRows   int
	cacheCell   int
	labelColour color.Color
}

// NewOverlay constructs an overlay, initially visible when show is set.
func NewOverlay(show bool) *Overlay {
	return &Overlay{show: show, labelColour: color.RGBA{R: 220, G: 40, B: 40, A: 255}}
}

// Update toggles the overlay with the D key.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyD) {
		o.show = !o.show
	}
}

// Draw renders labels for a cols x rows board of cell-sized squares.
func (o *Overlay) Draw(screen *ebiten.Image, cols, rows, cell int) {
	if !o.show {
		return
	}
	if cols != o.cacheCols || rows != o.cacheRows || cell != o.cacheCell {
		o.labels = render.CoordinateLabels(cols, rows, cell, cell)
		o.cacheCols, o.cacheRows, o.cacheCell = cols, rows, cell
	}
	face := basicfont.Face7x13
	for _, l := range o.labels {
		b := text.BoundString(face, l.Text)
		text.Draw(screen, l.Text, face, l.X-b.Dx()/2, l.Y+b.Dy()/2, o.labelColour)
	}
}
