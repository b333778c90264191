package render

import (
	"strings"

	"quadlife/internal/core"
)

// Text renders g as rows of live/dead glyphs, cropped to maxW x maxH when
// those are positive.
func Text(g *core.Grid, live, dead string, maxW, maxH int) string {
	w, h := g.Width(), g.Height()
	if maxW > 0 && maxW < w {
		w = maxW
	}
	if maxH > 0 && maxH < h {
		h = maxH
	}
	var b strings.Builder
	cells := g.Cells()
	for y := 0; y < h; y++ {
		if y != 0 {
			b.WriteByte('\n')
		}
		for x := 0; x < w; x++ {
			if cells[g.Index(x, y)] == core.Alive {
				b.WriteString(live)
				continue
			}
			b.WriteString(dead)
		}
	}
	return b.String()
}
