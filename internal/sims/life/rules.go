package life

import "quadlife/internal/core"

// WrappedValue returns the state at logical coordinate (x, y). Either
// coordinate may be negative or beyond the grid extent.
func WrappedValue(g *core.Grid, x, y int) uint8 {
	return g.At(x, y)
}

// CountLiveNeighbors sums the eight Moore neighbours of the cell at linear
// index i. The result is always in [0, 8].
func CountLiveNeighbors(g *core.Grid, i int) int {
	x, y := g.Coords(i)
	n := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			n += int(WrappedValue(g, x+dx, y+dy))
		}
	}
	return n
}

// NextState applies B3/S23 to a single cell given its live neighbour count.
func NextState(c uint8, n int) uint8 {
	switch {
	case c == core.Alive && (n <= 1 || n > 3):
		return core.Dead
	case c == core.Dead && n == 3:
		return core.Alive
	default:
		return c
	}
}

// Step returns the next generation of cur in a freshly allocated grid. cur is
// not modified.
func Step(cur *core.Grid) *core.Grid {
	next := core.NewGrid(cur.Width(), cur.Height())
	StepInto(next, cur)
	return next
}

// StepInto writes the next generation of cur into dst. Both grids must have
// the same shape and must not be the same grid.
func StepInto(dst, cur *core.Grid) {
	if dst == cur {
		panic("life: StepInto cannot read and write the same grid")
	}
	if !dst.SameShape(cur) {
		panic("life: StepInto grid dimensions differ")
	}
	src := cur.Cells()
	out := dst.Cells()
	for i, c := range src {
		out[i] = NextState(c, CountLiveNeighbors(cur, i))
	}
}
