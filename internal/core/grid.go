package core

import "fmt"

// Cell states. No other values are valid in a Grid.
const (
	Dead  uint8 = 0
	Alive uint8 = 1
)

// Grid stores a toroidal 2D board of binary cells in row-major order.
type Grid struct {
	w, h int
	data []uint8
}

// NewGrid allocates an all-dead grid with the given dimensions.
func NewGrid(w, h int) *Grid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &Grid{w: w, h: h, data: make([]uint8, w*h)}
}

// GridFrom wraps an existing buffer. It panics when the buffer length does not
// match w*h or holds a value other than Dead or Alive.
func GridFrom(w, h int, cells []uint8) *Grid {
	if w <= 0 || h <= 0 || len(cells) != w*h {
		panic(fmt.Sprintf("core: grid %dx%d cannot hold %d cells", w, h, len(cells)))
	}
	for i, c := range cells {
		if c != Dead && c != Alive {
			panic(fmt.Sprintf("core: cell %d has invalid state %d", i, c))
		}
	}
	return &Grid{w: w, h: h, data: cells}
}

// Width is the number of columns.
func (g *Grid) Width() int { return g.w }

// Height is the number of rows.
func (g *Grid) Height() int { return g.h }

// Size returns the grid dimensions.
func (g *Grid) Size() Size { return Size{W: g.w, H: g.h} }

// Cells exposes the backing slice so callers can read/write values directly.
func (g *Grid) Cells() []uint8 { return g.data }

// Len is the number of cells, always W*H.
func (g *Grid) Len() int { return len(g.data) }

// Index returns the linear slice index for in-range coordinates (x, y).
func (g *Grid) Index(x, y int) int { return x + g.w*y }

// Coords recovers (x, y) from a linear index.
func (g *Grid) Coords(i int) (int, int) { return i % g.w, i / g.w }

// Wrap applies toroidal wrapping to the provided coordinates.
func (g *Grid) Wrap(x, y int) (int, int) {
	x = (x%g.w + g.w) % g.w
	y = (y%g.h + g.h) % g.h
	return x, y
}

// At returns the state at (x, y) after wrapping both coordinates.
func (g *Grid) At(x, y int) uint8 {
	x, y = g.Wrap(x, y)
	return g.data[g.Index(x, y)]
}

// Set writes a state at (x, y) after wrapping both coordinates. Any non-zero
// value is stored as Alive.
func (g *Grid) Set(x, y int, v uint8) {
	if v != Dead {
		v = Alive
	}
	x, y = g.Wrap(x, y)
	g.data[g.Index(x, y)] = v
}

// Clear fills the grid with zeros.
func (g *Grid) Clear() {
	for i := range g.data {
		g.data[i] = Dead
	}
}

// Clone returns a deep copy.
func (g *Grid) Clone() *Grid {
	cp := make([]uint8, len(g.data))
	copy(cp, g.data)
	return &Grid{w: g.w, h: g.h, data: cp}
}

// SameShape reports whether both grids have identical dimensions.
func (g *Grid) SameShape(o *Grid) bool { return g.w == o.w && g.h == o.h }

// Equal reports cell-for-cell equality.
func (g *Grid) Equal(o *Grid) bool {
	if !g.SameShape(o) {
		return false
	}
	for i, c := range g.data {
		if o.data[i] != c {
			return false
		}
	}
	return true
}

// LiveCount returns the number of Alive cells.
func (g *Grid) LiveCount() int {
	n := 0
	for _, c := range g.data {
		if c == Alive {
			n++
		}
	}
	return n
}
