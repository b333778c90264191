package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGridInvariant(t *testing.T) {
	for _, dims := range [][2]int{{1, 1}, {24, 24}, {720, 480}, {0, 5}, {-3, 2}} {
		g := NewGrid(dims[0], dims[1])
		require.Positive(t, g.Width())
		require.Positive(t, g.Height())
		assert.Equal(t, g.Width()*g.Height(), len(g.Cells()))
		assert.Equal(t, 0, g.LiveCount())
	}
}

func TestGridFromRejectsMismatchedBuffer(t *testing.T) {
	assert.Panics(t, func() { GridFrom(3, 3, make([]uint8, 8)) })
	assert.Panics(t, func() { GridFrom(0, 3, nil) })
	g := GridFrom(2, 2, []uint8{1, 0, 0, 1})
	assert.Equal(t, 2, g.LiveCount())
}

func TestGridFromRejectsInvalidStates(t *testing.T) {
	cells := make([]uint8, 9)
	for i := range cells {
		cells[i] = 2
	}
	assert.Panics(t, func() { GridFrom(3, 3, cells) })
	assert.Panics(t, func() { GridFrom(2, 1, []uint8{0, 255}) })
	assert.NotPanics(t, func() { GridFrom(2, 1, []uint8{Dead, Alive}) })
}

func TestDimensionAccessors(t *testing.T) {
	g := NewGrid(7, 3)
	assert.Equal(t, 7, g.Width())
	assert.Equal(t, 3, g.Height())
	assert.Equal(t, Size{W: 7, H: 3}, g.Size())
}

func TestWrap(t *testing.T) {
	g := NewGrid(4, 3)
	cases := []struct{ x, y, wx, wy int }{
		{0, 0, 0, 0},
		{-1, -1, 3, 2},
		{4, 3, 0, 0},
		{-5, 7, 3, 1},
		{9, -4, 1, 2},
	}
	for _, c := range cases {
		x, y := g.Wrap(c.x, c.y)
		assert.Equal(t, [2]int{c.wx, c.wy}, [2]int{x, y}, "wrap(%d,%d)", c.x, c.y)
	}
}

func TestIndexCoordsRoundTrip(t *testing.T) {
	g := NewGrid(5, 4)
	for i := 0; i < g.Len(); i++ {
		x, y := g.Coords(i)
		assert.Equal(t, i, g.Index(x, y))
	}
}

func TestSetNormalisesAndEqual(t *testing.T) {
	g := NewGrid(3, 3)
	g.Set(-1, 0, 7)
	assert.Equal(t, Alive, g.Cells()[2])

	cp := g.Clone()
	assert.True(t, g.Equal(cp))
	cp.Set(0, 0, Alive)
	assert.False(t, g.Equal(cp))
	assert.False(t, g.Equal(NewGrid(3, 4)))

	g.Clear()
	assert.Equal(t, 0, g.LiveCount())
}
