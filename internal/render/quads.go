package render

import "quadlife/internal/core"

// VerticesPerCell is the number of vertices emitted for each live cell: two
// triangles covering the cell rectangle.
const VerticesPerCell = 6

// Vertex is a 2D screen-space position.
type Vertex struct {
	X, Y float32
}

// Build emits two triangles for every live cell of g, scanning rows top to
// bottom. The low edge of each rectangle is inset by one unit so adjacent
// cells are separated by a gridline gap.
func Build(g *core.Grid, cellWidth, cellHeight int) []Vertex {
	cells := g.Cells()
	live := 0
	for _, c := range cells {
		if c == core.Alive {
			live++
		}
	}
	out := make([]Vertex, 0, live*VerticesPerCell)
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			if cells[g.Index(x, y)] != core.Alive {
				continue
			}
			x1 := float32(x*cellWidth + 1)
			x2 := float32(x*cellWidth + cellWidth)
			y1 := float32(y*cellHeight + 1)
			y2 := float32(y*cellHeight + cellHeight)
			out = appendQuad(out, x1, y1, x2, y2)
		}
	}
	return out
}

func appendQuad(out []Vertex, x1, y1, x2, y2 float32) []Vertex {
	return append(out,
		Vertex{x1, y1}, Vertex{x2, y1}, Vertex{x1, y2},
		Vertex{x1, y2}, Vertex{x2, y1}, Vertex{x2, y2},
	)
}

// Flatten interleaves the vertices into an x,y float array ready for a GPU
// buffer upload.
func Flatten(vs []Vertex) []float32 {
	out := make([]float32, 0, 2*len(vs))
	for _, v := range vs {
		out = append(out, v.X, v.Y)
	}
	return out
}

// DrawCount is the vertex count handed to a triangle-list draw call for the
// flattened form of vs, which holds two floats per vertex.
func DrawCount(vs []Vertex) int {
	return len(vs)
}

// ToClip maps a pixel position to clip space for a viewport of resW x resH,
// flipping y so the origin is the top-left corner.
func ToClip(v Vertex, resW, resH float32) Vertex {
	return Vertex{
		X: (v.X/resW)*2 - 1,
		Y: -((v.Y/resH)*2 - 1),
	}
}

// GridLines emits one-unit-wide quads along every interior row and column
// boundary of a cols x rows board.
func GridLines(cols, rows, cellWidth, cellHeight int) []Vertex {
	w := float32(cols * cellWidth)
	h := float32(rows * cellHeight)
	var out []Vertex
	for i := 1; i < rows; i++ {
		y := float32(i * cellHeight)
		out = appendQuad(out, 0, y, w, y+1)
	}
	for i := 1; i < cols; i++ {
		x := float32(i * cellWidth)
		out = appendQuad(out, x, 0, x+1, h)
	}
	return out
}
