//go:build ebiten

package render

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// maxBatch is the largest multiple of VerticesPerCell addressable with
// uint16 indices.
const maxBatch = (1<<16 - 1) / VerticesPerCell * VerticesPerCell

// QuadPainter draws vertex lists produced by Build as solid triangle lists.
type QuadPainter struct {
	src     *ebiten.Image
	verts   []ebiten.Vertex
	indices []uint16
}

// NewQuadPainter allocates the solid source texture used for every triangle.
func NewQuadPainter() *QuadPainter {
	base := ebiten.NewImage(3, 3)
	base.Fill(color.White)
	return &QuadPainter{
		src: base.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image),
	}
}

// Draw renders vs onto dst in col, splitting into batches that fit the
// uint16 index range. It returns the number of vertices drawn.
func (qp *QuadPainter) Draw(dst *ebiten.Image, vs []Vertex, col color.Color) int {
	r, g, b, a := col.RGBA()
	cr := float32(r) / 0xffff
	cg := float32(g) / 0xffff
	cb := float32(b) / 0xffff
	ca := float32(a) / 0xffff

	op := &ebiten.DrawTrianglesOptions{}
	drawn := 0
	for start := 0; start < len(vs); start += maxBatch {
		end := start + maxBatch
		if end > len(vs) {
			end = len(vs)
		}
		batch := vs[start:end]
		qp.verts = qp.verts[:0]
		qp.indices = qp.indices[:0]
		for i, v := range batch {
			qp.verts = append(qp.verts, ebiten.Vertex{
				DstX: v.X, DstY: v.Y,
				SrcX: 1, SrcY: 1,
				ColorR: cr, ColorG: cg, ColorB: cb, ColorA: ca,
			})
			qp.indices = append(qp.indices, uint16(i))
		}
		dst.DrawTriangles(qp.verts, qp.indices, qp.src, op)
		drawn += len(batch)
	}
	return drawn
}
