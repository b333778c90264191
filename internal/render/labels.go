package render

import "strconv"

// MinLabelCell is the smallest cell size for which coordinate labels are
// legible.
const MinLabelCell = 20

// Label is a debug annotation centred on a cell.
type Label struct {
	Text string
	X, Y int
}

// CoordinateLabels returns a "y,x" label for each cell centre, or nil when
// the cells are too small to hold text.
func CoordinateLabels(cols, rows, cellWidth, cellHeight int) []Label {
	if cellWidth < MinLabelCell || cellHeight < MinLabelCell {
		return nil
	}
	out := make([]Label, 0, cols*rows)
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			out = append(out, Label{
				Text: strconv.Itoa(y) + "," + strconv.Itoa(x),
				X:    x*cellWidth + cellWidth/2,
				Y:    y*cellHeight + cellHeight/2,
			})
		}
	}
	return out
}
