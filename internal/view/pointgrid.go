package view

import (
	"math"

	"ripples/wave"
)

// PointGrid lays a field out as one point per cell across a screen area.
// Grid row 0 is drawn at the bottom, matching clip space, so screen rows are
// mirrored on the vertical axis.
type PointGrid struct {
	Cols, Rows    int
	Width, Height int // screen area in pixels
}

// CellAt maps a screen position to the grid cell under it. ok is false when
// the position lies outside the screen area.
func (p PointGrid) CellAt(x, y float64) (col, row int, ok bool) {
	if p.Width <= 0 || p.Height <= 0 {
		return 0, 0, false
	}
	if x < 0 || y < 0 || x >= float64(p.Width) || y >= float64(p.Height) {
		return 0, 0, false
	}
	col = int(math.Floor(x / float64(p.Width) * float64(p.Cols)))
	row = p.Rows - 1 - int(math.Floor(y/float64(p.Height)*float64(p.Rows)))
	col = clampCoord(col, 0, p.Cols-1)
	row = clampCoord(row, 0, p.Rows-1)
	return col, row, true
}

// Fill writes one RGBA pixel per cell into pix, which must hold Cols*Rows*4
// bytes. Pixel rows run top to bottom, so field row 0 lands in the last one.
func (p PointGrid) Fill(pix []byte, f *wave.HeightField) {
	for row := 0; row < p.Rows; row++ {
		heights := f.Row(row)
		base := (p.Rows - 1 - row) * p.Cols * 4
		for col := 0; col < p.Cols; col++ {
			r, g, b := WaterColor(heights[col]).Bytes()
			i := base + col*4
			pix[i] = r
			pix[i+1] = g
			pix[i+2] = b
			pix[i+3] = 255
		}
	}
}
