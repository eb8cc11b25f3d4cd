package main

import (
	"github.com/hajimehoshi/ebiten/v2"

	"ripples/internal/view"
	"ripples/wave"
)

// pointsView draws the field as a flat grid of coloured points, one pixel per
// cell scaled up to the screen.
type pointsView struct {
	field *wave.HeightField
	grid  view.PointGrid
	img   *ebiten.Image
	pix   []byte
}

func newPointsView(cols, rows int, scheme wave.Scheme) (*pointsView, error) {
	f, err := wave.NewHeightField(cols, rows, scheme)
	if err != nil {
		return nil, err
	}
	return &pointsView{
		field: f,
		grid:  view.PointGrid{Cols: cols, Rows: rows, Width: screenW, Height: screenH},
		img:   ebiten.NewImage(cols, rows),
		pix:   make([]byte, cols*rows*4),
	}, nil
}

func (v *pointsView) Field() *wave.HeightField { return v.field }

func (v *pointsView) HandleInput() {}

func (v *pointsView) Pick(x, y int) (int, int, bool) {
	return v.grid.CellAt(float64(x), float64(y))
}

func (v *pointsView) Draw(screen *ebiten.Image) {
	v.grid.Fill(v.pix, v.field)
	v.img.WritePixels(v.pix)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(screenW)/float64(v.grid.Cols), float64(screenH)/float64(v.grid.Rows))
	op.Filter = ebiten.FilterNearest
	screen.DrawImage(v.img, op)
}
