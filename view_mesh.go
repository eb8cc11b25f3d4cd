package main

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/hajimehoshi/ebiten/v2"

	"ripples/internal/view"
	"ripples/wave"
)

// maxBatchQuads keeps every DrawTriangles call within uint16 vertex indices.
const maxBatchQuads = 16000

var meshBackground = color.RGBA{0x02, 0x06, 0x17, 0xff}

// meshView draws the field as a lit, displaced plane seen through an orbiting
// perspective camera.
type meshView struct {
	field *wave.HeightField
	mesh  *view.Mesh
	cam   *view.Camera

	screenX, screenY []float32
	visible          []bool
	order            []view.Quad
	vertices         []ebiten.Vertex
	indices          []uint16
}

func newMeshView(cols, rows int, scheme wave.Scheme) (*meshView, error) {
	f, err := wave.NewHeightField(cols, rows, scheme)
	if err != nil {
		return nil, err
	}
	n := cols * rows
	return &meshView{
		field:   f,
		mesh:    view.NewMesh(cols, rows, meshSize, meshHeightScale),
		cam:     view.NewCamera(mgl32.Vec3{0, 12, 12}, mgl32.Vec3{}, cameraFovDeg, screenW, screenH, defaultTPS),
		screenX: make([]float32, n),
		screenY: make([]float32, n),
		visible: make([]bool, n),
	}, nil
}

func (v *meshView) Field() *wave.HeightField { return v.field }

// HandleInput orbits the camera with the arrow keys and zooms with PageUp and
// PageDown.
func (v *meshView) HandleInput() {
	var dYaw, dPitch float64
	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		dYaw -= orbitStep
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		dYaw += orbitStep
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		dPitch += orbitStep
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		dPitch -= orbitStep
	}
	if dYaw != 0 || dPitch != 0 {
		v.cam.Orbit(dYaw, dPitch)
	}
	if ebiten.IsKeyPressed(ebiten.KeyPageUp) {
		v.cam.Zoom(1 / zoomStep)
	}
	if ebiten.IsKeyPressed(ebiten.KeyPageDown) {
		v.cam.Zoom(zoomStep)
	}
	v.cam.Update()
}

// Pick raycasts the screen position onto the undisplaced water plane.
func (v *meshView) Pick(x, y int) (int, int, bool) {
	hit, ok := v.cam.PickPlane(float64(x), float64(y), 0)
	if !ok {
		return 0, 0, false
	}
	return v.mesh.CellAt(hit)
}

func (v *meshView) Draw(screen *ebiten.Image) {
	screen.Fill(meshBackground)
	v.mesh.Update(v.field, view.WaterLighting)

	proj := v.cam.Projector()
	for i, p := range v.mesh.Positions {
		v.screenX[i], v.screenY[i], v.visible[i] = proj.Project(p)
	}

	v.order = v.mesh.PaintOrder(v.cam.Eye(), v.order)
	v.vertices = v.vertices[:0]
	v.indices = v.indices[:0]
	quads := 0
	for _, q := range v.order {
		if !v.appendQuad(q) {
			continue
		}
		quads++
		if quads == maxBatchQuads {
			v.flush(screen)
			quads = 0
		}
	}
	v.flush(screen)
}

// appendQuad adds the two triangles of one cell to the current batch. Cells
// with a vertex behind the camera are skipped.
func (v *meshView) appendQuad(q view.Quad) bool {
	cols := v.mesh.Cols
	corners := [4]int{
		q.Row*cols + q.Col,
		q.Row*cols + q.Col + 1,
		(q.Row+1)*cols + q.Col + 1,
		(q.Row+1)*cols + q.Col,
	}
	for _, i := range corners {
		if !v.visible[i] {
			return false
		}
	}
	base := uint16(len(v.vertices))
	for _, i := range corners {
		c := v.mesh.Colors[i]
		v.vertices = append(v.vertices, ebiten.Vertex{
			DstX: v.screenX[i], DstY: v.screenY[i],
			SrcX: 1, SrcY: 1,
			ColorR: c.R, ColorG: c.G, ColorB: c.B, ColorA: 1,
		})
	}
	v.indices = append(v.indices, base, base+1, base+2, base, base+2, base+3)
	return true
}

func (v *meshView) flush(screen *ebiten.Image) {
	if len(v.indices) == 0 {
		return
	}
	screen.DrawTriangles(v.vertices, v.indices, whiteSubImage, &ebiten.DrawTrianglesOptions{AntiAlias: true})
	v.vertices = v.vertices[:0]
	v.indices = v.indices[:0]
}
