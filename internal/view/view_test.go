package view

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ripples/wave"
)

func assertRGB(t *testing.T, want, got RGB) {
	t.Helper()
	assert.InDelta(t, want.R, got.R, 1e-6)
	assert.InDelta(t, want.G, got.G, 1e-6)
	assert.InDelta(t, want.B, got.B, 1e-6)
}

func assertVec(t *testing.T, want, got mgl32.Vec3) {
	t.Helper()
	for i := range want {
		assert.InDelta(t, want[i], got[i], 1e-4, "component %d", i)
	}
}

func TestWaterColor(t *testing.T) {
	assertRGB(t, RGB{0.1, 0.3, 0.6}, WaterColor(-1))
	assertRGB(t, RGB{0.1, 0.3, 0.6}, WaterColor(-7))
	assertRGB(t, RGB{1, 1, 1}, WaterColor(1))
	assertRGB(t, RGB{1, 1, 1}, WaterColor(3))
	assertRGB(t, RGB{0.55, 0.65, 0.8}, WaterColor(0))
}

func TestHexRGB(t *testing.T) {
	c := HexRGB(0xff8000)
	assert.Equal(t, float32(1), c.R)
	assert.InDelta(t, 128.0/255, c.G, 1e-6)
	assert.Zero(t, c.B)

	r, g, b := RGB{2, 0.5, -1}.Bytes()
	assert.Equal(t, byte(255), r)
	assert.Equal(t, byte(128), g)
	assert.Equal(t, byte(0), b)
}

func TestPointGridCellAt(t *testing.T) {
	p := PointGrid{Cols: 250, Rows: 250, Width: 1000, Height: 1000}

	tests := []struct {
		x, y     float64
		col, row int
		ok       bool
	}{
		{0, 0, 0, 249, true},
		{999, 999, 249, 0, true},
		{500, 500, 125, 124, true},
		{3.9, 997, 0, 0, true},
		{5, 995, 1, 1, true},
		{-1, 10, 0, 0, false},
		{10, 1000, 0, 0, false},
	}
	for _, tt := range tests {
		col, row, ok := p.CellAt(tt.x, tt.y)
		assert.Equal(t, tt.ok, ok, "(%v,%v)", tt.x, tt.y)
		if !tt.ok {
			continue
		}
		assert.Equal(t, tt.col, col, "col at (%v,%v)", tt.x, tt.y)
		assert.Equal(t, tt.row, row, "row at (%v,%v)", tt.x, tt.y)
	}
}

func TestPointGridFillMirrorsRows(t *testing.T) {
	f, err := wave.NewHeightField(4, 3, wave.FullWaveEquation)
	require.NoError(t, err)
	require.NoError(t, f.Set(0, 1, 1))

	p := PointGrid{Cols: 4, Rows: 3, Width: 4, Height: 3}
	pix := make([]byte, 4*3*4)
	p.Fill(pix, f)

	// Field row 0 is the bottom pixel row.
	i := (2*4 + 1) * 4
	assert.Equal(t, []byte{255, 255, 255, 255}, pix[i:i+4])
	r, g, b := WaterColor(0).Bytes()
	assert.Equal(t, []byte{r, g, b, 255}, pix[0:4])
}

func TestMeshLayout(t *testing.T) {
	m := NewMesh(150, 150, 15, 2)
	assertVec(t, mgl32.Vec3{-7.5, 0, -7.5}, m.Positions[0])
	assertVec(t, mgl32.Vec3{7.5, 0, 7.5}, m.Positions[len(m.Positions)-1])
	assertVec(t, mgl32.Vec3{7.5, 0, -7.5}, m.Positions[149])

	col, row, ok := m.CellAt(mgl32.Vec3{0, 0, 0})
	require.True(t, ok)
	assert.Equal(t, 75, col)
	assert.Equal(t, 75, row)

	col, row, ok = m.CellAt(mgl32.Vec3{-7.5, 0, 7.5})
	require.True(t, ok)
	assert.Equal(t, 0, col)
	assert.Equal(t, 149, row)

	_, _, ok = m.CellAt(mgl32.Vec3{8, 0, 0})
	assert.False(t, ok)
}

func TestMeshUpdate(t *testing.T) {
	f, err := wave.NewHeightField(5, 5, wave.FullWaveEquation)
	require.NoError(t, err)
	m := NewMesh(5, 5, 4, 2)

	m.Update(f, WaterLighting)
	flat := WaterLighting.Shade(mgl32.Vec3{0, 1, 0})
	for i := range m.Colors {
		assert.Equal(t, flat, m.Colors[i])
		assert.Equal(t, mgl32.Vec3{0, 1, 0}, m.Normals[i])
	}

	require.NoError(t, f.Set(2, 2, 0.5))
	m.Update(f, WaterLighting)
	assert.Equal(t, float32(1), m.Positions[2*5+2].Y())
	// The vertex left of the crest slopes up towards +x, so its normal leans
	// towards -x.
	assert.Less(t, m.Normals[2*5+1].X(), float32(0))
	assert.Greater(t, m.Normals[2*5+3].X(), float32(0))
	assert.InDelta(t, 1, m.Normals[2*5+1].Len(), 1e-5)
}

func TestPaintOrder(t *testing.T) {
	m := NewMesh(4, 3, 3, 1)

	order := m.PaintOrder(mgl32.Vec3{0, 12, 12}, nil)
	require.Len(t, order, 3*2)
	assert.Equal(t, Quad{Col: 0, Row: 0}, order[0])
	assert.Equal(t, Quad{Col: 2, Row: 1}, order[len(order)-1])

	order = m.PaintOrder(mgl32.Vec3{-12, 12, 1}, order)
	require.Len(t, order, 3*2)
	assert.Equal(t, Quad{Col: 2, Row: 0}, order[0])
	assert.Equal(t, Quad{Col: 0, Row: 1}, order[len(order)-1])
}

func TestCameraStartsAtEye(t *testing.T) {
	eye := mgl32.Vec3{0, 12, 12}
	c := NewCamera(eye, mgl32.Vec3{}, 60, 800, 600, 60)
	assertVec(t, eye, c.Eye())
}

func TestCameraCentreProjectsToScreenCentre(t *testing.T) {
	c := NewCamera(mgl32.Vec3{0, 12, 12}, mgl32.Vec3{}, 60, 800, 600, 60)
	x, y, ok := c.Projector().Project(mgl32.Vec3{})
	require.True(t, ok)
	assert.InDelta(t, 400, x, 1e-2)
	assert.InDelta(t, 300, y, 1e-2)

	// Points nearer the camera appear lower on screen.
	_, yNear, ok := c.Projector().Project(mgl32.Vec3{0, 0, 5})
	require.True(t, ok)
	assert.Greater(t, yNear, y)
}

func TestCameraPickRoundTrip(t *testing.T) {
	c := NewCamera(mgl32.Vec3{0, 12, 12}, mgl32.Vec3{}, 60, 800, 600, 60)
	proj := c.Projector()
	for _, p := range []mgl32.Vec3{{0, 0, 0}, {3, 0, -4}, {-7, 0, 7}, {5.5, 0, 2}} {
		x, y, ok := proj.Project(p)
		require.True(t, ok)
		hit, ok := c.PickPlane(float64(x), float64(y), 0)
		require.True(t, ok, "%v", p)
		assert.InDelta(t, p.X(), hit.X(), 1e-2, "%v", p)
		assert.InDelta(t, 0, hit.Y(), 1e-3, "%v", p)
		assert.InDelta(t, p.Z(), hit.Z(), 1e-2, "%v", p)
	}

	// Looking above the horizon never reaches the water.
	_, ok := c.PickPlane(400, -5000, 0)
	assert.False(t, ok)
}

func TestCameraOrbitEases(t *testing.T) {
	c := NewCamera(mgl32.Vec3{0, 12, 12}, mgl32.Vec3{}, 60, 800, 600, 60)
	start := c.Eye()
	c.Orbit(math.Pi/2, 0)
	c.Update()
	first := c.Eye()
	assert.NotEqual(t, start, first)
	for i := 0; i < 600; i++ {
		c.Update()
	}
	end := c.Eye()
	// A quarter turn moves the eye from +z to +x.
	assert.InDelta(t, 12, end.X(), 1e-2)
	assert.InDelta(t, 0, end.Z(), 1e-2)
	assert.InDelta(t, 12, end.Y(), 1e-2)

	c.Orbit(0, math.Pi)
	for i := 0; i < 600; i++ {
		c.Update()
	}
	assert.Less(t, c.Eye().Y(), float32(c.dist.pos))
	assert.InDelta(t, maxPitch, c.pitch.pos, 1e-3)
}

func TestControlsNudge(t *testing.T) {
	c := ResetControls
	c.Nudge(WaveSpeed, 3)
	assert.InDelta(t, 0.38, c.WaveSpeed, 1e-9)
	c.Nudge(WaveSpeed, 100)
	assert.Equal(t, 0.5, c.WaveSpeed)
	c.Nudge(Damping, -1000)
	assert.Equal(t, 0.9, c.Damping)
	c.Nudge(SplashRadius, -5)
	assert.Equal(t, 0.0, c.SplashRadius)
	c.Nudge(SplashStrength, 2)
	assert.InDelta(t, 1.2, c.SplashStrength, 1e-9)
	c.Nudge(Control(42), 1)

	assert.Equal(t, "damping", Damping.String())
	assert.InDelta(t, 1.2, c.Get(SplashStrength), 1e-9)
}

func TestControlsApplyAndSplash(t *testing.T) {
	f, err := wave.NewHeightField(9, 9, wave.FullWaveEquation)
	require.NoError(t, err)
	c := Controls{WaveSpeed: 0.2, Damping: 0.95, SplashRadius: 0, SplashStrength: 3}

	c.Apply(f)
	assert.Equal(t, wave.Params{WaveSpeed: 0.2, Damping: 0.95}, f.Params())
	assert.Equal(t, f.Params(), c.Params())

	require.NoError(t, c.Splash(f, 4, 2))
	v, err := f.At(2, 4)
	require.NoError(t, err)
	assert.Equal(t, 3.0, v)
}

func TestControlsValidate(t *testing.T) {
	require.NoError(t, ResetControls.Validate())

	c := ResetControls
	c.SplashRadius = math.NaN()
	assert.ErrorIs(t, c.Validate(), wave.ErrInvalidParameter)

	c = ResetControls
	c.Damping = 1.5
	assert.ErrorIs(t, c.Validate(), wave.ErrInvalidParameter)
}
