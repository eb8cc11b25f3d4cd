package view

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"gonum.org/v1/gonum/floats"

	"ripples/wave"
)

// Lighting describes a directional light plus ambient term over a single
// surface colour.
type Lighting struct {
	Base              RGB
	Emissive          RGB
	EmissiveIntensity float32
	Ambient           RGB
	AmbientIntensity  float32
	Light             RGB
	LightIntensity    float32
	LightDir          mgl32.Vec3 // towards the light, normalised
}

// WaterLighting is the default look of the mesh view.
var WaterLighting = Lighting{
	Base:              HexRGB(0x0c4a6e),
	Emissive:          HexRGB(0x00111a),
	EmissiveIntensity: 0.2,
	Ambient:           HexRGB(0x406080),
	AmbientIntensity:  1,
	Light:             HexRGB(0x7dd3fc),
	LightIntensity:    2,
	LightDir:          mgl32.Vec3{0, 1, 0},
}

// Shade returns the surface colour for a vertex with normal n.
func (l Lighting) Shade(n mgl32.Vec3) RGB {
	diffuse := float32(math.Max(0, float64(n.Dot(l.LightDir))))
	irradiance := l.Ambient.Scale(l.AmbientIntensity).Add(l.Light.Scale(l.LightIntensity * diffuse))
	return l.Base.Mul(irradiance).Add(l.Emissive.Scale(l.EmissiveIntensity)).Clamp()
}

// Mesh is a square plane of Size world units centred on the origin with one
// vertex per grid cell. Column index runs along +x and row index along +z;
// heights are displaced along +y by HeightScale.
type Mesh struct {
	Cols, Rows  int
	Size        float64
	HeightScale float64

	xs, zs    []float64
	Positions []mgl32.Vec3
	Normals   []mgl32.Vec3
	Colors    []RGB
}

// NewMesh lays out a flat mesh for a cols x rows grid.
func NewMesh(cols, rows int, size, heightScale float64) *Mesh {
	half := size / 2
	m := &Mesh{
		Cols: cols, Rows: rows,
		Size:        size,
		HeightScale: heightScale,
		xs:          floats.Span(make([]float64, cols), -half, half),
		zs:          floats.Span(make([]float64, rows), -half, half),
		Positions:   make([]mgl32.Vec3, cols*rows),
		Normals:     make([]mgl32.Vec3, cols*rows),
		Colors:      make([]RGB, cols*rows),
	}
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			i := row*cols + col
			m.Positions[i] = mgl32.Vec3{float32(m.xs[col]), 0, float32(m.zs[row])}
			m.Normals[i] = mgl32.Vec3{0, 1, 0}
		}
	}
	return m
}

// Update displaces the vertices by the field's current heights and recomputes
// normals and shading.
func (m *Mesh) Update(f *wave.HeightField, light Lighting) {
	for row := 0; row < m.Rows; row++ {
		heights := f.Row(row)
		for col := 0; col < m.Cols; col++ {
			m.Positions[row*m.Cols+col][1] = float32(heights[col] * m.HeightScale)
		}
	}
	m.computeNormals()
	for i, n := range m.Normals {
		m.Colors[i] = light.Shade(n)
	}
}

// computeNormals derives vertex normals from central differences of the
// displaced heights, falling back to one-sided differences at the edges.
func (m *Mesh) computeNormals() {
	for row := 0; row < m.Rows; row++ {
		r0 := max(row-1, 0)
		r1 := min(row+1, m.Rows-1)
		for col := 0; col < m.Cols; col++ {
			c0 := max(col-1, 0)
			c1 := min(col+1, m.Cols-1)
			dx := m.Positions[row*m.Cols+c1].Sub(m.Positions[row*m.Cols+c0])
			dz := m.Positions[r1*m.Cols+col].Sub(m.Positions[r0*m.Cols+col])
			n := dz.Cross(dx)
			if n.Len() == 0 {
				n = mgl32.Vec3{0, 1, 0}
			}
			m.Normals[row*m.Cols+col] = n.Normalize()
		}
	}
}

// CellAt maps a point on the plane to the grid cell under it. ok is false
// outside the plane.
func (m *Mesh) CellAt(p mgl32.Vec3) (col, row int, ok bool) {
	half := m.Size / 2
	x, z := float64(p.X()), float64(p.Z())
	if x < -half || x > half || z < -half || z > half {
		return 0, 0, false
	}
	col = clampCoord(int(math.Floor((x+half)/m.Size*float64(m.Cols))), 0, m.Cols-1)
	row = clampCoord(int(math.Floor((z+half)/m.Size*float64(m.Rows))), 0, m.Rows-1)
	return col, row, true
}

// Quad is one grid cell of the mesh, given by the index of its top-left
// vertex.
type Quad struct {
	Col, Row int
}

// PaintOrder returns the cells of the mesh ordered back to front as seen from
// eye, so drawing them in order needs no depth buffer.
func (m *Mesh) PaintOrder(eye mgl32.Vec3, dst []Quad) []Quad {
	dst = dst[:0]
	rowStart, rowEnd, rowStep := 0, m.Rows-1, 1
	if eye.Z() < 0 {
		rowStart, rowEnd, rowStep = m.Rows-2, -1, -1
	}
	colStart, colEnd, colStep := 0, m.Cols-1, 1
	if eye.X() < 0 {
		colStart, colEnd, colStep = m.Cols-2, -1, -1
	}
	// Walk from the far edge towards the eye: rows first when the camera sits
	// mostly along z, columns first otherwise.
	if math.Abs(float64(eye.Z())) >= math.Abs(float64(eye.X())) {
		for row := rowStart; row != rowEnd; row += rowStep {
			for col := colStart; col != colEnd; col += colStep {
				dst = append(dst, Quad{Col: col, Row: row})
			}
		}
		return dst
	}
	for col := colStart; col != colEnd; col += colStep {
		for row := rowStart; row != rowEnd; row += rowStep {
			dst = append(dst, Quad{Col: col, Row: row})
		}
	}
	return dst
}
