package view

import (
	"math"

	"github.com/charmbracelet/harmonica"
	"github.com/go-gl/mathgl/mgl32"
)

const (
	minPitch = 10 * math.Pi / 180
	maxPitch = 85 * math.Pi / 180
	minDist  = 6.0
	maxDist  = 40.0
)

// spring eases one camera coordinate toward its target.
type spring struct {
	s        harmonica.Spring
	pos, vel float64
	target   float64
}

func (s *spring) update() {
	s.pos, s.vel = s.s.Update(s.pos, s.vel, s.target)
}

func (s *spring) settle(v float64) {
	s.pos, s.vel, s.target = v, 0, v
}

// Camera is a perspective camera orbiting a target point. Orbit and zoom
// requests move spring targets; Update advances the springs once per tick.
type Camera struct {
	FovY          float32 // radians
	Near, Far     float32
	Target        mgl32.Vec3
	Width, Height int

	yaw, pitch, dist spring
}

// NewCamera returns a camera placed at eye looking at target. fps is the tick
// rate Update is called at.
func NewCamera(eye, target mgl32.Vec3, fovDeg float32, width, height, fps int) *Camera {
	c := &Camera{
		FovY:   mgl32.DegToRad(fovDeg),
		Near:   0.1,
		Far:    100,
		Target: target,
		Width:  width,
		Height: height,
	}
	for _, s := range []*spring{&c.yaw, &c.pitch, &c.dist} {
		s.s = harmonica.NewSpring(harmonica.FPS(fps), 6.0, 1.0)
	}
	off := eye.Sub(target)
	dist := float64(off.Len())
	c.dist.settle(dist)
	c.yaw.settle(math.Atan2(float64(off.X()), float64(off.Z())))
	c.pitch.settle(math.Asin(float64(off.Y()) / dist))
	return c
}

// Orbit turns the camera around the target by the given angles in radians.
func (c *Camera) Orbit(dYaw, dPitch float64) {
	c.yaw.target += dYaw
	c.pitch.target = math.Max(minPitch, math.Min(maxPitch, c.pitch.target+dPitch))
}

// Zoom scales the distance to the target.
func (c *Camera) Zoom(factor float64) {
	c.dist.target = math.Max(minDist, math.Min(maxDist, c.dist.target*factor))
}

// Update advances the orbit springs by one tick.
func (c *Camera) Update() {
	c.yaw.update()
	c.pitch.update()
	c.dist.update()
}

// Eye returns the current camera position.
func (c *Camera) Eye() mgl32.Vec3 {
	yaw, pitch, dist := c.yaw.pos, c.pitch.pos, c.dist.pos
	off := mgl32.Vec3{
		float32(dist * math.Sin(yaw) * math.Cos(pitch)),
		float32(dist * math.Sin(pitch)),
		float32(dist * math.Cos(yaw) * math.Cos(pitch)),
	}
	return c.Target.Add(off)
}

func (c *Camera) aspect() float32 {
	if c.Height == 0 {
		return 1
	}
	return float32(c.Width) / float32(c.Height)
}

// View returns the world-to-camera matrix.
func (c *Camera) View() mgl32.Mat4 {
	return mgl32.LookAtV(c.Eye(), c.Target, mgl32.Vec3{0, 1, 0})
}

// Projection returns the perspective matrix.
func (c *Camera) Projection() mgl32.Mat4 {
	return mgl32.Perspective(c.FovY, c.aspect(), c.Near, c.Far)
}

// Projector caches the view-projection matrix for projecting many points.
type Projector struct {
	vp            mgl32.Mat4
	width, height float32
}

// Projector snapshots the current camera state.
func (c *Camera) Projector() Projector {
	return Projector{
		vp:     c.Projection().Mul4(c.View()),
		width:  float32(c.Width),
		height: float32(c.Height),
	}
}

// Project maps a world point to screen pixels with the origin at the top left.
// ok is false for points behind the camera.
func (p Projector) Project(v mgl32.Vec3) (x, y float32, ok bool) {
	clip := p.vp.Mul4x1(v.Vec4(1))
	if clip.W() <= 0 {
		return 0, 0, false
	}
	ndc := clip.Vec3().Mul(1 / clip.W())
	x = (ndc.X() + 1) / 2 * p.width
	y = (1 - ndc.Y()) / 2 * p.height
	return x, y, true
}

// PickPlane casts a ray through screen pixel (x, y) and intersects it with the
// horizontal plane at height planeY. ok is false when the ray misses the plane.
func (c *Camera) PickPlane(x, y float64, planeY float32) (mgl32.Vec3, bool) {
	view, proj := c.View(), c.Projection()
	winY := float32(c.Height) - float32(y)
	near, err := mgl32.UnProject(mgl32.Vec3{float32(x), winY, 0}, view, proj, 0, 0, c.Width, c.Height)
	if err != nil {
		return mgl32.Vec3{}, false
	}
	far, err := mgl32.UnProject(mgl32.Vec3{float32(x), winY, 1}, view, proj, 0, 0, c.Width, c.Height)
	if err != nil {
		return mgl32.Vec3{}, false
	}
	dir := far.Sub(near)
	if math.Abs(float64(dir.Y())) < 1e-6 {
		return mgl32.Vec3{}, false
	}
	t := (planeY - near.Y()) / dir.Y()
	if t < 0 {
		return mgl32.Vec3{}, false
	}
	return near.Add(dir.Mul(t)), true
}
