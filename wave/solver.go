package wave

import (
	"fmt"
	"math"
)

// Step advances the field by one time step.
//
// Every interior cell is computed from the pre-step current and previous
// buffers only, so the update is synchronous. Border cells of the new state are
// zero. When the pass completes the buffers rotate: previous takes the old
// current and current takes the new state. Heights are never clamped.
func Step(f *HeightField) {
	width := f.width
	lastRow := f.height - 1
	damping := f.params.Damping
	speed := f.params.WaveSpeed

	clear(f.next[:width])
	clear(f.next[lastRow*width:])
	for y := 1; y < lastRow; y++ {
		rowBase := y * width
		center := f.curr[rowBase : rowBase+width]
		prev := f.prev[rowBase : rowBase+width]
		top := f.curr[rowBase-width : rowBase]
		bottom := f.curr[rowBase+width : rowBase+2*width]
		nextRow := f.next[rowBase : rowBase+width]
		nextRow[0] = 0
		nextRow[width-1] = 0

		switch f.scheme {
		case Averaging:
			for x := 1; x < width-1; x++ {
				sum := center[x-1] + center[x+1] + top[x] + bottom[x]
				nextRow[x] = (sum/2 - prev[x]) * damping
			}
		default:
			for x := 1; x < width-1; x++ {
				c := center[x]
				lap := center[x-1] + center[x+1] + top[x] + bottom[x] - 4*c
				nextRow[x] = (2*c - prev[x] + speed*lap) * damping
			}
		}
	}
	f.swap()
}

// StepN runs n steps. It is a convenience for drivers that advance the
// simulation several times per frame.
func StepN(f *HeightField, n int) {
	for i := 0; i < n; i++ {
		Step(f)
	}
}

// Inject adds a circular bump centred on (centerX, centerY), where centerX is a
// column and centerY a row. Each cell within Euclidean distance radius of the
// centre receives strength*(1-dist/radius); a cell exactly radius away gets 0.
// With radius 0 only the centre cell changes, by the full strength.
//
// The footprint is clipped silently to the interior: cells outside the grid or
// on the fixed border are skipped. A centre on the border therefore adds
// nothing at the centre itself, and with radius 0 the call is a no-op. The
// work done is bounded by the grid size, so any finite non-negative radius is
// accepted. Inject never touches the previous state and never steps the field.
// A negative, NaN or infinite radius is rejected with ErrInvalidParameter and
// leaves the field unchanged.
func Inject(f *HeightField, centerX, centerY int, radius, strength float64) error {
	if radius < 0 || math.IsNaN(radius) || math.IsInf(radius, 0) {
		return fmt.Errorf("splash radius %v: %w", radius, ErrInvalidParameter)
	}
	x0, x1, y0, y1 := splashWindow(f, centerX, centerY, radius)
	for row := y0; row <= y1; row++ {
		dy := float64(row - centerY)
		cells := f.curr[row*f.width : (row+1)*f.width]
		for col := x0; col <= x1; col++ {
			dx := float64(col - centerX)
			w, ok := falloff(math.Sqrt(dx*dx+dy*dy), radius)
			if !ok {
				continue
			}
			cells[col] += strength * w
		}
	}
	return nil
}
