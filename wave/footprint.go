package wave

import "math"

// splashWindow returns the inclusive column and row bounds of the cells a
// splash of the given radius can reach, clipped to the interior of f. The
// window is empty (lo > hi) when the splash misses the interior entirely.
// Radii larger than the grid are capped, so the window never exceeds the
// field however large the radius is.
func splashWindow(f *HeightField, centerX, centerY int, radius float64) (x0, x1, y0, y1 int) {
	r := int(math.Floor(math.Min(radius, float64(f.width+f.height))))
	x0 = max(centerX-r, 1)
	x1 = min(centerX+r, f.width-2)
	y0 = max(centerY-r, 1)
	y1 = min(centerY+r, f.height-2)
	return x0, x1, y0, y1
}

// falloff is the linear splash weight of a cell dist away from the centre, or
// false when the cell lies outside radius. Cells exactly radius away weigh 0.
func falloff(dist, radius float64) (float64, bool) {
	if radius == 0 {
		return 1, dist == 0
	}
	if dist > radius {
		return 0, false
	}
	return 1 - dist/radius, true
}
