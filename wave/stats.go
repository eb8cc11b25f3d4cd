package wave

import "gonum.org/v1/gonum/floats"

// Stats summarises the current state of a field.
type Stats struct {
	Energy float64 // sum of squared heights
	Min    float64
	Max    float64
}

// Energy returns the sum of squared heights of the current state.
func Energy(f *HeightField) float64 {
	return floats.Dot(f.curr, f.curr)
}

// Measure computes Stats for the current state.
func Measure(f *HeightField) Stats {
	return Stats{
		Energy: floats.Dot(f.curr, f.curr),
		Min:    floats.Min(f.curr),
		Max:    floats.Max(f.curr),
	}
}
