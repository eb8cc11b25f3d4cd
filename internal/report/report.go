// Package report runs a field without a window and summarises how its energy
// evolves.
package report

import (
	"fmt"
	"io"

	"github.com/guptarohit/asciigraph"

	"ripples/wave"
)

// Trace records the field energy after each of steps solver steps. The first
// sample is the energy before any step.
func Trace(f *wave.HeightField, steps int) []float64 {
	series := make([]float64, 0, steps+1)
	series = append(series, wave.Energy(f))
	for i := 0; i < steps; i++ {
		wave.Step(f)
		series = append(series, wave.Energy(f))
	}
	return series
}

// Downsample keeps at most n evenly spaced samples, always including the last.
func Downsample(series []float64, n int) []float64 {
	if n <= 0 || len(series) <= n {
		return series
	}
	if n == 1 {
		return series[len(series)-1:]
	}
	out := make([]float64, n)
	last := len(series) - 1
	for i := range out {
		out[i] = series[i*last/(n-1)]
	}
	return out
}

// Write prints a chart of the energy series followed by a one-line summary.
func Write(w io.Writer, series []float64, width, height int) error {
	if len(series) == 0 {
		_, err := fmt.Fprintln(w, "no samples")
		return err
	}
	// asciigraph needs two columns to draw a line.
	width = max(width, 2)
	chart := asciigraph.Plot(Downsample(series, width),
		asciigraph.Height(height),
		asciigraph.Caption("field energy (sum of squared heights)"))
	peak, peakStep := series[0], 0
	for i, v := range series {
		if v > peak {
			peak, peakStep = v, i
		}
	}
	_, err := fmt.Fprintf(w, "%s\n\nsteps %d  initial %.4g  peak %.4g (step %d)  final %.4g\n",
		chart, len(series)-1, series[0], peak, peakStep, series[len(series)-1])
	return err
}
