package main

import (
	"fmt"
	"io"

	"ripples/internal/config"
	"ripples/internal/report"
	"ripples/wave"
)

// runHeadless splashes the centre of a point-grid sized field, runs the solver
// without a window and prints the energy curve to w.
func runHeadless(w io.Writer, s config.Settings) error {
	f, err := wave.NewHeightField(s.Grid2D, s.Grid2D, s.Scheme)
	if err != nil {
		return err
	}
	controls := s.StartControls(defaultWaveSpeed2D)
	controls.Apply(f)
	if err := controls.Splash(f, s.Grid2D/2, s.Grid2D/2); err != nil {
		return fmt.Errorf("initial splash: %w", err)
	}
	fmt.Fprintf(w, "%dx%d %v scheme, wave speed %.3g, damping %.4g\n",
		f.Width(), f.Height(), f.Scheme(), controls.WaveSpeed, controls.Damping)
	series := report.Trace(f, s.HeadlessSteps)
	return report.Write(w, report.Downsample(series, headlessChartWidth), headlessChartWidth, headlessChartHeight)
}
