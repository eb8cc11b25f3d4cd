package main

import (
	"flag"
	"fmt"

	"ripples/internal/config"
	"ripples/wave"
)

// Command-line flags controlling the starting view, grid sizes, solver and
// optional runtime features.
var (
	// modeFlag selects the view shown at startup.
	modeFlag = flag.String("mode", "2d", "initial view: 2d (point grid) or 3d (mesh)")

	// grid2DFlag and grid3DFlag size the square grids of each view.
	grid2DFlag = flag.Int("grid2d", defaultGrid2D, "cells per side of the point-grid view")
	grid3DFlag = flag.Int("grid3d", defaultGrid3D, "cells per side of the mesh view")

	// schemeFlag picks the update formula for both views.
	schemeFlag = flag.String("scheme", "full", "solver scheme: full (discrete wave equation) or averaging")

	waveSpeedFlag      = flag.Float64("wave-speed", -1, "initial wave speed (default depends on the view)")
	dampingFlag        = flag.Float64("damping", defaultDamping, "initial per-step damping factor")
	splashRadiusFlag   = flag.Float64("splash-radius", defaultSplashRad, "initial splash radius in cells")
	splashStrengthFlag = flag.Float64("splash-strength", defaultSplashStr, "initial splash strength")

	// stepsPerTickFlag sets how many solver steps run per frame.
	stepsPerTickFlag = flag.Int("steps-per-tick", 1, "solver steps per frame")

	// debugFlag enables the FPS and simulation overlay.
	debugFlag = flag.Bool("debug", false, "show FPS and simulation overlay")

	// enableAudioFlag streams the centre cell height as sound.
	enableAudioFlag = flag.Bool("enable-audio", false, "play the centre cell height as an audio probe")

	// recordDefaultPGO captures a CPU profile of the first seconds of the run.
	recordDefaultPGO = flag.Bool("record-default-pgo", false, "capture default.pgo during the first 15s")

	// headlessFlag runs the solver without a window and prints an energy chart.
	headlessFlag      = flag.Bool("headless", false, "run without a window and print the energy curve")
	headlessStepsFlag = flag.Int("headless-steps", 600, "steps to run in headless mode")
)

// loadSettings converts the parsed flags into validated settings.
func loadSettings() (config.Settings, error) {
	s := config.Settings{
		Grid2D:         *grid2DFlag,
		Grid3D:         *grid3DFlag,
		WaveSpeed:      *waveSpeedFlag,
		Damping:        *dampingFlag,
		SplashRadius:   *splashRadiusFlag,
		SplashStrength: *splashStrengthFlag,
		StepsPerTick:   *stepsPerTickFlag,
		Debug:          *debugFlag,
		Audio:          *enableAudioFlag,
		RecordPGO:      *recordDefaultPGO,
		Headless:       *headlessFlag,
		HeadlessSteps:  *headlessStepsFlag,
	}
	mode, err := config.ParseMode(*modeFlag)
	if err != nil {
		return s, fmt.Errorf("-mode: %w", err)
	}
	s.Mode = mode
	scheme, err := wave.ParseScheme(*schemeFlag)
	if err != nil {
		return s, fmt.Errorf("-scheme: %w", err)
	}
	s.Scheme = scheme
	return s, s.Validate()
}
