package main

import "time"

// Display, simulation and audio constants. Grid sizes and starting
// coefficients can be overridden from the command line; see flags.go.
const (
	screenW, screenH = 800, 800
	windowScale      = 1
	defaultTPS       = 60

	defaultGrid2D      = 250
	defaultGrid3D      = 150
	defaultWaveSpeed2D = 0.5
	defaultWaveSpeed3D = 0.35
	defaultDamping     = 0.99
	defaultSplashRad   = 2
	defaultSplashStr   = 3.0

	stepsPerTickStep = 1

	meshSize        = 15.0
	meshHeightScale = 2.0
	cameraFovDeg    = 60
	orbitStep       = 0.03 // radians per tick while an arrow key is held
	zoomStep        = 1.02

	headlessChartWidth  = 72
	headlessChartHeight = 12

	pgoRecordDuration        = 15 * time.Second
	audioSampleRate          = 48000
	audioPlayerBufferLatency = 40 * time.Millisecond
	probeRadius              = 1 // cells around the probe averaged into the audio level
)
