// Package config holds the validated start-up settings of the visualizer.
// Flag parsing stays in the main package; everything here is plain data so it
// can be checked without opening a window.
package config

import (
	"errors"
	"fmt"

	"ripples/internal/view"
	"ripples/wave"
)

// Steps-per-tick bounds for the driver loop.
const (
	MinStepsPerTick = 1
	MaxStepsPerTick = 32
)

// ErrInvalidSettings is wrapped by every validation failure.
var ErrInvalidSettings = errors.New("config: invalid settings")

// Mode identifies one of the two presentations.
type Mode int

const (
	ModePoints Mode = iota
	ModeMesh
)

func (m Mode) String() string {
	if m == ModeMesh {
		return "3d"
	}
	return "2d"
}

// ParseMode maps a -mode value to its Mode.
func ParseMode(name string) (Mode, error) {
	switch name {
	case "2d":
		return ModePoints, nil
	case "3d":
		return ModeMesh, nil
	}
	return 0, fmt.Errorf("unknown mode %q (want 2d or 3d): %w", name, ErrInvalidSettings)
}

// Settings is the validated form of the command line.
type Settings struct {
	Mode           Mode
	Grid2D, Grid3D int
	Scheme         wave.Scheme
	WaveSpeed      float64 // negative selects the per-view default
	Damping        float64
	SplashRadius   float64
	SplashStrength float64
	StepsPerTick   int
	Debug          bool
	Audio          bool
	RecordPGO      bool
	Headless       bool
	HeadlessSteps  int
}

// Validate checks grid sizes, loop bounds and that the starting controls lie
// within their slider ranges.
func (s Settings) Validate() error {
	if s.Grid2D < wave.MinSize || s.Grid3D < wave.MinSize {
		return fmt.Errorf("grid sizes %d and %d, need at least %d: %w",
			s.Grid2D, s.Grid3D, wave.MinSize, ErrInvalidSettings)
	}
	if s.StepsPerTick < MinStepsPerTick || s.StepsPerTick > MaxStepsPerTick {
		return fmt.Errorf("steps per tick %d outside [%d,%d]: %w",
			s.StepsPerTick, MinStepsPerTick, MaxStepsPerTick, ErrInvalidSettings)
	}
	if s.HeadlessSteps < 1 {
		return fmt.Errorf("headless steps %d must be positive: %w", s.HeadlessSteps, ErrInvalidSettings)
	}
	// Any in-range view default works here; only an explicit speed can fail.
	if err := s.StartControls(0).Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidSettings, err)
	}
	return nil
}

// StartControls returns the control values a view starts with.
func (s Settings) StartControls(viewDefaultSpeed float64) view.Controls {
	speed := s.WaveSpeed
	if speed < 0 {
		speed = viewDefaultSpeed
	}
	return view.Controls{
		WaveSpeed:      speed,
		Damping:        s.Damping,
		SplashRadius:   s.SplashRadius,
		SplashStrength: s.SplashStrength,
	}
}
