package view

import (
	"fmt"
	"math"

	"ripples/wave"
)

// Control identifies one adjustable simulation setting.
type Control int

const (
	WaveSpeed Control = iota
	Damping
	SplashRadius
	SplashStrength
	numControls
)

// controlRange mirrors a slider: inclusive bounds and increment.
type controlRange struct {
	name          string
	min, max, inc float64
}

var controlRanges = [numControls]controlRange{
	WaveSpeed:      {"wave speed", 0, 0.5, 0.01},
	Damping:        {"damping", 0.9, 1, 0.001},
	SplashRadius:   {"splash radius", 0, 10, 1},
	SplashStrength: {"splash strength", 0, 5, 0.1},
}

// String returns the label shown in the overlay.
func (c Control) String() string {
	if c < 0 || c >= numControls {
		return fmt.Sprintf("Control(%d)", int(c))
	}
	return controlRanges[c].name
}

// Controls holds the values the user can tune while the simulation runs.
type Controls struct {
	WaveSpeed      float64
	Damping        float64
	SplashRadius   float64
	SplashStrength float64
}

// ResetControls are the values restored by a reset.
var ResetControls = Controls{
	WaveSpeed:      0.35,
	Damping:        0.99,
	SplashRadius:   2,
	SplashStrength: 1.0,
}

func (c *Controls) ptr(which Control) *float64 {
	switch which {
	case WaveSpeed:
		return &c.WaveSpeed
	case Damping:
		return &c.Damping
	case SplashRadius:
		return &c.SplashRadius
	case SplashStrength:
		return &c.SplashStrength
	}
	return nil
}

// Get returns the value of one control.
func (c *Controls) Get(which Control) float64 {
	if p := c.ptr(which); p != nil {
		return *p
	}
	return 0
}

// Nudge moves a control by steps increments, clamped to its slider range and
// snapped to the increment.
func (c *Controls) Nudge(which Control, steps int) {
	p := c.ptr(which)
	if p == nil {
		return
	}
	r := controlRanges[which]
	v := *p + float64(steps)*r.inc
	v = math.Round(v/r.inc) * r.inc
	*p = clampFloat(v, r.min, r.max)
}

// Validate reports the first control outside its slider range. NaN values
// are always out of range.
func (c Controls) Validate() error {
	for which := WaveSpeed; which < numControls; which++ {
		r := controlRanges[which]
		v := c.Get(which)
		if !(v >= r.min && v <= r.max) {
			return fmt.Errorf("%s %v outside [%v,%v]: %w", which, v, r.min, r.max, wave.ErrInvalidParameter)
		}
	}
	return nil
}

// Params returns the solver coefficients.
func (c Controls) Params() wave.Params {
	return wave.Params{WaveSpeed: c.WaveSpeed, Damping: c.Damping}
}

// Apply pushes the coefficients into f before a step.
func (c Controls) Apply(f *wave.HeightField) {
	f.SetParameters(c.WaveSpeed, c.Damping)
}

// Splash injects a ripple at (col, row) using the current splash settings.
func (c Controls) Splash(f *wave.HeightField, col, row int) error {
	return wave.Inject(f, col, row, c.SplashRadius, c.SplashStrength)
}
