package config

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ripples/internal/view"
	"ripples/wave"
)

func validSettings() Settings {
	return Settings{
		Mode:           ModePoints,
		Grid2D:         250,
		Grid3D:         150,
		Scheme:         wave.FullWaveEquation,
		WaveSpeed:      -1,
		Damping:        0.99,
		SplashRadius:   2,
		SplashStrength: 3,
		StepsPerTick:   1,
		HeadlessSteps:  600,
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Settings)
		ok     bool
	}{
		{"defaults", func(*Settings) {}, true},
		{"minimum grid", func(s *Settings) { s.Grid2D, s.Grid3D = 3, 3 }, true},
		{"small 2d grid", func(s *Settings) { s.Grid2D = 2 }, false},
		{"small 3d grid", func(s *Settings) { s.Grid3D = 0 }, false},
		{"zero steps per tick", func(s *Settings) { s.StepsPerTick = 0 }, false},
		{"too many steps per tick", func(s *Settings) { s.StepsPerTick = MaxStepsPerTick + 1 }, false},
		{"max steps per tick", func(s *Settings) { s.StepsPerTick = MaxStepsPerTick }, true},
		{"no headless steps", func(s *Settings) { s.HeadlessSteps = 0 }, false},
		{"explicit wave speed", func(s *Settings) { s.WaveSpeed = 0.2 }, true},
		{"wave speed above slider", func(s *Settings) { s.WaveSpeed = 0.7 }, false},
		{"damping below slider", func(s *Settings) { s.Damping = 0.5 }, false},
		{"damping NaN", func(s *Settings) { s.Damping = math.NaN() }, false},
		{"huge splash radius", func(s *Settings) { s.SplashRadius = 1e9 }, false},
		{"NaN splash radius", func(s *Settings) { s.SplashRadius = math.NaN() }, false},
		{"negative splash radius", func(s *Settings) { s.SplashRadius = -1 }, false},
		{"max splash radius", func(s *Settings) { s.SplashRadius = 10 }, true},
		{"strength above slider", func(s *Settings) { s.SplashStrength = 6 }, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := validSettings()
			tt.modify(&s)
			err := s.Validate()
			if tt.ok {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, ErrInvalidSettings)
		})
	}
}

func TestValidateReportsControl(t *testing.T) {
	s := validSettings()
	s.SplashRadius = math.NaN()
	err := s.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, wave.ErrInvalidParameter)
	assert.Contains(t, err.Error(), "splash radius")
}

func TestParseMode(t *testing.T) {
	m, err := ParseMode("2d")
	require.NoError(t, err)
	assert.Equal(t, ModePoints, m)

	m, err = ParseMode("3d")
	require.NoError(t, err)
	assert.Equal(t, ModeMesh, m)
	assert.Equal(t, "3d", m.String())

	_, err = ParseMode("4d")
	assert.ErrorIs(t, err, ErrInvalidSettings)
}

func TestStartControls(t *testing.T) {
	s := validSettings()
	assert.Equal(t, view.Controls{
		WaveSpeed:      0.35,
		Damping:        0.99,
		SplashRadius:   2,
		SplashStrength: 3,
	}, s.StartControls(0.35))

	s.WaveSpeed = 0.1
	assert.Equal(t, 0.1, s.StartControls(0.5).WaveSpeed)
}
