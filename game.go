package main

import (
	"fmt"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"

	"ripples/internal/config"
	"ripples/internal/probe"
	"ripples/internal/view"
	"ripples/wave"
)

// presenter is one of the two interchangeable views. Each owns its own field;
// the Game drives whichever is active.
type presenter interface {
	Field() *wave.HeightField
	// HandleInput processes view-specific controls such as camera keys.
	HandleInput()
	// Pick maps a screen position to a grid cell.
	Pick(x, y int) (col, row int, ok bool)
	Draw(screen *ebiten.Image)
}

// Game holds both views, the shared controls, and the optional audio probe.
type Game struct {
	settings config.Settings
	controls view.Controls

	mode   config.Mode
	views  [2]presenter
	paused bool

	stepsPerTick    int
	lastSimDuration time.Duration
	touchIDs        []ebiten.TouchID

	// probes holds each view's listening cell, moved with the right button.
	probes      [2]cell
	audioCtx    *audio.Context
	audioStream *probe.Stream
	audioPlayer *audio.Player
}

// cell is a grid position.
type cell struct{ col, row int }

// newGame constructs a fully initialized Game instance.
func newGame(s config.Settings) (*Game, error) {
	points, err := newPointsView(s.Grid2D, s.Grid2D, s.Scheme)
	if err != nil {
		return nil, fmt.Errorf("point-grid view: %w", err)
	}
	mesh, err := newMeshView(s.Grid3D, s.Grid3D, s.Scheme)
	if err != nil {
		return nil, fmt.Errorf("mesh view: %w", err)
	}
	speed := defaultWaveSpeed2D
	if s.Mode == config.ModeMesh {
		speed = defaultWaveSpeed3D
	}
	g := &Game{
		settings:     s,
		controls:     s.StartControls(speed),
		mode:         s.Mode,
		views:        [2]presenter{config.ModePoints: points, config.ModeMesh: mesh},
		stepsPerTick: s.StepsPerTick,
		probes: [2]cell{
			config.ModePoints: {s.Grid2D / 2, s.Grid2D / 2},
			config.ModeMesh:   {s.Grid3D / 2, s.Grid3D / 2},
		},
	}
	for _, v := range g.views {
		g.controls.Apply(v.Field())
	}
	if s.Audio {
		g.startAudio()
	}
	log.Printf("Starting %s view (%dx%d, %v scheme)", g.mode,
		g.active().Field().Width(), g.active().Field().Height(), s.Scheme)
	return g, nil
}

// startAudio opens the audio probe; failures only disable audio.
func (g *Game) startAudio() {
	ctx := audio.NewContext(audioSampleRate)
	g.audioCtx = ctx
	stream := probe.NewStream()
	g.audioStream = stream
	player, err := ctx.NewPlayer(stream)
	if err != nil {
		log.Printf("Audio player creation failed: %v", err)
		return
	}
	g.audioPlayer = player
	g.audioPlayer.SetBufferSize(audioPlayerBufferLatency)
	g.audioPlayer.Play()
}

func (g *Game) active() presenter {
	return g.views[g.mode]
}

// Update handles input and advances the active view's simulation by one tick.
func (g *Game) Update() error {
	g.handleKeys()
	g.handleDebugControls()

	v := g.active()
	v.HandleInput()
	g.handlePointer(v)

	if !g.paused {
		simStart := time.Now()
		g.stepField(v.Field())
		g.lastSimDuration = time.Since(simStart)
	}
	if g.audioStream != nil {
		p := g.probes[g.mode]
		g.audioStream.Push(probe.Sample(v.Field(), p.col, p.row, probeRadius))
	}
	return nil
}

// switchMode stops the active view and starts the other one. The stopped view
// keeps its field untouched until it becomes active again.
func (g *Game) switchMode() {
	if g.mode == config.ModePoints {
		g.mode = config.ModeMesh
	} else {
		g.mode = config.ModePoints
	}
	log.Printf("Switched to %s view", g.mode)
}

// reset restores the default controls and flattens both views.
func (g *Game) reset() {
	g.controls = view.ResetControls
	for _, v := range g.views {
		v.Field().Reset(g.controls.Params())
	}
	log.Printf("Simulation reset (wave speed %.2f, damping %.3f)", g.controls.WaveSpeed, g.controls.Damping)
}

// Layout reports the logical screen size used by Ebiten.
func (g *Game) Layout(_, _ int) (int, int) { return screenW, screenH }
