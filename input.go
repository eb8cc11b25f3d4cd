package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"ripples/internal/config"
	"ripples/internal/view"
)

// controlKeys maps decrement/increment key pairs to the control they adjust.
var controlKeys = []struct {
	down, up ebiten.Key
	control  view.Control
}{
	{ebiten.Key1, ebiten.Key2, view.WaveSpeed},
	{ebiten.Key3, ebiten.Key4, view.Damping},
	{ebiten.Key5, ebiten.Key6, view.SplashRadius},
	{ebiten.Key7, ebiten.Key8, view.SplashStrength},
}

// handleKeys processes the global hotkeys: mode switch, reset, pause and the
// control adjustments.
func (g *Game) handleKeys() {
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		g.switchMode()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.reset()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	for _, k := range controlKeys {
		if inpututil.IsKeyJustPressed(k.down) {
			g.controls.Nudge(k.control, -1)
		}
		if inpututil.IsKeyJustPressed(k.up) {
			g.controls.Nudge(k.control, 1)
		}
	}
}

// handlePointer turns fresh left clicks and touches into splashes on the
// active view and right clicks into probe moves. Presses that miss the water
// are ignored.
func (g *Game) handlePointer(v presenter) {
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		if col, row, ok := v.Pick(x, y); ok {
			g.splash(v.Field(), col, row)
		}
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		x, y := ebiten.CursorPosition()
		if col, row, ok := v.Pick(x, y); ok {
			g.moveProbe(col, row)
		}
	}
	g.touchIDs = inpututil.AppendJustPressedTouchIDs(g.touchIDs[:0])
	for _, id := range g.touchIDs {
		x, y := ebiten.TouchPosition(id)
		if col, row, ok := v.Pick(x, y); ok {
			g.splash(v.Field(), col, row)
		}
	}
}

// handleDebugControls processes debug overlay hotkeys.
func (g *Game) handleDebugControls() {
	if !g.settings.Debug {
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) || inpututil.IsKeyJustPressed(ebiten.KeyKPSubtract) {
		g.adjustStepsPerTick(-stepsPerTickStep)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) || inpututil.IsKeyJustPressed(ebiten.KeyKPAdd) {
		g.adjustStepsPerTick(stepsPerTickStep)
	}
}

// adjustStepsPerTick clamps the per-frame step count delta within bounds.
func (g *Game) adjustStepsPerTick(delta int) {
	g.stepsPerTick += delta
	if g.stepsPerTick < config.MinStepsPerTick {
		g.stepsPerTick = config.MinStepsPerTick
	} else if g.stepsPerTick > config.MaxStepsPerTick {
		g.stepsPerTick = config.MaxStepsPerTick
	}
}
