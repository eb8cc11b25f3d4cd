package main

import (
	"log"

	"ripples/wave"
)

// stepField pushes the current controls into f and runs this tick's steps.
func (g *Game) stepField(f *wave.HeightField) {
	g.controls.Apply(f)
	wave.StepN(f, g.stepsPerTick)
}

// splash injects a ripple at a grid cell using the current splash controls.
// A rejected splash leaves the field untouched and is only logged.
func (g *Game) splash(f *wave.HeightField, col, row int) {
	if err := g.controls.Splash(f, col, row); err != nil {
		log.Printf("Splash at (%d,%d) ignored: %v", col, row, err)
	}
}

// moveProbe points the audio probe of the active view at a grid cell.
func (g *Game) moveProbe(col, row int) {
	g.probes[g.mode] = cell{col, row}
	if g.audioStream != nil {
		log.Printf("Audio probe moved to (%d,%d)", col, row)
	}
}
