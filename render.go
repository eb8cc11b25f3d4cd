package main

import (
	"fmt"
	"image"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"ripples/internal/view"
	"ripples/wave"
)

var (
	whiteImage = ebiten.NewImage(3, 3)

	// whiteSubImage is the untextured source for DrawTriangles.
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
)

func init() {
	whiteImage.Fill(color.White)
}

// Draw renders the active view and the status overlay.
func (g *Game) Draw(screen *ebiten.Image) {
	v := g.active()
	v.Draw(screen)
	ebitenutil.DebugPrint(screen, g.statusText(v.Field()))
}

// statusText describes the controls, and in debug mode the frame timing and
// field statistics.
func (g *Game) statusText(f *wave.HeightField) string {
	var b strings.Builder
	c := g.controls
	fmt.Fprintf(&b, "%s view  [Tab] switch  [R] reset  [Space] pause\n", g.mode)
	fmt.Fprintf(&b, "%s %.2f [1/2]  %s %.3f [3/4]  %s %.0f [5/6]  %s %.1f [7/8]\n",
		view.WaveSpeed, c.WaveSpeed, view.Damping, c.Damping,
		view.SplashRadius, c.SplashRadius, view.SplashStrength, c.SplashStrength)
	if g.audioStream != nil {
		p := g.probes[g.mode]
		fmt.Fprintf(&b, "audio probe (%d,%d) [right click]  level %+.3f\n", p.col, p.row, g.audioStream.Level())
	}
	if g.paused {
		b.WriteString("PAUSED\n")
	}
	if !g.settings.Debug {
		return b.String()
	}
	stats := wave.Measure(f)
	fmt.Fprintf(&b, "FPS: %.1f  TPS: %.1f\n", ebiten.ActualFPS(), ebiten.ActualTPS())
	fmt.Fprintf(&b, "Steps/tick: %d (+/-)  Sim: %.2f ms\n", g.stepsPerTick, g.lastSimDuration.Seconds()*1000)
	fmt.Fprintf(&b, "Grid %dx%d %v  energy %.4g  min %.3f  max %.3f\n",
		f.Width(), f.Height(), f.Scheme(), stats.Energy, stats.Min, stats.Max)
	return b.String()
}
