package main

import (
	"flag"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	flag.Parse()
	s, err := loadSettings()
	if err != nil {
		log.Fatalf("Invalid flags: %v", err)
	}

	if s.Headless {
		if err := runHeadless(os.Stdout, s); err != nil {
			log.Fatalf("Headless run failed: %v", err)
		}
		return
	}

	if s.RecordPGO {
		stop, err := startDefaultPGORecording("default.pgo", pgoRecordDuration)
		if err != nil {
			log.Printf("PGO recording disabled: %v", err)
		} else {
			defer stop()
		}
	}

	g, err := newGame(s)
	if err != nil {
		log.Fatalf("Startup failed: %v", err)
	}
	ebiten.SetWindowSize(screenW*windowScale, screenH*windowScale)
	ebiten.SetWindowTitle("Ripples")
	ebiten.SetTPS(defaultTPS)
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
