package main

import (
	"log"
	"os"
	"runtime/pprof"
	"sync"
	"time"
)

// startDefaultPGORecording writes a CPU profile to path and stops on its own
// after d. The returned stop func may be called earlier; extra calls are no-ops.
func startDefaultPGORecording(path string, d time.Duration) (func(), error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	if err := pprof.StartCPUProfile(f); err != nil {
		f.Close()
		return nil, err
	}
	var once sync.Once
	stop := func() {
		once.Do(func() {
			pprof.StopCPUProfile()
			if err := f.Close(); err != nil {
				log.Printf("Closing %s: %v", path, err)
				return
			}
			log.Printf("Wrote CPU profile to %s", path)
		})
	}
	time.AfterFunc(d, stop)
	return stop, nil
}
