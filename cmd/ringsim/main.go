package main

import (
	"flag"
	"fmt"
	"time"

	"github.com/coreman2200/funtimes-ringdial/internal/ring"
)

// Headless simulator for the ring engine: runs a scripted sequence of mode
// and progress changes at a fixed frame rate and prints the angles each
// frame, for eyeballing plans without hardware.

type event struct {
	atS      float64
	describe string
	apply    func(a *ring.Animator)
}

func main() {
	var (
		fps      = flag.Int("fps", 30, "simulation frames per second")
		duration = flag.Int("duration-ms", 1333, "base cadence in ms")
		smallArc = flag.Float64("small-arc", ring.DefaultSmallArcThreshold, "indeterminate small-arc threshold")
		quiet    = flag.Bool("quiet", false, "only print script events")
	)
	flag.Parse()

	a := ring.NewAnimator(ring.Config{
		Duration:          time.Duration(*duration) * time.Millisecond,
		SmallArcThreshold: *smallArc,
	})

	script := []event{
		{2.0, "progress 0.25", func(a *ring.Animator) { a.SetProgress(0.25) }},
		{4.0, "progress 0.6", func(a *ring.Animator) { a.SetProgress(0.6) }},
		{6.0, "progress 1.0", func(a *ring.Animator) { a.SetProgress(1.0) }},
		{8.0, "indeterminate", func(a *ring.Animator) { a.SetIndeterminate(true) }},
		{12.0, "stop", func(a *ring.Animator) { a.Stop() }},
	}

	dt := time.Second / time.Duration(*fps)
	now := 0.0
	for frame := 0; ; frame++ {
		for len(script) > 0 && now >= script[0].atS {
			fmt.Printf("[t=%5.2fs] %s\n", now, script[0].describe)
			script[0].apply(a)
			script = script[1:]
		}
		if len(script) == 0 && !a.IsRunning() {
			fmt.Println("Done at t=", now)
			return
		}

		a.Tick(dt)
		if !*quiet {
			s, e := a.Angles()
			fmt.Printf("[frame %04d] start=%.4f end=%.4f span=%.4f\n", frame, s, e, e-s)
		}
		now += dt.Seconds()
	}
}
