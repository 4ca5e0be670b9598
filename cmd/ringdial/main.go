package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"time"

	"github.com/coreman2200/funtimes-ringdial/internal/app"
	"github.com/coreman2200/funtimes-ringdial/internal/config"
	"github.com/coreman2200/funtimes-ringdial/internal/driver/fake"
	"github.com/coreman2200/funtimes-ringdial/internal/led"
	"github.com/coreman2200/funtimes-ringdial/internal/render"
	"github.com/coreman2200/funtimes-ringdial/internal/selftest"
)

func main() {
	var (
		configPath = flag.String("config", "", "path to config.yaml (defaults built in)")
		driver     = flag.String("driver", "", "override driver: spi | fake")
		pixels     = flag.Int("pixels", 0, "override LED count")
		fps        = flag.Int("fps", 0, "override frames per second")
		brightness = flag.Float64("brightness", 0, "override global brightness 0..1")
		test       = flag.String("selftest", "", "run a wiring pattern and exit: index_sweep | rgb_channels | full_on")
		demo       = flag.Bool("demo", false, "run a scripted progress demo")
	)
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		c, err := config.Load(*configPath)
		if err != nil {
			log.Fatalf("config: %v", err)
		}
		cfg = c
	}
	if *driver != "" {
		cfg.Driver = *driver
	}
	if *pixels > 0 {
		cfg.Pixels = *pixels
	}
	if *fps > 0 {
		cfg.FPS = *fps
	}
	if *brightness > 0 {
		cfg.Brightness = *brightness
	}

	drv, cleanup := openDriver(cfg)
	defer cleanup()

	if *test != "" {
		runSelftest(cfg, drv, selftest.Kind(*test))
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	core, err := app.InitCore(ctx, cfg, drv)
	if err != nil {
		log.Fatal(err)
	}

	if *demo {
		go runDemo(core)
	}

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt)
	s := <-sig
	fmt.Printf("Got %s signal. Aborting...\n", s)
	cancel()
	core.Close()
}

func openDriver(cfg *config.Config) (render.Driver, func()) {
	switch cfg.Driver {
	case "fake":
		return &fake.Driver{}, func() {}
	default:
		strip, err := led.Open(cfg.SPI.Dev, cfg.SPI.SpeedKHz, cfg.Pixels)
		if err != nil {
			log.Fatalf("led: %v", err)
		}
		return strip, func() { strip.Close() }
	}
}

func runSelftest(cfg *config.Config, drv render.Driver, kind selftest.Kind) {
	r := selftest.NewRunner(kind)
	buf := make([]render.Color, cfg.Pixels)
	for r.Step(buf) {
		if err := drv.Write(buf); err != nil {
			log.Fatalf("selftest: %v", err)
		}
		time.Sleep(150 * time.Millisecond)
	}
}

// runDemo exercises the dial from off the frame loop: warm up
// indeterminate, step through determinate values, then hand back.
func runDemo(core *app.Core) {
	time.Sleep(3 * time.Second)
	for p := 10; p <= 100; p += 10 {
		core.Dial.SetProgress(p)
		time.Sleep(800 * time.Millisecond)
	}
	time.Sleep(2 * time.Second)
	core.Dial.SetIndeterminate(true)
}
