package app

import (
	"context"
	"time"

	"github.com/coreman2200/funtimes-ringdial/internal/config"
	"github.com/coreman2200/funtimes-ringdial/internal/dial"
	"github.com/coreman2200/funtimes-ringdial/internal/layout"
	"github.com/coreman2200/funtimes-ringdial/internal/render"
	"github.com/coreman2200/funtimes-ringdial/internal/ring"
)

// Core wires the dial to the render engine and owns the frame loop.
type Core struct {
	Eng    *render.Engine
	Dial   *dial.Dial
	cancel context.CancelFunc
	done   chan struct{}
}

// InitCore builds the pipeline from config and starts the frame loop.
func InitCore(ctx context.Context, cfg *config.Config, drv render.Driver) (*Core, error) {
	lay := layout.Layout{
		Pixels:    cfg.Pixels,
		OffsetDeg: cfg.Layout.OffsetDeg,
		Clockwise: cfg.Layout.Clockwise,
		Mirror:    cfg.Layout.Mirror,
	}

	fg := render.Color{R: cfg.Fg.R, G: cfg.Fg.G, B: cfg.Fg.B}
	bg := render.Color{R: cfg.Bg.R, G: cfg.Bg.G, B: cfg.Bg.B}
	eng, err := render.NewEngine(lay, drv, fg, bg, cfg.Brightness)
	if err != nil {
		return nil, err
	}
	eng.SetPost(render.PostPipeline{
		Gamma: func(buf []render.Color) { render.GammaCorrect(buf, render.DefaultGamma) },
		Limiter: func(buf []render.Color) {
			render.LimitCurrent(buf, render.Limits{
				BudgetMA: cfg.Power.BudgetMA,
				ChanMA:   cfg.Power.ChanMA,
				Knee:     cfg.Power.Knee,
			})
		},
	})

	d := dial.New(cfg.Dial.Min, cfg.Dial.Max, ring.Config{
		Duration:          time.Duration(cfg.Ring.DurationMs) * time.Millisecond,
		SmallArcThreshold: cfg.Ring.SmallArc,
	})

	fps := cfg.FPS
	if fps <= 0 {
		fps = 60
	}
	dt := time.Second / time.Duration(fps)

	ctx, cancel := context.WithCancel(ctx)
	c := &Core{Eng: eng, Dial: d, cancel: cancel, done: make(chan struct{})}
	go func() {
		defer close(c.done)
		tick := time.NewTicker(dt)
		defer tick.Stop()
		for {
			select {
			case <-ctx.Done():
				d.Stop()
				return
			case <-tick.C:
				d.Tick(dt)
				_ = eng.RenderArc(d.Arc())
			}
		}
	}()
	return c, nil
}

// Close stops the frame loop and waits for it to exit.
func (c *Core) Close() {
	c.cancel()
	<-c.done
}
