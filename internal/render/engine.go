package render

import (
	"errors"
	"math"
	"time"

	"github.com/coreman2200/funtimes-ringdial/internal/layout"
)

// Engine turns an arc (startAngle + sweepAngle, degrees) into a frame for a
// pixel ring, applies post-processing, then writes to the driver. Pixels at
// the arc's head and tail get fractional coverage so motion stays smooth at
// LED resolution.
type Engine struct {
	Lay layout.Layout
	Drv Driver

	Fg         Color
	Bg         Color
	Brightness float64

	Out []Color

	post PostPipeline

	// metrics (last durations in ms)
	Last struct {
		RenderMS float64
		TotalMS  float64
	}
}

// PostPipeline groups post stages; all are optional.
type PostPipeline struct {
	Gamma   func([]Color)
	Limiter func([]Color)
}

// NewEngine allocates the frame buffer and returns an Engine with the
// default post pipeline wired.
func NewEngine(lay layout.Layout, drv Driver, fg, bg Color, brightness float64) (*Engine, error) {
	if lay.Pixels <= 0 {
		return nil, errors.New("layout has no pixels")
	}
	if brightness <= 0 || brightness > 1 {
		brightness = 1
	}
	e := &Engine{
		Lay:        lay,
		Drv:        drv,
		Fg:         fg,
		Bg:         bg,
		Brightness: brightness,
		Out:        make([]Color, lay.Pixels),
		post: PostPipeline{
			Gamma:   func(buf []Color) { GammaCorrect(buf, DefaultGamma) },
			Limiter: func(buf []Color) { LimitCurrent(buf, DefaultLimits()) },
		},
	}
	return e, nil
}

// SetPost replaces the post pipeline.
func (e *Engine) SetPost(p PostPipeline) { e.post = p }

// RenderArc paints the arc onto the ring and writes the frame. startDeg and
// sweepDeg follow the dial convention: degrees, 0 at three o'clock,
// clockwise positive.
func (e *Engine) RenderArc(startDeg, sweepDeg float64) error {
	start := time.Now()

	for i := 0; i < e.Lay.Pixels; i++ {
		lo, hi := e.Lay.Span(i)
		cov := Coverage(startDeg, sweepDeg, lo, hi-lo)
		e.Out[i] = Scale(Mix(e.Bg, e.Fg, cov), e.Brightness)
	}

	if e.post.Gamma != nil {
		e.post.Gamma(e.Out)
	}
	if e.post.Limiter != nil {
		e.post.Limiter(e.Out)
	}

	if e.Drv != nil {
		if err := e.Drv.Write(e.Out); err != nil {
			return err
		}
	}

	e.Last.RenderMS = float64(time.Since(start).Microseconds()) / 1000.0
	e.Last.TotalMS = e.Last.RenderMS
	return nil
}

// Coverage returns the fraction of a pixel's angular span [pxLo, pxLo+pxLen)
// covered by the arc [arcLo, arcLo+arcLen), wrap-around correct. arcLen at
// or beyond a full circle covers everything.
func Coverage(arcLo, arcLen, pxLo, pxLen float64) float64 {
	if arcLen <= 0 || pxLen <= 0 {
		return 0
	}
	if arcLen >= 360 {
		return 1
	}
	// Shift so the pixel starts at 0; the arc then occupies [d, d+arcLen)
	// on the circle.
	d := math.Mod(arcLo-pxLo, 360)
	if d < 0 {
		d += 360
	}
	v := 0.0
	end := d + arcLen
	if d < pxLen {
		v += math.Min(math.Min(end, 360), pxLen) - d
	}
	if end > 360 {
		v += math.Min(end-360, pxLen)
	}
	return v / pxLen
}
