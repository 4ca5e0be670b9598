package render

import (
	"testing"

	"github.com/coreman2200/funtimes-ringdial/internal/layout"
)

// fakeDriver captures the last frame written.
type fakeDriver struct {
	last []Color
}

func (d *fakeDriver) Write(buf []Color) error {
	d.last = make([]Color, len(buf))
	copy(d.last, buf)
	return nil
}

func TestCoverage(t *testing.T) {
	cases := []struct {
		arcLo, arcLen, pxLo, pxLen, want float64
	}{
		{0, 90, 0, 30, 1},      // pixel fully inside the arc
		{0, 90, 90, 30, 0},     // pixel just past the arc
		{0, 15, 0, 30, 0.5},    // arc covers half the pixel
		{350, 20, 350, 10, 1},  // arc wraps, pixel before the seam
		{350, 20, 0, 10, 1},    // arc wraps, pixel after the seam
		{350, 20, 5, 10, 0.5},  // arc tail ends mid-pixel
		{-90, 180, 270, 90, 1}, // negative arc start
		{0, 360, 123, 30, 1},   // full circle
		{0, 0, 0, 30, 0},       // empty arc
	}
	for _, c := range cases {
		got := Coverage(c.arcLo, c.arcLen, c.pxLo, c.pxLen)
		if got < c.want-1e-9 || got > c.want+1e-9 {
			t.Fatalf("Coverage(%v,%v,%v,%v) = %v, want %v", c.arcLo, c.arcLen, c.pxLo, c.pxLen, got, c.want)
		}
	}
}

func newTestEngine(t *testing.T, lay layout.Layout, drv Driver) *Engine {
	t.Helper()
	e, err := NewEngine(lay, drv, Color{1, 1, 1}, Color{}, 1)
	if err != nil {
		t.Fatalf("engine: %v", err)
	}
	// Disable post for deterministic values.
	e.SetPost(PostPipeline{})
	return e
}

func TestRenderArcHalfRing(t *testing.T) {
	drv := &fakeDriver{}
	lay := layout.Layout{Pixels: 4, OffsetDeg: -90, Clockwise: true}
	e := newTestEngine(t, lay, drv)

	// Top half: noon clockwise to the bottom.
	if err := e.RenderArc(-90, 180); err != nil {
		t.Fatalf("render: %v", err)
	}
	want := []float32{1, 1, 0, 0}
	for i, w := range want {
		if drv.last[i].R != w {
			t.Fatalf("pixel %d: got %v, want %v", i, drv.last[i].R, w)
		}
	}
}

func TestRenderArcMirrored(t *testing.T) {
	drv := &fakeDriver{}
	lay := layout.Layout{Pixels: 4, OffsetDeg: -90, Clockwise: true, Mirror: true}
	e := newTestEngine(t, lay, drv)

	if err := e.RenderArc(-90, 180); err != nil {
		t.Fatalf("render: %v", err)
	}
	want := []float32{0, 0, 1, 1}
	for i, w := range want {
		if drv.last[i].R != w {
			t.Fatalf("mirrored pixel %d: got %v, want %v", i, drv.last[i].R, w)
		}
	}
}

func TestRenderArcFullCircle(t *testing.T) {
	drv := &fakeDriver{}
	e := newTestEngine(t, layout.Layout{Pixels: 8, Clockwise: true}, drv)
	if err := e.RenderArc(-90, 360); err != nil {
		t.Fatalf("render: %v", err)
	}
	for i := range drv.last {
		if drv.last[i].R != 1 {
			t.Fatalf("pixel %d should be fully lit, got %v", i, drv.last[i].R)
		}
	}
}

func TestGammaCorrect(t *testing.T) {
	buf := []Color{{0.5, 0.5, 0.5}}
	GammaCorrect(buf, 2.2)
	if buf[0].R < 0.72 || buf[0].R > 0.74 {
		t.Fatalf("expected ~0.73 after gamma, got %v", buf[0].R)
	}
}

func TestLimitCurrentBudget(t *testing.T) {
	// 10 white pixels at 20mA/channel = 600mA, over a 300mA budget.
	buf := make([]Color, 10)
	for i := range buf {
		buf[i] = Color{1, 1, 1}
	}
	LimitCurrent(buf, Limits{BudgetMA: 300, ChanMA: 20, Knee: 0.9})
	var total float64
	for i := range buf {
		total += float64((buf[i].R + buf[i].G + buf[i].B) * 20)
	}
	if total > 300.5 {
		t.Fatalf("limiter left %vmA on a 300mA budget", total)
	}
	if buf[0].R < 0.49 || buf[0].R > 0.51 {
		t.Fatalf("expected uniform halving, got %v", buf[0].R)
	}
}

func TestLimitCurrentUnderKnee(t *testing.T) {
	buf := []Color{{0.1, 0.1, 0.1}}
	LimitCurrent(buf, Limits{BudgetMA: 500, ChanMA: 20, Knee: 0.9})
	if buf[0].R != 0.1 {
		t.Fatalf("limiter must not touch frames under the knee, got %v", buf[0].R)
	}
}
