package layout

import "math"

// Layout describes the physical arrangement of a pixel ring: how many
// pixels, where pixel 0 sits, and which way indices wind. Angles are in
// degrees with 0 at three o'clock, increasing clockwise, matching the arc
// angles produced by the dial.
type Layout struct {
	Pixels    int
	OffsetDeg float64
	Clockwise bool
	Mirror    bool
}

// Count returns the number of pixels on the ring.
func (l Layout) Count() int { return l.Pixels }

// Span maps pixel index -> the angular interval [lo, hi) it covers, with
// lo normalized into [0,360) and hi = lo + step. Mirror flips the ring
// across the vertical axis, for installs viewed from behind or RTL-style
// mirrored dials.
func (l Layout) Span(i int) (float64, float64) {
	step := 360.0 / float64(l.Pixels)
	var lo float64
	if l.Clockwise {
		lo = l.OffsetDeg + float64(i)*step
	} else {
		lo = l.OffsetDeg - float64(i+1)*step
	}
	if l.Mirror {
		lo = 180 - lo - step
	}
	lo = norm(lo)
	return lo, lo + step
}

// norm wraps an angle into [0,360).
func norm(a float64) float64 {
	a = math.Mod(a, 360)
	if a < 0 {
		a += 360
	}
	return a
}
