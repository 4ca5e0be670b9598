package render

import "math"

// DefaultGamma is the output gamma applied before driving the strip.
const DefaultGamma = 2.2

// Limits bounds the supply current drawn by a frame.
type Limits struct {
	BudgetMA float64 // global budget in mA; 0 disables the limiter
	ChanMA   float64 // mA per color channel at full scale; WS2812 ~ 20
	Knee     float64 // fraction of budget where soft limiting begins
}

// DefaultLimits returns limiter settings suitable for a small USB-powered
// ring.
func DefaultLimits() Limits {
	return Limits{BudgetMA: 500, ChanMA: 20, Knee: 0.9}
}

// GammaCorrect applies an output gamma in place.
func GammaCorrect(buf []Color, gamma float64) {
	if gamma <= 0 || gamma == 1 {
		return
	}
	ig := 1.0 / gamma
	for i := range buf {
		buf[i].R = powf(clamp01(buf[i].R), ig)
		buf[i].G = powf(clamp01(buf[i].G), ig)
		buf[i].B = powf(clamp01(buf[i].B), ig)
	}
}

// LimitCurrent estimates the frame's supply current and scales it to stay
// under the budget. Scaling is gentle above Knee*budget and hard above the
// budget itself.
func LimitCurrent(buf []Color, lim Limits) {
	if lim.BudgetMA <= 0 {
		return
	}
	chanmA := lim.ChanMA
	if chanmA <= 0 {
		chanmA = 20
	}
	knee := lim.Knee
	if knee <= 0 || knee >= 1 {
		knee = 0.9
	}

	var total float64
	cm := float32(chanmA)
	for i := range buf {
		total += float64((buf[i].R + buf[i].G + buf[i].B) * cm)
	}
	if total <= 0 {
		return
	}

	ratio := total / lim.BudgetMA
	if ratio <= knee {
		return
	}
	if ratio <= 1.0 {
		// Between knee and budget: ease toward the full correction.
		minS := lim.BudgetMA / total
		t := (ratio - knee) / (1.0 - knee)
		applyGlobalScale(buf, float32(1.0-t*(1.0-minS)))
		return
	}
	applyGlobalScale(buf, float32(lim.BudgetMA/total))
}

func applyGlobalScale(buf []Color, s float32) {
	if s >= 1.0 {
		return
	}
	for i := range buf {
		buf[i].R *= s
		buf[i].G *= s
		buf[i].B *= s
	}
}

func clamp01(x float32) float32 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

func powf(x float32, p float64) float32 {
	return float32(math.Pow(float64(x), p))
}
