package selftest

import "github.com/coreman2200/funtimes-ringdial/internal/render"

type Kind string

const (
	None        Kind = ""
	IndexSweep  Kind = "index_sweep"
	RGBChannels Kind = "rgb_channels"
	FullOn      Kind = "full_on"
)

// Runner steps hardware bring-up patterns on a ring, for verifying wiring
// and pixel order before running the dial.
type Runner struct {
	plan Kind
	step int
}

func NewRunner(plan Kind) *Runner { return &Runner{plan: plan} }

func (r *Runner) Kind() Kind { return r.plan }

// Step fills buf with the next pattern frame; returns false when complete.
func (r *Runner) Step(buf []render.Color) bool {
	n := len(buf)
	for i := 0; i < n; i++ {
		buf[i] = render.Color{}
	}

	switch r.plan {
	case IndexSweep:
		if r.step >= n {
			return false
		}
		buf[r.step] = render.Color{R: 1, G: 1, B: 1}
	case RGBChannels:
		if r.step >= 3 {
			return false
		}
		for i := 0; i < n; i++ {
			switch r.step {
			case 0:
				buf[i].R = 1
			case 1:
				buf[i].G = 1
			case 2:
				buf[i].B = 1
			}
		}
	case FullOn:
		if r.step >= 1 {
			return false
		}
		for i := 0; i < n; i++ {
			buf[i] = render.Color{R: 1, G: 1, B: 1}
		}
	default:
		return false
	}
	r.step++
	return true
}
