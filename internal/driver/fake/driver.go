package fake

import (
	"fmt"

	"github.com/coreman2200/funtimes-ringdial/internal/render"
)

// Driver prints a compact summary of each frame (lit span & brightest pixel),
// useful for headless runs and tests.
type Driver struct {
	Count int
	Quiet bool
	Last  []render.Color
}

func (d *Driver) Write(buf []render.Color) error {
	d.Count++
	if d.Last == nil {
		d.Last = make([]render.Color, len(buf))
	}
	copy(d.Last, buf)
	if d.Quiet {
		return nil
	}
	lit := 0
	var peak float32
	for i := range buf {
		v := buf[i].R + buf[i].G + buf[i].B
		if v > 0.01 {
			lit++
		}
		if v > peak {
			peak = v
		}
	}
	fmt.Printf("[frame %04d] lit=%d/%d peak=%.2f\n", d.Count, lit, len(buf), peak/3)
	return nil
}
