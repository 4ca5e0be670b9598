package selftest

import (
	"testing"

	"github.com/coreman2200/funtimes-ringdial/internal/render"
)

func TestIndexSweepVisitsEveryPixel(t *testing.T) {
	r := NewRunner(IndexSweep)
	buf := make([]render.Color, 8)
	for i := 0; i < 8; i++ {
		if !r.Step(buf) {
			t.Fatalf("sweep ended early at step %d", i)
		}
		for j := range buf {
			want := float32(0)
			if j == i {
				want = 1
			}
			if buf[j].R != want {
				t.Fatalf("step %d: pixel %d = %v, want %v", i, j, buf[j].R, want)
			}
		}
	}
	if r.Step(buf) {
		t.Fatal("sweep should complete after visiting every pixel")
	}
}

func TestRGBChannelsThreePhases(t *testing.T) {
	r := NewRunner(RGBChannels)
	buf := make([]render.Color, 4)
	for phase := 0; phase < 3; phase++ {
		if !r.Step(buf) {
			t.Fatalf("rgb test ended early at phase %d", phase)
		}
	}
	if buf[0].B != 1 || buf[0].R != 0 {
		t.Fatalf("final phase should be blue, got %#v", buf[0])
	}
	if r.Step(buf) {
		t.Fatal("rgb test should complete after three phases")
	}
}

func TestNoneRunsNothing(t *testing.T) {
	r := NewRunner(None)
	if r.Step(make([]render.Color, 2)) {
		t.Fatal("empty plan should not run")
	}
}
