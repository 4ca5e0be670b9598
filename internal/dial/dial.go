package dial

import (
	"sync"
	"time"

	"github.com/coreman2200/funtimes-ringdial/internal/ring"
)

// State is the persistable part of a dial, written alongside the config so
// a restarted process can resume where it left off.
type State struct {
	Progress      int  `yaml:"progress"`
	Indeterminate bool `yaml:"indeterminate"`
}

type op int

const (
	opProgress op = iota
	opIndeterminate
)

type update struct {
	op    op
	value int
	flag  bool
}

// Dial wraps the ring animator with an integer progress range and makes it
// safe to poke from any goroutine. Mode and progress setters queue updates
// under a mutex; the queue is drained, in arrival order, at the start of
// Tick on the frame-loop goroutine. The animator itself is only ever
// touched there.
type Dial struct {
	mu            sync.Mutex
	pending       []update
	min, max      int
	progress      int
	indeterminate bool

	anim *ring.Animator
}

// New returns a dial over [min, max], indeterminate and animating, like a
// freshly shown spinner.
func New(min, max int, cfg ring.Config) *Dial {
	if max < min {
		max = min
	}
	return &Dial{
		min:           min,
		max:           max,
		progress:      min,
		indeterminate: true,
		anim:          ring.NewAnimator(cfg),
	}
}

// SetProgress moves the dial to an absolute value, constrained to the
// range. Setting the current value while already determinate is a no-op.
// Callable from any goroutine.
func (d *Dial) SetProgress(p int) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.setProgressLocked(p)
}

// IncrementBy moves the dial by a relative amount. Callable from any
// goroutine.
func (d *Dial) IncrementBy(diff int) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.setProgressLocked(d.progress + diff)
}

func (d *Dial) setProgressLocked(p int) {
	p = constrain(p, d.min, d.max)
	if p == d.progress && !d.indeterminate {
		return
	}
	d.progress = p
	d.indeterminate = false
	d.pending = append(d.pending, update{op: opProgress, value: p})
}

// SetIndeterminate switches the presentation mode. Callable from any
// goroutine.
func (d *Dial) SetIndeterminate(indeterminate bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.indeterminate = indeterminate
	d.pending = append(d.pending, update{op: opIndeterminate, flag: indeterminate})
}

// SetRange adjusts [min, max], re-constraining the current progress; the
// visual position re-targets on the next tick.
func (d *Dial) SetRange(min, max int) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if max < min {
		max = min
	}
	d.min, d.max = min, max
	d.progress = constrain(d.progress, min, max)
	if !d.indeterminate {
		d.pending = append(d.pending, update{op: opProgress, value: d.progress})
	}
}

// Progress returns the current progress value, or min while indeterminate.
func (d *Dial) Progress() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.indeterminate {
		return d.min
	}
	return d.progress
}

// Indeterminate reports the current mode.
func (d *Dial) Indeterminate() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.indeterminate
}

// Snapshot captures the state to persist.
func (d *Dial) Snapshot() State {
	d.mu.Lock()
	defer d.mu.Unlock()
	return State{Progress: d.progress, Indeterminate: d.indeterminate}
}

// Restore replays a saved state, progress first so a determinate dial
// resumes at its value and an indeterminate one keeps it as the fallback
// target.
func (d *Dial) Restore(s State) {
	d.SetProgress(s.Progress)
	d.SetIndeterminate(s.Indeterminate)
}

// Tick drains queued updates into the animator, then advances it by dt.
// Must be called from the frame-loop goroutine. Reports whether the frame
// needs redrawing.
func (d *Dial) Tick(dt time.Duration) bool {
	d.mu.Lock()
	batch := d.pending
	d.pending = nil
	min, max := d.min, d.max
	d.mu.Unlock()

	redraw := len(batch) > 0
	for _, u := range batch {
		switch u.op {
		case opProgress:
			d.anim.SetProgress(fraction(u.value, min, max))
		case opIndeterminate:
			d.anim.SetIndeterminate(u.flag)
		}
	}
	if d.anim.Tick(dt) {
		redraw = true
	}
	return redraw
}

// Arc returns the drawable arc in degrees: startAngle with zero at three
// o'clock (so an empty dial begins at noon) and a clockwise sweep.
func (d *Dial) Arc() (startDeg, sweepDeg float64) {
	s, e := d.anim.Angles()
	return 360*s - 90, 360 * (e - s)
}

// IsRunning reports whether the animator is mid-plan.
func (d *Dial) IsRunning() bool { return d.anim.IsRunning() }

// Stop force-ends the animation. Frame-loop goroutine only.
func (d *Dial) Stop() { d.anim.Stop() }

func constrain(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// fraction rescales a range value into [0,1] for the animator.
func fraction(v, lo, hi int) float64 {
	if hi <= lo {
		return 0
	}
	return float64(v-lo) / float64(hi-lo)
}
