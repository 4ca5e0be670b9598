package ring

import (
	"math"
	"time"
)

// AngularEpsilon is the tolerance under which a ring angle counts as sitting
// on a clean revolution boundary (1/3600 of a turn).
const AngularEpsilon = 1.0 / 3600

// DefaultDuration is the base cadence for all plans: the length of one
// indeterminate cycle.
const DefaultDuration = 1333 * time.Millisecond

// DefaultSmallArcThreshold selects the in-place indeterminate sweep when the
// current arc span is at or below it. Historical builds shipped 0.8 here;
// it stays configurable rather than forked.
const DefaultSmallArcThreshold = 0.5

// maxLegFraction caps the wrap leg of a compound determinate plan so the
// fill leg never collapses to zero length.
const maxLegFraction = 0.99

// Config tunes an Animator. Zero values fall back to the defaults above.
type Config struct {
	Duration          time.Duration
	SmallArcThreshold float64
}

// Animator is the ring animation state machine. It owns the two cyclic
// angle values bounding the drawn arc (in revolutions, 1.0 = 360 degrees)
// and rebuilds a fresh keyframe plan on every mode or target change so that
// no transition ever jumps.
//
// All methods must be called from a single goroutine, normally the frame
// loop. Cross-goroutine hand-off is the host's job (see the dial package).
type Animator struct {
	ringStart float64
	ringEnd   float64

	indeterminate bool
	progress      float64
	duration      time.Duration
	smallArc      float64

	start Timeline
	end   Timeline
}

// NewAnimator returns an animator in indeterminate mode with its first cycle
// already playing, mirroring a freshly shown spinner.
func NewAnimator(cfg Config) *Animator {
	a := &Animator{
		indeterminate: true,
		duration:      cfg.Duration,
		smallArc:      cfg.SmallArcThreshold,
	}
	if a.duration <= 0 {
		a.duration = DefaultDuration
	}
	if a.smallArc <= 0 {
		a.smallArc = DefaultSmallArcThreshold
	}
	a.armIndeterminate()
	return a
}

// Duration returns the base cadence.
func (a *Animator) Duration() time.Duration { return a.duration }

// SetDuration changes the base cadence. Takes effect at the next plan build.
func (a *Animator) SetDuration(d time.Duration) {
	if d > 0 {
		a.duration = d
	}
}

// Indeterminate reports the current mode.
func (a *Animator) Indeterminate() bool { return a.indeterminate }

// Progress returns the last explicitly set progress fraction.
func (a *Animator) Progress() float64 { return a.progress }

// Angles returns the current ring angles (ringStart, ringEnd) in
// revolutions. The drawn arc runs from ringStart to ringEnd.
func (a *Animator) Angles() (float64, float64) { return a.ringStart, a.ringEnd }

// IsRunning reports whether a plan is actively playing.
func (a *Animator) IsRunning() bool { return a.start.Running() }

// SetIndeterminate switches the presentation mode. Turning indeterminate off
// re-enters determinate mode at the last set progress; turning it on defers
// to the end of the current sweep unless the arc already sits on a clean
// boundary, so the switch never produces a visible jump. Repeated calls with
// the current mode are no-ops.
func (a *Animator) SetIndeterminate(indeterminate bool) {
	if !indeterminate {
		if !a.indeterminate {
			return
		}
		a.SetProgress(a.progress)
		return
	}
	if a.indeterminate {
		return
	}
	a.indeterminate = true

	a.reduceAngles()
	if a.ringStart < AngularEpsilon {
		a.armIndeterminate()
	}
	// Otherwise the running determinate sweep finishes its revolution and
	// Tick switches over at the boundary.
}

// SetProgress enters determinate mode targeting the given fraction in [0,1]
// and starts the transition immediately. Callers are expected to pre-clamp
// and rescale raw values; see dial.Dial.
func (a *Animator) SetProgress(progress float64) {
	a.progress = progress
	a.indeterminate = false

	a.armDeterminate()
}

// Tick advances both timelines by dt and updates the ring angles. It reports
// whether the host should redraw. When the start timeline completes while
// the mode is indeterminate, the next cycle is armed here, synchronously:
// perpetual motion without callback re-entrancy.
func (a *Animator) Tick(dt time.Duration) bool {
	if !a.start.Running() {
		return false
	}
	a.ringStart = a.start.Advance(dt)
	a.ringEnd = a.end.Advance(dt)

	if a.start.Done() && a.indeterminate {
		a.armIndeterminate()
	}
	return true
}

// Stop force-ends both timelines at their final keyframe values. The arc
// lands wherever the current plan was headed; no further cycles are armed
// until the next mode or progress change.
func (a *Animator) Stop() {
	a.start.Finish()
	a.end.Finish()
	a.ringStart = a.start.Value()
	a.ringEnd = a.end.Value()
}

// armDeterminate rebuilds and starts the determinate plan for the current
// progress target.
func (a *Animator) armDeterminate() {
	a.reduceAngles()

	if a.ringStart < AngularEpsilon && a.ringEnd <= a.progress {
		// Clean catch-up: the arc already starts at the boundary and only
		// needs to grow (or hold) to the target.
		a.install(Plan{
			Start: Track{Keys: []Keyframe{
				{T: 0, V: a.ringStart},
				{T: 1, V: 0},
			}},
			End: Track{Keys: []Keyframe{
				{T: 0, V: a.ringEnd},
				{T: 1, V: a.progress},
			}},
			Duration: a.scaled(a.progress - a.ringEnd),
		})
		return
	}

	// Wrap and fill: close the current arc at the next revolution boundary,
	// then fill from there to the target.
	next := math.Ceil(a.ringEnd)
	timeToReset := next - a.ringStart
	timeFraction := timeToReset / (timeToReset + a.progress)
	if timeFraction > maxLegFraction {
		timeFraction = maxLegFraction
	}

	a.install(Plan{
		Start: Track{Keys: []Keyframe{
			{T: 0, V: a.ringStart},
			{T: timeFraction, V: next},
			{T: 1, V: next},
		}},
		End: Track{Keys: []Keyframe{
			{T: 0, V: a.ringEnd},
			{T: timeFraction, V: next},
			{T: 1, V: next + a.progress},
		}},
		Duration: a.scaled(timeToReset + a.progress),
	})
}

// armIndeterminate rebuilds and starts the indeterminate plan.
func (a *Animator) armIndeterminate() {
	a.reduceAngles()

	if a.ringEnd-a.ringStart <= a.smallArc {
		// Small arc: grow the head over half the cycle, then chase with the
		// tail. One full cycle at the base cadence.
		base := a.ringStart
		if base < AngularEpsilon {
			base = 0
		}
		a.install(Plan{
			Start: Track{Keys: []Keyframe{
				{T: 0, V: a.ringStart},
				{T: 0.5, V: base + 0.2},
				{T: 0.7, V: base + 0.8},
				{T: 1, V: base + 1.2},
			}},
			End: Track{Keys: []Keyframe{
				{T: 0, V: a.ringEnd},
				{T: 0.2, V: base + 0.65},
				{T: 0.5, V: base + 1.05},
				{T: 1, V: base + 1.25},
			}},
			Duration: a.duration,
		})
		return
	}

	// Wide arc: collapse toward the next boundary first. The +0.05 keeps a
	// sliver visible so the arc never fully vanishes.
	next := math.Ceil(a.ringEnd)
	timeToReset := next - a.ringStart

	a.install(Plan{
		Start: Track{Keys: []Keyframe{
			{T: 0, V: a.ringStart},
			{T: 1, V: next},
		}},
		End: Track{Keys: []Keyframe{
			{T: 0, V: a.ringEnd},
			{T: 1, V: next + 0.05},
		}},
		Duration: a.scaled(timeToReset),
	})
}

// install cancels any playing plan and starts the new one. The two timelines
// never overlap plans. Angles sync to the new timelines immediately, which
// matters only for degenerate zero-length plans; for all others the first
// keyframe equals the current angle by construction.
func (a *Animator) install(p Plan) {
	a.start.Cancel()
	a.end.Cancel()
	a.start.Start(p.Start, p.Duration)
	a.end.Start(p.End, p.Duration)
	a.ringStart = a.start.Value()
	a.ringEnd = a.end.Value()
}

// reduceAngles re-bases the angles so ringStart lies in [0,1) and the span
// stays within one full turn, preserving the drawn arc.
func (a *Animator) reduceAngles() {
	if a.ringEnd < a.ringStart {
		a.ringEnd = a.ringStart
	}
	if a.ringEnd > a.ringStart+1 {
		a.ringEnd = a.ringStart + 1
	}
	if a.ringStart >= 1 || a.ringStart < 0 {
		f := math.Floor(a.ringStart)
		a.ringStart -= f
		a.ringEnd -= f
	}
}

func (a *Animator) scaled(x float64) time.Duration {
	return time.Duration(float64(a.duration) * x)
}
