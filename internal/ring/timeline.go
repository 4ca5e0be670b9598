package ring

import "time"

// Keyframe pins a value V at normalized time T within a plan. T runs 0..1
// over the plan's duration.
type Keyframe struct {
	T float64
	V float64
}

// Track is a sorted list of keyframes; Eval(u) interpolates a value.
// Segments are strictly linear: velocity continuity in the ring animation
// comes from keyframe placement, never from curve shaping.
type Track struct {
	Keys []Keyframe
}

// Eval returns the track value at normalized time u.
// If there are no keys, returns 0; if one key, returns its value.
// Keys must be sorted by T ascending.
func (t Track) Eval(u float64) float64 {
	n := len(t.Keys)
	if n == 0 {
		return 0
	}
	if n == 1 {
		return t.Keys[0].V
	}
	if u <= t.Keys[0].T {
		return t.Keys[0].V
	}
	if u >= t.Keys[n-1].T {
		return t.Keys[n-1].V
	}
	for i := 0; i < n-1; i++ {
		a := t.Keys[i]
		b := t.Keys[i+1]
		if u >= a.T && u <= b.T {
			den := b.T - a.T
			if den <= 0 {
				return b.V
			}
			f := (u - a.T) / den
			return a.V + (b.V-a.V)*f
		}
	}
	return t.Keys[n-1].V
}

// End returns the track's final value.
func (t Track) End() float64 {
	if len(t.Keys) == 0 {
		return 0
	}
	return t.Keys[len(t.Keys)-1].V
}

// Plan couples the two angle tracks with a shared duration. A plan is
// ephemeral: rebuilt on every mode or target change and consumed by a
// Timeline pair.
type Plan struct {
	Start    Track
	End      Track
	Duration time.Duration
}

// Timeline plays a single Track over a wall-clock duration. It is advanced
// explicitly by the frame loop; there is no internal goroutine or clock.
type Timeline struct {
	track   Track
	dur     time.Duration
	elapsed time.Duration
	value   float64
	running bool
	done    bool
}

// Start installs a track and begins playing it from zero elapsed time.
// A non-positive duration completes immediately at the final keyframe.
func (tl *Timeline) Start(track Track, d time.Duration) {
	tl.track = track
	tl.dur = d
	tl.elapsed = 0
	tl.done = false
	tl.running = true
	tl.value = track.Eval(0)
	if d <= 0 {
		tl.finish()
	}
}

// Advance moves the timeline forward by dt and returns the current value.
// Once the duration is reached the timeline stops running and holds the
// final keyframe value.
func (tl *Timeline) Advance(dt time.Duration) float64 {
	if !tl.running {
		return tl.value
	}
	if dt > 0 {
		tl.elapsed += dt
	}
	if tl.elapsed >= tl.dur {
		tl.finish()
		return tl.value
	}
	u := float64(tl.elapsed) / float64(tl.dur)
	tl.value = tl.track.Eval(u)
	return tl.value
}

// Finish jumps to completion: the value snaps to the final keyframe and the
// timeline stops. This is an end, not a cancel.
func (tl *Timeline) Finish() {
	if tl.running {
		tl.finish()
	}
}

// Cancel stops the timeline where it is, leaving the current value in place.
func (tl *Timeline) Cancel() {
	tl.running = false
}

// Running reports whether the timeline is actively playing.
func (tl *Timeline) Running() bool { return tl.running }

// Done reports whether the timeline reached its natural end.
func (tl *Timeline) Done() bool { return tl.done }

// Value returns the last computed value.
func (tl *Timeline) Value() float64 { return tl.value }

func (tl *Timeline) finish() {
	tl.elapsed = tl.dur
	tl.value = tl.track.End()
	tl.running = false
	tl.done = true
}
