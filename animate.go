package drum

import "time"

// RollDuration is how long one digit transition takes. Fixed for all
// wheels in this version.
const RollDuration = 300 * time.Millisecond

// Timeline interpolates a float property between two endpoints over a
// fixed duration. A widget owns at most one timeline; a value change that
// arrives while it is running retargets it in place rather than spawning a
// second one. Timelines are never disposed, only retargeted.
type Timeline struct {
	target   *Property[float64]
	from, to float64
	duration time.Duration
	ease     func(t float64) float64

	now     func() time.Time // Assigned when the animator starts us
	start   time.Time
	running bool
}

// NewTimeline creates a timeline that will drive target from one endpoint
// to the other. It does not run until started by an Animator.
func NewTimeline(target *Property[float64], from, to float64, duration time.Duration) *Timeline {
	return &Timeline{
		target:   target,
		from:     from,
		to:       to,
		duration: duration,
		ease:     easeInOutQuad,
	}
}

// From returns the current start endpoint.
func (tl *Timeline) From() float64 {
	return tl.from
}

// To returns the current end endpoint.
func (tl *Timeline) To() float64 {
	return tl.to
}

// Running returns true while the timeline is interpolating.
func (tl *Timeline) Running() bool {
	return tl.running
}

// Retarget overwrites the endpoints in place and restarts the timeline
// from its beginning. The previous trajectory is abandoned, not queued
// behind: a rapid sequence of retargets collapses into one animation whose
// endpoints reflect only the most recent transition.
func (tl *Timeline) Retarget(from, to float64) {
	tl.from = from
	tl.to = to
	if tl.now != nil {
		tl.start = tl.now()
	}
	tl.running = true
}

// Advance moves the timeline to the given instant, writing the
// interpolated value into the target property. Returns true when the
// timeline has reached its end.
func (tl *Timeline) Advance(now time.Time) bool {
	if !tl.running {
		return true
	}

	elapsed := now.Sub(tl.start)
	if elapsed >= tl.duration {
		// Land exactly on the endpoint; no float drift at rest.
		tl.target.Set(tl.to)
		tl.running = false
		return true
	}
	if elapsed < 0 {
		elapsed = 0
	}

	t := tl.ease(float64(elapsed) / float64(tl.duration))
	tl.target.Set(tl.from + (tl.to-tl.from)*t)
	return false
}

func easeInOutQuad(t float64) float64 {
	if t < 0.5 {
		return 2 * t * t
	}
	return 1 - 2*(1-t)*(1-t)
}

// Animator pumps timelines once per frame. It is single-threaded by
// contract: Start, Advance and every property mutation they trigger run on
// the host's frame loop.
type Animator struct {
	timelines []*Timeline
	now       func() time.Time
}

// NewAnimator creates an animator using the wall clock.
func NewAnimator() *Animator {
	return &Animator{now: time.Now}
}

// Start registers a timeline and starts it from its beginning. Starting a
// timeline that is already registered restarts it without registering it
// twice.
func (a *Animator) Start(tl *Timeline) {
	tl.now = a.now
	tl.start = a.now()
	tl.running = true
	for _, existing := range a.timelines {
		if existing == tl {
			return
		}
	}
	a.timelines = append(a.timelines, tl)
}

// Advance steps every timeline to the given instant. Returns true if any
// timeline is still running, so hosts know whether another frame is
// needed.
func (a *Animator) Advance(now time.Time) bool {
	active := false
	for _, tl := range a.timelines {
		if !tl.Advance(now) {
			active = true
		}
	}
	return active
}

// Active returns true if any timeline is running.
func (a *Animator) Active() bool {
	for _, tl := range a.timelines {
		if tl.running {
			return true
		}
	}
	return false
}
