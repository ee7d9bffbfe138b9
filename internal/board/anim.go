package board

import (
	"math"
	"time"

	"ChalkTalk/internal/geom"
)

// TickRate is the nominal scheduler frequency in ticks per second.
const TickRate = 60

// Animation is the progressive-reveal state for one graph stroke. It is
// owned by the session's active set from creation until completion or a
// clear/undo discards it.
type Animation struct {
	Points []geom.Point
	GapX   float64 // x distance treated as a sample gap when stroking
	OnDone func()  // fired exactly once, only on natural completion

	progress int
	duration int
}

// newAnimation sizes the tick budget from the effective reveal time.
func newAnimation(points []geom.Point, gapX float64, speed time.Duration) *Animation {
	d := int(math.Round(speed.Seconds() * TickRate))
	if d < 1 {
		d = 1
	}
	return &Animation{Points: points, GapX: gapX, duration: d}
}

// Tick advances the reveal by one frame and reports completion.
func (a *Animation) Tick() bool {
	a.progress++
	return a.Complete()
}

// VisibleCount is how many points the current tick reveals. At or beyond the
// tick budget it equals the full point count, so rendering a finished
// animation is identical to rendering the whole stroke.
func (a *Animation) VisibleCount() int {
	n := int(math.Floor(float64(a.progress) / float64(a.duration) * float64(len(a.Points))))
	if n > len(a.Points) {
		n = len(a.Points)
	}
	return n
}

// Complete reports whether every point is revealed.
func (a *Animation) Complete() bool {
	return a.VisibleCount() >= len(a.Points)
}

// Duration returns the tick budget.
func (a *Animation) Duration() int { return a.duration }
