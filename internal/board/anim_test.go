package board

import (
	"testing"
	"time"

	"ChalkTalk/internal/geom"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func flatPoints(n int) []geom.Point {
	pts := make([]geom.Point, n)
	for i := range pts {
		pts[i] = geom.Point{X: float64(i), Y: 1}
	}
	return pts
}

func TestAnimationDurationFromSpeed(t *testing.T) {
	a := newAnimation(flatPoints(10), 0, 1500*time.Millisecond)
	assert.Equal(t, 90, a.Duration(), "1.5s at 60 ticks/s")

	a = newAnimation(flatPoints(10), 0, 500*time.Millisecond)
	assert.Equal(t, 30, a.Duration())

	a = newAnimation(flatPoints(10), 0, 0)
	assert.Equal(t, 1, a.Duration(), "duration never drops below one tick")
}

func TestAnimationRevealIsProportional(t *testing.T) {
	a := newAnimation(flatPoints(200), 0, 1500*time.Millisecond)
	require.Equal(t, 90, a.Duration())

	assert.Equal(t, 0, a.VisibleCount())
	for i := 0; i < 45; i++ {
		a.Tick()
	}
	assert.Equal(t, 100, a.VisibleCount(), "half the ticks reveal half the points")
	assert.False(t, a.Complete())
}

func TestAnimationCompleteIsIdempotent(t *testing.T) {
	a := newAnimation(flatPoints(17), 0, 100*time.Millisecond)
	for i := 0; i < a.Duration(); i++ {
		a.Tick()
	}
	require.True(t, a.Complete())
	assert.Equal(t, 17, a.VisibleCount())

	// Ticking past the budget changes nothing.
	for i := 0; i < 25; i++ {
		a.Tick()
	}
	assert.Equal(t, 17, a.VisibleCount())
	assert.True(t, a.Complete())
}

func TestAnimationRevealNeverExceedsPointCount(t *testing.T) {
	a := newAnimation(flatPoints(3), 0, 16*time.Millisecond)
	a.Tick()
	a.Tick()
	assert.LessOrEqual(t, a.VisibleCount(), 3)
}
