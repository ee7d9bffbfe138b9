package expr

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompileBasic(t *testing.T) {
	fn, err := Compile("x*x + 1")
	require.NoError(t, err)
	assert.InDelta(t, 5.0, fn(2), 1e-9)
	assert.InDelta(t, 1.0, fn(0), 1e-9)
}

func TestCompilePrecedence(t *testing.T) {
	fn, err := Compile("2 + 3 * x")
	require.NoError(t, err)
	assert.InDelta(t, 14.0, fn(4), 1e-9)
}

func TestCompileNormalizesDoubleStar(t *testing.T) {
	fn, err := Compile("x**2")
	require.NoError(t, err)
	assert.InDelta(t, 9.0, fn(3), 1e-9)

	caret, err := Compile("x^2")
	require.NoError(t, err)
	assert.InDelta(t, caret(3), fn(3), 1e-9)
}

func TestCompileTranscendentals(t *testing.T) {
	fn, err := Compile("sin(x) + cos(0)")
	require.NoError(t, err)
	assert.InDelta(t, 1.0, fn(0), 1e-9)

	fn, err = Compile("sqrt(x) * log(e)")
	require.NoError(t, err)
	assert.InDelta(t, 3.0, fn(9), 1e-9)
}

func TestCompileRejectsGarbage(t *testing.T) {
	_, err := Compile("x +* 2")
	assert.Error(t, err)
	_, err = Compile("")
	assert.Error(t, err)
	_, err = Compile("y + 2")
	assert.Error(t, err, "unknown variables must not compile")
}

func TestEvalErrorsBecomeNaN(t *testing.T) {
	fn, err := Compile("sqrt(x)")
	require.NoError(t, err)
	assert.True(t, math.IsNaN(fn(-1)))

	fn, err = Compile("1/x")
	require.NoError(t, err)
	y := fn(0)
	assert.True(t, math.IsNaN(y) || math.IsInf(y, 0))
}

func TestIsValid(t *testing.T) {
	assert.True(t, IsValid("x*x"))
	assert.True(t, IsValid("sin(x)"))
	assert.False(t, IsValid("not math at all"))
	assert.False(t, IsValid("log(x-1)"), "probe at x=1 hits log(0)")
}

func TestStepForPolicy(t *testing.T) {
	// Narrow domain, normal speed: 200 target points.
	assert.InDelta(t, 20.0/200, StepFor(-10, 10, 1.0), 1e-12)
	// Wide domain: coarser grid.
	assert.InDelta(t, 60.0/120, StepFor(-30, 30, 1.0), 1e-12)
	// Fast playback: coarser grid even when narrow.
	assert.InDelta(t, 20.0/120, StepFor(-10, 10, 3.0), 1e-12)
	// Degenerate domain.
	assert.Equal(t, 0.0, StepFor(5, 5, 1.0))
}

func TestSampleParabola(t *testing.T) {
	fn, err := Compile("x*x")
	require.NoError(t, err)
	pts := Sample(fn, -10, 10, 1.0)
	// Step 0.1; only |x| <= sqrt(20) survives the |y| <= 20 clip,
	// i.e. the grid points from -4.4 to 4.4.
	require.Len(t, pts, 89)

	var atZero, nearOne, nearMinusOne bool
	for _, p := range pts {
		assert.LessOrEqual(t, math.Abs(p.Y), MaxAbsY)
		if math.Abs(p.X) < 1e-9 {
			atZero = math.Abs(p.Y) < 1e-9
		}
		if math.Abs(p.X-1) < 1e-6 {
			nearOne = math.Abs(p.Y-1) < 1e-5
		}
		if math.Abs(p.X+1) < 1e-6 {
			nearMinusOne = math.Abs(p.Y-1) < 1e-5
		}
	}
	assert.True(t, atZero)
	assert.True(t, nearOne)
	assert.True(t, nearMinusOne)
}

func TestSampleStepDropsSingularity(t *testing.T) {
	fn, err := Compile("1/x")
	require.NoError(t, err)
	pts := sampleStep(fn, -1, 1, 0.5)
	// Grid is -1, -0.5, 0, 0.5, 1; x=0 is non-finite and dropped.
	require.Len(t, pts, 4)
	for _, p := range pts {
		assert.NotEqual(t, 0.0, p.X)
	}
}

func TestSampleEmptyWhenNothingFinite(t *testing.T) {
	fn, err := Compile("sqrt(x)")
	require.NoError(t, err)
	pts := Sample(fn, -10, -1, 1.0)
	assert.Empty(t, pts)
}
