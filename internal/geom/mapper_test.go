package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToScreenCenter(t *testing.T) {
	m := NewMapper(800, 600)
	px, py := m.ToScreen(0, 0)
	assert.Equal(t, 400.0, px)
	assert.Equal(t, 300.0, py)
}

func TestToScreenFlipsY(t *testing.T) {
	m := NewMapper(800, 600)
	_, top := m.ToScreen(0, Range)
	_, bottom := m.ToScreen(0, -Range)
	assert.Equal(t, 0.0, top, "world +Y should map to the top edge")
	assert.Equal(t, 600.0, bottom, "world -Y should map to the bottom edge")
}

func TestToScreenCorners(t *testing.T) {
	m := NewMapper(1000, 500)
	px, py := m.ToScreen(-Range, Range)
	assert.Equal(t, 0.0, px)
	assert.Equal(t, 0.0, py)
	px, py = m.ToScreen(Range, -Range)
	assert.Equal(t, 1000.0, px)
	assert.Equal(t, 500.0, py)
}

func TestRoundTrip(t *testing.T) {
	m := NewMapper(640, 480)
	for _, p := range []Point{{0, 0}, {1, 1}, {-7.5, 3.25}, {Range, -Range}, {-0.001, 9.999}} {
		px, py := m.ToScreen(p.X, p.Y)
		wx, wy := m.ToWorld(px, py)
		assert.InDelta(t, p.X, wx, 1e-9)
		assert.InDelta(t, p.Y, wy, 1e-9)
	}
}

func TestResizeRederives(t *testing.T) {
	small := NewMapper(400, 400)
	large := NewMapper(800, 800)
	sx, _ := small.ToScreen(5, 0)
	lx, _ := large.ToScreen(5, 0)
	assert.Equal(t, 300.0, sx)
	assert.Equal(t, 600.0, lx)
}
