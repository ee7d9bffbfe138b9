package render

import (
	"fmt"
	"image/color"
	"math"

	"ChalkTalk/internal/geom"
)

const (
	tickLabelEvery = 2 // world units between axis tick labels
	atomRadius     = 16.0
	bondOffset     = 4.0 // pixel gap between the two lines of a double bond
	arrowHeadLen   = 14.0
	arrowHeadAngle = 0.45 // radians off the shaft
	labelSize      = 13.0
	strokeWidth    = 2.5
)

// Axes draws the grid, the two axes and their tick labels for the whole
// logical plane.
func Axes(sf Surface, m geom.Mapper) {
	for i := -geom.Range; i <= geom.Range; i++ {
		vx, _ := m.ToScreen(i, 0)
		sf.Line(vx, 0, vx, m.Height, gridColor, 1)
		_, hy := m.ToScreen(0, i)
		sf.Line(0, hy, m.Width, hy, gridColor, 1)
	}

	cx, cy := m.ToScreen(0, 0)
	sf.Line(0, cy, m.Width, cy, axisColor, 2)
	sf.Line(cx, 0, cx, m.Height, axisColor, 2)

	for i := -geom.Range; i <= geom.Range; i += tickLabelEvery {
		if i == 0 {
			continue
		}
		tx, _ := m.ToScreen(i, 0)
		sf.Text(tx, cy+12, fmt.Sprintf("%g", i), labelColor, 10)
		_, ty := m.ToScreen(0, i)
		sf.Text(cx-12, ty, fmt.Sprintf("%g", i), labelColor, 10)
	}
	sf.Text(cx-10, cy+12, "0", labelColor, 10)
}

// Polyline strokes a connected curve through world points. When maxGapX > 0,
// a jump in x wider than that is a hole left by dropped samples and the
// stroke breaks instead of bridging it.
func Polyline(sf Surface, m geom.Mapper, pts []geom.Point, maxGapX float64, col color.Color, width float64) {
	for i := 1; i < len(pts); i++ {
		if maxGapX > 0 && pts[i].X-pts[i-1].X > maxGapX {
			continue
		}
		x1, y1 := m.ToScreen(pts[i-1].X, pts[i-1].Y)
		x2, y2 := m.ToScreen(pts[i].X, pts[i].Y)
		sf.Line(x1, y1, x2, y2, col, width)
	}
}

// Annotation writes a text label at a world point.
func Annotation(sf Surface, m geom.Mapper, text string, x, y float64, col color.Color) {
	px, py := m.ToScreen(x, y)
	sf.Text(px, py, text, col, labelSize+2)
}

// Atom draws an element circle with its symbol centered inside.
func Atom(sf Surface, m geom.Mapper, x, y float64, symbol string, col color.Color) {
	px, py := m.ToScreen(x, y)
	sf.Circle(px, py, atomRadius, col, nil, strokeWidth)
	sf.Text(px, py, symbol, col, labelSize)
}

// Bond draws a chemical bond between two world points. Order 2 renders the
// two parallel lines of a double bond, offset perpendicular to the bond.
func Bond(sf Surface, m geom.Mapper, x1, y1, x2, y2 float64, order int, col color.Color) {
	px1, py1 := m.ToScreen(x1, y1)
	px2, py2 := m.ToScreen(x2, y2)
	if order < 2 {
		sf.Line(px1, py1, px2, py2, col, strokeWidth)
		return
	}
	dx, dy := px2-px1, py2-py1
	length := math.Hypot(dx, dy)
	if length == 0 {
		return
	}
	// Unit perpendicular in pixel space.
	ox, oy := -dy/length*bondOffset, dx/length*bondOffset
	sf.Line(px1+ox, py1+oy, px2+ox, py2+oy, col, strokeWidth)
	sf.Line(px1-ox, py1-oy, px2-ox, py2-oy, col, strokeWidth)
}

// Vector draws an arrow from one world point to another, with a two-segment
// head and an optional label at the midpoint.
func Vector(sf Surface, m geom.Mapper, x1, y1, x2, y2 float64, col color.Color, label string) {
	px1, py1 := m.ToScreen(x1, y1)
	px2, py2 := m.ToScreen(x2, y2)
	sf.Line(px1, py1, px2, py2, col, strokeWidth)

	theta := math.Atan2(py2-py1, px2-px1)
	for _, a := range []float64{theta + math.Pi - arrowHeadAngle, theta + math.Pi + arrowHeadAngle} {
		sf.Line(px2, py2, px2+arrowHeadLen*math.Cos(a), py2+arrowHeadLen*math.Sin(a), col, strokeWidth)
	}

	if label != "" {
		sf.Text((px1+px2)/2, (py1+py2)/2-12, label, col, labelSize)
	}
}

// Box draws a rectangle of logical width and height centered on a world
// point, with an optional centered label.
func Box(sf Surface, m geom.Mapper, x, y, w, h float64, col color.Color, label string) {
	px, py := m.ToScreen(x-w/2, y+h/2)
	sf.Rect(px, py, w*m.UnitX(), h*m.UnitY(), col, strokeWidth)
	if label != "" {
		cx, cy := m.ToScreen(x, y)
		sf.Text(cx, cy, label, col, labelSize)
	}
}

// Disc draws a circle with a world-unit radius, used by the circle diagram.
func Disc(sf Surface, m geom.Mapper, x, y, radius float64, col color.Color, label string) {
	px, py := m.ToScreen(x, y)
	sf.Circle(px, py, radius*m.UnitX(), col, nil, strokeWidth)
	if label != "" {
		sf.Text(px, py-radius*m.UnitY()-12, label, col, labelSize)
	}
}

// Segment draws a plain line between two world points.
func Segment(sf Surface, m geom.Mapper, x1, y1, x2, y2 float64, col color.Color) {
	px1, py1 := m.ToScreen(x1, y1)
	px2, py2 := m.ToScreen(x2, y2)
	sf.Line(px1, py1, px2, py2, col, strokeWidth)
}
