// Package render holds the stateless drawing primitives for the chalkboard.
// Everything draws through the Surface interface so the same code paints the
// Fyne canvas, the PDF exporter, and the test recorder.
package render

import "image/color"

// Surface is a minimal pixel-space drawing target. Coordinates are pixels;
// implementations own stroke style details beyond color and width.
type Surface interface {
	// Line strokes a segment between two pixel points.
	Line(x1, y1, x2, y2 float64, col color.Color, width float64)
	// Circle strokes (and optionally fills) a circle centered at (cx, cy).
	Circle(cx, cy, r float64, stroke, fill color.Color, width float64)
	// Rect strokes an axis-aligned rectangle from its top-left corner.
	Rect(x, y, w, h float64, stroke color.Color, width float64)
	// Text draws a string centered on (x, y).
	Text(x, y float64, s string, col color.Color, size float64)
}

// Chalkboard theme shared by all surfaces.
var (
	Background = color.NRGBA{R: 0x16, G: 0x1a, B: 0x24, A: 0xff}
	gridColor  = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0x14}
	axisColor  = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0x6e}
	labelColor = color.NRGBA{R: 0xc8, G: 0xcc, B: 0xd4, A: 0xff}
)
