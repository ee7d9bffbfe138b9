package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
)

// canvasSurface implements render.Surface by collecting Fyne canvas objects;
// the board renderer hands the collected objects straight to the toolkit.
type canvasSurface struct {
	objects []fyne.CanvasObject
}

func (s *canvasSurface) Line(x1, y1, x2, y2 float64, col color.Color, width float64) {
	l := canvas.NewLine(col)
	l.StrokeWidth = float32(width)
	l.Position1 = fyne.NewPos(float32(x1), float32(y1))
	l.Position2 = fyne.NewPos(float32(x2), float32(y2))
	s.objects = append(s.objects, l)
}

func (s *canvasSurface) Circle(cx, cy, r float64, stroke, fill color.Color, width float64) {
	c := canvas.NewCircle(color.Transparent)
	if fill != nil {
		c.FillColor = fill
	}
	c.StrokeColor = stroke
	c.StrokeWidth = float32(width)
	c.Resize(fyne.NewSize(float32(2*r), float32(2*r)))
	c.Move(fyne.NewPos(float32(cx-r), float32(cy-r)))
	s.objects = append(s.objects, c)
}

func (s *canvasSurface) Rect(x, y, w, h float64, stroke color.Color, width float64) {
	r := canvas.NewRectangle(color.Transparent)
	r.StrokeColor = stroke
	r.StrokeWidth = float32(width)
	r.Resize(fyne.NewSize(float32(w), float32(h)))
	r.Move(fyne.NewPos(float32(x), float32(y)))
	s.objects = append(s.objects, r)
}

func (s *canvasSurface) Text(x, y float64, text string, col color.Color, size float64) {
	t := canvas.NewText(text, col)
	t.TextSize = float32(size)
	measured := fyne.MeasureText(text, t.TextSize, t.TextStyle)
	t.Move(fyne.NewPos(float32(x)-measured.Width/2, float32(y)-measured.Height/2))
	s.objects = append(s.objects, t)
}
