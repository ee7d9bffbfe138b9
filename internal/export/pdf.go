// Package export writes a snapshot of the board to a PDF page.
package export

import (
	"image/color"

	"ChalkTalk/internal/board"
	"ChalkTalk/internal/render"

	"github.com/jung-kurt/gofpdf"
)

// Virtual canvas the board is rendered at before scaling onto the page.
const (
	canvasWidth  = 1188.0
	canvasHeight = 840.0
	pxToMM       = 0.25 // 1188x840 px onto a 297x210 A4 landscape page
	mmToPt       = 72.0 / 25.4
)

// PDF renders the session's current board onto a single landscape A4 page.
func PDF(path string, sess *board.Session) error {
	p := gofpdf.New("L", "mm", "A4", "")
	p.AddPage()
	p.SetFont("Helvetica", "", 10)

	sf := &pdfSurface{pdf: p}
	sf.fill(render.Background)
	sess.Render(sf, canvasWidth, canvasHeight)

	return p.OutputFileAndClose(path)
}

// pdfSurface adapts a gofpdf page to the render.Surface interface.
type pdfSurface struct {
	pdf *gofpdf.Fpdf
}

func (s *pdfSurface) fill(col color.Color) {
	r, g, b := rgb(col)
	s.pdf.SetFillColor(r, g, b)
	s.pdf.Rect(0, 0, canvasWidth*pxToMM, canvasHeight*pxToMM, "F")
}

func (s *pdfSurface) Line(x1, y1, x2, y2 float64, col color.Color, width float64) {
	r, g, b := rgb(col)
	s.pdf.SetDrawColor(r, g, b)
	s.pdf.SetLineWidth(width * pxToMM)
	s.pdf.Line(x1*pxToMM, y1*pxToMM, x2*pxToMM, y2*pxToMM)
}

func (s *pdfSurface) Circle(cx, cy, radius float64, stroke, fill color.Color, width float64) {
	styleStr := "D"
	if fill != nil {
		fr, fg, fb := rgb(fill)
		s.pdf.SetFillColor(fr, fg, fb)
		styleStr = "FD"
	}
	r, g, b := rgb(stroke)
	s.pdf.SetDrawColor(r, g, b)
	s.pdf.SetLineWidth(width * pxToMM)
	s.pdf.Circle(cx*pxToMM, cy*pxToMM, radius*pxToMM, styleStr)
}

func (s *pdfSurface) Rect(x, y, w, h float64, stroke color.Color, width float64) {
	r, g, b := rgb(stroke)
	s.pdf.SetDrawColor(r, g, b)
	s.pdf.SetLineWidth(width * pxToMM)
	s.pdf.Rect(x*pxToMM, y*pxToMM, w*pxToMM, h*pxToMM, "D")
}

func (s *pdfSurface) Text(x, y float64, text string, col color.Color, size float64) {
	r, g, b := rgb(col)
	s.pdf.SetTextColor(r, g, b)
	s.pdf.SetFontSize(size * pxToMM * mmToPt)
	w := s.pdf.GetStringWidth(text)
	s.pdf.Text(x*pxToMM-w/2, y*pxToMM+size*pxToMM/2, text)
}

func rgb(col color.Color) (int, int, int) {
	if col == nil {
		return 0, 0, 0
	}
	r, g, b, _ := col.RGBA()
	return int(r >> 8), int(g >> 8), int(b >> 8)
}
