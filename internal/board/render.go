package board

import (
	"log"

	"ChalkTalk/internal/geom"
	"ChalkTalk/internal/render"
)

const graphStrokeWidth = 2.5

// Render paints the whole board onto a surface sized width x height pixels:
// axes first, then every command in submission order with its fixed palette
// color. Commands still animating draw only their revealed prefix.
func (s *Session) Render(sf render.Surface, width, height float64) {
	m := geom.NewMapper(width, height)

	s.mu.Lock()
	defer s.mu.Unlock()

	render.Axes(sf, m)
	for _, cmd := range s.commands {
		if a, ok := s.active[cmd.ID]; ok {
			render.Polyline(sf, m, a.Points[:a.VisibleCount()], a.GapX,
				PaletteColor(cmd.ColorIndex), graphStrokeWidth)
			continue
		}
		s.renderCompleted(sf, m, cmd)
	}
}

// renderCompleted draws a fully-revealed command. Caller must hold s.mu.
func (s *Session) renderCompleted(sf render.Surface, m geom.Mapper, cmd Command) {
	col := PaletteColor(cmd.ColorIndex)
	switch cmd.Kind() {
	case KindGraph:
		if st, ok := s.strokeFor(cmd); ok {
			render.Polyline(sf, m, st.points, st.gapX, col, graphStrokeWidth)
		}
	case KindAnnotation:
		a := cmd.Annotation
		render.Annotation(sf, m, a.Text, a.X, a.Y, col)
	case KindDiagram:
		d := cmd.Diagram
		switch d.Kind {
		case DiagramCircle:
			r := d.Radius
			if r <= 0 {
				r = 2
			}
			render.Disc(sf, m, d.X1, d.Y1, r, col, d.Label)
		case DiagramRectangle:
			w, h := d.X2, d.Y2
			if w <= 0 {
				w = 4
			}
			if h <= 0 {
				h = 2
			}
			render.Box(sf, m, d.X1, d.Y1, w, h, col, d.Label)
		case DiagramLine:
			render.Segment(sf, m, d.X1, d.Y1, d.X2, d.Y2, col)
		case DiagramArrow, DiagramVector:
			render.Vector(sf, m, d.X1, d.Y1, d.X2, d.Y2, col, d.Label)
		case DiagramMolecule:
			render.Molecule(sf, m, d.Content, d.X1, d.Y1, col)
		default:
			log.Printf("[board] unknown diagram kind %q", d.Kind)
		}
	}
}
