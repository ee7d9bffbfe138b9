// Package board owns the chalkboard session: the command list, the rotating
// color palette, the undo history, the active animations and the frame
// stepping that drives them.
package board

import "ChalkTalk/internal/geom"

// Kind discriminates the drawing command union.
type Kind string

const (
	KindGraph      Kind = "graph"
	KindAnnotation Kind = "annotation"
	KindDiagram    Kind = "diagram"
	// KindInvalid marks a command with no payload, e.g. decoded from a
	// malformed share message. Enqueue drops these.
	KindInvalid Kind = "invalid"
)

// DiagramKind selects one of the fixed diagram primitives.
type DiagramKind string

const (
	DiagramCircle    DiagramKind = "circle"
	DiagramRectangle DiagramKind = "rectangle"
	DiagramLine      DiagramKind = "line"
	DiagramArrow     DiagramKind = "arrow"
	DiagramMolecule  DiagramKind = "molecule"
	DiagramVector    DiagramKind = "vector"
)

// Graph plots a function of x over a domain with a progressive reveal.
type Graph struct {
	Expression string     `json:"expression"`
	Domain     [2]float64 `json:"domain"`
	SpeedMs    float64    `json:"speed_ms"`
}

// Annotation places a text label at a world point.
type Annotation struct {
	Text string  `json:"text"`
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
}

// Diagram is one of the fixed shape primitives. Which coordinate fields
// matter depends on the kind: line/arrow/vector use both endpoints, circle
// uses the first point plus Radius, rectangle uses the first point as center
// and the second as width/height, molecule uses the first point and Content
// as the formula.
type Diagram struct {
	Kind    DiagramKind `json:"kind"`
	Subject string      `json:"subject,omitempty"`
	Content string      `json:"content,omitempty"`
	X1      float64     `json:"x1"`
	Y1      float64     `json:"y1"`
	X2      float64     `json:"x2,omitempty"`
	Y2      float64     `json:"y2,omitempty"`
	Radius  float64     `json:"radius,omitempty"`
	Label   string      `json:"label,omitempty"`
}

// Command is the tagged union of everything that can be drawn. Exactly one
// payload pointer is set; ID and ColorIndex are assigned by Session.Enqueue.
type Command struct {
	ID         string      `json:"id"`
	ColorIndex int         `json:"color_index"`
	Graph      *Graph      `json:"graph,omitempty"`
	Annotation *Annotation `json:"annotation,omitempty"`
	Diagram    *Diagram    `json:"diagram,omitempty"`
}

// Kind reports which variant this command carries.
func (c Command) Kind() Kind {
	switch {
	case c.Graph != nil:
		return KindGraph
	case c.Annotation != nil:
		return KindAnnotation
	case c.Diagram != nil:
		return KindDiagram
	default:
		return KindInvalid
	}
}

const defaultSpeedMs = 1500

// NewGraph builds a graph command, normalizing a reversed or missing domain
// and a non-positive speed.
func NewGraph(expression string, domain [2]float64, speedMs float64) Command {
	if domain[0] == 0 && domain[1] == 0 {
		domain = [2]float64{-geom.Range, geom.Range}
	}
	if domain[0] > domain[1] {
		domain[0], domain[1] = domain[1], domain[0]
	}
	if domain[0] == domain[1] {
		domain = [2]float64{-geom.Range, geom.Range}
	}
	if speedMs <= 0 {
		speedMs = defaultSpeedMs
	}
	return Command{Graph: &Graph{Expression: expression, Domain: domain, SpeedMs: speedMs}}
}

// NewAnnotation builds a text annotation command.
func NewAnnotation(text string, x, y float64) Command {
	return Command{Annotation: &Annotation{Text: text, X: x, Y: y}}
}

// NewDiagram builds a diagram command from a prepared payload.
func NewDiagram(d Diagram) Command {
	if d.Kind == "" {
		d.Kind = DiagramArrow
	}
	return Command{Diagram: &d}
}
