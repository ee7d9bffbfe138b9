// Package interpret talks to the language-model service that turns a spoken
// request into structured tutor actions, and maps those actions onto board
// commands.
package interpret

import (
	"strings"

	"ChalkTalk/internal/board"
)

// Action kinds returned by the interpretation service.
const (
	ActionDraw     = "draw"
	ActionAnnotate = "annotate"
	ActionExplain  = "explain"
	ActionQuiz     = "quiz"
)

// Meta carries the optional extras an action may reference.
type Meta struct {
	Domain []float64   `json:"domain,omitempty"`
	Labels []string    `json:"labels,omitempty"`
	Points [][]float64 `json:"points,omitempty"`
}

// Action is one step of the interpreted lesson.
type Action struct {
	Kind    string `json:"kind"`
	Subject string `json:"subject,omitempty"`
	Content string `json:"content"`
	Visual  string `json:"visual,omitempty"`
	Meta    *Meta  `json:"meta,omitempty"`
}

// Outcome is the board-facing result of one interpretation: the drawing
// commands to enqueue, the narration lines for the caption/speech surface,
// and any quiz prompts for the chat log.
type Outcome struct {
	Commands  []board.Command
	Narration []string
	Quiz      []string
}

// MapActions converts interpreted actions into an Outcome. Explain and quiz
// actions never touch the command queue.
func MapActions(actions []Action) Outcome {
	var out Outcome
	for _, a := range actions {
		switch strings.ToLower(a.Kind) {
		case ActionDraw:
			out.Commands = append(out.Commands, mapDraw(a))
		case ActionAnnotate:
			out.Commands = append(out.Commands, mapAnnotate(a)...)
		case ActionExplain:
			if a.Content != "" {
				out.Narration = append(out.Narration, a.Content)
			}
		case ActionQuiz:
			if a.Content != "" {
				out.Quiz = append(out.Quiz, a.Content)
			}
		}
	}
	return out
}

func mapDraw(a Action) board.Command {
	if strings.EqualFold(a.Visual, "graph") {
		var domain [2]float64
		if a.Meta != nil && len(a.Meta.Domain) == 2 {
			domain = [2]float64{a.Meta.Domain[0], a.Meta.Domain[1]}
		}
		return board.NewGraph(a.Content, domain, 0)
	}

	d := board.Diagram{
		Kind:    diagramKind(a.Subject),
		Subject: a.Subject,
		Content: a.Content,
	}
	if d.Kind == board.DiagramVector || d.Kind == board.DiagramArrow {
		// The service rarely supplies endpoints; give the arrow some reach.
		d.X1, d.Y1, d.X2, d.Y2 = 0, 0, 3, 2
		d.Label = a.Content
	}
	return board.NewDiagram(d)
}

// diagramKind picks a diagram primitive from the lesson subject. The
// heuristic is deliberately simple: chemistry sketches molecules, physics
// sketches vectors, everything else gets an arrow. An explicit kind from the
// service would belong here if it ever starts sending one.
func diagramKind(subject string) board.DiagramKind {
	switch strings.ToLower(strings.TrimSpace(subject)) {
	case "chemistry":
		return board.DiagramMolecule
	case "physics":
		return board.DiagramVector
	default:
		return board.DiagramArrow
	}
}

func mapAnnotate(a Action) []board.Command {
	if a.Meta == nil || len(a.Meta.Points) == 0 {
		return []board.Command{board.NewAnnotation(a.Content, 0, 0)}
	}
	var cmds []board.Command
	for i, p := range a.Meta.Points {
		if len(p) < 2 {
			continue
		}
		label := a.Content
		if i < len(a.Meta.Labels) {
			label = a.Meta.Labels[i]
		}
		cmds = append(cmds, board.NewAnnotation(label, p[0], p[1]))
	}
	if len(cmds) == 0 {
		return []board.Command{board.NewAnnotation(a.Content, 0, 0)}
	}
	return cmds
}
