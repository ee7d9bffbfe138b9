package interpret

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"ChalkTalk/internal/board"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapDrawGraph(t *testing.T) {
	out := MapActions([]Action{{
		Kind: "draw", Subject: "math", Content: "x*x", Visual: "graph",
		Meta: &Meta{Domain: []float64{-5, 5}},
	}})
	require.Len(t, out.Commands, 1)
	cmd := out.Commands[0]
	require.Equal(t, board.KindGraph, cmd.Kind())
	assert.Equal(t, "x*x", cmd.Graph.Expression)
	assert.Equal(t, [2]float64{-5, 5}, cmd.Graph.Domain)
}

func TestMapDrawGraphDefaultDomain(t *testing.T) {
	out := MapActions([]Action{{Kind: "draw", Content: "sin(x)", Visual: "graph"}})
	require.Len(t, out.Commands, 1)
	assert.Equal(t, [2]float64{-10, 10}, out.Commands[0].Graph.Domain)
	assert.Equal(t, 1500.0, out.Commands[0].Graph.SpeedMs)
}

func TestMapDrawDiagramBySubject(t *testing.T) {
	cases := []struct {
		subject string
		want    board.DiagramKind
	}{
		{"chemistry", board.DiagramMolecule},
		{"physics", board.DiagramVector},
		{"history", board.DiagramArrow},
		{"", board.DiagramArrow},
	}
	for _, tc := range cases {
		out := MapActions([]Action{{Kind: "draw", Subject: tc.subject, Content: "thing", Visual: "diagram"}})
		require.Len(t, out.Commands, 1, tc.subject)
		require.Equal(t, board.KindDiagram, out.Commands[0].Kind())
		assert.Equal(t, tc.want, out.Commands[0].Diagram.Kind, tc.subject)
	}
}

func TestMapAnnotateWithPoints(t *testing.T) {
	out := MapActions([]Action{{
		Kind: "annotate", Content: "vertex",
		Meta: &Meta{
			Points: [][]float64{{0, 0}, {2, 4}},
			Labels: []string{"origin", "peak"},
		},
	}})
	require.Len(t, out.Commands, 2)
	assert.Equal(t, "origin", out.Commands[0].Annotation.Text)
	assert.Equal(t, "peak", out.Commands[1].Annotation.Text)
	assert.Equal(t, 2.0, out.Commands[1].Annotation.X)
	assert.Equal(t, 4.0, out.Commands[1].Annotation.Y)
}

func TestMapAnnotateWithoutPoints(t *testing.T) {
	out := MapActions([]Action{{Kind: "annotate", Content: "note to self"}})
	require.Len(t, out.Commands, 1)
	a := out.Commands[0].Annotation
	assert.Equal(t, "note to self", a.Text)
	assert.Equal(t, 0.0, a.X)
	assert.Equal(t, 0.0, a.Y)
}

func TestMapExplainAndQuizBypassTheQueue(t *testing.T) {
	out := MapActions([]Action{
		{Kind: "explain", Content: "a parabola opens upward"},
		{Kind: "quiz", Content: "what is the vertex?"},
	})
	assert.Empty(t, out.Commands)
	assert.Equal(t, []string{"a parabola opens upward"}, out.Narration)
	assert.Equal(t, []string{"what is the vertex?"}, out.Quiz)
}

func TestParseActionsStripsProse(t *testing.T) {
	text := "Here you go:\n```json\n[{\"kind\":\"draw\",\"content\":\"x\",\"visual\":\"graph\"}]\n```"
	actions, err := parseActions(text)
	require.NoError(t, err)
	require.Len(t, actions, 1)
	assert.Equal(t, "draw", actions[0].Kind)
}

func TestParseActionsRejectsNonArray(t *testing.T) {
	_, err := parseActions("I could not interpret that request.")
	assert.Error(t, err)
}

func TestInterpretAgainstServer(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/messages", r.URL.Path)
		assert.NotEmpty(t, r.Header.Get("x-api-key"))

		reply := map[string]any{
			"content": []map[string]string{
				{"text": `[{"kind":"draw","subject":"math","content":"x*x","visual":"graph"}]`},
			},
		}
		json.NewEncoder(w).Encode(reply)
	}))
	defer srv.Close()

	c := NewClient("test-key", "")
	c.baseURL = srv.URL
	actions, err := c.Interpret(context.Background(), "draw a parabola")
	require.NoError(t, err)
	require.Len(t, actions, 1)
	assert.Equal(t, "x*x", actions[0].Content)
}

func TestInterpretServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "overloaded", http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewClient("test-key", "")
	c.baseURL = srv.URL
	_, err := c.Interpret(context.Background(), "anything")
	assert.Error(t, err)
}
