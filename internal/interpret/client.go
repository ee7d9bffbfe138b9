package interpret

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"
)

const (
	defaultBaseURL = "https://api.anthropic.com"
	defaultModel   = "claude-sonnet-4-20250514"
	maxRetries     = 2
)

const systemPrompt = `You are a math and science tutor driving a 2D chalkboard
that spans x and y from -10 to 10. Interpret the user's request into a JSON
array of actions and output ONLY that array, no prose.

Each action is an object:
  {"kind": "draw|annotate|explain|quiz",
   "subject": "math|chemistry|physics|...",
   "content": "...",
   "visual": "graph|diagram",
   "meta": {"domain": [min,max], "labels": [...], "points": [[x,y],...]}}

Rules:
- kind "draw" with visual "graph": content is an expression in x, e.g. "x*x".
- kind "draw" with visual "diagram": content names the thing to sketch
  (a molecule formula for chemistry, a vector for physics).
- kind "annotate": label points of interest via meta.points and meta.labels.
- kind "explain": content is one short spoken sentence.
- kind "quiz": content is one question for the student.`

// Client calls the interpretation service (the Anthropic messages API).
type Client struct {
	key     string
	model   string
	baseURL string
	http    *http.Client
}

// NewClient builds a client for the given API key. An empty model selects
// the default.
func NewClient(key, model string) *Client {
	if model == "" {
		model = defaultModel
	}
	return &Client{
		key:     key,
		model:   model,
		baseURL: defaultBaseURL,
		http:    &http.Client{Timeout: 60 * time.Second},
	}
}

type wireMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Interpret sends the transcript and returns the interpreted actions. A
// transport or parse failure returns an error and never partial actions.
func (c *Client) Interpret(ctx context.Context, transcript string) ([]Action, error) {
	var lastErr error
	for attempt := 0; attempt <= maxRetries; attempt++ {
		if attempt > 0 {
			log.Printf("[interpret] retrying (%d/%d) after: %v", attempt, maxRetries, lastErr)
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(time.Duration(attempt) * time.Second):
			}
		}
		actions, err := c.interpretOnce(ctx, transcript)
		if err == nil {
			return actions, nil
		}
		lastErr = err
	}
	return nil, fmt.Errorf("interpretation failed after %d attempts: %w", maxRetries+1, lastErr)
}

func (c *Client) interpretOnce(ctx context.Context, transcript string) ([]Action, error) {
	body := map[string]any{
		"model":      c.model,
		"max_tokens": 2048,
		"system":     systemPrompt,
		"messages":   []wireMessage{{Role: "user", Content: transcript}},
	}
	data, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/v1/messages", bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", c.key)
	req.Header.Set("anthropic-version", "2023-06-01")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("API error %d: %s", resp.StatusCode, string(respBody))
	}

	var result struct {
		Content []struct {
			Text string `json:"text"`
		} `json:"content"`
	}
	if err := json.Unmarshal(respBody, &result); err != nil {
		return nil, err
	}
	if len(result.Content) == 0 {
		return nil, fmt.Errorf("empty response")
	}
	return parseActions(result.Content[0].Text)
}

// parseActions pulls the JSON action array out of the model's reply, which
// may wrap it in code fences or stray prose.
func parseActions(text string) ([]Action, error) {
	start := strings.Index(text, "[")
	end := strings.LastIndex(text, "]")
	if start < 0 || end <= start {
		return nil, fmt.Errorf("no action array in response")
	}
	var actions []Action
	if err := json.Unmarshal([]byte(text[start:end+1]), &actions); err != nil {
		return nil, fmt.Errorf("parse actions: %w", err)
	}
	return actions, nil
}
