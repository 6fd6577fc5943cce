package genai

import "context"

// Request describes a single completion call to a generative backend.
type Request struct {
	System      string
	Prompt      string
	MaxTokens   int
	Temperature float32
}

// Generator produces a text completion. Implementations return an error for
// empty completions as well, so callers can treat every failure the same way
// and fall back to canned content.
type Generator interface {
	Generate(ctx context.Context, req Request) (string, error)
}
