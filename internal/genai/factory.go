package genai

import (
	"context"
	"fmt"
	"strings"
)

type Options struct {
	Provider string
	APIKey   string
	Model    string
	BaseURL  string
}

// New resolves the configured provider once at startup. An empty or "none"
// provider, or a missing API key, means no backend is configured: the caller
// gets a nil Generator and serves canned content only.
func New(ctx context.Context, opts Options) (Generator, error) {
	provider := strings.ToLower(strings.TrimSpace(opts.Provider))
	if provider == "" || provider == "none" || strings.TrimSpace(opts.APIKey) == "" {
		return nil, nil
	}

	switch provider {
	case "openai":
		return NewOpenAIGenerator(opts.APIKey, opts.Model, opts.BaseURL), nil
	case "gemini":
		return NewGeminiGenerator(ctx, opts.APIKey, opts.Model)
	default:
		return nil, fmt.Errorf("unsupported ai provider: %s", opts.Provider)
	}
}
