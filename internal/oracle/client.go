// Package oracle talks to the external recommendation oracle: a
// text-generation model treated as a black-box function from prompt to
// text. Two backends exist, the Gemini API and a local Ollama server.
package oracle

import (
	"context"
	"fmt"
)

// Request holds the parameters for one oracle generation call.
type Request struct {
	SystemPrompt string
	UserPrompt   string
}

// Response holds the raw result of one oracle generation call.
type Response struct {
	Text      string
	Model     string
	LatencyMs int64
}

// Client is the oracle abstraction. Implementations make exactly one
// attempt per Generate call; retry policy belongs to callers, and the
// recommendation flow performs none.
type Client interface {
	Generate(ctx context.Context, req Request) (*Response, error)
}

// NewClient constructs the backend selected in cfg.
func NewClient(ctx context.Context, cfg Config, observer Observer) (Client, error) {
	if observer == nil {
		observer = NoopObserver{}
	}
	switch cfg.Provider {
	case ProviderGemini:
		return newGeminiClient(ctx, cfg, observer)
	case ProviderOllama:
		return newOllamaClient(cfg, observer), nil
	default:
		return nil, fmt.Errorf("unknown oracle provider %q", cfg.Provider)
	}
}
