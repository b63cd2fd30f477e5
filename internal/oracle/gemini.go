package oracle

import (
	"context"
	"errors"
	"fmt"
	"time"

	"google.golang.org/genai"
)

// geminiClient implements Client using the Google Gemini SDK. This is the
// default backend; the reply is requested as plain text and the JSON
// object is extracted downstream, so no structured-output mode is used.
type geminiClient struct {
	client   *genai.Client
	cfg      Config
	observer Observer
}

func newGeminiClient(ctx context.Context, cfg Config, observer Observer) (*geminiClient, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("gemini API key is required")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create Gemini client: %w", err)
	}

	return &geminiClient{client: client, cfg: cfg, observer: observer}, nil
}

func (c *geminiClient) Generate(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()
	requestID := newRequestID()

	ctx, cancel := context.WithTimeout(ctx, time.Duration(c.cfg.TimeoutMs)*time.Millisecond)
	defer cancel()

	config := &genai.GenerateContentConfig{
		MaxOutputTokens: int32(c.cfg.MaxTokens),
	}
	if c.cfg.Temperature > 0 {
		temp := float32(c.cfg.Temperature)
		config.Temperature = &temp
	}
	if req.SystemPrompt != "" {
		config.SystemInstruction = &genai.Content{
			Parts: []*genai.Part{{Text: req.SystemPrompt}},
		}
	}

	contents := []*genai.Content{
		{Role: "user", Parts: []*genai.Part{{Text: req.UserPrompt}}},
	}

	result, err := c.client.Models.GenerateContent(ctx, c.cfg.Model, contents, config)
	latency := time.Since(start).Milliseconds()

	if err != nil {
		mapped := mapGeminiError(ctx, err)
		c.observer.OnCallComplete(CallEvent{
			RequestID: requestID,
			Provider:  ProviderGemini,
			Model:     c.cfg.Model,
			LatencyMs: latency,
			Success:   false,
			ErrorCode: errorCode(mapped),
		})
		return nil, mapped
	}

	c.observer.OnCallComplete(CallEvent{
		RequestID: requestID,
		Provider:  ProviderGemini,
		Model:     c.cfg.Model,
		LatencyMs: latency,
		Success:   true,
	})
	return &Response{
		Text:      result.Text(),
		Model:     c.cfg.Model,
		LatencyMs: latency,
	}, nil
}

func mapGeminiError(ctx context.Context, err error) error {
	if ctx.Err() != nil {
		return fmt.Errorf("%w: %v", ErrTimeout, err)
	}
	var apiErr *genai.APIError
	if errors.As(err, &apiErr) {
		return fmt.Errorf("%w: gemini API error %d: %v", ErrUnavailable, apiErr.Code, err)
	}
	return fmt.Errorf("%w: %v", ErrUnavailable, err)
}
