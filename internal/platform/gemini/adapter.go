package gemini

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"google.golang.org/genai"

	"github.com/lingualog/lingualog-api/internal/generation"
)

const (
	providerName = "gemini"
	mimeTypeJSON = "application/json"
	roleUser     = "user"
)

// Adapter implements generation.Adapter against Google's Gemini API.
type Adapter struct {
	logger *slog.Logger
	client *genai.Client
	model  string
}

// New creates a Gemini adapter. Construction fails fast on missing
// configuration so the application can exclude an unusable backend from
// the chain at startup instead of discovering it per request.
func New(ctx context.Context, logger *slog.Logger, apiKey, model string) (*Adapter, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}
	if apiKey == "" {
		return nil, fmt.Errorf("%w: gemini API key cannot be empty", generation.ErrInvalidConfig)
	}
	if model == "" {
		return nil, fmt.Errorf("%w: gemini model name cannot be empty", generation.ErrInvalidConfig)
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create gemini client: %v", generation.ErrInvalidConfig, err)
	}

	return &Adapter{
		logger: logger.With(slog.String("component", "gemini_adapter")),
		client: client,
		model:  model,
	}, nil
}

// Name implements generation.Adapter.
func (a *Adapter) Name() string {
	return providerName
}

// GenerateJSON implements generation.Adapter. The response MIME type is
// pinned to JSON so the model skips the conversational framing.
func (a *Adapter) GenerateJSON(ctx context.Context, prompt string) (string, error) {
	return a.generate(ctx, prompt, &genai.GenerateContentConfig{
		ResponseMIMEType: mimeTypeJSON,
	})
}

// GenerateText implements generation.Adapter.
func (a *Adapter) GenerateText(ctx context.Context, prompt string) (string, error) {
	return a.generate(ctx, prompt, nil)
}

func (a *Adapter) generate(ctx context.Context, prompt string, config *genai.GenerateContentConfig) (string, error) {
	a.logger.DebugContext(ctx, "Calling Gemini API",
		slog.String("model", a.model),
		slog.Int("prompt_length", len(prompt)))

	contents := []*genai.Content{{
		Role:  roleUser,
		Parts: []*genai.Part{{Text: prompt}},
	}}

	result, err := a.client.Models.GenerateContent(ctx, a.model, contents, config)
	if err != nil {
		return "", fmt.Errorf("%w: gemini request failed: %v", generation.ErrBackendFailure, err)
	}

	if len(result.Candidates) == 0 {
		return "", fmt.Errorf("%w: gemini returned no candidates", generation.ErrBackendFailure)
	}

	candidate := result.Candidates[0]
	if candidate.FinishReason == genai.FinishReasonSafety {
		return "", fmt.Errorf("%w: gemini safety filter", generation.ErrContentBlocked)
	}
	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return "", fmt.Errorf("%w: gemini candidate has no content", generation.ErrBackendFailure)
	}

	text := candidate.Content.Parts[0].Text
	if text == "" {
		return "", fmt.Errorf("%w: gemini candidate has empty text", generation.ErrBackendFailure)
	}

	return text, nil
}
