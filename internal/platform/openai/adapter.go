package openai

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/openai/openai-go/shared"

	"github.com/lingualog/lingualog-api/internal/generation"
)

const providerName = "openai"

// systemPrompt frames every request. The word JSON must appear somewhere
// in the conversation for the json_object response format to be accepted.
const systemPrompt = "You are a language-learning assistant. Answer the request precisely; when asked for JSON, respond with a single valid JSON object and nothing else."

// Adapter implements generation.Adapter against the OpenAI chat
// completions API.
type Adapter struct {
	logger *slog.Logger
	client openai.Client
	model  string
}

// New creates an OpenAI adapter, failing fast on missing configuration.
func New(logger *slog.Logger, apiKey, model string) (*Adapter, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}
	if apiKey == "" {
		return nil, fmt.Errorf("%w: openai API key cannot be empty", generation.ErrInvalidConfig)
	}
	if model == "" {
		return nil, fmt.Errorf("%w: openai model name cannot be empty", generation.ErrInvalidConfig)
	}

	return &Adapter{
		logger: logger.With(slog.String("component", "openai_adapter")),
		client: openai.NewClient(option.WithAPIKey(apiKey)),
		model:  model,
	}, nil
}

// Name implements generation.Adapter.
func (a *Adapter) Name() string {
	return providerName
}

// GenerateJSON implements generation.Adapter using the json_object
// response format so the completion is a bare JSON object.
func (a *Adapter) GenerateJSON(ctx context.Context, prompt string) (string, error) {
	params := a.baseParams(prompt)
	params.ResponseFormat = openai.ChatCompletionNewParamsResponseFormatUnion{
		OfJSONObject: &shared.ResponseFormatJSONObjectParam{},
	}
	return a.complete(ctx, params)
}

// GenerateText implements generation.Adapter.
func (a *Adapter) GenerateText(ctx context.Context, prompt string) (string, error) {
	return a.complete(ctx, a.baseParams(prompt))
}

func (a *Adapter) baseParams(prompt string) openai.ChatCompletionNewParams {
	return openai.ChatCompletionNewParams{
		Model: openai.ChatModel(a.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemPrompt),
			openai.UserMessage(prompt),
		},
	}
}

func (a *Adapter) complete(ctx context.Context, params openai.ChatCompletionNewParams) (string, error) {
	a.logger.DebugContext(ctx, "Calling OpenAI API", slog.String("model", a.model))

	completion, err := a.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return "", fmt.Errorf("%w: openai request failed: %v", generation.ErrBackendFailure, err)
	}

	if len(completion.Choices) == 0 {
		return "", fmt.Errorf("%w: openai returned no choices", generation.ErrBackendFailure)
	}

	content := completion.Choices[0].Message.Content
	if content == "" {
		return "", fmt.Errorf("%w: openai returned an empty completion", generation.ErrBackendFailure)
	}

	return content, nil
}
