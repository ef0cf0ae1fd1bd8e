package generation

import "context"

// Adapter is the boundary between the orchestrator and a concrete
// text-generation backend. Implementations live under internal/platform
// (gemini, openai, mock) and are registered with the orchestrator in
// priority order.
//
// Adapters make exactly one backend call per invocation. Retry is the
// orchestrator's job: a failed adapter is skipped in favor of the next one
// in the chain, never retried.
type Adapter interface {
	// Name identifies the backend in logs and persisted records, for
	// example "gemini" or "openai".
	Name() string

	// GenerateJSON sends the prompt and returns the backend's raw text
	// response, which is expected to contain a single JSON object. The
	// caller decodes and validates it; adapters do not parse responses.
	GenerateJSON(ctx context.Context, prompt string) (string, error)

	// GenerateText sends the prompt and returns the backend's plain-text
	// response.
	GenerateText(ctx context.Context, prompt string) (string, error)
}
