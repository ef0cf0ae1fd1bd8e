package generation

import "errors"

// Common errors returned by the generation package
var (
	// ErrInvalidConfig is returned when an adapter or the orchestrator is
	// constructed with unusable configuration (missing API key, no adapters)
	ErrInvalidConfig = errors.New("invalid generation configuration")

	// ErrBackendFailure is returned by adapters when the backend call itself
	// fails (network error, HTTP error status, empty completion)
	ErrBackendFailure = errors.New("text-generation backend failure")

	// ErrInvalidResponse is returned when a backend response cannot be
	// decoded into the expected structure
	ErrInvalidResponse = errors.New("invalid response from language model")

	// ErrContentBlocked is returned when the backend refuses the request due
	// to safety filters
	ErrContentBlocked = errors.New("content blocked by language model safety filters")

	// ErrExhausted is returned when every adapter in the chain has been
	// tried once and none produced a usable response
	ErrExhausted = errors.New("all generation backends exhausted")

	// ErrCanceled is returned when the caller's context ends before the
	// chain produces a result. It is distinct from ErrExhausted so callers
	// can tell a user hang-up from a true backend outage.
	ErrCanceled = errors.New("generation canceled by caller")
)
