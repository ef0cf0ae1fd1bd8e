package generation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/lingualog/lingualog-api/internal/contract"
	"github.com/lingualog/lingualog-api/internal/domain"
)

// DefaultAttemptTimeout bounds a single backend call when the orchestrator
// is constructed with no explicit timeout.
const DefaultAttemptTimeout = 15 * time.Second

// Orchestrator walks a priority-ordered adapter chain to produce validated
// results. Each adapter gets exactly one attempt per request; the chain is
// the retry strategy. The first response that decodes and passes contract
// validation wins, and later adapters are never consulted for that request.
type Orchestrator struct {
	logger   *slog.Logger
	adapters []Adapter
	timeout  time.Duration
}

// NewOrchestrator creates an Orchestrator over the given adapters, tried in
// slice order. timeout bounds each individual backend attempt; zero selects
// DefaultAttemptTimeout.
func NewOrchestrator(logger *slog.Logger, adapters []Adapter, timeout time.Duration) (*Orchestrator, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}
	if len(adapters) == 0 {
		return nil, fmt.Errorf("%w: at least one adapter is required", ErrInvalidConfig)
	}
	if timeout <= 0 {
		timeout = DefaultAttemptTimeout
	}

	return &Orchestrator{
		logger:   logger.With(slog.String("component", "generation_orchestrator")),
		adapters: adapters,
		timeout:  timeout,
	}, nil
}

// EntryFeedback analyzes a journal entry. Backend failure is never surfaced
// as an error: when the chain is exhausted the safe fallback result is
// returned with provider ProviderFallback. The error is non-nil only when
// the caller's context ends first.
func (o *Orchestrator) EntryFeedback(ctx context.Context, req Request) (*domain.EntryFeedback, string, error) {
	prompt, err := entryFeedbackPrompt(req)
	if err != nil {
		return nil, "", err
	}

	var feedback *domain.EntryFeedback
	provider, err := o.attemptJSON(ctx, "entry_feedback", prompt, func(raw map[string]any, adapterName string) error {
		result, warns, err := contract.ValidateEntryFeedback(raw, req.Subject)
		if err != nil {
			return err
		}
		o.logWarnings(ctx, "entry_feedback", adapterName, warns)
		feedback = result
		return nil
	})
	if errors.Is(err, ErrExhausted) {
		o.logger.ErrorContext(ctx, "All backends failed, returning fallback feedback",
			slog.String("task", "entry_feedback"))
		return FallbackEntryFeedback(req.Subject), ProviderFallback, nil
	}
	if err != nil {
		return nil, "", err
	}

	return feedback, provider, nil
}

// TermEnrichment enriches a vocabulary term. Failure semantics match
// EntryFeedback: exhaustion yields the safe fallback with provider
// ProviderFallback, and only caller cancellation is an error.
func (o *Orchestrator) TermEnrichment(ctx context.Context, req Request) (*domain.TermEnrichment, string, error) {
	prompt, err := termEnrichmentPrompt(req)
	if err != nil {
		return nil, "", err
	}

	var enrichment *domain.TermEnrichment
	provider, err := o.attemptJSON(ctx, "term_enrichment", prompt, func(raw map[string]any, adapterName string) error {
		result, warns, err := contract.ValidateTermEnrichment(raw)
		if err != nil {
			return err
		}
		o.logWarnings(ctx, "term_enrichment", adapterName, warns)
		enrichment = result
		return nil
	})
	if errors.Is(err, ErrExhausted) {
		o.logger.ErrorContext(ctx, "All backends failed, returning fallback enrichment",
			slog.String("task", "term_enrichment"),
			slog.String("term", req.Subject))
		return FallbackTermEnrichment(), ProviderFallback, nil
	}
	if err != nil {
		return nil, "", err
	}

	return enrichment, provider, nil
}

// MoreExamples generates additional example sentences for a term. An
// exhausted chain yields an empty list rather than an error.
func (o *Orchestrator) MoreExamples(ctx context.Context, req Request) ([]string, error) {
	prompt, err := moreExamplesPrompt(req)
	if err != nil {
		return nil, err
	}

	var examples []string
	_, err = o.attemptJSON(ctx, "more_examples", prompt, func(raw map[string]any, _ string) error {
		elems, ok := raw["examples"].([]any)
		if !ok || len(elems) == 0 {
			return fmt.Errorf("%w: missing examples list", contract.ErrViolation)
		}
		result := make([]string, 0, len(elems))
		for _, elem := range elems {
			if s, ok := elem.(string); ok && s != "" {
				result = append(result, s)
			}
		}
		if len(result) == 0 {
			return fmt.Errorf("%w: examples list has no usable entries", contract.ErrViolation)
		}
		examples = result
		return nil
	})
	if errors.Is(err, ErrExhausted) {
		return []string{}, nil
	}
	if err != nil {
		return nil, err
	}

	return examples, nil
}

// SimplifiedExplanation generates a plain-language explanation of a term.
// An exhausted chain yields a fixed apology string rather than an error.
func (o *Orchestrator) SimplifiedExplanation(ctx context.Context, req Request) (string, error) {
	prompt, err := eli5Prompt(req)
	if err != nil {
		return "", err
	}

	explanation, err := o.attemptText(ctx, "eli5", prompt)
	if errors.Is(err, ErrExhausted) {
		return fallbackEli5, nil
	}
	if err != nil {
		return "", err
	}

	return explanation, nil
}

// Quiz generates a mini quiz about a term. There is no safe placeholder for
// a quiz, so an exhausted chain surfaces ErrExhausted.
func (o *Orchestrator) Quiz(ctx context.Context, req Request) (*domain.MiniQuiz, error) {
	prompt, err := quizPrompt(req)
	if err != nil {
		return nil, err
	}

	var quiz *domain.MiniQuiz
	_, err = o.attemptJSON(ctx, "quiz", prompt, func(raw map[string]any, adapterName string) error {
		result, warns, err := contract.ValidateMiniQuiz(raw, req.Subject)
		if err != nil {
			return err
		}
		o.logWarnings(ctx, "quiz", adapterName, warns)
		quiz = result
		return nil
	})
	if err != nil {
		return nil, err
	}

	return quiz, nil
}

// attemptJSON runs the adapter chain for a JSON-producing task. accept
// decodes the validated result into the caller's variable; returning an
// error from accept skips to the next adapter. The returned string is the
// name of the adapter that produced the accepted response.
func (o *Orchestrator) attemptJSON(ctx context.Context, task, prompt string, accept func(raw map[string]any, adapterName string) error) (string, error) {
	for i, adapter := range o.adapters {
		if err := ctx.Err(); err != nil {
			return "", fmt.Errorf("%w: %v", ErrCanceled, err)
		}

		text, err := o.callAdapter(ctx, adapter, prompt, false)
		if err != nil {
			if ctx.Err() != nil {
				return "", fmt.Errorf("%w: %v", ErrCanceled, ctx.Err())
			}
			o.logAttemptFailure(ctx, task, adapter.Name(), i, err)
			continue
		}

		raw, err := DecodeObject(text)
		if err != nil {
			o.logAttemptFailure(ctx, task, adapter.Name(), i, err)
			continue
		}

		if err := accept(raw, adapter.Name()); err != nil {
			o.logAttemptFailure(ctx, task, adapter.Name(), i, err)
			continue
		}

		return adapter.Name(), nil
	}

	return "", ErrExhausted
}

// attemptText runs the adapter chain for a plain-text task. A blank
// response counts as a failed attempt.
func (o *Orchestrator) attemptText(ctx context.Context, task, prompt string) (string, error) {
	for i, adapter := range o.adapters {
		if err := ctx.Err(); err != nil {
			return "", fmt.Errorf("%w: %v", ErrCanceled, err)
		}

		text, err := o.callAdapter(ctx, adapter, prompt, true)
		if err != nil {
			if ctx.Err() != nil {
				return "", fmt.Errorf("%w: %v", ErrCanceled, ctx.Err())
			}
			o.logAttemptFailure(ctx, task, adapter.Name(), i, err)
			continue
		}

		if trimmed := strings.TrimSpace(text); trimmed != "" {
			return trimmed, nil
		}
		o.logAttemptFailure(ctx, task, adapter.Name(), i, fmt.Errorf("%w: blank response", ErrInvalidResponse))
	}

	return "", ErrExhausted
}

func (o *Orchestrator) callAdapter(ctx context.Context, adapter Adapter, prompt string, plainText bool) (string, error) {
	attemptCtx, cancel := context.WithTimeout(ctx, o.timeout)
	defer cancel()

	if plainText {
		return adapter.GenerateText(attemptCtx, prompt)
	}
	return adapter.GenerateJSON(attemptCtx, prompt)
}

func (o *Orchestrator) logAttemptFailure(ctx context.Context, task, adapterName string, position int, err error) {
	o.logger.WarnContext(ctx, "Backend attempt failed, moving to next adapter",
		slog.String("task", task),
		slog.String("adapter", adapterName),
		slog.Int("chain_position", position),
		slog.String("error", err.Error()))
}

func (o *Orchestrator) logWarnings(ctx context.Context, task, adapterName string, warns []string) {
	for _, warn := range warns {
		o.logger.WarnContext(ctx, "Response field replaced or dropped during validation",
			slog.String("task", task),
			slog.String("adapter", adapterName),
			slog.String("detail", warn))
	}
}
