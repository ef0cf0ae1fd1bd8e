package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/lingualog/lingualog-api/internal/domain"
	"github.com/lingualog/lingualog-api/internal/generation"
)

// JournalGenerator is the slice of the generation orchestrator the journal
// service needs: entry analysis plus the on-demand extras.
type JournalGenerator interface {
	EntryFeedback(ctx context.Context, req generation.Request) (*domain.EntryFeedback, string, error)
	MoreExamples(ctx context.Context, req generation.Request) ([]string, error)
	SimplifiedExplanation(ctx context.Context, req generation.Request) (string, error)
	Quiz(ctx context.Context, req generation.Request) (*domain.MiniQuiz, error)
}

// AnalyzeEntryInput carries the inputs for journal entry analysis.
type AnalyzeEntryInput struct {
	Text     string
	Language string
	Title    string
	Level    string
}

// ExtrasInput carries the inputs for the uncached extras: more examples,
// a simplified explanation, or a mini quiz about a term.
type ExtrasInput struct {
	Term             string
	Language         string
	ExistingExamples []string
	Count            int
	Difficulty       string
}

// JournalService provides journal entry analysis and the uncached extras.
// None of its results are persisted; every call reaches the generation
// chain directly.
type JournalService interface {
	// AnalyzeEntry analyzes a journal entry. The provider result names the
	// backend that produced the feedback, or generation.ProviderFallback
	// when every backend failed.
	AnalyzeEntry(ctx context.Context, input AnalyzeEntryInput) (*domain.EntryFeedback, string, error)

	// MoreExamples generates additional example sentences for a term.
	MoreExamples(ctx context.Context, input ExtrasInput) ([]string, error)

	// SimplifiedExplanation explains a term in very simple language.
	SimplifiedExplanation(ctx context.Context, input ExtrasInput) (string, error)

	// Quiz generates a short multiple-choice quiz about a term.
	Quiz(ctx context.Context, input ExtrasInput) (*domain.MiniQuiz, error)
}

// JournalServiceError wraps errors from the journal service with context.
type JournalServiceError struct {
	// Operation is the operation that failed (e.g., "analyze_entry", "quiz")
	Operation string
	// Message is a human-readable description of the error
	Message string
	// Err is the underlying error that caused the failure
	Err error
}

// Error implements the error interface for JournalServiceError.
func (e *JournalServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("journal service %s failed: %s: %v", e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("journal service %s failed: %s", e.Operation, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *JournalServiceError) Unwrap() error {
	return e.Err
}

// NewJournalServiceError creates a new JournalServiceError.
// It returns known sentinel errors directly without wrapping.
func NewJournalServiceError(operation, message string, err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, generation.ErrCanceled) ||
		errors.Is(err, generation.ErrExhausted) ||
		errors.Is(err, domain.ErrEmptyContent) {
		return err
	}

	return &JournalServiceError{
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}

// journalServiceImpl implements the JournalService interface
type journalServiceImpl struct {
	generator JournalGenerator
	logger    *slog.Logger
}

// NewJournalService creates a new JournalService.
// It returns an error if the generator is nil.
func NewJournalService(generator JournalGenerator, logger *slog.Logger) (JournalService, error) {
	if generator == nil {
		return nil, &JournalServiceError{
			Operation: "create_service",
			Message:   "generator cannot be nil",
		}
	}

	// Use provided logger or create default
	if logger == nil {
		logger = slog.Default()
	}

	return &journalServiceImpl{
		generator: generator,
		logger:    logger.With("component", "journal_service"),
	}, nil
}

// AnalyzeEntry analyzes a journal entry through the generation chain.
func (s *journalServiceImpl) AnalyzeEntry(
	ctx context.Context,
	input AnalyzeEntryInput,
) (*domain.EntryFeedback, string, error) {
	if strings.TrimSpace(input.Text) == "" {
		return nil, "", domain.ErrEmptyContent
	}

	feedback, provider, err := s.generator.EntryFeedback(ctx, generation.Request{
		Subject:  input.Text,
		Language: input.Language,
		Title:    input.Title,
		Level:    input.Level,
	})
	if err != nil {
		return nil, "", NewJournalServiceError("analyze_entry", "generation failed", err)
	}

	if provider == generation.ProviderFallback {
		s.logger.Warn("journal analysis served fallback feedback",
			"language", input.Language)
	}
	return feedback, provider, nil
}

// MoreExamples generates additional example sentences for a term.
func (s *journalServiceImpl) MoreExamples(ctx context.Context, input ExtrasInput) ([]string, error) {
	if strings.TrimSpace(input.Term) == "" {
		return nil, domain.ErrEmptyContent
	}

	examples, err := s.generator.MoreExamples(ctx, generation.Request{
		Subject:          input.Term,
		Language:         input.Language,
		ExistingExamples: input.ExistingExamples,
		Count:            input.Count,
	})
	if err != nil {
		return nil, NewJournalServiceError("more_examples", "generation failed", err)
	}
	return examples, nil
}

// SimplifiedExplanation explains a term in very simple language.
func (s *journalServiceImpl) SimplifiedExplanation(ctx context.Context, input ExtrasInput) (string, error) {
	if strings.TrimSpace(input.Term) == "" {
		return "", domain.ErrEmptyContent
	}

	explanation, err := s.generator.SimplifiedExplanation(ctx, generation.Request{
		Subject:  input.Term,
		Language: input.Language,
	})
	if err != nil {
		return "", NewJournalServiceError("simplified_explanation", "generation failed", err)
	}
	return explanation, nil
}

// Quiz generates a short multiple-choice quiz about a term.
func (s *journalServiceImpl) Quiz(ctx context.Context, input ExtrasInput) (*domain.MiniQuiz, error) {
	if strings.TrimSpace(input.Term) == "" {
		return nil, domain.ErrEmptyContent
	}

	quiz, err := s.generator.Quiz(ctx, generation.Request{
		Subject:    input.Term,
		Language:   input.Language,
		Count:      input.Count,
		Difficulty: input.Difficulty,
	})
	if err != nil {
		return nil, NewJournalServiceError("quiz", "generation failed", err)
	}
	return quiz, nil
}
