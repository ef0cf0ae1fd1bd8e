package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"

	"github.com/lingualog/lingualog-api/internal/domain"
	"github.com/lingualog/lingualog-api/internal/generation"
	"github.com/lingualog/lingualog-api/internal/store"
)

// EnrichmentGenerator is the slice of the generation orchestrator the
// enrichment service needs.
type EnrichmentGenerator interface {
	TermEnrichment(ctx context.Context, req generation.Request) (*domain.TermEnrichment, string, error)
}

// EnrichmentService provides cached term enrichment.
type EnrichmentService interface {
	// EnrichTerm returns the enrichment for the user's vocabulary item,
	// serving from the cache when a record with the current prompt version
	// exists. The bool result reports whether the cache served the result.
	EnrichTerm(ctx context.Context, itemID, userID uuid.UUID) (*domain.TermEnrichment, bool, error)

	// RefreshTerm regenerates the enrichment for the user's vocabulary item,
	// bypassing the cache read and replacing any existing record.
	RefreshTerm(ctx context.Context, itemID, userID uuid.UUID) (*domain.TermEnrichment, error)
}

// EnrichmentServiceError wraps errors from the enrichment service with context.
type EnrichmentServiceError struct {
	// Operation is the operation that failed (e.g., "enrich_term", "refresh_term")
	Operation string
	// Message is a human-readable description of the error
	Message string
	// Err is the underlying error that caused the failure
	Err error
}

// Error implements the error interface for EnrichmentServiceError.
func (e *EnrichmentServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("enrichment service %s failed: %s: %v", e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("enrichment service %s failed: %s", e.Operation, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *EnrichmentServiceError) Unwrap() error {
	return e.Err
}

// NewEnrichmentServiceError creates a new EnrichmentServiceError.
// It returns known sentinel errors directly without wrapping.
func NewEnrichmentServiceError(operation, message string, err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, ErrVocabularyItemNotFound) ||
		errors.Is(err, ErrNotOwned) ||
		errors.Is(err, generation.ErrCanceled) {
		return err
	}

	return &EnrichmentServiceError{
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}

// enrichmentServiceImpl implements the EnrichmentService interface
type enrichmentServiceImpl struct {
	vocabService  VocabularyService
	enrichStore   store.EnrichmentStore
	generator     EnrichmentGenerator
	promptVersion int
	group         singleflight.Group
	logger        *slog.Logger
}

// NewEnrichmentService creates a new EnrichmentService.
// It returns an error if any of the required dependencies are nil or invalid.
func NewEnrichmentService(
	vocabService VocabularyService,
	enrichStore store.EnrichmentStore,
	generator EnrichmentGenerator,
	promptVersion int,
	logger *slog.Logger,
) (EnrichmentService, error) {
	if vocabService == nil {
		return nil, &EnrichmentServiceError{
			Operation: "create_service",
			Message:   "vocabService cannot be nil",
		}
	}
	if enrichStore == nil {
		return nil, &EnrichmentServiceError{
			Operation: "create_service",
			Message:   "enrichStore cannot be nil",
		}
	}
	if generator == nil {
		return nil, &EnrichmentServiceError{
			Operation: "create_service",
			Message:   "generator cannot be nil",
		}
	}
	if promptVersion < 1 {
		return nil, &EnrichmentServiceError{
			Operation: "create_service",
			Message:   fmt.Sprintf("promptVersion must be positive, got %d", promptVersion),
		}
	}

	// Use provided logger or create default
	if logger == nil {
		logger = slog.Default()
	}

	return &enrichmentServiceImpl{
		vocabService:  vocabService,
		enrichStore:   enrichStore,
		generator:     generator,
		promptVersion: promptVersion,
		logger:        logger.With("component", "enrichment_service"),
	}, nil
}

// EnrichTerm serves the enrichment for a vocabulary item, preferring the
// cache. A cached record only counts as a hit when its prompt version
// matches the current one; stale records are regenerated and replaced.
func (s *enrichmentServiceImpl) EnrichTerm(
	ctx context.Context,
	itemID, userID uuid.UUID,
) (*domain.TermEnrichment, bool, error) {
	item, err := s.vocabService.GetItem(ctx, itemID, userID)
	if err != nil {
		return nil, false, NewEnrichmentServiceError("enrich_term", "failed to resolve vocabulary item", err)
	}

	// Cache keys use the canonical code the item was saved with.
	record, err := s.enrichStore.GetByTermAndLanguage(ctx, item.Term, item.Language)
	if err == nil && record.PromptVersion == s.promptVersion {
		s.logger.Debug("enrichment cache hit",
			"term", item.Term,
			"language", item.Language)
		return &record.Enrichment, true, nil
	}
	if err != nil && !errors.Is(err, store.ErrEnrichmentNotFound) {
		// A broken cache degrades to a regeneration, not a failure.
		s.logger.Warn("enrichment cache read failed, regenerating",
			"error", err,
			"term", item.Term,
			"language", item.Language)
	}

	enrichment, err := s.generate(ctx, item)
	if err != nil {
		return nil, false, NewEnrichmentServiceError("enrich_term", "generation failed", err)
	}
	return enrichment, false, nil
}

// RefreshTerm forces regeneration, replacing any cached record wholesale.
// The old record is dropped first: a refresh that ends in a fallback result
// must not keep serving the entry the caller asked to replace.
func (s *enrichmentServiceImpl) RefreshTerm(
	ctx context.Context,
	itemID, userID uuid.UUID,
) (*domain.TermEnrichment, error) {
	item, err := s.vocabService.GetItem(ctx, itemID, userID)
	if err != nil {
		return nil, NewEnrichmentServiceError("refresh_term", "failed to resolve vocabulary item", err)
	}

	err = s.enrichStore.DeleteByTermAndLanguage(ctx, item.Term, item.Language)
	if err != nil && !errors.Is(err, store.ErrEnrichmentNotFound) {
		s.logger.Warn("failed to invalidate cached enrichment before refresh",
			"error", err,
			"term", item.Term,
			"language", item.Language)
	}

	enrichment, err := s.generate(ctx, item)
	if err != nil {
		return nil, NewEnrichmentServiceError("refresh_term", "generation failed", err)
	}
	return enrichment, nil
}

// generate runs one deduplicated generation for the item's (term, language)
// key. Concurrent requests for the same key share a single backend call.
//
// The flight runs on a context detached from the initiating caller, so one
// caller hanging up cannot poison the shared result for waiters whose
// contexts are still live. The per-attempt timeout inside the orchestrator
// still bounds the detached call. A caller whose own context ends stops
// waiting and reports cancellation for itself only; the flight completes
// and populates the cache for everyone else.
func (s *enrichmentServiceImpl) generate(
	ctx context.Context,
	item *domain.VocabularyItem,
) (*domain.TermEnrichment, error) {
	key := item.Term + "|" + item.Language
	flightCtx := context.WithoutCancel(ctx)

	ch := s.group.DoChan(key, func() (interface{}, error) {
		enrichment, provider, err := s.generator.TermEnrichment(flightCtx, generation.Request{
			Subject:  item.Term,
			Language: item.Language,
		})
		if err != nil {
			return nil, err
		}

		// Fallback results keep the user unblocked but must never be
		// cached as if they were real enrichments.
		if provider != generation.ProviderFallback {
			s.persist(flightCtx, item, provider, enrichment)
		}
		return enrichment, nil
	})

	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%w: %v", generation.ErrCanceled, ctx.Err())
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		if res.Shared {
			s.logger.Debug("enrichment generation deduplicated",
				"term", item.Term,
				"language", item.Language)
		}
		return res.Val.(*domain.TermEnrichment), nil
	}
}

// persist writes the freshly generated enrichment to the cache. Persistence
// failure degrades durability, not availability: the result is still
// returned to the caller.
func (s *enrichmentServiceImpl) persist(
	ctx context.Context,
	item *domain.VocabularyItem,
	provider string,
	enrichment *domain.TermEnrichment,
) {
	record, err := domain.NewEnrichmentRecord(item.Term, item.Language, provider, s.promptVersion, *enrichment)
	if err != nil {
		s.logger.Error("failed to build enrichment record",
			"error", err,
			"term", item.Term,
			"language", item.Language)
		return
	}

	if err := s.enrichStore.Upsert(ctx, record); err != nil {
		s.logger.Error("failed to persist enrichment, serving uncached result",
			"error", err,
			"term", item.Term,
			"language", item.Language,
			"provider", provider)
		return
	}

	s.logger.Info("enrichment cached",
		"term", item.Term,
		"language", item.Language,
		"provider", provider,
		"prompt_version", s.promptVersion)
}
