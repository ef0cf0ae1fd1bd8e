package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/lingualog/lingualog-api/internal/domain"
	"github.com/lingualog/lingualog-api/internal/language"
	"github.com/lingualog/lingualog-api/internal/store"
)

// VocabularyRepository defines the repository interface for the service layer.
// This is aligned with store.VocabularyStore to ensure proper separation of concerns.
type VocabularyRepository interface {
	// Create saves a new vocabulary item to the store
	Create(ctx context.Context, item *domain.VocabularyItem) error

	// GetByID retrieves a vocabulary item by its unique ID
	GetByID(ctx context.Context, id uuid.UUID) (*domain.VocabularyItem, error)

	// ListByUser retrieves the user's vocabulary items, newest first
	ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*domain.VocabularyItem, error)

	// Delete removes a vocabulary item
	Delete(ctx context.Context, id uuid.UUID) error

	// WithTx returns a new repository instance that uses the provided transaction
	WithTx(tx *sql.Tx) VocabularyRepository

	// DB returns the underlying database connection
	DB() *sql.DB
}

// VocabularyService provides vocabulary list operations.
type VocabularyService interface {
	// SaveTerm adds a term to the user's vocabulary list. The language is
	// normalized to its canonical code before saving.
	SaveTerm(ctx context.Context, userID uuid.UUID, term, lang string) (*domain.VocabularyItem, error)

	// GetItem retrieves a vocabulary item, enforcing ownership.
	GetItem(ctx context.Context, itemID, userID uuid.UUID) (*domain.VocabularyItem, error)

	// ListItems retrieves the user's vocabulary items, newest first.
	ListItems(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*domain.VocabularyItem, error)

	// DeleteItem removes a vocabulary item, enforcing ownership.
	DeleteItem(ctx context.Context, itemID, userID uuid.UUID) error
}

// VocabularyServiceError wraps errors from the vocabulary service with context.
type VocabularyServiceError struct {
	// Operation is the operation that failed (e.g., "save_term", "delete_item")
	Operation string
	// Message is a human-readable description of the error
	Message string
	// Err is the underlying error that caused the failure
	Err error
}

// Error implements the error interface for VocabularyServiceError.
func (e *VocabularyServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("vocabulary service %s failed: %s: %v", e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("vocabulary service %s failed: %s", e.Operation, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *VocabularyServiceError) Unwrap() error {
	return e.Err
}

// NewVocabularyServiceError creates a new VocabularyServiceError.
// It returns known sentinel errors directly without wrapping.
func NewVocabularyServiceError(operation, message string, err error) error {
	if err == nil {
		return nil
	}

	// Check for service-defined sentinel errors
	if errors.Is(err, ErrVocabularyItemNotFound) ||
		errors.Is(err, ErrDuplicateTerm) ||
		errors.Is(err, ErrNotOwned) {
		return err
	}

	// Map store-level sentinel errors to service-level ones
	if errors.Is(err, store.ErrVocabularyItemNotFound) {
		return ErrVocabularyItemNotFound
	}
	if errors.Is(err, store.ErrVocabularyItemExists) {
		return ErrDuplicateTerm
	}

	// If not a sentinel to be returned directly, wrap it
	return &VocabularyServiceError{
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}

// vocabularyServiceImpl implements the VocabularyService interface
type vocabularyServiceImpl struct {
	vocabRepo VocabularyRepository
	logger    *slog.Logger
}

// NewVocabularyService creates a new VocabularyService.
// It returns an error if any of the required dependencies are nil.
func NewVocabularyService(
	vocabRepo VocabularyRepository,
	logger *slog.Logger,
) (VocabularyService, error) {
	if vocabRepo == nil {
		return nil, &VocabularyServiceError{
			Operation: "create_service",
			Message:   "vocabRepo cannot be nil",
		}
	}

	// Use provided logger or create default
	if logger == nil {
		logger = slog.Default()
	}

	return &vocabularyServiceImpl{
		vocabRepo: vocabRepo,
		logger:    logger.With("component", "vocabulary_service"),
	}, nil
}

// SaveTerm creates a new vocabulary item for the user.
// Uses a transaction for the creation to ensure atomicity.
func (s *vocabularyServiceImpl) SaveTerm(
	ctx context.Context,
	userID uuid.UUID,
	term, lang string,
) (*domain.VocabularyItem, error) {
	// Unrecognized languages are saved as-is rather than rejected; the raw
	// identifier becomes the cache key and prompts carry it unchanged.
	if !language.Known(lang) {
		s.logger.Warn("saving term in unrecognized language",
			"language", lang,
			"user_id", userID)
	}

	item, err := domain.NewVocabularyItem(userID, term, language.Code(lang))
	if err != nil {
		s.logger.Error("failed to create vocabulary item object",
			"error", err,
			"user_id", userID)
		return nil, NewVocabularyServiceError("save_term", "failed to create vocabulary item object", err)
	}

	err = store.RunInTransaction(ctx, s.vocabRepo.DB(), func(ctx context.Context, tx *sql.Tx) error {
		txRepo := s.vocabRepo.WithTx(tx)

		if err := txRepo.Create(ctx, item); err != nil {
			s.logger.Error("failed to create vocabulary item in transaction",
				"error", err,
				"user_id", userID,
				"item_id", item.ID)
			return NewVocabularyServiceError("save_term", "failed to save vocabulary item", err)
		}
		return nil
	})

	if err != nil {
		// Error is already wrapped in the transaction
		return nil, err
	}

	s.logger.Info("vocabulary item saved",
		"item_id", item.ID,
		"user_id", userID,
		"language", item.Language)

	return item, nil
}

// GetItem retrieves a vocabulary item by its ID, enforcing ownership.
func (s *vocabularyServiceImpl) GetItem(
	ctx context.Context,
	itemID, userID uuid.UUID,
) (*domain.VocabularyItem, error) {
	item, err := s.vocabRepo.GetByID(ctx, itemID)
	if err != nil {
		if errors.Is(err, store.ErrVocabularyItemNotFound) {
			return nil, ErrVocabularyItemNotFound
		}
		s.logger.Error("failed to retrieve vocabulary item",
			"error", err,
			"item_id", itemID)
		return nil, NewVocabularyServiceError("get_item", "failed to retrieve vocabulary item", err)
	}

	if item.UserID != userID {
		s.logger.Warn("vocabulary item access denied",
			"item_id", itemID,
			"owner_id", item.UserID,
			"user_id", userID)
		return nil, ErrNotOwned
	}

	return item, nil
}

// ListItems retrieves the user's vocabulary items, newest first.
func (s *vocabularyServiceImpl) ListItems(
	ctx context.Context,
	userID uuid.UUID,
	limit, offset int,
) ([]*domain.VocabularyItem, error) {
	items, err := s.vocabRepo.ListByUser(ctx, userID, limit, offset)
	if err != nil {
		s.logger.Error("failed to list vocabulary items",
			"error", err,
			"user_id", userID)
		return nil, NewVocabularyServiceError("list_items", "failed to list vocabulary items", err)
	}
	return items, nil
}

// DeleteItem removes a vocabulary item, enforcing ownership.
func (s *vocabularyServiceImpl) DeleteItem(ctx context.Context, itemID, userID uuid.UUID) error {
	// Ownership check first; GetItem already maps not-found and not-owned.
	if _, err := s.GetItem(ctx, itemID, userID); err != nil {
		return err
	}

	if err := s.vocabRepo.Delete(ctx, itemID); err != nil {
		if errors.Is(err, store.ErrVocabularyItemNotFound) {
			return ErrVocabularyItemNotFound
		}
		s.logger.Error("failed to delete vocabulary item",
			"error", err,
			"item_id", itemID)
		return NewVocabularyServiceError("delete_item", "failed to delete vocabulary item", err)
	}

	s.logger.Info("vocabulary item deleted",
		"item_id", itemID,
		"user_id", userID)

	return nil
}
