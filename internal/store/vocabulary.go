package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/lingualog/lingualog-api/internal/domain"
)

// VocabularyStore defines the interface for vocabulary item persistence.
type VocabularyStore interface {
	// Create saves a new vocabulary item to the store.
	// It handles domain validation internally.
	// Returns ErrVocabularyItemExists if the user already saved this term
	// in this language.
	Create(ctx context.Context, item *domain.VocabularyItem) error

	// GetByID retrieves a vocabulary item by its unique ID.
	// Returns ErrVocabularyItemNotFound if the item does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.VocabularyItem, error)

	// ListByUser retrieves the user's vocabulary items, newest first.
	// Returns an empty slice if the user has no items.
	ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*domain.VocabularyItem, error)

	// Delete removes a vocabulary item.
	// Returns ErrVocabularyItemNotFound if the item does not exist.
	Delete(ctx context.Context, id uuid.UUID) error

	// WithTx returns a new VocabularyStore instance that uses the provided
	// transaction. The transaction is created and managed by the caller.
	WithTx(tx *sql.Tx) VocabularyStore
}
