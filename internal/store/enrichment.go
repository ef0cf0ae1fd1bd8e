package store

import (
	"context"
	"database/sql"

	"github.com/lingualog/lingualog-api/internal/domain"
)

// EnrichmentStore defines the interface for enrichment cache persistence.
// Records are keyed by (term, language code); an existing record is always
// replaced wholesale, never patched field by field.
type EnrichmentStore interface {
	// GetByTermAndLanguage retrieves the cached enrichment for a term in a
	// canonical language code.
	// Returns ErrEnrichmentNotFound if no record exists.
	GetByTermAndLanguage(ctx context.Context, term, languageCode string) (*domain.EnrichmentRecord, error)

	// Upsert saves the record, replacing any existing record for the same
	// term and language. It handles domain validation internally.
	Upsert(ctx context.Context, record *domain.EnrichmentRecord) error

	// DeleteByTermAndLanguage removes the cached enrichment for a term.
	// Returns ErrEnrichmentNotFound if no record exists.
	DeleteByTermAndLanguage(ctx context.Context, term, languageCode string) error

	// WithTx returns a new EnrichmentStore instance that uses the provided
	// transaction. The transaction is created and managed by the caller.
	WithTx(tx *sql.Tx) EnrichmentStore
}
