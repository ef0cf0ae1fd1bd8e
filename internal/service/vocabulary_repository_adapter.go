package service

import (
	"database/sql"

	"github.com/lingualog/lingualog-api/internal/store"
)

// VocabularyRepositoryAdapter adapts a store.VocabularyStore to the service
// layer's VocabularyRepository, carrying the database handle the service
// needs for transactional operations.
type VocabularyRepositoryAdapter struct {
	store.VocabularyStore
	db *sql.DB
}

// NewVocabularyRepositoryAdapter creates a new adapter that implements
// VocabularyRepository by delegating to a store.VocabularyStore implementation.
func NewVocabularyRepositoryAdapter(
	vocabStore store.VocabularyStore,
	db *sql.DB,
) *VocabularyRepositoryAdapter {
	return &VocabularyRepositoryAdapter{
		VocabularyStore: vocabStore,
		db:              db,
	}
}

// WithTx returns a new adapter whose store operations run in the transaction.
func (a *VocabularyRepositoryAdapter) WithTx(tx *sql.Tx) VocabularyRepository {
	return &VocabularyRepositoryAdapter{
		VocabularyStore: a.VocabularyStore.WithTx(tx),
		db:              a.db,
	}
}

// DB returns the underlying database connection.
func (a *VocabularyRepositoryAdapter) DB() *sql.DB {
	return a.db
}

// Verify that VocabularyRepositoryAdapter implements VocabularyRepository
var _ VocabularyRepository = (*VocabularyRepositoryAdapter)(nil)
