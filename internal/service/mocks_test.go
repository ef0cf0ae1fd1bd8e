package service

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/lingualog/lingualog-api/internal/domain"
	"github.com/lingualog/lingualog-api/internal/generation"
	"github.com/lingualog/lingualog-api/internal/store"
)

// MockVocabularyRepository mocks the VocabularyRepository interface
type MockVocabularyRepository struct {
	mock.Mock
	db *sql.DB
}

func (m *MockVocabularyRepository) Create(ctx context.Context, item *domain.VocabularyItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockVocabularyRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.VocabularyItem, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.VocabularyItem), args.Error(1)
}

func (m *MockVocabularyRepository) ListByUser(
	ctx context.Context,
	userID uuid.UUID,
	limit, offset int,
) ([]*domain.VocabularyItem, error) {
	args := m.Called(ctx, userID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.VocabularyItem), args.Error(1)
}

func (m *MockVocabularyRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// WithTx returns the same mock so transactional expectations stay visible.
func (m *MockVocabularyRepository) WithTx(tx *sql.Tx) VocabularyRepository {
	return m
}

func (m *MockVocabularyRepository) DB() *sql.DB {
	return m.db
}

// MockEnrichmentStore mocks the store.EnrichmentStore interface
type MockEnrichmentStore struct {
	mock.Mock
}

func (m *MockEnrichmentStore) GetByTermAndLanguage(
	ctx context.Context,
	term, languageCode string,
) (*domain.EnrichmentRecord, error) {
	args := m.Called(ctx, term, languageCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.EnrichmentRecord), args.Error(1)
}

func (m *MockEnrichmentStore) Upsert(ctx context.Context, record *domain.EnrichmentRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockEnrichmentStore) DeleteByTermAndLanguage(
	ctx context.Context,
	term, languageCode string,
) error {
	args := m.Called(ctx, term, languageCode)
	return args.Error(0)
}

func (m *MockEnrichmentStore) WithTx(tx *sql.Tx) store.EnrichmentStore {
	return m
}

// MockGenerator mocks the generation orchestrator for both the enrichment
// and journal services.
type MockGenerator struct {
	mock.Mock
}

func (m *MockGenerator) EntryFeedback(
	ctx context.Context,
	req generation.Request,
) (*domain.EntryFeedback, string, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.String(1), args.Error(2)
	}
	return args.Get(0).(*domain.EntryFeedback), args.String(1), args.Error(2)
}

func (m *MockGenerator) TermEnrichment(
	ctx context.Context,
	req generation.Request,
) (*domain.TermEnrichment, string, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.String(1), args.Error(2)
	}
	return args.Get(0).(*domain.TermEnrichment), args.String(1), args.Error(2)
}

func (m *MockGenerator) MoreExamples(ctx context.Context, req generation.Request) ([]string, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockGenerator) SimplifiedExplanation(ctx context.Context, req generation.Request) (string, error) {
	args := m.Called(ctx, req)
	return args.String(0), args.Error(1)
}

func (m *MockGenerator) Quiz(ctx context.Context, req generation.Request) (*domain.MiniQuiz, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MiniQuiz), args.Error(1)
}
