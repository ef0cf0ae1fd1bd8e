package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/lingualog/lingualog-api/internal/domain"
	"github.com/lingualog/lingualog-api/internal/platform/logger"
	"github.com/lingualog/lingualog-api/internal/store"
)

// PostgresEnrichmentStore implements the store.EnrichmentStore interface
// using a PostgreSQL database as the storage backend. The enrichment
// payload is stored as a JSONB column; the (term, language) pair carries a
// unique constraint so an upsert replaces the previous generation.
type PostgresEnrichmentStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresEnrichmentStore creates a new PostgreSQL implementation of the
// EnrichmentStore interface. It accepts a database connection or transaction
// that should be initialized and managed by the caller.
// If logger is nil, a default logger will be used.
func NewPostgresEnrichmentStore(db store.DBTX, logger *slog.Logger) *PostgresEnrichmentStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresEnrichmentStore{
		db:     db,
		logger: logger.With(slog.String("component", "enrichment_store")),
	}
}

// Ensure PostgresEnrichmentStore implements store.EnrichmentStore interface
var _ store.EnrichmentStore = (*PostgresEnrichmentStore)(nil)

// GetByTermAndLanguage implements store.EnrichmentStore.GetByTermAndLanguage
// Returns store.ErrEnrichmentNotFound if no record exists for the key.
func (s *PostgresEnrichmentStore) GetByTermAndLanguage(
	ctx context.Context,
	term, languageCode string,
) (*domain.EnrichmentRecord, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	log.Debug("retrieving enrichment",
		slog.String("term", term),
		slog.String("language", languageCode))

	query := `
		SELECT id, term, language, provider, prompt_version, enrichment, created_at, updated_at
		FROM enrichment_cache
		WHERE term = $1 AND language = $2
	`

	var record domain.EnrichmentRecord
	var payload []byte

	err := s.db.QueryRowContext(ctx, query, term, languageCode).Scan(
		&record.ID,
		&record.Term,
		&record.Language,
		&record.Provider,
		&record.PromptVersion,
		&payload,
		&record.CreatedAt,
		&record.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("enrichment not found",
				slog.String("term", term),
				slog.String("language", languageCode))
			return nil, store.ErrEnrichmentNotFound
		}
		log.Error("failed to get enrichment",
			slog.String("error", err.Error()),
			slog.String("term", term),
			slog.String("language", languageCode))
		return nil, err
	}

	if err := json.Unmarshal(payload, &record.Enrichment); err != nil {
		log.Error("failed to decode enrichment payload",
			slog.String("error", err.Error()),
			slog.String("term", term),
			slog.String("language", languageCode))
		return nil, fmt.Errorf("failed to decode enrichment payload: %w", err)
	}

	return &record, nil
}

// Upsert implements store.EnrichmentStore.Upsert
// It saves the record, replacing any existing record for the same term and
// language wholesale. The original row identity and creation time survive a
// replace; everything else comes from the new record.
func (s *PostgresEnrichmentStore) Upsert(ctx context.Context, record *domain.EnrichmentRecord) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := record.Validate(); err != nil {
		log.Warn("enrichment record validation failed during upsert",
			slog.String("error", err.Error()),
			slog.String("term", record.Term))
		return err
	}

	payload, err := json.Marshal(record.Enrichment)
	if err != nil {
		log.Error("failed to encode enrichment payload",
			slog.String("error", err.Error()),
			slog.String("term", record.Term))
		return fmt.Errorf("failed to encode enrichment payload: %w", err)
	}

	query := `
		INSERT INTO enrichment_cache (id, term, language, provider, prompt_version, enrichment, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (term, language) DO UPDATE SET
			provider = EXCLUDED.provider,
			prompt_version = EXCLUDED.prompt_version,
			enrichment = EXCLUDED.enrichment,
			updated_at = EXCLUDED.updated_at
	`

	_, err = s.db.ExecContext(
		ctx,
		query,
		record.ID,
		record.Term,
		record.Language,
		record.Provider,
		record.PromptVersion,
		payload,
		record.CreatedAt,
		record.UpdatedAt,
	)

	if err != nil {
		log.Error("failed to upsert enrichment",
			slog.String("error", err.Error()),
			slog.String("term", record.Term),
			slog.String("language", record.Language))
		return MapError(err)
	}

	log.Info("enrichment upserted successfully",
		slog.String("term", record.Term),
		slog.String("language", record.Language),
		slog.String("provider", record.Provider),
		slog.Int("prompt_version", record.PromptVersion))
	return nil
}

// DeleteByTermAndLanguage implements store.EnrichmentStore.DeleteByTermAndLanguage
// Returns store.ErrEnrichmentNotFound if no record exists for the key.
func (s *PostgresEnrichmentStore) DeleteByTermAndLanguage(
	ctx context.Context,
	term, languageCode string,
) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		DELETE FROM enrichment_cache
		WHERE term = $1 AND language = $2
	`

	result, err := s.db.ExecContext(ctx, query, term, languageCode)
	if err != nil {
		log.Error("failed to delete enrichment",
			slog.String("error", err.Error()),
			slog.String("term", term),
			slog.String("language", languageCode))
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		log.Error("failed to get rows affected",
			slog.String("error", err.Error()),
			slog.String("term", term))
		return err
	}

	if rowsAffected == 0 {
		log.Debug("enrichment not found for delete",
			slog.String("term", term),
			slog.String("language", languageCode))
		return store.ErrEnrichmentNotFound
	}

	log.Info("enrichment deleted successfully",
		slog.String("term", term),
		slog.String("language", languageCode))
	return nil
}

// WithTx implements store.EnrichmentStore.WithTx
// It returns a new store instance backed by the given transaction.
func (s *PostgresEnrichmentStore) WithTx(tx *sql.Tx) store.EnrichmentStore {
	return &PostgresEnrichmentStore{
		db:     tx,
		logger: s.logger,
	}
}
