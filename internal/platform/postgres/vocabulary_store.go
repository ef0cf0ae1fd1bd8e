package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/lingualog/lingualog-api/internal/domain"
	"github.com/lingualog/lingualog-api/internal/platform/logger"
	"github.com/lingualog/lingualog-api/internal/store"
)

// PostgresVocabularyStore implements the store.VocabularyStore interface
// using a PostgreSQL database as the storage backend.
type PostgresVocabularyStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresVocabularyStore creates a new PostgreSQL implementation of the
// VocabularyStore interface. It accepts a database connection or transaction
// that should be initialized and managed by the caller.
// If logger is nil, a default logger will be used.
func NewPostgresVocabularyStore(db store.DBTX, logger *slog.Logger) *PostgresVocabularyStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresVocabularyStore{
		db:     db,
		logger: logger.With(slog.String("component", "vocabulary_store")),
	}
}

// Ensure PostgresVocabularyStore implements store.VocabularyStore interface
var _ store.VocabularyStore = (*PostgresVocabularyStore)(nil)

// Create implements store.VocabularyStore.Create
// It saves a new vocabulary item, handling domain validation.
// Returns store.ErrVocabularyItemExists if the user already saved this term,
// and store.ErrInvalidEntity if the owning user does not exist.
func (s *PostgresVocabularyStore) Create(ctx context.Context, item *domain.VocabularyItem) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := item.Validate(); err != nil {
		log.Warn("vocabulary item validation failed during create",
			slog.String("error", err.Error()),
			slog.String("item_id", item.ID.String()))
		return err
	}

	query := `
		INSERT INTO vocabulary_items (id, user_id, term, language, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := s.db.ExecContext(
		ctx,
		query,
		item.ID,
		item.UserID,
		item.Term,
		item.Language,
		item.CreatedAt,
		item.UpdatedAt,
	)

	if err != nil {
		if IsUniqueViolation(err) {
			log.Warn("duplicate vocabulary item",
				slog.String("item_id", item.ID.String()),
				slog.String("term", item.Term),
				slog.String("language", item.Language))
			return fmt.Errorf("%w: %v", store.ErrVocabularyItemExists, err)
		}

		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == foreignKeyViolationCode {
			log.Warn("foreign key violation during vocabulary item creation",
				slog.String("error", err.Error()),
				slog.String("item_id", item.ID.String()),
				slog.String("user_id", item.UserID.String()))
			return fmt.Errorf("%w: user with ID %s not found",
				store.ErrInvalidEntity, item.UserID)
		}

		log.Error("failed to create vocabulary item",
			slog.String("error", err.Error()),
			slog.String("item_id", item.ID.String()),
			slog.String("user_id", item.UserID.String()))
		return err
	}

	log.Info("vocabulary item created successfully",
		slog.String("item_id", item.ID.String()),
		slog.String("user_id", item.UserID.String()),
		slog.String("term", item.Term),
		slog.String("language", item.Language))
	return nil
}

// GetByID implements store.VocabularyStore.GetByID
// Returns store.ErrVocabularyItemNotFound if the item does not exist.
func (s *PostgresVocabularyStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.VocabularyItem, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	log.Debug("retrieving vocabulary item by ID", slog.String("item_id", id.String()))

	query := `
		SELECT id, user_id, term, language, created_at, updated_at
		FROM vocabulary_items
		WHERE id = $1
	`

	var item domain.VocabularyItem
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&item.ID,
		&item.UserID,
		&item.Term,
		&item.Language,
		&item.CreatedAt,
		&item.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("vocabulary item not found", slog.String("item_id", id.String()))
			return nil, store.ErrVocabularyItemNotFound
		}
		log.Error("failed to get vocabulary item by ID",
			slog.String("error", err.Error()),
			slog.String("item_id", id.String()))
		return nil, err
	}

	return &item, nil
}

// ListByUser implements store.VocabularyStore.ListByUser
// It retrieves the user's vocabulary items, newest first.
// Returns an empty slice if no items match.
func (s *PostgresVocabularyStore) ListByUser(
	ctx context.Context,
	userID uuid.UUID,
	limit, offset int,
) ([]*domain.VocabularyItem, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if limit <= 0 {
		limit = 50 // Default limit
	}
	if offset < 0 {
		offset = 0
	}

	log.Debug("listing vocabulary items",
		slog.String("user_id", userID.String()),
		slog.Int("limit", limit),
		slog.Int("offset", offset))

	query := `
		SELECT id, user_id, term, language, created_at, updated_at
		FROM vocabulary_items
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := s.db.QueryContext(ctx, query, userID, limit, offset)
	if err != nil {
		log.Error("failed to query vocabulary items",
			slog.String("error", err.Error()),
			slog.String("user_id", userID.String()))
		return nil, err
	}
	defer func() {
		err := rows.Close()
		if err != nil {
			log.Error("failed to close rows", slog.String("error", err.Error()))
		}
	}()

	var items []*domain.VocabularyItem
	for rows.Next() {
		var item domain.VocabularyItem
		err := rows.Scan(
			&item.ID,
			&item.UserID,
			&item.Term,
			&item.Language,
			&item.CreatedAt,
			&item.UpdatedAt,
		)
		if err != nil {
			log.Error("failed to scan vocabulary item row",
				slog.String("error", err.Error()))
			return nil, err
		}
		items = append(items, &item)
	}

	if err := rows.Err(); err != nil {
		log.Error("error after scanning rows",
			slog.String("error", err.Error()))
		return nil, err
	}

	// Return empty slice instead of nil if no items found
	if items == nil {
		items = []*domain.VocabularyItem{}
	}

	log.Debug("listed vocabulary items",
		slog.String("user_id", userID.String()),
		slog.Int("count", len(items)))
	return items, nil
}

// Delete implements store.VocabularyStore.Delete
// Returns store.ErrVocabularyItemNotFound if the item does not exist.
func (s *PostgresVocabularyStore) Delete(ctx context.Context, id uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		DELETE FROM vocabulary_items
		WHERE id = $1
	`

	result, err := s.db.ExecContext(ctx, query, id)
	if err != nil {
		log.Error("failed to delete vocabulary item",
			slog.String("error", err.Error()),
			slog.String("item_id", id.String()))
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		log.Error("failed to get rows affected",
			slog.String("error", err.Error()),
			slog.String("item_id", id.String()))
		return err
	}

	if rowsAffected == 0 {
		log.Debug("vocabulary item not found for delete",
			slog.String("item_id", id.String()))
		return store.ErrVocabularyItemNotFound
	}

	log.Info("vocabulary item deleted successfully",
		slog.String("item_id", id.String()))
	return nil
}

// WithTx implements store.VocabularyStore.WithTx
// It returns a new store instance backed by the given transaction.
func (s *PostgresVocabularyStore) WithTx(tx *sql.Tx) store.VocabularyStore {
	return &PostgresVocabularyStore{
		db:     tx,
		logger: s.logger,
	}
}
