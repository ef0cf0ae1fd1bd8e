package service

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/lingualog/lingualog-api/internal/domain"
	"github.com/lingualog/lingualog-api/internal/store"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestNewVocabularyService_RequiresRepository(t *testing.T) {
	t.Parallel()

	svc, err := NewVocabularyService(nil, testLogger())
	assert.Error(t, err)
	assert.Nil(t, svc)
}

func TestVocabularyService_SaveTerm(t *testing.T) {
	db, dbMock, err := sqlmock.New()
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	dbMock.ExpectBegin()
	dbMock.ExpectCommit()

	repo := &MockVocabularyRepository{db: db}
	userID := uuid.New()
	repo.On("Create", mock.Anything, mock.MatchedBy(func(item *domain.VocabularyItem) bool {
		return item.UserID == userID && item.Term == "猫" && item.Language == "ja"
	})).Return(nil)

	svc, err := NewVocabularyService(repo, testLogger())
	require.NoError(t, err)

	// Languages arrive in any accepted form and are stored canonically.
	item, err := svc.SaveTerm(context.Background(), userID, "猫", "Japanese")
	require.NoError(t, err)
	assert.Equal(t, "ja", item.Language)
	assert.Equal(t, "猫", item.Term)

	repo.AssertExpectations(t)
	assert.NoError(t, dbMock.ExpectationsWereMet())
}

func TestVocabularyService_SaveTerm_UnrecognizedLanguage(t *testing.T) {
	db, dbMock, err := sqlmock.New()
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	dbMock.ExpectBegin()
	dbMock.ExpectCommit()

	repo := &MockVocabularyRepository{db: db}
	repo.On("Create", mock.Anything, mock.MatchedBy(func(item *domain.VocabularyItem) bool {
		return item.Language == "tlh"
	})).Return(nil)

	svc, err := NewVocabularyService(repo, testLogger())
	require.NoError(t, err)

	// A language outside the normalization table is saved as-is rather
	// than rejected; it just skips canonicalization.
	item, err := svc.SaveTerm(context.Background(), uuid.New(), "Qapla'", "tlh")
	require.NoError(t, err)
	assert.Equal(t, "tlh", item.Language)

	repo.AssertExpectations(t)
	assert.NoError(t, dbMock.ExpectationsWereMet())
}

func TestVocabularyService_SaveTerm_Duplicate(t *testing.T) {
	db, dbMock, err := sqlmock.New()
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	dbMock.ExpectBegin()
	dbMock.ExpectRollback()

	repo := &MockVocabularyRepository{db: db}
	repo.On("Create", mock.Anything, mock.Anything).Return(store.ErrVocabularyItemExists)

	svc, err := NewVocabularyService(repo, testLogger())
	require.NoError(t, err)

	item, err := svc.SaveTerm(context.Background(), uuid.New(), "gato", "es")
	assert.Nil(t, item)
	assert.ErrorIs(t, err, ErrDuplicateTerm)
	assert.NoError(t, dbMock.ExpectationsWereMet())
}

func TestVocabularyService_SaveTerm_ValidationFailure(t *testing.T) {
	t.Parallel()

	repo := &MockVocabularyRepository{}
	svc, err := NewVocabularyService(repo, testLogger())
	require.NoError(t, err)

	item, err := svc.SaveTerm(context.Background(), uuid.New(), "", "es")
	assert.Nil(t, item)
	assert.Error(t, err)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestVocabularyService_GetItem(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	itemID := uuid.New()
	owned := &domain.VocabularyItem{ID: itemID, UserID: userID, Term: "gato", Language: "es"}

	testCases := []struct {
		name        string
		storedItem  *domain.VocabularyItem
		storeErr    error
		callerID    uuid.UUID
		expectedErr error
	}{
		{
			name:       "owner gets the item",
			storedItem: owned,
			callerID:   userID,
		},
		{
			name:        "missing item",
			storeErr:    store.ErrVocabularyItemNotFound,
			callerID:    userID,
			expectedErr: ErrVocabularyItemNotFound,
		},
		{
			name:        "another user's item",
			storedItem:  owned,
			callerID:    uuid.New(),
			expectedErr: ErrNotOwned,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			repo := &MockVocabularyRepository{}
			repo.On("GetByID", mock.Anything, itemID).Return(tc.storedItem, tc.storeErr)

			svc, err := NewVocabularyService(repo, testLogger())
			require.NoError(t, err)

			item, err := svc.GetItem(context.Background(), itemID, tc.callerID)
			if tc.expectedErr != nil {
				assert.ErrorIs(t, err, tc.expectedErr)
				assert.Nil(t, item)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, owned, item)
		})
	}
}

func TestVocabularyService_ListItems(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	items := []*domain.VocabularyItem{
		{ID: uuid.New(), UserID: userID, Term: "gato", Language: "es"},
		{ID: uuid.New(), UserID: userID, Term: "perro", Language: "es"},
	}

	repo := &MockVocabularyRepository{}
	repo.On("ListByUser", mock.Anything, userID, 10, 0).Return(items, nil)

	svc, err := NewVocabularyService(repo, testLogger())
	require.NoError(t, err)

	got, err := svc.ListItems(context.Background(), userID, 10, 0)
	require.NoError(t, err)
	assert.Equal(t, items, got)
}

func TestVocabularyService_DeleteItem_EnforcesOwnership(t *testing.T) {
	t.Parallel()

	itemID := uuid.New()
	ownerID := uuid.New()
	repo := &MockVocabularyRepository{}
	repo.On("GetByID", mock.Anything, itemID).
		Return(&domain.VocabularyItem{ID: itemID, UserID: ownerID, Term: "gato", Language: "es"}, nil)

	svc, err := NewVocabularyService(repo, testLogger())
	require.NoError(t, err)

	err = svc.DeleteItem(context.Background(), itemID, uuid.New())
	assert.ErrorIs(t, err, ErrNotOwned)
	repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestVocabularyService_DeleteItem(t *testing.T) {
	t.Parallel()

	itemID := uuid.New()
	ownerID := uuid.New()
	repo := &MockVocabularyRepository{}
	repo.On("GetByID", mock.Anything, itemID).
		Return(&domain.VocabularyItem{ID: itemID, UserID: ownerID, Term: "gato", Language: "es"}, nil)
	repo.On("Delete", mock.Anything, itemID).Return(nil)

	svc, err := NewVocabularyService(repo, testLogger())
	require.NoError(t, err)

	require.NoError(t, svc.DeleteItem(context.Background(), itemID, ownerID))
	repo.AssertExpectations(t)
}

func TestVocabularyService_ListItems_WrapsRepositoryErrors(t *testing.T) {
	t.Parallel()

	repo := &MockVocabularyRepository{}
	repo.On("ListByUser", mock.Anything, mock.Anything, 10, 0).
		Return(nil, errors.New("connection reset"))

	svc, err := NewVocabularyService(repo, testLogger())
	require.NoError(t, err)

	_, err = svc.ListItems(context.Background(), uuid.New(), 10, 0)
	require.Error(t, err)

	var svcErr *VocabularyServiceError
	require.ErrorAs(t, err, &svcErr)
	assert.Equal(t, "list_items", svcErr.Operation)
}
