package service

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lingualog/lingualog-api/internal/store"
)

func TestSentinelErrors(t *testing.T) {
	t.Run("ErrNotOwned", func(t *testing.T) {
		assert.Equal(t, "resource is owned by another user", ErrNotOwned.Error())
		assert.True(t, errors.Is(ErrNotOwned, ErrNotOwned))
	})

	t.Run("ErrVocabularyItemNotFound", func(t *testing.T) {
		assert.Equal(t, "vocabulary item not found", ErrVocabularyItemNotFound.Error())
		assert.True(t, errors.Is(ErrVocabularyItemNotFound, ErrVocabularyItemNotFound))
	})

	t.Run("sentinel errors are different", func(t *testing.T) {
		assert.False(t, errors.Is(ErrNotOwned, ErrVocabularyItemNotFound))
		assert.False(t, errors.Is(ErrDuplicateTerm, ErrVocabularyItemNotFound))
	})
}

func TestVocabularyServiceError_Error(t *testing.T) {
	tests := []struct {
		name     string
		op       string
		message  string
		err      error
		expected string
	}{
		{
			name:     "with underlying error",
			op:       "save_term",
			message:  "failed to save term",
			err:      errors.New("database connection failed"),
			expected: "vocabulary service save_term failed: failed to save term: database connection failed",
		},
		{
			name:     "without underlying error",
			op:       "delete_item",
			message:  "failed to delete item",
			err:      nil,
			expected: "vocabulary service delete_item failed: failed to delete item",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			serviceErr := &VocabularyServiceError{
				Operation: tt.op,
				Message:   tt.message,
				Err:       tt.err,
			}

			assert.Equal(t, tt.expected, serviceErr.Error())
		})
	}
}

func TestNewVocabularyServiceError(t *testing.T) {
	t.Run("nil error returns nil", func(t *testing.T) {
		assert.NoError(t, NewVocabularyServiceError("save_term", "failed", nil))
	})

	t.Run("sentinel errors pass through unwrapped", func(t *testing.T) {
		for _, sentinel := range []error{ErrNotOwned, ErrVocabularyItemNotFound, ErrDuplicateTerm} {
			err := NewVocabularyServiceError("get_item", "failed", sentinel)
			assert.Equal(t, sentinel, err)
		}
	})

	t.Run("store sentinels map to service sentinels", func(t *testing.T) {
		err := NewVocabularyServiceError("get_item", "failed", store.ErrVocabularyItemNotFound)
		assert.ErrorIs(t, err, ErrVocabularyItemNotFound)

		err = NewVocabularyServiceError("save_term", "failed", store.ErrVocabularyItemExists)
		assert.ErrorIs(t, err, ErrDuplicateTerm)
	})

	t.Run("unexpected errors are wrapped", func(t *testing.T) {
		cause := errors.New("connection reset")
		err := NewVocabularyServiceError("list_items", "failed to list items", cause)

		var serviceErr *VocabularyServiceError
		assert.True(t, errors.As(err, &serviceErr))
		assert.Equal(t, "list_items", serviceErr.Operation)
		assert.True(t, errors.Is(err, cause))
		assert.Equal(t, cause, errors.Unwrap(err))
	})
}

func TestEnrichmentServiceError_Unwrap(t *testing.T) {
	cause := errors.New("generation backend unavailable")
	err := NewEnrichmentServiceError("enrich_term", "failed to enrich term", cause)

	var serviceErr *EnrichmentServiceError
	assert.True(t, errors.As(err, &serviceErr))
	assert.True(t, errors.Is(err, cause))

	t.Run("pass-through sentinels stay unwrapped", func(t *testing.T) {
		assert.Equal(t, ErrVocabularyItemNotFound,
			NewEnrichmentServiceError("enrich_term", "failed", ErrVocabularyItemNotFound))
	})
}
