package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// VocabularyItem-specific validation errors.
var (
	ErrVocabularyItemIDEmpty   = errors.New("vocabulary item ID cannot be empty")
	ErrVocabularyUserIDEmpty   = errors.New("vocabulary item user ID cannot be empty")
	ErrVocabularyTermEmpty     = errors.New("vocabulary item term cannot be empty")
	ErrVocabularyLanguageEmpty = errors.New("vocabulary item language cannot be empty")
)

// VocabularyItem is a term saved by a user to their vocabulary list.
// It is the subject of a TermEnrichment generation: enrichment requests
// reference an item by ID and must come from its owning user.
type VocabularyItem struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	Term      string    `json:"term"`
	Language  string    `json:"language"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewVocabularyItem creates a new VocabularyItem with the given owner, term,
// and language. It generates a new UUID and sets the timestamps.
// Returns an error if validation fails.
func NewVocabularyItem(userID uuid.UUID, term, language string) (*VocabularyItem, error) {
	now := time.Now().UTC()
	item := &VocabularyItem{
		ID:        uuid.New(),
		UserID:    userID,
		Term:      term,
		Language:  language,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := item.Validate(); err != nil {
		return nil, err
	}

	return item, nil
}

// Validate checks if the VocabularyItem has valid data.
// Returns an error if any field fails validation.
func (v *VocabularyItem) Validate() error {
	if v.ID == uuid.Nil {
		return ErrVocabularyItemIDEmpty
	}

	if v.UserID == uuid.Nil {
		return ErrVocabularyUserIDEmpty
	}

	if v.Term == "" {
		return ErrVocabularyTermEmpty
	}

	if v.Language == "" {
		return ErrVocabularyLanguageEmpty
	}

	return nil
}
