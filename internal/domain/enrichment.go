package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// EnrichmentRecord-specific validation errors.
var (
	ErrEnrichmentIDEmpty       = errors.New("enrichment record ID cannot be empty")
	ErrEnrichmentTermEmpty     = errors.New("enrichment record term cannot be empty")
	ErrEnrichmentLanguageEmpty = errors.New("enrichment record language cannot be empty")
	ErrEnrichmentProviderEmpty = errors.New("enrichment record provider cannot be empty")
)

// Definition is a single dictionary definition tagged with its part of speech.
type Definition struct {
	PartOfSpeech string `json:"part_of_speech"`
	Definition   string `json:"definition"`
}

// CommonMistake is an error learners commonly make with a term, with its
// correction. Explanation is optional.
type CommonMistake struct {
	Mistake     string `json:"mistake"`
	Correction  string `json:"correction"`
	Explanation string `json:"explanation,omitempty"`
}

// TermEnrichment is the structured result of enriching a vocabulary term.
// A value produced by the contract validator always satisfies the
// TermEnrichment output contract: list fields are never nil and every
// list element carries its required sub-fields.
type TermEnrichment struct {
	ExampleSentences   []string          `json:"example_sentences"`
	Definitions        []Definition      `json:"definitions"`
	Synonyms           []string          `json:"synonyms"`
	Antonyms           []string          `json:"antonyms"`
	RelatedPhrases     []string          `json:"related_phrases"`
	CulturalNote       string            `json:"cultural_note"`
	PronunciationGuide string            `json:"pronunciation_guide"`
	AlternativeForms   []string          `json:"alternative_forms"`
	CommonMistakes     []CommonMistake   `json:"common_mistakes"`
	EmotionTone        string            `json:"emotion_tone"`
	Mnemonic           string            `json:"mnemonic"`
	Conjugations       map[string]string `json:"conjugations,omitempty"`
	Emoji              string            `json:"emoji"`
}

// EnrichmentRecord is a persisted enrichment result keyed by (term, language).
// Records are never mutated in place: a fresh generation for the same key
// replaces the record wholesale via upsert.
//
// PromptVersion tracks the prompt template generation a record was produced
// with, so that a template change can invalidate stale entries explicitly
// rather than by guessing at a TTL.
type EnrichmentRecord struct {
	ID            uuid.UUID      `json:"id"`
	Term          string         `json:"term"`
	Language      string         `json:"language"`
	Provider      string         `json:"provider"`
	PromptVersion int            `json:"prompt_version"`
	Enrichment    TermEnrichment `json:"enrichment"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
}

// NewEnrichmentRecord creates a new EnrichmentRecord for the given key with
// a freshly generated ID and timestamps. Returns an error if validation fails.
func NewEnrichmentRecord(
	term, language, provider string,
	promptVersion int,
	enrichment TermEnrichment,
) (*EnrichmentRecord, error) {
	now := time.Now().UTC()
	record := &EnrichmentRecord{
		ID:            uuid.New(),
		Term:          term,
		Language:      language,
		Provider:      provider,
		PromptVersion: promptVersion,
		Enrichment:    enrichment,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := record.Validate(); err != nil {
		return nil, err
	}

	return record, nil
}

// Validate checks if the EnrichmentRecord has valid data.
// Returns an error if any field fails validation.
func (r *EnrichmentRecord) Validate() error {
	if r.ID == uuid.Nil {
		return ErrEnrichmentIDEmpty
	}

	if r.Term == "" {
		return ErrEnrichmentTermEmpty
	}

	if r.Language == "" {
		return ErrEnrichmentLanguageEmpty
	}

	if r.Provider == "" {
		return ErrEnrichmentProviderEmpty
	}

	return nil
}
