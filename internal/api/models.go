package api

import (
	"time"

	"github.com/lingualog/lingualog-api/internal/domain"
)

// Common request/response structures

// AnalyzeEntryRequest defines the payload for the journal analysis endpoint.
type AnalyzeEntryRequest struct {
	Text     string `json:"text"     validate:"required,min=1"`
	Language string `json:"language" validate:"required,min=2"`
	Title    string `json:"title"    validate:"omitempty,max=200"`
	Level    string `json:"level"    validate:"omitempty,oneof=beginner intermediate advanced"`
}

// AnalyzeEntryResponse defines the successful response for journal analysis.
// Provider names the backend that produced the feedback; "fallback" marks a
// degraded result produced without any backend.
type AnalyzeEntryResponse struct {
	Feedback *domain.EntryFeedback `json:"feedback"`
	Provider string                `json:"provider"`
}

// MoreExamplesRequest defines the payload for the extra examples endpoint.
type MoreExamplesRequest struct {
	Term             string   `json:"term"              validate:"required,min=1"`
	Language         string   `json:"language"          validate:"required,min=2"`
	ExistingExamples []string `json:"existing_examples" validate:"omitempty,max=20"`
	Count            int      `json:"count"             validate:"omitempty,gte=1,lte=10"`
}

// MoreExamplesResponse defines the successful response for the extra examples endpoint.
type MoreExamplesResponse struct {
	Examples []string `json:"examples"`
}

// SimplifiedExplanationRequest defines the payload for the simplified explanation endpoint.
type SimplifiedExplanationRequest struct {
	Term     string `json:"term"     validate:"required,min=1"`
	Language string `json:"language" validate:"required,min=2"`
}

// SimplifiedExplanationResponse defines the successful response for the simplified explanation endpoint.
type SimplifiedExplanationResponse struct {
	Explanation string `json:"explanation"`
}

// QuizRequest defines the payload for the mini quiz endpoint.
type QuizRequest struct {
	Term       string `json:"term"       validate:"required,min=1"`
	Language   string `json:"language"   validate:"required,min=2"`
	Count      int    `json:"count"      validate:"omitempty,gte=1,lte=10"`
	Difficulty string `json:"difficulty" validate:"omitempty,oneof=easy medium hard"`
}

// CreateVocabularyItemRequest defines the payload for saving a vocabulary term.
type CreateVocabularyItemRequest struct {
	Term     string `json:"term"     validate:"required,min=1,max=200"`
	Language string `json:"language" validate:"required,min=2"`
}

// VocabularyItemResponse represents the response data for a vocabulary item.
type VocabularyItemResponse struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Term      string    `json:"term"`
	Language  string    `json:"language"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// EnrichmentResponse defines the successful response for the enrichment endpoints.
type EnrichmentResponse struct {
	Enrichment *domain.TermEnrichment `json:"enrichment"`
	Cached     bool                   `json:"cached"`
}

// vocabularyItemToResponse converts a domain.VocabularyItem to a VocabularyItemResponse.
func vocabularyItemToResponse(item *domain.VocabularyItem) VocabularyItemResponse {
	return VocabularyItemResponse{
		ID:        item.ID.String(),
		UserID:    item.UserID.String(),
		Term:      item.Term,
		Language:  item.Language,
		CreatedAt: item.CreatedAt,
		UpdatedAt: item.UpdatedAt,
	}
}
