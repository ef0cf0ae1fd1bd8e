package api

import (
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/lingualog/lingualog-api/internal/api/shared"
	"github.com/lingualog/lingualog-api/internal/service"
)

// JournalHandler handles journal analysis and generation extras HTTP requests
type JournalHandler struct {
	journalService service.JournalService
	validator      *validator.Validate
}

// NewJournalHandler creates a new JournalHandler
func NewJournalHandler(journalService service.JournalService) *JournalHandler {
	return &JournalHandler{
		journalService: journalService,
		validator:      validator.New(),
	}
}

// AnalyzeEntry handles POST /api/journal/analyze requests
func (h *JournalHandler) AnalyzeEntry(w http.ResponseWriter, r *http.Request) {
	if _, ok := getUserIDFromContext(r); !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "User ID not found or invalid")
		return
	}

	var req AnalyzeEntryRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	feedback, provider, err := h.journalService.AnalyzeEntry(r.Context(), service.AnalyzeEntryInput{
		Text:     req.Text,
		Language: req.Language,
		Title:    req.Title,
		Level:    req.Level,
	})
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, AnalyzeEntryResponse{
		Feedback: feedback,
		Provider: provider,
	})
}

// MoreExamples handles POST /api/generate/examples requests
func (h *JournalHandler) MoreExamples(w http.ResponseWriter, r *http.Request) {
	if _, ok := getUserIDFromContext(r); !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "User ID not found or invalid")
		return
	}

	var req MoreExamplesRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	examples, err := h.journalService.MoreExamples(r.Context(), service.ExtrasInput{
		Term:             req.Term,
		Language:         req.Language,
		ExistingExamples: req.ExistingExamples,
		Count:            req.Count,
	})
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, MoreExamplesResponse{Examples: examples})
}

// SimplifiedExplanation handles POST /api/generate/eli5 requests
func (h *JournalHandler) SimplifiedExplanation(w http.ResponseWriter, r *http.Request) {
	if _, ok := getUserIDFromContext(r); !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "User ID not found or invalid")
		return
	}

	var req SimplifiedExplanationRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	explanation, err := h.journalService.SimplifiedExplanation(r.Context(), service.ExtrasInput{
		Term:     req.Term,
		Language: req.Language,
	})
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, SimplifiedExplanationResponse{Explanation: explanation})
}

// Quiz handles POST /api/generate/quiz requests
func (h *JournalHandler) Quiz(w http.ResponseWriter, r *http.Request) {
	if _, ok := getUserIDFromContext(r); !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "User ID not found or invalid")
		return
	}

	var req QuizRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	quiz, err := h.journalService.Quiz(r.Context(), service.ExtrasInput{
		Term:       req.Term,
		Language:   req.Language,
		Count:      req.Count,
		Difficulty: req.Difficulty,
	})
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, quiz)
}
