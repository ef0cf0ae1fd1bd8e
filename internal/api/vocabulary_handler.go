package api

import (
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"

	"github.com/lingualog/lingualog-api/internal/api/shared"
	"github.com/lingualog/lingualog-api/internal/service"
)

// VocabularyHandler handles vocabulary list and enrichment HTTP requests
type VocabularyHandler struct {
	vocabService  service.VocabularyService
	enrichService service.EnrichmentService
	validator     *validator.Validate
}

// NewVocabularyHandler creates a new VocabularyHandler
func NewVocabularyHandler(
	vocabService service.VocabularyService,
	enrichService service.EnrichmentService,
) *VocabularyHandler {
	return &VocabularyHandler{
		vocabService:  vocabService,
		enrichService: enrichService,
		validator:     validator.New(),
	}
}

// CreateItem handles POST /api/vocabulary requests
func (h *VocabularyHandler) CreateItem(w http.ResponseWriter, r *http.Request) {
	userID, ok := getUserIDFromContext(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "User ID not found or invalid")
		return
	}

	var req CreateVocabularyItemRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	item, err := h.vocabService.SaveTerm(r.Context(), userID, req.Term, req.Language)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, vocabularyItemToResponse(item))
}

// ListItems handles GET /api/vocabulary requests. Supports limit and offset
// query parameters; out-of-range values fall back to defaults.
func (h *VocabularyHandler) ListItems(w http.ResponseWriter, r *http.Request) {
	userID, ok := getUserIDFromContext(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "User ID not found or invalid")
		return
	}

	limit := queryInt(r, "limit", 50)
	offset := queryInt(r, "offset", 0)

	items, err := h.vocabService.ListItems(r.Context(), userID, limit, offset)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	responses := make([]VocabularyItemResponse, 0, len(items))
	for _, item := range items {
		responses = append(responses, vocabularyItemToResponse(item))
	}

	shared.RespondWithJSON(w, r, http.StatusOK, responses)
}

// GetItem handles GET /api/vocabulary/{id} requests
func (h *VocabularyHandler) GetItem(w http.ResponseWriter, r *http.Request) {
	userID, itemID, ok := handleUserIDAndPathUUID(w, r, "id", nil)
	if !ok {
		return
	}

	item, err := h.vocabService.GetItem(r.Context(), itemID, userID)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, vocabularyItemToResponse(item))
}

// DeleteItem handles DELETE /api/vocabulary/{id} requests
func (h *VocabularyHandler) DeleteItem(w http.ResponseWriter, r *http.Request) {
	userID, itemID, ok := handleUserIDAndPathUUID(w, r, "id", nil)
	if !ok {
		return
	}

	if err := h.vocabService.DeleteItem(r.Context(), itemID, userID); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// EnrichItem handles POST /api/vocabulary/{id}/enrich requests
func (h *VocabularyHandler) EnrichItem(w http.ResponseWriter, r *http.Request) {
	userID, itemID, ok := handleUserIDAndPathUUID(w, r, "id", nil)
	if !ok {
		return
	}

	enrichment, cached, err := h.enrichService.EnrichTerm(r.Context(), itemID, userID)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, EnrichmentResponse{
		Enrichment: enrichment,
		Cached:     cached,
	})
}

// RefreshEnrichment handles POST /api/vocabulary/{id}/enrich/refresh requests
func (h *VocabularyHandler) RefreshEnrichment(w http.ResponseWriter, r *http.Request) {
	userID, itemID, ok := handleUserIDAndPathUUID(w, r, "id", nil)
	if !ok {
		return
	}

	enrichment, err := h.enrichService.RefreshTerm(r.Context(), itemID, userID)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, EnrichmentResponse{
		Enrichment: enrichment,
		Cached:     false,
	})
}

// queryInt parses a non-negative integer query parameter, falling back to
// def when absent or unusable.
func queryInt(r *http.Request, name string, def int) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		return def
	}
	return v
}
