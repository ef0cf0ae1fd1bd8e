package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/lingualog/lingualog-api/internal/api/shared"
	"github.com/lingualog/lingualog-api/internal/domain"
	"github.com/lingualog/lingualog-api/internal/generation"
	"github.com/lingualog/lingualog-api/internal/service"
)

// MockJournalService mocks the service.JournalService interface
type MockJournalService struct {
	mock.Mock
}

func (m *MockJournalService) AnalyzeEntry(
	ctx context.Context,
	input service.AnalyzeEntryInput,
) (*domain.EntryFeedback, string, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.String(1), args.Error(2)
	}
	return args.Get(0).(*domain.EntryFeedback), args.String(1), args.Error(2)
}

func (m *MockJournalService) MoreExamples(ctx context.Context, input service.ExtrasInput) ([]string, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockJournalService) SimplifiedExplanation(ctx context.Context, input service.ExtrasInput) (string, error) {
	args := m.Called(ctx, input)
	return args.String(0), args.Error(1)
}

func (m *MockJournalService) Quiz(ctx context.Context, input service.ExtrasInput) (*domain.MiniQuiz, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MiniQuiz), args.Error(1)
}

// authedRequest builds a JSON request carrying an authenticated user ID.
func authedRequest(t *testing.T, method, target string, body interface{}, userID uuid.UUID) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, target, &buf)
	ctx := context.WithValue(req.Context(), shared.UserIDContextKey, userID)
	return req.WithContext(ctx)
}

func TestJournalHandler_AnalyzeEntry(t *testing.T) {
	t.Parallel()

	feedback := &domain.EntryFeedback{
		Corrected: "Ayer fui a la tienda.",
		Rewritten: "Ayer fui a la tienda a comprar pan.",
		Score:     70,
		Tone:      "Reflective",
	}

	svc := &MockJournalService{}
	svc.On("AnalyzeEntry", mock.Anything, service.AnalyzeEntryInput{
		Text:     "Ayer yo fui a la tienda.",
		Language: "es",
		Level:    "beginner",
	}).Return(feedback, "gemini", nil)

	handler := NewJournalHandler(svc)
	req := authedRequest(t, http.MethodPost, "/api/journal/analyze", AnalyzeEntryRequest{
		Text:     "Ayer yo fui a la tienda.",
		Language: "es",
		Level:    "beginner",
	}, uuid.New())
	rec := httptest.NewRecorder()

	handler.AnalyzeEntry(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp AnalyzeEntryResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "gemini", resp.Provider)
	assert.Equal(t, feedback.Corrected, resp.Feedback.Corrected)
}

func TestJournalHandler_AnalyzeEntry_Validation(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name string
		req  AnalyzeEntryRequest
	}{
		{"missing text", AnalyzeEntryRequest{Language: "es"}},
		{"missing language", AnalyzeEntryRequest{Text: "Hola."}},
		{"bad level", AnalyzeEntryRequest{Text: "Hola.", Language: "es", Level: "expert"}},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			svc := &MockJournalService{}
			handler := NewJournalHandler(svc)
			req := authedRequest(t, http.MethodPost, "/api/journal/analyze", tc.req, uuid.New())
			rec := httptest.NewRecorder()

			handler.AnalyzeEntry(rec, req)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			svc.AssertNotCalled(t, "AnalyzeEntry", mock.Anything, mock.Anything)
		})
	}
}

func TestJournalHandler_AnalyzeEntry_RequiresAuth(t *testing.T) {
	t.Parallel()

	handler := NewJournalHandler(&MockJournalService{})
	req := httptest.NewRequest(http.MethodPost, "/api/journal/analyze", bytes.NewBufferString(`{}`))
	rec := httptest.NewRecorder()

	handler.AnalyzeEntry(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestJournalHandler_MoreExamples(t *testing.T) {
	t.Parallel()

	svc := &MockJournalService{}
	svc.On("MoreExamples", mock.Anything, mock.Anything).
		Return([]string{"El gato negro duerme.", "Mi gato come pescado."}, nil)

	handler := NewJournalHandler(svc)
	req := authedRequest(t, http.MethodPost, "/api/generate/examples", MoreExamplesRequest{
		Term:     "gato",
		Language: "es",
		Count:    2,
	}, uuid.New())
	rec := httptest.NewRecorder()

	handler.MoreExamples(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp MoreExamplesResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Len(t, resp.Examples, 2)
}

func TestJournalHandler_SimplifiedExplanation(t *testing.T) {
	t.Parallel()

	svc := &MockJournalService{}
	svc.On("SimplifiedExplanation", mock.Anything, mock.Anything).
		Return("A gato is a furry animal that says meow.", nil)

	handler := NewJournalHandler(svc)
	req := authedRequest(t, http.MethodPost, "/api/generate/eli5", SimplifiedExplanationRequest{
		Term:     "gato",
		Language: "es",
	}, uuid.New())
	rec := httptest.NewRecorder()

	handler.SimplifiedExplanation(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp SimplifiedExplanationResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Contains(t, resp.Explanation, "meow")
}

func TestJournalHandler_Quiz_ExhaustionMapsToServiceUnavailable(t *testing.T) {
	t.Parallel()

	svc := &MockJournalService{}
	svc.On("Quiz", mock.Anything, mock.Anything).Return(nil, generation.ErrExhausted)

	handler := NewJournalHandler(svc)
	req := authedRequest(t, http.MethodPost, "/api/generate/quiz", QuizRequest{
		Term:     "gato",
		Language: "es",
	}, uuid.New())
	rec := httptest.NewRecorder()

	handler.Quiz(rec, req)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestJournalHandler_Quiz(t *testing.T) {
	t.Parallel()

	quiz := &domain.MiniQuiz{
		Title: `Mini quiz for "gato"`,
		Questions: []domain.QuizQuestion{
			{Question: "What does gato mean?", Options: []string{"dog", "cat"}, AnswerIndex: 1},
		},
	}

	svc := &MockJournalService{}
	svc.On("Quiz", mock.Anything, mock.Anything).Return(quiz, nil)

	handler := NewJournalHandler(svc)
	req := authedRequest(t, http.MethodPost, "/api/generate/quiz", QuizRequest{
		Term:       "gato",
		Language:   "es",
		Difficulty: "easy",
	}, uuid.New())
	rec := httptest.NewRecorder()

	handler.Quiz(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp domain.MiniQuiz
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Len(t, resp.Questions, 1)
	assert.Equal(t, 1, resp.Questions[0].AnswerIndex)
}
