// Package mock provides a deterministic offline generation.Adapter.
// It is registered from configuration, normally at lowest priority, so
// local development and smoke tests work without backend credentials.
package mock

import (
	"context"
	"log/slog"
	"strings"
)

const providerName = "mock"

// Canned responses keyed off phrases the prompt builders always include.
const (
	entryFeedbackResponse = `{
		"corrected": "This is a corrected version of your entry.",
		"rewritten": "This is a more natural rewrite of your entry.",
		"score": 75,
		"rubric": {"grammar": 75, "vocabulary": 70, "complexity": 65},
		"tone": "Neutral",
		"translation": "This is a translation of your entry.",
		"explanation": "Mock feedback: configure a real backend for actual analysis.",
		"grammar_suggestions": [
			{"original": "sample original", "corrected": "sample correction", "note": "mock suggestion"}
		],
		"new_words": []
	}`

	termEnrichmentResponse = `{
		"example_sentences": ["Mock example sentence one.", "Mock example sentence two."],
		"definitions": [{"part_of_speech": "noun", "definition": "mock definition"}],
		"synonyms": ["mock synonym"],
		"antonyms": [],
		"related_phrases": [],
		"cultural_note": "Mock enrichment: configure a real backend for actual data.",
		"pronunciation_guide": "mock",
		"alternative_forms": [],
		"common_mistakes": [],
		"emotion_tone": "neutral",
		"mnemonic": "A mock mnemonic.",
		"conjugations": {},
		"emoji": "🧪"
	}`

	quizResponse = `{
		"title": "Mock quiz",
		"questions": [
			{"question": "Which backend produced this quiz?", "options": ["gemini", "openai", "mock"], "answer_index": 2, "explanation": "This quiz comes from the offline mock backend."}
		]
	}`

	examplesResponse = `{"examples": ["Mock example sentence one.", "Mock example sentence two.", "Mock example sentence three."]}`

	textResponse = "This is a mock explanation. Configure a real backend for actual content."
)

// Adapter serves canned, contract-conforming responses. The task is
// recognized from wording the prompt builders always emit.
type Adapter struct {
	logger *slog.Logger
}

func New(logger *slog.Logger) *Adapter {
	return &Adapter{logger: logger.With(slog.String("component", "mock_adapter"))}
}

// Name implements generation.Adapter.
func (a *Adapter) Name() string {
	return providerName
}

// GenerateJSON implements generation.Adapter.
func (a *Adapter) GenerateJSON(ctx context.Context, prompt string) (string, error) {
	a.logger.DebugContext(ctx, "Serving mock response", slog.Int("prompt_length", len(prompt)))

	switch {
	case strings.Contains(prompt, "journal entry"):
		return entryFeedbackResponse, nil
	case strings.Contains(prompt, "lexicographer"):
		return termEnrichmentResponse, nil
	case strings.Contains(prompt, "mini quiz"):
		return quizResponse, nil
	case strings.Contains(prompt, "example sentences"):
		return examplesResponse, nil
	default:
		return "{}", nil
	}
}

// GenerateText implements generation.Adapter.
func (a *Adapter) GenerateText(ctx context.Context, prompt string) (string, error) {
	a.logger.DebugContext(ctx, "Serving mock response", slog.Int("prompt_length", len(prompt)))
	return textResponse, nil
}
