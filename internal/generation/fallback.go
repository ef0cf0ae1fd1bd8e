package generation

import "github.com/lingualog/lingualog-api/internal/domain"

// ProviderFallback is the provider name attached to safe fallback results.
// Callers use it to tell a generated result from a degraded one, for
// example to skip caching.
const ProviderFallback = "fallback"

const (
	fallbackExplanation  = "Automatic feedback is temporarily unavailable. Your entry was saved and can be re-analyzed later."
	fallbackCulturalNote = "Enrichment is temporarily unavailable for this term. Try refreshing later."
	fallbackEli5         = "Could not generate an explanation at this time."
)

// FallbackEntryFeedback is the safe terminal result when every backend
// fails: the learner's own text echoed back, a zero score so the result is
// never mistaken for a real assessment, and no suggestions.
func FallbackEntryFeedback(subject string) *domain.EntryFeedback {
	return &domain.EntryFeedback{
		Corrected:          subject,
		Rewritten:          subject,
		Score:              0,
		Rubric:             domain.FluencyRubric{},
		Tone:               domain.DefaultTone,
		Explanation:        fallbackExplanation,
		GrammarSuggestions: []domain.GrammarSuggestion{},
		NewWords:           []domain.NewWord{},
	}
}

// FallbackTermEnrichment is the safe terminal result for enrichment: empty
// lists and a cultural note stating that generation failed.
func FallbackTermEnrichment() *domain.TermEnrichment {
	return &domain.TermEnrichment{
		ExampleSentences: []string{},
		Definitions:      []domain.Definition{},
		Synonyms:         []string{},
		Antonyms:         []string{},
		RelatedPhrases:   []string{},
		AlternativeForms: []string{},
		CommonMistakes:   []domain.CommonMistake{},
		Conjugations:     map[string]string{},
		CulturalNote:     fallbackCulturalNote,
	}
}
