package contract

import (
	"fmt"

	"github.com/lingualog/lingualog-api/internal/domain"
)

// Default values substituted for absent or unusable EntryFeedback fields.
const (
	defaultScore = 50
)

// ValidateEntryFeedback checks a raw decoded backend response against the
// EntryFeedback output contract and returns a best-effort typed result.
//
// subject is the original journal entry text; it is the documented default
// for the corrected and rewritten fields so that a partially usable
// response still echoes the user's own words rather than an empty string.
//
// The returned warnings list non-fatal deviations (defaulted fields,
// dropped list elements). The error is non-nil only for a structural
// contract violation.
func ValidateEntryFeedback(raw map[string]any, subject string) (*domain.EntryFeedback, []string, error) {
	if raw == nil {
		return nil, nil, fmt.Errorf("%w: response is not an object", ErrViolation)
	}

	var warns warnings

	feedback := &domain.EntryFeedback{
		Corrected:   stringField(raw, "corrected", subject, &warns),
		Rewritten:   stringField(raw, "rewritten", subject, &warns),
		Score:       boundedIntField(raw, "score", defaultScore, domain.ScoreMin, domain.ScoreMax, &warns),
		Tone:        stringField(raw, "tone", domain.DefaultTone, &warns),
		Translation: stringField(raw, "translation", "", &warns),
		Explanation: stringField(raw, "explanation", "", &warns),
	}

	rubric := objectField(raw, "rubric", &warns)
	feedback.Rubric = domain.FluencyRubric{
		Grammar:    boundedIntField(rubric, "grammar", defaultScore, domain.ScoreMin, domain.ScoreMax, &warns),
		Vocabulary: boundedIntField(rubric, "vocabulary", defaultScore, domain.ScoreMin, domain.ScoreMax, &warns),
		Complexity: boundedIntField(rubric, "complexity", defaultScore, domain.ScoreMin, domain.ScoreMax, &warns),
	}

	suggestions, err := grammarSuggestions(raw, &warns)
	if err != nil {
		return nil, nil, err
	}
	feedback.GrammarSuggestions = suggestions

	newWords, err := newWords(raw, &warns)
	if err != nil {
		return nil, nil, err
	}
	feedback.NewWords = newWords

	return feedback, warns, nil
}

// grammarSuggestions extracts the grammar_suggestions list, dropping
// elements that lack any of their required sub-fields.
func grammarSuggestions(raw map[string]any, warns *warnings) ([]domain.GrammarSuggestion, error) {
	elems, err := listField(raw, "grammar_suggestions")
	if err != nil {
		return nil, err
	}

	suggestions := make([]domain.GrammarSuggestion, 0, len(elems))
	for i, elem := range elems {
		obj, ok := elem.(map[string]any)
		if !ok {
			warns.addf("grammar_suggestions element %d is not an object; dropped", i)
			continue
		}

		original, ok := requiredString(obj, "original")
		if !ok {
			warns.addf("grammar_suggestions element %d missing original; dropped", i)
			continue
		}

		corrected, ok := requiredString(obj, "corrected")
		if !ok {
			warns.addf("grammar_suggestions element %d missing corrected; dropped", i)
			continue
		}

		note, ok := requiredString(obj, "note")
		if !ok {
			warns.addf("grammar_suggestions element %d missing note; dropped", i)
			continue
		}

		suggestions = append(suggestions, domain.GrammarSuggestion{
			Original:  original,
			Corrected: corrected,
			Note:      note,
		})
	}

	return suggestions, nil
}

// newWords extracts the new_words list, dropping elements that lack any of
// their required sub-fields. The reading sub-field is optional.
func newWords(raw map[string]any, warns *warnings) ([]domain.NewWord, error) {
	elems, err := listField(raw, "new_words")
	if err != nil {
		return nil, err
	}

	words := make([]domain.NewWord, 0, len(elems))
	for i, elem := range elems {
		obj, ok := elem.(map[string]any)
		if !ok {
			warns.addf("new_words element %d is not an object; dropped", i)
			continue
		}

		term, termOK := requiredString(obj, "term")
		pos, posOK := requiredString(obj, "pos")
		definition, defOK := requiredString(obj, "definition")
		example, exOK := requiredString(obj, "example")
		proficiency, profOK := requiredString(obj, "proficiency")
		if !termOK || !posOK || !defOK || !exOK || !profOK {
			warns.addf("new_words element %d missing required sub-fields; dropped", i)
			continue
		}

		words = append(words, domain.NewWord{
			Term:        term,
			Reading:     optionalString(obj, "reading"),
			POS:         pos,
			Definition:  definition,
			Example:     example,
			Proficiency: proficiency,
		})
	}

	return words, nil
}
