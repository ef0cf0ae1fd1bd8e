package contract

import (
	"fmt"

	"github.com/lingualog/lingualog-api/internal/domain"
)

// ValidateTermEnrichment checks a raw decoded backend response against the
// TermEnrichment output contract and returns a best-effort typed result.
//
// The returned warnings list non-fatal deviations (defaulted fields,
// dropped list elements). The error is non-nil only for a structural
// contract violation.
func ValidateTermEnrichment(raw map[string]any) (*domain.TermEnrichment, []string, error) {
	if raw == nil {
		return nil, nil, fmt.Errorf("%w: response is not an object", ErrViolation)
	}

	var warns warnings

	enrichment := &domain.TermEnrichment{
		CulturalNote:       stringField(raw, "cultural_note", "", &warns),
		PronunciationGuide: stringField(raw, "pronunciation_guide", "", &warns),
		EmotionTone:        stringField(raw, "emotion_tone", "", &warns),
		Mnemonic:           stringField(raw, "mnemonic", "", &warns),
		Emoji:              stringField(raw, "emoji", "", &warns),
		Conjugations:       stringMapField(raw, "conjugations", &warns),
	}

	var err error
	if enrichment.ExampleSentences, err = stringListField(raw, "example_sentences", &warns); err != nil {
		return nil, nil, err
	}
	if enrichment.Synonyms, err = stringListField(raw, "synonyms", &warns); err != nil {
		return nil, nil, err
	}
	if enrichment.Antonyms, err = stringListField(raw, "antonyms", &warns); err != nil {
		return nil, nil, err
	}
	if enrichment.RelatedPhrases, err = stringListField(raw, "related_phrases", &warns); err != nil {
		return nil, nil, err
	}
	if enrichment.AlternativeForms, err = stringListField(raw, "alternative_forms", &warns); err != nil {
		return nil, nil, err
	}

	if enrichment.Definitions, err = definitions(raw, &warns); err != nil {
		return nil, nil, err
	}
	if enrichment.CommonMistakes, err = commonMistakes(raw, &warns); err != nil {
		return nil, nil, err
	}

	return enrichment, warns, nil
}

// definitions extracts the definitions list, dropping elements that lack
// either required sub-field.
func definitions(raw map[string]any, warns *warnings) ([]domain.Definition, error) {
	elems, err := listField(raw, "definitions")
	if err != nil {
		return nil, err
	}

	defs := make([]domain.Definition, 0, len(elems))
	for i, elem := range elems {
		obj, ok := elem.(map[string]any)
		if !ok {
			warns.addf("definitions element %d is not an object; dropped", i)
			continue
		}

		pos, posOK := requiredString(obj, "part_of_speech")
		text, textOK := requiredString(obj, "definition")
		if !posOK || !textOK {
			warns.addf("definitions element %d missing required sub-fields; dropped", i)
			continue
		}

		defs = append(defs, domain.Definition{PartOfSpeech: pos, Definition: text})
	}

	return defs, nil
}

// commonMistakes extracts the common_mistakes list, dropping elements that
// lack either required sub-field. The explanation sub-field is optional.
func commonMistakes(raw map[string]any, warns *warnings) ([]domain.CommonMistake, error) {
	elems, err := listField(raw, "common_mistakes")
	if err != nil {
		return nil, err
	}

	mistakes := make([]domain.CommonMistake, 0, len(elems))
	for i, elem := range elems {
		obj, ok := elem.(map[string]any)
		if !ok {
			warns.addf("common_mistakes element %d is not an object; dropped", i)
			continue
		}

		mistake, mistakeOK := requiredString(obj, "mistake")
		correction, correctionOK := requiredString(obj, "correction")
		if !mistakeOK || !correctionOK {
			warns.addf("common_mistakes element %d missing required sub-fields; dropped", i)
			continue
		}

		mistakes = append(mistakes, domain.CommonMistake{
			Mistake:     mistake,
			Correction:  correction,
			Explanation: optionalString(obj, "explanation"),
		})
	}

	return mistakes, nil
}
