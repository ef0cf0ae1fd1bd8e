package contract

import (
	"fmt"
	"strings"

	"github.com/lingualog/lingualog-api/internal/domain"
)

// minQuizOptions is the smallest option list a multiple-choice question
// can usefully carry.
const minQuizOptions = 2

// ValidateMiniQuiz checks a raw decoded backend response against the
// mini-quiz output contract. Questions with missing text, too few options,
// or an out-of-range answer index are dropped; a quiz with no usable
// questions at all is a contract violation, since an empty quiz has no
// value to a caller.
func ValidateMiniQuiz(raw map[string]any, term string) (*domain.MiniQuiz, []string, error) {
	if raw == nil {
		return nil, nil, fmt.Errorf("%w: response is not an object", ErrViolation)
	}

	var warns warnings

	quiz := &domain.MiniQuiz{
		Title: stringField(raw, "title", fmt.Sprintf("Mini quiz for %q", term), &warns),
	}

	elems, err := listField(raw, "questions")
	if err != nil {
		return nil, nil, err
	}

	quiz.Questions = make([]domain.QuizQuestion, 0, len(elems))
	for i, elem := range elems {
		obj, ok := elem.(map[string]any)
		if !ok {
			warns.addf("questions element %d is not an object; dropped", i)
			continue
		}

		question, ok := requiredString(obj, "question")
		if !ok {
			warns.addf("questions element %d missing question text; dropped", i)
			continue
		}

		options, err := stringListField(obj, "options", &warns)
		if err != nil {
			warns.addf("questions element %d has a non-list options field; dropped", i)
			continue
		}
		if len(options) < minQuizOptions {
			warns.addf("questions element %d has fewer than %d options; dropped", i, minQuizOptions)
			continue
		}

		answerIndex := resolveAnswer(obj, options)
		if answerIndex < 0 {
			warns.addf("questions element %d has unusable answer; dropped", i)
			continue
		}

		quiz.Questions = append(quiz.Questions, domain.QuizQuestion{
			Question:    question,
			Options:     options,
			AnswerIndex: answerIndex,
			Explanation: optionalString(obj, "explanation"),
		})
	}

	if len(quiz.Questions) == 0 {
		return nil, nil, fmt.Errorf("%w: quiz has no usable questions", ErrViolation)
	}

	return quiz, warns, nil
}

// resolveAnswer finds the correct-answer index for a question. Backends
// answer either with a 0-based "answer_index" or with the option's literal
// text under "answer" (or in "answer_index" itself); a literal is matched
// against the options ignoring case and surrounding whitespace. Returns -1
// when no usable answer is present.
func resolveAnswer(obj map[string]any, options []string) int {
	if value, ok := obj["answer_index"]; ok && value != nil {
		if n, ok := asInt(value); ok && n >= 0 && n < len(options) {
			return n
		}
	}

	for _, key := range []string{"answer", "answer_index"} {
		literal, ok := obj[key].(string)
		if !ok {
			continue
		}
		for i, option := range options {
			if strings.EqualFold(strings.TrimSpace(literal), strings.TrimSpace(option)) {
				return i
			}
		}
	}

	return -1
}
