package generation

import (
	"bytes"
	"fmt"
	"text/template"

	"github.com/lingualog/lingualog-api/internal/language"
)

// Task defaults applied when the request leaves the field empty.
const (
	defaultLevel      = "intermediate"
	defaultCount      = 3
	defaultDifficulty = "medium"
)

const entryFeedbackTemplate = `You are an expert {{.Language}} tutor reviewing a learner's journal entry.
{{if .Title}}The entry is titled "{{.Title}}".
{{end}}Analyze the entry below for a {{.Level}} learner. Correct grammar errors while
preserving the learner's voice, produce a more natural native-like rewrite,
score overall fluency and a grammar/vocabulary/complexity rubric on a 0-100
scale, identify the emotional tone, translate the entry to English, give 3-5
specific grammar suggestions, and extract 2-5 notable words worth learning.
Keep the explanation brief and encouraging.

Respond with a single JSON object using exactly these keys:
corrected (string), rewritten (string), score (integer 0-100),
rubric (object with integer keys grammar, vocabulary, complexity, each 0-100),
tone (string), translation (string), explanation (string),
grammar_suggestions (list of objects with keys original, corrected, note),
new_words (list of objects with keys term, reading, pos, definition, example, proficiency).

Journal entry:
{{.Text}}`

const termEnrichmentTemplate = `You are an expert {{.Language}} lexicographer preparing learning material
about the term "{{.Term}}" for a {{.Level}} learner.

Provide 3-5 definitions with part-of-speech labels, 5-8 diverse natural
example sentences, 4-6 synonyms, 3-4 antonyms, 3-5 related phrases or
collocations, a cultural usage note, learner-friendly pronunciation
guidance, alternative written forms, 2-3 common learner mistakes with
corrections, the word's emotional tone, a memorable mnemonic, conjugation
forms when the term inflects, and one representative emoji.

Respond with a single JSON object using exactly these keys:
example_sentences (list of strings),
definitions (list of objects with keys part_of_speech, definition),
synonyms (list of strings), antonyms (list of strings),
related_phrases (list of strings), cultural_note (string),
pronunciation_guide (string), alternative_forms (list of strings),
common_mistakes (list of objects with keys mistake, correction, explanation),
emotion_tone (string), mnemonic (string),
conjugations (object mapping form names to strings), emoji (string).`

const moreExamplesTemplate = `Generate {{.Count}} diverse and natural-sounding example sentences for the
word "{{.Term}}" in {{.Language}}, suitable for a {{.Level}} learner.
{{if .Existing}}Avoid examples similar to these:
{{range .Existing}}- {{.}}
{{end}}{{end}}
Respond with a single JSON object with one key, examples, holding a list of strings.`

const eli5Template = `Explain the term "{{.Term}}" in {{.Language}} as if you were talking to a
five-year-old. Keep it simple, use analogies if possible, and make it short.`

const quizTemplate = `Create a mini quiz with {{.Count}} questions about the word "{{.Term}}" in
{{.Language}}. Difficulty: {{.Difficulty}}. Each question needs the question
text, 3-4 answer options, the 0-based index of the correct option, and a
brief explanation of the correct answer.

Respond with a single JSON object using exactly these keys:
title (string), questions (list of objects with keys question, options,
answer_index, explanation).`

var prompts = template.Must(template.New("entry_feedback").Parse(entryFeedbackTemplate))

func init() {
	template.Must(prompts.New("term_enrichment").Parse(termEnrichmentTemplate))
	template.Must(prompts.New("more_examples").Parse(moreExamplesTemplate))
	template.Must(prompts.New("eli5").Parse(eli5Template))
	template.Must(prompts.New("quiz").Parse(quizTemplate))
}

func buildPrompt(name string, data any) (string, error) {
	var buf bytes.Buffer
	if err := prompts.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("failed to execute prompt template %q: %w", name, err)
	}
	return buf.String(), nil
}

func entryFeedbackPrompt(req Request) (string, error) {
	return buildPrompt("entry_feedback", struct {
		Text, Language, Title, Level string
	}{
		Text:     req.Subject,
		Language: language.Name(req.Language),
		Title:    req.Title,
		Level:    orDefault(req.Level, defaultLevel),
	})
}

func termEnrichmentPrompt(req Request) (string, error) {
	return buildPrompt("term_enrichment", struct {
		Term, Language, Level string
	}{
		Term:     req.Subject,
		Language: language.Name(req.Language),
		Level:    orDefault(req.Level, defaultLevel),
	})
}

func moreExamplesPrompt(req Request) (string, error) {
	return buildPrompt("more_examples", struct {
		Term, Language, Level string
		Count                 int
		Existing              []string
	}{
		Term:     req.Subject,
		Language: language.Name(req.Language),
		Level:    orDefault(req.Level, defaultLevel),
		Count:    orDefaultInt(req.Count, defaultCount),
		Existing: req.ExistingExamples,
	})
}

func eli5Prompt(req Request) (string, error) {
	return buildPrompt("eli5", struct {
		Term, Language string
	}{
		Term:     req.Subject,
		Language: language.Name(req.Language),
	})
}

func quizPrompt(req Request) (string, error) {
	return buildPrompt("quiz", struct {
		Term, Language, Difficulty string
		Count                      int
	}{
		Term:       req.Subject,
		Language:   language.Name(req.Language),
		Difficulty: orDefault(req.Difficulty, defaultDifficulty),
		Count:      orDefaultInt(req.Count, defaultCount),
	})
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}

func orDefaultInt(n, def int) int {
	if n <= 0 {
		return def
	}
	return n
}
