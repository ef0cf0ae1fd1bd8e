package domain

// Score bounds for fluency scoring. All scores and rubric sub-scores are
// integers in the inclusive range [ScoreMin, ScoreMax].
const (
	ScoreMin = 0
	ScoreMax = 100
)

// DefaultTone is substituted when a generation backend omits the tone label.
const DefaultTone = "Neutral"

// GrammarSuggestion is a single grammar correction identified in a journal
// entry: the problematic snippet, its corrected form, and a short note on
// the rule that applies.
type GrammarSuggestion struct {
	Original  string `json:"original"`
	Corrected string `json:"corrected"`
	Note      string `json:"note"`
}

// NewWord is a new or notable vocabulary word identified in a journal entry.
// Reading is optional; it carries the pronunciation for scripts where the
// written form does not make it obvious (e.g. Japanese kanji).
type NewWord struct {
	Term        string `json:"term"`
	Reading     string `json:"reading,omitempty"`
	POS         string `json:"pos"`
	Definition  string `json:"definition"`
	Example     string `json:"example"`
	Proficiency string `json:"proficiency"`
}

// FluencyRubric breaks the overall fluency score into sub-scores.
// Each sub-score lies in [ScoreMin, ScoreMax].
type FluencyRubric struct {
	Grammar    int `json:"grammar"`
	Vocabulary int `json:"vocabulary"`
	Complexity int `json:"complexity"`
}

// EntryFeedback is the structured result of analyzing a journal entry.
// A value produced by the contract validator always satisfies the
// EntryFeedback output contract: every field is present and every score
// lies within [ScoreMin, ScoreMax].
type EntryFeedback struct {
	Corrected          string              `json:"corrected"`
	Rewritten          string              `json:"rewritten"`
	Score              int                 `json:"score"`
	Rubric             FluencyRubric       `json:"rubric"`
	Tone               string              `json:"tone"`
	Translation        string              `json:"translation"`
	Explanation        string              `json:"explanation"`
	GrammarSuggestions []GrammarSuggestion `json:"grammar_suggestions"`
	NewWords           []NewWord           `json:"new_words"`
}
