package domain

// QuizQuestion is a single multiple-choice question about a vocabulary term.
// AnswerIndex is the 0-based index into Options of the correct answer.
type QuizQuestion struct {
	Question    string   `json:"question"`
	Options     []string `json:"options"`
	AnswerIndex int      `json:"answer_index"`
	Explanation string   `json:"explanation,omitempty"`
}

// MiniQuiz is a short generated quiz about a vocabulary term.
type MiniQuiz struct {
	Title     string         `json:"title"`
	Questions []QuizQuestion `json:"questions"`
}
