package generation

// Request carries the inputs for a generation task. Subject and Language
// are always set; the remaining fields are task-specific and ignored by
// tasks that do not use them.
type Request struct {
	// Subject is the journal entry text or the vocabulary term.
	Subject string

	// Language is the subject's language in any accepted form (ISO code,
	// English name, or alias). Prompt builders resolve it to the full
	// English name before it reaches a backend.
	Language string

	// Title is an optional journal entry title.
	Title string

	// Level is the learner's proficiency level, for example "beginner" or
	// "intermediate".
	Level string

	// ExistingExamples lists sentences the caller already has, so new
	// examples avoid repeating them.
	ExistingExamples []string

	// Count bounds list-producing tasks (number of examples or quiz
	// questions).
	Count int

	// Difficulty tunes quiz generation, for example "easy" or "medium".
	Difficulty string
}
