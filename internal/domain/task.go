package domain

// GenerationTask identifies which output contract and prompt template apply
// to a generation request. Tasks are defined at compile time.
type GenerationTask string

// Supported generation tasks.
const (
	// TaskEntryFeedback analyzes a journal entry for grammar, fluency,
	// tone, and translation feedback.
	TaskEntryFeedback GenerationTask = "entry_feedback"

	// TaskTermEnrichment enriches a vocabulary term with definitions,
	// synonyms, examples, and cultural notes.
	TaskTermEnrichment GenerationTask = "term_enrichment"
)

// IsValid reports whether the task is one of the defined generation tasks.
func (t GenerationTask) IsValid() bool {
	switch t {
	case TaskEntryFeedback, TaskTermEnrichment:
		return true
	default:
		return false
	}
}
