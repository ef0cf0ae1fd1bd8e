package contract

import "errors"

// ErrViolation is returned when a decoded result cannot satisfy its task's
// output contract even after default substitution, for example when the
// response is not an object at all or a required list field carries a
// non-list value. The orchestrator treats a violation like a backend
// failure and falls back to the next provider.
var ErrViolation = errors.New("output contract violation")
