// Package contract defines the output contracts for generation tasks and
// validates raw decoded backend responses against them.
//
// Validation is lenient-with-defaults at the top level: an absent required
// field is substituted with a documented default rather than failing the
// whole result, and an out-of-range or wrong-typed bounded numeric field is
// replaced with its default and reported as a warning. List-of-record fields
// apply a partial-result policy: each element is checked against its own
// required sub-fields and failing elements are dropped from the list.
//
// A result is rejected outright (ErrViolation) only when it is structurally
// unusable even after default substitution, e.g. the response is not an
// object or a required list field is present but not a list.
//
// The package performs no I/O and is deterministic given its input.
package contract
