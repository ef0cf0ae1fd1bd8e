// Package service provides application-level services for journal analysis,
// vocabulary management, and term enrichment.
package service

import "errors"

// Common service errors - sentinel errors used across service implementations.
// These errors represent common conditions that callers may want to check for with errors.Is().
//
// Error handling principles:
// 1. Service methods return sentinel errors for expected error conditions
// 2. Unexpected errors are wrapped in service-specific error types
// 3. Callers use errors.Is/errors.As to check for specific error conditions
// 4. The API layer maps service errors to appropriate HTTP status codes
var (
	// ErrNotOwned indicates a resource is owned by a different user than the one making the request.
	// This is typically returned when a user attempts to act on a vocabulary item they don't own.
	// API layer should map this to HTTP 403 Forbidden.
	ErrNotOwned = errors.New("resource is owned by another user")

	// ErrVocabularyItemNotFound indicates that the vocabulary item does not exist.
	// API layer should map this to HTTP 404 Not Found.
	ErrVocabularyItemNotFound = errors.New("vocabulary item not found")

	// ErrDuplicateTerm indicates the user already saved this term in this language.
	// API layer should map this to HTTP 409 Conflict.
	ErrDuplicateTerm = errors.New("term already saved for this language")
)
