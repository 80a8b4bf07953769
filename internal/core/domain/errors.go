package domain

import (
	"errors"
	"fmt"
)

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrAPIKeyMissing indicates no search API key is configured.
	// No request is issued until the user provides one.
	ErrAPIKeyMissing = errors.New("API key not configured")

	// ErrTransport indicates the search request never produced an API response.
	ErrTransport = errors.New("transport failure")

	// ErrRateLimited indicates the API quota or rate limit was exceeded.
	ErrRateLimited = errors.New("rate limited")

	// No-op signals. Callers treat these as "nothing happened", not failures.

	// ErrEmptyQuery indicates the submitted query was blank.
	ErrEmptyQuery = errors.New("empty query")

	// ErrFetchInProgress indicates a page request is already in flight.
	ErrFetchInProgress = errors.New("fetch in progress")

	// ErrExhausted indicates there is nothing more to load.
	ErrExhausted = errors.New("no more results")

	// ErrAdvanceInProgress indicates an autoplay step is already running.
	ErrAdvanceInProgress = errors.New("advance in progress")

	// ErrStaleResponse indicates a response arrived for a superseded query or session.
	ErrStaleResponse = errors.New("stale response")
)

// IsNoOp reports whether err only signals that an operation had no effect.
func IsNoOp(err error) bool {
	return errors.Is(err, ErrEmptyQuery) ||
		errors.Is(err, ErrFetchInProgress) ||
		errors.Is(err, ErrExhausted) ||
		errors.Is(err, ErrAdvanceInProgress) ||
		errors.Is(err, ErrStaleResponse)
}

// APIError is an error reported by the search API itself. Its message is
// shown to the user verbatim.
type APIError struct {
	Code    int
	Message string
}

// Error implements error.
func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("API error %d", e.Code)
	}
	return e.Message
}
