package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestErrors_Existence tests that all error variables exist and are not nil
func TestErrors_Existence(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"ErrNotFound", ErrNotFound},
		{"ErrInvalidInput", ErrInvalidInput},
		{"ErrAPIKeyMissing", ErrAPIKeyMissing},
		{"ErrTransport", ErrTransport},
		{"ErrRateLimited", ErrRateLimited},
		{"ErrEmptyQuery", ErrEmptyQuery},
		{"ErrFetchInProgress", ErrFetchInProgress},
		{"ErrExhausted", ErrExhausted},
		{"ErrAdvanceInProgress", ErrAdvanceInProgress},
		{"ErrStaleResponse", ErrStaleResponse},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotNil(t, tt.err)
			assert.NotEmpty(t, tt.err.Error())
		})
	}
}

func TestIsNoOp(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"empty query", ErrEmptyQuery, true},
		{"fetch in progress", ErrFetchInProgress, true},
		{"exhausted", fmt.Errorf("load more: %w", ErrExhausted), true},
		{"advance in progress", ErrAdvanceInProgress, true},
		{"stale", ErrStaleResponse, true},
		{"missing key", ErrAPIKeyMissing, false},
		{"transport", fmt.Errorf("search: %w", ErrTransport), false},
		{"nil", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsNoOp(tt.err))
		})
	}
}

func TestAPIError(t *testing.T) {
	err := fmt.Errorf("search: %w", &APIError{Code: 403, Message: "The request cannot be completed because you have exceeded your quota."})

	var apiErr *APIError
	assert.True(t, errors.As(err, &apiErr))
	assert.Equal(t, 403, apiErr.Code)
	assert.Equal(t, "The request cannot be completed because you have exceeded your quota.", apiErr.Error())

	bare := &APIError{Code: 500}
	assert.Equal(t, "API error 500", bare.Error())
}
