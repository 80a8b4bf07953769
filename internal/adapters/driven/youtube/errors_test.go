package youtube

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/googleapi"

	"github.com/custodia-labs/clipseek/internal/core/domain"
)

func TestIsRateLimited(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"plain", errors.New("boom"), false},
		{"domain sentinel", domain.ErrRateLimited, true},
		{"429", &googleapi.Error{Code: http.StatusTooManyRequests}, true},
		{"quota reason", &googleapi.Error{Code: http.StatusForbidden, Errors: []googleapi.ErrorItem{{Reason: "quotaExceeded"}}}, true},
		{"forbidden", &googleapi.Error{Code: http.StatusForbidden, Errors: []googleapi.ErrorItem{{Reason: "forbidden"}}}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsRateLimited(tt.err))
		})
	}
}

func TestWrapError(t *testing.T) {
	assert.NoError(t, WrapError(nil))

	err := WrapError(errors.New("connection refused"))
	assert.True(t, errors.Is(err, domain.ErrTransport))

	err = WrapError(&googleapi.Error{Code: http.StatusBadRequest, Message: "Invalid value"})
	var apiErr *domain.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, "Invalid value", apiErr.Message)
	assert.Equal(t, "Invalid value", err.Error())
}

func TestWrapError_MessageFallbacks(t *testing.T) {
	err := WrapError(&googleapi.Error{Code: http.StatusBadRequest, Errors: []googleapi.ErrorItem{{Message: "item message"}}})
	assert.Equal(t, "item message", err.Error())

	err = WrapError(&googleapi.Error{Code: http.StatusInternalServerError})
	assert.Equal(t, http.StatusText(http.StatusInternalServerError), err.Error())
}

func TestRetryAfter(t *testing.T) {
	header := http.Header{}
	header.Set("Retry-After", "12")

	assert.Equal(t, 12*time.Second, retryAfter(&googleapi.Error{Code: http.StatusTooManyRequests, Header: header}))
	assert.Zero(t, retryAfter(&googleapi.Error{Code: http.StatusTooManyRequests}))
	assert.Zero(t, retryAfter(errors.New("boom")))
}
