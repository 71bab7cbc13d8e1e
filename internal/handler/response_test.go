package handler_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"answerbox/internal/handler"
	"answerbox/internal/service"

	"github.com/stretchr/testify/require"
)

func TestWriteServiceError_Mapping(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		status   int
		expected string
	}{
		{
			name:     "validation message surfaced verbatim",
			err:      &service.ValidationError{Message: "Query is required and must be a string"},
			status:   http.StatusBadRequest,
			expected: "Query is required and must be a string",
		},
		{
			name:     "rate limited",
			err:      service.ErrRateLimited,
			status:   http.StatusTooManyRequests,
			expected: "Rate limit exceeded. Please try again later.",
		},
		{
			name:     "configuration",
			err:      service.ErrConfig,
			status:   http.StatusInternalServerError,
			expected: "Internal server error",
		},
		{
			name:     "wrapped upstream detail hidden",
			err:      fmt.Errorf("failed to perform web search: %w", service.ErrUpstream),
			status:   http.StatusInternalServerError,
			expected: "Internal server error",
		},
		{
			name:     "default",
			err:      errors.New("boom"),
			status:   http.StatusInternalServerError,
			expected: "Internal server error",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			e := newTestEcho()
			req := newJSONRequest(http.MethodGet, "/", nil)
			c, rec := newTestContext(e, req)

			err := handler.WriteServiceError(c, tc.err)
			require.NoError(t, err)

			var resp map[string]string
			assertJSONResponse(t, rec, tc.status, &resp)
			require.Equal(t, tc.expected, resp["error"])
		})
	}
}

func TestErrorResponse(t *testing.T) {
	e := newTestEcho()
	req := newJSONRequest(http.MethodGet, "/", nil)
	c, rec := newTestContext(e, req)

	err := handler.Error(c, http.StatusBadRequest, "bad request")
	require.NoError(t, err)

	var resp map[string]string
	assertJSONResponse(t, rec, http.StatusBadRequest, &resp)
	require.Equal(t, "bad request", resp["error"])
}
