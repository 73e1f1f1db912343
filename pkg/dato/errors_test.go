package dato_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/datocms-community/datocms-mcp/pkg/dato"
)

func TestParseErrorResponse(t *testing.T) {
	t.Parallel()

	body := []byte(`{
		"data": [
			{
				"id": "e1",
				"type": "api_error",
				"attributes": {
					"code": "VALIDATION_ERROR",
					"details": {"field": "title", "code": "required"},
					"doc_url": "https://www.datocms.com/docs/errors"
				}
			}
		]
	}`)

	resp := dato.ParseErrorResponse(http.StatusUnprocessableEntity, body)

	require.Len(t, resp.Errors, 1)
	assert.Equal(t, http.StatusUnprocessableEntity, resp.Status)
	assert.Equal(t, "VALIDATION_ERROR", resp.Errors[0].Code)
	assert.Equal(t, "title", resp.Errors[0].Details["field"])
	assert.Equal(t, "https://www.datocms.com/docs/errors", resp.Errors[0].DocURL)
}

func TestParseErrorResponse_MalformedBody(t *testing.T) {
	t.Parallel()

	resp := dato.ParseErrorResponse(http.StatusBadGateway, []byte("<html>Bad Gateway</html>"))

	assert.Equal(t, http.StatusBadGateway, resp.Status)
	assert.Empty(t, resp.Errors)
	assert.Contains(t, resp.Error(), "502")
}

func TestErrorResponse_Error(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		resp     *dato.ErrorResponse
		expected string
	}{
		{
			name:     "no entities",
			resp:     &dato.ErrorResponse{Status: 500},
			expected: "API request failed with status 500",
		},
		{
			name: "single entity",
			resp: &dato.ErrorResponse{
				Status: 404,
				Errors: []dato.APIError{{Code: "NOT_FOUND"}},
			},
			expected: "NOT_FOUND (status: 404)",
		},
		{
			name: "multiple entities",
			resp: &dato.ErrorResponse{
				Status: 422,
				Errors: []dato.APIError{
					{Code: "INVALID_FIELD"},
					{Code: "INVALID_FORMAT"},
				},
			},
			expected: "multiple errors: INVALID_FIELD, INVALID_FORMAT (status: 422)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, tt.resp.Error())
		})
	}
}

func TestErrorPredicates(t *testing.T) {
	t.Parallel()

	byStatus := func(status int) error {
		return &dato.ErrorResponse{Status: status}
	}
	byCode := func(status int, code string) error {
		return &dato.ErrorResponse{Status: status, Errors: []dato.APIError{{Code: code}}}
	}

	tests := []struct {
		name      string
		err       error
		predicate func(error) bool
		expected  bool
	}{
		{"not found by status", byStatus(404), dato.IsNotFound, true},
		{"not found by code", byCode(400, "NOT_FOUND"), dato.IsNotFound, true},
		{"not found negative", byStatus(500), dato.IsNotFound, false},
		{"unauthorized by status", byStatus(401), dato.IsUnauthorized, true},
		{"unauthorized by code", byCode(400, "INVALID_AUTHORIZATION_HEADER"), dato.IsUnauthorized, true},
		{"forbidden by status", byStatus(403), dato.IsForbidden, true},
		{"rate limited by status", byStatus(429), dato.IsRateLimited, true},
		{"validation by status", byStatus(422), dato.IsValidation, true},
		{"validation by code", byCode(400, "INVALID_FIELD"), dato.IsValidation, true},
		{"conflict by code", byCode(422, "VALIDATION_UNIQUENESS"), dato.IsConflict, true},
		{"quota by code", byCode(403, "PLAN_UPGRADE_REQUIRED"), dato.IsQuotaExceeded, true},
		{"quota negative", byStatus(403), dato.IsQuotaExceeded, false},
		{"non-API error", fmt.Errorf("dial tcp: connection refused"), dato.IsNotFound, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, tt.predicate(tt.err))
		})
	}
}

func TestErrorPredicates_Wrapped(t *testing.T) {
	t.Parallel()

	inner := &dato.ErrorResponse{Status: 404, Errors: []dato.APIError{{Code: "NOT_FOUND"}}}
	wrapped := fmt.Errorf("retrieving item %q: %w", "123", inner)

	assert.True(t, dato.IsNotFound(wrapped))
	assert.False(t, dato.IsUnauthorized(wrapped))
}

func TestAPIError_Error(t *testing.T) {
	t.Parallel()

	plain := &dato.APIError{Code: "NOT_FOUND"}
	assert.Equal(t, "NOT_FOUND", plain.Error())

	detailed := &dato.APIError{
		Code:    "VALIDATION_ERROR",
		Details: map[string]any{"field": "title"},
	}
	assert.Contains(t, detailed.Error(), "VALIDATION_ERROR")
	assert.Contains(t, detailed.Error(), "field=title")
}
