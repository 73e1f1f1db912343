package handler_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/datocms-community/datocms-mcp/internal/handler"
	"github.com/datocms-community/datocms-mcp/pkg/dato"
)

func apiErr(status int, code string) error {
	return &dato.ErrorResponse{
		Status: status,
		Errors: []dato.APIError{{Code: code}},
	}
}

//nolint:funlen
func TestClassify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		code string
	}{
		{
			name: "unauthorized",
			err:  apiErr(http.StatusUnauthorized, dato.ErrorCodeInvalidAuthorization),
			code: handler.CodeAuthError,
		},
		{
			name: "forbidden",
			err:  apiErr(http.StatusForbidden, dato.ErrorCodeInsufficientPerms),
			code: handler.CodeAuthError,
		},
		{
			name: "not found",
			err:  apiErr(http.StatusNotFound, dato.ErrorCodeNotFound),
			code: handler.CodeNotFound,
		},
		{
			name: "rate limited",
			err:  apiErr(http.StatusTooManyRequests, dato.ErrorCodeRateLimited),
			code: handler.CodeRateLimit,
		},
		{
			name: "upstream validation",
			err:  apiErr(http.StatusUnprocessableEntity, dato.ErrorCodeValidation),
			code: handler.CodeValidationError,
		},
		{
			name: "uniqueness conflict",
			err:  apiErr(http.StatusConflict, dato.ErrorCodeUniqueness),
			code: handler.CodeConflict,
		},
		{
			name: "plan limit",
			err:  apiErr(http.StatusPaymentRequired, dato.ErrorCodePlanUpgradeRequired),
			code: handler.CodeQuotaExceeded,
		},
		{
			name: "environment not ready",
			err:  dato.ErrEnvironmentNotReady,
			code: handler.CodeInvalidOperation,
		},
		{
			name: "invalid maintenance transition",
			err:  dato.ErrInvalidHealthCheckType,
			code: handler.CodeInvalidOperation,
		},
		{
			name: "steal maintenance mode",
			err:  apiErr(http.StatusBadRequest, dato.ErrorCodeStealEditing),
			code: handler.CodeInvalidOperation,
		},
		{
			name: "url error",
			err:  &url.Error{Op: "Get", URL: "https://site-api.datocms.com", Err: errors.New("connection refused")},
			code: handler.CodeNetworkError,
		},
		{
			name: "deadline exceeded",
			err:  context.DeadlineExceeded,
			code: handler.CodeNetworkError,
		},
		{
			name: "unrecognized error",
			err:  errors.New("boom"),
			code: handler.CodeAPIError,
		},
		{
			name: "wrapped unauthorized",
			err:  fmt.Errorf("retrieving site: %w", apiErr(http.StatusUnauthorized, dato.ErrorCodeInvalidAuthorization)),
			code: handler.CodeAuthError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			classified := handler.Classify(tt.err)
			assert.Equal(t, tt.code, classified.Code)
			assert.NotEmpty(t, classified.Message)
		})
	}
}

func TestClassify_AuthMessageIsFixed(t *testing.T) {
	t.Parallel()

	classified := handler.Classify(apiErr(http.StatusUnauthorized, dato.ErrorCodeInvalidAuthorization))

	assert.True(t, classified.IsAuth())
	assert.Equal(t,
		"authorization failed: the API token is invalid, expired, or lacks the required permissions",
		classified.Message)
}

func TestClassify_UnrecognizedKeepsDiagnostic(t *testing.T) {
	t.Parallel()

	classified := handler.Classify(errors.New("something odd happened"))

	assert.Equal(t, handler.CodeAPIError, classified.Code)
	assert.Equal(t, "something odd happened", classified.Message)
	assert.Nil(t, classified.Details)
}

func TestClassify_DetailsCarriedThrough(t *testing.T) {
	t.Parallel()

	err := &dato.ErrorResponse{
		Status: http.StatusUnprocessableEntity,
		Errors: []dato.APIError{{
			Code:    dato.ErrorCodeValidation,
			Details: map[string]any{"field": "title", "code": "required"},
		}},
	}

	classified := handler.Classify(err)

	assert.True(t, classified.IsValidation())
	require.NotNil(t, classified.Details)
	assert.Equal(t, "title", classified.Details["field"])
}

func TestDetailedErrorInfo(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{
			name:     "nil",
			err:      nil,
			expected: "",
		},
		{
			name:     "plain error",
			err:      errors.New("boom"),
			expected: "boom",
		},
		{
			name:     "status only",
			err:      &dato.ErrorResponse{Status: 500},
			expected: "DatoCMS API error (status 500)",
		},
		{
			name: "code and details",
			err: &dato.ErrorResponse{
				Status: 422,
				Errors: []dato.APIError{{
					Code:    dato.ErrorCodeValidation,
					Details: map[string]any{"field": "title"},
				}},
			},
			expected: "DatoCMS API error (status 422): VALIDATION_ERROR (field=title)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, handler.DetailedErrorInfo(tt.err))
		})
	}
}
