package dato

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// APIError represents a single error entity from the CMA. The API reports
// failures as JSON:API error documents whose attributes carry a stable
// machine-readable code plus free-form details.
type APIError struct {
	ID      string         `json:"id,omitempty"      yaml:"id,omitempty"`
	Code    string         `json:"code"              yaml:"code"`
	Details map[string]any `json:"details,omitempty" yaml:"details,omitempty"`
	DocURL  string         `json:"doc_url,omitempty" yaml:"doc_url,omitempty"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if len(e.Details) == 0 {
		return e.Code
	}

	parts := make([]string, 0, len(e.Details))
	for key, value := range e.Details {
		parts = append(parts, fmt.Sprintf("%s=%v", key, value))
	}

	return fmt.Sprintf("%s (%s)", e.Code, strings.Join(parts, ", "))
}

// ErrorResponse represents the full error response from the CMA, including
// the HTTP status it arrived with.
type ErrorResponse struct {
	Status int        `json:"status" yaml:"status"`
	Errors []APIError `json:"errors" yaml:"errors"`
}

// Error implements the error interface for ErrorResponse.
func (e *ErrorResponse) Error() string {
	switch len(e.Errors) {
	case 0:
		return fmt.Sprintf("API request failed with status %d", e.Status)
	case 1:
		return fmt.Sprintf("%s (status: %d)", e.Errors[0].Error(), e.Status)
	default:
		codes := make([]string, 0, len(e.Errors))
		for i := range e.Errors {
			codes = append(codes, e.Errors[i].Code)
		}

		return fmt.Sprintf("multiple errors: %s (status: %d)", strings.Join(codes, ", "), e.Status)
	}
}

// FirstError returns the first error entity or nil.
func (e *ErrorResponse) FirstError() *APIError {
	if len(e.Errors) > 0 {
		return &e.Errors[0]
	}

	return nil
}

// Common CMA error codes.
const (
	ErrorCodeNotFound             = "NOT_FOUND"
	ErrorCodeInvalidAuthorization = "INVALID_AUTHORIZATION_HEADER"
	ErrorCodeInsufficientPerms    = "INSUFFICIENT_PERMISSIONS"
	ErrorCodeValidation           = "VALIDATION_ERROR"
	ErrorCodeInvalidField         = "INVALID_FIELD"
	ErrorCodeInvalidFormat        = "INVALID_FORMAT"
	ErrorCodeRateLimited          = "RATE_LIMIT_EXCEEDED"
	ErrorCodeUniqueness           = "VALIDATION_UNIQUENESS"
	ErrorCodePlanUpgradeRequired  = "PLAN_UPGRADE_REQUIRED"
	ErrorCodeStealEditing         = "STEAL_MAINTENANCE_MODE"
)

// Common static errors that can be wrapped with context.
var (
	ErrAPITokenRequired       = errors.New("API token is required")
	ErrConfigRequired         = errors.New("config is required")
	ErrItemTypeRequired       = errors.New("item type is required")
	ErrNoAPIEndpoint          = errors.New("no API endpoint configured")
	ErrCacheDisabled          = errors.New("cache disabled")
	ErrCacheKeyNotFound       = errors.New("key not found")
	ErrCacheEntryExpired      = errors.New("entry expired")
	ErrUnsupportedCacheType   = errors.New("unsupported cache type")
	ErrNATSConfigRequired     = errors.New("NATS configuration required for NATS cache")
	ErrEnvironmentNotReady    = errors.New("environment is not ready")
	ErrJobPollTimeout         = errors.New("timed out waiting for job result")
	ErrInvalidHealthCheckType = errors.New("invalid maintenance mode transition")
)

// jsonapiErrorDocument is the wire shape of CMA error bodies:
// {"data":[{"id":"...","type":"api_error","attributes":{"code":...,"details":...}}]}.
type jsonapiErrorDocument struct {
	Data []struct {
		ID         string `json:"id"`
		Type       string `json:"type"`
		Attributes struct {
			Code    string         `json:"code"`
			Details map[string]any `json:"details"`
			DocURL  string         `json:"doc_url"`
		} `json:"attributes"`
	} `json:"data"`
}

// ParseErrorResponse parses a CMA error body. Bodies that are not valid
// JSON:API error documents still yield an ErrorResponse carrying the status,
// so callers always get a classifiable error.
func ParseErrorResponse(status int, body []byte) *ErrorResponse {
	resp := &ErrorResponse{Status: status}

	var doc jsonapiErrorDocument
	if err := json.Unmarshal(body, &doc); err != nil {
		return resp
	}

	for _, entity := range doc.Data {
		resp.Errors = append(resp.Errors, APIError{
			ID:      entity.ID,
			Code:    entity.Attributes.Code,
			Details: entity.Attributes.Details,
			DocURL:  entity.Attributes.DocURL,
		})
	}

	return resp
}

func errorMatches(err error, status int, codes ...string) bool {
	var resp *ErrorResponse
	if !errors.As(err, &resp) {
		return false
	}

	if resp.Status == status {
		return true
	}

	first := resp.FirstError()
	if first == nil {
		return false
	}

	for _, code := range codes {
		if first.Code == code {
			return true
		}
	}

	return false
}

// IsNotFound checks if the error is a not found error.
func IsNotFound(err error) bool {
	return errorMatches(err, http.StatusNotFound, ErrorCodeNotFound)
}

// IsUnauthorized checks if the error is an authentication error.
func IsUnauthorized(err error) bool {
	return errorMatches(err, http.StatusUnauthorized, ErrorCodeInvalidAuthorization)
}

// IsForbidden checks if the error is a permission error.
func IsForbidden(err error) bool {
	return errorMatches(err, http.StatusForbidden, ErrorCodeInsufficientPerms)
}

// IsRateLimited checks if the error is a rate limit error.
func IsRateLimited(err error) bool {
	return errorMatches(err, http.StatusTooManyRequests, ErrorCodeRateLimited)
}

// IsValidation checks if the error is a validation error reported by the CMA.
func IsValidation(err error) bool {
	return errorMatches(err, http.StatusUnprocessableEntity,
		ErrorCodeValidation, ErrorCodeInvalidField, ErrorCodeInvalidFormat)
}

// IsConflict checks if the error is a uniqueness/conflict error.
func IsConflict(err error) bool {
	if errorMatches(err, http.StatusConflict, ErrorCodeUniqueness) {
		return true
	}

	var resp *ErrorResponse
	if errors.As(err, &resp) {
		first := resp.FirstError()

		return first != nil && first.Code == ErrorCodeUniqueness
	}

	return false
}

// IsQuotaExceeded checks if the error indicates a plan limit was hit.
func IsQuotaExceeded(err error) bool {
	var resp *ErrorResponse
	if !errors.As(err, &resp) {
		return false
	}

	first := resp.FirstError()

	return first != nil && first.Code == ErrorCodePlanUpgradeRequired
}
