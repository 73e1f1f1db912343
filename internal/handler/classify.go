package handler

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/url"
	"strings"

	"github.com/datocms-community/datocms-mcp/pkg/dato"
)

// Error codes form a closed taxonomy. Every failure an action produces maps
// to exactly one of these before it reaches the caller.
const (
	CodeValidationError  = "validation_error"
	CodeNotFound         = "not_found"
	CodeAuthError        = "auth_error"
	CodeRateLimit        = "rate_limit"
	CodeAPIError         = "api_error"
	CodeConflict         = "conflict"
	CodeQuotaExceeded    = "quota_exceeded"
	CodeInvalidOperation = "invalid_operation"
	CodeNetworkError     = "network_error"
)

// ClassifiedError is the result of mapping an arbitrary failure onto the
// error taxonomy. It is built at the error boundary and consumed only for
// envelope construction.
type ClassifiedError struct {
	Code    string
	Message string
	Details map[string]any
}

// IsAuth reports whether the error was an authorization failure.
func (c *ClassifiedError) IsAuth() bool { return c.Code == CodeAuthError }

// IsNotFound reports whether the error was a missing-resource failure.
func (c *ClassifiedError) IsNotFound() bool { return c.Code == CodeNotFound }

// IsValidation reports whether the error was an upstream validation failure.
func (c *ClassifiedError) IsValidation() bool { return c.Code == CodeValidationError }

// Classify maps an error onto the taxonomy. Auth and not-found failures get
// dedicated messages because callers act on them differently; everything
// else keeps the upstream diagnostic. Classify never fails: unrecognized
// errors land in api_error.
func Classify(err error) *ClassifiedError {
	switch {
	case dato.IsUnauthorized(err), dato.IsForbidden(err):
		return &ClassifiedError{
			Code:    CodeAuthError,
			Message: "authorization failed: the API token is invalid, expired, or lacks the required permissions",
			Details: errorDetails(err),
		}
	case dato.IsNotFound(err):
		return &ClassifiedError{
			Code:    CodeNotFound,
			Message: DetailedErrorInfo(err),
			Details: errorDetails(err),
		}
	case dato.IsRateLimited(err):
		return &ClassifiedError{
			Code:    CodeRateLimit,
			Message: "rate limit exceeded: too many requests, retry after the limit window resets",
			Details: errorDetails(err),
		}
	case dato.IsValidation(err):
		return &ClassifiedError{
			Code:    CodeValidationError,
			Message: DetailedErrorInfo(err),
			Details: errorDetails(err),
		}
	case dato.IsConflict(err):
		return &ClassifiedError{
			Code:    CodeConflict,
			Message: DetailedErrorInfo(err),
			Details: errorDetails(err),
		}
	case dato.IsQuotaExceeded(err):
		return &ClassifiedError{
			Code:    CodeQuotaExceeded,
			Message: "plan limit reached: the current DatoCMS plan does not allow this operation",
			Details: errorDetails(err),
		}
	case isInvalidOperation(err):
		return &ClassifiedError{
			Code:    CodeInvalidOperation,
			Message: DetailedErrorInfo(err),
			Details: errorDetails(err),
		}
	case isNetworkError(err):
		return &ClassifiedError{
			Code:    CodeNetworkError,
			Message: "network error reaching the DatoCMS API: " + err.Error(),
		}
	default:
		return &ClassifiedError{
			Code:    CodeAPIError,
			Message: DetailedErrorInfo(err),
			Details: errorDetails(err),
		}
	}
}

// DetailedErrorInfo renders a human-readable diagnostic from heterogeneous
// error shapes. It never fails; a nil error yields an empty string.
func DetailedErrorInfo(err error) string {
	if err == nil {
		return ""
	}

	var resp *dato.ErrorResponse
	if !errors.As(err, &resp) {
		return err.Error()
	}

	if len(resp.Errors) == 0 {
		return fmt.Sprintf("DatoCMS API error (status %d)", resp.Status)
	}

	parts := make([]string, 0, len(resp.Errors))
	for i := range resp.Errors {
		parts = append(parts, describeAPIError(&resp.Errors[i]))
	}

	return fmt.Sprintf("DatoCMS API error (status %d): %s", resp.Status, strings.Join(parts, "; "))
}

func describeAPIError(apiErr *dato.APIError) string {
	if len(apiErr.Details) == 0 {
		return apiErr.Code
	}

	details := make([]string, 0, len(apiErr.Details))
	for key, value := range apiErr.Details {
		details = append(details, fmt.Sprintf("%s=%v", key, value))
	}

	return fmt.Sprintf("%s (%s)", apiErr.Code, strings.Join(details, ", "))
}

// errorDetails extracts the first API error's detail map for the envelope's
// error_details field, or nil for non-API errors.
func errorDetails(err error) map[string]any {
	var resp *dato.ErrorResponse
	if !errors.As(err, &resp) {
		return nil
	}

	first := resp.FirstError()
	if first == nil || len(first.Details) == 0 {
		return nil
	}

	return first.Details
}

// isInvalidOperation covers CMA rejections of state transitions that are not
// allowed right now (e.g. promoting an environment that is still forking).
func isInvalidOperation(err error) bool {
	if errors.Is(err, dato.ErrEnvironmentNotReady) || errors.Is(err, dato.ErrInvalidHealthCheckType) {
		return true
	}

	var resp *dato.ErrorResponse
	if !errors.As(err, &resp) {
		return false
	}

	first := resp.FirstError()

	return first != nil && first.Code == dato.ErrorCodeStealEditing
}

func isNetworkError(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}

	var urlErr *url.Error

	return errors.As(err, &urlErr)
}
