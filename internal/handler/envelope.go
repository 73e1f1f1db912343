// Package handler implements the composition pipeline behind every tool:
// schema validation, client resolution, error classification and response
// shaping, folded around a domain-supplied action.
package handler

import (
	"github.com/datocms-community/datocms-mcp/pkg/dato"
)

// Pagination carries list paging metadata in the response envelope.
type Pagination struct {
	Limit   int  `json:"limit"`
	Offset  int  `json:"offset"`
	Total   int  `json:"total"`
	HasMore bool `json:"has_more"`
}

// ValidationError reports a single schema violation.
type ValidationError struct {
	Path    string `json:"path"`
	Message string `json:"message"`
}

// Meta carries optional envelope metadata.
type Meta struct {
	Pagination       *Pagination       `json:"pagination,omitempty"`
	ValidationErrors []ValidationError `json:"validation_errors,omitempty"`
	ErrorCode        string            `json:"error_code,omitempty"`
	ErrorDetails     map[string]any    `json:"error_details,omitempty"`
}

// Envelope is the standard response shape every tool returns, success or
// failure. Failures are data, not transport errors.
type Envelope struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
	Message string `json:"message,omitempty"`
	Meta    *Meta  `json:"meta,omitempty"`
}

// Success builds a success envelope around data.
func Success(data any) *Envelope {
	return &Envelope{Success: true, Data: data}
}

// SuccessMessage builds a success envelope with a human-readable message.
func SuccessMessage(data any, message string) *Envelope {
	return &Envelope{Success: true, Data: data, Message: message}
}

// SuccessPage builds a success envelope carrying pagination metadata. count
// is the number of results actually returned; has_more is derived from it
// rather than the requested limit, because the effective page size may come
// from a default applied downstream of the caller's arguments.
func SuccessPage(data any, count, total int, params *dato.QueryParams) *Envelope {
	limit := 0
	offset := 0

	if params != nil {
		limit = params.Limit
		offset = params.Offset
	}

	// No explicit limit: report the page size the upstream default produced.
	if limit == 0 {
		limit = count
	}

	return &Envelope{
		Success: true,
		Data:    data,
		Meta: &Meta{
			Pagination: &Pagination{
				Limit:   limit,
				Offset:  offset,
				Total:   total,
				HasMore: offset+count < total,
			},
		},
	}
}

// Failure builds an error envelope with a structured error code.
func Failure(code, message string) *Envelope {
	return &Envelope{
		Success: false,
		Error:   message,
		Meta:    &Meta{ErrorCode: code},
	}
}

// ValidationFailure builds an error envelope enumerating every schema
// violation found in the input.
func ValidationFailure(violations []ValidationError) *Envelope {
	return &Envelope{
		Success: false,
		Error:   "invalid arguments",
		Meta: &Meta{
			ErrorCode:        CodeValidationError,
			ValidationErrors: violations,
		},
	}
}

// FailureFromError classifies err and builds the corresponding error
// envelope.
func FailureFromError(err error) *Envelope {
	classified := Classify(err)

	return &Envelope{
		Success: false,
		Error:   classified.Message,
		Meta: &Meta{
			ErrorCode:    classified.Code,
			ErrorDetails: classified.Details,
		},
	}
}
