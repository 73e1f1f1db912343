package handler

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Args is the flat argument bag a tool invocation carries. Every tool
// accepts at least api_token, plus an optional environment.
type Args map[string]any

// String returns the named argument as a string, or "" when absent or not a
// string.
func (a Args) String(name string) string {
	value, _ := a[name].(string)

	return value
}

// Bool returns the named argument as a bool, or false when absent.
func (a Args) Bool(name string) bool {
	value, _ := a[name].(bool)

	return value
}

// Int returns the named argument as an int. JSON numbers decode as float64,
// so both representations are accepted.
func (a Args) Int(name string) int {
	switch value := a[name].(type) {
	case float64:
		return int(value)
	case int:
		return value
	default:
		return 0
	}
}

// StringMap returns the named argument as a map, or nil.
func (a Args) StringMap(name string) map[string]any {
	value, _ := a[name].(map[string]any)

	return value
}

// Func is a composed tool handler. Failures that belong to the caller are
// returned inside the envelope; a non-nil error is reserved for faults the
// error boundary has not yet converted.
type Func func(ctx context.Context, args Args) (*Envelope, error)

// Middleware wraps a handler with cross-cutting behavior.
type Middleware func(Func) Func

// Chain folds middleware around base right-to-left, so the first middleware
// listed is outermost: it runs first on the way in and last on the way out.
func Chain(base Func, middleware ...Middleware) Func {
	composed := base
	for i := len(middleware) - 1; i >= 0; i-- {
		composed = middleware[i](composed)
	}

	return composed
}

// DebugTiming logs invocation start, duration and outcome. It never alters
// control flow or the returned value, and it is a no-op unless enabled.
func DebugTiming(logger *zap.Logger, enabled bool, domain, operation string) Middleware {
	return func(next Func) Func {
		if !enabled || logger == nil {
			return next
		}

		return func(ctx context.Context, args Args) (*Envelope, error) {
			requestID := uuid.NewString()
			start := time.Now()

			logger.Debug("tool invocation started",
				zap.String("request_id", requestID),
				zap.String("domain", domain),
				zap.String("operation", operation),
			)

			envelope, err := next(ctx, args)

			fields := []zap.Field{
				zap.String("request_id", requestID),
				zap.String("domain", domain),
				zap.String("operation", operation),
				zap.Duration("duration", time.Since(start)),
			}

			switch {
			case err != nil:
				fields = append(fields, zap.String("outcome", "error"), zap.Error(err))
			case envelope != nil && !envelope.Success:
				fields = append(fields, zap.String("outcome", "failure"))
			default:
				fields = append(fields, zap.String("outcome", "success"))
			}

			logger.Debug("tool invocation finished", fields...)

			return envelope, err
		}
	}
}

// ErrorBoundary converts any error returned by the wrapped handler into a
// classified error envelope. Past this boundary, failures are data: nothing
// is retried and nothing propagates to the transport as an unhandled error.
func ErrorBoundary() Middleware {
	return func(next Func) Func {
		return func(ctx context.Context, args Args) (*Envelope, error) {
			envelope, err := next(ctx, args)
			if err != nil {
				return FailureFromError(err), nil
			}

			return envelope, nil
		}
	}
}

// ValidateInput checks the argument bag against the registered schema before
// the wrapped handler runs. Violations short-circuit: the domain action is
// never invoked on invalid input.
func ValidateInput(registry *Registry, domain, operation string) Middleware {
	return func(next Func) Func {
		return func(ctx context.Context, args Args) (*Envelope, error) {
			if violations := registry.Validate(domain, operation, args); len(violations) > 0 {
				return ValidationFailure(violations), nil
			}

			return next(ctx, args)
		}
	}
}
