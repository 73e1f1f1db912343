// Package logging wires zap into the server and adapts it to the client's
// logger interface.
package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New creates the process logger. Output goes to stderr: on the stdio
// transport, stdout belongs to the protocol.
func New(debug bool) (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	config.OutputPaths = []string{"stderr"}
	config.ErrorOutputPaths = []string{"stderr"}

	if debug {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}

	return config.Build()
}

// Adapter exposes a zap logger through the map-based logger interface the
// CMA client expects.
type Adapter struct {
	logger *zap.Logger
}

// NewAdapter wraps a zap logger.
func NewAdapter(logger *zap.Logger) *Adapter {
	return &Adapter{logger: logger}
}

// Debug implements dato.Logger.
func (a *Adapter) Debug(msg string, fields map[string]interface{}) {
	a.logger.Debug(msg, zapFields(fields)...)
}

// Info implements dato.Logger.
func (a *Adapter) Info(msg string, fields map[string]interface{}) {
	a.logger.Info(msg, zapFields(fields)...)
}

// Warn implements dato.Logger.
func (a *Adapter) Warn(msg string, fields map[string]interface{}) {
	a.logger.Warn(msg, zapFields(fields)...)
}

// Error implements dato.Logger.
func (a *Adapter) Error(msg string, fields map[string]interface{}) {
	a.logger.Error(msg, zapFields(fields)...)
}

func zapFields(fields map[string]interface{}) []zap.Field {
	converted := make([]zap.Field, 0, len(fields))
	for key, value := range fields {
		converted = append(converted, zap.Any(key, value))
	}

	return converted
}
