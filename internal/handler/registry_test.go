package handler_test

import (
	"testing"

	"github.com/google/jsonschema-go/jsonschema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/datocms-community/datocms-mcp/internal/handler"
)

func objectSchema(required []string, props map[string]*jsonschema.Schema) *jsonschema.Schema {
	return &jsonschema.Schema{
		Type:       "object",
		Required:   required,
		Properties: props,
	}
}

func TestRegistry_MissingRegistrationPanics(t *testing.T) {
	t.Parallel()

	registry := handler.NewRegistry()

	assert.Panics(t, func() {
		registry.Schema("records", "create")
	})
	assert.Panics(t, func() {
		registry.Validate("records", "create", handler.Args{})
	})
}

func TestRegistry_ValidInputHasNoViolations(t *testing.T) {
	t.Parallel()

	registry := handler.NewRegistry()
	registry.Register("records", "create", objectSchema(
		[]string{"api_token", "item_type_id"},
		map[string]*jsonschema.Schema{
			"api_token":    {Type: "string"},
			"item_type_id": {Type: "string"},
			"fields":       {Type: "object"},
		},
	))

	violations := registry.Validate("records", "create", handler.Args{
		"api_token":    "t",
		"item_type_id": "m1",
		"fields":       map[string]any{"title": "Hello"},
	})

	assert.Empty(t, violations)
}

func TestRegistry_ValidateReportsEveryViolation(t *testing.T) {
	t.Parallel()

	registry := handler.NewRegistry()
	registry.Register("uploads", "list", objectSchema(
		[]string{"api_token"},
		map[string]*jsonschema.Schema{
			"api_token": {Type: "string"},
			"limit":     {Type: "integer"},
			"order_by":  {Type: "string", Enum: []any{"created_at", "size"}},
		},
	))

	violations := registry.Validate("uploads", "list", handler.Args{
		"limit":    "thirty",
		"order_by": "color",
	})

	require.Len(t, violations, 3)

	paths := make([]string, 0, len(violations))
	for _, v := range violations {
		paths = append(paths, v.Path)
	}

	assert.Contains(t, paths, "api_token")
	assert.Contains(t, paths, "limit")
	assert.Contains(t, paths, "order_by")
}

func TestRegistry_NestedObjectRequirements(t *testing.T) {
	t.Parallel()

	registry := handler.NewRegistry()
	registry.Register("webhooks", "create", objectSchema(
		[]string{"api_token", "event"},
		map[string]*jsonschema.Schema{
			"api_token": {Type: "string"},
			"event": objectSchema(
				[]string{"entity_type"},
				map[string]*jsonschema.Schema{
					"entity_type": {Type: "string"},
					"event_types": {Type: "array", Items: &jsonschema.Schema{Type: "string"}},
				},
			),
		},
	))

	violations := registry.Validate("webhooks", "create", handler.Args{
		"api_token": "t",
		"event": map[string]any{
			"event_types": []any{"publish", 42},
		},
	})

	require.Len(t, violations, 2)
	assert.Equal(t, "event.entity_type", violations[0].Path)
	assert.Equal(t, "event.event_types[1]", violations[1].Path)
}

//nolint:funlen
func TestRegistry_TypeChecks(t *testing.T) {
	t.Parallel()

	registry := handler.NewRegistry()
	registry.Register("records", "query", objectSchema(
		nil,
		map[string]*jsonschema.Schema{
			"limit":   {Type: "integer"},
			"ratio":   {Type: "number"},
			"nested":  {Type: "boolean"},
			"ids":     {Type: "array"},
			"filters": {Type: "object"},
		},
	))

	tests := []struct {
		name       string
		args       handler.Args
		violations int
	}{
		{
			name:       "whole float64 accepted as integer",
			args:       handler.Args{"limit": float64(30)},
			violations: 0,
		},
		{
			name:       "fractional float64 rejected as integer",
			args:       handler.Args{"limit": 30.5},
			violations: 1,
		},
		{
			name:       "float accepted as number",
			args:       handler.Args{"ratio": 0.5},
			violations: 0,
		},
		{
			name:       "string rejected as boolean",
			args:       handler.Args{"nested": "true"},
			violations: 1,
		},
		{
			name:       "object rejected as array",
			args:       handler.Args{"ids": map[string]any{}},
			violations: 1,
		},
		{
			name:       "array rejected as object",
			args:       handler.Args{"filters": []any{}},
			violations: 1,
		},
		{
			name:       "nil values are skipped",
			args:       handler.Args{"limit": nil},
			violations: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			violations := registry.Validate("records", "query", tt.args)
			assert.Len(t, violations, tt.violations)
		})
	}
}

func TestRegistry_ReRegistrationLastWriteWins(t *testing.T) {
	t.Parallel()

	registry := handler.NewRegistry()
	registry.Register("site", "get", objectSchema([]string{"api_token"}, nil))
	registry.Register("site", "get", objectSchema(nil, nil))

	violations := registry.Validate("site", "get", handler.Args{})
	assert.Empty(t, violations)
}
