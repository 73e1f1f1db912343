package handler

import (
	"fmt"
	"sync"

	"github.com/google/jsonschema-go/jsonschema"
)

// Registry maps (domain, operation) pairs to their argument schemas. It is
// populated at startup as tools are defined and consulted before every
// handler body executes.
type Registry struct {
	mu      sync.RWMutex
	schemas map[string]*jsonschema.Schema
}

// NewRegistry creates an empty schema registry.
func NewRegistry() *Registry {
	return &Registry{schemas: map[string]*jsonschema.Schema{}}
}

func registryKey(domain, operation string) string {
	return domain + "." + operation
}

// Register stores a schema under the composite key. Re-registration is
// idempotent: last write wins.
func (r *Registry) Register(domain, operation string, schema *jsonschema.Schema) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.schemas[registryKey(domain, operation)] = schema
}

// Schema returns the registered schema. A missing registration is a wiring
// bug, not a runtime condition, so it panics.
func (r *Registry) Schema(domain, operation string) *jsonschema.Schema {
	r.mu.RLock()
	defer r.mu.RUnlock()

	schema, ok := r.schemas[registryKey(domain, operation)]
	if !ok {
		panic(fmt.Sprintf("no schema registered for %s.%s", domain, operation))
	}

	return schema
}

// Validate checks args against the registered schema and returns every
// violation found, not just the first. An empty slice means the input is
// valid.
func (r *Registry) Validate(domain, operation string, args Args) []ValidationError {
	schema := r.Schema(domain, operation)

	var violations []ValidationError

	for _, required := range schema.Required {
		if _, ok := args[required]; !ok {
			violations = append(violations, ValidationError{
				Path:    required,
				Message: "required field is missing",
			})
		}
	}

	for name, prop := range schema.Properties {
		value, ok := args[name]
		if !ok || value == nil {
			continue
		}

		violations = append(violations, checkValue(name, prop, value)...)
	}

	return violations
}

func checkValue(path string, schema *jsonschema.Schema, value any) []ValidationError {
	var violations []ValidationError

	if schema.Type != "" && !typeMatches(schema.Type, value) {
		violations = append(violations, ValidationError{
			Path:    path,
			Message: fmt.Sprintf("expected %s, got %T", schema.Type, value),
		})

		return violations
	}

	if len(schema.Enum) > 0 && !enumContains(schema.Enum, value) {
		violations = append(violations, ValidationError{
			Path:    path,
			Message: fmt.Sprintf("value %v is not one of the allowed values", value),
		})
	}

	if obj, ok := value.(map[string]any); ok && len(schema.Properties) > 0 {
		for _, required := range schema.Required {
			if _, present := obj[required]; !present {
				violations = append(violations, ValidationError{
					Path:    path + "." + required,
					Message: "required field is missing",
				})
			}
		}

		for name, prop := range schema.Properties {
			nested, present := obj[name]
			if !present || nested == nil {
				continue
			}

			violations = append(violations, checkValue(path+"."+name, prop, nested)...)
		}
	}

	if items, ok := value.([]any); ok && schema.Items != nil {
		for i, item := range items {
			violations = append(violations, checkValue(fmt.Sprintf("%s[%d]", path, i), schema.Items, item)...)
		}
	}

	return violations
}

// typeMatches compares a JSON value (as decoded into Go) against a JSON
// Schema primitive type name.
func typeMatches(schemaType string, value any) bool {
	switch schemaType {
	case "string":
		_, ok := value.(string)

		return ok
	case "boolean":
		_, ok := value.(bool)

		return ok
	case "number":
		return isJSONNumber(value)
	case "integer":
		switch v := value.(type) {
		case float64:
			return v == float64(int64(v))
		case int, int64:
			return true
		default:
			return false
		}
	case "array":
		_, ok := value.([]any)

		return ok
	case "object":
		_, ok := value.(map[string]any)

		return ok
	default:
		return true
	}
}

func isJSONNumber(value any) bool {
	switch value.(type) {
	case float64, int, int64:
		return true
	default:
		return false
	}
}

func enumContains(enum []any, value any) bool {
	for _, candidate := range enum {
		if candidate == value {
			return true
		}
	}

	return false
}
