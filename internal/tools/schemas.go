package tools

import (
	"github.com/google/jsonschema-go/jsonschema"
)

// Every tool's argument object carries the credentials alongside the
// operation-specific fields. withAuth builds such a schema: api_token is
// always required, environment always optional.
func withAuth(props map[string]*jsonschema.Schema, required ...string) *jsonschema.Schema {
	merged := map[string]*jsonschema.Schema{
		"api_token": stringProp("DatoCMS CMA API token used to authenticate the request"),
		"environment": stringProp(
			"Sandbox environment to operate on; omit to target the primary environment"),
	}

	for name, prop := range props {
		merged[name] = prop
	}

	return &jsonschema.Schema{
		Type:       "object",
		Properties: merged,
		Required:   append([]string{"api_token"}, required...),
	}
}

func stringProp(description string) *jsonschema.Schema {
	return &jsonschema.Schema{Type: "string", Description: description}
}

func boolProp(description string) *jsonschema.Schema {
	return &jsonschema.Schema{Type: "boolean", Description: description}
}

func intProp(description string) *jsonschema.Schema {
	return &jsonschema.Schema{Type: "integer", Description: description}
}

func objectProp(description string) *jsonschema.Schema {
	return &jsonschema.Schema{Type: "object", Description: description}
}

func arrayProp(description string, items *jsonschema.Schema) *jsonschema.Schema {
	return &jsonschema.Schema{Type: "array", Description: description, Items: items}
}

func enumProp(description string, values ...any) *jsonschema.Schema {
	return &jsonschema.Schema{Type: "string", Description: description, Enum: values}
}

// pagingProps are the shared list-pagination arguments.
func pagingProps() map[string]*jsonschema.Schema {
	return map[string]*jsonschema.Schema{
		"limit":  intProp("Maximum number of results to return per page"),
		"offset": intProp("Number of results to skip"),
	}
}
