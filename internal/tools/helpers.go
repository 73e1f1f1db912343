package tools

import (
	"encoding/json"
	"fmt"

	"github.com/datocms-community/datocms-mcp/internal/handler"
	"github.com/datocms-community/datocms-mcp/pkg/dato"
)

// queryFromArgs builds CMA list query parameters from the shared pagination
// and ordering arguments.
func queryFromArgs(args handler.Args) *dato.QueryParams {
	query := dato.NewQueryParams()
	query.Limit = args.Int("limit")
	query.Offset = args.Int("offset")
	query.OrderBy = args.String("order_by")

	return query
}

// stringify renders a JSON-decoded filter value the way the CMA query string
// expects: strings pass through, everything else is serialized.
func stringify(value any) string {
	if s, ok := value.(string); ok {
		return s
	}

	encoded, err := json.Marshal(value)
	if err != nil {
		return fmt.Sprintf("%v", value)
	}

	return string(encoded)
}

// optString returns a pointer to the named argument when present, nil when
// the caller omitted it. Update requests distinguish "not supplied" from
// zero values with pointer fields.
func optString(args handler.Args, name string) *string {
	if _, ok := args[name]; !ok {
		return nil
	}

	value := args.String(name)

	return &value
}

func optBool(args handler.Args, name string) *bool {
	if _, ok := args[name]; !ok {
		return nil
	}

	value := args.Bool(name)

	return &value
}

func optInt(args handler.Args, name string) *int {
	if _, ok := args[name]; !ok {
		return nil
	}

	value := args.Int(name)

	return &value
}

// stringMapFromArgs converts a JSON object argument into a string map,
// stringifying non-string values.
func stringMapFromArgs(args handler.Args, name string) map[string]string {
	raw := args.StringMap(name)
	if len(raw) == 0 {
		return nil
	}

	converted := make(map[string]string, len(raw))
	for key, value := range raw {
		converted[key] = stringify(value)
	}

	return converted
}

// stringSliceFromArgs converts a JSON array argument into a string slice,
// skipping non-string entries.
func stringSliceFromArgs(args handler.Args, name string) []string {
	raw, _ := args[name].([]any)
	if len(raw) == 0 {
		return nil
	}

	converted := make([]string, 0, len(raw))

	for _, value := range raw {
		if s, ok := value.(string); ok {
			converted = append(converted, s)
		}
	}

	return converted
}
