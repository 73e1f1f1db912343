package dato_test

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/datocms-community/datocms-mcp/pkg/dato"
)

//nolint:funlen // Test functions can be longer for detailed testing
func TestQueryParams_ToValues(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		params   *dato.QueryParams
		expected url.Values
	}{
		{
			name:     "empty params",
			params:   dato.NewQueryParams(),
			expected: url.Values{},
		},
		{
			name:     "nil params",
			params:   nil,
			expected: url.Values{},
		},
		{
			name: "with pagination",
			params: &dato.QueryParams{
				Limit:  50,
				Offset: 100,
			},
			expected: url.Values{
				"page[limit]":  []string{"50"},
				"page[offset]": []string{"100"},
			},
		},
		{
			name: "with ordering",
			params: &dato.QueryParams{
				OrderBy: "_created_at_DESC",
			},
			expected: url.Values{
				"order_by": []string{"_created_at_DESC"},
			},
		},
		{
			name: "with filters",
			params: &dato.QueryParams{
				Filters: map[string]string{
					"type":  "article",
					"query": "launch",
				},
			},
			expected: url.Values{
				"filter[type]":  []string{"article"},
				"filter[query]": []string{"launch"},
			},
		},
		{
			name: "with field filters",
			params: &dato.QueryParams{
				Fields: map[string]string{
					"title": `{"matches":{"pattern":"launch"}}`,
				},
			},
			expected: url.Values{
				"filter[fields][title]": []string{`{"matches":{"pattern":"launch"}}`},
			},
		},
		{
			name: "with locale and version",
			params: &dato.QueryParams{
				Locale:  "it",
				Version: "published",
			},
			expected: url.Values{
				"locale":  []string{"it"},
				"version": []string{"published"},
			},
		},
		{
			name: "with nested blocks",
			params: &dato.QueryParams{
				Nested: true,
			},
			expected: url.Values{
				"nested": []string{"true"},
			},
		},
		{
			name: "zero pagination omitted",
			params: &dato.QueryParams{
				Limit:  0,
				Offset: 0,
			},
			expected: url.Values{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, tt.params.ToValues())
		})
	}
}

func TestQueryParams_Builders(t *testing.T) {
	t.Parallel()

	params := dato.NewQueryParams().
		WithLimit(30).
		WithOffset(60).
		WithOrderBy("position_ASC").
		WithFilter("type", "article")

	values := params.ToValues()
	assert.Equal(t, "30", values.Get("page[limit]"))
	assert.Equal(t, "60", values.Get("page[offset]"))
	assert.Equal(t, "position_ASC", values.Get("order_by"))
	assert.Equal(t, "article", values.Get("filter[type]"))
}

func TestQueryParams_WithFilterOnZeroValue(t *testing.T) {
	t.Parallel()

	params := &dato.QueryParams{}
	params.WithFilter("query", "hello")

	assert.Equal(t, "hello", params.Filters["query"])
}

func TestQueryParams_String(t *testing.T) {
	t.Parallel()

	params := dato.NewQueryParams().WithFilter("query", "two words")

	assert.Equal(t, "filter%5Bquery%5D=two%20words", params.String())
}
