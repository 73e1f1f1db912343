package dato

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// QueryParams represents query parameters for CMA list requests.
type QueryParams struct {
	// Limit and Offset drive page[limit] / page[offset] pagination.
	Limit  int
	Offset int

	// OrderBy orders results, e.g. "_created_at_DESC" or "position_ASC".
	OrderBy string

	// Filters become filter[<key>] parameters, e.g. Filters["type"] for
	// record model filtering or Filters["query"] for full-text search.
	Filters map[string]string

	// Fields become filter[fields][<path>] parameters for per-field record
	// filtering (the CMA's structured record query syntax).
	Fields map[string]string

	// Locale selects the locale used when filtering localized fields.
	Locale string

	// Nested includes nested blocks in record responses.
	Nested bool

	// Version selects "published" or "current" record versions.
	Version string
}

// NewQueryParams creates empty query parameters.
func NewQueryParams() *QueryParams {
	return &QueryParams{
		Filters: make(map[string]string),
		Fields:  make(map[string]string),
	}
}

// WithLimit sets page[limit].
func (q *QueryParams) WithLimit(limit int) *QueryParams {
	q.Limit = limit

	return q
}

// WithOffset sets page[offset].
func (q *QueryParams) WithOffset(offset int) *QueryParams {
	q.Offset = offset

	return q
}

// WithFilter adds a filter[<key>] parameter.
func (q *QueryParams) WithFilter(key, value string) *QueryParams {
	if q.Filters == nil {
		q.Filters = make(map[string]string)
	}

	q.Filters[key] = value

	return q
}

// WithOrderBy sets the ordering expression.
func (q *QueryParams) WithOrderBy(orderBy string) *QueryParams {
	q.OrderBy = orderBy

	return q
}

// ToValues converts the parameters to url.Values.
func (q *QueryParams) ToValues() url.Values {
	values := url.Values{}

	if q == nil {
		return values
	}

	if q.Limit > 0 {
		values.Set("page[limit]", strconv.Itoa(q.Limit))
	}

	if q.Offset > 0 {
		values.Set("page[offset]", strconv.Itoa(q.Offset))
	}

	if q.OrderBy != "" {
		values.Set("order_by", q.OrderBy)
	}

	for key, value := range q.Filters {
		values.Set(fmt.Sprintf("filter[%s]", key), value)
	}

	for path, value := range q.Fields {
		values.Set(fmt.Sprintf("filter[fields][%s]", path), value)
	}

	if q.Locale != "" {
		values.Set("locale", q.Locale)
	}

	if q.Nested {
		values.Set("nested", "true")
	}

	if q.Version != "" {
		values.Set("version", q.Version)
	}

	return values
}

// String renders the parameters as a query string.
func (q *QueryParams) String() string {
	encoded := q.ToValues().Encode()

	return strings.ReplaceAll(encoded, "+", "%20")
}
