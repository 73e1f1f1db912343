package tools

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/datocms-community/datocms-mcp/internal/handler"
	"github.com/datocms-community/datocms-mcp/pkg/dato"
)

func TestRecordPageShaper_Pagination(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		args     handler.Args
		returned int
		total    int
		hasMore  bool
		limit    int
	}{
		{
			name:     "omitted limit, everything returned",
			args:     handler.Args{},
			returned: 10,
			total:    10,
			hasMore:  false,
			limit:    10,
		},
		{
			name:     "omitted limit, default page size applied downstream",
			args:     handler.Args{},
			returned: 30,
			total:    100,
			hasMore:  true,
			limit:    30,
		},
		{
			name:     "explicit limit, last page",
			args:     handler.Args{"limit": 30, "offset": 70},
			returned: 30,
			total:    100,
			hasMore:  false,
			limit:    30,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			page := &dato.ItemPage{
				Data:       make([]dato.Item, tt.returned),
				TotalCount: tt.total,
			}

			envelope := recordPageShaper(page, tt.args)

			assert.True(t, envelope.Success)
			require.NotNil(t, envelope.Meta)
			require.NotNil(t, envelope.Meta.Pagination)
			assert.Equal(t, tt.hasMore, envelope.Meta.Pagination.HasMore)
			assert.Equal(t, tt.limit, envelope.Meta.Pagination.Limit)
			assert.Equal(t, tt.total, envelope.Meta.Pagination.Total)
		})
	}
}

func TestUploadPageShaper_OmittedLimitFullPage(t *testing.T) {
	t.Parallel()

	page := &dato.UploadPage{Data: make([]dato.Upload, 5), TotalCount: 5}
	envelope := uploadPageShaper(page, handler.Args{})

	require.NotNil(t, envelope.Meta)
	require.NotNil(t, envelope.Meta.Pagination)
	assert.False(t, envelope.Meta.Pagination.HasMore)
}

func TestWebhookCallPageShaper_OmittedLimitFullPage(t *testing.T) {
	t.Parallel()

	page := &dato.WebhookCallPage{Data: make([]dato.WebhookCall, 3), TotalCount: 3}
	envelope := webhookCallPageShaper(page, handler.Args{})

	require.NotNil(t, envelope.Meta)
	require.NotNil(t, envelope.Meta.Pagination)
	assert.False(t, envelope.Meta.Pagination.HasMore)
}
