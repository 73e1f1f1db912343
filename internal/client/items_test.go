package client_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/datocms-community/datocms-mcp/internal/client"
	"github.com/datocms-community/datocms-mcp/pkg/dato"
)

func newTestClient(t *testing.T, handler http.Handler) *client.Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	c, err := client.New(&dato.Config{
		APIToken:    "test-token",
		APIEndpoint: server.URL,
	})
	require.NoError(t, err)

	return c
}

func TestItemsClient_List(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/items", r.URL.Path)
		assert.Equal(t, "article", r.URL.Query().Get("filter[type]"))
		assert.Equal(t, "30", r.URL.Query().Get("page[limit]"))

		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{
			"data": [
				{
					"id": "r1",
					"type": "item",
					"attributes": {"title": "First"},
					"relationships": {"item_type": {"data": {"type": "item_type", "id": "m1"}}},
					"meta": {"status": "published", "is_valid": true}
				},
				{
					"id": "r2",
					"type": "item",
					"attributes": {"title": "Second"},
					"relationships": {"item_type": {"data": {"type": "item_type", "id": "m1"}}}
				}
			],
			"meta": {"total_count": 42}
		}`))
	}))

	page, err := c.Items().List(context.Background(),
		dato.NewQueryParams().WithLimit(30).WithFilter("type", "article"))
	require.NoError(t, err)

	assert.Equal(t, 42, page.TotalCount)
	require.Len(t, page.Data, 2)
	assert.Equal(t, "r1", page.Data[0].ID)
	assert.Equal(t, "m1", page.Data[0].ItemTypeID)
	assert.Equal(t, "First", page.Data[0].Fields["title"])
	require.NotNil(t, page.Data[0].Meta)
	assert.Equal(t, "published", page.Data[0].Meta.Status)
}

func TestItemsClient_CreateWireShape(t *testing.T) {
	t.Parallel()

	var body map[string]any

	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/items", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))

		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{
			"data": {
				"id": "r9",
				"type": "item",
				"attributes": {"title": "Hello"},
				"relationships": {"item_type": {"data": {"type": "item_type", "id": "m1"}}}
			}
		}`))
	}))

	item, err := c.Items().Create(context.Background(), &dato.ItemCreateRequest{
		ItemTypeID: "m1",
		Fields:     map[string]any{"title": "Hello"},
	})
	require.NoError(t, err)
	assert.Equal(t, "r9", item.ID)

	data, ok := body["data"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "item", data["type"])

	attrs, ok := data["attributes"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Hello", attrs["title"])
	assert.NotContains(t, attrs, "item_type_id")

	rels, ok := data["relationships"].(map[string]any)
	require.True(t, ok)
	itemType, ok := rels["item_type"].(map[string]any)
	require.True(t, ok)
	ref, ok := itemType["data"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "m1", ref["id"])
}

func TestItemsClient_Publish(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/items/r1/publish", r.URL.Path)

		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{
			"data": {
				"id": "r1",
				"type": "item",
				"attributes": {},
				"meta": {"status": "published", "is_valid": true}
			}
		}`))
	}))

	item, err := c.Items().Publish(context.Background(), "r1")
	require.NoError(t, err)
	require.NotNil(t, item.Meta)
	assert.Equal(t, "published", item.Meta.Status)
}

func TestItemsClient_GetNotFound(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"data":[{"id":"e1","type":"api_error","attributes":{"code":"NOT_FOUND"}}]}`))
	}))

	_, err := c.Items().Get(context.Background(), "missing", nil)
	require.Error(t, err)
	assert.True(t, dato.IsNotFound(err))
}
