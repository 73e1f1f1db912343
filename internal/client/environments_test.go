package client_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/datocms-community/datocms-mcp/pkg/dato"
)

func TestEnvironmentsClient_Fork(t *testing.T) {
	t.Parallel()

	var body map[string]any

	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/environments/main/fork", r.URL.Path)
		assert.Equal(t, "true", r.URL.Query().Get("fast"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))

		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{
			"data": {
				"id": "feature-branch",
				"type": "environment",
				"meta": {"status": "creating", "primary": false, "forked_from": "main"}
			}
		}`))
	}))

	env, err := c.Environments().Fork(context.Background(), "main", &dato.EnvironmentForkRequest{
		ID:   "feature-branch",
		Fast: true,
	})
	require.NoError(t, err)

	assert.Equal(t, "feature-branch", env.ID)
	require.NotNil(t, env.Meta)
	assert.Equal(t, "creating", env.Meta.Status)
	assert.Equal(t, "main", env.Meta.ForkedFrom)

	data, ok := body["data"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "feature-branch", data["id"])
	assert.Equal(t, "environment", data["type"])
}

func TestEnvironmentsClient_Rename(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/environments/old-name/rename", r.URL.Path)

		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"data": {"id": "new-name", "type": "environment"}}`))
	}))

	env, err := c.Environments().Rename(context.Background(), "old-name", "new-name")
	require.NoError(t, err)
	assert.Equal(t, "new-name", env.ID)
}

func TestAccessTokensClient_Regenerate(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/access_tokens/t1/regenerate_token", r.URL.Path)

		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{
			"data": {
				"id": "t1",
				"type": "access_token",
				"attributes": {"name": "ci", "token": "new-secret-value", "can_access_cma": true},
				"relationships": {"role": {"data": {"type": "role", "id": "role-1"}}}
			}
		}`))
	}))

	token, err := c.AccessTokens().Regenerate(context.Background(), "t1")
	require.NoError(t, err)

	assert.Equal(t, "t1", token.ID)
	assert.Equal(t, "new-secret-value", token.Token)
	assert.Equal(t, "role-1", token.RoleID)
}

func TestWebhookCallsClient_List(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/webhook_calls", r.URL.Path)

		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{
			"data": [
				{
					"id": "c1",
					"type": "webhook_call",
					"attributes": {"entity_type": "item", "event_type": "publish", "response_status": 200},
					"relationships": {"webhook": {"data": {"type": "webhook", "id": "w1"}}}
				}
			],
			"meta": {"total_count": 1}
		}`))
	}))

	page, err := c.WebhookCalls().List(context.Background(), nil)
	require.NoError(t, err)

	assert.Equal(t, 1, page.TotalCount)
	require.Len(t, page.Data, 1)
	assert.Equal(t, "w1", page.Data[0].WebhookID)
	assert.Equal(t, 200, page.Data[0].ResponseStatus)
}
