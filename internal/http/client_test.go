package http_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	internalhttp "github.com/datocms-community/datocms-mcp/internal/http"
	"github.com/datocms-community/datocms-mcp/pkg/dato"
)

func TestClient_RequestHeaders(t *testing.T) {
	t.Parallel()

	var captured http.Header

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured = r.Header.Clone()
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"data":[]}`))
	}))
	defer server.Close()

	client := internalhttp.NewClient(&dato.Config{
		APIToken:    "secret-token",
		APIEndpoint: server.URL,
		Environment: "sandbox",
	})

	_, err := client.Get(context.Background(), "/items", nil)
	require.NoError(t, err)

	assert.Equal(t, "Bearer secret-token", captured.Get("Authorization"))
	assert.Equal(t, "3", captured.Get("X-Api-Version"))
	assert.Equal(t, "sandbox", captured.Get("X-Environment"))
	assert.Equal(t, "application/json", captured.Get("Accept"))
}

func TestClient_PrimaryEnvironmentOmitsHeader(t *testing.T) {
	t.Parallel()

	var captured http.Header

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured = r.Header.Clone()
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := internalhttp.NewClient(&dato.Config{
		APIToken:    "secret-token",
		APIEndpoint: server.URL,
	})

	_, err := client.Get(context.Background(), "/site", nil)
	require.NoError(t, err)

	assert.Empty(t, captured.Get("X-Environment"))
}

func TestClient_PostSetsJSONAPIContentType(t *testing.T) {
	t.Parallel()

	var captured http.Header

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured = r.Header.Clone()
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"data":{}}`))
	}))
	defer server.Close()

	client := internalhttp.NewClient(&dato.Config{APIToken: "t", APIEndpoint: server.URL})

	resp, err := client.Post(context.Background(), "/items", map[string]string{"k": "v"})
	require.NoError(t, err)

	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, "application/vnd.api+json", captured.Get("Content-Type"))
}

func TestClient_ErrorResponsesAreParsed(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"data":[{"id":"e1","type":"api_error","attributes":{"code":"NOT_FOUND"}}]}`))
	}))
	defer server.Close()

	client := internalhttp.NewClient(&dato.Config{APIToken: "t", APIEndpoint: server.URL})

	_, err := client.Get(context.Background(), "/items/nope", nil)
	require.Error(t, err)
	assert.True(t, dato.IsNotFound(err))
}

func TestClient_UnauthorizedIsNotRetried(t *testing.T) {
	t.Parallel()

	var attempts atomic.Int64

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts.Add(1)
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"data":[{"id":"e1","type":"api_error","attributes":{"code":"INVALID_AUTHORIZATION_HEADER"}}]}`))
	}))
	defer server.Close()

	client := internalhttp.NewClient(&dato.Config{
		APIToken:    "revoked",
		APIEndpoint: server.URL,
		RetryMax:    3,
	})

	_, err := client.Get(context.Background(), "/site", nil)
	require.Error(t, err)
	assert.True(t, dato.IsUnauthorized(err))
	assert.Equal(t, int64(1), attempts.Load())
}

func TestClient_GetUsesCache(t *testing.T) {
	t.Parallel()

	var hits atomic.Int64

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"data":[]}`))
	}))
	defer server.Close()

	client := internalhttp.NewClient(&dato.Config{
		APIToken:    "t",
		APIEndpoint: server.URL,
		Cache:       dato.NewMemoryCache(16),
	})

	ctx := context.Background()

	first, err := client.Get(ctx, "/items", url.Values{"page[limit]": []string{"30"}})
	require.NoError(t, err)

	second, err := client.Get(ctx, "/items", url.Values{"page[limit]": []string{"30"}})
	require.NoError(t, err)

	assert.Equal(t, first.Body, second.Body)
	assert.Equal(t, int64(1), hits.Load())
}

func TestClient_MutationsClearCache(t *testing.T) {
	t.Parallel()

	var gets atomic.Int64

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			gets.Add(1)
		}

		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"data":[]}`))
	}))
	defer server.Close()

	client := internalhttp.NewClient(&dato.Config{
		APIToken:    "t",
		APIEndpoint: server.URL,
		Cache:       dato.NewMemoryCache(16),
	})

	ctx := context.Background()

	_, err := client.Get(ctx, "/items", nil)
	require.NoError(t, err)

	_, err = client.Post(ctx, "/items", map[string]string{"k": "v"})
	require.NoError(t, err)

	_, err = client.Get(ctx, "/items", nil)
	require.NoError(t, err)

	assert.Equal(t, int64(2), gets.Load())
}

func TestClient_CacheIsScopedByToken(t *testing.T) {
	t.Parallel()

	var attempts atomic.Int64

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts.Add(1)

		if r.Header.Get("Authorization") != "Bearer valid-token" {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"data":[{"id":"e1","type":"api_error","attributes":{"code":"INVALID_AUTHORIZATION_HEADER"}}]}`))

			return
		}

		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"data":[]}`))
	}))
	defer server.Close()

	shared := dato.NewMemoryCache(16)

	valid := internalhttp.NewClient(&dato.Config{
		APIToken:    "valid-token",
		APIEndpoint: server.URL,
		Cache:       shared,
	})
	revoked := internalhttp.NewClient(&dato.Config{
		APIToken:    "revoked-token",
		APIEndpoint: server.URL,
		Cache:       shared,
	})

	ctx := context.Background()

	_, err := valid.Get(ctx, "/items", nil)
	require.NoError(t, err)

	// The second token must be authorized upstream, not served from the
	// first token's cache entry.
	_, err = revoked.Get(ctx, "/items", nil)
	require.Error(t, err)
	assert.True(t, dato.IsUnauthorized(err))
	assert.Equal(t, int64(2), attempts.Load())
}

func TestClient_CacheIsScopedByEnvironment(t *testing.T) {
	t.Parallel()

	var attempts atomic.Int64

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts.Add(1)
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"data":[{"env":"` + r.Header.Get("X-Environment") + `"}]}`))
	}))
	defer server.Close()

	shared := dato.NewMemoryCache(16)

	primary := internalhttp.NewClient(&dato.Config{
		APIToken:    "t",
		APIEndpoint: server.URL,
		Cache:       shared,
	})
	sandbox := internalhttp.NewClient(&dato.Config{
		APIToken:    "t",
		APIEndpoint: server.URL,
		Environment: "sandbox",
		Cache:       shared,
	})

	ctx := context.Background()

	first, err := primary.Get(ctx, "/items", nil)
	require.NoError(t, err)

	second, err := sandbox.Get(ctx, "/items", nil)
	require.NoError(t, err)

	assert.NotEqual(t, first.Body, second.Body)
	assert.Equal(t, int64(2), attempts.Load())
}

func TestClient_MutationsClearOnlyOwnScope(t *testing.T) {
	t.Parallel()

	gets := map[string]*atomic.Int64{
		"Bearer token-a": {},
		"Bearer token-b": {},
	}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			gets[r.Header.Get("Authorization")].Add(1)
		}

		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"data":[]}`))
	}))
	defer server.Close()

	shared := dato.NewMemoryCache(16)

	a := internalhttp.NewClient(&dato.Config{
		APIToken:    "token-a",
		APIEndpoint: server.URL,
		Cache:       shared,
	})
	b := internalhttp.NewClient(&dato.Config{
		APIToken:    "token-b",
		APIEndpoint: server.URL,
		Cache:       shared,
	})

	ctx := context.Background()

	_, err := a.Get(ctx, "/items", nil)
	require.NoError(t, err)

	_, err = b.Get(ctx, "/items", nil)
	require.NoError(t, err)

	_, err = a.Post(ctx, "/items", map[string]string{"k": "v"})
	require.NoError(t, err)

	// a's mutation drops a's entry but not b's.
	_, err = b.Get(ctx, "/items", nil)
	require.NoError(t, err)
	assert.Equal(t, int64(1), gets["Bearer token-b"].Load())

	_, err = a.Get(ctx, "/items", nil)
	require.NoError(t, err)
	assert.Equal(t, int64(2), gets["Bearer token-a"].Load())
}

func TestClient_ServerErrorsAreRetried(t *testing.T) {
	t.Parallel()

	var attempts atomic.Int64

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if attempts.Add(1) == 1 {
			w.WriteHeader(http.StatusBadGateway)

			return
		}

		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"data":[]}`))
	}))
	defer server.Close()

	client := internalhttp.NewClient(&dato.Config{
		APIToken:    "t",
		APIEndpoint: server.URL,
		RetryMax:    2,
	})

	resp, err := client.Get(context.Background(), "/items", nil)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, int64(2), attempts.Load())
}
