// Package http implements the HTTP layer of the CMA client.
package http

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/datocms-community/datocms-mcp/internal/constants"
	"github.com/datocms-community/datocms-mcp/pkg/dato"
)

// Response represents an HTTP response from the CMA.
type Response struct {
	StatusCode int
	Headers    http.Header
	Body       []byte
}

// Client is the HTTP client used by all resource clients. It owns
// authentication headers, environment routing, retries for transient
// failures, and optional GET response caching.
type Client struct {
	baseURL     string
	token       string
	environment string
	userAgent   string
	httpClient  *retryablehttp.Client
	logger      dato.Logger
	debug       bool
	cache       dato.Cache
	cacheTTL    time.Duration
}

// NewClient creates a new HTTP client from the given configuration.
func NewClient(config *dato.Config) *Client {
	retryClient := retryablehttp.NewClient()
	retryClient.Logger = nil
	retryClient.RetryMax = constants.DefaultRetryMax
	retryClient.RetryWaitMin = constants.DefaultRetryWaitMin
	retryClient.RetryWaitMax = constants.DefaultRetryWaitMax

	if config.RetryMax > 0 {
		retryClient.RetryMax = config.RetryMax
	}

	if config.RetryWaitMin > 0 {
		retryClient.RetryWaitMin = config.RetryWaitMin
	}

	if config.RetryWaitMax > 0 {
		retryClient.RetryWaitMax = config.RetryWaitMax
	}

	timeout := constants.DefaultHTTPTimeout
	if config.HTTPTimeout > 0 {
		timeout = config.HTTPTimeout
	}

	retryClient.HTTPClient.Timeout = timeout

	baseURL := config.APIEndpoint
	if baseURL == "" {
		baseURL = constants.DefaultAPIEndpoint
	}

	baseURL = strings.TrimSuffix(baseURL, "/")

	userAgent := config.UserAgent
	if userAgent == "" {
		userAgent = constants.DefaultUserAgent
	}

	// Cached responses are private to the credentials that fetched them:
	// the backend may be shared across clients (and, with NATS, across
	// processes), so keys are namespaced by token digest and environment.
	cache := config.Cache
	if cache == nil {
		cache = dato.NewNoOpCache()
	}

	cache = dato.NewScopedCache(cache, cacheScope(config.APIToken, config.Environment))

	return &Client{
		baseURL:     baseURL,
		token:       config.APIToken,
		environment: config.Environment,
		userAgent:   userAgent,
		httpClient:  retryClient,
		logger:      config.Logger,
		debug:       config.Debug,
		cache:       cache,
		cacheTTL:    dato.DefaultCacheOptions().DefaultTTL,
	}
}

// Get performs a GET request. Successful responses are cached when a cache
// backend is configured.
func (c *Client) Get(ctx context.Context, path string, query url.Values) (*Response, error) {
	fullPath := path
	if len(query) > 0 {
		fullPath = path + "?" + query.Encode()
	}

	cacheKey := c.cacheKey(fullPath)

	if entry, err := c.cache.Get(ctx, cacheKey); err == nil {
		c.logDebug("cache hit", map[string]interface{}{"path": fullPath})

		return &Response{StatusCode: http.StatusOK, Body: entry.Data}, nil
	}

	resp, err := c.do(ctx, http.MethodGet, fullPath, nil)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode == http.StatusOK {
		_ = c.cache.Set(ctx, cacheKey, &dato.CacheEntry{
			Data:      resp.Body,
			ExpiresAt: time.Now().Add(c.cacheTTL),
			ETag:      resp.Headers.Get("ETag"),
		})
	}

	return resp, nil
}

// Post performs a POST request with an optional JSON body.
func (c *Client) Post(ctx context.Context, path string, body any) (*Response, error) {
	return c.do(ctx, http.MethodPost, path, body)
}

// Put performs a PUT request with an optional JSON body.
func (c *Client) Put(ctx context.Context, path string, body any) (*Response, error) {
	return c.do(ctx, http.MethodPut, path, body)
}

// Delete performs a DELETE request.
func (c *Client) Delete(ctx context.Context, path string) (*Response, error) {
	return c.do(ctx, http.MethodDelete, path, nil)
}

func (c *Client) do(ctx context.Context, method, path string, body any) (*Response, error) {
	var rawBody []byte

	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encoding request body: %w", err)
		}

		rawBody = encoded
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, method, c.baseURL+path, bytes.NewReader(rawBody))
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Api-Version", constants.APIVersion)
	req.Header.Set("User-Agent", c.userAgent)

	if body != nil {
		req.Header.Set("Content-Type", "application/vnd.api+json")
	}

	if c.environment != "" {
		req.Header.Set("X-Environment", c.environment)
	}

	c.logDebug("API request", map[string]interface{}{
		"method": method,
		"path":   path,
	})

	start := time.Now()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", method, path, err)
	}

	defer func() { _ = resp.Body.Close() }()

	responseBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	c.logDebug("API response", map[string]interface{}{
		"method":      method,
		"path":        path,
		"status_code": resp.StatusCode,
		"duration_ms": time.Since(start).Milliseconds(),
	})

	if resp.StatusCode >= http.StatusBadRequest {
		return nil, dato.ParseErrorResponse(resp.StatusCode, responseBody)
	}

	// Mutations invalidate this client's cached reads. The cache is scoped,
	// so other tokens and environments keep their entries; TTL handles
	// cross-process staleness.
	if method != http.MethodGet {
		_ = c.cache.Clear(ctx)
	}

	return &Response{
		StatusCode: resp.StatusCode,
		Headers:    resp.Header,
		Body:       responseBody,
	}, nil
}

func (c *Client) cacheKey(fullPath string) string {
	return "GET " + fullPath
}

// cacheScope derives the cache namespace for one credential pair. The token
// is digested so it never appears in backend keys.
func cacheScope(token, environment string) string {
	sum := sha256.Sum256([]byte(token))

	env := environment
	if env == "" {
		env = "primary"
	}

	return hex.EncodeToString(sum[:8]) + "|" + env
}

func (c *Client) logDebug(msg string, fields map[string]interface{}) {
	if c.debug && c.logger != nil {
		c.logger.Debug(msg, fields)
	}
}
