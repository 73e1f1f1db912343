package dato_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/datocms-community/datocms-mcp/pkg/dato"
)

func TestMemoryCache_SetAndGet(t *testing.T) {
	t.Parallel()

	cache := dato.NewMemoryCache(10)
	ctx := context.Background()

	entry := &dato.CacheEntry{
		Data:      []byte(`{"data":[]}`),
		ExpiresAt: time.Now().Add(1 * time.Hour),
		ETag:      "abc123",
	}

	err := cache.Set(ctx, "key1", entry)
	require.NoError(t, err)

	retrieved, err := cache.Get(ctx, "key1")
	require.NoError(t, err)
	assert.Equal(t, entry.Data, retrieved.Data)
	assert.Equal(t, entry.ETag, retrieved.ETag)
}

func TestMemoryCache_GetNonExistent(t *testing.T) {
	t.Parallel()

	cache := dato.NewMemoryCache(10)

	_, err := cache.Get(context.Background(), "nonexistent")
	require.ErrorIs(t, err, dato.ErrCacheKeyNotFound)
}

func TestMemoryCache_GetExpired(t *testing.T) {
	t.Parallel()

	cache := dato.NewMemoryCache(10)
	ctx := context.Background()

	entry := &dato.CacheEntry{
		Data:      []byte("stale"),
		ExpiresAt: time.Now().Add(-1 * time.Hour),
	}

	err := cache.Set(ctx, "key1", entry)
	require.NoError(t, err)

	_, err = cache.Get(ctx, "key1")
	require.ErrorIs(t, err, dato.ErrCacheEntryExpired)
	assert.False(t, cache.Has(ctx, "key1"))
}

func TestMemoryCache_EvictsOldestWhenFull(t *testing.T) {
	t.Parallel()

	cache := dato.NewMemoryCache(2)
	ctx := context.Background()
	fresh := time.Now().Add(1 * time.Hour)

	require.NoError(t, cache.Set(ctx, "a", &dato.CacheEntry{Data: []byte("a"), ExpiresAt: fresh}))
	require.NoError(t, cache.Set(ctx, "b", &dato.CacheEntry{Data: []byte("b"), ExpiresAt: fresh}))
	require.NoError(t, cache.Set(ctx, "c", &dato.CacheEntry{Data: []byte("c"), ExpiresAt: fresh}))

	assert.False(t, cache.Has(ctx, "a"))
	assert.True(t, cache.Has(ctx, "b"))
	assert.True(t, cache.Has(ctx, "c"))
}

func TestMemoryCache_SetExistingKeyDoesNotEvict(t *testing.T) {
	t.Parallel()

	cache := dato.NewMemoryCache(2)
	ctx := context.Background()
	fresh := time.Now().Add(1 * time.Hour)

	require.NoError(t, cache.Set(ctx, "a", &dato.CacheEntry{Data: []byte("a1"), ExpiresAt: fresh}))
	require.NoError(t, cache.Set(ctx, "b", &dato.CacheEntry{Data: []byte("b"), ExpiresAt: fresh}))
	require.NoError(t, cache.Set(ctx, "a", &dato.CacheEntry{Data: []byte("a2"), ExpiresAt: fresh}))

	assert.True(t, cache.Has(ctx, "b"))

	retrieved, err := cache.Get(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, []byte("a2"), retrieved.Data)
}

func TestMemoryCache_DeleteAndClear(t *testing.T) {
	t.Parallel()

	cache := dato.NewMemoryCache(10)
	ctx := context.Background()
	fresh := time.Now().Add(1 * time.Hour)

	require.NoError(t, cache.Set(ctx, "a", &dato.CacheEntry{Data: []byte("a"), ExpiresAt: fresh}))
	require.NoError(t, cache.Set(ctx, "b", &dato.CacheEntry{Data: []byte("b"), ExpiresAt: fresh}))

	require.NoError(t, cache.Delete(ctx, "a"))
	assert.False(t, cache.Has(ctx, "a"))
	assert.True(t, cache.Has(ctx, "b"))

	require.NoError(t, cache.Clear(ctx))
	assert.False(t, cache.Has(ctx, "b"))
}

func TestScopedCache_ScopesAreIsolated(t *testing.T) {
	t.Parallel()

	backend := dato.NewMemoryCache(10)
	ctx := context.Background()

	first := dato.NewScopedCache(backend, "scope-a")
	second := dato.NewScopedCache(backend, "scope-b")

	require.NoError(t, first.Set(ctx, "key", &dato.CacheEntry{Data: []byte("a-data")}))

	// The other scope must not see the entry under the same key.
	_, err := second.Get(ctx, "key")
	require.ErrorIs(t, err, dato.ErrCacheKeyNotFound)
	assert.False(t, second.Has(ctx, "key"))

	got, err := first.Get(ctx, "key")
	require.NoError(t, err)
	assert.Equal(t, []byte("a-data"), got.Data)
}

func TestScopedCache_SameScopeSharesEntries(t *testing.T) {
	t.Parallel()

	backend := dato.NewMemoryCache(10)
	ctx := context.Background()

	writer := dato.NewScopedCache(backend, "scope-a")
	reader := dato.NewScopedCache(backend, "scope-a")

	require.NoError(t, writer.Set(ctx, "key", &dato.CacheEntry{Data: []byte("shared")}))

	got, err := reader.Get(ctx, "key")
	require.NoError(t, err)
	assert.Equal(t, []byte("shared"), got.Data)
}

func TestScopedCache_ClearDropsOnlyOwnScope(t *testing.T) {
	t.Parallel()

	backend := dato.NewMemoryCache(10)
	ctx := context.Background()

	first := dato.NewScopedCache(backend, "scope-a")
	second := dato.NewScopedCache(backend, "scope-b")

	require.NoError(t, first.Set(ctx, "key", &dato.CacheEntry{Data: []byte("a")}))
	require.NoError(t, second.Set(ctx, "key", &dato.CacheEntry{Data: []byte("b")}))

	require.NoError(t, first.Clear(ctx))

	assert.False(t, first.Has(ctx, "key"))
	assert.True(t, second.Has(ctx, "key"))
}

func TestScopedCache_DeleteIsScoped(t *testing.T) {
	t.Parallel()

	backend := dato.NewMemoryCache(10)
	ctx := context.Background()

	first := dato.NewScopedCache(backend, "scope-a")
	second := dato.NewScopedCache(backend, "scope-b")

	require.NoError(t, first.Set(ctx, "key", &dato.CacheEntry{Data: []byte("a")}))
	require.NoError(t, second.Set(ctx, "key", &dato.CacheEntry{Data: []byte("b")}))

	require.NoError(t, first.Delete(ctx, "key"))

	assert.False(t, first.Has(ctx, "key"))
	assert.True(t, second.Has(ctx, "key"))
}

func TestNoOpCache(t *testing.T) {
	t.Parallel()

	cache := dato.NewNoOpCache()
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "key", &dato.CacheEntry{Data: []byte("x")}))

	_, err := cache.Get(ctx, "key")
	require.ErrorIs(t, err, dato.ErrCacheDisabled)
	assert.False(t, cache.Has(ctx, "key"))
}

func TestNewCacheFromConfig(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		config    *dato.CacheConfig
		expectErr error
	}{
		{
			name:   "nil defaults to memory",
			config: nil,
		},
		{
			name:   "memory",
			config: &dato.CacheConfig{Type: dato.CacheTypeMemory},
		},
		{
			name:   "none",
			config: &dato.CacheConfig{Type: dato.CacheTypeNone},
		},
		{
			name:      "nats without config",
			config:    &dato.CacheConfig{Type: dato.CacheTypeNATS},
			expectErr: dato.ErrNATSConfigRequired,
		},
		{
			name:      "unsupported type",
			config:    &dato.CacheConfig{Type: dato.CacheType("redis")},
			expectErr: dato.ErrUnsupportedCacheType,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cache, err := dato.NewCacheFromConfig(tt.config)
			if tt.expectErr != nil {
				require.ErrorIs(t, err, tt.expectErr)

				return
			}

			require.NoError(t, err)
			assert.NotNil(t, cache)
		})
	}
}
