package dato

import (
	"context"
	"sync"
	"time"
)

// Cache is a pluggable backend for caching GET responses.
type Cache interface {
	Get(ctx context.Context, key string) (*CacheEntry, error)
	Set(ctx context.Context, key string, entry *CacheEntry) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
	Has(ctx context.Context, key string) bool
}

// CacheEntry is a single cached response body.
type CacheEntry struct {
	Data      []byte    `json:"data"`
	ExpiresAt time.Time `json:"expires_at"`
	ETag      string    `json:"etag,omitempty"`
}

// Expired reports whether the entry's TTL has passed.
func (e *CacheEntry) Expired() bool {
	return !e.ExpiresAt.IsZero() && time.Now().After(e.ExpiresAt)
}

// CacheOptions are common options applied to any backend.
type CacheOptions struct {
	// DefaultTTL is applied to entries stored without an explicit expiry.
	DefaultTTL time.Duration
}

// DefaultCacheOptions returns default cache options.
func DefaultCacheOptions() *CacheOptions {
	return &CacheOptions{
		DefaultTTL: 5 * time.Minute,
	}
}

// MemoryCache is an in-process cache with a maximum entry count. When full,
// the oldest-stored entry is evicted first.
type MemoryCache struct {
	mu      sync.RWMutex
	entries map[string]*memoryCacheEntry
	order   []string
	maxSize int
}

type memoryCacheEntry struct {
	entry *CacheEntry
}

// NewMemoryCache creates a new memory cache holding at most maxSize entries.
func NewMemoryCache(maxSize int) *MemoryCache {
	if maxSize <= 0 {
		maxSize = 1
	}

	return &MemoryCache{
		entries: make(map[string]*memoryCacheEntry),
		maxSize: maxSize,
	}
}

// Get retrieves an entry; expired entries are treated as missing.
func (c *MemoryCache) Get(ctx context.Context, key string) (*CacheEntry, error) {
	c.mu.RLock()
	wrapped, ok := c.entries[key]
	c.mu.RUnlock()

	if !ok {
		return nil, ErrCacheKeyNotFound
	}

	if wrapped.entry.Expired() {
		_ = c.Delete(ctx, key)

		return nil, ErrCacheEntryExpired
	}

	return wrapped.entry, nil
}

// Set stores an entry, evicting the oldest one when the cache is full.
func (c *MemoryCache) Set(ctx context.Context, key string, entry *CacheEntry) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.entries[key]; !exists {
		for len(c.entries) >= c.maxSize && len(c.order) > 0 {
			oldest := c.order[0]
			c.order = c.order[1:]
			delete(c.entries, oldest)
		}

		c.order = append(c.order, key)
	}

	c.entries[key] = &memoryCacheEntry{entry: entry}

	return nil
}

// Delete removes an entry.
func (c *MemoryCache) Delete(ctx context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.entries, key)

	for i, k := range c.order {
		if k == key {
			c.order = append(c.order[:i], c.order[i+1:]...)

			break
		}
	}

	return nil
}

// Clear removes all entries.
func (c *MemoryCache) Clear(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[string]*memoryCacheEntry)
	c.order = nil

	return nil
}

// Has checks whether a live entry exists for the key.
func (c *MemoryCache) Has(ctx context.Context, key string) bool {
	c.mu.RLock()
	wrapped, ok := c.entries[key]
	c.mu.RUnlock()

	return ok && !wrapped.entry.Expired()
}

// ScopedCache namespaces a shared backend per credential scope. Keys are
// prefixed with the scope so one scope can never read another's entries, and
// Clear drops only the keys this scope has written through this instance.
// Entries written by other processes for the same scope age out via TTL.
type ScopedCache struct {
	inner Cache
	scope string

	mu   sync.Mutex
	keys map[string]struct{}
}

// NewScopedCache wraps a backend with a key namespace.
func NewScopedCache(inner Cache, scope string) *ScopedCache {
	return &ScopedCache{
		inner: inner,
		scope: scope,
		keys:  make(map[string]struct{}),
	}
}

func (c *ScopedCache) scoped(key string) string {
	return c.scope + " " + key
}

// Get retrieves an entry from this scope's namespace.
func (c *ScopedCache) Get(ctx context.Context, key string) (*CacheEntry, error) {
	return c.inner.Get(ctx, c.scoped(key))
}

// Set stores an entry in this scope's namespace and remembers the key so
// Clear can remove it without touching other scopes.
func (c *ScopedCache) Set(ctx context.Context, key string, entry *CacheEntry) error {
	scoped := c.scoped(key)

	c.mu.Lock()
	c.keys[scoped] = struct{}{}
	c.mu.Unlock()

	return c.inner.Set(ctx, scoped, entry)
}

// Delete removes an entry from this scope's namespace.
func (c *ScopedCache) Delete(ctx context.Context, key string) error {
	scoped := c.scoped(key)

	c.mu.Lock()
	delete(c.keys, scoped)
	c.mu.Unlock()

	return c.inner.Delete(ctx, scoped)
}

// Clear removes every entry this scope has written. Entries belonging to
// other scopes sharing the backend are untouched.
func (c *ScopedCache) Clear(ctx context.Context) error {
	c.mu.Lock()
	keys := make([]string, 0, len(c.keys))
	for key := range c.keys {
		keys = append(keys, key)
	}
	c.keys = make(map[string]struct{})
	c.mu.Unlock()

	for _, key := range keys {
		if err := c.inner.Delete(ctx, key); err != nil {
			return err
		}
	}

	return nil
}

// Has checks whether a live entry exists in this scope's namespace.
func (c *ScopedCache) Has(ctx context.Context, key string) bool {
	return c.inner.Has(ctx, c.scoped(key))
}

// NoOpCache is a cache that does nothing (no caching).
type NoOpCache struct{}

// NewNoOpCache creates a new no-op cache.
func NewNoOpCache() *NoOpCache {
	return &NoOpCache{}
}

// Get always reports a miss.
func (c *NoOpCache) Get(ctx context.Context, key string) (*CacheEntry, error) {
	return nil, ErrCacheDisabled
}

// Set does nothing.
func (c *NoOpCache) Set(ctx context.Context, key string, entry *CacheEntry) error {
	return nil
}

// Delete does nothing.
func (c *NoOpCache) Delete(ctx context.Context, key string) error {
	return nil
}

// Clear does nothing.
func (c *NoOpCache) Clear(ctx context.Context) error {
	return nil
}

// Has always returns false.
func (c *NoOpCache) Has(ctx context.Context, key string) bool {
	return false
}
