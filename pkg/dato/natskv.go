package dato

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"
)

// NATSKVConfig configures the NATS JetStream KV cache backend. A shared KV
// bucket lets multiple server processes reuse each other's GET responses.
type NATSKVConfig struct {
	// URL is the NATS server URL, e.g. nats://localhost:4222.
	URL string

	// Bucket is the KV bucket name. Created if it does not exist.
	Bucket string

	// TTL is the bucket-level entry TTL. Zero disables bucket expiry and
	// relies on per-entry expiry only.
	TTL time.Duration

	// Credentials is an optional path to a NATS credentials file.
	Credentials string
}

// NATSKVCache stores cache entries in a NATS JetStream KV bucket.
type NATSKVCache struct {
	conn   *nats.Conn
	bucket nats.KeyValue
}

// NewNATSKVCache connects to NATS and binds (or creates) the KV bucket.
func NewNATSKVCache(config *NATSKVConfig) (*NATSKVCache, error) {
	if config == nil {
		return nil, ErrNATSConfigRequired
	}

	opts := []nats.Option{nats.Name("datocms-mcp-cache")}
	if config.Credentials != "" {
		opts = append(opts, nats.UserCredentials(config.Credentials))
	}

	conn, err := nats.Connect(config.URL, opts...)
	if err != nil {
		return nil, fmt.Errorf("connecting to NATS: %w", err)
	}

	js, err := conn.JetStream()
	if err != nil {
		conn.Close()

		return nil, fmt.Errorf("getting JetStream context: %w", err)
	}

	bucket, err := js.KeyValue(config.Bucket)
	if errors.Is(err, nats.ErrBucketNotFound) {
		bucket, err = js.CreateKeyValue(&nats.KeyValueConfig{
			Bucket: config.Bucket,
			TTL:    config.TTL,
		})
	}

	if err != nil {
		conn.Close()

		return nil, fmt.Errorf("binding KV bucket %q: %w", config.Bucket, err)
	}

	return &NATSKVCache{conn: conn, bucket: bucket}, nil
}

// kvKey maps arbitrary cache keys (URLs with query strings) onto the
// restricted NATS KV key alphabet.
func kvKey(key string) string {
	sum := sha256.Sum256([]byte(key))

	return hex.EncodeToString(sum[:])
}

// Get retrieves an entry from the bucket.
func (c *NATSKVCache) Get(ctx context.Context, key string) (*CacheEntry, error) {
	kve, err := c.bucket.Get(kvKey(key))
	if err != nil {
		if errors.Is(err, nats.ErrKeyNotFound) {
			return nil, ErrCacheKeyNotFound
		}

		return nil, fmt.Errorf("reading cache key: %w", err)
	}

	var entry CacheEntry
	if err := json.Unmarshal(kve.Value(), &entry); err != nil {
		return nil, fmt.Errorf("decoding cache entry: %w", err)
	}

	if entry.Expired() {
		_ = c.Delete(ctx, key)

		return nil, ErrCacheEntryExpired
	}

	return &entry, nil
}

// Set stores an entry in the bucket.
func (c *NATSKVCache) Set(ctx context.Context, key string, entry *CacheEntry) error {
	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("encoding cache entry: %w", err)
	}

	if _, err := c.bucket.Put(kvKey(key), data); err != nil {
		return fmt.Errorf("writing cache key: %w", err)
	}

	return nil
}

// Delete removes an entry from the bucket.
func (c *NATSKVCache) Delete(ctx context.Context, key string) error {
	err := c.bucket.Delete(kvKey(key))
	if err != nil && !errors.Is(err, nats.ErrKeyNotFound) {
		return fmt.Errorf("deleting cache key: %w", err)
	}

	return nil
}

// Clear removes every entry from the bucket.
func (c *NATSKVCache) Clear(ctx context.Context) error {
	keys, err := c.bucket.Keys()
	if err != nil {
		if errors.Is(err, nats.ErrNoKeysFound) {
			return nil
		}

		return fmt.Errorf("listing cache keys: %w", err)
	}

	for _, key := range keys {
		if err := c.bucket.Delete(key); err != nil && !errors.Is(err, nats.ErrKeyNotFound) {
			return fmt.Errorf("deleting cache key: %w", err)
		}
	}

	return nil
}

// Has checks whether a live entry exists for the key.
func (c *NATSKVCache) Has(ctx context.Context, key string) bool {
	entry, err := c.Get(ctx, key)

	return err == nil && entry != nil
}

// Close closes the underlying NATS connection.
func (c *NATSKVCache) Close() {
	c.conn.Close()
}
