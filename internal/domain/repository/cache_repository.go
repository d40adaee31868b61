package repository

import (
	"context"
	"time"
)

// CacheRepository is a byte-oriented TTL cache. Callers treat failures as
// cache misses and fall back to the database.
type CacheRepository interface {
	// Get returns the cached value or a nil slice on miss.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores a value with TTL.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete removes a key.
	Delete(ctx context.Context, key string) error

	// Exists reports whether a key is present.
	Exists(ctx context.Context, key string) (bool, error)
}
