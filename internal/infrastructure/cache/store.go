package cache

import (
	"context"
	"time"
)

// Store is a minimal expiring key-value store. Redis backs it in normal
// operation; the in-memory variant serves tests and redis-less deployments.
type Store interface {
	// Set stores a value with the given TTL
	Set(ctx context.Context, key, value string, ttl time.Duration) error

	// Get retrieves a value; the bool reports whether the key was present
	// and unexpired
	Get(ctx context.Context, key string) (string, bool, error)

	// Delete removes a key
	Delete(ctx context.Context, key string) error
}
