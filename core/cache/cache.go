package cache

import (
	"context"
	"time"
)

// Cache is the key-value backend contract with per-key expiration.
// Implementations must be safe for concurrent use; every operation is a
// network round-trip honoring context cancellation.
type Cache interface {
	// Get returns the value stored under segment/key. A missing or expired
	// key returns found=false with a nil error. Backend failures return an
	// error wrapping ErrUnavailable.
	Get(ctx context.Context, segment, key string) (value []byte, found bool, err error)

	// Set writes value under segment/key with the given TTL, overwriting any
	// existing value. The expiry clock starts at write time.
	Set(ctx context.Context, segment, key string, value []byte, ttl time.Duration) error

	// Delete removes segment/key unconditionally. Deleting an absent key is
	// not an error.
	Delete(ctx context.Context, segment, key string) error
}
