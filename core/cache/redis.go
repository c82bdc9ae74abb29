package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Redis implements Cache on top of a go-redis client. Keys are namespaced as
// "<segment>:<key>" so multiple subsystems can share one database.
type Redis struct {
	client *redis.Client
}

// NewRedis creates a Redis-backed cache using an established client.
// The client's connection pool is shared by all callers.
func NewRedis(client *redis.Client) *Redis {
	return &Redis{client: client}
}

func (r *Redis) key(segment, key string) string {
	return segment + ":" + key
}

// Get implements Cache. redis.Nil (absent or expired key) maps to found=false;
// any other error is a connectivity failure wrapping ErrUnavailable.
func (r *Redis) Get(ctx context.Context, segment, key string) ([]byte, bool, error) {
	val, err := r.client.Get(ctx, r.key(segment, key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, errors.Join(ErrUnavailable, err)
	}
	return val, true, nil
}

// Set implements Cache. Redis expires the key server-side after ttl.
func (r *Redis) Set(ctx context.Context, segment, key string, value []byte, ttl time.Duration) error {
	if err := r.client.Set(ctx, r.key(segment, key), value, ttl).Err(); err != nil {
		return errors.Join(ErrUnavailable, err)
	}
	return nil
}

// Delete implements Cache. DEL on an absent key succeeds, which gives the
// session store its idempotent drop semantics for free.
func (r *Redis) Delete(ctx context.Context, segment, key string) error {
	if err := r.client.Del(ctx, r.key(segment, key)).Err(); err != nil {
		return errors.Join(ErrUnavailable, err)
	}
	return nil
}

// Connect creates a Redis client from cfg and verifies connectivity before
// returning. Connection attempts are retried with a linear backoff to ride
// out transient startup ordering issues (e.g. the backend container still
// booting). Respects ctx cancellation between attempts.
func Connect(ctx context.Context, cfg Config) (*redis.Client, error) {
	if cfg.ConnectionURL == "" {
		return nil, ErrEmptyConnectionURL
	}

	opts, err := redis.ParseURL(cfg.ConnectionURL)
	if err != nil {
		return nil, errors.Join(ErrFailedToParseConnString, err)
	}

	client := redis.NewClient(opts)

	attempts := cfg.RetryAttempts
	if attempts < 1 {
		attempts = 1
	}
	interval := cfg.RetryInterval
	if interval <= 0 {
		interval = time.Second
	}

	connectCtx := ctx
	if cfg.ConnectTimeout > 0 {
		var cancel context.CancelFunc
		connectCtx, cancel = context.WithTimeout(ctx, cfg.ConnectTimeout)
		defer cancel()
	}

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		if lastErr = client.Ping(connectCtx).Err(); lastErr == nil {
			return client, nil
		}

		if attempt < attempts {
			select {
			case <-connectCtx.Done():
				_ = client.Close()
				return nil, errors.Join(ErrNotReady, connectCtx.Err())
			case <-time.After(interval * time.Duration(attempt)):
			}
		}
	}

	_ = client.Close()
	return nil, fmt.Errorf("%w: %d attempts: %w", ErrNotReady, attempts, lastErr)
}

// Healthcheck returns a probe function suitable for readiness endpoints.
func Healthcheck(client *redis.Client) func(context.Context) error {
	return func(ctx context.Context) error {
		if err := client.Ping(ctx).Err(); err != nil {
			return errors.Join(ErrHealthcheckFailed, err)
		}
		return nil
	}
}
