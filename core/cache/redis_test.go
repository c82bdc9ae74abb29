package cache_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/sessionguard/core/cache"
)

func newTestBackend(t *testing.T) (*cache.Redis, *miniredis.Miniredis) {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() {
		_ = client.Close()
		mr.Close()
	})

	return cache.NewRedis(client), mr
}

func TestRedis_GetSetDelete(t *testing.T) {
	ctx := context.Background()

	t.Run("set then get returns stored value", func(t *testing.T) {
		backend, _ := newTestBackend(t)

		err := backend.Set(ctx, "sessions", "abc", []byte(`{"username":"alice"}`), time.Hour)
		require.NoError(t, err)

		val, found, err := backend.Get(ctx, "sessions", "abc")
		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, []byte(`{"username":"alice"}`), val)
	})

	t.Run("missing key is not found, not an error", func(t *testing.T) {
		backend, _ := newTestBackend(t)

		val, found, err := backend.Get(ctx, "sessions", "nope")
		require.NoError(t, err)
		assert.False(t, found)
		assert.Nil(t, val)
	})

	t.Run("segments do not collide", func(t *testing.T) {
		backend, _ := newTestBackend(t)

		require.NoError(t, backend.Set(ctx, "sessions", "k", []byte("a"), time.Hour))
		require.NoError(t, backend.Set(ctx, "other", "k", []byte("b"), time.Hour))

		val, found, err := backend.Get(ctx, "sessions", "k")
		require.NoError(t, err)
		require.True(t, found)
		assert.Equal(t, []byte("a"), val)
	})

	t.Run("expired key is not found", func(t *testing.T) {
		backend, mr := newTestBackend(t)

		require.NoError(t, backend.Set(ctx, "sessions", "abc", []byte("v"), time.Minute))
		mr.FastForward(2 * time.Minute)

		_, found, err := backend.Get(ctx, "sessions", "abc")
		require.NoError(t, err)
		assert.False(t, found)
	})

	t.Run("set overwrites existing value", func(t *testing.T) {
		backend, _ := newTestBackend(t)

		require.NoError(t, backend.Set(ctx, "sessions", "abc", []byte("old"), time.Hour))
		require.NoError(t, backend.Set(ctx, "sessions", "abc", []byte("new"), time.Hour))

		val, found, err := backend.Get(ctx, "sessions", "abc")
		require.NoError(t, err)
		require.True(t, found)
		assert.Equal(t, []byte("new"), val)
	})

	t.Run("delete is idempotent", func(t *testing.T) {
		backend, _ := newTestBackend(t)

		require.NoError(t, backend.Set(ctx, "sessions", "abc", []byte("v"), time.Hour))
		require.NoError(t, backend.Delete(ctx, "sessions", "abc"))
		require.NoError(t, backend.Delete(ctx, "sessions", "abc"))

		_, found, err := backend.Get(ctx, "sessions", "abc")
		require.NoError(t, err)
		assert.False(t, found)
	})

	t.Run("connection failure wraps ErrUnavailable", func(t *testing.T) {
		mr, err := miniredis.Run()
		require.NoError(t, err)

		client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
		t.Cleanup(func() { _ = client.Close() })
		backend := cache.NewRedis(client)

		mr.Close()

		_, _, err = backend.Get(ctx, "sessions", "abc")
		assert.ErrorIs(t, err, cache.ErrUnavailable)

		err = backend.Set(ctx, "sessions", "abc", []byte("v"), time.Hour)
		assert.ErrorIs(t, err, cache.ErrUnavailable)

		err = backend.Delete(ctx, "sessions", "abc")
		assert.ErrorIs(t, err, cache.ErrUnavailable)
	})
}

func TestConnect(t *testing.T) {
	ctx := context.Background()

	t.Run("connects and pings", func(t *testing.T) {
		mr, err := miniredis.Run()
		require.NoError(t, err)
		t.Cleanup(mr.Close)

		client, err := cache.Connect(ctx, cache.Config{
			ConnectionURL:  "redis://" + mr.Addr(),
			RetryAttempts:  1,
			RetryInterval:  time.Millisecond,
			ConnectTimeout: 5 * time.Second,
		})
		require.NoError(t, err)
		t.Cleanup(func() { _ = client.Close() })

		assert.NoError(t, client.Ping(ctx).Err())
	})

	t.Run("empty URL", func(t *testing.T) {
		_, err := cache.Connect(ctx, cache.Config{})
		assert.ErrorIs(t, err, cache.ErrEmptyConnectionURL)
	})

	t.Run("malformed URL", func(t *testing.T) {
		_, err := cache.Connect(ctx, cache.Config{ConnectionURL: "http://not-redis"})
		assert.ErrorIs(t, err, cache.ErrFailedToParseConnString)
	})

	t.Run("unreachable backend exhausts retries", func(t *testing.T) {
		_, err := cache.Connect(ctx, cache.Config{
			ConnectionURL:  "redis://127.0.0.1:1",
			RetryAttempts:  2,
			RetryInterval:  time.Millisecond,
			ConnectTimeout: 2 * time.Second,
		})
		assert.ErrorIs(t, err, cache.ErrNotReady)
	})
}

func TestHealthcheck(t *testing.T) {
	ctx := context.Background()

	mr, err := miniredis.Run()
	require.NoError(t, err)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	probe := cache.Healthcheck(client)
	assert.NoError(t, probe(ctx))

	mr.Close()
	assert.ErrorIs(t, probe(ctx), cache.ErrHealthcheckFailed)
}
