// Package cache defines the key-value backend contract consumed by the
// session store and provides a Redis implementation of it.
//
// The backend is a segmented key space with per-key expiration. Segments
// partition the keys of independent subsystems (e.g. "sessions") so they can
// share one Redis deployment without colliding.
//
// # Contract
//
// Get reports absence and failure separately: a missing or expired key yields
// found=false with a nil error, while a connection-level failure yields a
// non-nil error wrapping [ErrUnavailable]. Callers must never treat an
// unavailable backend as "key not found".
//
// # Usage
//
//	cfg := cache.Config{ConnectionURL: "redis://localhost:6379/0"}
//	client, err := cache.Connect(ctx, cfg)
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer client.Close()
//
//	backend := cache.NewRedis(client)
//	err = backend.Set(ctx, "sessions", id, payload, 72*time.Hour)
//
// Connect validates the connection URL, retries with linear backoff, and
// verifies connectivity with a ping before returning, so a misconfigured or
// unreachable backend fails at startup rather than on the first request.
package cache
