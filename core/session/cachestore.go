package session

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/dmitrymomot/sessionguard/core/cache"
)

const (
	// DefaultSegment is the cache namespace reserved for session records.
	DefaultSegment = "sessions"

	// DefaultTTL is the lifetime applied when a zero TTL is requested.
	DefaultTTL = 3 * 24 * time.Hour
)

// storeSettings holds CacheStore configuration shared across Data types.
type storeSettings struct {
	segment    string
	defaultTTL time.Duration
}

// StoreOption configures a CacheStore.
type StoreOption func(*storeSettings)

// WithSegment overrides the cache namespace used for session keys.
func WithSegment(segment string) StoreOption {
	return func(s *storeSettings) {
		if segment != "" {
			s.segment = segment
		}
	}
}

// WithDefaultTTL overrides the lifetime applied when Set receives a zero TTL.
func WithDefaultTTL(ttl time.Duration) StoreOption {
	return func(s *storeSettings) {
		if ttl > 0 {
			s.defaultTTL = ttl
		}
	}
}

// CacheStore implements Store on a segmented cache backend. Records are
// JSON-encoded; expiry is delegated entirely to the backend.
type CacheStore[Data any] struct {
	backend  cache.Cache
	settings storeSettings
}

// NewCacheStore creates a session store over backend, using the "sessions"
// segment and a 3-day default TTL unless overridden.
func NewCacheStore[Data any](backend cache.Cache, opts ...StoreOption) *CacheStore[Data] {
	settings := storeSettings{
		segment:    DefaultSegment,
		defaultTTL: DefaultTTL,
	}
	for _, opt := range opts {
		opt(&settings)
	}

	return &CacheStore[Data]{
		backend:  backend,
		settings: settings,
	}
}

// Get implements Store.
func (s *CacheStore[Data]) Get(ctx context.Context, id string) (Session[Data], bool, error) {
	var zero Session[Data]

	raw, found, err := s.backend.Get(ctx, s.settings.segment, id)
	if err != nil {
		return zero, false, errors.Join(ErrBackendUnavailable, err)
	}
	if !found {
		return zero, false, nil
	}

	var sess Session[Data]
	if err := json.Unmarshal(raw, &sess); err != nil {
		return zero, false, errors.Join(ErrCorruptedRecord, err)
	}

	return sess, true, nil
}

// Set implements Store. The expiry clock starts now; a zero ttl applies the
// store's default.
func (s *CacheStore[Data]) Set(ctx context.Context, sess Session[Data], ttl time.Duration) error {
	if ttl <= 0 {
		ttl = s.settings.defaultTTL
	}

	raw, err := json.Marshal(sess)
	if err != nil {
		return errors.Join(ErrCorruptedRecord, err)
	}

	if err := s.backend.Set(ctx, s.settings.segment, sess.ID, raw, ttl); err != nil {
		return errors.Join(ErrBackendUnavailable, err)
	}
	return nil
}

// Drop implements Store. Idempotent: the backend's delete succeeds whether or
// not the key exists.
func (s *CacheStore[Data]) Drop(ctx context.Context, id string) error {
	if err := s.backend.Delete(ctx, s.settings.segment, id); err != nil {
		return errors.Join(ErrBackendUnavailable, err)
	}
	return nil
}
