package session

import (
	"time"

	"github.com/dmitrymomot/sessionguard/core/cache"
)

// Config holds session store and lifecycle settings, mapped from environment
// variables.
type Config struct {
	// Segment is the cache namespace reserved for session records.
	Segment string `env:"SESSION_SEGMENT" envDefault:"sessions"`
	// TTL is the session time-to-live.
	TTL time.Duration `env:"SESSION_TTL" envDefault:"72h"`
}

// NewFromConfig wires a CacheStore and Manager from configuration.
func NewFromConfig[Data any](backend cache.Cache, cfg Config) *Manager[Data] {
	store := NewCacheStore[Data](backend,
		WithSegment(cfg.Segment),
		WithDefaultTTL(cfg.TTL),
	)
	return NewManager[Data](store, WithTTL(cfg.TTL))
}
