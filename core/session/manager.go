package session

import (
	"context"
	"errors"
	"time"
)

// Manager handles the session lifecycle: minting identifiers at login,
// resolving them on request, and destroying them at logout. The store is
// injected, never ambient, so request handling stays testable.
type Manager[Data any] struct {
	store Store[Data]
	ttl   time.Duration
}

// ManagerOption configures a Manager.
type ManagerOption func(*managerSettings)

type managerSettings struct {
	ttl time.Duration
}

// WithTTL sets the lifetime of sessions created by the manager.
func WithTTL(ttl time.Duration) ManagerOption {
	return func(s *managerSettings) {
		if ttl > 0 {
			s.ttl = ttl
		}
	}
}

// NewManager creates a session lifecycle manager over store.
func NewManager[Data any](store Store[Data], opts ...ManagerOption) *Manager[Data] {
	settings := managerSettings{ttl: DefaultTTL}
	for _, opt := range opts {
		opt(&settings)
	}

	return &Manager[Data]{
		store: store,
		ttl:   settings.ttl,
	}
}

// Create mints a fresh identifier and persists data under it. Every call
// produces a new identifier, even for the same identity, so re-authentication
// never reuses a session (no fixation across logins). On failure no session
// exists and the caller must not issue a cookie.
func (m *Manager[Data]) Create(ctx context.Context, data Data) (Session[Data], error) {
	var zero Session[Data]

	id, err := NewID()
	if err != nil {
		return zero, errors.Join(ErrCreationFailed, err)
	}

	sess := Session[Data]{
		ID:        id,
		Data:      data,
		CreatedAt: time.Now(),
	}

	if err := m.store.Set(ctx, sess, m.ttl); err != nil {
		return zero, errors.Join(ErrCreationFailed, err)
	}

	return sess, nil
}

// Get resolves an identifier against the store. Expired and unknown
// identifiers report found=false; a backend outage is an error.
func (m *Manager[Data]) Get(ctx context.Context, id string) (Session[Data], bool, error) {
	return m.store.Get(ctx, id)
}

// Destroy removes the session. Destroying an unknown identifier succeeds;
// only a backend failure is an error.
func (m *Manager[Data]) Destroy(ctx context.Context, id string) error {
	if err := m.store.Drop(ctx, id); err != nil {
		return errors.Join(ErrDestructionFailed, err)
	}
	return nil
}

// TTL returns the lifetime applied to created sessions. Transports use it to
// align cookie MaxAge with server-side expiry.
func (m *Manager[Data]) TTL() time.Duration {
	return m.ttl
}
