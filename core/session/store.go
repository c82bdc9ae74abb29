package session

import (
	"context"
	"time"
)

// Store defines session persistence. Implementations must be safe for
// concurrent use and must never report a backend failure as absence.
type Store[Data any] interface {
	// Get returns the session stored under id. Absent or expired sessions
	// yield found=false with a nil error; backend failures wrap
	// ErrBackendUnavailable.
	Get(ctx context.Context, id string) (sess Session[Data], found bool, err error)

	// Set writes sess with the given TTL, overwriting any existing record.
	// A zero TTL means "use the store's configured default".
	Set(ctx context.Context, sess Session[Data], ttl time.Duration) error

	// Drop removes id unconditionally. Dropping an absent id succeeds.
	Drop(ctx context.Context, id string) error
}
