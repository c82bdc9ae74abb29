package session

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"time"
)

// idSize is the identifier entropy in bytes. 128 bits keeps collisions
// negligible without a uniqueness probe against the store.
const idSize = 16

// Session associates an opaque identifier with an application-defined record.
// The Data type parameter allows custom payload structures specific to your
// application. Expiry is enforced by the cache backend, not by this struct.
type Session[Data any] struct {
	// ID is the unguessable session identifier carried by the client.
	ID string `json:"id"`

	// Data holds the application payload, e.g. the authenticated identity.
	Data Data `json:"data"`

	CreatedAt time.Time `json:"created_at"`
}

// NewID mints a cryptographically random session identifier,
// hex-encoded for cookie and log friendliness.
func NewID() (string, error) {
	b := make([]byte, idSize)
	if _, err := rand.Read(b); err != nil {
		return "", errors.Join(ErrIDGeneration, err)
	}
	return hex.EncodeToString(b), nil
}
