package sessiontransport

import "errors"

// ErrSigningKeyTooShort indicates the JWT signing key does not meet the
// minimum length for HMAC-SHA256.
var ErrSigningKeyTooShort = errors.New("sessiontransport: signing key must be at least 32 characters")

// Token extraction failures are internal: Validate maps them onto
// StateAnonymous / StateInvalid rather than surfacing them.
var (
	errNoToken      = errors.New("sessiontransport: no token")
	errInvalidToken = errors.New("sessiontransport: invalid token")
)
