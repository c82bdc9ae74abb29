package sessiontransport

import "github.com/dmitrymomot/sessionguard/core/session"

// State classifies the authentication result of a single request.
type State int

const (
	// StateAnonymous means no session credential was presented.
	StateAnonymous State = iota

	// StateInvalid means a credential was presented but is forged, malformed,
	// or references a session absent from the store. The stale cookie should
	// be cleared by the caller; validation itself never mutates state.
	StateInvalid

	// StateAuthenticated means the credential verified and a live session
	// record was resolved.
	StateAuthenticated
)

// String returns the lowercase outcome name, also used as a metrics label.
func (s State) String() string {
	switch s {
	case StateAnonymous:
		return "anonymous"
	case StateInvalid:
		return "invalid"
	case StateAuthenticated:
		return "authenticated"
	default:
		return "unknown"
	}
}

// Outcome is the tagged result of validating one request.
// Session is populated only when State is StateAuthenticated.
type Outcome[Data any] struct {
	State   State
	Session session.Session[Data]
}

// IsAuthenticated reports whether the request carries a live session.
func (o Outcome[Data]) IsAuthenticated() bool {
	return o.State == StateAuthenticated
}
