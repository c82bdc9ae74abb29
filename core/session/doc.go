// Package session implements server-side session persistence and lifecycle
// on top of a segmented cache backend.
//
// A session is an opaque, cryptographically random identifier mapped to an
// application-defined record. The record lives only server-side; clients hold
// the identifier (typically inside a signed cookie, see the sessiontransport
// package). The cache's per-key expiry is authoritative: an expired session
// is simply absent.
//
// The Data type parameter carries the application payload, e.g.:
//
//	type Profile struct {
//		Username string `json:"username"`
//	}
//
//	store := session.NewCacheStore[Profile](backend)
//	manager := session.NewManager(store, session.WithTTL(72*time.Hour))
//
//	sess, err := manager.Create(ctx, Profile{Username: "alice"})
//
// # Error semantics
//
// A backend outage is never reported as "session not found": Store.Get
// returns found=false only when the backend answered and the key was absent
// or expired. Connectivity failures wrap ErrBackendUnavailable so callers can
// choose a fail-open or fail-closed policy.
//
// Destroy is idempotent: destroying an unknown identifier succeeds, so
// repeated logouts and races against TTL expiry are harmless.
package session
