// Package sessiontransport binds server-side sessions to HTTP requests.
//
// Two transports are provided: Cookie carries the session identifier in an
// HMAC-signed (optionally encrypted) cookie, JWT carries it in an
// Authorization header. Both resolve every request against the session store,
// so the server can revoke a session at any time; a verified envelope is
// necessary but never sufficient.
//
// # Validation outcomes
//
// Validate classifies each request into exactly one of three outcomes:
//
//   - StateAnonymous: no credential was presented.
//   - StateInvalid: a credential was presented but failed integrity checks or
//     references a session the store no longer holds (expired, logged out,
//     revoked). The request proceeds unauthenticated; callers should clear
//     the stale cookie.
//   - StateAuthenticated: the envelope verified and the store resolved a live
//     record.
//
// A cache backend outage is not an outcome: Validate returns an error wrapping
// session.ErrBackendUnavailable and the caller decides whether to fail open
// or closed.
//
// # Typical flow
//
//	transport := sessiontransport.NewCookie(manager, cookies)
//
//	// login handler, after the external credential check passed:
//	sess, err := transport.Login(w, r, Profile{Username: "alice"})
//
//	// any handler:
//	outcome, err := transport.Validate(r)
//	if outcome.State == sessiontransport.StateAuthenticated {
//		_ = outcome.Session.Data // stored payload
//	}
//
//	// logout handler:
//	err = transport.Logout(w, r)
//
// Credential verification itself is pluggable; see VerifyFunc.
package sessiontransport
