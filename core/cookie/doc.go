// Package cookie provides tamper-evident HTTP cookie handling with HMAC
// signing, optional AES-256-GCM encryption, and secret rotation.
//
// The session layer stores only an opaque identifier client-side; this
// package is the codec that makes that identifier self-verifying. Decoding
// never touches the network: a signature check either passes or the value is
// rejected as forged/corrupted.
//
// # Signed values
//
// SetSigned/GetSigned wrap the value as base64(value)|base64(hmac-sha256).
// Verification is constant-time and tries every configured secret, so secrets
// can be rotated by prepending the new one and keeping the old one until
// outstanding cookies expire.
//
// # Encrypted values
//
// SetEncrypted/GetEncrypted seal the value with AES-256-GCM, hiding the
// payload as well as authenticating it. Use this when the cookie carries more
// than an opaque identifier.
//
// # Usage
//
//	m, err := cookie.New([]string{secret})
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	err = m.SetSigned(w, "__session", sid, cookie.WithMaxAge(3600))
//	sid, err := m.GetSigned(r, "__session")
package cookie
