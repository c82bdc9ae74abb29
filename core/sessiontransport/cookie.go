package sessiontransport

import (
	"errors"
	"net/http"

	"github.com/dmitrymomot/sessionguard/core/cookie"
	"github.com/dmitrymomot/sessionguard/core/metrics"
	"github.com/dmitrymomot/sessionguard/core/session"
)

// DefaultCookieName is the session cookie name unless overridden.
const DefaultCookieName = "__session"

// Cookie provides HTTP cookie-based session transport. The cookie value is
// the session identifier wrapped in a signed (or encrypted) envelope produced
// by cookie.Manager; the record itself never leaves the server.
type Cookie[Data any] struct {
	manager    *session.Manager[Data]
	cookieMgr  *cookie.Manager
	name       string
	encrypted  bool
	cookieOpts []cookie.Option
}

// CookieOption configures the cookie transport.
type CookieOption func(*cookieSettings)

type cookieSettings struct {
	name       string
	encrypted  bool
	cookieOpts []cookie.Option
}

// WithCookieName overrides the session cookie name.
func WithCookieName(name string) CookieOption {
	return func(s *cookieSettings) {
		if name != "" {
			s.name = name
		}
	}
}

// WithEncryption seals the envelope with AES-256-GCM instead of signing it,
// hiding the identifier from the client as well as authenticating it.
func WithEncryption() CookieOption {
	return func(s *cookieSettings) {
		s.encrypted = true
	}
}

// WithCookieOptions appends cookie attribute options (Secure, SameSite, Path)
// applied on every Set-Cookie the transport emits.
func WithCookieOptions(opts ...cookie.Option) CookieOption {
	return func(s *cookieSettings) {
		s.cookieOpts = append(s.cookieOpts, opts...)
	}
}

// NewCookie creates a cookie-based session transport.
func NewCookie[Data any](manager *session.Manager[Data], cookieMgr *cookie.Manager, opts ...CookieOption) *Cookie[Data] {
	settings := cookieSettings{name: DefaultCookieName}
	for _, opt := range opts {
		opt(&settings)
	}

	return &Cookie[Data]{
		manager:    manager,
		cookieMgr:  cookieMgr,
		name:       settings.name,
		encrypted:  settings.encrypted,
		cookieOpts: settings.cookieOpts,
	}
}

// CookieName returns the name of the cookie the transport manages.
func (c *Cookie[Data]) CookieName() string {
	return c.name
}

// ClearCookie issues the clear directive without touching the store. Used to
// evict stale or forged cookies detected during validation.
func (c *Cookie[Data]) ClearCookie(w http.ResponseWriter) {
	c.cookieMgr.Delete(w, c.name)
}

// Validate classifies the request per the session cookie it carries.
// The envelope check is pure; only a verified identifier reaches the store.
// A backend outage returns an error wrapping session.ErrBackendUnavailable
// and no outcome; the caller chooses the failure policy.
func (c *Cookie[Data]) Validate(r *http.Request) (Outcome[Data], error) {
	id, err := c.decode(r)
	if err != nil {
		if errors.Is(err, cookie.ErrCookieNotFound) {
			metrics.ValidationsTotal.WithLabelValues(StateAnonymous.String()).Inc()
			return Outcome[Data]{State: StateAnonymous}, nil
		}
		// Forged, tampered, or malformed envelope.
		metrics.ValidationsTotal.WithLabelValues(StateInvalid.String()).Inc()
		return Outcome[Data]{State: StateInvalid}, nil
	}

	sess, found, err := c.manager.Get(r.Context(), id)
	if err != nil {
		metrics.ValidationsTotal.WithLabelValues("error").Inc()
		metrics.BackendErrors.Inc()
		return Outcome[Data]{}, err
	}
	if !found {
		// Identifier is well-formed but the server no longer holds the
		// session: expired, logged out, or revoked.
		metrics.ValidationsTotal.WithLabelValues(StateInvalid.String()).Inc()
		return Outcome[Data]{State: StateInvalid}, nil
	}

	metrics.ValidationsTotal.WithLabelValues(StateAuthenticated.String()).Inc()
	return Outcome[Data]{State: StateAuthenticated, Session: sess}, nil
}

// Login creates a session for the pre-verified identity payload and issues
// the Set-Cookie directive. On store failure no cookie is written: no session
// implies no cookie.
func (c *Cookie[Data]) Login(w http.ResponseWriter, r *http.Request, data Data) (session.Session[Data], error) {
	sess, err := c.manager.Create(r.Context(), data)
	if err != nil {
		metrics.BackendErrors.Inc()
		return session.Session[Data]{}, err
	}

	if err := c.encode(w, sess.ID); err != nil {
		// The record exists but the client never got the cookie; remove it so
		// no orphaned session lingers for the full TTL.
		_ = c.manager.Destroy(r.Context(), sess.ID)
		return session.Session[Data]{}, errors.Join(session.ErrCreationFailed, err)
	}

	metrics.SessionsCreated.Inc()
	return sess, nil
}

// Logout destroys the session referenced by the request's cookie and clears
// the cookie client-side. The cookie is cleared even when the backend delete
// fails, so the client is never stuck presenting a dead-but-undeletable
// reference; the failure is still reported.
func (c *Cookie[Data]) Logout(w http.ResponseWriter, r *http.Request) error {
	id, err := c.decode(r)

	// Clear regardless of envelope validity or backend health.
	c.cookieMgr.Delete(w, c.name)

	if err != nil {
		// Nothing server-side to destroy for a missing or forged cookie.
		return nil
	}

	if err := c.manager.Destroy(r.Context(), id); err != nil {
		metrics.BackendErrors.Inc()
		return err
	}

	metrics.SessionsDestroyed.Inc()
	return nil
}

func (c *Cookie[Data]) encode(w http.ResponseWriter, id string) error {
	opts := append([]cookie.Option{cookie.WithMaxAge(int(c.manager.TTL().Seconds()))}, c.cookieOpts...)
	if c.encrypted {
		return c.cookieMgr.SetEncrypted(w, c.name, id, opts...)
	}
	return c.cookieMgr.SetSigned(w, c.name, id, opts...)
}

func (c *Cookie[Data]) decode(r *http.Request) (string, error) {
	if c.encrypted {
		return c.cookieMgr.GetEncrypted(r, c.name)
	}
	return c.cookieMgr.GetSigned(r, c.name)
}
