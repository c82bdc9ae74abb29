package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/dmitrymomot/sessionguard/core/logger"
	"github.com/dmitrymomot/sessionguard/core/sessiontransport"
)

// outcomeContextKey is an unexported, collision-proof context key.
type outcomeContextKey struct{}

// Validator is the transport surface the auth gate consumes. Both the cookie
// and JWT transports satisfy it.
type Validator[Data any] interface {
	Validate(r *http.Request) (sessiontransport.Outcome[Data], error)
}

// cookieClearer is implemented by transports that can evict a stale cookie.
type cookieClearer interface {
	ClearCookie(w http.ResponseWriter)
}

// Mode selects how the gate treats unauthenticated requests.
type Mode int

const (
	// ModeTry records the outcome and always continues. The original's
	// "try" auth mode for pages with optional personalization.
	ModeTry Mode = iota

	// ModeRequired rejects Anonymous and Invalid outcomes with a redirect to
	// the authentication entry point.
	ModeRequired
)

// AuthConfig configures the auth gate.
type AuthConfig struct {
	// Mode selects try or required behavior. Default: ModeTry.
	Mode Mode
	// RedirectTo is the authentication entry point for rejected requests.
	// Default "/login". A rejected request is always redirected, never shown
	// a raw error page.
	RedirectTo string
	// NextParam, when non-empty, appends the original request path to the
	// redirect as a query parameter so the login flow can send the client
	// back afterwards (e.g. /login?redirect=/private).
	NextParam string
	// Logger for structured logging. Default discards.
	Logger *slog.Logger
}

// Auth validates each request with ModeTry defaults: the outcome lands in the
// request context and the request always proceeds.
func Auth[Data any](transport Validator[Data]) func(http.Handler) http.Handler {
	return AuthWithConfig(transport, AuthConfig{})
}

// AuthWithConfig validates each request against the session transport.
//
// A backend outage is never an authentication bypass: in ModeRequired the
// request fails closed with 503 so the client can retry; in ModeTry it
// degrades to anonymous and the error is logged. Invalid cookies are cleared
// client-side when the transport supports it.
func AuthWithConfig[Data any](transport Validator[Data], cfg AuthConfig) func(http.Handler) http.Handler {
	if cfg.RedirectTo == "" {
		cfg.RedirectTo = "/login"
	}
	if cfg.Logger == nil {
		cfg.Logger = logger.Discard()
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			outcome, err := transport.Validate(r)
			if err != nil {
				cfg.Logger.ErrorContext(r.Context(), "session validation failed",
					logger.Error(err),
					logger.Method(r.Method),
					logger.Path(r.URL.Path),
				)

				if cfg.Mode == ModeRequired {
					http.Error(w, http.StatusText(http.StatusServiceUnavailable), http.StatusServiceUnavailable)
					return
				}

				outcome = sessiontransport.Outcome[Data]{State: sessiontransport.StateAnonymous}
			}

			if outcome.State == sessiontransport.StateInvalid {
				if clearer, ok := transport.(cookieClearer); ok {
					clearer.ClearCookie(w)
				}
			}

			if cfg.Mode == ModeRequired && !outcome.IsAuthenticated() {
				http.Redirect(w, r, redirectTarget(cfg, r), http.StatusFound)
				return
			}

			ctx := context.WithValue(r.Context(), outcomeContextKey{}, outcome)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// redirectTarget builds the login redirect, preserving the original path when
// NextParam is configured.
func redirectTarget(cfg AuthConfig, r *http.Request) string {
	if cfg.NextParam == "" {
		return cfg.RedirectTo
	}

	next := r.URL.Path
	if r.URL.RawQuery != "" {
		next += "?" + r.URL.RawQuery
	}

	target, err := url.Parse(cfg.RedirectTo)
	if err != nil {
		return cfg.RedirectTo
	}

	q := target.Query()
	q.Set(cfg.NextParam, next)
	target.RawQuery = q.Encode()
	return target.String()
}

// OutcomeFromContext extracts the validation outcome stored by the auth gate.
func OutcomeFromContext[Data any](ctx context.Context) (sessiontransport.Outcome[Data], bool) {
	outcome, ok := ctx.Value(outcomeContextKey{}).(sessiontransport.Outcome[Data])
	return outcome, ok
}
