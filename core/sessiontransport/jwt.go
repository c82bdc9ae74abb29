package sessiontransport

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/dmitrymomot/sessionguard/core/metrics"
	"github.com/dmitrymomot/sessionguard/core/session"
)

// minSigningKeyLength is the minimum HMAC key length for HS256.
const minSigningKeyLength = 32

// JWT provides header-based session transport for API clients that do not
// speak cookies. The token carries only the session identifier; the store
// remains the source of truth, so logout revokes a token immediately without
// a denylist.
type JWT[Data any] struct {
	manager      *session.Manager[Data]
	signingKey   []byte
	headerName   string
	bearerPrefix bool
	issuer       string
	audience     string
}

// sessionClaims is the JWT payload: registered claims plus the session id.
type sessionClaims struct {
	jwt.RegisteredClaims
	SessionID string `json:"sid"`
}

// jwtSettings holds JWT transport configuration shared across Data types.
type jwtSettings struct {
	headerName   string
	bearerPrefix bool
	issuer       string
	audience     string
}

// JWTTransportOption configures the JWT transport.
type JWTTransportOption func(*jwtSettings)

// WithJWTHeaderName sets a custom header name for tokens. Default "Authorization".
func WithJWTHeaderName(name string) JWTTransportOption {
	return func(s *jwtSettings) {
		if name != "" {
			s.headerName = name
		}
	}
}

// WithJWTBearerPrefix controls whether the "Bearer " prefix is used. Default true.
func WithJWTBearerPrefix(usePrefix bool) JWTTransportOption {
	return func(s *jwtSettings) {
		s.bearerPrefix = usePrefix
	}
}

// WithJWTIssuer sets the issuer claim for generated tokens.
func WithJWTIssuer(issuer string) JWTTransportOption {
	return func(s *jwtSettings) {
		s.issuer = issuer
	}
}

// WithJWTAudience sets the audience claim for generated tokens.
func WithJWTAudience(audience string) JWTTransportOption {
	return func(s *jwtSettings) {
		s.audience = audience
	}
}

// NewJWT creates a JWT-based session transport signed with HMAC-SHA256.
func NewJWT[Data any](manager *session.Manager[Data], signingKey string, opts ...JWTTransportOption) (*JWT[Data], error) {
	if len(signingKey) < minSigningKeyLength {
		return nil, ErrSigningKeyTooShort
	}

	settings := jwtSettings{
		headerName:   "Authorization",
		bearerPrefix: true,
	}
	for _, opt := range opts {
		opt(&settings)
	}

	return &JWT[Data]{
		manager:      manager,
		signingKey:   []byte(signingKey),
		headerName:   settings.headerName,
		bearerPrefix: settings.bearerPrefix,
		issuer:       settings.issuer,
		audience:     settings.audience,
	}, nil
}

// Login creates a session for the pre-verified identity payload and returns
// a signed token, also set on the response header. On store failure no token
// is issued.
func (t *JWT[Data]) Login(w http.ResponseWriter, r *http.Request, data Data) (session.Session[Data], string, error) {
	sess, err := t.manager.Create(r.Context(), data)
	if err != nil {
		metrics.BackendErrors.Inc()
		return session.Session[Data]{}, "", err
	}

	now := time.Now()
	claims := sessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.New().String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(t.manager.TTL())),
			Issuer:    t.issuer,
		},
		SessionID: sess.ID,
	}
	if t.audience != "" {
		claims.Audience = jwt.ClaimStrings{t.audience}
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.signingKey)
	if err != nil {
		_ = t.manager.Destroy(r.Context(), sess.ID)
		return session.Session[Data]{}, "", errors.Join(session.ErrCreationFailed, err)
	}

	headerValue := token
	if t.bearerPrefix {
		headerValue = "Bearer " + token
	}
	w.Header().Set(t.headerName, headerValue)

	metrics.SessionsCreated.Inc()
	return sess, token, nil
}

// Validate classifies the request per the token it carries, mirroring the
// cookie transport's decision table: missing header is anonymous, a bad
// signature or unknown session is invalid, and only a live store record
// authenticates.
func (t *JWT[Data]) Validate(r *http.Request) (Outcome[Data], error) {
	id, err := t.extract(r)
	if err != nil {
		if errors.Is(err, errNoToken) {
			metrics.ValidationsTotal.WithLabelValues(StateAnonymous.String()).Inc()
			return Outcome[Data]{State: StateAnonymous}, nil
		}
		metrics.ValidationsTotal.WithLabelValues(StateInvalid.String()).Inc()
		return Outcome[Data]{State: StateInvalid}, nil
	}

	sess, found, err := t.manager.Get(r.Context(), id)
	if err != nil {
		metrics.ValidationsTotal.WithLabelValues("error").Inc()
		metrics.BackendErrors.Inc()
		return Outcome[Data]{}, err
	}
	if !found {
		metrics.ValidationsTotal.WithLabelValues(StateInvalid.String()).Inc()
		return Outcome[Data]{State: StateInvalid}, nil
	}

	metrics.ValidationsTotal.WithLabelValues(StateAuthenticated.String()).Inc()
	return Outcome[Data]{State: StateAuthenticated, Session: sess}, nil
}

// Logout destroys the session referenced by the request's token. Invalid or
// absent tokens are a no-op: there is nothing server-side to destroy.
func (t *JWT[Data]) Logout(w http.ResponseWriter, r *http.Request) error {
	w.Header().Del(t.headerName)

	id, err := t.extract(r)
	if err != nil {
		return nil
	}

	if err := t.manager.Destroy(r.Context(), id); err != nil {
		metrics.BackendErrors.Inc()
		return err
	}

	metrics.SessionsDestroyed.Inc()
	return nil
}

// extract parses and verifies the token, returning the session id it carries.
func (t *JWT[Data]) extract(r *http.Request) (string, error) {
	header := r.Header.Get(t.headerName)
	if header == "" {
		return "", errNoToken
	}

	tokenString := header
	if t.bearerPrefix {
		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			return "", errInvalidToken
		}
		tokenString = parts[1]
	}
	if tokenString == "" {
		return "", errNoToken
	}

	var claims sessionClaims
	_, err := jwt.ParseWithClaims(tokenString, &claims,
		func(*jwt.Token) (any, error) { return t.signingKey, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	)
	if err != nil {
		return "", errInvalidToken
	}

	if claims.SessionID == "" {
		return "", errInvalidToken
	}

	return claims.SessionID, nil
}
