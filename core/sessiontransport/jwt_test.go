package sessiontransport_test

import (
	"net/http/httptest"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/sessionguard/core/cache"
	"github.com/dmitrymomot/sessionguard/core/session"
	"github.com/dmitrymomot/sessionguard/core/sessiontransport"
)

const testSigningKey = "jwt-signing-key-32-characters!!!"

func newJWTTransport(t *testing.T, opts ...sessiontransport.JWTTransportOption) (*sessiontransport.JWT[identity], *miniredis.Miniredis) {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() {
		_ = client.Close()
		mr.Close()
	})

	store := session.NewCacheStore[identity](cache.NewRedis(client))
	manager := session.NewManager(store)

	transport, err := sessiontransport.NewJWT(manager, testSigningKey, opts...)
	require.NoError(t, err)

	return transport, mr
}

func TestNewJWT(t *testing.T) {
	t.Run("short signing key rejected", func(t *testing.T) {
		mr, err := miniredis.Run()
		require.NoError(t, err)
		t.Cleanup(mr.Close)

		client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
		t.Cleanup(func() { _ = client.Close() })

		manager := session.NewManager(session.NewCacheStore[identity](cache.NewRedis(client)))

		_, err = sessiontransport.NewJWT(manager, "short")
		assert.ErrorIs(t, err, sessiontransport.ErrSigningKeyTooShort)
	})
}

func TestJWT_LoginValidate(t *testing.T) {
	t.Run("issued token authenticates", func(t *testing.T) {
		transport, _ := newJWTTransport(t)

		w := httptest.NewRecorder()
		sess, token, err := transport.Login(w, httptest.NewRequest("POST", "/login", nil), identity{Username: "alice"})
		require.NoError(t, err)
		require.NotEmpty(t, token)
		assert.Equal(t, "Bearer "+token, w.Header().Get("Authorization"))

		r := httptest.NewRequest("GET", "/", nil)
		r.Header.Set("Authorization", "Bearer "+token)

		outcome, err := transport.Validate(r)
		require.NoError(t, err)
		assert.Equal(t, sessiontransport.StateAuthenticated, outcome.State)
		assert.Equal(t, sess.ID, outcome.Session.ID)
		assert.Equal(t, "alice", outcome.Session.Data.Username)
	})

	t.Run("missing header is anonymous", func(t *testing.T) {
		transport, _ := newJWTTransport(t)

		outcome, err := transport.Validate(httptest.NewRequest("GET", "/", nil))
		require.NoError(t, err)
		assert.Equal(t, sessiontransport.StateAnonymous, outcome.State)
	})

	t.Run("tampered token is invalid", func(t *testing.T) {
		transport, _ := newJWTTransport(t)

		w := httptest.NewRecorder()
		_, token, err := transport.Login(w, httptest.NewRequest("POST", "/login", nil), identity{Username: "alice"})
		require.NoError(t, err)

		tampered := []byte(token)
		tampered[len(tampered)-1] ^= 0x01

		r := httptest.NewRequest("GET", "/", nil)
		r.Header.Set("Authorization", "Bearer "+string(tampered))

		outcome, err := transport.Validate(r)
		require.NoError(t, err)
		assert.Equal(t, sessiontransport.StateInvalid, outcome.State)
	})

	t.Run("malformed bearer header is invalid", func(t *testing.T) {
		transport, _ := newJWTTransport(t)

		r := httptest.NewRequest("GET", "/", nil)
		r.Header.Set("Authorization", "Basic dXNlcjpwYXNz")

		outcome, err := transport.Validate(r)
		require.NoError(t, err)
		assert.Equal(t, sessiontransport.StateInvalid, outcome.State)
	})

	t.Run("valid token for dropped session is invalid", func(t *testing.T) {
		transport, mr := newJWTTransport(t)

		w := httptest.NewRecorder()
		sess, token, err := transport.Login(w, httptest.NewRequest("POST", "/login", nil), identity{Username: "alice"})
		require.NoError(t, err)

		mr.Del("sessions:" + sess.ID)

		r := httptest.NewRequest("GET", "/", nil)
		r.Header.Set("Authorization", "Bearer "+token)

		outcome, err := transport.Validate(r)
		require.NoError(t, err)
		assert.Equal(t, sessiontransport.StateInvalid, outcome.State)
	})

	t.Run("backend outage is an error", func(t *testing.T) {
		transport, mr := newJWTTransport(t)

		w := httptest.NewRecorder()
		_, token, err := transport.Login(w, httptest.NewRequest("POST", "/login", nil), identity{Username: "alice"})
		require.NoError(t, err)

		mr.Close()

		r := httptest.NewRequest("GET", "/", nil)
		r.Header.Set("Authorization", "Bearer "+token)

		_, err = transport.Validate(r)
		assert.ErrorIs(t, err, session.ErrBackendUnavailable)
	})
}

func TestJWT_Logout(t *testing.T) {
	t.Run("logout revokes the token immediately", func(t *testing.T) {
		transport, _ := newJWTTransport(t)

		w := httptest.NewRecorder()
		_, token, err := transport.Login(w, httptest.NewRequest("POST", "/login", nil), identity{Username: "alice"})
		require.NoError(t, err)

		logoutR := httptest.NewRequest("POST", "/logout", nil)
		logoutR.Header.Set("Authorization", "Bearer "+token)
		require.NoError(t, transport.Logout(httptest.NewRecorder(), logoutR))

		r := httptest.NewRequest("GET", "/", nil)
		r.Header.Set("Authorization", "Bearer "+token)

		outcome, err := transport.Validate(r)
		require.NoError(t, err)
		assert.Equal(t, sessiontransport.StateInvalid, outcome.State)
	})

	t.Run("logout without token is a no-op", func(t *testing.T) {
		transport, _ := newJWTTransport(t)
		assert.NoError(t, transport.Logout(httptest.NewRecorder(), httptest.NewRequest("POST", "/logout", nil)))
	})
}

func TestJWT_CustomHeader(t *testing.T) {
	transport, _ := newJWTTransport(t,
		sessiontransport.WithJWTHeaderName("X-Session-Token"),
		sessiontransport.WithJWTBearerPrefix(false),
	)

	w := httptest.NewRecorder()
	_, token, err := transport.Login(w, httptest.NewRequest("POST", "/login", nil), identity{Username: "alice"})
	require.NoError(t, err)
	assert.Equal(t, token, w.Header().Get("X-Session-Token"))

	r := httptest.NewRequest("GET", "/", nil)
	r.Header.Set("X-Session-Token", token)

	outcome, err := transport.Validate(r)
	require.NoError(t, err)
	assert.Equal(t, sessiontransport.StateAuthenticated, outcome.State)
}
