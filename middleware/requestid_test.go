package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/sessionguard/middleware"
)

func TestRequestID(t *testing.T) {
	t.Run("assigns uuid and exposes it in context and header", func(t *testing.T) {
		var fromCtx string
		handler := middleware.RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id, ok := middleware.RequestIDFromContext(r.Context())
			require.True(t, ok)
			fromCtx = id
		}))

		w := httptest.NewRecorder()
		handler.ServeHTTP(w, httptest.NewRequest("GET", "/", nil))

		assert.NotEmpty(t, fromCtx)
		assert.Equal(t, fromCtx, w.Header().Get("X-Request-ID"))
		_, err := uuid.Parse(fromCtx)
		assert.NoError(t, err)
	})

	t.Run("generates distinct ids per request", func(t *testing.T) {
		seen := make(map[string]struct{})
		handler := middleware.RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id, _ := middleware.RequestIDFromContext(r.Context())
			seen[id] = struct{}{}
		}))

		for i := 0; i < 10; i++ {
			handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/", nil))
		}

		assert.Len(t, seen, 10)
	})

	t.Run("ignores incoming header by default", func(t *testing.T) {
		var fromCtx string
		handler := middleware.RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			fromCtx, _ = middleware.RequestIDFromContext(r.Context())
		}))

		r := httptest.NewRequest("GET", "/", nil)
		r.Header.Set("X-Request-ID", "client-supplied")
		handler.ServeHTTP(httptest.NewRecorder(), r)

		assert.NotEqual(t, "client-supplied", fromCtx)
	})

	t.Run("reuses incoming header when UseExisting", func(t *testing.T) {
		var fromCtx string
		handler := middleware.RequestIDWithConfig(middleware.RequestIDConfig{UseExisting: true})(
			http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				fromCtx, _ = middleware.RequestIDFromContext(r.Context())
			}))

		r := httptest.NewRequest("GET", "/", nil)
		r.Header.Set("X-Request-ID", "upstream-id")

		w := httptest.NewRecorder()
		handler.ServeHTTP(w, r)

		assert.Equal(t, "upstream-id", fromCtx)
		assert.Equal(t, "upstream-id", w.Header().Get("X-Request-ID"))
	})

	t.Run("custom header and generator", func(t *testing.T) {
		handler := middleware.RequestIDWithConfig(middleware.RequestIDConfig{
			HeaderName: "X-Trace-ID",
			Generator:  func() string { return "fixed" },
		})(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))

		w := httptest.NewRecorder()
		handler.ServeHTTP(w, httptest.NewRequest("GET", "/", nil))

		assert.Equal(t, "fixed", w.Header().Get("X-Trace-ID"))
	})

	t.Run("missing from context without middleware", func(t *testing.T) {
		r := httptest.NewRequest("GET", "/", nil)
		_, ok := middleware.RequestIDFromContext(r.Context())
		assert.False(t, ok)
	})
}
