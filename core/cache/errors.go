package cache

import "errors"

var (
	// ErrUnavailable indicates the backend connection failed. Wrapped by all
	// operation errors that stem from connectivity rather than key state.
	ErrUnavailable = errors.New("cache: backend unavailable")

	// ErrEmptyConnectionURL is returned when no connection URL is provided.
	ErrEmptyConnectionURL = errors.New("cache: empty connection URL")

	// ErrFailedToParseConnString is returned when the connection URL is malformed.
	ErrFailedToParseConnString = errors.New("cache: failed to parse connection string")

	// ErrNotReady is returned when the backend does not become reachable
	// within the configured retry budget.
	ErrNotReady = errors.New("cache: backend not ready")

	// ErrHealthcheckFailed is returned when a health check ping fails.
	ErrHealthcheckFailed = errors.New("cache: healthcheck failed")
)
