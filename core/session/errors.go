package session

import "errors"

var (
	// ErrBackendUnavailable indicates the cache backend could not be reached.
	// Distinct from "not found" so callers can fail open or closed explicitly.
	ErrBackendUnavailable = errors.New("session: backend unavailable")

	// ErrCreationFailed is returned when persisting a new session fails
	// during login. No cookie must be issued in this case.
	ErrCreationFailed = errors.New("session: creation failed")

	// ErrDestructionFailed is returned when removing a session fails during
	// logout. The client-side cookie should still be cleared.
	ErrDestructionFailed = errors.New("session: destruction failed")

	// ErrIDGeneration is returned when the random identifier cannot be minted.
	ErrIDGeneration = errors.New("session: failed to generate id")

	// ErrCorruptedRecord is returned when a stored record cannot be decoded.
	ErrCorruptedRecord = errors.New("session: corrupted record")
)
