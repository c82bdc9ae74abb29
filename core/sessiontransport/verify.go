package sessiontransport

import (
	"context"
	"net/http"

	"github.com/dmitrymomot/sessionguard/core/session"
)

// VerifyFunc is the externally supplied credential predicate. It checks creds
// against whatever identity source the application uses and, on success,
// returns the payload to store in the session. This module never embeds a
// credential check of its own.
type VerifyFunc[Creds, Data any] func(ctx context.Context, creds Creds) (Data, bool)

// Authenticate runs the credential predicate and, on success, logs the
// identity in through the cookie transport. Returns ok=false without error
// when the credentials are rejected; bad credentials are an expected outcome,
// not a failure.
func Authenticate[Creds, Data any](
	w http.ResponseWriter,
	r *http.Request,
	transport *Cookie[Data],
	creds Creds,
	verify VerifyFunc[Creds, Data],
) (session.Session[Data], bool, error) {
	data, ok := verify(r.Context(), creds)
	if !ok {
		return session.Session[Data]{}, false, nil
	}

	sess, err := transport.Login(w, r, data)
	if err != nil {
		return session.Session[Data]{}, false, err
	}

	return sess, true, nil
}
