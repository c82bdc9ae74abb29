// Package middleware provides net/http middleware wiring the session layer
// into a request pipeline: an authentication gate around a session transport,
// request ID assignment, and structured request logging.
//
// The auth gate supports two modes. Try validates the request and stores the
// outcome in the request context without ever blocking, so pages that render
// differently for guests and users read the outcome downstream. Required
// additionally rejects unauthenticated requests by redirecting them to the
// configured entry point, optionally preserving the original path in a query
// parameter for the post-login redirect.
//
//	transport := sessiontransport.NewCookie(manager, cookies)
//
//	mux.Handle("/", middleware.Auth(transport)(homeHandler))
//	mux.Handle("/private", middleware.AuthWithConfig(transport, middleware.AuthConfig{
//		Mode:       middleware.ModeRequired,
//		RedirectTo: "/login",
//		NextParam:  "redirect",
//	})(privateHandler))
//
//	func homeHandler(w http.ResponseWriter, r *http.Request) {
//		if outcome, ok := middleware.OutcomeFromContext[Profile](r.Context()); ok && outcome.IsAuthenticated() {
//			// render for outcome.Session.Data
//		}
//	}
package middleware
