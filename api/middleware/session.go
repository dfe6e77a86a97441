package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/zaiqaeats/storefront/pkg/logger"
)

const sessionIDHeader = "X-Session-Id"

type sessionContextKey struct{}

// Session resolves the caller's storefront session. A browser that has not
// shopped before gets a fresh session id minted here; the header echoes it
// back so the client can persist it.
func Session(logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sessionID := r.Header.Get(sessionIDHeader)
			if sessionID == "" || uuid.Validate(sessionID) != nil {
				sessionID = uuid.NewString()
			}

			w.Header().Set(sessionIDHeader, sessionID)

			ctx := context.WithValue(r.Context(), sessionContextKey{}, sessionID)
			if logg != nil {
				ctx = logg.WithSessionID(ctx, sessionID)
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// SessionID returns the session established by the Session middleware, or ""
// when the middleware did not run.
func SessionID(ctx context.Context) string {
	if id, ok := ctx.Value(sessionContextKey{}).(string); ok {
		return id
	}
	return ""
}
