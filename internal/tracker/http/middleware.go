package http

import (
	"context"
	"net/http"

	"github.com/tasktab/tasktab/internal/tracker/domain"
	"github.com/tasktab/tasktab/internal/tracker/session"
	"github.com/tasktab/tasktab/pkg/httpx"
)

// SessionCookieName is the cookie carrying the opaque session token.
const SessionCookieName = "tracker_session"

type ctxKey string

const ctxKeySessionUser ctxKey = "session_user"

// RequireSession gates a protected operation on the presence of a valid,
// non-expired session. On success the session's user snapshot is injected
// into the request context for scoping; on failure the protected handler
// never executes.
func RequireSession(sessions session.Store) httpx.Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := sessionToken(r)
			if token == "" {
				writeUnauthorized(w)
				return
			}

			sess, err := sessions.Get(r.Context(), token)
			if err != nil {
				// Absent and expired look the same to the caller.
				writeUnauthorized(w)
				return
			}

			ctx := context.WithValue(r.Context(), ctxKeySessionUser, sess.User)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// SessionUserFromContext returns the snapshot injected by RequireSession.
func SessionUserFromContext(ctx context.Context) (domain.SessionUser, bool) {
	user, ok := ctx.Value(ctxKeySessionUser).(domain.SessionUser)
	return user, ok
}

// sessionToken extracts the session token from the request cookie, or ""
// when the cookie is absent.
func sessionToken(r *http.Request) string {
	cookie, err := r.Cookie(SessionCookieName)
	if err != nil {
		return ""
	}
	return cookie.Value
}

func writeUnauthorized(w http.ResponseWriter) {
	httpx.WriteJSON(w, http.StatusUnauthorized, errorResponse{
		Error: "Unauthorized. Please log in.",
	})
}
