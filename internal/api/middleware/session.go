package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

type sessionContextKey string

// SessionKey holds the session id in the request context.
const SessionKey = sessionContextKey("session_id")

const sessionCookie = "forge_session_id"

const sessionMaxAge = 60 * 60 * 48 // two days

// Session assigns each visitor a uuid session cookie. The cart registry keys
// carts by this id; losing the cookie means losing the cart, which matches
// the non-persistent session model.
func Session(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {

		var sessionID string

		cookie, err := r.Cookie(sessionCookie)
		if err == nil && cookie.Value != "" {
			sessionID = cookie.Value
		} else {
			sessionID = uuid.NewString()

			http.SetCookie(w, &http.Cookie{
				Name:     sessionCookie,
				Value:    sessionID,
				MaxAge:   sessionMaxAge,
				HttpOnly: true,
				Path:     "/",
			})
		}

		ctx := context.WithValue(r.Context(), SessionKey, sessionID)

		next.ServeHTTP(w, r.WithContext(ctx))

	})
}

// SessionFromContext returns the session id set by Session, or "" when the
// middleware did not run.
func SessionFromContext(ctx context.Context) string {
	if sessionID, ok := ctx.Value(SessionKey).(string); ok {
		return sessionID
	}

	return ""
}
