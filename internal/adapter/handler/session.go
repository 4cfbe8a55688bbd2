package handler

import (
	"context"
	"net/http"

	"github.com/srgjo27/epic_events/internal/core/services"
)

const SessionCookie = "epic_session"

type sessionKey struct{}

// Sessions attaches the visitor's page session to the request context,
// starting a new one when the cookie is missing or points at an expired
// session.
func Sessions(manager *services.SessionManager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var raw string
			if c, err := r.Cookie(SessionCookie); err == nil {
				raw = c.Value
			}

			session, created := manager.Resolve(raw)
			if created {
				http.SetCookie(w, &http.Cookie{
					Name:     SessionCookie,
					Value:    session.ID.String(),
					Path:     "/",
					HttpOnly: true,
					SameSite: http.SameSiteLaxMode,
				})
			}

			ctx := context.WithValue(r.Context(), sessionKey{}, session)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func SessionFrom(ctx context.Context) *services.Session {
	s, _ := ctx.Value(sessionKey{}).(*services.Session)
	return s
}
