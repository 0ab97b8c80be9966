package server

import (
	"context"
	"net/http"

	"github.com/denimatfire/warm-corporate-canvas/blog"
)

// SessionMiddleware resolves the session cookie into a user and
// attaches it to the request context. Requests without a valid session
// carry the anonymous user.
func (a *App) SessionMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(rw http.ResponseWriter, req *http.Request) {
		user := blog.AnonymousUser()

		session, err := a.Sessions.Get(req, SessionName)
		if err == nil && !session.IsNew {
			id, _ := session.Values["user_id"].(string)
			username, _ := session.Values["username"].(string)
			role, _ := session.Values["role"].(string)
			if id != "" {
				user = &blog.User{
					ID:       id,
					Username: username,
					Role:     blog.Role(role),
				}
			}
		}

		ctx := context.WithValue(req.Context(), blog.UserKey, user)
		next.ServeHTTP(rw, req.WithContext(ctx))
	})
}
