package server

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/denimatfire/warm-corporate-canvas/blog"
)

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginHandler verifies the demo credential and opens a session.
func (a *App) LoginHandler(rw http.ResponseWriter, req *http.Request) {
	var creds loginRequest
	if err := json.NewDecoder(req.Body).Decode(&creds); err != nil {
		writeError(rw, http.StatusBadRequest, "malformed request body")
		return
	}

	user, err := a.Auth.Login(creds.Username, creds.Password)
	if err == blog.ErrIncorrectPassword {
		writeError(rw, http.StatusUnauthorized, err.Error())
		return
	}
	if err != nil {
		slog.Error("login failed", "error", err)
		writeError(rw, http.StatusInternalServerError, "login failed")
		return
	}

	session, err := a.Sessions.New(req, SessionName)
	if err != nil {
		slog.Error("failed to create session", "error", err)
		writeError(rw, http.StatusInternalServerError, "login failed")
		return
	}

	session.Values["user_id"] = user.ID
	session.Values["username"] = user.Username
	session.Values["role"] = string(user.Role)

	if err := a.Sessions.Save(req, rw, session); err != nil {
		slog.Error("failed to save session", "error", err)
		writeError(rw, http.StatusInternalServerError, "login failed")
		return
	}

	slog.Info("user logged in", "username", user.Username)
	writeJSON(rw, http.StatusOK, user)
}

// LogoutHandler closes the current session.
func (a *App) LogoutHandler(rw http.ResponseWriter, req *http.Request) {
	session, err := a.Sessions.Get(req, SessionName)
	if err == nil {
		session.Options.MaxAge = -1
		if err := a.Sessions.Save(req, rw, session); err != nil {
			slog.Error("failed to expire session", "error", err)
		}
	}

	writeJSON(rw, http.StatusOK, map[string]bool{"success": true})
}

// MeHandler returns the authenticated user.
func (a *App) MeHandler(rw http.ResponseWriter, req *http.Request) {
	user := CurrentUser(req)
	if user.IsAnonymous() {
		writeError(rw, http.StatusUnauthorized, "not logged in")
		return
	}
	writeJSON(rw, http.StatusOK, user)
}

// RequireEditor guards mutating article routes. Anonymous requests get
// 401, authenticated users without edit rights get 403.
func (a *App) RequireEditor(next http.HandlerFunc) http.HandlerFunc {
	return func(rw http.ResponseWriter, req *http.Request) {
		user := CurrentUser(req)
		if user.IsAnonymous() {
			writeError(rw, http.StatusUnauthorized, "login required")
			return
		}
		if !user.CanEdit() {
			writeError(rw, http.StatusForbidden, blog.ErrForbidden.Error())
			return
		}
		next(rw, req)
	}
}
