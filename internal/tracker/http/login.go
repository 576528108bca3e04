package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/tasktab/tasktab/internal/tracker/service"
	"github.com/tasktab/tasktab/pkg/httpx"
	"github.com/tasktab/tasktab/pkg/slogx"
)

type LoginHandler struct {
	AuthService *service.AuthService
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ServeHTTP handles POST /api/login. The two 401 variants are deliberate:
// "Invalid email." for an unknown email, "Incorrect password." for a bad
// password.
func (h *LoginHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteJSON(w, http.StatusUnauthorized, errorResponse{Error: "Invalid email."})
		return
	}

	sess, err := h.AuthService.Login(ctx, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidEmail):
			httpx.WriteJSON(w, http.StatusUnauthorized, errorResponse{Error: "Invalid email."})
		case errors.Is(err, service.ErrIncorrectPassword):
			httpx.WriteJSON(w, http.StatusUnauthorized, errorResponse{Error: "Incorrect password."})
		default:
			log.Error("login failed", "err", err)
			httpx.WriteJSON(w, http.StatusInternalServerError, errorResponse{
				Error: "Server error during login.",
			})
		}
		return
	}

	setSessionCookie(w, sess.Token, time.Until(sess.ExpiresAt))
	httpx.WriteJSON(w, http.StatusOK, messageResponse{Message: "Login successful."})
}

func setSessionCookie(w http.ResponseWriter, token string, ttl time.Duration) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(ttl.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
