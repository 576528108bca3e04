package http

import (
	"net/http"

	"github.com/tasktab/tasktab/internal/tracker/service"
	"github.com/tasktab/tasktab/pkg/httpx"
	"github.com/tasktab/tasktab/pkg/slogx"
)

type LogoutHandler struct {
	AuthService *service.AuthService
}

// ServeHTTP handles POST /api/logout. Logout is idempotent: destroying an
// absent session still returns 200.
func (h *LogoutHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	if err := h.AuthService.Logout(ctx, sessionToken(r)); err != nil {
		// Best effort; the cookie is cleared either way.
		log.Warn("failed to destroy session", "err", err)
	}

	clearSessionCookie(w)
	httpx.WriteJSON(w, http.StatusOK, messageResponse{Message: "Logged out successfully."})
}
