package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/tasktab/tasktab/internal/tracker/service"
	"github.com/tasktab/tasktab/pkg/httpx"
	"github.com/tasktab/tasktab/pkg/slogx"
)

type RegisterHandler struct {
	AuthService *service.AuthService
}

type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ServeHTTP handles POST /api/register. All three fields are required;
// a duplicate email is a 400 regardless of whether the pre-check or the
// unique constraint caught it.
func (h *RegisterHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteJSON(w, http.StatusBadRequest, errorResponse{Error: "All fields are required."})
		return
	}

	err := h.AuthService.Register(ctx, req.Username, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMissingFields):
			httpx.WriteJSON(w, http.StatusBadRequest, errorResponse{Error: "All fields are required."})
		case errors.Is(err, service.ErrEmailTaken):
			httpx.WriteJSON(w, http.StatusBadRequest, errorResponse{Error: "Email already exists."})
		default:
			log.Error("registration failed", "err", err)
			httpx.WriteJSON(w, http.StatusInternalServerError, errorResponse{
				Error: "Server error during registration.",
			})
		}
		return
	}

	httpx.WriteJSON(w, http.StatusOK, messageResponse{Message: "User registered successfully."})
}
