package http

import (
	"net/http"

	"github.com/tasktab/tasktab/internal/tracker/service"
	"github.com/tasktab/tasktab/pkg/httpx"
	"github.com/tasktab/tasktab/pkg/slogx"
)

type ProjectsHandler struct {
	ProjectService *service.ProjectService
}

// ServeHTTP handles GET /api/projects. Runs behind RequireSession; the query
// is scoped to the session user's id, so no project belonging to another
// user can ever appear in the response.
func (h *ProjectsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	user, ok := SessionUserFromContext(ctx)
	if !ok {
		writeUnauthorized(w)
		return
	}

	projects, err := h.ProjectService.ListForUser(ctx, user.ID)
	if err != nil {
		log.Error("failed to fetch projects", "user_id", user.ID, "err", err)
		httpx.WriteJSON(w, http.StatusInternalServerError, errorResponse{
			Error: "Could not fetch projects.",
		})
		return
	}

	out := make([]projectResponse, 0, len(projects))
	for _, p := range projects {
		out = append(out, toProjectResponse(p))
	}

	httpx.WriteJSON(w, http.StatusOK, out)
}
