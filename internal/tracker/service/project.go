package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/tasktab/tasktab/internal/tracker/domain"
	"github.com/tasktab/tasktab/internal/tracker/store"
	"github.com/tasktab/tasktab/pkg/slogx"
)

// ProjectService serves the protected resource reads. Scoping is always by
// the owning user id taken from the caller's session snapshot.
type ProjectService struct {
	Store store.Store
}

// ListForUser returns the user's projects with their tasks attached, oldest
// first. A user with no projects gets an empty slice, not nil.
func (s *ProjectService) ListForUser(ctx context.Context, userID string) ([]domain.Project, error) {
	log := slogx.FromContext(ctx)

	projects, err := s.Store.Projects().ListProjectsByUser(ctx, userID)
	if err != nil {
		log.Error("failed to list projects", slog.String("user_id", userID), slog.Any("error", err))
		return nil, fmt.Errorf("listing projects: %w", err)
	}

	for i := range projects {
		tasks, err := s.Store.Tasks().ListTasksByProject(ctx, projects[i].ID)
		if err != nil {
			log.Error("failed to list tasks",
				slog.String("project_id", projects[i].ID),
				slog.Any("error", err),
			)
			return nil, fmt.Errorf("listing tasks: %w", err)
		}
		projects[i].Tasks = tasks
	}

	return projects, nil
}
