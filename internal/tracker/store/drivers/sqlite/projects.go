package sqlite

import (
	"context"
	"database/sql"

	"github.com/tasktab/tasktab/internal/tracker/domain"
)

type projectsRepo struct {
	q querier
}

func (r *projectsRepo) CreateProject(ctx context.Context, p domain.Project) error {
	_, err := r.q.ExecContext(ctx, `
		INSERT INTO projects (id, user_id, title, description, status, due_date, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		p.ID, p.UserID, p.Title, mapStringNull(p.Description), p.Status,
		mapOptionalTime(p.DueDate), p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		return mapConflict(err)
	}
	return nil
}

func (r *projectsRepo) ListProjectsByUser(ctx context.Context, userID string) ([]domain.Project, error) {
	rows, err := r.q.QueryContext(ctx, `
		SELECT id, user_id, title, description, status, due_date, created_at, updated_at
		FROM projects WHERE user_id = ? ORDER BY created_at, id`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	projects := make([]domain.Project, 0)
	for rows.Next() {
		var (
			p       domain.Project
			desc    sql.NullString
			dueDate sql.NullTime
		)
		if err := rows.Scan(
			&p.ID, &p.UserID, &p.Title, &desc, &p.Status,
			&dueDate, &p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, err
		}
		p.Description = mapNullString(desc)
		p.DueDate = mapNullTimePtr(dueDate)
		projects = append(projects, p)
	}
	return projects, rows.Err()
}

func (r *projectsRepo) DeleteProject(ctx context.Context, projectID string) error {
	_, err := r.q.ExecContext(ctx, `DELETE FROM projects WHERE id = ?`, projectID)
	return err
}
