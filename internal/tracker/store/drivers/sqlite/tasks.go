package sqlite

import (
	"context"
	"database/sql"

	"github.com/tasktab/tasktab/internal/tracker/domain"
)

type tasksRepo struct {
	q querier
}

func (r *tasksRepo) CreateTask(ctx context.Context, t domain.Task) error {
	_, err := r.q.ExecContext(ctx, `
		INSERT INTO tasks (id, project_id, title, description, completed, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		t.ID, t.ProjectID, t.Title, mapStringNull(t.Description), t.Completed,
		t.CreatedAt, t.UpdatedAt,
	)
	if err != nil {
		return mapConflict(err)
	}
	return nil
}

func (r *tasksRepo) ListTasksByProject(ctx context.Context, projectID string) ([]domain.Task, error) {
	rows, err := r.q.QueryContext(ctx, `
		SELECT id, project_id, title, description, completed, created_at, updated_at
		FROM tasks WHERE project_id = ? ORDER BY created_at, id`,
		projectID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tasks := make([]domain.Task, 0)
	for rows.Next() {
		var (
			t    domain.Task
			desc sql.NullString
		)
		if err := rows.Scan(
			&t.ID, &t.ProjectID, &t.Title, &desc, &t.Completed,
			&t.CreatedAt, &t.UpdatedAt,
		); err != nil {
			return nil, err
		}
		t.Description = mapNullString(desc)
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}
