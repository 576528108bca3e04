package domain

import "time"

type Project struct {
	ID          string
	UserID      string // owning user, cascade-deleted with them
	Title       string
	Description string
	Status      string // defaults to "active"
	DueDate     *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// Tasks is populated by the listing service, not by the projects repo.
	Tasks []Task
}

type Task struct {
	ID          string
	ProjectID   string // owning project, cascade-deleted with it
	Title       string
	Description string
	Completed   bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
