package store

import (
	"context"
	"errors"

	"github.com/tasktab/tasktab/internal/tracker/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite today)
// implement this. It exposes sub-repositories to keep concerns tidy and
// testable.
type Store interface {
	Users() Users
	Projects() Projects
	Tasks() Tasks

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes a function within a transaction. If fn returns an
	// error the transaction is rolled back, otherwise it is committed.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Users interface {
	// CreateUser inserts a new user (id is provided by app via ULID).
	// Returns ErrAlreadyExists if the email is already registered; the
	// unique constraint on email is the authoritative duplicate guard.
	CreateUser(ctx context.Context, u domain.User) error

	// GetUserByEmail is used during login and the registration pre-check.
	GetUserByEmail(ctx context.Context, email string) (domain.User, error)

	// GetUserByID returns a user by id.
	GetUserByID(ctx context.Context, id string) (domain.User, error)

	// DeleteUser cascades to projects and their tasks (per schema).
	DeleteUser(ctx context.Context, userID string) error
}

type Projects interface {
	// CreateProject inserts a new project owned by a user.
	CreateProject(ctx context.Context, p domain.Project) error

	// ListProjectsByUser returns the projects owned by a user, oldest first.
	// Tasks are not attached here.
	ListProjectsByUser(ctx context.Context, userID string) ([]domain.Project, error)

	// DeleteProject cascades to tasks (per schema).
	DeleteProject(ctx context.Context, projectID string) error
}

type Tasks interface {
	// CreateTask inserts a new task under a project.
	CreateTask(ctx context.Context, t domain.Task) error

	// ListTasksByProject returns the tasks of a project, oldest first.
	ListTasksByProject(ctx context.Context, projectID string) ([]domain.Task, error)
}
