package sqlite

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/tasktab/tasktab/internal/tracker/domain"
	"github.com/tasktab/tasktab/internal/tracker/store"
	"github.com/tasktab/tasktab/pkg/idx"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	s, err := NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	require.NoError(t, s.ApplyMigrations())
	return s
}

func newTestUser(email string) domain.User {
	now := time.Now().UTC()
	return domain.User{
		ID:           idx.New().String(),
		Username:     "alice",
		Email:        email,
		PasswordHash: "$argon2id$v=19$m=19456,t=2,p=1$c2FsdA$aGFzaA",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func newTestProject(userID, title string) domain.Project {
	now := time.Now().UTC()
	return domain.Project{
		ID:        idx.New().String(),
		UserID:    userID,
		Title:     title,
		Status:    "active",
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func newTestTask(projectID, title string) domain.Task {
	now := time.Now().UTC()
	return domain.Task{
		ID:        idx.New().String(),
		ProjectID: projectID,
		Title:     title,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestUsers_CreateAndGet(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	user := newTestUser("a@x.com")
	require.NoError(t, s.Users().CreateUser(ctx, user))

	byEmail, err := s.Users().GetUserByEmail(ctx, "a@x.com")
	require.NoError(t, err)
	require.Equal(t, user.ID, byEmail.ID)
	require.Equal(t, user.PasswordHash, byEmail.PasswordHash)

	byID, err := s.Users().GetUserByID(ctx, user.ID)
	require.NoError(t, err)
	require.Equal(t, user.Email, byID.Email)
}

func TestUsers_NotFound(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	_, err := s.Users().GetUserByEmail(ctx, "missing@x.com")
	require.ErrorIs(t, err, store.ErrNotFound)

	_, err = s.Users().GetUserByID(ctx, idx.New().String())
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestUsers_EmailUniqueConstraint(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	require.NoError(t, s.Users().CreateUser(ctx, newTestUser("a@x.com")))

	// Same email, fresh id: the unique index is the authoritative guard.
	err := s.Users().CreateUser(ctx, newTestUser("a@x.com"))
	require.ErrorIs(t, err, store.ErrAlreadyExists)

	// Email lookup is byte-for-byte, so a different casing is a new user.
	require.NoError(t, s.Users().CreateUser(ctx, newTestUser("A@x.com")))
}

func TestUsers_DeleteCascades(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	user := newTestUser("a@x.com")
	require.NoError(t, s.Users().CreateUser(ctx, user))

	project := newTestProject(user.ID, "Renovation")
	require.NoError(t, s.Projects().CreateProject(ctx, project))
	require.NoError(t, s.Tasks().CreateTask(ctx, newTestTask(project.ID, "Paint walls")))
	require.NoError(t, s.Tasks().CreateTask(ctx, newTestTask(project.ID, "Fix door")))

	require.NoError(t, s.Users().DeleteUser(ctx, user.ID))

	projects, err := s.Projects().ListProjectsByUser(ctx, user.ID)
	require.NoError(t, err)
	require.Empty(t, projects, "deleting a user should cascade to their projects")

	tasks, err := s.Tasks().ListTasksByProject(ctx, project.ID)
	require.NoError(t, err)
	require.Empty(t, tasks, "deleting a user should cascade through projects to tasks")
}

func TestProjects_DeleteCascadesToTasks(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	user := newTestUser("a@x.com")
	require.NoError(t, s.Users().CreateUser(ctx, user))

	project := newTestProject(user.ID, "Renovation")
	require.NoError(t, s.Projects().CreateProject(ctx, project))
	require.NoError(t, s.Tasks().CreateTask(ctx, newTestTask(project.ID, "Paint walls")))

	require.NoError(t, s.Projects().DeleteProject(ctx, project.ID))

	tasks, err := s.Tasks().ListTasksByProject(ctx, project.ID)
	require.NoError(t, err)
	require.Empty(t, tasks)
}

func TestProjects_ListIsScopedToUser(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	alice := newTestUser("a@x.com")
	bob := newTestUser("b@x.com")
	require.NoError(t, s.Users().CreateUser(ctx, alice))
	require.NoError(t, s.Users().CreateUser(ctx, bob))

	require.NoError(t, s.Projects().CreateProject(ctx, newTestProject(alice.ID, "Alice project")))
	require.NoError(t, s.Projects().CreateProject(ctx, newTestProject(bob.ID, "Bob project")))

	aliceProjects, err := s.Projects().ListProjectsByUser(ctx, alice.ID)
	require.NoError(t, err)
	require.Len(t, aliceProjects, 1)
	require.Equal(t, "Alice project", aliceProjects[0].Title)
	require.Equal(t, alice.ID, aliceProjects[0].UserID)
}

func TestProjects_NullableFields(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	user := newTestUser("a@x.com")
	require.NoError(t, s.Users().CreateUser(ctx, user))

	due := time.Now().UTC().Add(48 * time.Hour).Truncate(time.Second)
	withDue := newTestProject(user.ID, "With due date")
	withDue.Description = "kitchen first"
	withDue.DueDate = &due
	require.NoError(t, s.Projects().CreateProject(ctx, withDue))

	bare := newTestProject(user.ID, "Bare")
	require.NoError(t, s.Projects().CreateProject(ctx, bare))

	projects, err := s.Projects().ListProjectsByUser(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, projects, 2)

	require.Equal(t, "kitchen first", projects[0].Description)
	require.NotNil(t, projects[0].DueDate)
	require.True(t, projects[0].DueDate.Equal(due))

	require.Empty(t, projects[1].Description)
	require.Nil(t, projects[1].DueDate)
}

func TestTasks_ForeignKeyEnforced(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	err := s.Tasks().CreateTask(ctx, newTestTask(idx.New().String(), "Orphan"))
	require.Error(t, err, "a task must reference an existing project")
}

func TestWithTx_RollsBackOnError(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	sentinel := errors.New("boom")
	err := s.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Users().CreateUser(ctx, newTestUser("a@x.com")); err != nil {
			return err
		}
		return sentinel
	})
	require.ErrorIs(t, err, sentinel)

	_, err = s.Users().GetUserByEmail(ctx, "a@x.com")
	require.ErrorIs(t, err, store.ErrNotFound, "insert should have been rolled back")
}

func TestWithTx_CommitsOnSuccess(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	err := s.WithTx(ctx, func(tx store.Tx) error {
		return tx.Users().CreateUser(ctx, newTestUser("a@x.com"))
	})
	require.NoError(t, err)

	_, err = s.Users().GetUserByEmail(ctx, "a@x.com")
	require.NoError(t, err)
}
