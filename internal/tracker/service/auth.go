package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/tasktab/tasktab/internal/tracker/domain"
	"github.com/tasktab/tasktab/internal/tracker/session"
	"github.com/tasktab/tasktab/internal/tracker/store"
	"github.com/tasktab/tasktab/pkg/cryptox"
	"github.com/tasktab/tasktab/pkg/idx"
	"github.com/tasktab/tasktab/pkg/slogx"
)

var (
	// ErrMissingFields: registration requires username, email and password.
	ErrMissingFields = errors.New("all fields are required")

	// ErrEmailTaken: another user already registered this email.
	ErrEmailTaken = errors.New("email already exists")

	// ErrInvalidEmail: no user is registered under this email. Kept distinct
	// from ErrIncorrectPassword, so the API discloses whether an email is
	// registered.
	ErrInvalidEmail = errors.New("invalid email")

	// ErrIncorrectPassword: the email exists but the password doesn't match.
	ErrIncorrectPassword = errors.New("incorrect password")
)

// AuthService implements registration, login, logout and session resolution.
type AuthService struct {
	Store      store.Store
	Sessions   session.Store
	SessionTTL time.Duration
}

// Register creates a new credential record. The uniqueness pre-check is an
// optimisation; the UNIQUE constraint on users.email is the authoritative
// guard, so a concurrent duplicate racing past the check still surfaces as
// ErrEmailTaken.
func (s *AuthService) Register(ctx context.Context, username, email, password string) error {
	log := slogx.FromContext(ctx)

	if username == "" || email == "" || password == "" {
		return ErrMissingFields
	}

	_, err := s.Store.Users().GetUserByEmail(ctx, email)
	switch {
	case err == nil:
		return ErrEmailTaken
	case !errors.Is(err, store.ErrNotFound):
		log.Error("failed to check email uniqueness", slog.Any("error", err))
		return fmt.Errorf("checking email: %w", err)
	}

	hash, err := cryptox.HashPassword(password)
	if err != nil {
		log.Error("failed to hash password", slog.Any("error", err))
		return fmt.Errorf("hashing password: %w", err)
	}

	now := time.Now().UTC()
	user := domain.User{
		ID:           idx.New().String(),
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		return tx.Users().CreateUser(ctx, user)
	})
	if err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return ErrEmailTaken
		}
		log.Error("failed to create user", slog.String("user_id", user.ID), slog.Any("error", err))
		return fmt.Errorf("creating user: %w", err)
	}

	log.Info("user registered", slog.String("user_id", user.ID))
	return nil
}

// Login verifies credentials and issues a fresh session bound to a snapshot
// of {id, email, username} taken now. Each call creates a new session.
func (s *AuthService) Login(ctx context.Context, email, password string) (domain.Session, error) {
	log := slogx.FromContext(ctx)

	user, err := s.Store.Users().GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Session{}, ErrInvalidEmail
		}
		log.Error("failed to look up user", slog.Any("error", err))
		return domain.Session{}, fmt.Errorf("looking up user: %w", err)
	}

	if err := cryptox.VerifyPassword(password, user.PasswordHash); err != nil {
		if errors.Is(err, cryptox.ErrPasswordMismatch) {
			return domain.Session{}, ErrIncorrectPassword
		}
		// Malformed stored hash; not a credential failure.
		log.Error("failed to verify password", slog.String("user_id", user.ID), slog.Any("error", err))
		return domain.Session{}, fmt.Errorf("verifying password: %w", err)
	}

	snapshot := domain.SessionUser{
		ID:       user.ID,
		Email:    user.Email,
		Username: user.Username,
	}

	token, err := s.Sessions.Create(ctx, snapshot, s.SessionTTL)
	if err != nil {
		log.Error("failed to create session", slog.String("user_id", user.ID), slog.Any("error", err))
		return domain.Session{}, fmt.Errorf("creating session: %w", err)
	}

	sess, err := s.Sessions.Get(ctx, token)
	if err != nil {
		return domain.Session{}, fmt.Errorf("reading back session: %w", err)
	}

	log.Info("user logged in", slog.String("user_id", user.ID))
	return sess, nil
}

// Logout irrevocably destroys the session. Destroying an already-absent
// session is not an error.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	return s.Sessions.Delete(ctx, token)
}

// Resolve returns the session for a token, or session.ErrNotFound when the
// token is absent or expired. This is the only storage the guard touches.
func (s *AuthService) Resolve(ctx context.Context, token string) (domain.Session, error) {
	return s.Sessions.Get(ctx, token)
}
