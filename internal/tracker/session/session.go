// Package session holds the server side of the login session lifecycle:
// created on successful login, destroyed by logout or expiry. Sessions carry
// a snapshot of the user taken at login time and are referenced by clients
// via an opaque cookie token.
package session

import (
	"context"
	"errors"
	"time"

	"github.com/tasktab/tasktab/internal/tracker/domain"
)

// ErrNotFound is returned when a token resolves to no active session,
// including sessions that have expired.
var ErrNotFound = errors.New("session: not found")

// Store is the session collection. The in-memory implementation suits a
// single instance; multi-instance deployments can swap in an external store
// behind the same interface.
type Store interface {
	// Create issues a fresh session for the given user snapshot and returns
	// its opaque token. Each login creates a new session; concurrent
	// sessions for the same user are never merged.
	Create(ctx context.Context, user domain.SessionUser, ttl time.Duration) (string, error)

	// Get resolves a token to its session. Absent or expired tokens return
	// ErrNotFound.
	Get(ctx context.Context, token string) (domain.Session, error)

	// Delete destroys a session. Deleting an absent session is not an error.
	Delete(ctx context.Context, token string) error

	// DeleteExpired removes all expired sessions (housekeeping).
	DeleteExpired(ctx context.Context) error
}
