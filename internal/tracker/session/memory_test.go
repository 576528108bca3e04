package session

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/tasktab/tasktab/internal/tracker/domain"
)

func TestMemoryStore_CreateAndGet(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	user := domain.SessionUser{ID: "u1", Email: "a@x.com", Username: "alice"}

	token, err := s.Create(ctx, user, time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	sess, err := s.Get(ctx, token)
	require.NoError(t, err)
	require.Equal(t, user, sess.User)
	require.Equal(t, token, sess.Token)
	require.True(t, sess.ExpiresAt.After(sess.CreatedAt))
}

func TestMemoryStore_UnknownToken(t *testing.T) {
	s := NewMemoryStore()

	_, err := s.Get(context.Background(), "no-such-token")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStore_EachLoginGetsAFreshSession(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	user := domain.SessionUser{ID: "u1", Email: "a@x.com", Username: "alice"}

	token1, err := s.Create(ctx, user, time.Hour)
	require.NoError(t, err)
	token2, err := s.Create(ctx, user, time.Hour)
	require.NoError(t, err)

	// Concurrent sessions for the same user are never merged.
	require.NotEqual(t, token1, token2)
	require.Equal(t, 2, s.Len())
}

func TestMemoryStore_Expiry(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	now := time.Now()
	s.now = func() time.Time { return now }

	user := domain.SessionUser{ID: "u1", Email: "a@x.com", Username: "alice"}
	token, err := s.Create(ctx, user, time.Hour)
	require.NoError(t, err)

	// Just before expiry the session still resolves.
	now = now.Add(59 * time.Minute)
	_, err = s.Get(ctx, token)
	require.NoError(t, err)

	// Past expiry it is gone, and the lazy eviction removed the entry.
	now = now.Add(2 * time.Minute)
	_, err = s.Get(ctx, token)
	require.ErrorIs(t, err, ErrNotFound)
	require.Equal(t, 0, s.Len())
}

func TestMemoryStore_DeleteIsIdempotent(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	user := domain.SessionUser{ID: "u1", Email: "a@x.com", Username: "alice"}
	token, err := s.Create(ctx, user, time.Hour)
	require.NoError(t, err)

	require.NoError(t, s.Delete(ctx, token))
	_, err = s.Get(ctx, token)
	require.ErrorIs(t, err, ErrNotFound)

	// Deleting an already-absent session is not an error.
	require.NoError(t, s.Delete(ctx, token))
	require.NoError(t, s.Delete(ctx, "never-existed"))
}

func TestMemoryStore_DeleteExpired(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	now := time.Now()
	s.now = func() time.Time { return now }

	user := domain.SessionUser{ID: "u1", Email: "a@x.com", Username: "alice"}

	_, err := s.Create(ctx, user, time.Minute)
	require.NoError(t, err)
	live, err := s.Create(ctx, user, time.Hour)
	require.NoError(t, err)

	now = now.Add(10 * time.Minute)
	require.NoError(t, s.DeleteExpired(ctx))

	require.Equal(t, 1, s.Len())
	_, err = s.Get(ctx, live)
	require.NoError(t, err)
}
