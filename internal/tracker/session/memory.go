package session

import (
	"context"
	"sync"
	"time"

	"github.com/tasktab/tasktab/internal/tracker/domain"
	"github.com/tasktab/tasktab/pkg/cryptox"
)

// MemoryStore keeps sessions in process memory behind a mutex. Tokens are
// 256-bit random values, so the map key doubles as the bearer credential.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]domain.Session

	// now is swappable for expiry tests.
	now func() time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		sessions: make(map[string]domain.Session),
		now:      time.Now,
	}
}

func (s *MemoryStore) Create(ctx context.Context, user domain.SessionUser, ttl time.Duration) (string, error) {
	token, err := cryptox.GenerateToken(cryptox.TokenSize256)
	if err != nil {
		return "", err
	}

	now := s.now().UTC()
	sess := domain.Session{
		Token:     token,
		User:      user,
		CreatedAt: now,
		ExpiresAt: now.Add(ttl),
	}

	s.mu.Lock()
	s.sessions[token] = sess
	s.mu.Unlock()

	return token, nil
}

func (s *MemoryStore) Get(ctx context.Context, token string) (domain.Session, error) {
	s.mu.RLock()
	sess, ok := s.sessions[token]
	s.mu.RUnlock()

	if !ok {
		return domain.Session{}, ErrNotFound
	}

	if sess.Expired(s.now().UTC()) {
		// Lazily evict so an expired token can't linger until the next sweep.
		s.mu.Lock()
		delete(s.sessions, token)
		s.mu.Unlock()
		return domain.Session{}, ErrNotFound
	}

	return sess, nil
}

func (s *MemoryStore) Delete(ctx context.Context, token string) error {
	s.mu.Lock()
	delete(s.sessions, token)
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) DeleteExpired(ctx context.Context) error {
	now := s.now().UTC()

	s.mu.Lock()
	for token, sess := range s.sessions {
		if sess.Expired(now) {
			delete(s.sessions, token)
		}
	}
	s.mu.Unlock()
	return nil
}

// Len reports the number of live entries, expired or not. Used by tests and
// housekeeping logging.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}
