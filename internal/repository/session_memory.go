package repository

import (
	"context"
	"sync"
	"time"

	"catalog_service/internal/models"
)

// MemorySessionStore keeps sessions in process memory. Suitable for a single
// instance and for tests.
type MemorySessionStore struct {
	mu       sync.Mutex
	sessions map[string]models.Session
	now      func() time.Time
}

func NewMemorySessionStore() *MemorySessionStore {
	return &MemorySessionStore{
		sessions: make(map[string]models.Session),
		now:      time.Now,
	}
}

var _ Sessions = (*MemorySessionStore)(nil)

// Save stores the session, replacing any previous one under the same token.
func (s *MemorySessionStore) Save(_ context.Context, sess models.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.purgeExpiredLocked()
	s.sessions[sess.Token] = sess
	return nil
}

// Get returns the live session for token, or (nil, nil) if unknown or expired.
func (s *MemorySessionStore) Get(_ context.Context, token string) (*models.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[token]
	if !ok {
		return nil, nil
	}
	if sess.Expired(s.now()) {
		delete(s.sessions, token)
		return nil, nil
	}
	return &sess, nil
}

func (s *MemorySessionStore) purgeExpiredLocked() {
	now := s.now()
	for token, sess := range s.sessions {
		if sess.Expired(now) {
			delete(s.sessions, token)
		}
	}
}
