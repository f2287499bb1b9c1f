// Package memory provides an in-process ports.SessionStore for the local
// profile and tests. Sessions do not survive a restart.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/arimodu/shopper/internal/ports"
)

var _ ports.SessionStore = (*Store)(nil)

// Store is a mutex-guarded map of sessions. Expired entries are dropped on
// read.
type Store struct {
	mu       sync.Mutex
	sessions map[string]ports.Session
	now      func() time.Time
}

// New creates an empty Store.
func New() *Store {
	return &Store{sessions: make(map[string]ports.Session), now: time.Now}
}

// Name implements ports.HealthChecker.
func (s *Store) Name() string { return "memory-sessions" }

// HealthCheck implements ports.HealthChecker.
func (s *Store) HealthCheck(ctx context.Context) error { return ctx.Err() }

// Close implements ports.SessionStore.
func (s *Store) Close() error { return nil }

func (s *Store) Set(_ context.Context, key string, sess ports.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[key] = sess
	return nil
}

func (s *Store) Get(_ context.Context, key string) (*ports.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[key]
	if !ok {
		return nil, nil
	}
	if sess.Expired(s.now()) {
		delete(s.sessions, key)
		return nil, nil
	}
	return &sess, nil
}

func (s *Store) Destroy(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, key)
	return nil
}

func (s *Store) DestroyUser(_ context.Context, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for key, sess := range s.sessions {
		if sess.UserID == userID {
			delete(s.sessions, key)
		}
	}
	return nil
}
