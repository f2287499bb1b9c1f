package ports

import (
	"context"
	"time"
)

// Session is the server-side record behind a session cookie.
type Session struct {
	UserID    string
	CreatedAt time.Time
	ExpiresAt time.Time
}

// Expired reports whether the session is no longer valid at now.
func (s Session) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}

// SessionStore persists sessions keyed by a digest of the client token.
// Implementations expire records at ExpiresAt.
type SessionStore interface {
	HealthChecker

	// Set stores the session under key, replacing any existing record.
	Set(ctx context.Context, key string, sess Session) error

	// Get returns the session stored under key, or nil when it is absent or
	// expired.
	Get(ctx context.Context, key string) (*Session, error)

	// Destroy removes the session stored under key. Missing keys are ignored.
	Destroy(ctx context.Context, key string) error

	// DestroyUser removes every session belonging to userID.
	DestroyUser(ctx context.Context, userID string) error

	// Close releases connections held by the store.
	Close() error
}

// PasswordHasher hashes and verifies user passwords.
type PasswordHasher interface {
	Hash(password string) (string, error)
	// Compare returns nil when password matches hash and
	// domain.ErrUnauthorized when it does not.
	Compare(hash, password string) error
}
