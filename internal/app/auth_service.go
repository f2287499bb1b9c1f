package app

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/arimodu/shopper/internal/domain"
	"github.com/arimodu/shopper/internal/domain/user"
	"github.com/arimodu/shopper/internal/ports"
)

// Compile-time check that AuthService implements ports.AuthService.
var _ ports.AuthService = (*AuthService)(nil)

const tokenBytes = 32

// AuthService implements ports.AuthService. Tokens handed to clients are
// opaque random values; the session store only ever sees their SHA-256
// digest.
type AuthService struct {
	store    ports.Store
	sessions ports.SessionStore
	hasher   ports.PasswordHasher
	ttl      time.Duration
	logger   *slog.Logger
	now      func() time.Time
}

// NewAuthService creates an AuthService issuing sessions that live for ttl.
func NewAuthService(store ports.Store, sessions ports.SessionStore, hasher ports.PasswordHasher, ttl time.Duration, logger *slog.Logger) *AuthService {
	return &AuthService{
		store:    store,
		sessions: sessions,
		hasher:   hasher,
		ttl:      ttl,
		logger:   orDiscard(logger),
		now:      time.Now,
	}
}

// Register validates the credentials, stores the user with a hashed password
// and opens a session. A taken name is reported by the store's unique
// constraint as domain.ErrConflict.
func (s *AuthService) Register(ctx context.Context, name, password string) (*ports.AuthResult, error) {
	s.logger.InfoContext(ctx, "registering user", slog.String("name", name))

	if err := validateCredentials(name, password); err != nil {
		return nil, err
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to hash password",
			slog.String("operation", "Register"),
			slog.Any("error", err),
		)
		return nil, fmt.Errorf("hashing password: %w", domain.ErrInternal)
	}

	u, err := s.store.CreateUser(ctx, name, hash)
	if err != nil {
		return nil, storageFailure(ctx, s.logger, "Register", err, slog.String("name", name))
	}

	return s.issue(ctx, u)
}

// Login checks the password of the named user and opens a session.
func (s *AuthService) Login(ctx context.Context, name, password string) (*ports.AuthResult, error) {
	s.logger.InfoContext(ctx, "logging in", slog.String("name", name))

	if name == "" || password == "" {
		ve := &domain.ValidationError{Fields: map[string]string{}}
		if name == "" {
			ve.Fields["name"] = domain.MsgRequired
		}
		if password == "" {
			ve.Fields["password"] = domain.MsgRequired
		}
		return nil, ve
	}

	u, err := s.store.GetUserByName(ctx, name)
	if err != nil {
		return nil, storageFailure(ctx, s.logger, "Login", err, slog.String("name", name))
	}
	if u == nil {
		return nil, fmt.Errorf("user %q: %w", name, domain.ErrNotFound)
	}

	if err := s.hasher.Compare(u.PasswordHash, password); err != nil {
		if errors.Is(err, domain.ErrUnauthorized) {
			s.logger.WarnContext(ctx, "login rejected", slog.String("user_id", u.ID))
			return nil, fmt.Errorf("invalid credentials: %w", domain.ErrUnauthorized)
		}
		s.logger.ErrorContext(ctx, "failed to verify password",
			slog.String("operation", "Login"),
			slog.String("user_id", u.ID),
			slog.Any("error", err),
		)
		return nil, fmt.Errorf("verifying password: %w", domain.ErrInternal)
	}

	return s.issue(ctx, u)
}

// Logout destroys the session behind token. An empty token is a no-op.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	if err := s.sessions.Destroy(ctx, sessionKey(token)); err != nil {
		return storageFailure(ctx, s.logger, "Logout", err)
	}
	return nil
}

// Authenticate resolves token to the id of the user it belongs to. A session
// whose user no longer exists is destroyed and treated as unknown.
func (s *AuthService) Authenticate(ctx context.Context, token string) (string, error) {
	if token == "" {
		return "", fmt.Errorf("missing session: %w", domain.ErrUnauthorized)
	}

	sess, err := s.sessions.Get(ctx, sessionKey(token))
	if err != nil {
		return "", storageFailure(ctx, s.logger, "Authenticate", err)
	}
	if sess == nil || sess.Expired(s.now()) {
		return "", fmt.Errorf("unknown or expired session: %w", domain.ErrUnauthorized)
	}

	u, err := s.store.GetUserByID(ctx, sess.UserID)
	if err != nil {
		return "", storageFailure(ctx, s.logger, "Authenticate", err, slog.String("user_id", sess.UserID))
	}
	if u == nil {
		if err := s.sessions.Destroy(ctx, sessionKey(token)); err != nil {
			s.logger.WarnContext(ctx, "failed to destroy orphaned session",
				slog.String("user_id", sess.UserID),
				slog.Any("error", err),
			)
		}
		return "", fmt.Errorf("session of deleted user: %w", domain.ErrUnauthorized)
	}
	return u.ID, nil
}

// EndAllSessions destroys every session of userID.
func (s *AuthService) EndAllSessions(ctx context.Context, userID string) error {
	s.logger.InfoContext(ctx, "ending all sessions", slog.String("user_id", userID))

	if err := s.sessions.DestroyUser(ctx, userID); err != nil {
		return storageFailure(ctx, s.logger, "EndAllSessions", err, slog.String("user_id", userID))
	}
	return nil
}

func (s *AuthService) issue(ctx context.Context, u *user.User) (*ports.AuthResult, error) {
	token, err := newToken()
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to generate session token",
			slog.String("operation", "issue"),
			slog.Any("error", err),
		)
		return nil, fmt.Errorf("generating token: %w", domain.ErrInternal)
	}

	now := s.now()
	sess := ports.Session{UserID: u.ID, CreatedAt: now, ExpiresAt: now.Add(s.ttl)}
	if err := s.sessions.Set(ctx, sessionKey(token), sess); err != nil {
		return nil, storageFailure(ctx, s.logger, "issue", err, slog.String("user_id", u.ID))
	}

	s.logger.InfoContext(ctx, "session opened", slog.String("user_id", u.ID))
	return &ports.AuthResult{User: u, Token: token}, nil
}

func validateCredentials(name, password string) error {
	ve := &domain.ValidationError{Fields: map[string]string{}}
	if err := user.ValidateName(name); err != nil {
		mergeFields(ve, err)
	}
	if err := user.ValidatePassword(password); err != nil {
		mergeFields(ve, err)
	}
	if len(ve.Fields) > 0 {
		return ve
	}
	return nil
}

// mergeFields copies the field messages of a *domain.ValidationError into dst.
func mergeFields(dst *domain.ValidationError, err error) {
	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		for k, v := range ve.Fields {
			dst.Fields[k] = v
		}
	}
}

func newToken() (string, error) {
	b := make([]byte, tokenBytes)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

// sessionKey is the digest a token is stored under.
func sessionKey(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
