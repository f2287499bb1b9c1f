// Package redis stores sessions in Redis. Each session is a JSON value with
// a TTL matching its expiry; a per-user set indexes a user's session keys so
// they can be destroyed together.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/arimodu/shopper/internal/ports"
)

var _ ports.SessionStore = (*Store)(nil)

const (
	sessionPrefix = "session:"
	userPrefix    = "session-user:"
)

type record struct {
	UserID    string    `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Store implements ports.SessionStore on Redis.
type Store struct {
	client *redis.Client
	now    func() time.Time
}

// Open parses redisURL, connects and pings the server.
func Open(ctx context.Context, redisURL string) (*Store, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("connect to redis: %w", err)
	}

	return NewWithClient(client), nil
}

// NewWithClient creates a store from an existing client.
func NewWithClient(client *redis.Client) *Store {
	return &Store{client: client, now: time.Now}
}

func sessionKey(key string) string  { return sessionPrefix + key }
func userIndexKey(id string) string { return userPrefix + id }

// Name implements ports.HealthChecker.
func (s *Store) Name() string { return "redis-sessions" }

// HealthCheck implements ports.HealthChecker.
func (s *Store) HealthCheck(ctx context.Context) error {
	if err := s.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("ping redis: %w", err)
	}
	return nil
}

// Close closes the Redis connection.
func (s *Store) Close() error {
	return s.client.Close()
}

// Set stores sess and adds key to the user's index. The index TTL is reset to
// that of the newest session.
func (s *Store) Set(ctx context.Context, key string, sess ports.Session) error {
	ttl := sess.ExpiresAt.Sub(s.now())
	if ttl <= 0 {
		return fmt.Errorf("save session: already expired at %s", sess.ExpiresAt.Format(time.RFC3339))
	}

	data, err := json.Marshal(record(sess))
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}

	idx := userIndexKey(sess.UserID)
	_, err = s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, sessionKey(key), data, ttl)
		pipe.SAdd(ctx, idx, key)
		pipe.Expire(ctx, idx, ttl)
		return nil
	})
	if err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

// Get returns the session under key, or nil when it is absent or expired.
func (s *Store) Get(ctx context.Context, key string) (*ports.Session, error) {
	raw, err := s.client.Get(ctx, sessionKey(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("lookup session: %w", err)
	}

	var rec record
	if err := json.Unmarshal(raw, &rec); err != nil {
		return nil, fmt.Errorf("unmarshal session: %w", err)
	}

	sess := ports.Session(rec)
	if sess.Expired(s.now()) {
		return nil, nil
	}
	return &sess, nil
}

// Destroy removes the session under key and its index entry.
func (s *Store) Destroy(ctx context.Context, key string) error {
	sess, err := s.Get(ctx, key)
	if err != nil {
		return err
	}

	_, err = s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, sessionKey(key))
		if sess != nil {
			pipe.SRem(ctx, userIndexKey(sess.UserID), key)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("destroy session: %w", err)
	}
	return nil
}

// DestroyUser removes every session indexed under userID.
func (s *Store) DestroyUser(ctx context.Context, userID string) error {
	idx := userIndexKey(userID)
	keys, err := s.client.SMembers(ctx, idx).Result()
	if err != nil {
		return fmt.Errorf("list user sessions: %w", err)
	}

	del := make([]string, 0, len(keys)+1)
	for _, k := range keys {
		del = append(del, sessionKey(k))
	}
	del = append(del, idx)

	if err := s.client.Del(ctx, del...).Err(); err != nil {
		return fmt.Errorf("destroy user sessions: %w", err)
	}
	return nil
}
