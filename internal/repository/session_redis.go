package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"catalog_service/internal/models"

	redis "github.com/redis/go-redis/v9"
)

const sessionKeyPrefix = "catalog:session:"

// RedisSessionStore persists sessions as JSON values whose key TTL matches the
// session expiry, so several API replicas share one view of issued tokens.
type RedisSessionStore struct {
	client redis.UniversalClient
}

func NewRedisSessionStore(client redis.UniversalClient) *RedisSessionStore {
	return &RedisSessionStore{client: client}
}

var _ Sessions = (*RedisSessionStore)(nil)

func sessionKey(token string) string {
	return sessionKeyPrefix + token
}

// Save writes the session with a TTL derived from ExpiresAt. A zero ExpiresAt
// stores the session without expiry.
func (s *RedisSessionStore) Save(ctx context.Context, sess models.Session) error {
	payload, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}

	var ttl time.Duration
	if !sess.ExpiresAt.IsZero() {
		ttl = time.Until(sess.ExpiresAt)
		if ttl <= 0 {
			return nil
		}
	}

	if err := s.client.Set(ctx, sessionKey(sess.Token), payload, ttl).Err(); err != nil {
		return fmt.Errorf("store session: %w", err)
	}
	return nil
}

// Get loads the session for token. Returns (nil, nil) if not found.
func (s *RedisSessionStore) Get(ctx context.Context, token string) (*models.Session, error) {
	payload, err := s.client.Get(ctx, sessionKey(token)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("load session: %w", err)
	}

	var sess models.Session
	if err := json.Unmarshal(payload, &sess); err != nil {
		return nil, fmt.Errorf("decode session: %w", err)
	}
	sess.Token = token
	if sess.Expired(time.Now()) {
		return nil, nil
	}
	return &sess, nil
}

// Close releases the underlying client.
func (s *RedisSessionStore) Close() error {
	return s.client.Close()
}
