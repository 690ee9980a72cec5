// README: Session store backed by redis keys with token-lifetime TTLs.
package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const sessionKeyPrefix = "auth:session:%s"

type SessionStore struct {
	redis *redis.Client
}

func NewSessionStore(redis *redis.Client) *SessionStore {
	return &SessionStore{redis: redis}
}

func (s *SessionStore) Create(ctx context.Context, sessionID, userID string, ttl time.Duration) error {
	return s.redis.Set(ctx, sessionKey(sessionID), userID, ttl).Err()
}

// IsLive reports whether the session exists and has not expired.
func (s *SessionStore) IsLive(ctx context.Context, sessionID string) (bool, error) {
	_, err := s.redis.Get(ctx, sessionKey(sessionID)).Result()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (s *SessionStore) Revoke(ctx context.Context, sessionID string) error {
	return s.redis.Del(ctx, sessionKey(sessionID)).Err()
}

func sessionKey(sessionID string) string {
	return fmt.Sprintf(sessionKeyPrefix, sessionID)
}
