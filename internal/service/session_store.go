package service

import (
	"context"
	"fmt"
	"time"

	"practice-booking-service/pkg/jwt"

	"github.com/redis/go-redis/v9"
)

// SessionStore is the server-side registry of issued tokens. A signed token
// is only honoured while its id is present here, which makes logout effective
// before the JWT expires.
type SessionStore struct {
	redisClient *redis.Client
}

func NewSessionStore(redisClient *redis.Client) *SessionStore {
	return &SessionStore{redisClient: redisClient}
}

func sessionKey(claims *jwt.Claims) string {
	return fmt.Sprintf("session:%s:%s:%s", claims.Kind, claims.SubjectID, claims.TokenID)
}

func (s *SessionStore) Register(ctx context.Context, claims *jwt.Claims, ttl time.Duration) error {
	return s.redisClient.Set(ctx, sessionKey(claims), "valid", ttl).Err()
}

func (s *SessionStore) Exists(ctx context.Context, claims *jwt.Claims) (bool, error) {
	n, err := s.redisClient.Exists(ctx, sessionKey(claims)).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (s *SessionStore) Revoke(ctx context.Context, claims *jwt.Claims) error {
	return s.redisClient.Del(ctx, sessionKey(claims)).Err()
}
