// Package session keeps the logout denylist in Redis so revocations are
// visible to every instance immediately.
package session

import (
	"context"
	"errors"
	"time"

	"clicknova_admin/internal/usecase/interfaces"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "revoked:"

// RedisStore marks token ids revoked with a TTL matching the token's
// remaining lifetime, so entries expire themselves.
type RedisStore struct {
	client *redis.Client
}

var _ interfaces.ISessionStore = (*RedisStore)(nil)

func NewRedisStore(addr, password string, db int) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, err
	}
	return &RedisStore{client: client}, nil
}

// NewRedisStoreFromClient wraps an existing client; tests use this with
// miniredis.
func NewRedisStoreFromClient(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func (s *RedisStore) Revoke(ctx context.Context, tokenID string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	return s.client.Set(ctx, keyPrefix+tokenID, "1", ttl).Err()
}

func (s *RedisStore) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	err := s.client.Get(ctx, keyPrefix+tokenID).Err()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (s *RedisStore) Close() error {
	return s.client.Close()
}
