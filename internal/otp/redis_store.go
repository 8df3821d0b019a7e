package otp

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/markeugine/atelier-backend/internal/config"
)

const (
	codeKeyPrefix     = "otp:"
	verifiedKeyPrefix = "otp_verified:"
)

type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(cfg *config.Config) *RedisStore {
	return &RedisStore{
		client: redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
		}),
	}
}

func (s *RedisStore) SetCode(ctx context.Context, email, code string, ttl time.Duration) error {
	return s.client.Set(ctx, codeKeyPrefix+email, code, ttl).Err()
}

func (s *RedisStore) GetCode(ctx context.Context, email string) (string, error) {
	return s.client.Get(ctx, codeKeyPrefix+email).Result()
}

func (s *RedisStore) DeleteCode(ctx context.Context, email string) error {
	return s.client.Del(ctx, codeKeyPrefix+email).Err()
}

func (s *RedisStore) MarkVerified(ctx context.Context, email string, ttl time.Duration) error {
	return s.client.Set(ctx, verifiedKeyPrefix+email, "1", ttl).Err()
}

func (s *RedisStore) IsVerified(ctx context.Context, email string) (bool, error) {
	_, err := s.client.Get(ctx, verifiedKeyPrefix+email).Result()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (s *RedisStore) ClearVerified(ctx context.Context, email string) error {
	return s.client.Del(ctx, verifiedKeyPrefix+email).Err()
}

var _ Store = (*RedisStore)(nil)
