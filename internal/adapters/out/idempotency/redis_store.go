// Package idempotency remembers the outcome of client requests by their
// Idempotency-Key header.
package idempotency

import (
	"context"
	"errors"
	"time"

	"courier/internal/core/ports"
	"courier/internal/pkg/errs"

	"github.com/redis/go-redis/v9"
)

const defaultKeyPrefix = "courier:idempotency:"

var _ ports.IdempotencyStore = (*RedisStore)(nil)

// RedisStore shares idempotency state between service instances.
type RedisStore struct {
	client    *redis.Client
	keyPrefix string
}

// RedisConfig holds Redis connection configuration.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// NewRedisStore connects to Redis and checks the connection with a ping.
func NewRedisStore(ctx context.Context, cfg RedisConfig) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, errs.NewUpstreamError("redis", err)
	}

	return NewRedisStoreWithClient(client, ""), nil
}

// NewRedisStoreWithClient wraps an existing client. An empty prefix selects
// the default one.
func NewRedisStoreWithClient(client *redis.Client, keyPrefix string) *RedisStore {
	if keyPrefix == "" {
		keyPrefix = defaultKeyPrefix
	}
	return &RedisStore{client: client, keyPrefix: keyPrefix}
}

func (s *RedisStore) Get(ctx context.Context, key string) (string, bool, error) {
	value, err := s.client.Get(ctx, s.keyPrefix+key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, errs.NewUpstreamError("redis", err)
	}
	return value, true, nil
}

// SetIfAbsent uses SET NX with an expiry, one atomic command.
func (s *RedisStore) SetIfAbsent(ctx context.Context, key, value string, ttl time.Duration) (bool, error) {
	stored, err := s.client.SetNX(ctx, s.keyPrefix+key, value, ttl).Result()
	if err != nil {
		return false, errs.NewUpstreamError("redis", err)
	}
	return stored, nil
}

func (s *RedisStore) Close() error {
	return s.client.Close()
}
