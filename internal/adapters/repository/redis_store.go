package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/sony/gobreaker"

	"github.com/AchilleasB/uni-labs/equipment-portal-service/internal/config"
	"github.com/AchilleasB/uni-labs/equipment-portal-service/internal/core/ports"
)

// RedisStore persists each collection as one JSON string under a prefixed
// key, mirroring the original per-browser storage layout. Operations run
// behind a circuit breaker so a flapping Redis degrades instead of
// cascading.
type RedisStore struct {
	client *redis.Client
	prefix string
	cb     *gobreaker.CircuitBreaker
}

var _ ports.ListStore = (*RedisStore)(nil)

func NewRedisStore(client *redis.Client, prefix string) *RedisStore {
	return &RedisStore{
		client: client,
		prefix: prefix,
		cb:     config.NewCircuitBreaker("Redis-Store"),
	}
}

func (s *RedisStore) key(key string) string {
	if s.prefix == "" {
		return key
	}
	return s.prefix + ":" + key
}

func (s *RedisStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	result, err := s.cb.Execute(func() (interface{}, error) {
		data, err := s.client.Get(ctx, s.key(key)).Bytes()
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		if err != nil {
			return nil, err
		}
		return data, nil
	})
	if err != nil {
		return nil, false, fmt.Errorf("redis get %s: %w", key, err)
	}
	if result == nil {
		return nil, false, nil
	}
	return result.([]byte), true, nil
}

func (s *RedisStore) Put(ctx context.Context, key string, data []byte) error {
	_, err := s.cb.Execute(func() (interface{}, error) {
		return nil, s.client.Set(ctx, s.key(key), data, 0).Err()
	})
	if err != nil {
		return fmt.Errorf("redis put %s: %w", key, err)
	}
	return nil
}
