package session

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "flightwatch:session:"

// RedisStore keeps entries in redis, for trackers sharing state across hosts
type RedisStore struct {
	client *redis.Client
	prefix string
}

// NewRedisStore creates a store on client; namespace separates users or devices
func NewRedisStore(client *redis.Client, namespace string) *RedisStore {
	prefix := keyPrefix
	if namespace != "" {
		prefix += namespace + ":"
	}
	return &RedisStore{client: client, prefix: prefix}
}

func (s *RedisStore) Get(ctx context.Context, key string) (string, bool, error) {
	v, err := s.client.Get(ctx, s.prefix+key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("failed to read session key: %w", err)
	}
	return v, true, nil
}

func (s *RedisStore) Set(ctx context.Context, key, value string) error {
	if err := s.client.Set(ctx, s.prefix+key, value, 0).Err(); err != nil {
		return fmt.Errorf("failed to write session key: %w", err)
	}
	return nil
}

func (s *RedisStore) Delete(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, s.prefix+key).Err(); err != nil {
		return fmt.Errorf("failed to delete session key: %w", err)
	}
	return nil
}
