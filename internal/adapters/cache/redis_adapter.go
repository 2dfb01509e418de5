package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/adiii0209/Yatraa-sub000/internal/domain/providers"
	redisclient "github.com/adiii0209/Yatraa-sub000/internal/infrastructure/clients/redis"
	apperrors "github.com/adiii0209/Yatraa-sub000/pkg/errors"
)

const scanBatchSize = 100

// RedisAdapter implements the CacheProvider interface using Redis
type RedisAdapter struct {
	client *redisclient.Client
}

// NewRedisAdapter creates a new Redis cache adapter
func NewRedisAdapter(client *redisclient.Client) providers.CacheProvider {
	return &RedisAdapter{
		client: client,
	}
}

// Get retrieves a value from cache
func (a *RedisAdapter) Get(ctx context.Context, key string) ([]byte, error) {
	result, err := a.client.Client().Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, providers.ErrCacheMiss
	}
	if err != nil {
		return nil, apperrors.NewExternalError("failed to get from cache", err)
	}
	return result, nil
}

// Set stores a value in cache with expiration
func (a *RedisAdapter) Set(ctx context.Context, key string, value []byte, expirationSeconds int) error {
	expiration := time.Duration(expirationSeconds) * time.Second
	if err := a.client.Client().Set(ctx, key, value, expiration).Err(); err != nil {
		return apperrors.NewExternalError("failed to set in cache", err)
	}
	return nil
}

// DeletePattern walks the keyspace with SCAN and deletes every match
func (a *RedisAdapter) DeletePattern(ctx context.Context, pattern string) (int, error) {
	rdb := a.client.Client()
	deleted := 0

	iter := rdb.Scan(ctx, 0, pattern, scanBatchSize).Iterator()
	batch := make([]string, 0, scanBatchSize)
	flush := func() error {
		if len(batch) == 0 {
			return nil
		}
		n, err := rdb.Del(ctx, batch...).Result()
		if err != nil {
			return apperrors.NewExternalError(fmt.Sprintf("failed to delete keys matching %s", pattern), err)
		}
		deleted += int(n)
		batch = batch[:0]
		return nil
	}

	for iter.Next(ctx) {
		batch = append(batch, iter.Val())
		if len(batch) == scanBatchSize {
			if err := flush(); err != nil {
				return deleted, err
			}
		}
	}
	if err := iter.Err(); err != nil {
		return deleted, apperrors.NewExternalError(fmt.Sprintf("failed to scan keys matching %s", pattern), err)
	}
	if err := flush(); err != nil {
		return deleted, err
	}

	return deleted, nil
}
