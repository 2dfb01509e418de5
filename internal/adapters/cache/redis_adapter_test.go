package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adiii0209/Yatraa-sub000/internal/domain/providers"
	redisclient "github.com/adiii0209/Yatraa-sub000/internal/infrastructure/clients/redis"
	apperrors "github.com/adiii0209/Yatraa-sub000/pkg/errors"
)

// Nothing listens on port 1, so every command fails to dial.
func unreachableAdapter(t *testing.T) providers.CacheProvider {
	t.Helper()
	rdb := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		MaxRetries:  -1,
		DialTimeout: 200 * time.Millisecond,
	})
	t.Cleanup(func() { _ = rdb.Close() })
	return NewRedisAdapter(redisclient.NewClientFromRedis(rdb))
}

func requireExternal(t *testing.T, err error) {
	t.Helper()
	require.Error(t, err)
	appErr, ok := apperrors.As(err)
	require.True(t, ok, err.Error())
	assert.Equal(t, apperrors.ErrorTypeExternal, appErr.Type)
	assert.False(t, errors.Is(err, providers.ErrCacheMiss))
}

func TestRedisAdapter_UnreachableServerIsExternal(t *testing.T) {
	ctx := context.Background()
	adapter := unreachableAdapter(t)

	_, err := adapter.Get(ctx, "http:cache:/api/attractions#00")
	requireExternal(t, err)

	err = adapter.Set(ctx, "http:cache:/api/attractions#00", []byte("[]"), 60)
	requireExternal(t, err)

	_, err = adapter.DeletePattern(ctx, providers.UserCachePattern(1))
	requireExternal(t, err)
}
