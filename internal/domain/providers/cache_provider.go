package providers

import (
	"context"
	"errors"
	"fmt"
)

// ErrCacheMiss is returned by Get when the key is absent or expired
var ErrCacheMiss = errors.New("cache miss")

// CacheProvider defines the interface for caching operations
type CacheProvider interface {
	// Get retrieves a value from cache
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores a value in cache with expiration
	Set(ctx context.Context, key string, value []byte, expirationSeconds int) error

	// DeletePattern removes every key matching a glob pattern and returns how
	// many were removed
	DeletePattern(ctx context.Context, pattern string) (int, error)
}

// HTTPCacheKeyPrefix prefixes every cached HTTP response. Keys are
// prefix + request path + "#" + digest so they can be matched by path.
const HTTPCacheKeyPrefix = "http:cache:"

// UserCachePattern matches every cached response under /api/user/{userID}/
func UserCachePattern(userID int64) string {
	return fmt.Sprintf("%s/api/user/%d/*", HTTPCacheKeyPrefix, userID)
}
