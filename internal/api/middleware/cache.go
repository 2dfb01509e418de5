package middleware

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/adiii0209/Yatraa-sub000/internal/domain/providers"
	"github.com/adiii0209/Yatraa-sub000/internal/infrastructure/observability"
)

// CacheRule holds cache configuration for a route prefix
type CacheRule struct {
	Prefix     string
	TTLSeconds int
}

// CacheMiddleware provides HTTP response caching for GET requests and drops
// a user's cached association reads after that user mutates anything.
type CacheMiddleware struct {
	cache   providers.CacheProvider
	metrics *observability.Metrics
	rules   []CacheRule
}

// DefaultCacheRules returns the rule set for the catalog and user routes.
// Rules are matched in order, so narrower prefixes come first. Time relative
// lists get a short TTL because their content changes as the clock moves.
func DefaultCacheRules(ttlSeconds int) []CacheRule {
	short := 60
	if ttlSeconds < short {
		short = ttlSeconds
	}
	return []CacheRule{
		{Prefix: "/api/events/upcoming", TTLSeconds: short},
		{Prefix: "/api/offers/active", TTLSeconds: short},
		{Prefix: "/api/attractions", TTLSeconds: ttlSeconds},
		{Prefix: "/api/events", TTLSeconds: ttlSeconds},
		{Prefix: "/api/offers", TTLSeconds: ttlSeconds},
		{Prefix: "/api/restaurants", TTLSeconds: ttlSeconds},
		{Prefix: "/api/user/", TTLSeconds: ttlSeconds},
	}
}

// NewCacheMiddleware creates a new cache middleware
func NewCacheMiddleware(cache providers.CacheProvider, metrics *observability.Metrics, rules []CacheRule) *CacheMiddleware {
	return &CacheMiddleware{
		cache:   cache,
		metrics: metrics,
		rules:   rules,
	}
}

// Middleware returns the cache middleware handler
func (m *CacheMiddleware) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if m.cache == nil {
			next.ServeHTTP(w, r)
			return
		}

		if r.Method != http.MethodGet {
			m.serveMutation(w, r, next)
			return
		}

		rule, ok := m.ruleFor(r.URL.Path)
		if !ok {
			next.ServeHTTP(w, r)
			return
		}
		// User entries are invalidated by canonical id, so anything else is
		// never stored.
		if strings.HasPrefix(r.URL.Path, "/api/user/") {
			if _, ok := userIDFromPath(r.URL.Path); !ok {
				next.ServeHTTP(w, r)
				return
			}
		}

		ctx := r.Context()
		logger := observability.LoggerFromContext(ctx)
		cacheKey := CacheKey(r)

		cached, err := m.cache.Get(ctx, cacheKey)
		if err == nil {
			observability.RecordCacheHit(ctx, m.metrics, r.URL.Path)
			logger.Debug().Str("key", cacheKey).Msg("Cache hit")
			w.Header().Set("X-Cache", "HIT")
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusOK)
			w.Write(cached)
			return
		}
		if !errors.Is(err, providers.ErrCacheMiss) {
			logger.Warn().Err(err).Str("key", cacheKey).Msg("Cache read failed")
		}

		observability.RecordCacheMiss(ctx, m.metrics, r.URL.Path)
		w.Header().Set("X-Cache", "MISS")

		recorder := &responseRecorder{
			ResponseWriter: w,
			statusCode:     http.StatusOK,
			body:           &bytes.Buffer{},
		}
		next.ServeHTTP(recorder, r)

		if recorder.statusCode == http.StatusOK && recorder.body.Len() > 0 {
			if err := m.cache.Set(ctx, cacheKey, recorder.body.Bytes(), rule.TTLSeconds); err != nil {
				logger.Warn().Err(err).Str("key", cacheKey).Msg("Failed to cache response")
			}
		}
	})
}

// serveMutation runs a non-GET request and, when it succeeded on a user
// route, deletes that user's cached responses before returning.
func (m *CacheMiddleware) serveMutation(w http.ResponseWriter, r *http.Request, next http.Handler) {
	userID, ok := userIDFromPath(r.URL.Path)
	if !ok {
		next.ServeHTTP(w, r)
		return
	}

	sw := &statusWriter{ResponseWriter: w}
	next.ServeHTTP(sw, r)

	if sw.Status() < http.StatusBadRequest {
		if _, err := m.InvalidateUser(r.Context(), userID); err != nil {
			observability.LoggerFromContext(r.Context()).Warn().Err(err).
				Int64("user_id", userID).
				Msg("Failed to invalidate user cache")
		}
	}
}

// InvalidateUser deletes the cached responses under /api/user/{userID}/
func (m *CacheMiddleware) InvalidateUser(ctx context.Context, userID int64) (int, error) {
	if m.cache == nil {
		return 0, nil
	}
	return m.cache.DeletePattern(ctx, providers.UserCachePattern(userID))
}

func (m *CacheMiddleware) ruleFor(path string) (CacheRule, bool) {
	for _, rule := range m.rules {
		if strings.HasPrefix(path, rule.Prefix) && rule.TTLSeconds > 0 {
			return rule, true
		}
	}
	return CacheRule{}, false
}

// CacheKey builds the cache key for r. The path stays readable so a user's
// entries can be matched by pattern; the query is hashed in canonical order.
func CacheKey(r *http.Request) string {
	query := r.URL.Query().Encode()
	hash := sha256.Sum256([]byte(query))
	return providers.HTTPCacheKeyPrefix + r.URL.Path + "#" + hex.EncodeToString(hash[:8])
}

// userIDFromPath extracts {id} from /api/user/{id}/...
func userIDFromPath(path string) (int64, bool) {
	rest, ok := strings.CutPrefix(path, "/api/user/")
	if !ok {
		return 0, false
	}
	idPart, _, _ := strings.Cut(rest, "/")
	id, err := strconv.ParseInt(idPart, 10, 64)
	if err != nil || id <= 0 || strconv.FormatInt(id, 10) != idPart {
		return 0, false
	}
	return id, true
}

// responseRecorder captures the response for caching
type responseRecorder struct {
	http.ResponseWriter
	statusCode int
	body       *bytes.Buffer
	written    bool
}

// WriteHeader captures the status code
func (r *responseRecorder) WriteHeader(statusCode int) {
	if !r.written {
		r.statusCode = statusCode
		r.ResponseWriter.WriteHeader(statusCode)
		r.written = true
	}
}

// Write captures the response body and writes to the client
func (r *responseRecorder) Write(data []byte) (int, error) {
	if !r.written {
		r.WriteHeader(http.StatusOK)
	}
	r.body.Write(data)
	return r.ResponseWriter.Write(data)
}
