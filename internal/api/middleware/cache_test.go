package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"regexp"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adiii0209/Yatraa-sub000/internal/domain/providers"
)

type fakeCache struct {
	mu      sync.Mutex
	data    map[string][]byte
	ttls    map[string]int
	getErr  error
	deletes []string
}

func newFakeCache() *fakeCache {
	return &fakeCache{data: map[string][]byte{}, ttls: map[string]int{}}
}

func (c *fakeCache) Get(ctx context.Context, key string) ([]byte, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.getErr != nil {
		return nil, c.getErr
	}
	if v, ok := c.data[key]; ok {
		return v, nil
	}
	return nil, providers.ErrCacheMiss
}

func (c *fakeCache) Set(ctx context.Context, key string, value []byte, expirationSeconds int) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key] = append([]byte(nil), value...)
	c.ttls[key] = expirationSeconds
	return nil
}

func (c *fakeCache) DeletePattern(ctx context.Context, pattern string) (int, error) {
	parts := strings.Split(pattern, "*")
	for i := range parts {
		parts[i] = regexp.QuoteMeta(parts[i])
	}
	re := regexp.MustCompile("^" + strings.Join(parts, ".*") + "$")

	c.mu.Lock()
	defer c.mu.Unlock()
	c.deletes = append(c.deletes, pattern)
	n := 0
	for key := range c.data {
		if re.MatchString(key) {
			delete(c.data, key)
			n++
		}
	}
	return n, nil
}

func (c *fakeCache) len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.data)
}

// countingHandler answers every request with status and counts the calls
func countingHandler(status int, calls *int) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*calls++
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		w.Write([]byte(`{"path":"` + r.URL.Path + `"}`))
	})
}

func serve(h http.Handler, method, target string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(method, target, nil))
	return w
}

func TestCacheMiddleware_MissThenHit(t *testing.T) {
	cache := newFakeCache()
	var calls int
	h := NewCacheMiddleware(cache, nil, DefaultCacheRules(300)).Middleware(countingHandler(http.StatusOK, &calls))

	first := serve(h, "GET", "/api/attractions?city=Kolkata")
	assert.Equal(t, "MISS", first.Header().Get("X-Cache"))

	second := serve(h, "GET", "/api/attractions?city=Kolkata")
	assert.Equal(t, "HIT", second.Header().Get("X-Cache"))
	assert.Equal(t, http.StatusOK, second.Code)
	assert.Equal(t, first.Body.String(), second.Body.String())
	assert.Equal(t, 1, calls)

	third := serve(h, "GET", "/api/attractions?city=Darjeeling")
	assert.Equal(t, "MISS", third.Header().Get("X-Cache"))
	assert.Equal(t, 2, calls)
}

func TestCacheMiddleware_RouteTTLs(t *testing.T) {
	cache := newFakeCache()
	var calls int
	h := NewCacheMiddleware(cache, nil, DefaultCacheRules(300)).Middleware(countingHandler(http.StatusOK, &calls))

	serve(h, "GET", "/api/events/upcoming")
	serve(h, "GET", "/api/events/2")

	req := httptest.NewRequest("GET", "/api/events/upcoming", nil)
	assert.Equal(t, 60, cache.ttls[CacheKey(req)])
	req = httptest.NewRequest("GET", "/api/events/2", nil)
	assert.Equal(t, 300, cache.ttls[CacheKey(req)])
}

func TestCacheMiddleware_SkipsUncacheable(t *testing.T) {
	tests := []struct {
		name   string
		method string
		target string
		status int
	}{
		{"error response", "GET", "/api/attractions/999", http.StatusNotFound},
		{"unlisted route", "GET", "/health", http.StatusOK},
		{"non-GET catalog route", "POST", "/api/attractions", http.StatusMethodNotAllowed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cache := newFakeCache()
			var calls int
			h := NewCacheMiddleware(cache, nil, DefaultCacheRules(300)).Middleware(countingHandler(tt.status, &calls))

			serve(h, tt.method, tt.target)
			serve(h, tt.method, tt.target)

			assert.Equal(t, 2, calls)
			assert.Zero(t, cache.len())
		})
	}
}

func TestCacheMiddleware_ReadErrorFallsThrough(t *testing.T) {
	cache := newFakeCache()
	cache.getErr = errors.New("connection refused")
	var calls int
	h := NewCacheMiddleware(cache, nil, DefaultCacheRules(300)).Middleware(countingHandler(http.StatusOK, &calls))

	w := serve(h, "GET", "/api/offers")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "MISS", w.Header().Get("X-Cache"))
	assert.Equal(t, 1, calls)
}

func TestCacheMiddleware_NilCache(t *testing.T) {
	var calls int
	h := NewCacheMiddleware(nil, nil, DefaultCacheRules(300)).Middleware(countingHandler(http.StatusOK, &calls))

	w := serve(h, "GET", "/api/offers")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Header().Get("X-Cache"))
}

func TestCacheMiddleware_MutationInvalidatesUser(t *testing.T) {
	cache := newFakeCache()
	var calls int
	m := NewCacheMiddleware(cache, nil, DefaultCacheRules(300))
	h := m.Middleware(countingHandler(http.StatusOK, &calls))

	serve(h, "GET", "/api/user/1/favorites")
	serve(h, "GET", "/api/user/1/bookings/records")
	serve(h, "GET", "/api/user/11/favorites")
	serve(h, "GET", "/api/attractions")
	require.Equal(t, 4, cache.len())

	serve(h, "DELETE", "/api/user/1/favorites/3")

	assert.Equal(t, []string{providers.UserCachePattern(1)}, cache.deletes)
	assert.Equal(t, 2, cache.len())
	assert.Equal(t, "MISS", serve(h, "GET", "/api/user/1/favorites").Header().Get("X-Cache"))
	assert.Equal(t, "HIT", serve(h, "GET", "/api/user/11/favorites").Header().Get("X-Cache"))
}

func TestCacheMiddleware_FailedMutationKeepsCache(t *testing.T) {
	cache := newFakeCache()
	var calls int
	h := NewCacheMiddleware(cache, nil, DefaultCacheRules(300)).Middleware(countingHandler(http.StatusBadRequest, &calls))

	cache.Set(context.Background(), providers.HTTPCacheKeyPrefix+"/api/user/1/favorites#x", []byte("[]"), 300)
	serve(h, "POST", "/api/user/1/favorites")

	assert.Empty(t, cache.deletes)
	assert.Equal(t, 1, cache.len())
}

func TestCacheMiddleware_NonCanonicalUserPathNotStored(t *testing.T) {
	cache := newFakeCache()
	var calls int
	h := NewCacheMiddleware(cache, nil, DefaultCacheRules(300)).Middleware(countingHandler(http.StatusOK, &calls))

	for _, target := range []string{"/api/user/01/favorites", "/api/user/+1/itinerary"} {
		w := serve(h, "GET", target)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Empty(t, w.Header().Get("X-Cache"), target)
	}
	assert.Equal(t, 2, calls)
	assert.Zero(t, cache.len())
}

func TestCacheKey_CanonicalQuery(t *testing.T) {
	a := httptest.NewRequest("GET", "/api/attractions/search?q=temple&city=Kolkata", nil)
	b := httptest.NewRequest("GET", "/api/attractions/search?city=Kolkata&q=temple", nil)
	c := httptest.NewRequest("GET", "/api/attractions/search?q=museum", nil)

	assert.Equal(t, CacheKey(a), CacheKey(b))
	assert.NotEqual(t, CacheKey(a), CacheKey(c))
	assert.True(t, strings.HasPrefix(CacheKey(a), providers.HTTPCacheKeyPrefix+"/api/attractions/search#"))
}

func TestUserIDFromPath(t *testing.T) {
	tests := []struct {
		path string
		id   int64
		ok   bool
	}{
		{"/api/user/1/favorites", 1, true},
		{"/api/user/42/bookings/7/cancel", 42, true},
		{"/api/user/1", 1, true},
		{"/api/user/abc/favorites", 0, false},
		{"/api/user/0/favorites", 0, false},
		{"/api/user/01/favorites", 0, false},
		{"/api/user/+1/favorites", 0, false},
		{"/api/attractions/1", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			id, ok := userIDFromPath(tt.path)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.id, id)
		})
	}
}
