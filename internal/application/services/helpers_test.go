package services_test

import (
	"context"
	"regexp"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/adiii0209/Yatraa-sub000/internal/adapters/memory"
	"github.com/adiii0209/Yatraa-sub000/internal/domain/entities"
	"github.com/adiii0209/Yatraa-sub000/internal/domain/providers"
	"github.com/adiii0209/Yatraa-sub000/internal/seed"
)

// fixedNow sits in the middle of the seeded event calendar: the Rath Yatra
// is over and the Puja tour starts this evening.
var fixedNow = time.Date(2026, 10, 17, 12, 0, 0, 0, time.FixedZone("IST", 5*3600+1800))

func fixedClock() time.Time { return fixedNow }

func seededStore(t *testing.T) *memory.Store {
	t.Helper()
	store, err := seed.NewStore(context.Background(), fixedNow)
	require.NoError(t, err)
	return store
}

func attractionNames(rows []*entities.Attraction) []string {
	names := make([]string, len(rows))
	for i, r := range rows {
		names[i] = r.Name
	}
	return names
}

func eventTitles(rows []*entities.Event) []string {
	titles := make([]string, len(rows))
	for i, r := range rows {
		titles[i] = r.Title
	}
	return titles
}

func restaurantNames(rows []*entities.Restaurant) []string {
	names := make([]string, len(rows))
	for i, r := range rows {
		names[i] = r.Name
	}
	return names
}

// MockEventBus records publishes through testify and hands out in-process
// subscription channels
type MockEventBus struct {
	mock.Mock
	mu          sync.Mutex
	subscribers map[string][]chan *entities.ActivityEvent
}

func NewMockEventBus() *MockEventBus {
	return &MockEventBus{subscribers: make(map[string][]chan *entities.ActivityEvent)}
}

func (m *MockEventBus) Publish(ctx context.Context, channel string, event *entities.ActivityEvent) error {
	args := m.Called(ctx, channel, event)
	if err := args.Error(0); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, ch := range m.subscribers[channel] {
		ch <- event
	}
	return nil
}

func (m *MockEventBus) Subscribe(ctx context.Context, channel string) (<-chan *entities.ActivityEvent, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	ch := make(chan *entities.ActivityEvent, 10)
	m.subscribers[channel] = append(m.subscribers[channel], ch)
	return ch, nil
}

func (m *MockEventBus) SubscriberCount(channel string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.subscribers[channel])
}

func (m *MockEventBus) Unsubscribe(ctx context.Context, channel string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, ch := range m.subscribers[channel] {
		close(ch)
	}
	delete(m.subscribers, channel)
	return nil
}

func (m *MockEventBus) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for channel, chans := range m.subscribers {
		for _, ch := range chans {
			close(ch)
		}
		delete(m.subscribers, channel)
	}
	return nil
}

// MemoryCache is a CacheProvider over a map with Redis-style '*' globs
type MemoryCache struct {
	mu   sync.RWMutex
	data map[string][]byte
}

func NewMemoryCache() *MemoryCache {
	return &MemoryCache{data: make(map[string][]byte)}
}

func (c *MemoryCache) Get(ctx context.Context, key string) ([]byte, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if v, ok := c.data[key]; ok {
		return v, nil
	}
	return nil, providers.ErrCacheMiss
}

func (c *MemoryCache) Set(ctx context.Context, key string, value []byte, expirationSeconds int) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key] = value
	return nil
}

func (c *MemoryCache) DeletePattern(ctx context.Context, pattern string) (int, error) {
	parts := strings.Split(pattern, "*")
	for i := range parts {
		parts[i] = regexp.QuoteMeta(parts[i])
	}
	re := regexp.MustCompile("^" + strings.Join(parts, ".*") + "$")

	c.mu.Lock()
	defer c.mu.Unlock()
	deleted := 0
	for key := range c.data {
		if re.MatchString(key) {
			delete(c.data, key)
			deleted++
		}
	}
	return deleted, nil
}

func (c *MemoryCache) Keys() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	keys := make([]string, 0, len(c.data))
	for k := range c.data {
		keys = append(keys, k)
	}
	return keys
}
