package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/adiii0209/Yatraa-sub000/internal/domain/entities"
	"github.com/adiii0209/Yatraa-sub000/internal/domain/providers"
)

// CacheInvalidationService drops cached user responses when activity events
// arrive, including events published by other API instances.
type CacheInvalidationService struct {
	cache    providers.CacheProvider
	eventBus providers.EventBus
	ctx      context.Context
	cancel   context.CancelFunc
	wg       sync.WaitGroup
}

// NewCacheInvalidationService creates a new cache invalidation service
func NewCacheInvalidationService(cache providers.CacheProvider, eventBus providers.EventBus) *CacheInvalidationService {
	ctx, cancel := context.WithCancel(context.Background())
	return &CacheInvalidationService{
		cache:    cache,
		eventBus: eventBus,
		ctx:      ctx,
		cancel:   cancel,
	}
}

// Start begins listening for activity events
func (s *CacheInvalidationService) Start() error {
	eventChan, err := s.eventBus.Subscribe(s.ctx, providers.EventChannelUserActivity)
	if err != nil {
		return fmt.Errorf("failed to subscribe to user activity: %w", err)
	}

	s.wg.Add(1)
	go s.processEvents(eventChan)
	log.Info().Str("channel", providers.EventChannelUserActivity).Msg("Cache invalidation service started")
	return nil
}

// Stop stops the service and waits for the event loop to exit
func (s *CacheInvalidationService) Stop() {
	s.cancel()
	s.wg.Wait()
	log.Info().Msg("Cache invalidation service stopped")
}

func (s *CacheInvalidationService) processEvents(eventChan <-chan *entities.ActivityEvent) {
	defer s.wg.Done()
	for {
		select {
		case <-s.ctx.Done():
			return
		case event, ok := <-eventChan:
			if !ok {
				return
			}
			if event == nil {
				continue
			}
			s.handleEvent(event)
		}
	}
}

func (s *CacheInvalidationService) handleEvent(event *entities.ActivityEvent) {
	ctx, cancel := context.WithTimeout(s.ctx, 5*time.Second)
	defer cancel()

	deleted, err := s.InvalidateUser(ctx, event.UserID)
	if err != nil {
		log.Warn().Err(err).Str("event_id", event.ID).Int64("user_id", event.UserID).Msg("Failed to invalidate user cache")
		return
	}
	log.Debug().
		Str("event_id", event.ID).
		Int64("user_id", event.UserID).
		Str("kind", string(event.Kind)).
		Str("action", string(event.Action)).
		Int("deleted", deleted).
		Msg("Invalidated user cache")
}

// InvalidateUser deletes every cached response under /api/user/{userID}/
func (s *CacheInvalidationService) InvalidateUser(ctx context.Context, userID int64) (int, error) {
	pattern := providers.UserCachePattern(userID)
	deleted, err := s.cache.DeletePattern(ctx, pattern)
	if err != nil {
		return deleted, fmt.Errorf("failed to invalidate pattern %s: %w", pattern, err)
	}
	return deleted, nil
}

// InvalidateAll deletes every cached HTTP response. The store is rebuilt on
// every start, so responses cached by a previous process are stale.
func (s *CacheInvalidationService) InvalidateAll(ctx context.Context) (int, error) {
	pattern := providers.HTTPCacheKeyPrefix + "*"
	deleted, err := s.cache.DeletePattern(ctx, pattern)
	if err != nil {
		return deleted, fmt.Errorf("failed to invalidate pattern %s: %w", pattern, err)
	}
	log.Info().Int("deleted", deleted).Msg("Flushed HTTP response cache")
	return deleted, nil
}
