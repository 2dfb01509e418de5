package services

import (
	"context"
	"sort"
	"time"

	"github.com/adiii0209/Yatraa-sub000/internal/domain/entities"
	"github.com/adiii0209/Yatraa-sub000/internal/domain/repositories"
	apperrors "github.com/adiii0209/Yatraa-sub000/pkg/errors"
)

// EventService answers read queries over events
type EventService struct {
	repo repositories.EventRepository
	now  Clock
}

// NewEventService creates a new event service. A nil clock means wall time.
func NewEventService(repo repositories.EventRepository, now Clock) *EventService {
	if now == nil {
		now = SystemClock
	}
	return &EventService{repo: repo, now: now}
}

// GetByID retrieves an event, or a NOT_FOUND error
func (s *EventService) GetByID(ctx context.Context, id int64) (*entities.Event, error) {
	return s.repo.GetByID(ctx, id)
}

// List returns every event in city (exact match), or all of them
func (s *EventService) List(ctx context.Context, city string) ([]*entities.Event, error) {
	return s.list(ctx, func(e *entities.Event) bool {
		return cityExact(city, e.City)
	})
}

// ListByCategory returns events whose category equals category exactly
func (s *EventService) ListByCategory(ctx context.Context, category, city string) ([]*entities.Event, error) {
	return s.list(ctx, func(e *entities.Event) bool {
		return e.Category == category && cityExact(city, e.City)
	})
}

// ListUpcoming returns events starting at or after the current instant,
// soonest first
func (s *EventService) ListUpcoming(ctx context.Context, city string) ([]*entities.Event, error) {
	now := s.now()
	events, err := s.list(ctx, func(e *entities.Event) bool {
		return !e.StartDate.Before(now) && cityExact(city, e.City)
	})
	if err != nil {
		return nil, err
	}
	sortByStart(events)
	return events, nil
}

// ListByDateRange returns events running at any point in [from, to],
// soonest first. from after to is a validation error.
func (s *EventService) ListByDateRange(ctx context.Context, from, to time.Time, city string) ([]*entities.Event, error) {
	if from.After(to) {
		return nil, apperrors.NewValidationError("from must not be after to")
	}
	events, err := s.list(ctx, func(e *entities.Event) bool {
		return e.Overlaps(from, to) && cityExact(city, e.City)
	})
	if err != nil {
		return nil, err
	}
	sortByStart(events)
	return events, nil
}

func (s *EventService) list(ctx context.Context, keep func(*entities.Event) bool) ([]*entities.Event, error) {
	all, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return filterRows(all, keep), nil
}

func sortByStart(events []*entities.Event) {
	sort.SliceStable(events, func(i, j int) bool {
		return events[i].StartDate.Before(events[j].StartDate)
	})
}
