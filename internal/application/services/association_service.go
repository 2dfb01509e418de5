package services

import (
	"context"

	"github.com/adiii0209/Yatraa-sub000/internal/domain/entities"
	"github.com/adiii0209/Yatraa-sub000/internal/domain/providers"
	"github.com/adiii0209/Yatraa-sub000/internal/domain/repositories"
	"github.com/adiii0209/Yatraa-sub000/internal/infrastructure/observability"
	apperrors "github.com/adiii0209/Yatraa-sub000/pkg/errors"
)

// AssociationService manages a user's favorites, bookings and itinerary and
// resolves them into the attractions and events they point at.
//
// Associations hold plain ids. Writes do not check that the target exists and
// reads silently skip targets that have since disappeared.
type AssociationService struct {
	attractions repositories.AttractionRepository
	events      repositories.EventRepository
	favorites   repositories.FavoriteRepository
	bookings    repositories.BookingRepository
	itinerary   repositories.ItineraryRepository
	eventBus    providers.EventBus
	now         Clock
}

// NewAssociationService creates a new association service. A nil clock means
// wall time.
func NewAssociationService(
	attractions repositories.AttractionRepository,
	events repositories.EventRepository,
	favorites repositories.FavoriteRepository,
	bookings repositories.BookingRepository,
	itinerary repositories.ItineraryRepository,
	now Clock,
) *AssociationService {
	if now == nil {
		now = SystemClock
	}
	return &AssociationService{
		attractions: attractions,
		events:      events,
		favorites:   favorites,
		bookings:    bookings,
		itinerary:   itinerary,
		now:         now,
	}
}

// SetEventBus enables publishing an ActivityEvent after every mutation
func (s *AssociationService) SetEventBus(bus providers.EventBus) {
	s.eventBus = bus
}

// publish is best effort: the mutation has already happened
func (s *AssociationService) publish(ctx context.Context, userID int64, kind entities.ActivityKind, action entities.ActivityAction, targetID int64) {
	if s.eventBus == nil {
		return
	}
	event := entities.NewActivityEvent(userID, kind, action, targetID, s.now())
	if err := s.eventBus.Publish(ctx, providers.EventChannelUserActivity, event); err != nil {
		observability.LoggerFromContext(ctx).Warn().Err(err).
			Int64("user_id", userID).
			Str("kind", string(kind)).
			Str("action", string(action)).
			Msg("Failed to publish activity event")
	}
}

// resolveAttractions maps ids to attractions, skipping ids that no longer resolve
func (s *AssociationService) resolveAttractions(ctx context.Context, ids []int64) ([]*entities.Attraction, error) {
	result := make([]*entities.Attraction, 0, len(ids))
	for _, id := range ids {
		attraction, err := s.attractions.GetByID(ctx, id)
		if apperrors.IsNotFound(err) {
			observability.LoggerFromContext(ctx).Debug().Int64("attraction_id", id).Msg("Skipping dangling attraction reference")
			continue
		}
		if err != nil {
			return nil, err
		}
		result = append(result, attraction)
	}
	return result, nil
}

// resolveEvents maps ids to events, skipping ids that no longer resolve
func (s *AssociationService) resolveEvents(ctx context.Context, ids []int64) ([]*entities.Event, error) {
	result := make([]*entities.Event, 0, len(ids))
	for _, id := range ids {
		event, err := s.events.GetByID(ctx, id)
		if apperrors.IsNotFound(err) {
			observability.LoggerFromContext(ctx).Debug().Int64("event_id", id).Msg("Skipping dangling event reference")
			continue
		}
		if err != nil {
			return nil, err
		}
		result = append(result, event)
	}
	return result, nil
}

// GetUserFavorites returns the attractions user has starred, in the order
// they were starred
func (s *AssociationService) GetUserFavorites(ctx context.Context, userID int64) ([]*entities.Attraction, error) {
	favorites, err := s.userFavorites(ctx, userID)
	if err != nil {
		return nil, err
	}
	ids := make([]int64, len(favorites))
	for i, f := range favorites {
		ids[i] = f.AttractionID
	}
	return s.resolveAttractions(ctx, ids)
}

// AddUserFavorite stars an attraction. Repeated calls create repeated rows.
func (s *AssociationService) AddUserFavorite(ctx context.Context, userID, attractionID int64) (*entities.UserFavorite, error) {
	favorite := &entities.UserFavorite{
		UserID:       userID,
		AttractionID: attractionID,
		CreatedAt:    s.now(),
	}
	if err := s.favorites.Create(ctx, favorite); err != nil {
		return nil, err
	}

	observability.LoggerFromContext(ctx).Debug().Int64("user_id", userID).Int64("attraction_id", attractionID).Msg("Favorite added")
	s.publish(ctx, userID, entities.ActivityKindFavorite, entities.ActivityActionAdded, attractionID)
	return favorite, nil
}

// RemoveUserFavorite deletes the first matching favorite in store order and
// reports whether one was found
func (s *AssociationService) RemoveUserFavorite(ctx context.Context, userID, attractionID int64) (bool, error) {
	favorites, err := s.userFavorites(ctx, userID)
	if err != nil {
		return false, err
	}

	for _, f := range favorites {
		if f.AttractionID != attractionID {
			continue
		}
		removed, err := s.favorites.Delete(ctx, f.ID)
		if err != nil || !removed {
			return removed, err
		}
		observability.LoggerFromContext(ctx).Debug().Int64("user_id", userID).Int64("attraction_id", attractionID).Msg("Favorite removed")
		s.publish(ctx, userID, entities.ActivityKindFavorite, entities.ActivityActionRemoved, attractionID)
		return true, nil
	}
	return false, nil
}

// IsFavorite reports whether user has starred the attraction
func (s *AssociationService) IsFavorite(ctx context.Context, userID, attractionID int64) (bool, error) {
	favorites, err := s.userFavorites(ctx, userID)
	if err != nil {
		return false, err
	}
	for _, f := range favorites {
		if f.AttractionID == attractionID {
			return true, nil
		}
	}
	return false, nil
}

func (s *AssociationService) userFavorites(ctx context.Context, userID int64) ([]*entities.UserFavorite, error) {
	all, err := s.favorites.List(ctx)
	if err != nil {
		return nil, err
	}
	return filterRows(all, func(f *entities.UserFavorite) bool {
		return f.UserID == userID
	}), nil
}
