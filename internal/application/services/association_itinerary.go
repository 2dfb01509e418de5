package services

import (
	"context"
	"time"

	"github.com/adiii0209/Yatraa-sub000/internal/domain/entities"
	"github.com/adiii0209/Yatraa-sub000/internal/infrastructure/observability"
)

// GetUserItinerary returns the attractions on the user's trip plan
func (s *AssociationService) GetUserItinerary(ctx context.Context, userID int64) ([]*entities.Attraction, error) {
	entries, err := s.GetUserItineraryEntries(ctx, userID)
	if err != nil {
		return nil, err
	}
	ids := make([]int64, len(entries))
	for i, e := range entries {
		ids[i] = e.AttractionID
	}
	return s.resolveAttractions(ctx, ids)
}

// GetUserItineraryEntries returns the raw itinerary rows with visit dates and notes
func (s *AssociationService) GetUserItineraryEntries(ctx context.Context, userID int64) ([]*entities.UserItinerary, error) {
	all, err := s.itinerary.List(ctx)
	if err != nil {
		return nil, err
	}
	return filterRows(all, func(i *entities.UserItinerary) bool {
		return i.UserID == userID
	}), nil
}

// AddToItinerary plans a visit. visitDate and notes are optional.
func (s *AssociationService) AddToItinerary(ctx context.Context, userID, attractionID int64, visitDate *time.Time, notes *string) (*entities.UserItinerary, error) {
	entry := &entities.UserItinerary{
		UserID:       userID,
		AttractionID: attractionID,
		VisitDate:    visitDate,
		Notes:        notes,
		CreatedAt:    s.now(),
	}
	if err := s.itinerary.Create(ctx, entry); err != nil {
		return nil, err
	}

	observability.LoggerFromContext(ctx).Debug().Int64("user_id", userID).Int64("attraction_id", attractionID).Msg("Itinerary entry added")
	s.publish(ctx, userID, entities.ActivityKindItinerary, entities.ActivityActionAdded, attractionID)
	return entry, nil
}

// RemoveFromItinerary deletes the first matching entry in store order
func (s *AssociationService) RemoveFromItinerary(ctx context.Context, userID, attractionID int64) (bool, error) {
	entries, err := s.GetUserItineraryEntries(ctx, userID)
	if err != nil {
		return false, err
	}

	for _, e := range entries {
		if e.AttractionID != attractionID {
			continue
		}
		removed, err := s.itinerary.Delete(ctx, e.ID)
		if err != nil || !removed {
			return removed, err
		}
		observability.LoggerFromContext(ctx).Debug().Int64("user_id", userID).Int64("attraction_id", attractionID).Msg("Itinerary entry removed")
		s.publish(ctx, userID, entities.ActivityKindItinerary, entities.ActivityActionRemoved, attractionID)
		return true, nil
	}
	return false, nil
}
