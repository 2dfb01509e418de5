package services

import (
	"context"

	"github.com/adiii0209/Yatraa-sub000/internal/domain/entities"
	"github.com/adiii0209/Yatraa-sub000/internal/infrastructure/observability"
	apperrors "github.com/adiii0209/Yatraa-sub000/pkg/errors"
)

// GetUserBookings returns the events the user holds a confirmed booking for.
// Cancelled bookings are left out.
func (s *AssociationService) GetUserBookings(ctx context.Context, userID int64) ([]*entities.Event, error) {
	bookings, err := s.GetUserBookingRecords(ctx, userID)
	if err != nil {
		return nil, err
	}

	ids := make([]int64, 0, len(bookings))
	for _, b := range bookings {
		if b.Status == entities.BookingStatusCancelled {
			continue
		}
		ids = append(ids, b.EventID)
	}
	return s.resolveEvents(ctx, ids)
}

// GetUserBookingRecords returns the user's raw booking rows in booking order
func (s *AssociationService) GetUserBookingRecords(ctx context.Context, userID int64) ([]*entities.UserBooking, error) {
	all, err := s.bookings.List(ctx)
	if err != nil {
		return nil, err
	}
	return filterRows(all, func(b *entities.UserBooking) bool {
		return b.UserID == userID
	}), nil
}

// CreateBooking books an event. An empty status means confirmed.
func (s *AssociationService) CreateBooking(ctx context.Context, userID, eventID int64, status entities.BookingStatus) (*entities.UserBooking, error) {
	if status == "" {
		status = entities.BookingStatusConfirmed
	}

	booking := &entities.UserBooking{
		UserID:      userID,
		EventID:     eventID,
		Status:      status,
		BookingDate: s.now(),
	}
	if err := s.bookings.Create(ctx, booking); err != nil {
		return nil, err
	}

	observability.LoggerFromContext(ctx).Debug().Int64("user_id", userID).Int64("event_id", eventID).Str("status", string(status)).Msg("Booking created")
	s.publish(ctx, userID, entities.ActivityKindBooking, entities.ActivityActionAdded, eventID)
	return booking, nil
}

// CancelBooking marks a booking cancelled. It reports false when the booking
// does not exist or belongs to someone else. Cancelling twice is a no-op.
func (s *AssociationService) CancelBooking(ctx context.Context, userID, bookingID int64) (*entities.UserBooking, bool, error) {
	booking, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return nil, false, nil
		}
		return nil, false, err
	}
	if booking.UserID != userID {
		return nil, false, nil
	}
	if booking.Status == entities.BookingStatusCancelled {
		return booking, true, nil
	}

	booking.Status = entities.BookingStatusCancelled
	updated, err := s.bookings.Update(ctx, booking)
	if err != nil || !updated {
		return nil, false, err
	}

	observability.LoggerFromContext(ctx).Debug().Int64("user_id", userID).Int64("booking_id", bookingID).Msg("Booking cancelled")
	s.publish(ctx, userID, entities.ActivityKindBooking, entities.ActivityActionCancelled, booking.EventID)
	return booking, true, nil
}
