package entities

import (
	"fmt"
	"time"
)

// UserFavorite links a user to an attraction they starred. Both ids are weak
// references: nothing removes the favorite when either side disappears.
type UserFavorite struct {
	ID           int64     `json:"id" db:"id"`
	UserID       int64     `json:"userId" db:"user_id"`
	AttractionID int64     `json:"attractionId" db:"attraction_id"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
}

func (f *UserFavorite) GetID() int64   { return f.ID }
func (f *UserFavorite) SetID(id int64) { f.ID = id }

// BookingStatus is the state of a UserBooking
type BookingStatus string

const (
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

// ParseBookingStatus validates a client supplied status. Empty means confirmed.
func ParseBookingStatus(s string) (BookingStatus, error) {
	switch BookingStatus(s) {
	case "":
		return BookingStatusConfirmed, nil
	case BookingStatusConfirmed, BookingStatusCancelled:
		return BookingStatus(s), nil
	default:
		return "", fmt.Errorf("unknown booking status %q", s)
	}
}

// UserBooking records a user's booking of an event. Payment happens client side.
type UserBooking struct {
	ID          int64         `json:"id" db:"id"`
	UserID      int64         `json:"userId" db:"user_id"`
	EventID     int64         `json:"eventId" db:"event_id"`
	Status      BookingStatus `json:"status" db:"status"`
	BookingDate time.Time     `json:"bookingDate" db:"booking_date"`
}

func (b *UserBooking) GetID() int64   { return b.ID }
func (b *UserBooking) SetID(id int64) { b.ID = id }

// UserItinerary is one planned attraction visit in a user's trip plan.
type UserItinerary struct {
	ID           int64      `json:"id" db:"id"`
	UserID       int64      `json:"userId" db:"user_id"`
	AttractionID int64      `json:"attractionId" db:"attraction_id"`
	VisitDate    *time.Time `json:"visitDate" db:"visit_date"`
	Notes        *string    `json:"notes" db:"notes"`
	CreatedAt    time.Time  `json:"createdAt" db:"created_at"`
}

func (i *UserItinerary) GetID() int64   { return i.ID }
func (i *UserItinerary) SetID(id int64) { i.ID = id }
