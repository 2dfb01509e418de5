package entities

import (
	"time"

	"github.com/google/uuid"
)

// ActivityKind names the association an ActivityEvent touched
type ActivityKind string

const (
	ActivityKindFavorite  ActivityKind = "favorite"
	ActivityKindBooking   ActivityKind = "booking"
	ActivityKindItinerary ActivityKind = "itinerary"
)

// ActivityAction is what happened to the association
type ActivityAction string

const (
	ActivityActionAdded     ActivityAction = "added"
	ActivityActionRemoved   ActivityAction = "removed"
	ActivityActionCancelled ActivityAction = "cancelled"
)

// ActivityEvent is published whenever a user's favorites, bookings or
// itinerary change.
type ActivityEvent struct {
	ID        string         `json:"id"`
	UserID    int64          `json:"userId"`
	Kind      ActivityKind   `json:"kind"`
	Action    ActivityAction `json:"action"`
	TargetID  int64          `json:"targetId"`
	Timestamp time.Time      `json:"timestamp"`
}

// NewActivityEvent creates a new activity event stamped with now.
func NewActivityEvent(userID int64, kind ActivityKind, action ActivityAction, targetID int64, now time.Time) *ActivityEvent {
	return &ActivityEvent{
		ID:        uuid.NewString(),
		UserID:    userID,
		Kind:      kind,
		Action:    action,
		TargetID:  targetID,
		Timestamp: now,
	}
}
