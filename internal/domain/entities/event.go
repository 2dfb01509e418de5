package entities

import (
	"fmt"
	"time"
)

// Event is a dated happening (festival, concert, fair) that may be bookable.
type Event struct {
	ID          int64      `json:"id" yaml:"id" db:"id"`
	Title       string     `json:"title" yaml:"title" db:"title"`
	Description string     `json:"description" yaml:"description" db:"description"`
	Category    string     `json:"category" yaml:"category" db:"category"`
	City        string     `json:"city" yaml:"city" db:"city"`
	Venue       string     `json:"venue" yaml:"venue" db:"venue"`
	ImageURL    string     `json:"imageUrl" yaml:"imageUrl" db:"image_url"`
	StartDate   time.Time  `json:"startDate" yaml:"startDate" db:"start_date"`
	EndDate     *time.Time `json:"endDate" yaml:"endDate" db:"end_date"`
	Price       string     `json:"price" yaml:"price" db:"price"` // "Free" or an amount
	IsBookable  bool       `json:"isBookable" yaml:"isBookable" db:"is_bookable"`
	Organizer   *string    `json:"organizer" yaml:"organizer" db:"organizer"`
}

func (e *Event) GetID() int64   { return e.ID }
func (e *Event) SetID(id int64) { e.ID = id }

// Validate checks the date invariant: an end date never precedes the start.
func (e *Event) Validate() error {
	if e.StartDate.IsZero() {
		return fmt.Errorf("event %q has no start date", e.Title)
	}
	if e.EndDate != nil && e.EndDate.Before(e.StartDate) {
		return fmt.Errorf("event %q ends before it starts", e.Title)
	}
	return nil
}

// Overlaps reports whether the event runs at any point within [from, to].
func (e *Event) Overlaps(from, to time.Time) bool {
	end := e.StartDate
	if e.EndDate != nil {
		end = *e.EndDate
	}
	return !e.StartDate.After(to) && !end.Before(from)
}
