package repositories

import (
	"context"

	"github.com/adiii0209/Yatraa-sub000/internal/domain/entities"
)

// Repository defines the raw record operations every entity kind supports.
//
// GetByID returns a NOT_FOUND AppError for unknown ids. List returns records
// in insertion order; callers that need a specific order must sort.
type Repository[T any] interface {
	// Create assigns the next id for the kind and stores a copy of record
	Create(ctx context.Context, record *T) error

	// GetByID retrieves a record by id
	GetByID(ctx context.Context, id int64) (*T, error)

	// List retrieves every stored record
	List(ctx context.Context) ([]*T, error)

	// Delete removes a record, reporting whether it existed
	Delete(ctx context.Context, id int64) (bool, error)
}

// UserRepository stores users
type UserRepository = Repository[entities.User]

// AttractionRepository stores attractions
type AttractionRepository = Repository[entities.Attraction]

// EventRepository stores events
type EventRepository = Repository[entities.Event]

// OfferRepository stores offers
type OfferRepository = Repository[entities.Offer]

// RestaurantRepository stores restaurants
type RestaurantRepository = Repository[entities.Restaurant]

// FavoriteRepository stores user favorites
type FavoriteRepository = Repository[entities.UserFavorite]

// ItineraryRepository stores itinerary entries
type ItineraryRepository = Repository[entities.UserItinerary]

// BookingRepository stores bookings; unlike other associations a booking's
// status can change after creation.
type BookingRepository interface {
	Repository[entities.UserBooking]

	// Update replaces a stored booking, reporting whether it existed
	Update(ctx context.Context, booking *entities.UserBooking) (bool, error)
}
