package memory

import (
	"context"
	"fmt"

	"github.com/adiii0209/Yatraa-sub000/internal/domain/entities"
	"github.com/adiii0209/Yatraa-sub000/internal/domain/repositories"
	apperrors "github.com/adiii0209/Yatraa-sub000/pkg/errors"
)

// TableAdapter implements repositories.Repository on top of a Table.
type TableAdapter[T any, P record[T]] struct {
	table *Table[T, P]
	kind  string
}

func newTableAdapter[T any, P record[T]](table *Table[T, P], kind string) *TableAdapter[T, P] {
	return &TableAdapter[T, P]{table: table, kind: kind}
}

// Create stores a copy of row and writes the assigned id back into it
func (a *TableAdapter[T, P]) Create(ctx context.Context, row *T) error {
	if row == nil {
		return apperrors.NewInternalError(fmt.Sprintf("%s is nil", a.kind), nil)
	}
	if err := ctx.Err(); err != nil {
		return apperrors.NewInternalError(fmt.Sprintf("failed to create %s", a.kind), err)
	}

	stored := a.table.Insert(*row)
	P(row).SetID(P(&stored).GetID())
	return nil
}

// GetByID retrieves a copy of a row by id
func (a *TableAdapter[T, P]) GetByID(ctx context.Context, id int64) (*T, error) {
	row, ok := a.table.Get(id)
	if !ok {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("%s with id %d not found", a.kind, id))
	}
	return &row, nil
}

// List retrieves copies of every row in insertion order
func (a *TableAdapter[T, P]) List(ctx context.Context) ([]*T, error) {
	if err := ctx.Err(); err != nil {
		return nil, apperrors.NewInternalError(fmt.Sprintf("failed to list %s", a.kind), err)
	}

	rows := a.table.All()
	result := make([]*T, len(rows))
	for i := range rows {
		result[i] = &rows[i]
	}
	return result, nil
}

// Delete removes a row by id
func (a *TableAdapter[T, P]) Delete(ctx context.Context, id int64) (bool, error) {
	return a.table.Delete(id), nil
}

// Update replaces a stored row by its id
func (a *TableAdapter[T, P]) Update(ctx context.Context, row *T) (bool, error) {
	if row == nil {
		return false, apperrors.NewInternalError(fmt.Sprintf("%s is nil", a.kind), nil)
	}
	return a.table.Replace(*row), nil
}

// NewUserAdapter creates a user repository over store
func NewUserAdapter(store *Store) repositories.UserRepository {
	return newTableAdapter(store.Users, "user")
}

// NewAttractionAdapter creates an attraction repository over store
func NewAttractionAdapter(store *Store) repositories.AttractionRepository {
	return newTableAdapter(store.Attractions, "attraction")
}

// NewEventAdapter creates an event repository over store
func NewEventAdapter(store *Store) repositories.EventRepository {
	return newTableAdapter(store.Events, "event")
}

// NewOfferAdapter creates an offer repository over store
func NewOfferAdapter(store *Store) repositories.OfferRepository {
	return newTableAdapter(store.Offers, "offer")
}

// NewRestaurantAdapter creates a restaurant repository over store
func NewRestaurantAdapter(store *Store) repositories.RestaurantRepository {
	return newTableAdapter(store.Restaurants, "restaurant")
}

// NewFavoriteAdapter creates a favorite repository over store
func NewFavoriteAdapter(store *Store) repositories.FavoriteRepository {
	return newTableAdapter(store.Favorites, "favorite")
}

// NewBookingAdapter creates a booking repository over store
func NewBookingAdapter(store *Store) repositories.BookingRepository {
	return newTableAdapter(store.Bookings, "booking")
}

// NewItineraryAdapter creates an itinerary repository over store
func NewItineraryAdapter(store *Store) repositories.ItineraryRepository {
	return newTableAdapter(store.Itineraries, "itinerary entry")
}

var (
	_ repositories.AttractionRepository = (*TableAdapter[entities.Attraction, *entities.Attraction])(nil)
	_ repositories.BookingRepository    = (*TableAdapter[entities.UserBooking, *entities.UserBooking])(nil)
)
