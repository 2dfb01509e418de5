package memory

import (
	"github.com/adiii0209/Yatraa-sub000/internal/domain/entities"
)

// Store holds every entity table of the catalog. It is built once per
// process (or per test) and passed by reference to the adapters; there is no
// package level instance.
type Store struct {
	Users       *Table[entities.User, *entities.User]
	Attractions *Table[entities.Attraction, *entities.Attraction]
	Events      *Table[entities.Event, *entities.Event]
	Offers      *Table[entities.Offer, *entities.Offer]
	Restaurants *Table[entities.Restaurant, *entities.Restaurant]
	Favorites   *Table[entities.UserFavorite, *entities.UserFavorite]
	Bookings    *Table[entities.UserBooking, *entities.UserBooking]
	Itineraries *Table[entities.UserItinerary, *entities.UserItinerary]
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		Users:       NewTable[entities.User](),
		Attractions: NewTable[entities.Attraction](),
		Events:      NewTable[entities.Event](),
		Offers:      NewTable[entities.Offer](),
		Restaurants: NewTable[entities.Restaurant](),
		Favorites:   NewTable[entities.UserFavorite](),
		Bookings:    NewTable[entities.UserBooking](),
		Itineraries: NewTable[entities.UserItinerary](),
	}
}
