package handlers_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/adiii0209/Yatraa-sub000/internal/adapters/memory"
	"github.com/adiii0209/Yatraa-sub000/internal/api/handlers"
	"github.com/adiii0209/Yatraa-sub000/internal/application/services"
	"github.com/adiii0209/Yatraa-sub000/internal/seed"
)

var fixedNow = time.Date(2026, 10, 17, 12, 0, 0, 0, time.FixedZone("IST", 5*3600+1800))

func fixedClock() time.Time { return fixedNow }

type testServer struct {
	mux   *http.ServeMux
	store *memory.Store
}

// newTestServer wires real services over a freshly seeded store
func newTestServer(t *testing.T) *testServer {
	t.Helper()
	store, err := seed.NewStore(context.Background(), fixedNow)
	require.NoError(t, err)

	attractions := memory.NewAttractionAdapter(store)
	events := memory.NewEventAdapter(store)

	associations := services.NewAssociationService(
		attractions,
		events,
		memory.NewFavoriteAdapter(store),
		memory.NewBookingAdapter(store),
		memory.NewItineraryAdapter(store),
		fixedClock,
	)

	mux := http.NewServeMux()
	registerAttractions(mux, handlers.NewAttractionHandler(services.NewAttractionService(attractions)))
	registerEvents(mux, handlers.NewEventHandler(services.NewEventService(events, fixedClock)))
	registerOffers(mux, handlers.NewOfferHandler(services.NewOfferService(memory.NewOfferAdapter(store), fixedClock)))
	registerRestaurants(mux, handlers.NewRestaurantHandler(services.NewRestaurantService(memory.NewRestaurantAdapter(store))))
	registerUsers(mux, handlers.NewUserHandler(services.NewUserService(memory.NewUserAdapter(store)), associations))

	return &testServer{mux: mux, store: store}
}

func registerAttractions(mux *http.ServeMux, h *handlers.AttractionHandler) {
	mux.HandleFunc("GET /api/attractions", h.ListAttractions)
	mux.HandleFunc("GET /api/attractions/trending", h.ListTrending)
	mux.HandleFunc("GET /api/attractions/featured", h.ListFeatured)
	mux.HandleFunc("GET /api/attractions/search", h.SearchAttractions)
	mux.HandleFunc("GET /api/attractions/{id}", h.GetAttraction)
}

func registerEvents(mux *http.ServeMux, h *handlers.EventHandler) {
	mux.HandleFunc("GET /api/events", h.ListEvents)
	mux.HandleFunc("GET /api/events/upcoming", h.ListUpcoming)
	mux.HandleFunc("GET /api/events/range", h.ListByDateRange)
	mux.HandleFunc("GET /api/events/category/{category}", h.ListByCategory)
	mux.HandleFunc("GET /api/events/{id}", h.GetEvent)
}

func registerOffers(mux *http.ServeMux, h *handlers.OfferHandler) {
	mux.HandleFunc("GET /api/offers", h.ListOffers)
	mux.HandleFunc("GET /api/offers/active", h.ListActive)
	mux.HandleFunc("GET /api/offers/category/{category}", h.ListByCategory)
	mux.HandleFunc("GET /api/offers/code/{code}", h.GetOfferByCode)
	mux.HandleFunc("GET /api/offers/{id}", h.GetOffer)
}

func registerRestaurants(mux *http.ServeMux, h *handlers.RestaurantHandler) {
	mux.HandleFunc("GET /api/restaurants", h.ListRestaurants)
	mux.HandleFunc("GET /api/restaurants/recommended", h.ListRecommended)
	mux.HandleFunc("GET /api/restaurants/search", h.SearchRestaurants)
	mux.HandleFunc("GET /api/restaurants/{id}", h.GetRestaurant)
}

func registerUsers(mux *http.ServeMux, h *handlers.UserHandler) {
	mux.HandleFunc("GET /api/user/{id}", h.GetUser)
	mux.HandleFunc("GET /api/user/{userId}/favorites", h.GetFavorites)
	mux.HandleFunc("POST /api/user/{userId}/favorites", h.AddFavorite)
	mux.HandleFunc("GET /api/user/{userId}/favorites/{attractionId}", h.IsFavorite)
	mux.HandleFunc("DELETE /api/user/{userId}/favorites/{attractionId}", h.RemoveFavorite)
	mux.HandleFunc("GET /api/user/{userId}/bookings", h.GetBookings)
	mux.HandleFunc("GET /api/user/{userId}/bookings/records", h.GetBookingRecords)
	mux.HandleFunc("POST /api/user/{userId}/bookings", h.CreateBooking)
	mux.HandleFunc("POST /api/user/{userId}/bookings/{bookingId}/cancel", h.CancelBooking)
	mux.HandleFunc("GET /api/user/{userId}/itinerary", h.GetItinerary)
	mux.HandleFunc("GET /api/user/{userId}/itinerary/entries", h.GetItineraryEntries)
	mux.HandleFunc("POST /api/user/{userId}/itinerary", h.AddToItinerary)
	mux.HandleFunc("DELETE /api/user/{userId}/itinerary/{attractionId}", h.RemoveFromItinerary)
}

func (s *testServer) do(method, target, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	s.mux.ServeHTTP(w, req)
	return w
}

func decodeBody[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

func names(rows []map[string]any, field string) []string {
	out := make([]string, 0, len(rows))
	for _, row := range rows {
		if s, ok := row[field].(string); ok {
			out = append(out, s)
		}
	}
	return out
}

func errorMessage(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	return decodeBody[map[string]string](t, w)["error"]
}
