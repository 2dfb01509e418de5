package handlers_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/adiii0209/Yatraa-sub000/internal/api/handlers"
	"github.com/adiii0209/Yatraa-sub000/internal/domain/entities"
	apperrors "github.com/adiii0209/Yatraa-sub000/pkg/errors"
)

func TestUserHandler_GetUser_HidesPassword(t *testing.T) {
	srv := newTestServer(t)

	w := srv.do("GET", "/api/user/1", "")
	require.Equal(t, http.StatusOK, w.Code)

	user := decodeBody[map[string]any](t, w)
	assert.NotContains(t, user, "password")
	assert.Equal(t, "traveler", user["username"])
	assert.NotContains(t, w.Body.String(), "demo-password")

	w = srv.do("GET", "/api/user/2", "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = srv.do("GET", "/api/user/me", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUserHandler_FavoriteRoundTrip(t *testing.T) {
	srv := newTestServer(t)

	w := srv.do("GET", "/api/user/1/favorites", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[]\n", w.Body.String())

	w = srv.do("POST", "/api/user/1/favorites", `{"attractionId":2}`)
	require.Equal(t, http.StatusCreated, w.Code)
	favorite := decodeBody[map[string]any](t, w)
	assert.Equal(t, float64(1), favorite["userId"])
	assert.Equal(t, float64(2), favorite["attractionId"])

	w = srv.do("GET", "/api/user/1/favorites", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []string{"Howrah Bridge"}, names(decodeBody[[]map[string]any](t, w), "name"))

	w = srv.do("GET", "/api/user/1/favorites/2", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, map[string]bool{"isFavorite": true}, decodeBody[map[string]bool](t, w))

	w = srv.do("DELETE", "/api/user/1/favorites/2", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, map[string]bool{"success": true}, decodeBody[map[string]bool](t, w))

	w = srv.do("GET", "/api/user/1/favorites", "")
	assert.Equal(t, "[]\n", w.Body.String())

	w = srv.do("GET", "/api/user/1/favorites/2", "")
	assert.Equal(t, map[string]bool{"isFavorite": false}, decodeBody[map[string]bool](t, w))
}

func TestUserHandler_RemoveMissingFavorite(t *testing.T) {
	srv := newTestServer(t)

	w := srv.do("DELETE", "/api/user/1/favorites/99999", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "favorite not found", errorMessage(t, w))
}

func TestUserHandler_FavoriteSkipsDeletedAttraction(t *testing.T) {
	srv := newTestServer(t)

	require.Equal(t, http.StatusCreated, srv.do("POST", "/api/user/1/favorites", `{"attractionId":3}`).Code)
	require.Equal(t, http.StatusCreated, srv.do("POST", "/api/user/1/favorites", `{"attractionId":4}`).Code)
	require.True(t, srv.store.Attractions.Delete(3))

	w := srv.do("GET", "/api/user/1/favorites", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []string{"Kalighat Temple"}, names(decodeBody[[]map[string]any](t, w), "name"))
}

func TestUserHandler_AddFavoriteBadInput(t *testing.T) {
	srv := newTestServer(t)

	tests := []struct {
		name string
		body string
	}{
		{"missing id", `{}`},
		{"zero id", `{"attractionId":0}`},
		{"malformed", `{"attractionId":`},
		{"wrong type", `{"attractionId":"two"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := srv.do("POST", "/api/user/1/favorites", tt.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.NotEmpty(t, errorMessage(t, w))
		})
	}
}

func TestUserHandler_Bookings(t *testing.T) {
	srv := newTestServer(t)

	w := srv.do("POST", "/api/user/1/bookings", `{"eventId":2}`)
	require.Equal(t, http.StatusCreated, w.Code)
	booking := decodeBody[map[string]any](t, w)
	assert.Equal(t, "confirmed", booking["status"])
	bookingID := int64(booking["id"].(float64))

	w = srv.do("GET", "/api/user/1/bookings", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []string{"Durga Puja Pandal Hopping Tour"}, names(decodeBody[[]map[string]any](t, w), "title"))

	w = srv.do("POST", fmt.Sprintf("/api/user/1/bookings/%d/cancel", bookingID), "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "cancelled", decodeBody[map[string]any](t, w)["status"])

	w = srv.do("GET", "/api/user/1/bookings", "")
	assert.Equal(t, "[]\n", w.Body.String())

	w = srv.do("GET", "/api/user/1/bookings/records", "")
	require.Equal(t, http.StatusOK, w.Code)
	records := decodeBody[[]map[string]any](t, w)
	require.Len(t, records, 1)
	assert.Equal(t, "cancelled", records[0]["status"])
}

func TestUserHandler_BookingErrors(t *testing.T) {
	srv := newTestServer(t)

	w := srv.do("POST", "/api/user/1/bookings", `{"eventId":2,"status":"pending"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = srv.do("POST", "/api/user/1/bookings", `{"status":"confirmed"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "eventId is required", errorMessage(t, w))

	w = srv.do("POST", "/api/user/1/bookings/42/cancel", "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = srv.do("POST", "/api/user/1/bookings", `{"eventId":2}`)
	require.Equal(t, http.StatusCreated, w.Code)
	id := int64(decodeBody[map[string]any](t, w)["id"].(float64))

	w = srv.do("POST", fmt.Sprintf("/api/user/7/bookings/%d/cancel", id), "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUserHandler_Itinerary(t *testing.T) {
	srv := newTestServer(t)

	w := srv.do("POST", "/api/user/1/itinerary", `{"attractionId":7,"visitDate":"2026-11-02","notes":"Sunrise at 4:30"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	entry := decodeBody[map[string]any](t, w)
	assert.Equal(t, "2026-11-02T00:00:00Z", entry["visitDate"])
	assert.Equal(t, "Sunrise at 4:30", entry["notes"])

	w = srv.do("POST", "/api/user/1/itinerary", `{"attractionId":8,"visitDate":"2026-11-02T14:00:00+05:30"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	w = srv.do("POST", "/api/user/1/itinerary", `{"attractionId":9}`)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Nil(t, decodeBody[map[string]any](t, w)["visitDate"])

	w = srv.do("GET", "/api/user/1/itinerary", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t,
		[]string{"Tiger Hill", "Darjeeling Himalayan Railway", "Sundarbans National Park"},
		names(decodeBody[[]map[string]any](t, w), "name"))

	w = srv.do("DELETE", "/api/user/1/itinerary/8", "")
	assert.Equal(t, http.StatusOK, w.Code)

	w = srv.do("GET", "/api/user/1/itinerary/entries", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decodeBody[[]map[string]any](t, w), 2)

	w = srv.do("DELETE", "/api/user/1/itinerary/8", "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = srv.do("POST", "/api/user/1/itinerary", `{"attractionId":7,"visitDate":"next week"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// failingAssociations fails every call with an unexpected error
type failingAssociations struct{ handlers.AssociationService }

var errStoreDown = errors.New("store exploded: table lock poisoned")

func (failingAssociations) GetUserFavorites(ctx context.Context, userID int64) ([]*entities.Attraction, error) {
	return nil, errStoreDown
}

func (failingAssociations) AddToItinerary(ctx context.Context, userID, attractionID int64, visitDate *time.Time, notes *string) (*entities.UserItinerary, error) {
	return nil, apperrors.NewInternalError("failed to add itinerary entry", errStoreDown)
}

type stubUsers struct{}

func (stubUsers) GetByID(ctx context.Context, id int64) (*entities.User, error) {
	return nil, apperrors.NewNotFoundError("user not found")
}

func TestUserHandler_InternalErrorsAreGeneric(t *testing.T) {
	h := handlers.NewUserHandler(stubUsers{}, failingAssociations{})
	mux := http.NewServeMux()
	registerUsers(mux, h)

	tests := []struct {
		name   string
		method string
		target string
		body   string
	}{
		{"plain error", "GET", "/api/user/1/favorites", ""},
		{"internal app error", "POST", "/api/user/1/itinerary", `{"attractionId":1}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.target, strings.NewReader(tt.body))
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)

			assert.Equal(t, http.StatusInternalServerError, w.Code)
			assert.Equal(t, "internal server error", errorMessage(t, w))
			assert.NotContains(t, w.Body.String(), "poisoned")
		})
	}
}

func TestUserHandler_InternalErrorRecordedOnSpan(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })

	h := handlers.NewUserHandler(stubUsers{}, failingAssociations{})
	mux := http.NewServeMux()
	registerUsers(mux, h)

	ctx, span := tp.Tracer("test").Start(context.Background(), "GET /api/user/{userId}/favorites")
	req := httptest.NewRequest("GET", "/api/user/1/favorites", nil).WithContext(ctx)
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)
	span.End()

	require.Equal(t, http.StatusInternalServerError, w.Code)
	spans := recorder.Ended()
	require.Len(t, spans, 1)
	require.Len(t, spans[0].Events(), 1)
	assert.Equal(t, "exception", spans[0].Events()[0].Name)
}

func TestUserHandler_NotFoundNotRecordedOnSpan(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })

	h := handlers.NewUserHandler(stubUsers{}, failingAssociations{})
	mux := http.NewServeMux()
	registerUsers(mux, h)

	ctx, span := tp.Tracer("test").Start(context.Background(), "GET /api/user/{id}")
	req := httptest.NewRequest("GET", "/api/user/1", nil).WithContext(ctx)
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)
	span.End()

	require.Equal(t, http.StatusNotFound, w.Code)
	require.Len(t, recorder.Ended(), 1)
	assert.Empty(t, recorder.Ended()[0].Events())
}

func TestHealth(t *testing.T) {
	w := httptest.NewRecorder()
	handlers.Health(w, httptest.NewRequest("GET", "/health", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "OK", w.Body.String())
}
