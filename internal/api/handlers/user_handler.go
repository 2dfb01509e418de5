package handlers

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/adiii0209/Yatraa-sub000/internal/domain/entities"
	apperrors "github.com/adiii0209/Yatraa-sub000/pkg/errors"
)

// UserService defines the profile lookup the handler needs
type UserService interface {
	GetByID(ctx context.Context, id int64) (*entities.User, error)
}

// AssociationService defines the favorites, bookings and itinerary
// operations the handler needs
type AssociationService interface {
	GetUserFavorites(ctx context.Context, userID int64) ([]*entities.Attraction, error)
	AddUserFavorite(ctx context.Context, userID, attractionID int64) (*entities.UserFavorite, error)
	RemoveUserFavorite(ctx context.Context, userID, attractionID int64) (bool, error)
	IsFavorite(ctx context.Context, userID, attractionID int64) (bool, error)

	GetUserBookings(ctx context.Context, userID int64) ([]*entities.Event, error)
	GetUserBookingRecords(ctx context.Context, userID int64) ([]*entities.UserBooking, error)
	CreateBooking(ctx context.Context, userID, eventID int64, status entities.BookingStatus) (*entities.UserBooking, error)
	CancelBooking(ctx context.Context, userID, bookingID int64) (*entities.UserBooking, bool, error)

	GetUserItinerary(ctx context.Context, userID int64) ([]*entities.Attraction, error)
	GetUserItineraryEntries(ctx context.Context, userID int64) ([]*entities.UserItinerary, error)
	AddToItinerary(ctx context.Context, userID, attractionID int64, visitDate *time.Time, notes *string) (*entities.UserItinerary, error)
	RemoveFromItinerary(ctx context.Context, userID, attractionID int64) (bool, error)
}

// UserHandler handles user profile and association HTTP requests
type UserHandler struct {
	users        UserService
	associations AssociationService
}

// NewUserHandler creates a new user handler
func NewUserHandler(users UserService, associations AssociationService) *UserHandler {
	return &UserHandler{
		users:        users,
		associations: associations,
	}
}

type favoriteRequest struct {
	AttractionID int64 `json:"attractionId"`
}

type bookingRequest struct {
	EventID int64  `json:"eventId"`
	Status  string `json:"status"`
}

type itineraryRequest struct {
	AttractionID int64   `json:"attractionId"`
	VisitDate    *string `json:"visitDate"`
	Notes        *string `json:"notes"`
}

// GetUser handles GET /api/user/{id}
func (h *UserHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondWithAppError(w, r, err)
		return
	}

	user, err := h.users.GetByID(r.Context(), id)
	if err != nil {
		respondWithAppError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, user)
}

// GetFavorites handles GET /api/user/{userId}/favorites
func (h *UserHandler) GetFavorites(w http.ResponseWriter, r *http.Request) {
	userID, err := pathID(r, "userId")
	if err != nil {
		respondWithAppError(w, r, err)
		return
	}

	attractions, err := h.associations.GetUserFavorites(r.Context(), userID)
	if err != nil {
		respondWithAppError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, attractions)
}

// AddFavorite handles POST /api/user/{userId}/favorites
func (h *UserHandler) AddFavorite(w http.ResponseWriter, r *http.Request) {
	userID, err := pathID(r, "userId")
	if err != nil {
		respondWithAppError(w, r, err)
		return
	}

	var req favoriteRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondWithAppError(w, r, err)
		return
	}
	if req.AttractionID <= 0 {
		respondWithError(w, http.StatusBadRequest, "attractionId is required")
		return
	}

	favorite, err := h.associations.AddUserFavorite(r.Context(), userID, req.AttractionID)
	if err != nil {
		respondWithAppError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, favorite)
}

// IsFavorite handles GET /api/user/{userId}/favorites/{attractionId}
func (h *UserHandler) IsFavorite(w http.ResponseWriter, r *http.Request) {
	userID, attractionID, err := userAndTarget(r, "attractionId")
	if err != nil {
		respondWithAppError(w, r, err)
		return
	}

	isFavorite, err := h.associations.IsFavorite(r.Context(), userID, attractionID)
	if err != nil {
		respondWithAppError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]bool{"isFavorite": isFavorite})
}

// RemoveFavorite handles DELETE /api/user/{userId}/favorites/{attractionId}
func (h *UserHandler) RemoveFavorite(w http.ResponseWriter, r *http.Request) {
	userID, attractionID, err := userAndTarget(r, "attractionId")
	if err != nil {
		respondWithAppError(w, r, err)
		return
	}

	removed, err := h.associations.RemoveUserFavorite(r.Context(), userID, attractionID)
	if err != nil {
		respondWithAppError(w, r, err)
		return
	}
	if !removed {
		respondWithError(w, http.StatusNotFound, "favorite not found")
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// GetBookings handles GET /api/user/{userId}/bookings
func (h *UserHandler) GetBookings(w http.ResponseWriter, r *http.Request) {
	userID, err := pathID(r, "userId")
	if err != nil {
		respondWithAppError(w, r, err)
		return
	}

	events, err := h.associations.GetUserBookings(r.Context(), userID)
	if err != nil {
		respondWithAppError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, events)
}

// GetBookingRecords handles GET /api/user/{userId}/bookings/records
func (h *UserHandler) GetBookingRecords(w http.ResponseWriter, r *http.Request) {
	userID, err := pathID(r, "userId")
	if err != nil {
		respondWithAppError(w, r, err)
		return
	}

	bookings, err := h.associations.GetUserBookingRecords(r.Context(), userID)
	if err != nil {
		respondWithAppError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, bookings)
}

// CreateBooking handles POST /api/user/{userId}/bookings
func (h *UserHandler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	userID, err := pathID(r, "userId")
	if err != nil {
		respondWithAppError(w, r, err)
		return
	}

	var req bookingRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondWithAppError(w, r, err)
		return
	}
	if req.EventID <= 0 {
		respondWithError(w, http.StatusBadRequest, "eventId is required")
		return
	}
	status, err := entities.ParseBookingStatus(strings.TrimSpace(req.Status))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	booking, err := h.associations.CreateBooking(r.Context(), userID, req.EventID, status)
	if err != nil {
		respondWithAppError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, booking)
}

// CancelBooking handles POST /api/user/{userId}/bookings/{bookingId}/cancel
func (h *UserHandler) CancelBooking(w http.ResponseWriter, r *http.Request) {
	userID, bookingID, err := userAndTarget(r, "bookingId")
	if err != nil {
		respondWithAppError(w, r, err)
		return
	}

	booking, ok, err := h.associations.CancelBooking(r.Context(), userID, bookingID)
	if err != nil {
		respondWithAppError(w, r, err)
		return
	}
	if !ok {
		respondWithError(w, http.StatusNotFound, "booking not found")
		return
	}
	respondWithJSON(w, http.StatusOK, booking)
}

// GetItinerary handles GET /api/user/{userId}/itinerary
func (h *UserHandler) GetItinerary(w http.ResponseWriter, r *http.Request) {
	userID, err := pathID(r, "userId")
	if err != nil {
		respondWithAppError(w, r, err)
		return
	}

	attractions, err := h.associations.GetUserItinerary(r.Context(), userID)
	if err != nil {
		respondWithAppError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, attractions)
}

// GetItineraryEntries handles GET /api/user/{userId}/itinerary/entries
func (h *UserHandler) GetItineraryEntries(w http.ResponseWriter, r *http.Request) {
	userID, err := pathID(r, "userId")
	if err != nil {
		respondWithAppError(w, r, err)
		return
	}

	entries, err := h.associations.GetUserItineraryEntries(r.Context(), userID)
	if err != nil {
		respondWithAppError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, entries)
}

// AddToItinerary handles POST /api/user/{userId}/itinerary
func (h *UserHandler) AddToItinerary(w http.ResponseWriter, r *http.Request) {
	userID, err := pathID(r, "userId")
	if err != nil {
		respondWithAppError(w, r, err)
		return
	}

	var req itineraryRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondWithAppError(w, r, err)
		return
	}
	if req.AttractionID <= 0 {
		respondWithError(w, http.StatusBadRequest, "attractionId is required")
		return
	}

	visitDate, err := parseVisitDate(req.VisitDate)
	if err != nil {
		respondWithAppError(w, r, err)
		return
	}

	entry, err := h.associations.AddToItinerary(r.Context(), userID, req.AttractionID, visitDate, req.Notes)
	if err != nil {
		respondWithAppError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, entry)
}

// RemoveFromItinerary handles DELETE /api/user/{userId}/itinerary/{attractionId}
func (h *UserHandler) RemoveFromItinerary(w http.ResponseWriter, r *http.Request) {
	userID, attractionID, err := userAndTarget(r, "attractionId")
	if err != nil {
		respondWithAppError(w, r, err)
		return
	}

	removed, err := h.associations.RemoveFromItinerary(r.Context(), userID, attractionID)
	if err != nil {
		respondWithAppError(w, r, err)
		return
	}
	if !removed {
		respondWithError(w, http.StatusNotFound, "itinerary entry not found")
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]bool{"success": true})
}

func userAndTarget(r *http.Request, target string) (int64, int64, error) {
	userID, err := pathID(r, "userId")
	if err != nil {
		return 0, 0, err
	}
	targetID, err := pathID(r, target)
	if err != nil {
		return 0, 0, err
	}
	return userID, targetID, nil
}

// parseVisitDate accepts RFC3339 timestamps and plain YYYY-MM-DD dates
func parseVisitDate(raw *string) (*time.Time, error) {
	if raw == nil || strings.TrimSpace(*raw) == "" {
		return nil, nil
	}
	value := strings.TrimSpace(*raw)
	for _, layout := range []string{time.RFC3339, time.DateOnly} {
		if t, err := time.Parse(layout, value); err == nil {
			return &t, nil
		}
	}
	return nil, apperrors.NewValidationError("invalid visitDate (use RFC3339 or YYYY-MM-DD)")
}
