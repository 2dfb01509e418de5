package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/adiii0209/Yatraa-sub000/internal/domain/entities"
)

// EventService defines the event queries the handler needs
type EventService interface {
	GetByID(ctx context.Context, id int64) (*entities.Event, error)
	List(ctx context.Context, city string) ([]*entities.Event, error)
	ListByCategory(ctx context.Context, category, city string) ([]*entities.Event, error)
	ListUpcoming(ctx context.Context, city string) ([]*entities.Event, error)
	ListByDateRange(ctx context.Context, from, to time.Time, city string) ([]*entities.Event, error)
}

// EventHandler handles event-related HTTP requests
type EventHandler struct {
	service EventService
}

// NewEventHandler creates a new event handler
func NewEventHandler(service EventService) *EventHandler {
	return &EventHandler{service: service}
}

// ListEvents handles GET /api/events
func (h *EventHandler) ListEvents(w http.ResponseWriter, r *http.Request) {
	events, err := h.service.List(r.Context(), cityParam(r))
	if err != nil {
		respondWithAppError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, events)
}

// ListUpcoming handles GET /api/events/upcoming
func (h *EventHandler) ListUpcoming(w http.ResponseWriter, r *http.Request) {
	events, err := h.service.ListUpcoming(r.Context(), cityParam(r))
	if err != nil {
		respondWithAppError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, events)
}

// ListByCategory handles GET /api/events/category/{category}
func (h *EventHandler) ListByCategory(w http.ResponseWriter, r *http.Request) {
	category := r.PathValue("category")
	if category == "" {
		respondWithError(w, http.StatusBadRequest, "category is required")
		return
	}

	events, err := h.service.ListByCategory(r.Context(), category, cityParam(r))
	if err != nil {
		respondWithAppError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, events)
}

// ListByDateRange handles GET /api/events/range?from=&to=
func (h *EventHandler) ListByDateRange(w http.ResponseWriter, r *http.Request) {
	fromStr := r.URL.Query().Get("from")
	toStr := r.URL.Query().Get("to")

	if fromStr == "" || toStr == "" {
		respondWithError(w, http.StatusBadRequest, "from and to query parameters are required")
		return
	}

	from, err := time.Parse(time.RFC3339, fromStr)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid from date format (use RFC3339)")
		return
	}

	to, err := time.Parse(time.RFC3339, toStr)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid to date format (use RFC3339)")
		return
	}

	events, err := h.service.ListByDateRange(r.Context(), from, to, cityParam(r))
	if err != nil {
		respondWithAppError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, events)
}

// GetEvent handles GET /api/events/{id}
func (h *EventHandler) GetEvent(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondWithAppError(w, r, err)
		return
	}

	event, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		respondWithAppError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, event)
}
