package handlers

import (
	"context"
	"net/http"
	"strings"

	"github.com/adiii0209/Yatraa-sub000/internal/domain/entities"
)

// RestaurantService defines the restaurant queries the handler needs
type RestaurantService interface {
	GetByID(ctx context.Context, id int64) (*entities.Restaurant, error)
	List(ctx context.Context, city string) ([]*entities.Restaurant, error)
	ListRecommended(ctx context.Context, city string) ([]*entities.Restaurant, error)
	Search(ctx context.Context, query, city string) ([]*entities.Restaurant, error)
}

// RestaurantHandler handles restaurant-related HTTP requests
type RestaurantHandler struct {
	service RestaurantService
}

// NewRestaurantHandler creates a new restaurant handler
func NewRestaurantHandler(service RestaurantService) *RestaurantHandler {
	return &RestaurantHandler{service: service}
}

// ListRestaurants handles GET /api/restaurants
func (h *RestaurantHandler) ListRestaurants(w http.ResponseWriter, r *http.Request) {
	restaurants, err := h.service.List(r.Context(), cityParam(r))
	if err != nil {
		respondWithAppError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, restaurants)
}

// ListRecommended handles GET /api/restaurants/recommended
func (h *RestaurantHandler) ListRecommended(w http.ResponseWriter, r *http.Request) {
	restaurants, err := h.service.ListRecommended(r.Context(), cityParam(r))
	if err != nil {
		respondWithAppError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, restaurants)
}

// SearchRestaurants handles GET /api/restaurants/search?q=
func (h *RestaurantHandler) SearchRestaurants(w http.ResponseWriter, r *http.Request) {
	query := strings.TrimSpace(r.URL.Query().Get("q"))
	if query == "" {
		respondWithError(w, http.StatusBadRequest, "search query is required")
		return
	}

	restaurants, err := h.service.Search(r.Context(), query, cityParam(r))
	if err != nil {
		respondWithAppError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, restaurants)
}

// GetRestaurant handles GET /api/restaurants/{id}
func (h *RestaurantHandler) GetRestaurant(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondWithAppError(w, r, err)
		return
	}

	restaurant, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		respondWithAppError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, restaurant)
}
