package handlers

import (
	"context"
	"net/http"
	"strings"

	"github.com/adiii0209/Yatraa-sub000/internal/domain/entities"
)

// AttractionService defines the attraction queries the handler needs
type AttractionService interface {
	GetByID(ctx context.Context, id int64) (*entities.Attraction, error)
	List(ctx context.Context, city string) ([]*entities.Attraction, error)
	ListTrending(ctx context.Context, city string) ([]*entities.Attraction, error)
	ListFeatured(ctx context.Context, city string) ([]*entities.Attraction, error)
	Search(ctx context.Context, query, city string) ([]*entities.Attraction, error)
}

// AttractionHandler handles attraction-related HTTP requests
type AttractionHandler struct {
	service AttractionService
}

// NewAttractionHandler creates a new attraction handler
func NewAttractionHandler(service AttractionService) *AttractionHandler {
	return &AttractionHandler{service: service}
}

// ListAttractions handles GET /api/attractions
func (h *AttractionHandler) ListAttractions(w http.ResponseWriter, r *http.Request) {
	h.respondWithList(w, r, h.service.List)
}

// ListTrending handles GET /api/attractions/trending
func (h *AttractionHandler) ListTrending(w http.ResponseWriter, r *http.Request) {
	h.respondWithList(w, r, h.service.ListTrending)
}

// ListFeatured handles GET /api/attractions/featured
func (h *AttractionHandler) ListFeatured(w http.ResponseWriter, r *http.Request) {
	h.respondWithList(w, r, h.service.ListFeatured)
}

// SearchAttractions handles GET /api/attractions/search?q=
func (h *AttractionHandler) SearchAttractions(w http.ResponseWriter, r *http.Request) {
	query := strings.TrimSpace(r.URL.Query().Get("q"))
	if query == "" {
		respondWithError(w, http.StatusBadRequest, "search query is required")
		return
	}

	attractions, err := h.service.Search(r.Context(), query, cityParam(r))
	if err != nil {
		respondWithAppError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, attractions)
}

// GetAttraction handles GET /api/attractions/{id}
func (h *AttractionHandler) GetAttraction(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondWithAppError(w, r, err)
		return
	}

	attraction, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		respondWithAppError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, attraction)
}

func (h *AttractionHandler) respondWithList(w http.ResponseWriter, r *http.Request, list func(context.Context, string) ([]*entities.Attraction, error)) {
	attractions, err := list(r.Context(), cityParam(r))
	if err != nil {
		respondWithAppError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, attractions)
}
