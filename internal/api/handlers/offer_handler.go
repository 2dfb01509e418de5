package handlers

import (
	"context"
	"net/http"

	"github.com/adiii0209/Yatraa-sub000/internal/domain/entities"
)

// OfferService defines the offer queries the handler needs
type OfferService interface {
	GetByID(ctx context.Context, id int64) (*entities.Offer, error)
	GetByCode(ctx context.Context, code string) (*entities.Offer, error)
	List(ctx context.Context) ([]*entities.Offer, error)
	ListByCategory(ctx context.Context, category string) ([]*entities.Offer, error)
	ListActive(ctx context.Context) ([]*entities.Offer, error)
}

// OfferHandler handles offer-related HTTP requests
type OfferHandler struct {
	service OfferService
}

// NewOfferHandler creates a new offer handler
func NewOfferHandler(service OfferService) *OfferHandler {
	return &OfferHandler{service: service}
}

// ListOffers handles GET /api/offers
func (h *OfferHandler) ListOffers(w http.ResponseWriter, r *http.Request) {
	offers, err := h.service.List(r.Context())
	if err != nil {
		respondWithAppError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, offers)
}

// ListActive handles GET /api/offers/active
func (h *OfferHandler) ListActive(w http.ResponseWriter, r *http.Request) {
	offers, err := h.service.ListActive(r.Context())
	if err != nil {
		respondWithAppError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, offers)
}

// ListByCategory handles GET /api/offers/category/{category}
func (h *OfferHandler) ListByCategory(w http.ResponseWriter, r *http.Request) {
	category := r.PathValue("category")
	if category == "" {
		respondWithError(w, http.StatusBadRequest, "category is required")
		return
	}

	offers, err := h.service.ListByCategory(r.Context(), category)
	if err != nil {
		respondWithAppError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, offers)
}

// GetOffer handles GET /api/offers/{id}
func (h *OfferHandler) GetOffer(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondWithAppError(w, r, err)
		return
	}

	offer, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		respondWithAppError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, offer)
}

// GetOfferByCode handles GET /api/offers/code/{code}
func (h *OfferHandler) GetOfferByCode(w http.ResponseWriter, r *http.Request) {
	offer, err := h.service.GetByCode(r.Context(), r.PathValue("code"))
	if err != nil {
		respondWithAppError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, offer)
}
