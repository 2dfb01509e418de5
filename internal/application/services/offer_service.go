package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/adiii0209/Yatraa-sub000/internal/domain/entities"
	"github.com/adiii0209/Yatraa-sub000/internal/domain/repositories"
	apperrors "github.com/adiii0209/Yatraa-sub000/pkg/errors"
)

// OfferService answers read queries over offers
type OfferService struct {
	repo repositories.OfferRepository
	now  Clock
}

// NewOfferService creates a new offer service. A nil clock means wall time.
func NewOfferService(repo repositories.OfferRepository, now Clock) *OfferService {
	if now == nil {
		now = SystemClock
	}
	return &OfferService{repo: repo, now: now}
}

// GetByID retrieves an offer, or a NOT_FOUND error
func (s *OfferService) GetByID(ctx context.Context, id int64) (*entities.Offer, error) {
	return s.repo.GetByID(ctx, id)
}

// GetByCode finds the first offer whose promo code matches code ignoring case
func (s *OfferService) GetByCode(ctx context.Context, code string) (*entities.Offer, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, apperrors.NewValidationError("code is required")
	}

	offers, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, o := range offers {
		if strings.EqualFold(o.Code, code) {
			return o, nil
		}
	}
	return nil, apperrors.NewNotFoundError(fmt.Sprintf("offer with code %s not found", code))
}

// List returns every offer
func (s *OfferService) List(ctx context.Context) ([]*entities.Offer, error) {
	return s.list(ctx, func(*entities.Offer) bool { return true })
}

// ListByCategory returns offers whose category equals category exactly
func (s *OfferService) ListByCategory(ctx context.Context, category string) ([]*entities.Offer, error) {
	return s.list(ctx, func(o *entities.Offer) bool {
		return o.Category == category
	})
}

// ListActive returns offers that are switched on and not yet expired
func (s *OfferService) ListActive(ctx context.Context) ([]*entities.Offer, error) {
	now := s.now()
	return s.list(ctx, func(o *entities.Offer) bool {
		return o.RedeemableAt(now)
	})
}

func (s *OfferService) list(ctx context.Context, keep func(*entities.Offer) bool) ([]*entities.Offer, error) {
	all, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return filterRows(all, keep), nil
}
