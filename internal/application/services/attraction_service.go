package services

import (
	"context"

	"github.com/adiii0209/Yatraa-sub000/internal/domain/entities"
	"github.com/adiii0209/Yatraa-sub000/internal/domain/repositories"
)

// AttractionService answers read queries over attractions.
// City filters on attractions are exact and case-sensitive.
type AttractionService struct {
	repo repositories.AttractionRepository
}

// NewAttractionService creates a new attraction service
func NewAttractionService(repo repositories.AttractionRepository) *AttractionService {
	return &AttractionService{repo: repo}
}

// GetByID retrieves an attraction, or a NOT_FOUND error
func (s *AttractionService) GetByID(ctx context.Context, id int64) (*entities.Attraction, error) {
	return s.repo.GetByID(ctx, id)
}

// List returns every attraction in city, or all of them when city is empty
func (s *AttractionService) List(ctx context.Context, city string) ([]*entities.Attraction, error) {
	return s.list(ctx, func(a *entities.Attraction) bool {
		return cityExact(city, a.City)
	})
}

// ListTrending returns trending attractions in city
func (s *AttractionService) ListTrending(ctx context.Context, city string) ([]*entities.Attraction, error) {
	return s.list(ctx, func(a *entities.Attraction) bool {
		return a.IsTrending && cityExact(city, a.City)
	})
}

// ListFeatured returns featured attractions in city
func (s *AttractionService) ListFeatured(ctx context.Context, city string) ([]*entities.Attraction, error) {
	return s.list(ctx, func(a *entities.Attraction) bool {
		return a.IsFeatured && cityExact(city, a.City)
	})
}

// Search matches query case-insensitively against name, description and
// category. An empty result is not an error.
func (s *AttractionService) Search(ctx context.Context, query, city string) ([]*entities.Attraction, error) {
	return s.list(ctx, func(a *entities.Attraction) bool {
		return cityExact(city, a.City) && matchesAnyFold(query, a.Name, a.Description, a.Category)
	})
}

func (s *AttractionService) list(ctx context.Context, keep func(*entities.Attraction) bool) ([]*entities.Attraction, error) {
	all, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return filterRows(all, keep), nil
}
