package services

import (
	"context"

	"github.com/adiii0209/Yatraa-sub000/internal/domain/entities"
	"github.com/adiii0209/Yatraa-sub000/internal/domain/repositories"
)

// RestaurantService answers read queries over restaurants.
// Unlike attractions, restaurant city filters ignore case.
type RestaurantService struct {
	repo repositories.RestaurantRepository
}

// NewRestaurantService creates a new restaurant service
func NewRestaurantService(repo repositories.RestaurantRepository) *RestaurantService {
	return &RestaurantService{repo: repo}
}

// GetByID retrieves a restaurant, or a NOT_FOUND error
func (s *RestaurantService) GetByID(ctx context.Context, id int64) (*entities.Restaurant, error) {
	return s.repo.GetByID(ctx, id)
}

// List returns every restaurant in city, or all of them when city is empty
func (s *RestaurantService) List(ctx context.Context, city string) ([]*entities.Restaurant, error) {
	return s.list(ctx, func(r *entities.Restaurant) bool {
		return cityFold(city, r.City)
	})
}

// ListRecommended returns recommended restaurants in city
func (s *RestaurantService) ListRecommended(ctx context.Context, city string) ([]*entities.Restaurant, error) {
	return s.list(ctx, func(r *entities.Restaurant) bool {
		return r.IsRecommended && cityFold(city, r.City)
	})
}

// Search matches query case-insensitively against name, description and cuisine
func (s *RestaurantService) Search(ctx context.Context, query, city string) ([]*entities.Restaurant, error) {
	return s.list(ctx, func(r *entities.Restaurant) bool {
		return cityFold(city, r.City) && matchesAnyFold(query, r.Name, r.Description, r.Cuisine)
	})
}

func (s *RestaurantService) list(ctx context.Context, keep func(*entities.Restaurant) bool) ([]*entities.Restaurant, error) {
	all, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return filterRows(all, keep), nil
}
