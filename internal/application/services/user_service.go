package services

import (
	"context"

	"github.com/adiii0209/Yatraa-sub000/internal/domain/entities"
	"github.com/adiii0209/Yatraa-sub000/internal/domain/repositories"
)

// UserService reads user profiles
type UserService struct {
	repo repositories.UserRepository
}

// NewUserService creates a new user service
func NewUserService(repo repositories.UserRepository) *UserService {
	return &UserService{repo: repo}
}

// GetByID retrieves a user, or a NOT_FOUND error. The password never leaves
// the store through JSON because the entity does not serialise it.
func (s *UserService) GetByID(ctx context.Context, id int64) (*entities.User, error) {
	return s.repo.GetByID(ctx, id)
}
