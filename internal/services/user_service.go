// internal/services/user_service.go
// User account lookups used by the API layer once a token is verified.

package services

import (
	"context"
	"log"

	"swiss-pairing-engine/internal/models"
	"swiss-pairing-engine/internal/repositories"
)

// UserService handles user-related business logic
type UserService struct {
	userRepo *repositories.UserRepository
	logger   *log.Logger
}

// NewUserService creates a new user service
func NewUserService(userRepo *repositories.UserRepository, logger *log.Logger) *UserService {
	return &UserService{userRepo: userRepo, logger: logger}
}

// GetByID retrieves a user by ID, never exposing the password hash.
func (s *UserService) GetByID(ctx context.Context, id uint32) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	user.PasswordHash = ""
	return user, nil
}

// List retrieves every user, for the admin listing endpoint.
func (s *UserService) List(ctx context.Context) ([]*models.User, error) {
	users, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, u := range users {
		u.PasswordHash = ""
	}
	return users, nil
}

// UpdateRole changes a user's role.
func (s *UserService) UpdateRole(ctx context.Context, id uint32, role models.UserRole) error {
	return s.userRepo.UpdateRole(ctx, id, role)
}
