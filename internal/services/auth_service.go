// internal/services/auth_service.go
// Authentication and authorization service

package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"swiss-pairing-engine/internal/config"
	"swiss-pairing-engine/internal/models"
	"swiss-pairing-engine/internal/repositories"
	"swiss-pairing-engine/internal/utils"

	"golang.org/x/crypto/bcrypt"
)

// AuthService handles authentication and authorization
type AuthService struct {
	userRepo *repositories.UserRepository
	config   config.AuthConfig
	logger   *log.Logger
}

// NewAuthService creates a new auth service
func NewAuthService(userRepo *repositories.UserRepository, config config.AuthConfig, logger *log.Logger) *AuthService {
	return &AuthService{userRepo: userRepo, config: config, logger: logger}
}

// Register creates a new user account with the standard role.
func (s *AuthService) Register(ctx context.Context, req models.RegisterRequest) (*models.User, *models.TokenPair, error) {
	exists, err := s.userRepo.ExistsByUsername(ctx, req.Username)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to check username: %w", err)
	}
	if exists {
		return nil, nil, ErrUsernameTaken
	}

	if err := utils.ValidatePassword(req.Password); err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrWeakPassword, err)
	}
	if req.Email != "" {
		if err := utils.ValidateEmail(req.Email); err != nil {
			return nil, nil, fmt.Errorf("%w: %v", ErrInvalidEmail, err)
		}
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.config.BCryptCost)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Username:     req.Username,
		PasswordHash: string(hashedPassword),
		Email:        utils.StringPtr(req.Email),
		Role:         models.RoleStandard,
		CreatedAt:    time.Now(),
	}

	id, err := s.userRepo.Create(ctx, user)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create user: %w", err)
	}
	user.ID = id

	tokenPair, err := s.generateToken(user)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to generate token: %w", err)
	}

	user.PasswordHash = ""
	return user, tokenPair, nil
}

// Login authenticates a user and returns a token.
func (s *AuthService) Login(ctx context.Context, username, password string) (*models.User, *models.TokenPair, error) {
	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, nil, ErrInvalidCredentials
	}

	tokenPair, err := s.generateToken(user)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to generate token: %w", err)
	}

	user.PasswordHash = ""
	return user, tokenPair, nil
}

// EnsureAdmin bootstraps an admin account at startup if one does not
// already exist for the given username, per SPEC_FULL.md §6.6.
func (s *AuthService) EnsureAdmin(ctx context.Context, username, password string) error {
	if username == "" {
		return nil
	}
	exists, err := s.userRepo.ExistsByUsername(ctx, username)
	if err != nil {
		return fmt.Errorf("failed to check admin username: %w", err)
	}
	if exists {
		return nil
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), s.config.BCryptCost)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	_, err = s.userRepo.Create(ctx, &models.User{
		Username:     username,
		PasswordHash: string(hashedPassword),
		Role:         models.RoleAdmin,
		CreatedAt:    time.Now(),
	})
	if err != nil {
		return fmt.Errorf("failed to create admin user: %w", err)
	}
	s.logger.Printf("bootstrapped admin user %q", username)
	return nil
}

// generateToken issues the single bearer JWT this service hands out.
func (s *AuthService) generateToken(user *models.User) (*models.TokenPair, error) {
	accessToken, err := utils.GenerateJWT(user.ID, string(user.Role), s.config.JWTSecret, s.config.JWTExpiration)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	return &models.TokenPair{
		AccessToken: accessToken,
		ExpiresAt:   time.Now().Add(s.config.JWTExpiration),
	}, nil
}

// ValidateToken validates a JWT token and returns the user ID and role.
func (s *AuthService) ValidateToken(token string) (uint32, string, error) {
	userID, role, err := utils.ValidateJWT(token, s.config.JWTSecret)
	if err != nil {
		return 0, "", ErrInvalidToken
	}
	return userID, role, nil
}

// ChangePassword changes a user's password after verifying the current one.
func (s *AuthService) ChangePassword(ctx context.Context, userID uint32, currentPassword, newPassword string) error {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("user not found: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(currentPassword)); err != nil {
		return ErrInvalidCredentials
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(newPassword), s.config.BCryptCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	return s.userRepo.UpdatePasswordHash(ctx, userID, string(hashedPassword))
}
