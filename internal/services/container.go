// internal/services/container.go
// Service container provides dependency injection for all business logic services.
// This pattern makes testing easier and keeps services loosely coupled.

package services

import (
	"errors"
	"log"

	"swiss-pairing-engine/internal/config"
	"swiss-pairing-engine/internal/database"
	"swiss-pairing-engine/internal/repositories"
)

// Container holds all service instances and provides them to handlers
type Container struct {
	Auth       *AuthService
	User       *UserService
	Player     *PlayerService
	Tournament *TournamentService
	Cache      *CacheService
}

// NewContainer creates a new service container with all dependencies.
// broadcaster may be nil (e.g. in tests, or when websockets are
// disabled via config.FeatureFlags.EnableWebSocket).
func NewContainer(db *database.Connections, cfg *config.Config, broadcaster Broadcaster, logger *log.Logger) *Container {
	repos := repositories.NewContainer(db)
	cache := NewCacheService(db.Redis, logger)

	auth := NewAuthService(repos.User, cfg.Auth, logger)
	user := NewUserService(repos.User, logger)
	player := NewPlayerService(repos.Player, db.MySQL, logger)
	tournament := NewTournamentService(repos, cache, broadcaster, logger)

	return &Container{
		Auth:       auth,
		User:       user,
		Player:     player,
		Tournament: tournament,
		Cache:      cache,
	}
}

// Common errors used across services
var (
	ErrUsernameTaken      = errors.New("username already taken")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
	ErrWeakPassword       = errors.New("password does not meet strength requirements")
	ErrInvalidEmail       = errors.New("invalid email address")
)
