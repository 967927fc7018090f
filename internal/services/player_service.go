// internal/services/player_service.go
// Player master-data lookups and registration support.

package services

import (
	"context"
	"database/sql"
	"log"
	"time"

	"swiss-pairing-engine/internal/models"
	"swiss-pairing-engine/internal/repositories"
	"swiss-pairing-engine/internal/utils"
)

// PlayerService manages the player pool shared across tournaments.
type PlayerService struct {
	playerRepo *repositories.PlayerRepository
	db         *sql.DB
	logger     *log.Logger
}

// NewPlayerService creates a new player service.
func NewPlayerService(playerRepo *repositories.PlayerRepository, db *sql.DB, logger *log.Logger) *PlayerService {
	return &PlayerService{playerRepo: playerRepo, db: db, logger: logger}
}

// CreatePlayerRequest is the data needed to add a player to the pool.
type CreatePlayerRequest struct {
	FirstName   string  `json:"first_name" binding:"required"`
	LastName    string  `json:"last_name" binding:"required"`
	Federation  *string `json:"federation"`
	FideID      *uint32 `json:"fide_id"`
	Title       *string `json:"title"`
	Rating      *uint32 `json:"rating"`
	RatingRapid *uint32 `json:"rating_rapid"`
	RatingBlitz *uint32 `json:"rating_blitz"`
}

// Create adds a new player to the pool.
func (s *PlayerService) Create(ctx context.Context, req CreatePlayerRequest) (*models.Player, error) {
	player := &models.Player{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Federation:  req.Federation,
		FideID:      req.FideID,
		Title:       req.Title,
		Rating:      req.Rating,
		RatingRapid: req.RatingRapid,
		RatingBlitz: req.RatingBlitz,
	}

	id, err := s.playerRepo.Create(ctx, player)
	if err != nil {
		return nil, err
	}
	player.ID = id
	return player, nil
}

// GetByID retrieves a player by ID.
func (s *PlayerService) GetByID(ctx context.Context, id uint32) (*models.Player, error) {
	return s.playerRepo.GetByID(ctx, id)
}

// Search looks up players by name for registration autocomplete.
func (s *PlayerService) Search(ctx context.Context, query string, limit int) ([]*models.Player, error) {
	return s.playerRepo.Search(ctx, query, limit)
}

// RefreshRatingsRequest carries a rating refresh from an external source
// (e.g. a FIDE scrape). A zero value means "unknown, leave unchanged".
type RefreshRatingsRequest struct {
	Rating      uint32 `json:"rating"`
	RatingRapid uint32 `json:"rating_rapid"`
	RatingBlitz uint32 `json:"rating_blitz"`
}

// RefreshRatings overwrites a player's ratings, e.g. after a FIDE lookup.
func (s *PlayerService) RefreshRatings(ctx context.Context, id uint32, req RefreshRatingsRequest) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := s.playerRepo.UpdateRatingsWithTx(ctx, tx,
		id,
		utils.Uint32Ptr(req.Rating),
		utils.Uint32Ptr(req.RatingRapid),
		utils.Uint32Ptr(req.RatingBlitz),
		time.Now(),
	); err != nil {
		return err
	}

	return tx.Commit()
}
