// internal/services/tournament_service.go
// Core tournament business logic: orchestrates the pure pairing engine
// against persisted state, inside the transactional boundaries spec.md
// calls registration-commit, pairing-commit, and result-update.

package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"swiss-pairing-engine/internal/engine"
	"swiss-pairing-engine/internal/models"
	"swiss-pairing-engine/internal/repositories"
)

// Broadcaster pushes tournament lifecycle events to connected websocket
// clients. internal/websocket.Hub implements this; kept as an interface
// here so the service package never imports the transport layer.
type Broadcaster interface {
	BroadcastPairingsGenerated(tournamentID uint32, round uint32, pairings []engine.NewPairingRow)
	BroadcastResultUpdated(tournamentID uint32, round, board uint32, result string)
}

// TournamentService handles all tournament-related business logic
type TournamentService struct {
	repos       *repositories.Container
	cache       *CacheService
	broadcaster Broadcaster
	logger      *log.Logger
}

// NewTournamentService creates a new tournament service
func NewTournamentService(
	repos *repositories.Container,
	cache *CacheService,
	broadcaster Broadcaster,
	logger *log.Logger,
) *TournamentService {
	return &TournamentService{
		repos:       repos,
		cache:       cache,
		broadcaster: broadcaster,
		logger:      logger,
	}
}

// CreateTournamentRequest represents the data needed to create a tournament
type CreateTournamentRequest struct {
	Name         string    `json:"name" binding:"required,min=3,max=255"`
	TimeCategory string    `json:"time_category" binding:"required"`
	NumRounds    int       `json:"num_rounds" binding:"required"`
	StartDate    time.Time `json:"start_date" binding:"required"`
	Federation   string    `json:"federation" binding:"required"`
	URL          *string   `json:"url"`
}

// Create validates and persists a new tournament.
func (s *TournamentService) Create(ctx context.Context, createdBy uint32, req CreateTournamentRequest) (*models.Tournament, error) {
	if !models.ValidTimeCategory(req.TimeCategory) {
		return nil, engine.ErrInvalidTimeCategory
	}
	if !models.ValidNumberOfRounds(req.NumRounds) {
		return nil, engine.ErrInvalidNumberOfRounds
	}

	tournament := &models.Tournament{
		CreatedBy:    createdBy,
		Name:         req.Name,
		TimeCategory: models.TimeCategory(req.TimeCategory),
		NumRounds:    req.NumRounds,
		StartDate:    req.StartDate,
		Federation:   req.Federation,
		URL:          req.URL,
		UpdatedAt:    time.Now(),
	}

	id, err := s.repos.Tournament.Create(ctx, tournament)
	if err != nil {
		return nil, fmt.Errorf("failed to create tournament: %w", err)
	}
	tournament.ID = id

	return tournament, nil
}

// GetByID retrieves a tournament by ID, using the cache for repeat reads.
func (s *TournamentService) GetByID(ctx context.Context, id uint32) (*models.Tournament, error) {
	cacheKey := fmt.Sprintf("tournament_%d", id)
	var tournament models.Tournament
	if err := s.cache.Get(cacheKey, &tournament); err == nil {
		return &tournament, nil
	}

	t, err := s.repos.Tournament.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, engine.ErrTournamentNotFound
	}

	if err := s.cache.Set(cacheKey, t, 5*time.Minute); err != nil {
		s.logger.Printf("failed to cache tournament %d: %v", id, err)
	}

	return t, nil
}

// List retrieves tournaments with filters
func (s *TournamentService) List(ctx context.Context, filter repositories.ListFilter) ([]*models.Tournament, int, error) {
	return s.repos.Tournament.List(ctx, filter)
}

// Register adds a player to a tournament's active roster.
func (s *TournamentService) Register(ctx context.Context, tournamentID, playerID, rating uint32) (*models.Registration, error) {
	tx, err := s.repos.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	reg := &models.Registration{
		TournamentID: tournamentID,
		PlayerID:     playerID,
		Rating:       rating,
		Status:       models.RegistrationActive,
	}
	id, err := s.repos.Registration.CreateWithTx(ctx, tx, reg)
	if err != nil {
		return nil, fmt.Errorf("failed to register player: %w", err)
	}
	reg.ID = id

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit registration: %w", err)
	}

	s.invalidate(tournamentID)
	return reg, nil
}

// loadEngineTournament assembles the pure in-memory Tournament Model for
// the given tournament id from its current persisted rows.
func (s *TournamentService) loadEngineTournament(ctx context.Context, tournamentID uint32) (*engine.Tournament, error) {
	row, err := s.repos.Tournament.GetByID(ctx, tournamentID)
	if err != nil {
		return nil, fmt.Errorf("failed to load tournament: %w", err)
	}
	if row == nil {
		return nil, engine.ErrTournamentNotFound
	}

	regs, err := s.repos.Registration.ListByTournament(ctx, tournamentID)
	if err != nil {
		return nil, fmt.Errorf("failed to load registrations: %w", err)
	}
	pairings, err := s.repos.Pairing.ListByTournament(ctx, tournamentID)
	if err != nil {
		return nil, fmt.Errorf("failed to load pairings: %w", err)
	}
	gaps, err := s.repos.Pairing.ListGapsByTournament(ctx, tournamentID)
	if err != nil {
		return nil, fmt.Errorf("failed to load pairing gaps: %w", err)
	}

	var endDate *uint32
	if row.EndDate != nil {
		ts := uint32(row.EndDate.Unix())
		endDate = &ts
	}

	data := engine.TournamentData{
		Tournament: engine.TournamentRow{
			ID:           row.ID,
			Name:         row.Name,
			CurrentRound: row.CurrentRound,
			NumRounds:    row.NumRounds,
			TimeCategory: string(row.TimeCategory),
			Federation:   row.Federation,
			StartDate:    uint32(row.StartDate.Unix()),
			EndDate:      endDate,
			URL:          row.URL,
			UserID:       row.CreatedBy,
			UpdatedAt:    uint32(row.UpdatedAt.Unix()),
		},
		Registrations: regs,
		Pairings:      pairings,
		Gaps:          gaps,
	}

	return engine.BuildTournament(data), nil
}

// GeneratePairings runs the pairing builder for a tournament's next
// round and persists the result as one pairing-commit transaction.
func (s *TournamentService) GeneratePairings(ctx context.Context, tournamentID uint32, firstColor engine.Color) (engine.NewPairings, error) {
	t, err := s.loadEngineTournament(ctx, tournamentID)
	if err != nil {
		return engine.NewPairings{}, err
	}

	pairings, err := engine.PreparePairings(t, firstColor)
	if err != nil {
		return engine.NewPairings{}, err
	}

	tx, err := s.repos.BeginTx(ctx)
	if err != nil {
		return engine.NewPairings{}, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := s.repos.Pairing.CommitRoundWithTx(ctx, tx, pairings.Pairings, pairings.Gaps); err != nil {
		return engine.NewPairings{}, fmt.Errorf("failed to commit pairings: %w", err)
	}
	if len(pairings.Floats) > 0 {
		if err := s.repos.Registration.IncrementFloatsWithTx(ctx, tx, pairings.Floats); err != nil {
			return engine.NewPairings{}, fmt.Errorf("failed to record floats: %w", err)
		}
	}
	if err := s.repos.Tournament.IncrementCurrentRoundWithTx(ctx, tx, tournamentID, time.Now()); err != nil {
		return engine.NewPairings{}, fmt.Errorf("failed to advance round: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return engine.NewPairings{}, fmt.Errorf("failed to commit pairing round: %w", err)
	}

	s.invalidate(tournamentID)
	s.recordEvent(tournamentID, pairings.Round, repositories.EventPairingsGenerated, map[string]interface{}{
		"boards": len(pairings.Pairings),
	})

	if s.broadcaster != nil {
		s.broadcaster.BroadcastPairingsGenerated(tournamentID, pairings.Round, pairings.Pairings)
	}

	return pairings, nil
}

// SubmitResult records a board's result and persists it as a
// result-update transaction.
func (s *TournamentService) SubmitResult(ctx context.Context, tournamentID, round, board uint32, resultStr string) (engine.GameResult, error) {
	t, err := s.loadEngineTournament(ctx, tournamentID)
	if err != nil {
		return engine.Ongoing, err
	}

	result := engine.ParseGameResult(resultStr)
	if result == engine.Ongoing {
		return engine.Ongoing, engine.ErrUnknown
	}
	if _, err := engine.ApplyResult(t, round, board, result); err != nil {
		return engine.Ongoing, err
	}

	tx, err := s.repos.BeginTx(ctx)
	if err != nil {
		return engine.Ongoing, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := s.repos.Pairing.UpdateResultWithTx(ctx, tx, tournamentID, round, board, models.PairingResult(result.String())); err != nil {
		return engine.Ongoing, fmt.Errorf("failed to persist result: %w", err)
	}
	if err := s.repos.Tournament.TouchUpdatedAtWithTx(ctx, tx, tournamentID, time.Now()); err != nil {
		return engine.Ongoing, fmt.Errorf("failed to touch tournament: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return engine.Ongoing, fmt.Errorf("failed to commit result: %w", err)
	}

	s.invalidate(tournamentID)
	s.recordEvent(tournamentID, round, repositories.EventResultUpdated, map[string]interface{}{
		"board":  board,
		"result": result.String(),
	})

	if s.broadcaster != nil {
		s.broadcaster.BroadcastResultUpdated(tournamentID, round, board, result.String())
	}

	return result, nil
}

// Pairings returns every committed board for a tournament, as persisted.
func (s *TournamentService) Pairings(ctx context.Context, tournamentID uint32) ([]engine.PairingRow, error) {
	return s.repos.Pairing.ListByTournament(ctx, tournamentID)
}

// Registrations returns the active and inactive roster for a tournament.
func (s *TournamentService) Registrations(ctx context.Context, tournamentID uint32) ([]engine.RegistrationRow, error) {
	return s.repos.Registration.ListByTournament(ctx, tournamentID)
}

// Standings computes the current (or historical) standings table.
func (s *TournamentService) Standings(ctx context.Context, tournamentID uint32, throughRound int) ([]engine.PlayerStanding, error) {
	t, err := s.loadEngineTournament(ctx, tournamentID)
	if err != nil {
		return nil, err
	}
	if throughRound < 0 || throughRound >= t.CurrentRound() {
		throughRound = t.CurrentRound() - 1
	}
	if throughRound < 0 {
		return []engine.PlayerStanding{}, nil
	}
	return t.Standings(throughRound), nil
}

// StandingsHistory computes the full per-round standings matrix: one
// ranking snapshot for every round played so far, round 0 through the
// current round exclusive.
func (s *TournamentService) StandingsHistory(ctx context.Context, tournamentID uint32) ([][]engine.PlayerStanding, error) {
	t, err := s.loadEngineTournament(ctx, tournamentID)
	if err != nil {
		return nil, err
	}
	rounds := t.CurrentRound()
	history := make([][]engine.PlayerStanding, rounds)
	for round := 0; round < rounds; round++ {
		history[round] = t.Standings(round)
	}
	return history, nil
}

// End closes a tournament once every round has been played.
func (s *TournamentService) End(ctx context.Context, tournamentID uint32) error {
	t, err := s.loadEngineTournament(ctx, tournamentID)
	if err != nil {
		return err
	}
	if t.CurrentRound() < t.NumRounds {
		return engine.ErrCannotEndTournament
	}
	for _, roundResults := range t.Results {
		for _, r := range roundResults {
			if r == engine.Ongoing {
				return engine.ErrRoundNotDone
			}
		}
	}

	tx, err := s.repos.BeginTx(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	now := time.Now()
	if err := s.repos.Tournament.EndWithTx(ctx, tx, tournamentID, now); err != nil {
		return fmt.Errorf("failed to end tournament: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit tournament end: %w", err)
	}

	s.invalidate(tournamentID)
	return nil
}

func (s *TournamentService) invalidate(tournamentID uint32) {
	if err := s.cache.Delete(fmt.Sprintf("tournament_%d", tournamentID)); err != nil {
		s.logger.Printf("failed to invalidate cache for tournament %d: %v", tournamentID, err)
	}
}

func (s *TournamentService) recordEvent(tournamentID, round uint32, kind repositories.EventKind, payload map[string]interface{}) {
	event := repositories.TournamentEvent{
		TournamentID: tournamentID,
		Round:        round,
		Kind:         kind,
		Payload:      payload,
		RecordedAt:   time.Now(),
	}
	if err := s.repos.Event.Record(context.Background(), event); err != nil {
		s.logger.Printf("failed to record tournament event: %v", err)
	}
}
