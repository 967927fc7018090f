// internal/repositories/registration_repository.go
// Registration data access: binds a player to a tournament.

package repositories

import (
	"context"
	"database/sql"

	"swiss-pairing-engine/internal/engine"
	"swiss-pairing-engine/internal/models"
)

// RegistrationRepository handles registration data access
type RegistrationRepository struct {
	db *sql.DB
}

// NewRegistrationRepository creates a new registration repository
func NewRegistrationRepository(db *sql.DB) *RegistrationRepository {
	return &RegistrationRepository{db: db}
}

// CreateWithTx registers a player into a tournament within the caller's
// transaction. It writes no pairing_gaps rows: a player registered after
// rounds were played has no gap rows for them, and assembly reads those
// rounds as NotPaired with score 0.
func (r *RegistrationRepository) CreateWithTx(ctx context.Context, tx *sql.Tx, reg *models.Registration) (uint32, error) {
	query := `
		INSERT INTO registrations (tournament_id, player_id, rating, status, floats)
		VALUES (?, ?, ?, ?, ?)
	`
	res, err := tx.ExecContext(ctx, query, reg.TournamentID, reg.PlayerID, reg.Rating, reg.Status, reg.Floats)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	return uint32(id), err
}

// UpdateStatus flips a registration between active and inactive.
func (r *RegistrationRepository) UpdateStatus(ctx context.Context, id uint32, status models.RegistrationStatus) error {
	query := `UPDATE registrations SET status = ? WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query, status, id)
	return err
}

// IncrementFloatsWithTx bumps the float counter for every player id given,
// called once per round after the pairing builder reports its floats.
func (r *RegistrationRepository) IncrementFloatsWithTx(ctx context.Context, tx *sql.Tx, playerIDs []uint32) error {
	query := `UPDATE registrations SET floats = floats + 1 WHERE id = ?`
	for _, id := range playerIDs {
		if _, err := tx.ExecContext(ctx, query, id); err != nil {
			return err
		}
	}
	return nil
}

// ListByTournament retrieves every registration in a tournament, joined
// with the player record, in the shape engine.BuildTournament consumes.
func (r *RegistrationRepository) ListByTournament(ctx context.Context, tournamentID uint32) ([]engine.RegistrationRow, error) {
	query := `
		SELECT r.id, r.player_id, CONCAT(p.first_name, ' ', p.last_name), r.rating,
			COALESCE(p.title, ''), r.floats, p.fide_id, p.federation, r.status
		FROM registrations r
		JOIN players p ON p.id = r.player_id
		WHERE r.tournament_id = ?
		ORDER BY r.id
	`
	rows, err := r.db.QueryContext(ctx, query, tournamentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var regs []engine.RegistrationRow
	for rows.Next() {
		var row engine.RegistrationRow
		if err := rows.Scan(
			&row.ID, &row.PlayerID, &row.Name, &row.Rating,
			&row.Title, &row.Floats, &row.FideID, &row.Federation, &row.Status,
		); err != nil {
			return nil, err
		}
		regs = append(regs, row)
	}
	return regs, nil
}
