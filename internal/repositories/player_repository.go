// internal/repositories/player_repository.go
// Player master-data access layer

package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"swiss-pairing-engine/internal/models"
)

// PlayerRepository handles player master-data access
type PlayerRepository struct {
	db *sql.DB
}

// NewPlayerRepository creates a new player repository
func NewPlayerRepository(db *sql.DB) *PlayerRepository {
	return &PlayerRepository{db: db}
}

// Create inserts a new player
func (r *PlayerRepository) Create(ctx context.Context, p *models.Player) (uint32, error) {
	query := `
		INSERT INTO players (
			first_name, last_name, federation, fide_id, title,
			rating, rating_rapid, rating_blitz, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	res, err := r.db.ExecContext(ctx, query,
		p.FirstName, p.LastName, p.Federation, p.FideID, p.Title,
		p.Rating, p.RatingRapid, p.RatingBlitz, p.UpdatedAt,
	)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	return uint32(id), err
}

// GetByID retrieves a player by ID
func (r *PlayerRepository) GetByID(ctx context.Context, id uint32) (*models.Player, error) {
	query := `
		SELECT id, first_name, last_name, federation, fide_id, title,
			rating, rating_rapid, rating_blitz, updated_at
		FROM players
		WHERE id = ?
	`

	var p models.Player
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&p.ID, &p.FirstName, &p.LastName, &p.Federation, &p.FideID, &p.Title,
		&p.Rating, &p.RatingRapid, &p.RatingBlitz, &p.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("player not found")
	}
	return &p, err
}

// UpdateRatingsWithTx overwrites a player's ratings, e.g. after a FIDE
// rating refresh. A nil rating leaves that column unchanged.
func (r *PlayerRepository) UpdateRatingsWithTx(ctx context.Context, tx *sql.Tx, id uint32, rating, ratingRapid, ratingBlitz *uint32, updatedAt interface{}) error {
	query := `UPDATE players SET rating = COALESCE(?, rating), rating_rapid = COALESCE(?, rating_rapid), rating_blitz = COALESCE(?, rating_blitz), updated_at = ? WHERE id = ?`
	_, err := tx.ExecContext(ctx, query, rating, ratingRapid, ratingBlitz, updatedAt, id)
	return err
}

// Search finds players by name fragment, for registration autocomplete.
func (r *PlayerRepository) Search(ctx context.Context, query string, limit int) ([]*models.Player, error) {
	sqlQuery := `
		SELECT id, first_name, last_name, federation, fide_id, title,
			rating, rating_rapid, rating_blitz, updated_at
		FROM players
		WHERE first_name LIKE ? OR last_name LIKE ?
		ORDER BY rating DESC
		LIMIT ?
	`
	pattern := "%" + query + "%"
	rows, err := r.db.QueryContext(ctx, sqlQuery, pattern, pattern, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	players := make([]*models.Player, 0)
	for rows.Next() {
		var p models.Player
		if err := rows.Scan(
			&p.ID, &p.FirstName, &p.LastName, &p.Federation, &p.FideID, &p.Title,
			&p.Rating, &p.RatingRapid, &p.RatingBlitz, &p.UpdatedAt,
		); err != nil {
			return nil, err
		}
		players = append(players, &p)
	}
	return players, nil
}
