// internal/repositories/tournament_repository.go
// Tournament data access layer

package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"swiss-pairing-engine/internal/models"
)

// TournamentRepository handles tournament data access
type TournamentRepository struct {
	db *sql.DB
}

// NewTournamentRepository creates a new tournament repository
func NewTournamentRepository(db *sql.DB) *TournamentRepository {
	return &TournamentRepository{db: db}
}

// Create inserts a new tournament
func (r *TournamentRepository) Create(ctx context.Context, t *models.Tournament) (uint32, error) {
	query := `
		INSERT INTO tournaments (
			created_by, name, current_round, num_rounds, time_category,
			start_date, federation, url, updated_at, end_date
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	res, err := r.db.ExecContext(ctx, query,
		t.CreatedBy, t.Name, t.CurrentRound, t.NumRounds, t.TimeCategory,
		t.StartDate, t.Federation, t.URL, t.UpdatedAt, t.EndDate,
	)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	return uint32(id), err
}

// GetByID retrieves a tournament by ID
func (r *TournamentRepository) GetByID(ctx context.Context, id uint32) (*models.Tournament, error) {
	query := `
		SELECT id, created_by, name, current_round, num_rounds, time_category,
			start_date, federation, url, updated_at, end_date
		FROM tournaments
		WHERE id = ?
	`

	var t models.Tournament
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&t.ID, &t.CreatedBy, &t.Name, &t.CurrentRound, &t.NumRounds, &t.TimeCategory,
		&t.StartDate, &t.Federation, &t.URL, &t.UpdatedAt, &t.EndDate,
	)

	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("tournament not found")
	}
	return &t, err
}

// IncrementCurrentRoundWithTx advances the current round counter and
// refreshes updated_at, as part of a pairing-commit transaction.
func (r *TournamentRepository) IncrementCurrentRoundWithTx(ctx context.Context, tx *sql.Tx, id uint32, updatedAt interface{}) error {
	query := `UPDATE tournaments SET current_round = current_round + 1, updated_at = ? WHERE id = ?`
	_, err := tx.ExecContext(ctx, query, updatedAt, id)
	return err
}

// TouchUpdatedAtWithTx refreshes updated_at, used after a result update.
func (r *TournamentRepository) TouchUpdatedAtWithTx(ctx context.Context, tx *sql.Tx, id uint32, updatedAt interface{}) error {
	query := `UPDATE tournaments SET updated_at = ? WHERE id = ?`
	_, err := tx.ExecContext(ctx, query, updatedAt, id)
	return err
}

// EndWithTx sets end_date, closing the tournament.
func (r *TournamentRepository) EndWithTx(ctx context.Context, tx *sql.Tx, id uint32, endDate interface{}) error {
	query := `UPDATE tournaments SET end_date = ? WHERE id = ?`
	_, err := tx.ExecContext(ctx, query, endDate, id)
	return err
}

// List retrieves tournaments with pagination and filters.
func (r *TournamentRepository) List(ctx context.Context, filter ListFilter) ([]*models.Tournament, int, error) {
	var conditions []string
	var args []interface{}

	baseQuery := "FROM tournaments WHERE 1=1"

	if filter.CreatedBy != 0 {
		conditions = append(conditions, "created_by = ?")
		args = append(args, filter.CreatedBy)
	}
	if filter.Active {
		conditions = append(conditions, "end_date IS NULL")
	}
	if filter.Search != "" {
		conditions = append(conditions, "name LIKE ?")
		args = append(args, "%"+filter.Search+"%")
	}

	if len(conditions) > 0 {
		baseQuery += " AND " + strings.Join(conditions, " AND ")
	}

	countQuery := "SELECT COUNT(*) " + baseQuery
	var total int
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	selectQuery := `
		SELECT id, created_by, name, current_round, num_rounds, time_category,
			start_date, federation, url, updated_at, end_date
		` + baseQuery + " ORDER BY start_date DESC LIMIT ? OFFSET ?"
	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)

	rows, err := r.db.QueryContext(ctx, selectQuery, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	tournaments := make([]*models.Tournament, 0)
	for rows.Next() {
		var t models.Tournament
		if err := rows.Scan(
			&t.ID, &t.CreatedBy, &t.Name, &t.CurrentRound, &t.NumRounds, &t.TimeCategory,
			&t.StartDate, &t.Federation, &t.URL, &t.UpdatedAt, &t.EndDate,
		); err != nil {
			return nil, 0, err
		}
		tournaments = append(tournaments, &t)
	}

	return tournaments, total, nil
}

// ListFilter defines filtering options for tournament queries.
type ListFilter struct {
	Page      int
	Limit     int
	CreatedBy uint32
	Active    bool
	Search    string
}
