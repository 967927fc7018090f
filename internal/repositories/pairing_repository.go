// internal/repositories/pairing_repository.go
// Pairing and pairing-gap data access layer.

package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"swiss-pairing-engine/internal/engine"
	"swiss-pairing-engine/internal/models"
)

// PairingRepository handles pairing and pairing-gap data access.
type PairingRepository struct {
	db *sql.DB
}

// NewPairingRepository creates a new pairing repository
func NewPairingRepository(db *sql.DB) *PairingRepository {
	return &PairingRepository{db: db}
}

// CommitRoundWithTx persists an entire round's boards and gap rows
// within one transaction, the atomic unit spec.md §5 calls pairing-commit.
func (r *PairingRepository) CommitRoundWithTx(ctx context.Context, tx *sql.Tx, pairings []engine.NewPairingRow, gaps []engine.NewGapRow) error {
	pairingQuery := `
		INSERT INTO pairings (tournament_id, round_number, board_number, white_id, black_id, result)
		VALUES (?, ?, ?, ?, ?, NULL)
	`
	for _, p := range pairings {
		if _, err := tx.ExecContext(ctx, pairingQuery, p.TournamentID, p.Round, p.Board, p.WhiteID, p.BlackID); err != nil {
			return fmt.Errorf("insert pairing: %w", err)
		}
	}

	gapQuery := `
		INSERT INTO pairing_gaps (tournament_id, player_id, round_id, score, is_bye)
		VALUES (?, ?, ?, ?, ?)
	`
	for _, g := range gaps {
		if _, err := tx.ExecContext(ctx, gapQuery, g.TournamentID, g.PlayerID, g.Round, g.Score, g.IsBye); err != nil {
			return fmt.Errorf("insert pairing gap: %w", err)
		}
	}

	return nil
}

// UpdateResultWithTx writes a board's result string, the atomic unit
// spec.md §5 calls result-update.
func (r *PairingRepository) UpdateResultWithTx(ctx context.Context, tx *sql.Tx, tournamentID, round, board uint32, result models.PairingResult) error {
	query := `
		UPDATE pairings SET result = ?
		WHERE tournament_id = ? AND round_number = ? AND board_number = ?
	`
	res, err := tx.ExecContext(ctx, query, string(result), tournamentID, round, board)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("no pairing found for tournament %d round %d board %d", tournamentID, round, board)
	}
	return nil
}

// ListByTournament retrieves every pairing row for a tournament, in the
// shape engine.BuildTournament consumes.
func (r *PairingRepository) ListByTournament(ctx context.Context, tournamentID uint32) ([]engine.PairingRow, error) {
	query := `
		SELECT round_number, board_number, white_id, black_id, result
		FROM pairings
		WHERE tournament_id = ?
		ORDER BY round_number, board_number
	`
	rows, err := r.db.QueryContext(ctx, query, tournamentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var pairings []engine.PairingRow
	for rows.Next() {
		var p engine.PairingRow
		if err := rows.Scan(&p.RoundNumber, &p.BoardNumber, &p.WhiteID, &p.BlackID, &p.Result); err != nil {
			return nil, err
		}
		pairings = append(pairings, p)
	}
	return pairings, nil
}

// ListGapsByTournament retrieves every pairing_gaps row for a tournament.
func (r *PairingRepository) ListGapsByTournament(ctx context.Context, tournamentID uint32) ([]engine.PairingGapRow, error) {
	query := `
		SELECT player_id, round_id, score, is_bye
		FROM pairing_gaps
		WHERE tournament_id = ?
		ORDER BY round_id
	`
	rows, err := r.db.QueryContext(ctx, query, tournamentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var gaps []engine.PairingGapRow
	for rows.Next() {
		var g engine.PairingGapRow
		if err := rows.Scan(&g.PlayerID, &g.RoundID, &g.Score, &g.IsBye); err != nil {
			return nil, err
		}
		gaps = append(gaps, g)
	}
	return gaps, nil
}
