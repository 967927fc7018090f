// internal/models/pairing.go
// Pairing and pairing-gap rows: the board assignments and bye/skip
// records a round actually persists.

package models

// PairingResult is the stored wire string for a board's result, matching
// spec.md's grammar: NULL/"*"=ongoing, "1-0", "0-1", "=-=", "0-0".
type PairingResult string

const (
	ResultOngoing    PairingResult = "*"
	ResultWhiteWins  PairingResult = "1-0"
	ResultDraw       PairingResult = "=-="
	ResultBlackWins  PairingResult = "0-1"
	ResultDoubleLoss PairingResult = "0-0"
)

// Pairing is a row in the pairings table: one board of one round.
type Pairing struct {
	ID           uint32  `json:"id" db:"id"`
	TournamentID uint32  `json:"tournament_id" db:"tournament_id"`
	RoundNumber  uint32  `json:"round_number" db:"round_number"`
	BoardNumber  uint32  `json:"board_number" db:"board_number"`
	WhiteID      uint32  `json:"white_id" db:"white_id"`
	BlackID      uint32  `json:"black_id" db:"black_id"`
	Result       *string `json:"result,omitempty" db:"result"`
	PGN          *string `json:"pgn,omitempty" db:"pgn"`
}

// PairingGap is a row in the pairing_gaps table: a bye or a
// did-not-pair entry for one player in one round.
type PairingGap struct {
	ID           uint32 `json:"id" db:"id"`
	TournamentID uint32 `json:"tournament_id" db:"tournament_id"`
	PlayerID     uint32 `json:"player_id" db:"player_id"`
	RoundID      uint32 `json:"round_id" db:"round_id"`
	Score        uint32 `json:"score" db:"score"`
	IsBye        bool   `json:"is_bye" db:"is_bye"`
}
