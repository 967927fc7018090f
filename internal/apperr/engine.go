// internal/apperr/engine.go
// Maps internal/engine sentinel errors onto apperr values, the seam
// services.Container-wired services use before returning from a handler.

package apperr

import (
	"errors"

	"swiss-pairing-engine/internal/engine"
)

var engineErrors = map[error]*Error{
	engine.ErrTournamentEnded:        TournamentEnded,
	engine.ErrTournamentNotStarted:   TournamentNotStarted,
	engine.ErrEmptyPairingsGenerated: EmptyPairingsGenerated,
	engine.ErrInsufficientPlayers:    InsufficientPlayers,
	engine.ErrRoundNotDone:           RoundNotDone,
	engine.ErrCannotEndTournament:    CannotEndTournament,
	engine.ErrTournamentNotFound:     TournamentNotFound,
	engine.ErrRoundNotFound:          RoundNotFound,
	engine.ErrGameNotFound:           GameNotFound,
	engine.ErrPlayerNotFound:         PlayerNotFound,
	engine.ErrInvalidRound:           InvalidRound,
	engine.ErrInsertGameHistorySkips: InsertSkipsRound,
	engine.ErrDuplicatePlayerResult:  DuplicatePlayerResult,
	engine.ErrInvalidPlayerStatus:    InvalidPlayerStatus,
	engine.ErrInvalidPlayerScore:     InvalidPlayerScore,
	engine.ErrInvalidPlayerID:        InvalidPlayerID,
	engine.ErrInvalidTimeCategory:    InvalidTimeCategory,
	engine.ErrInvalidNumberOfRounds:  InvalidNumberOfRounds,
	engine.ErrUnknown:                Unknown,
}

// FromEngine maps an engine sentinel error to its apperr value, falling
// back to Unknown (wrapping err as the cause) for anything unrecognized.
func FromEngine(err error) *Error {
	for sentinel, mapped := range engineErrors {
		if errors.Is(err, sentinel) {
			return mapped
		}
	}
	return Unknown.WithCause(err)
}
