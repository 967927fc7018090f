// internal/engine/errors.go
// Sentinel errors the engine can return. Callers (internal/apperr, via
// internal/services) map these onto HTTP status and stable string codes;
// the engine itself has no notion of HTTP.

package engine

import "errors"

var (
	ErrTournamentEnded         = errors.New("cannot execute action after tournament has ended")
	ErrTournamentNotStarted    = errors.New("cannot execute action before tournament has started")
	ErrEmptyPairingsGenerated  = errors.New("no valid pairings available, failed to generate next round pairings")
	ErrInsufficientPlayers     = errors.New("not enough players registered")
	ErrRoundNotDone            = errors.New("cannot generate next round pairings if there are still ongoing games")
	ErrCannotEndTournament     = errors.New("cannot end tournament with remaining rounds to go")
	ErrTournamentNotFound      = errors.New("no tournament found with the provided id")
	ErrRoundNotFound           = errors.New("tournament round does not exist")
	ErrGameNotFound            = errors.New("game does not exist for the given round and board")
	ErrPlayerNotFound          = errors.New("player does not exist")
	ErrInvalidRound            = errors.New("invalid action for this round")
	ErrInsertGameHistorySkips  = errors.New("cannot skip a round when inserting game history")
	ErrDuplicatePlayerResult   = errors.New("duplicate player result, only one score per player is allowed")
	ErrInvalidPlayerStatus     = errors.New("invalid player status, possible values are: active and inactive")
	ErrInvalidPlayerScore      = errors.New("invalid score, possible values are: win, lose and draw")
	ErrInvalidPlayerID         = errors.New("invalid player id")
	ErrInvalidTimeCategory     = errors.New("time category is not valid, possible values are: blitz, rapid and standard")
	ErrInvalidNumberOfRounds   = errors.New("invalid number of rounds, must be between 2 and 30")
	ErrUnknown                 = errors.New("unknown error")
)
