// internal/apperr/apperr.go
// A discriminated application error: every failure the API can report
// carries a stable string code, an HTTP status, and a human message.
// internal/middleware's RespondError is the single seam that turns one
// of these into a JSON response; engine/services sentinel errors get
// mapped onto a value here at the service boundary.

package apperr

import "net/http"

// Error is the application-wide error type returned by services and
// consumed by middleware.RespondError.
type Error struct {
	Code       string
	HTTPStatus int
	Message    string
	Cause      error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// WithCause attaches an underlying error without changing code/status.
func (e *Error) WithCause(cause error) *Error {
	return &Error{Code: e.Code, HTTPStatus: e.HTTPStatus, Message: e.Message, Cause: cause}
}

func newErr(code string, status int, message string) *Error {
	return &Error{Code: code, HTTPStatus: status, Message: message}
}

// Declared once per discriminant named in spec.md §7's error taxonomy.
var (
	InvalidTimeCategory    = newErr("invalid_time_category", http.StatusBadRequest, "time category must be blitz, rapid, or standard")
	InvalidNumberOfRounds  = newErr("invalid_number_of_rounds", http.StatusBadRequest, "number of rounds must be between 2 and 30")
	InvalidPlayerStatus    = newErr("invalid_player_status", http.StatusBadRequest, "player status must be active or inactive")
	InvalidPlayerScore     = newErr("invalid_player_score", http.StatusBadRequest, "score must be win, lose, or draw")
	InvalidPlayerID        = newErr("invalid_player_id", http.StatusBadRequest, "invalid player id")
	InvalidRound           = newErr("invalid_round", http.StatusBadRequest, "invalid action for this round")
	DuplicatePlayerResult  = newErr("duplicate_player_result", http.StatusBadRequest, "only one score per player is allowed")
	InsufficientPlayers    = newErr("insufficient_players", http.StatusBadRequest, "not enough active players to pair a round")
	EmptyPairingsGenerated = newErr("empty_pairings_generated", http.StatusConflict, "failed to generate next round pairings")
	InsertSkipsRound       = newErr("insert_skips_round", http.StatusBadRequest, "cannot skip a round when inserting game history")
	TournamentNotStarted   = newErr("tournament_not_started", http.StatusConflict, "tournament has not started yet")
	TournamentEnded        = newErr("tournament_ended", http.StatusConflict, "tournament has already ended")
	RoundNotDone           = newErr("round_not_done", http.StatusConflict, "cannot generate next round while games are ongoing")
	CannotEndTournament    = newErr("cannot_end_tournament", http.StatusConflict, "cannot end a tournament with rounds remaining")
	TournamentNotFound     = newErr("tournament_not_found", http.StatusNotFound, "tournament not found")
	RoundNotFound          = newErr("round_not_found", http.StatusNotFound, "round not found")
	GameNotFound           = newErr("game_not_found", http.StatusNotFound, "game not found for that round and board")
	PlayerNotFound         = newErr("player_not_found", http.StatusNotFound, "player not found")
	InvalidAuthHeader      = newErr("invalid_auth_header", http.StatusUnauthorized, "missing or malformed Authorization header")
	TokenInvalid           = newErr("token_invalid", http.StatusUnauthorized, "invalid or expired token")
	LoginFailed            = newErr("login_failed", http.StatusUnauthorized, "invalid username or password")
	InsufficientPermissions = newErr("insufficient_permissions", http.StatusForbidden, "insufficient permissions")
	UsernameTaken          = newErr("username_taken", http.StatusConflict, "username already taken")
	WeakPassword           = newErr("weak_password", http.StatusBadRequest, "password does not meet strength requirements")
	InvalidEmail           = newErr("invalid_email", http.StatusBadRequest, "invalid email address")
	MissingContentType     = newErr("missing_content_type", http.StatusBadRequest, "Content-Type must be application/json")
	InvalidJSON            = newErr("invalid_json", http.StatusBadRequest, "request body is not valid JSON")
	DatabaseError          = newErr("database_error", http.StatusInternalServerError, "a database error occurred")
	Unknown                = newErr("unknown", http.StatusInternalServerError, "an unknown error occurred")
	FideScrapeFailed       = newErr("fide_scrape_failed", http.StatusBadGateway, "failed to fetch rating data from FIDE")
)

// New builds a fresh error for a code not covered by the package
// variables (kept for forward compatibility / tests).
func New(code string, status int, message string) *Error {
	return newErr(code, status, message)
}
