// internal/engine/model.go
// Core in-memory types for the Swiss pairing engine. Nothing in this
// package touches the database, the network, or a clock: it is pure
// data plus pure functions over that data.

package engine

import "strings"

// Title is a FIDE-style player title, ordered from lowest to highest so
// Title values can be compared directly for TPN seeding.
type Title int

const (
	Untitled Title = iota
	WNM
	WCM
	WFM
	NM
	CM
	WIM
	FM
	WGM
	IM
	GM
)

// ParseTitle accepts the title's two-to-three letter code (case
// insensitive) or a small set of full names, defaulting to Untitled.
func ParseTitle(s string) Title {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "wnm", "woman national master":
		return WNM
	case "wcm", "woman candidate master":
		return WCM
	case "wfm", "woman fide master":
		return WFM
	case "nm", "national master":
		return NM
	case "cm", "candidate master":
		return CM
	case "wim", "woman international master":
		return WIM
	case "fm", "fide master":
		return FM
	case "wgm", "woman grandmaster":
		return WGM
	case "im", "international master":
		return IM
	case "gm", "grandmaster":
		return GM
	default:
		return Untitled
	}
}

func (t Title) String() string {
	switch t {
	case WNM:
		return "WNM"
	case WCM:
		return "WCM"
	case WFM:
		return "WFM"
	case NM:
		return "NM"
	case CM:
		return "CM"
	case WIM:
		return "WIM"
	case FM:
		return "FM"
	case WGM:
		return "WGM"
	case IM:
		return "IM"
	case GM:
		return "GM"
	default:
		return ""
	}
}

// Color is the side of the board a player occupies in a game.
type Color int

const (
	White Color = iota
	Black
)

// Other returns the opposite color.
func (c Color) Other() Color {
	if c == White {
		return Black
	}
	return White
}

func (c Color) String() string {
	if c == White {
		return "white"
	}
	return "black"
}

// GameResult is the outcome of a single board, in doubled-integer terms.
type GameResult int

const (
	Ongoing GameResult = iota
	WhiteWins
	Draw
	BlackWins
	DoubleLoss
)

// ParseGameResult accepts the standard chess result notations (and their
// spaced variants); anything unrecognized is Ongoing.
func ParseGameResult(s string) GameResult {
	switch strings.TrimSpace(s) {
	case "1-0", "1 - 0":
		return WhiteWins
	case "1/2-1/2", "1/2 - 1/2", "½-½", "½ - ½", "=-=", "= - =":
		return Draw
	case "0-1", "0 - 1":
		return BlackWins
	case "0-0", "0 - 0":
		return DoubleLoss
	default:
		return Ongoing
	}
}

func (r GameResult) String() string {
	switch r {
	case WhiteWins:
		return "1-0"
	case Draw:
		return "=-="
	case BlackWins:
		return "0-1"
	case DoubleLoss:
		return "0-0"
	default:
		return "*"
	}
}

// PlayerResult is the outcome recorded for an Inactive player's gap row.
type PlayerResult int

const (
	Win PlayerResult = iota
	Lose
	DrawResult
)

// PlayerStatus controls whether a registration participates in pairing.
type PlayerStatus int

const (
	Active PlayerStatus = iota
	Inactive
)

// ParsePlayerStatus is strict: anything other than "active"/"inactive"
// (case-insensitive) is rejected, unlike GameResult's permissive fallback.
func ParsePlayerStatus(s string) (PlayerStatus, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "active":
		return Active, true
	case "inactive":
		return Inactive, true
	default:
		return Active, false
	}
}

func (s PlayerStatus) String() string {
	if s == Inactive {
		return "inactive"
	}
	return "active"
}

// HistoryItemKind discriminates the tagged union stored per round, per
// player. Only the fields relevant to Kind are meaningful on a given
// HistoryItem value.
type HistoryItemKind int

const (
	KindNotPaired HistoryItemKind = iota
	KindBye
	KindGame
)

// HistoryItem is a per-round record for one player: NotPaired{score},
// Bye, or Game{opponent_id, color, result}. Modeled as one struct with a
// Kind discriminant (rather than an interface) since it is small, is
// compared by value in tests, and every field is trivially serializable.
type HistoryItem struct {
	Kind       HistoryItemKind
	Score      uint32 // meaningful for KindNotPaired
	OpponentID uint32 // meaningful for KindGame
	Color      Color  // meaningful for KindGame
	Result     GameResult
}

func NotPaired(score uint32) HistoryItem {
	return HistoryItem{Kind: KindNotPaired, Score: score}
}

func Bye() HistoryItem {
	return HistoryItem{Kind: KindBye}
}

func Game(opponentID uint32, color Color, result GameResult) HistoryItem {
	return HistoryItem{Kind: KindGame, OpponentID: opponentID, Color: color, Result: result}
}

// Player is one registration's state within a tournament.
type Player struct {
	ID          uint32
	SourceID    uint32
	Name        string
	Rating      uint32
	Title       Title
	History     []HistoryItem
	Floats      uint32
	FideID      *uint32
	Federation  *string
	Status      PlayerStatus
}

// ColorHistory returns the colors played, in round order, skipping
// rounds where the player had a bye or no pairing.
func (p *Player) ColorHistory() []Color {
	colors := make([]Color, 0, len(p.History))
	for _, item := range p.History {
		if item.Kind == KindGame {
			colors = append(colors, item.Color)
		}
	}
	return colors
}

// HasPlayed reports whether p has ever faced the given opponent.
func (p *Player) HasPlayed(opponentID uint32) bool {
	for _, item := range p.History {
		if item.Kind == KindGame && item.OpponentID == opponentID {
			return true
		}
	}
	return false
}

// ByeCount returns how many byes this player has received so far.
func (p *Player) ByeCount() int {
	n := 0
	for _, item := range p.History {
		if item.Kind == KindBye {
			n++
		}
	}
	return n
}

// TournamentScore is the player's cumulative doubled-integer score.
func (p *Player) TournamentScore() uint32 {
	var acc uint32
	for _, item := range p.History {
		switch item.Kind {
		case KindNotPaired:
			acc += item.Score
		case KindBye:
			acc += 2
		case KindGame:
			switch {
			case item.Color == White && item.Result == WhiteWins:
				acc += 2
			case item.Color == White && item.Result == Draw:
				acc += 1
			case item.Color == Black && item.Result == Draw:
				acc += 1
			case item.Color == Black && item.Result == BlackWins:
				acc += 2
			}
		}
	}
	return acc
}

// Tournament is the full in-memory model assembled from persisted rows.
type Tournament struct {
	ID           uint32
	Name         string
	TimeCategory string
	Players      map[uint32]*Player
	Pairings     [][][2]uint32 // per round, board-ordered (white, black) ids
	Byes         [][]uint32    // per round, bye recipients (0 or 1)
	Results      [][]GameResult
	NumRounds    int
	StartDate    uint32
	Federation   string
	UserID       uint32
	Username     string
	UpdatedAt    uint32
	EndDate      *uint32
	URL          *string
}

// CurrentRound is the number of rounds already generated.
func (t *Tournament) CurrentRound() int {
	return len(t.Pairings)
}

// PlayerStanding is one player's ranking row for a given round.
type PlayerStanding struct {
	PlayerID        uint32
	Score           uint32
	Buchholz        uint32
	MedianBuchholz  uint32
	CutOneBuchholz  uint32
	Progressive     uint32
}

// NewPairingRow is a single committed board assignment ready to persist.
type NewPairingRow struct {
	TournamentID uint32
	Round        uint32
	Board        uint32
	WhiteID      uint32
	BlackID      uint32
}

// NewGapRow is a pairing_gaps row ready to persist.
type NewGapRow struct {
	PlayerID     uint32
	TournamentID uint32
	Round        uint32
	Score        uint32
	IsBye        bool
}

// NewPairings is the output of the Pairing Builder for one round.
type NewPairings struct {
	Round    uint32
	Pairings []NewPairingRow
	Gaps     []NewGapRow
	Floats   []uint32
}
