// internal/models/tournament.go
// Domain models representing the tournaments table and its time-category
// enum.

package models

import "time"

// Tournament represents a tournament with all its configuration.
type Tournament struct {
	ID           uint32     `json:"id" db:"id"`
	CreatedBy    uint32     `json:"created_by" db:"created_by"`
	Name         string     `json:"name" db:"name"`
	CurrentRound int        `json:"current_round" db:"current_round"`
	NumRounds    int        `json:"num_rounds" db:"num_rounds"`
	TimeCategory TimeCategory `json:"time_category" db:"time_category"`
	StartDate    time.Time  `json:"start_date" db:"start_date"`
	Federation   string     `json:"federation" db:"federation"`
	URL          *string    `json:"url,omitempty" db:"url"`
	UpdatedAt    time.Time  `json:"updated_at" db:"updated_at"`
	EndDate      *time.Time `json:"end_date,omitempty" db:"end_date"`
}

// TimeCategory is the FIDE time-control bucket a tournament is played
// under; it does not affect pairing logic but is validated on creation.
type TimeCategory string

const (
	TimeCategoryBlitz    TimeCategory = "blitz"
	TimeCategoryRapid    TimeCategory = "rapid"
	TimeCategoryStandard TimeCategory = "standard"
)

// ValidTimeCategory reports whether s names one of the three accepted
// time categories.
func ValidTimeCategory(s string) bool {
	switch TimeCategory(s) {
	case TimeCategoryBlitz, TimeCategoryRapid, TimeCategoryStandard:
		return true
	default:
		return false
	}
}

const (
	MinRounds = 2
	MaxRounds = 30
)

// ValidNumberOfRounds reports whether n is within the accepted range.
func ValidNumberOfRounds(n int) bool {
	return n >= MinRounds && n <= MaxRounds
}
