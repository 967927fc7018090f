// internal/models/player.go
// Player master-data records (the players table: a player pool shared
// across tournaments, identified independently of any one registration).

package models

import "time"

// Player is a row in the players table: biographical/rating data that
// persists across tournaments, keyed independently of registrations.
type Player struct {
	ID          uint32    `json:"id" db:"id"`
	FirstName   string    `json:"first_name" db:"first_name"`
	LastName    string    `json:"last_name" db:"last_name"`
	Federation  *string   `json:"federation,omitempty" db:"federation"`
	FideID      *uint32   `json:"fide_id,omitempty" db:"fide_id"`
	Title       *string   `json:"title,omitempty" db:"title"`
	Rating      *uint32   `json:"rating,omitempty" db:"rating"`
	RatingRapid *uint32   `json:"rating_rapid,omitempty" db:"rating_rapid"`
	RatingBlitz *uint32   `json:"rating_blitz,omitempty" db:"rating_blitz"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}

// FullName concatenates the two name fields for display.
func (p Player) FullName() string {
	return p.FirstName + " " + p.LastName
}
