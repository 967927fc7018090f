// internal/models/registration.go
// A registration binds a player to one tournament with a tournament-local
// status and rating snapshot.

package models

// RegistrationStatus gates whether a registration is eligible for pairing.
type RegistrationStatus string

const (
	RegistrationActive   RegistrationStatus = "active"
	RegistrationInactive RegistrationStatus = "inactive"
)

// Registration is a row in the registrations table.
type Registration struct {
	ID           uint32             `json:"id" db:"id"`
	TournamentID uint32             `json:"tournament_id" db:"tournament_id"`
	PlayerID     uint32             `json:"player_id" db:"player_id"`
	Rating       uint32             `json:"rating" db:"rating"`
	Status       RegistrationStatus `json:"status" db:"status"`
	Floats       uint32             `json:"floats" db:"floats"`
}
