// internal/repositories/container.go
// Repository container for dependency injection

package repositories

import (
	"context"
	"database/sql"

	"swiss-pairing-engine/internal/database"
)

// Container holds all repository instances
type Container struct {
	User         *UserRepository
	Player       *PlayerRepository
	Registration *RegistrationRepository
	Tournament   *TournamentRepository
	Pairing      *PairingRepository
	Event        *EventRepository
	db           *sql.DB
}

// NewContainer creates a new repository container
func NewContainer(conn *database.Connections) *Container {
	return &Container{
		User:         NewUserRepository(conn.MySQL),
		Player:       NewPlayerRepository(conn.MySQL),
		Registration: NewRegistrationRepository(conn.MySQL),
		Tournament:   NewTournamentRepository(conn.MySQL),
		Pairing:      NewPairingRepository(conn.MySQL),
		Event:        NewEventRepository(conn.MongoDB),
		db:           conn.MySQL,
	}
}

// BeginTx starts a new database transaction
func (c *Container) BeginTx(ctx context.Context) (*sql.Tx, error) {
	return c.db.BeginTx(ctx, nil)
}
