// internal/repositories/event_repository.go
// Append-only tournament event log (MongoDB), used for audit trail and
// downstream analytics rather than as a source of truth.

package repositories

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EventKind discriminates the two kinds of event this log records.
type EventKind string

const (
	EventPairingsGenerated EventKind = "pairings_generated"
	EventResultUpdated     EventKind = "result_updated"
)

// TournamentEvent is one row of the tournament_events collection.
type TournamentEvent struct {
	TournamentID uint32                 `bson:"tournament_id"`
	Round        uint32                 `bson:"round"`
	Kind         EventKind              `bson:"kind"`
	Payload      map[string]interface{} `bson:"payload"`
	RecordedAt   interface{}            `bson:"recorded_at"`
}

// EventRepository appends tournament lifecycle events to MongoDB.
type EventRepository struct {
	collection *mongo.Collection
}

// NewEventRepository creates a new event repository
func NewEventRepository(db *mongo.Database) *EventRepository {
	return &EventRepository{collection: db.Collection("tournament_events")}
}

// Record appends an event. Failures here are logged but never block the
// request that generated them, matching the audit-log's best-effort role.
func (r *EventRepository) Record(ctx context.Context, event TournamentEvent) error {
	_, err := r.collection.InsertOne(ctx, event)
	return err
}

// ListByTournament retrieves the event history for a tournament, most
// recent first, for an operator-facing audit view.
func (r *EventRepository) ListByTournament(ctx context.Context, tournamentID uint32, limit int64) ([]TournamentEvent, error) {
	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: -1}}).SetLimit(limit)
	cursor, err := r.collection.Find(ctx, bson.M{"tournament_id": tournamentID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var events []TournamentEvent
	if err := cursor.All(ctx, &events); err != nil {
		return nil, err
	}
	return events, nil
}
