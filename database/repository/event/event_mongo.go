package eventRepo

import (
	"context"
	"fmt"
	"time"

	"planora/database"
	"planora/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EventRepository defines methods for event read-model access.
type EventRepository interface {
	// GetByID retrieves an event by its unique ID.
	GetByID(id string) (*models.Event, error)
	// GetAll retrieves all mirrored events.
	GetAll() ([]models.Event, error)
	// ReplaceAll swaps the event mirror for a fresh upstream snapshot.
	ReplaceAll(events []models.Event) error
}

// MongoEventRepo implements EventRepository using MongoDB.
type MongoEventRepo struct {
	coll *mongo.Collection
}

// NewMongoEventRepo creates a new instance of EventRepository using MongoDB.
func NewMongoEventRepo() EventRepository {
	coll := database.MongoClient.Database("planora").Collection("events")
	repo := &MongoEventRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func (r *MongoEventRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
	}
	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoEventRepo) GetByID(id string) (*models.Event, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()
	var event models.Event
	filter := bson.M{"id": id}
	if err := r.coll.FindOne(ctx, filter).Decode(&event); err != nil {
		return nil, fmt.Errorf("failed to fetch event with id %s: %w", id, err)
	}
	return &event, nil
}

func (r *MongoEventRepo) GetAll() ([]models.Event, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve events: %w", err)
	}
	defer cursor.Close(ctx)
	var events []models.Event
	for cursor.Next(ctx) {
		var e models.Event
		if err := cursor.Decode(&e); err != nil {
			return nil, fmt.Errorf("failed to decode event: %w", err)
		}
		events = append(events, e)
	}
	return events, nil
}

func (r *MongoEventRepo) ReplaceAll(events []models.Event) error {
	ctx, cancel := newContext(30 * time.Second)
	defer cancel()

	if _, err := r.coll.DeleteMany(ctx, bson.M{}); err != nil {
		return fmt.Errorf("failed to clear event mirror: %w", err)
	}
	if len(events) == 0 {
		return nil
	}

	docs := make([]interface{}, 0, len(events))
	now := time.Now()
	for i := range events {
		events[i].SyncedAt = now
		docs = append(docs, events[i])
	}
	if _, err := r.coll.InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("failed to insert event snapshot: %w", err)
	}
	return nil
}
