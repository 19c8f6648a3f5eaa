package availabilityRepo

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

// AvailabilityRepository defines methods for vendor availability access.
type AvailabilityRepository interface {
	// GetByVendorID retrieves a vendor's weekly availability setup.
	GetByVendorID(vendorID string) (*models.VendorAvailability, error)
	// Upsert stores a vendor's availability, replacing any previous setup.
	Upsert(availability *models.VendorAvailability) error
	// ReplaceAll swaps the availability mirror for a fresh upstream snapshot.
	ReplaceAll(availabilities []models.VendorAvailability) error
}

// MongoAvailabilityRepo implements AvailabilityRepository using MongoDB.
type MongoAvailabilityRepo struct {
	coll *mongo.Collection
}

// NewMongoAvailabilityRepo creates a new instance of AvailabilityRepository using MongoDB.
func NewMongoAvailabilityRepo() AvailabilityRepository {
	coll := database.MongoClient.Database("planora").Collection("availability")
	repo := &MongoAvailabilityRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func (r *MongoAvailabilityRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "vendorId", Value: 1}}, Options: options.Index().SetUnique(true)},
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

func (r *MongoAvailabilityRepo) GetByVendorID(vendorID string) (*models.VendorAvailability, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()
	var availability models.VendorAvailability
	filter := bson.M{"vendorId": vendorID}
	if err := r.coll.FindOne(ctx, filter).Decode(&availability); err != nil {
		return nil, fmt.Errorf("failed to fetch availability for vendor %s: %w", vendorID, err)
	}
	return &availability, nil
}

func (r *MongoAvailabilityRepo) Upsert(availability *models.VendorAvailability) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	availability.SyncedAt = time.Now()
	filter := bson.M{"vendorId": availability.VendorID}
	update := bson.M{"$set": availability}
	opts := options.Update().SetUpsert(true)
	if _, err := r.coll.UpdateOne(ctx, filter, update, opts); err != nil {
		return fmt.Errorf("failed to upsert availability for vendor %s: %w", availability.VendorID, err)
	}
	return nil
}

func (r *MongoAvailabilityRepo) ReplaceAll(availabilities []models.VendorAvailability) error {
	ctx, cancel := newContext(30 * time.Second)
	defer cancel()

	if _, err := r.coll.DeleteMany(ctx, bson.M{}); err != nil {
		return fmt.Errorf("failed to clear availability mirror: %w", err)
	}
	if len(availabilities) == 0 {
		return nil
	}

	docs := make([]interface{}, 0, len(availabilities))
	now := time.Now()
	for i := range availabilities {
		availabilities[i].SyncedAt = now
		docs = append(docs, availabilities[i])
	}
	if _, err := r.coll.InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("failed to insert availability snapshot: %w", err)
	}
	return nil
}
