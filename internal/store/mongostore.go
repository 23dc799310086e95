package store

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/ukydev/wayfarer/internal/models"
)

// ConnectMongo connects to MongoDB and verifies the connection with a
// ping.
func ConnectMongo(uri string) (*mongo.Client, error) {
	client, err := mongo.Connect(context.Background(), options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("mongo connect error: %w", err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("mongo ping error: %w", err)
	}
	return client, nil
}

// MongoStore implements Store over a MongoDB collection, for
// deployments where saved trips should outlive the local file.
type MongoStore struct {
	Collection *mongo.Collection
}

// NewMongoStore wraps a trips collection.
func NewMongoStore(coll *mongo.Collection) *MongoStore {
	return &MongoStore{Collection: coll}
}

// List returns all saved itineraries sorted by creation time, which
// matches insertion order because itineraries are immutable.
func (s *MongoStore) List(ctx context.Context) ([]models.Itinerary, error) {
	if s.Collection == nil {
		return nil, &StorageError{Op: "list", Err: fmt.Errorf("mongo collection is nil")}
	}

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})
	cursor, err := s.Collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, &StorageError{Op: "list", Err: err}
	}
	defer cursor.Close(ctx)

	trips := []models.Itinerary{}
	if err := cursor.All(ctx, &trips); err != nil {
		return nil, &StorageError{Op: "list", Err: err}
	}
	return trips, nil
}

// Add inserts one itinerary.
func (s *MongoStore) Add(ctx context.Context, it models.Itinerary) error {
	if s.Collection == nil {
		return &StorageError{Op: "add", Err: fmt.Errorf("mongo collection is nil")}
	}
	if _, err := s.Collection.InsertOne(ctx, it); err != nil {
		return &StorageError{Op: "add", Err: err}
	}
	return nil
}

// Remove deletes the itinerary with the given id; unknown ids are a
// no-op.
func (s *MongoStore) Remove(ctx context.Context, id string) error {
	if s.Collection == nil {
		return &StorageError{Op: "remove", Err: fmt.Errorf("mongo collection is nil")}
	}
	if _, err := s.Collection.DeleteOne(ctx, bson.M{"itinerary_id": id}); err != nil {
		return &StorageError{Op: "remove", Err: err}
	}
	return nil
}
