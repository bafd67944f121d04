// Package mongodb implements the venue index, venue repository and schedule
// repository ports on a MongoDB database.
//
// Venues carry a GeoJSON point location under a 2dsphere index, which gives
// the proximity queries native $geoNear support. Classes are flat documents
// keyed by venueId and day-of-week label.
package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"
)

const (
	venuesCollection  = "venues"
	classesCollection = "classes"
)

// Store owns the MongoDB client lifecycle: opened once at startup, injected
// into the pipeline, closed explicitly on shutdown.
type Store struct {
	client *mongo.Client
	db     *mongo.Database
}

func Connect(ctx context.Context, uri, database string) (*Store, error) {
	if uri == "" {
		return nil, errors.New("mongodb: uri must be non-empty")
	}
	if database == "" {
		return nil, errors.New("mongodb: database name must be non-empty")
	}

	client, err := mongo.Connect(options.Client().
		ApplyURI(uri).
		SetTimeout(10 * time.Second))
	if err != nil {
		return nil, fmt.Errorf("mongodb: connect: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("mongodb: verify connection: %w", err)
	}

	return &Store{client: client, db: client.Database(database)}, nil
}

func (s *Store) Close(ctx context.Context) error {
	if s == nil || s.client == nil {
		return nil
	}
	return s.client.Disconnect(ctx)
}

// EnsureIndexes creates the 2dsphere index backing proximity queries.
// Index creation is idempotent, so this runs unconditionally at startup.
func (s *Store) EnsureIndexes(ctx context.Context) error {
	_, err := s.db.Collection(venuesCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "location", Value: "2dsphere"}},
	})
	if err != nil {
		return fmt.Errorf("mongodb: create 2dsphere index on %s: %w", venuesCollection, err)
	}

	_, err = s.db.Collection(classesCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "venueId", Value: 1}, {Key: "day", Value: 1}},
	})
	if err != nil {
		return fmt.Errorf("mongodb: create venueId/day index on %s: %w", classesCollection, err)
	}

	return nil
}

func (s *Store) venues() *mongo.Collection  { return s.db.Collection(venuesCollection) }
func (s *Store) classes() *mongo.Collection { return s.db.Collection(classesCollection) }
