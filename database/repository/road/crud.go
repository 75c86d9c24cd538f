// File: database/repository/road/crud.go
package roadRepo

import (
	"context"
	"fmt"
	"time"

	"wastewise/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// Create inserts a new road document.
func (r *MongoRoadRepo) Create(road *models.Road) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	if road.ID == "" {
		road.ID = uuid.New().String()
	}

	if _, err := r.coll.InsertOne(ctx, road); err != nil {
		return fmt.Errorf("failed to create road: %w", err)
	}
	return nil
}

// GetAll retrieves every road document.
func (r *MongoRoadRepo) GetAll() ([]models.Road, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch roads: %w", err)
	}
	defer cursor.Close(ctx)

	var roads []models.Road
	if err := cursor.All(ctx, &roads); err != nil {
		return nil, fmt.Errorf("failed to decode roads: %w", err)
	}
	return roads, nil
}

// FindByName retrieves a road by its name; nil without error when absent.
func (r *MongoRoadRepo) FindByName(name string) (*models.Road, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var road models.Road
	err := r.coll.FindOne(ctx, bson.M{"name": name}).Decode(&road)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch road %q: %w", name, err)
	}
	return &road, nil
}

// UpdateTimeSlotByName persists the assigned time slot on the stored road.
func (r *MongoRoadRepo) UpdateTimeSlotByName(name, timeSlot string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"name": name}
	update := bson.M{"$set": bson.M{"timeSlot": timeSlot}}

	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to update time slot for road %q: %w", name, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("road %q not found", name)
	}
	return nil
}

// DeleteByName removes the road document with the given name.
func (r *MongoRoadRepo) DeleteByName(name string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"name": name})
	if err != nil {
		return fmt.Errorf("failed to delete road %q: %w", name, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("road %q not found", name)
	}
	return nil
}
