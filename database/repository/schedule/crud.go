// File: database/repository/schedule/crud.go
package scheduleRepo

import (
	"context"
	"fmt"
	"time"

	"wastewise/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// newContext creates a context with the given timeout.
func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// Create inserts a new schedule entry document.
func (r *MongoScheduleRepo) Create(entry *models.ScheduleEntry) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}

	if _, err := r.coll.InsertOne(ctx, entry); err != nil {
		return fmt.Errorf("failed to create schedule entry: %w", err)
	}
	return nil
}

// GetAll retrieves every schedule entry in store order.
func (r *MongoScheduleRepo) GetAll() ([]models.ScheduleEntry, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch schedule entries: %w", err)
	}
	defer cursor.Close(ctx)

	var entries []models.ScheduleEntry
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, fmt.Errorf("failed to decode schedule entries: %w", err)
	}
	return entries, nil
}

// GetByID retrieves a single entry by its ID.
func (r *MongoScheduleRepo) GetByID(id string) (*models.ScheduleEntry, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var entry models.ScheduleEntry
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&entry); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("schedule entry with id %s not found", id)
		}
		return nil, fmt.Errorf("failed to fetch schedule entry %s: %w", id, err)
	}
	return &entry, nil
}

// UpdateWasteType replaces only the wasteType field; date and id are immutable.
func (r *MongoScheduleRepo) UpdateWasteType(id, wasteType string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"id": id}
	update := bson.M{"$set": bson.M{"wasteType": wasteType}}

	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to update schedule entry %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("schedule entry with id %s not found", id)
	}
	return nil
}

// Delete removes a schedule entry document by its ID.
func (r *MongoScheduleRepo) Delete(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete schedule entry %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("schedule entry with id %s not found", id)
	}
	return nil
}
