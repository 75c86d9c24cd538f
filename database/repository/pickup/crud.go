// File: database/repository/pickup/crud.go
package pickupRepo

import (
	"context"
	"fmt"
	"time"

	"wastewise/models"

	"go.mongodb.org/mongo-driver/bson"
)

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// GetAll retrieves every immediate pickup document.
func (r *MongoPickupRepo) GetAll() ([]models.ImmediatePickup, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	cursor, err := r.pickups.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch immediate pickups: %w", err)
	}
	defer cursor.Close(ctx)

	var pickups []models.ImmediatePickup
	if err := cursor.All(ctx, &pickups); err != nil {
		return nil, fmt.Errorf("failed to decode immediate pickups: %w", err)
	}
	return pickups, nil
}

func (r *MongoPickupRepo) setField(id, field string, value any) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.pickups.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": bson.M{field: value}})
	if err != nil {
		return fmt.Errorf("failed to update pickup %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("pickup with id %s not found", id)
	}
	return nil
}

// UpdateStatus sets a pickup's status by ID.
func (r *MongoPickupRepo) UpdateStatus(id, status string) error {
	return r.setField(id, "status", status)
}

// AssignDriver sets a pickup's driver by ID.
func (r *MongoPickupRepo) AssignDriver(id, driver string) error {
	return r.setField(id, "driver", driver)
}

// UpdateInstruction sets a pickup's instruction by ID.
func (r *MongoPickupRepo) UpdateInstruction(id, instruction string) error {
	return r.setField(id, "instruction", instruction)
}

// CountByStatus returns the number of pickups with the given status.
func (r *MongoPickupRepo) CountByStatus(status string) (int64, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	count, err := r.pickups.CountDocuments(ctx, bson.M{"status": status})
	if err != nil {
		return 0, fmt.Errorf("failed to count pickups: %w", err)
	}
	return count, nil
}

// GetDrivers retrieves the driver roster.
func (r *MongoPickupRepo) GetDrivers() ([]models.Driver, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	cursor, err := r.drivers.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch drivers: %w", err)
	}
	defer cursor.Close(ctx)

	var drivers []models.Driver
	if err := cursor.All(ctx, &drivers); err != nil {
		return nil, fmt.Errorf("failed to decode drivers: %w", err)
	}
	return drivers, nil
}
