// File: database/repository/pickup/interface.go
package pickupRepo

import (
	"wastewise/database"
	"wastewise/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// PickupRepository defines data access for immediate pickups and the
// driver roster they are assigned from.
type PickupRepository interface {
	// GetAll retrieves every immediate pickup.
	GetAll() ([]models.ImmediatePickup, error)
	// UpdateStatus sets a pickup's status by ID.
	UpdateStatus(id, status string) error
	// AssignDriver sets a pickup's driver by ID.
	AssignDriver(id, driver string) error
	// UpdateInstruction sets a pickup's instruction by ID.
	UpdateInstruction(id, instruction string) error
	// CountByStatus returns the number of pickups with the given status.
	CountByStatus(status string) (int64, error)

	// GetDrivers retrieves the driver roster.
	GetDrivers() ([]models.Driver, error)
}

// MongoPickupRepo implements PickupRepository using MongoDB.
type MongoPickupRepo struct {
	pickups *mongo.Collection
	drivers *mongo.Collection
}

// NewMongoPickupRepo constructs a PickupRepository over the
// immediate_pickups and drivers collections.
func NewMongoPickupRepo() PickupRepository {
	db := database.DB()
	return &MongoPickupRepo{
		pickups: db.Collection("immediate_pickups"),
		drivers: db.Collection("drivers"),
	}
}
