// File: database/repository/schedule/interface.go
package scheduleRepo

import (
	"wastewise/database"
	"wastewise/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// ScheduleRepository defines data access for waste-collection schedule entries.
type ScheduleRepository interface {
	// Create inserts a new schedule entry, assigning an id when absent.
	Create(entry *models.ScheduleEntry) error
	// GetAll retrieves every schedule entry.
	GetAll() ([]models.ScheduleEntry, error)
	// GetByID retrieves an entry by its unique ID.
	GetByID(id string) (*models.ScheduleEntry, error)
	// UpdateWasteType replaces the waste type of the entry with the given id.
	UpdateWasteType(id, wasteType string) error
	// Delete removes an entry by its ID.
	Delete(id string) error
}

// MongoScheduleRepo implements ScheduleRepository using MongoDB.
type MongoScheduleRepo struct {
	coll *mongo.Collection
}

// NewMongoScheduleRepo constructs a ScheduleRepository over the
// wasteSchedules collection.
func NewMongoScheduleRepo() ScheduleRepository {
	return &MongoScheduleRepo{
		coll: database.DB().Collection("wasteSchedules"),
	}
}
