// File: database/repository/road/interface.go
package roadRepo

import (
	"wastewise/database"
	"wastewise/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// RoadRepository defines data access for roads and their pickup time slots.
//
// Road documents are keyed by name for slot assignment and deletion
// because the dashboard identifies roads by their display name; the
// uniqueness of names is enforced by the service layer before insert.
type RoadRepository interface {
	// Create inserts a new road, assigning an id when absent.
	Create(road *models.Road) error
	// GetAll retrieves every road.
	GetAll() ([]models.Road, error)
	// FindByName retrieves the road document with the given name, or
	// nil when none matches.
	FindByName(name string) (*models.Road, error)
	// UpdateTimeSlotByName sets the time slot of the road with the
	// given name; fails when no document matches.
	UpdateTimeSlotByName(name, timeSlot string) error
	// DeleteByName removes the road document with the given name.
	DeleteByName(name string) error
}

// MongoRoadRepo implements RoadRepository using MongoDB.
type MongoRoadRepo struct {
	coll *mongo.Collection
}

// NewMongoRoadRepo constructs a RoadRepository over the roads collection.
func NewMongoRoadRepo() RoadRepository {
	return &MongoRoadRepo{
		coll: database.DB().Collection("roads"),
	}
}
