// File: database/repository/recycling/interface.go
package recyclingRepo

import (
	"wastewise/database"
	"wastewise/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// RecyclingRepository defines data access for the four recycling-info
// collections the dashboard renders together.
type RecyclingRepository interface {
	GetCategories() ([]models.RecyclingCategory, error)
	CreateCategory(category *models.RecyclingCategory) error

	GetSegregationGuide() ([]models.WasteSegregation, error)
	CreateSegregation(entry *models.WasteSegregation) error

	GetMotivations() ([]models.RecyclingMotivation, error)
	CreateMotivation(motivation *models.RecyclingMotivation) error

	GetCenters() ([]models.RecyclingCenter, error)
	CreateCenter(center *models.RecyclingCenter) error
}

// MongoRecyclingRepo implements RecyclingRepository using MongoDB.
type MongoRecyclingRepo struct {
	categories  *mongo.Collection
	segregation *mongo.Collection
	motivations *mongo.Collection
	centers     *mongo.Collection
}

// NewMongoRecyclingRepo constructs a RecyclingRepository over the
// recycling collections.
func NewMongoRecyclingRepo() RecyclingRepository {
	db := database.DB()
	return &MongoRecyclingRepo{
		categories:  db.Collection("recyclingCategories"),
		segregation: db.Collection("wasteSegregation"),
		motivations: db.Collection("recyclingMotivations"),
		centers:     db.Collection("recyclingCenters"),
	}
}
