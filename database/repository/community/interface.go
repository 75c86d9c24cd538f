// File: database/repository/community/interface.go
package communityRepo

import (
	"wastewise/database"
	"wastewise/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// CommunityRepository defines data access for the community sharing hub
// and the awareness zone.
type CommunityRepository interface {
	// GetSharedItems retrieves every shared item.
	GetSharedItems() ([]models.SharedItem, error)
	// GetSharedItemByID retrieves a shared item by its unique ID.
	GetSharedItemByID(id string) (*models.SharedItem, error)
	// CreateSharedItem inserts a shared item, assigning an id when absent.
	CreateSharedItem(item *models.SharedItem) error
	// UpdateSharedItemPhoto sets a shared item's photo URL by ID.
	UpdateSharedItemPhoto(id, photoURL string) error
	// DeleteSharedItem removes a shared item by ID.
	DeleteSharedItem(id string) error

	// GetAwarenessDetails retrieves every awareness-zone document.
	GetAwarenessDetails() ([]models.AwarenessDetail, error)
	// CreateAwarenessDetail inserts an awareness-zone document.
	CreateAwarenessDetail(detail *models.AwarenessDetail) error
}

// MongoCommunityRepo implements CommunityRepository using MongoDB.
type MongoCommunityRepo struct {
	items     *mongo.Collection
	awareness *mongo.Collection
}

// NewMongoCommunityRepo constructs a CommunityRepository over the
// sharedItems and awarenessZone collections.
func NewMongoCommunityRepo() CommunityRepository {
	db := database.DB()
	return &MongoCommunityRepo{
		items:     db.Collection("sharedItems"),
		awareness: db.Collection("awarenessZone"),
	}
}
