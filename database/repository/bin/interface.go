// File: database/repository/bin/interface.go
package binRepo

import (
	"wastewise/database"
	"wastewise/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// BinRepository defines data access for bins and bin requests. The two
// collections are managed together because approving a request spans both.
type BinRepository interface {
	// CreateBin inserts a new bin, assigning an id when absent.
	CreateBin(bin *models.Bin) error
	// GetAllBins retrieves every bin.
	GetAllBins() ([]models.Bin, error)
	// GetBinsByHomeNumber retrieves the bins registered to a home number.
	GetBinsByHomeNumber(homeNumber string) ([]models.Bin, error)
	// UpdateBinStatus sets a bin's status by ID.
	UpdateBinStatus(id, status string) error
	// CountBins returns the number of bin documents.
	CountBins() (int64, error)

	// GetAllRequests retrieves every pending bin request.
	GetAllRequests() ([]models.BinRequest, error)
	// UpdateRequestStatus sets a request's status by ID.
	UpdateRequestStatus(id, status string) error
	// DeleteRequest removes a bin request by ID.
	DeleteRequest(id string) error
	// CountRequests returns the number of bin request documents.
	CountRequests() (int64, error)
}

// MongoBinRepo implements BinRepository using MongoDB.
type MongoBinRepo struct {
	bins     *mongo.Collection
	requests *mongo.Collection
}

// NewMongoBinRepo constructs a BinRepository over the bins and
// binRequests collections.
func NewMongoBinRepo() BinRepository {
	db := database.DB()
	return &MongoBinRepo{
		bins:     db.Collection("bins"),
		requests: db.Collection("binRequests"),
	}
}
