// File: database/repository/bin/crud.go
package binRepo

import (
	"context"
	"fmt"
	"time"

	"wastewise/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
)

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// CreateBin inserts a new bin document.
func (r *MongoBinRepo) CreateBin(bin *models.Bin) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	if bin.ID == "" {
		bin.ID = uuid.New().String()
	}

	if _, err := r.bins.InsertOne(ctx, bin); err != nil {
		return fmt.Errorf("failed to create bin: %w", err)
	}
	return nil
}

// GetAllBins retrieves every bin document.
func (r *MongoBinRepo) GetAllBins() ([]models.Bin, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	cursor, err := r.bins.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch bins: %w", err)
	}
	defer cursor.Close(ctx)

	var bins []models.Bin
	if err := cursor.All(ctx, &bins); err != nil {
		return nil, fmt.Errorf("failed to decode bins: %w", err)
	}
	return bins, nil
}

// GetBinsByHomeNumber retrieves the bins registered to a home number.
func (r *MongoBinRepo) GetBinsByHomeNumber(homeNumber string) ([]models.Bin, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	cursor, err := r.bins.Find(ctx, bson.M{"homeNumber": homeNumber})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch bins for home %s: %w", homeNumber, err)
	}
	defer cursor.Close(ctx)

	var bins []models.Bin
	if err := cursor.All(ctx, &bins); err != nil {
		return nil, fmt.Errorf("failed to decode bins: %w", err)
	}
	return bins, nil
}

// UpdateBinStatus sets a bin's status by ID.
func (r *MongoBinRepo) UpdateBinStatus(id, status string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.bins.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": bson.M{"status": status}})
	if err != nil {
		return fmt.Errorf("failed to update bin %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("bin with id %s not found", id)
	}
	return nil
}

// CountBins returns the number of bin documents.
func (r *MongoBinRepo) CountBins() (int64, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	count, err := r.bins.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("failed to count bins: %w", err)
	}
	return count, nil
}

// GetAllRequests retrieves every bin request document.
func (r *MongoBinRepo) GetAllRequests() ([]models.BinRequest, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	cursor, err := r.requests.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch bin requests: %w", err)
	}
	defer cursor.Close(ctx)

	var requests []models.BinRequest
	if err := cursor.All(ctx, &requests); err != nil {
		return nil, fmt.Errorf("failed to decode bin requests: %w", err)
	}
	return requests, nil
}

// UpdateRequestStatus sets a bin request's status by ID.
func (r *MongoBinRepo) UpdateRequestStatus(id, status string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.requests.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": bson.M{"status": status}})
	if err != nil {
		return fmt.Errorf("failed to update bin request %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("bin request with id %s not found", id)
	}
	return nil
}

// DeleteRequest removes a bin request document by ID.
func (r *MongoBinRepo) DeleteRequest(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.requests.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete bin request %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("bin request with id %s not found", id)
	}
	return nil
}

// CountRequests returns the number of bin request documents.
func (r *MongoBinRepo) CountRequests() (int64, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	count, err := r.requests.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("failed to count bin requests: %w", err)
	}
	return count, nil
}
