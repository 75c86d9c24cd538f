// File: database/repository/community/crud.go
package communityRepo

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

// GetSharedItems retrieves every shared item document.
func (r *MongoCommunityRepo) GetSharedItems() ([]models.SharedItem, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	cursor, err := r.items.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch shared items: %w", err)
	}
	defer cursor.Close(ctx)

	var items []models.SharedItem
	if err := cursor.All(ctx, &items); err != nil {
		return nil, fmt.Errorf("failed to decode shared items: %w", err)
	}
	return items, nil
}

// GetSharedItemByID retrieves a shared item by its unique ID.
func (r *MongoCommunityRepo) GetSharedItemByID(id string) (*models.SharedItem, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var item models.SharedItem
	if err := r.items.FindOne(ctx, bson.M{"id": id}).Decode(&item); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("shared item with id %s not found", id)
		}
		return nil, fmt.Errorf("failed to fetch shared item %s: %w", id, err)
	}
	return &item, nil
}

// CreateSharedItem inserts a shared item document.
func (r *MongoCommunityRepo) CreateSharedItem(item *models.SharedItem) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	if item.ID == "" {
		item.ID = uuid.New().String()
	}
	if item.CreatedAt.IsZero() {
		item.CreatedAt = time.Now()
	}

	if _, err := r.items.InsertOne(ctx, item); err != nil {
		return fmt.Errorf("failed to create shared item: %w", err)
	}
	return nil
}

// UpdateSharedItemPhoto sets a shared item's photo URL by ID.
func (r *MongoCommunityRepo) UpdateSharedItemPhoto(id, photoURL string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.items.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": bson.M{"photoUrl": photoURL}})
	if err != nil {
		return fmt.Errorf("failed to update shared item %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("shared item with id %s not found", id)
	}
	return nil
}

// DeleteSharedItem removes a shared item document by ID.
func (r *MongoCommunityRepo) DeleteSharedItem(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.items.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete shared item %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("shared item with id %s not found", id)
	}
	return nil
}

// GetAwarenessDetails retrieves every awareness-zone document.
func (r *MongoCommunityRepo) GetAwarenessDetails() ([]models.AwarenessDetail, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	cursor, err := r.awareness.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch awareness details: %w", err)
	}
	defer cursor.Close(ctx)

	var details []models.AwarenessDetail
	if err := cursor.All(ctx, &details); err != nil {
		return nil, fmt.Errorf("failed to decode awareness details: %w", err)
	}
	return details, nil
}

// CreateAwarenessDetail inserts an awareness-zone document.
func (r *MongoCommunityRepo) CreateAwarenessDetail(detail *models.AwarenessDetail) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	if detail.ID == "" {
		detail.ID = uuid.New().String()
	}

	if _, err := r.awareness.InsertOne(ctx, detail); err != nil {
		return fmt.Errorf("failed to create awareness detail: %w", err)
	}
	return nil
}
