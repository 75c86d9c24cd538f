// File: database/repository/recycling/crud.go
package recyclingRepo

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

func fetchAll[T any](coll *mongo.Collection, what string) ([]T, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	cursor, err := coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", what, err)
	}
	defer cursor.Close(ctx)

	var docs []T
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", what, err)
	}
	return docs, nil
}

func insertOne(coll *mongo.Collection, what string, doc any) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	if _, err := coll.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("failed to create %s: %w", what, err)
	}
	return nil
}

func (r *MongoRecyclingRepo) GetCategories() ([]models.RecyclingCategory, error) {
	return fetchAll[models.RecyclingCategory](r.categories, "recycling categories")
}

func (r *MongoRecyclingRepo) CreateCategory(category *models.RecyclingCategory) error {
	if category.ID == "" {
		category.ID = uuid.New().String()
	}
	return insertOne(r.categories, "recycling category", category)
}

func (r *MongoRecyclingRepo) GetSegregationGuide() ([]models.WasteSegregation, error) {
	return fetchAll[models.WasteSegregation](r.segregation, "segregation guide")
}

func (r *MongoRecyclingRepo) CreateSegregation(entry *models.WasteSegregation) error {
	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}
	return insertOne(r.segregation, "segregation entry", entry)
}

func (r *MongoRecyclingRepo) GetMotivations() ([]models.RecyclingMotivation, error) {
	return fetchAll[models.RecyclingMotivation](r.motivations, "motivations")
}

func (r *MongoRecyclingRepo) CreateMotivation(motivation *models.RecyclingMotivation) error {
	if motivation.ID == "" {
		motivation.ID = uuid.New().String()
	}
	return insertOne(r.motivations, "motivation", motivation)
}

func (r *MongoRecyclingRepo) GetCenters() ([]models.RecyclingCenter, error) {
	return fetchAll[models.RecyclingCenter](r.centers, "recycling centers")
}

func (r *MongoRecyclingRepo) CreateCenter(center *models.RecyclingCenter) error {
	if center.ID == "" {
		center.ID = uuid.New().String()
	}
	return insertOne(r.centers, "recycling center", center)
}
