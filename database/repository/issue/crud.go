// File: database/repository/issue/crud.go
package issueRepo

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

// Create inserts a new reported issue document.
func (r *MongoIssueRepo) Create(issue *models.ReportedIssue) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	if issue.ID == "" {
		issue.ID = uuid.New().String()
	}
	if issue.Timestamp.IsZero() {
		issue.Timestamp = time.Now()
	}

	if _, err := r.coll.InsertOne(ctx, issue); err != nil {
		return fmt.Errorf("failed to create reported issue: %w", err)
	}
	return nil
}

// GetAll retrieves every reported issue document.
func (r *MongoIssueRepo) GetAll() ([]models.ReportedIssue, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch reported issues: %w", err)
	}
	defer cursor.Close(ctx)

	var issues []models.ReportedIssue
	if err := cursor.All(ctx, &issues); err != nil {
		return nil, fmt.Errorf("failed to decode reported issues: %w", err)
	}
	return issues, nil
}

// SaveResponse stores the staff reply and action together.
func (r *MongoIssueRepo) SaveResponse(id, reply, action string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{"reply": reply, "action": action}}
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to save response for issue %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("reported issue with id %s not found", id)
	}
	return nil
}

// Count returns the number of reported issue documents.
func (r *MongoIssueRepo) Count() (int64, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	count, err := r.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("failed to count reported issues: %w", err)
	}
	return count, nil
}
