// File: database/repository/issue/interface.go
package issueRepo

import (
	"wastewise/database"
	"wastewise/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// IssueRepository defines data access for reported issues.
type IssueRepository interface {
	// Create inserts a new reported issue, assigning an id when absent.
	Create(issue *models.ReportedIssue) error
	// GetAll retrieves every reported issue.
	GetAll() ([]models.ReportedIssue, error)
	// SaveResponse stores the staff reply and action on an issue.
	SaveResponse(id, reply, action string) error
	// Count returns the number of reported issue documents.
	Count() (int64, error)
}

// MongoIssueRepo implements IssueRepository using MongoDB.
type MongoIssueRepo struct {
	coll *mongo.Collection
}

// NewMongoIssueRepo constructs an IssueRepository over the
// reportedIssues collection.
func NewMongoIssueRepo() IssueRepository {
	return &MongoIssueRepo{
		coll: database.DB().Collection("reportedIssues"),
	}
}
