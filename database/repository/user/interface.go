// File: database/repository/user/interface.go
package userRepo

import (
	"wastewise/models"

	"go.mongodb.org/mongo-driver/bson"
)

// UserRepository defines data access for the users collection. Staff
// accounts and residents share the collection, distinguished by the
// position field.
type UserRepository interface {
	// GetByID retrieves a user by its unique ID.
	GetByID(id string) (*models.User, error)
	// GetByEmail retrieves a user by its email address; nil without
	// error when absent.
	GetByEmail(email string) (*models.User, error)
	// GetByTokenHash retrieves the user holding the given auth token hash.
	GetByTokenHash(hash string) (*models.User, error)
	// GetAll retrieves all users.
	GetAll() ([]models.User, error)
	// Create inserts a new user record.
	Create(user *models.User) error
	// Update modifies an existing user record.
	Update(user *models.User) error
	// UpdateSetDocument applies a partial $set update to a user by ID.
	UpdateSetDocument(id string, updateDoc bson.M) error
	// Delete removes a user record by its ID.
	Delete(id string) error
	// Count returns the number of user documents.
	Count() (int64, error)
}
