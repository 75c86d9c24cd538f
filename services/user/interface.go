package user

import (
	userRepo "wastewise/database/repository/user"
	"wastewise/models"
)

// AuthResponse contains the authenticated admin's ID and JWT token.
type AuthResponse struct {
	ID    string `json:"id"`
	Token string `json:"token"`
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
}

// UserService defines business logic for staff accounts and the
// residents view.
type UserService interface {
	// RegisterAdmin validates registration details, creates a staff
	// account, and returns the new ID and token.
	RegisterAdmin(user models.User) (*AuthResponse, error)
	// Authenticate verifies credentials and returns ID and token.
	Authenticate(email, password string) (*AuthResponse, error)
	// GetUserByID retrieves a user profile by its unique ID.
	GetUserByID(userID string) (*models.User, error)
	// UpdateProfile updates an existing user's profile fields.
	UpdateProfile(user models.User) (*models.User, error)
	// RevokeAuthToken invalidates the user's stored token.
	RevokeAuthToken(userID string) error

	// GetResidents lists resident accounts, optionally filtered by a
	// free-text search and a road name.
	GetResidents(search, road string) ([]models.User, error)
}

// DefaultUserService is the production implementation.
type DefaultUserService struct {
	Repo userRepo.UserRepository
}
