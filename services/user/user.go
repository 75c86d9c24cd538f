package user

import (
	"fmt"
	"time"

	"wastewise/models"
	"wastewise/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"golang.org/x/crypto/bcrypt"
)

const tokenDuration = 72 * time.Hour

// RegisterAdmin validates required fields, hashes the password, persists
// the account, generates a JWT token, and returns the ID and token.
func (s *DefaultUserService) RegisterAdmin(user models.User) (*AuthResponse, error) {
	if user.Email == "" || user.Password == "" {
		return nil, fmt.Errorf("email and password are required")
	}
	if user.Name == "" {
		return nil, fmt.Errorf("name is required")
	}

	existing, err := s.Repo.GetByEmail(user.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to check for existing user: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("an account with email %s already exists", user.Email)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user.ID = uuid.New().String()
	user.PasswordHash = string(hash)
	user.Password = ""
	user.Position = models.PositionAdmin

	token, err := utils.GenerateToken(user.ID, user.Email, tokenDuration)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}
	user.TokenHash = utils.HashToken(token)

	if err := s.Repo.Create(&user); err != nil {
		return nil, fmt.Errorf("failed to create account: %w", err)
	}

	return &AuthResponse{ID: user.ID, Token: token, Name: user.Name, Email: user.Email}, nil
}

// Authenticate verifies credentials, rotates the stored token hash, and
// returns the ID and token.
func (s *DefaultUserService) Authenticate(email, password string) (*AuthResponse, error) {
	if email == "" || password == "" {
		return nil, fmt.Errorf("email and password are required")
	}

	usr, err := s.Repo.GetByEmail(email)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch account: %w", err)
	}
	if usr == nil {
		return nil, fmt.Errorf("invalid email or password")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(usr.PasswordHash), []byte(password)); err != nil {
		return nil, fmt.Errorf("invalid email or password")
	}

	token, err := utils.GenerateToken(usr.ID, usr.Email, tokenDuration)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	if err := s.Repo.UpdateSetDocument(usr.ID, bson.M{"tokenHash": utils.HashToken(token)}); err != nil {
		return nil, fmt.Errorf("failed to store token: %w", err)
	}

	return &AuthResponse{ID: usr.ID, Token: token, Name: usr.Name, Email: usr.Email}, nil
}

// GetUserByID retrieves a user profile by its unique ID.
func (s *DefaultUserService) GetUserByID(userID string) (*models.User, error) {
	return s.Repo.GetByID(userID)
}

// UpdateProfile applies the mutable profile fields of the given user.
func (s *DefaultUserService) UpdateProfile(user models.User) (*models.User, error) {
	if user.ID == "" {
		return nil, fmt.Errorf("user id is required")
	}

	updateDoc := bson.M{}
	if user.Name != "" {
		updateDoc["name"] = user.Name
	}
	if user.Address != "" {
		updateDoc["address"] = user.Address
	}
	if user.HomeNumber != "" {
		updateDoc["homeNumber"] = user.HomeNumber
	}
	if user.Phone != "" {
		updateDoc["phone"] = user.Phone
	}
	if len(updateDoc) == 0 {
		return nil, fmt.Errorf("no fields to update")
	}

	if err := s.Repo.UpdateSetDocument(user.ID, updateDoc); err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}
	return s.Repo.GetByID(user.ID)
}

// RevokeAuthToken clears the stored token hash, signing the user out.
func (s *DefaultUserService) RevokeAuthToken(userID string) error {
	if err := s.Repo.UpdateSetDocument(userID, bson.M{"tokenHash": ""}); err != nil {
		return fmt.Errorf("failed to revoke token: %w", err)
	}
	return nil
}
