package models

import "time"

// User positions as stored in the users collection. Residents either
// carry PositionResidential or no position at all.
const (
	PositionResidential = "Residential"
	PositionAdmin       = "Admin"
)

// User represents an account in the users collection: municipal staff
// (admins) and residents share the collection, distinguished by Position.
type User struct {
	ID           string    `bson:"id" json:"id"`
	Name         string    `bson:"name" json:"name"`
	Email        string    `bson:"email" json:"email"`
	Password     string    `bson:"-" json:"password,omitempty"`
	PasswordHash string    `bson:"passwordHash" json:"-"`
	Position     string    `bson:"position,omitempty" json:"position,omitempty"`
	Address      string    `bson:"address,omitempty" json:"address,omitempty"`
	HomeNumber   string    `bson:"homeNumber,omitempty" json:"homeNumber,omitempty"`
	Phone        string    `bson:"phone,omitempty" json:"phone,omitempty"`
	DeviceToken  string    `bson:"deviceToken,omitempty" json:"-"`
	TokenHash    string    `bson:"tokenHash,omitempty" json:"-"`
	CreatedAt    time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time `bson:"updatedAt" json:"updatedAt"`
}

// IsResident reports whether the user should appear in the residents view.
func (u User) IsResident() bool {
	return u.Position == "" || u.Position == PositionResidential ||
		u.Position == "residential"
}
