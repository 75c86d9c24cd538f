package models

import "time"

// Bin statuses.
const (
	BinStatusActive   = "Active"
	BinStatusInactive = "Inactive"
)

// Bin is a waste bin registered against a home number.
type Bin struct {
	ID         string `bson:"id" json:"id"`
	HomeNumber string `bson:"homeNumber" json:"homeNumber"`
	Status     string `bson:"status" json:"status"`
}

// BinRequest is a resident's request for a new bin. Approving a request
// creates an inactive bin and removes the request document.
type BinRequest struct {
	ID         string    `bson:"id" json:"id"`
	HomeNumber string    `bson:"homeNumber" json:"homeNumber"`
	Requester  string    `bson:"requester,omitempty" json:"requester,omitempty"`
	Status     string    `bson:"status" json:"status"`
	CreatedAt  time.Time `bson:"createdAt" json:"createdAt"`
}
