package models

import "time"

// ReportedIssue is a resident-reported problem (missed collection,
// damaged bin, illegal dumping) with the staff response attached.
type ReportedIssue struct {
	ID          string    `bson:"id" json:"id"`
	Title       string    `bson:"title" json:"title"`
	Category    string    `bson:"category" json:"category"`
	Description string    `bson:"description,omitempty" json:"description,omitempty"`
	Status      string    `bson:"status" json:"status"`
	Urgent      bool      `bson:"urgent" json:"urgent"`
	Reply       string    `bson:"reply,omitempty" json:"reply,omitempty"`
	Action      string    `bson:"action,omitempty" json:"action,omitempty"`
	Timestamp   time.Time `bson:"timestamp" json:"timestamp"`
}
