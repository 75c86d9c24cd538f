package models

import "time"

// SharedItem is a listing in the community sharing hub.
type SharedItem struct {
	ID          string    `bson:"id" json:"id"`
	Title       string    `bson:"title" json:"title"`
	Owner       string    `bson:"owner" json:"owner"`
	Description string    `bson:"description,omitempty" json:"description,omitempty"`
	PhotoURL    string    `bson:"photoUrl,omitempty" json:"photoUrl,omitempty"`
	CreatedAt   time.Time `bson:"createdAt" json:"createdAt"`
}

// AwarenessSections enumerates the awareness-zone section types.
var AwarenessSections = []string{
	"healthIssues",
	"ongoingCampaigns",
	"healthAlerts",
	"publicAwareness",
	"childrenZone",
	"contactInfo",
	"socialMedia",
}

// AwarenessDetail is one awareness-zone document; Type names the
// section the detail belongs to.
type AwarenessDetail struct {
	ID          string `bson:"id" json:"id"`
	Type        string `bson:"type" json:"type"`
	Description string `bson:"description" json:"description"`
	Location    string `bson:"location,omitempty" json:"location,omitempty"`
	Time        string `bson:"time,omitempty" json:"time,omitempty"`
	Note        string `bson:"note,omitempty" json:"note,omitempty"`
}

// IsValidAwarenessSection reports whether s is a known section type.
func IsValidAwarenessSection(s string) bool {
	for _, section := range AwarenessSections {
		if section == s {
			return true
		}
	}
	return false
}
