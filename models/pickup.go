package models

// Immediate pickup statuses.
const (
	PickupStatusPending   = "Pending"
	PickupStatusConfirmed = "Confirmed"
)

// ImmediatePickup is a resident-requested out-of-schedule collection.
type ImmediatePickup struct {
	ID          string `bson:"id" json:"id"`
	Bin         string `bson:"bin" json:"bin"`
	HomeNumber  string `bson:"homeNumber,omitempty" json:"homeNumber,omitempty"`
	PickupTime  string `bson:"pickupTime" json:"pickupTime"`
	Status      string `bson:"status" json:"status"`
	Driver      string `bson:"driver,omitempty" json:"driver,omitempty"`
	Instruction string `bson:"instruction,omitempty" json:"instruction,omitempty"`
}

// Driver is a collection-fleet driver available for assignment.
type Driver struct {
	ID    string `bson:"id" json:"id"`
	Name  string `bson:"name" json:"name"`
	Phone string `bson:"phone,omitempty" json:"phone,omitempty"`
}
