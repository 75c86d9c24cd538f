package models

// TimeSlots enumerates the four pickup windows a road can be assigned.
var TimeSlots = []string{
	"8 AM - 10 AM",
	"10 AM - 12 PM",
	"12 PM - 2 PM",
	"2 PM - 4 PM",
}

// Road is a named street/zone with an assigned collection time slot.
// An empty TimeSlot means no slot has been assigned yet.
type Road struct {
	ID       string `bson:"id" json:"id"`
	Name     string `bson:"name" json:"name"`
	TimeSlot string `bson:"timeSlot" json:"timeSlot"`
}

// IsValidTimeSlot reports whether s is one of the known pickup windows.
func IsValidTimeSlot(s string) bool {
	for _, slot := range TimeSlots {
		if slot == s {
			return true
		}
	}
	return false
}
