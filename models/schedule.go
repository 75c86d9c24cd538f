package models

import "time"

// ScheduleDateLayout is the day-precision format schedule dates are persisted in.
const ScheduleDateLayout = "2006-01-02"

// WasteTypes enumerates the collection categories a day can be assigned.
var WasteTypes = []string{
	"Plastic",
	"Food Waste",
	"Hazardous Waste",
	"E-Waste",
	"Paper",
	"Glass",
	"Metal",
	"Other",
}

// ScheduleEntry is a single day's assigned waste-collection category.
// Date carries day precision only; the id is store-assigned and immutable.
type ScheduleEntry struct {
	ID        string `bson:"id" json:"id"`
	Date      string `bson:"date" json:"date"`
	WasteType string `bson:"wasteType" json:"wasteType"`
}

// Day parses the entry's date at day precision. A malformed date
// yields the zero time.
func (e ScheduleEntry) Day() time.Time {
	t, err := time.ParseInLocation(ScheduleDateLayout, e.Date, time.Local)
	if err != nil {
		return time.Time{}
	}
	return t
}

// IsValidWasteType reports whether w is one of the known categories.
func IsValidWasteType(w string) bool {
	for _, t := range WasteTypes {
		if t == w {
			return true
		}
	}
	return false
}
