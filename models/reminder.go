package models

// CollectionReminder is the payload carried by a queued collection-day
// reminder task.
type CollectionReminder struct {
	EntryID   string `json:"entryId"`
	Date      string `json:"date"`
	WasteType string `json:"wasteType"`
}
