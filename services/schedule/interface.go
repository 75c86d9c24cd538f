package schedule

import (
	"errors"
	"time"

	"wastewise/models"
)

// DayClass classifies a calendar day for display.
type DayClass string

const (
	DayPast        DayClass = "past"
	DayScheduled   DayClass = "scheduled"
	DayUnscheduled DayClass = "unscheduled"
)

// DayStatus is the display state of a single calendar day. Selection is
// an independently composable attribute rather than a fourth class: a
// selected day keeps its scheduled/unscheduled classification and the
// highlight is layered on top.
type DayStatus struct {
	Class     DayClass `json:"class"`
	WasteType string   `json:"wasteType,omitempty"`
	Selected  bool     `json:"selected"`
}

// SelectResult reports the outcome of selecting a calendar day: either
// the day already carries an entry, or an assignment prompt was opened.
type SelectResult struct {
	PromptOpened bool                  `json:"promptOpened"`
	Entry        *models.ScheduleEntry `json:"entry,omitempty"`
}

// Validation errors raised before any store call.
var (
	ErrPastDate            = errors.New("cannot schedule a pickup for a past date")
	ErrMissingWasteType    = errors.New("waste type is required")
	ErrNoDateSelected      = errors.New("no date selected for assignment")
	ErrDayAlreadyScheduled = errors.New("a collection is already scheduled for this date")
	ErrEmptyRoadName       = errors.New("road name is required")
	ErrDuplicateRoad       = errors.New("road already exists")
)

// SchedulingEngine owns the select-a-date interaction and the
// schedule-assignment workflow over the wasteSchedules collection. It
// holds a read-through projection of schedule entries for classification
// and same-day lookup.
type SchedulingEngine interface {
	// Refresh reloads the projection from the store.
	Refresh() error
	// Entries returns a copy of the current projection.
	Entries() []models.ScheduleEntry
	// ClassifyDate computes the display state of a calendar day.
	ClassifyDate(date time.Time) DayStatus
	// SelectDate sets the active date, rejecting past days, and opens
	// the assignment prompt when the day has no entry yet.
	SelectDate(date time.Time) (SelectResult, error)
	// HasExistingEntry returns the entry scheduled on the same calendar
	// day as date, or nil.
	HasExistingEntry(date time.Time) *models.ScheduleEntry
	// ConfirmAssignment persists a new entry for the date, refusing a
	// day that already carries one. The prompt state is cleared whether
	// or not the write succeeds.
	ConfirmAssignment(date time.Time, wasteType string) (*models.ScheduleEntry, error)
	// EditEntry replaces the waste type of the entry with the given id.
	EditEntry(id, newWasteType string) (*models.ScheduleEntry, error)
	// DeleteEntry removes the entry with the given id.
	DeleteEntry(id string) error
}

// RoadService manages the set of named roads and their pickup time slots.
type RoadService interface {
	// Refresh reloads the road list from the store.
	Refresh() error
	// Roads returns a copy of the current road list.
	Roads() []models.Road
	// AddRoad persists a new road with no slot assigned. Empty names
	// and case-sensitive duplicates are rejected before any store call.
	AddRoad(name string) (*models.Road, error)
	// AssignTimeSlot updates the local list immediately, then persists
	// the slot on the stored road document matching the name. A missing
	// document is not rolled back locally.
	AssignTimeSlot(name, slot string) error
	// DeleteRoad removes the stored document and the local entry.
	DeleteRoad(name string) error
}
