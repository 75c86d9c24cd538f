package schedule

import (
	"fmt"
	"sync"
	"time"

	scheduleRepo "wastewise/database/repository/schedule"
	"wastewise/models"
	"wastewise/utils"

	"go.uber.org/zap"
)

// calendarState gathers every piece of view state the calendar needs in
// one place: the active selection, the pending assignment prompt, and
// the entry projection. All transitions go through the engine's mutex.
type calendarState struct {
	selected   time.Time
	promptOpen bool
	promptDate time.Time
	entries    []models.ScheduleEntry
}

// DefaultSchedulingEngine is the production implementation.
type DefaultSchedulingEngine struct {
	Repo scheduleRepo.ScheduleRepository

	// Now is overridable for tests; defaults to time.Now.
	Now func() time.Time

	mu    sync.Mutex
	state calendarState
}

// NewSchedulingEngine constructs an engine and loads the initial projection.
func NewSchedulingEngine(repo scheduleRepo.ScheduleRepository) (*DefaultSchedulingEngine, error) {
	eng := &DefaultSchedulingEngine{Repo: repo, Now: time.Now}
	if err := eng.Refresh(); err != nil {
		return nil, err
	}
	return eng, nil
}

func (s *DefaultSchedulingEngine) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// startOfToday truncates the current time to local midnight.
func (s *DefaultSchedulingEngine) startOfToday() time.Time {
	n := s.now()
	return time.Date(n.Year(), n.Month(), n.Day(), 0, 0, 0, 0, n.Location())
}

// dayKey reduces a time to its persisted day-precision form.
func dayKey(t time.Time) string {
	return t.Format(models.ScheduleDateLayout)
}

func sameDay(a, b time.Time) bool {
	return dayKey(a) == dayKey(b)
}

// Refresh reloads the entry projection from the store.
func (s *DefaultSchedulingEngine) Refresh() error {
	entries, err := s.Repo.GetAll()
	if err != nil {
		return fmt.Errorf("failed to refresh schedule projection: %w", err)
	}

	s.mu.Lock()
	s.state.entries = entries
	s.mu.Unlock()
	return nil
}

// Entries returns a copy of the current projection.
func (s *DefaultSchedulingEngine) Entries() []models.ScheduleEntry {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.ScheduleEntry, len(s.state.entries))
	copy(out, s.state.entries)
	return out
}

// findByDay returns the projected entry for the given day, or nil.
// Caller must hold the mutex.
func (s *DefaultSchedulingEngine) findByDay(day string) *models.ScheduleEntry {
	for i := range s.state.entries {
		if s.state.entries[i].Date == day {
			return &s.state.entries[i]
		}
	}
	return nil
}

// ClassifyDate computes the display state of a calendar day as a pure
// function of (date, today, selection, projection). Past days are any
// strictly before the start of today.
func (s *DefaultSchedulingEngine) ClassifyDate(date time.Time) DayStatus {
	s.mu.Lock()
	defer s.mu.Unlock()

	status := DayStatus{
		Selected: !s.state.selected.IsZero() && sameDay(date, s.state.selected),
	}

	if date.Before(s.startOfToday()) {
		status.Class = DayPast
		return status
	}

	if entry := s.findByDay(dayKey(date)); entry != nil {
		status.Class = DayScheduled
		status.WasteType = entry.WasteType
		return status
	}

	status.Class = DayUnscheduled
	return status
}

// SelectDate sets the active date. Past dates are refused with no state
// change; an unscheduled day opens the assignment prompt.
func (s *DefaultSchedulingEngine) SelectDate(date time.Time) (SelectResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if date.Before(s.startOfToday()) {
		return SelectResult{}, ErrPastDate
	}

	s.state.selected = date

	if entry := s.findByDay(dayKey(date)); entry != nil {
		// Never prompt for a day that already carries an entry.
		e := *entry
		return SelectResult{Entry: &e}, nil
	}

	s.state.promptOpen = true
	s.state.promptDate = date
	return SelectResult{PromptOpened: true}, nil
}

// HasExistingEntry looks up the projected entry sharing a calendar day
// with date.
func (s *DefaultSchedulingEngine) HasExistingEntry(date time.Time) *models.ScheduleEntry {
	s.mu.Lock()
	defer s.mu.Unlock()

	if entry := s.findByDay(dayKey(date)); entry != nil {
		e := *entry
		return &e
	}
	return nil
}

// ConfirmAssignment validates the pending assignment, persists it, and
// appends it to the projection. A day holding an entry is refused, so
// the one-entry-per-day invariant holds even for callers that skip the
// prompt. The prompt is closed unconditionally after the attempt,
// succeed or fail.
func (s *DefaultSchedulingEngine) ConfirmAssignment(date time.Time, wasteType string) (*models.ScheduleEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	defer func() {
		s.state.promptOpen = false
		s.state.promptDate = time.Time{}
	}()

	if wasteType == "" {
		return nil, ErrMissingWasteType
	}
	if date.IsZero() {
		return nil, ErrNoDateSelected
	}
	if s.findByDay(dayKey(date)) != nil {
		return nil, ErrDayAlreadyScheduled
	}

	entry := models.ScheduleEntry{
		Date:      dayKey(date),
		WasteType: wasteType,
	}
	if err := s.Repo.Create(&entry); err != nil {
		utils.GetLogger().Error("Failed to persist schedule entry",
			zap.String("date", entry.Date), zap.Error(err))
		return nil, fmt.Errorf("failed to save schedule: %w", err)
	}

	s.state.entries = append(s.state.entries, entry)
	return &entry, nil
}

// EditEntry replaces the waste type of the stored entry, then mirrors
// the change into the projection, adopting entries the projection has
// not seen yet. A store failure leaves the projection untouched.
func (s *DefaultSchedulingEngine) EditEntry(id, newWasteType string) (*models.ScheduleEntry, error) {
	if newWasteType == "" {
		return nil, ErrMissingWasteType
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.Repo.UpdateWasteType(id, newWasteType); err != nil {
		return nil, fmt.Errorf("failed to edit schedule: %w", err)
	}

	for i := range s.state.entries {
		if s.state.entries[i].ID == id {
			s.state.entries[i].WasteType = newWasteType
			e := s.state.entries[i]
			return &e, nil
		}
	}

	// The store accepted the write but the projection has never seen
	// this entry (written from another session). Pull it in rather than
	// reporting failure for a change that already landed.
	stored, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to reload edited entry: %w", err)
	}
	s.state.entries = append(s.state.entries, *stored)
	e := *stored
	return &e, nil
}

// DeleteEntry removes the stored entry, then the projected copy. A
// store failure leaves the projection untouched.
func (s *DefaultSchedulingEngine) DeleteEntry(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.Repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete schedule: %w", err)
	}

	for i := range s.state.entries {
		if s.state.entries[i].ID == id {
			s.state.entries = append(s.state.entries[:i], s.state.entries[i+1:]...)
			break
		}
	}
	return nil
}
