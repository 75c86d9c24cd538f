package schedule

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"wastewise/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeScheduleRepo is an in-memory ScheduleRepository with error injection.
type fakeScheduleRepo struct {
	entries   []models.ScheduleEntry
	nextID    int
	createErr error
	updateErr error
	deleteErr error
}

func (f *fakeScheduleRepo) Create(entry *models.ScheduleEntry) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.nextID++
	entry.ID = fmt.Sprintf("entry-%d", f.nextID)
	f.entries = append(f.entries, *entry)
	return nil
}

func (f *fakeScheduleRepo) GetAll() ([]models.ScheduleEntry, error) {
	out := make([]models.ScheduleEntry, len(f.entries))
	copy(out, f.entries)
	return out, nil
}

func (f *fakeScheduleRepo) GetByID(id string) (*models.ScheduleEntry, error) {
	for _, e := range f.entries {
		if e.ID == id {
			return &e, nil
		}
	}
	return nil, errors.New("not found")
}

func (f *fakeScheduleRepo) UpdateWasteType(id, wasteType string) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	for i := range f.entries {
		if f.entries[i].ID == id {
			f.entries[i].WasteType = wasteType
			return nil
		}
	}
	return errors.New("not found")
}

func (f *fakeScheduleRepo) Delete(id string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	for i := range f.entries {
		if f.entries[i].ID == id {
			f.entries = append(f.entries[:i], f.entries[i+1:]...)
			return nil
		}
	}
	return errors.New("not found")
}

var testNow = time.Date(2025, time.June, 15, 10, 30, 0, 0, time.Local)

func newTestEngine(t *testing.T, repo *fakeScheduleRepo) *DefaultSchedulingEngine {
	t.Helper()
	eng, err := NewSchedulingEngine(repo)
	require.NoError(t, err)
	eng.Now = func() time.Time { return testNow }
	return eng
}

func day(offset int) time.Time {
	return testNow.AddDate(0, 0, offset)
}

func TestSelectDateRejectsPastDates(t *testing.T) {
	repo := &fakeScheduleRepo{}
	eng := newTestEngine(t, repo)

	res, err := eng.SelectDate(day(-1))
	assert.ErrorIs(t, err, ErrPastDate)
	assert.False(t, res.PromptOpened)
	assert.Empty(t, repo.entries)

	// The refusal leaves no selection behind either.
	status := eng.ClassifyDate(day(-1))
	assert.False(t, status.Selected)
	assert.Equal(t, DayPast, status.Class)
}

func TestSelectDateOpensPromptForUnscheduledDay(t *testing.T) {
	eng := newTestEngine(t, &fakeScheduleRepo{})

	res, err := eng.SelectDate(day(2))
	require.NoError(t, err)
	assert.True(t, res.PromptOpened)
	assert.Nil(t, res.Entry)
	assert.True(t, eng.ClassifyDate(day(2)).Selected)
}

func TestSelectDateDoesNotPromptForScheduledDay(t *testing.T) {
	repo := &fakeScheduleRepo{entries: []models.ScheduleEntry{
		{ID: "e1", Date: day(3).Format(models.ScheduleDateLayout), WasteType: "Glass"},
	}}
	eng := newTestEngine(t, repo)

	res, err := eng.SelectDate(day(3))
	require.NoError(t, err)
	assert.False(t, res.PromptOpened)
	require.NotNil(t, res.Entry)
	assert.Equal(t, "Glass", res.Entry.WasteType)
}

func TestConfirmAssignmentPersistsAndProjects(t *testing.T) {
	repo := &fakeScheduleRepo{}
	eng := newTestEngine(t, repo)

	entry, err := eng.ConfirmAssignment(day(1), "E-Waste")
	require.NoError(t, err)
	assert.NotEmpty(t, entry.ID)

	got := eng.HasExistingEntry(day(1))
	require.NotNil(t, got)
	assert.Equal(t, "E-Waste", got.WasteType)
	require.Len(t, repo.entries, 1)
	assert.Equal(t, entry.ID, repo.entries[0].ID)
}

func TestConfirmAssignmentValidation(t *testing.T) {
	repo := &fakeScheduleRepo{}
	eng := newTestEngine(t, repo)

	_, err := eng.ConfirmAssignment(day(1), "")
	assert.ErrorIs(t, err, ErrMissingWasteType)

	_, err = eng.ConfirmAssignment(time.Time{}, "Plastic")
	assert.ErrorIs(t, err, ErrNoDateSelected)

	assert.Empty(t, repo.entries)
}

func TestConfirmAssignmentRefusesAlreadyScheduledDay(t *testing.T) {
	repo := &fakeScheduleRepo{}
	eng := newTestEngine(t, repo)

	first, err := eng.ConfirmAssignment(day(1), "Plastic")
	require.NoError(t, err)

	// A direct second confirmation for the same day must not create a
	// shadowed duplicate document.
	_, err = eng.ConfirmAssignment(day(1), "Glass")
	assert.ErrorIs(t, err, ErrDayAlreadyScheduled)
	require.Len(t, repo.entries, 1)

	got := eng.HasExistingEntry(day(1))
	require.NotNil(t, got)
	assert.Equal(t, first.ID, got.ID)
	assert.Equal(t, "Plastic", got.WasteType)
}

func TestConfirmAssignmentClearsPromptOnFailure(t *testing.T) {
	repo := &fakeScheduleRepo{createErr: errors.New("store down")}
	eng := newTestEngine(t, repo)

	res, err := eng.SelectDate(day(4))
	require.NoError(t, err)
	require.True(t, res.PromptOpened)

	_, err = eng.ConfirmAssignment(day(4), "Paper")
	require.Error(t, err)

	// Failed or not, the prompt never stays open.
	eng.mu.Lock()
	assert.False(t, eng.state.promptOpen)
	eng.mu.Unlock()
	assert.Nil(t, eng.HasExistingEntry(day(4)))
}

func TestEditEntryReplacesWasteTypeOnly(t *testing.T) {
	repo := &fakeScheduleRepo{}
	eng := newTestEngine(t, repo)

	created, err := eng.ConfirmAssignment(day(5), "Plastic")
	require.NoError(t, err)

	updated, err := eng.EditEntry(created.ID, "Metal")
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, created.Date, updated.Date)
	assert.Equal(t, "Metal", updated.WasteType)

	stored, err := repo.GetByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Metal", stored.WasteType)
}

func TestEditEntryStoreFailureLeavesProjection(t *testing.T) {
	repo := &fakeScheduleRepo{}
	eng := newTestEngine(t, repo)

	created, err := eng.ConfirmAssignment(day(5), "Plastic")
	require.NoError(t, err)

	repo.updateErr = errors.New("store down")
	_, err = eng.EditEntry(created.ID, "Metal")
	require.Error(t, err)

	got := eng.HasExistingEntry(day(5))
	require.NotNil(t, got)
	assert.Equal(t, "Plastic", got.WasteType)
}

func TestEditEntryAdoptsEntryUnknownToProjection(t *testing.T) {
	repo := &fakeScheduleRepo{}
	eng := newTestEngine(t, repo)

	// Another session created the entry after our last refresh.
	repo.entries = append(repo.entries, models.ScheduleEntry{
		ID: "external", Date: day(7).Format(models.ScheduleDateLayout), WasteType: "Paper",
	})
	require.Nil(t, eng.HasExistingEntry(day(7)))

	updated, err := eng.EditEntry("external", "Metal")
	require.NoError(t, err)
	assert.Equal(t, "Metal", updated.WasteType)

	// The edit both persisted and landed in the projection.
	got := eng.HasExistingEntry(day(7))
	require.NotNil(t, got)
	assert.Equal(t, "Metal", got.WasteType)
}

func TestDeleteEntryRemovesDay(t *testing.T) {
	repo := &fakeScheduleRepo{}
	eng := newTestEngine(t, repo)

	created, err := eng.ConfirmAssignment(day(6), "Food Waste")
	require.NoError(t, err)

	require.NoError(t, eng.DeleteEntry(created.ID))
	assert.Nil(t, eng.HasExistingEntry(day(6)))
	assert.Empty(t, repo.entries)
}

func TestDeleteEntryStoreFailureLeavesProjection(t *testing.T) {
	repo := &fakeScheduleRepo{}
	eng := newTestEngine(t, repo)

	created, err := eng.ConfirmAssignment(day(6), "Food Waste")
	require.NoError(t, err)

	repo.deleteErr = errors.New("store down")
	require.Error(t, eng.DeleteEntry(created.ID))
	assert.NotNil(t, eng.HasExistingEntry(day(6)))
}

func TestClassifyDateRoundTrip(t *testing.T) {
	eng := newTestEngine(t, &fakeScheduleRepo{})

	assert.Equal(t, DayUnscheduled, eng.ClassifyDate(testNow).Class)

	_, err := eng.ConfirmAssignment(testNow, "Plastic")
	require.NoError(t, err)

	status := eng.ClassifyDate(testNow)
	assert.Equal(t, DayScheduled, status.Class)
	assert.Equal(t, "Plastic", status.WasteType)
}

func TestClassifyDatePastPrecedesScheduled(t *testing.T) {
	repo := &fakeScheduleRepo{entries: []models.ScheduleEntry{
		{ID: "e1", Date: day(-2).Format(models.ScheduleDateLayout), WasteType: "Glass"},
	}}
	eng := newTestEngine(t, repo)

	status := eng.ClassifyDate(day(-2))
	assert.Equal(t, DayPast, status.Class)
	assert.Empty(t, status.WasteType)
}

func TestSelectionIsComposableWithScheduled(t *testing.T) {
	eng := newTestEngine(t, &fakeScheduleRepo{})

	_, err := eng.ConfirmAssignment(day(1), "Glass")
	require.NoError(t, err)

	// Selecting an already-scheduled day keeps its classification and
	// layers the highlight on top.
	res, err := eng.SelectDate(day(1))
	require.NoError(t, err)
	assert.False(t, res.PromptOpened)

	status := eng.ClassifyDate(day(1))
	assert.Equal(t, DayScheduled, status.Class)
	assert.True(t, status.Selected)
}

func TestRefreshReplacesProjection(t *testing.T) {
	repo := &fakeScheduleRepo{}
	eng := newTestEngine(t, repo)

	// A write from another session lands directly in the store.
	repo.entries = append(repo.entries, models.ScheduleEntry{
		ID: "external", Date: day(9).Format(models.ScheduleDateLayout), WasteType: "Other",
	})
	assert.Nil(t, eng.HasExistingEntry(day(9)))

	require.NoError(t, eng.Refresh())
	assert.NotNil(t, eng.HasExistingEntry(day(9)))
}
