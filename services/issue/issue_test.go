package issue

import (
	"errors"
	"testing"

	"wastewise/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeIssueRepo struct {
	issues []models.ReportedIssue
}

func (f *fakeIssueRepo) Create(issue *models.ReportedIssue) error {
	if issue.ID == "" {
		issue.ID = "generated"
	}
	f.issues = append(f.issues, *issue)
	return nil
}

func (f *fakeIssueRepo) GetAll() ([]models.ReportedIssue, error) { return f.issues, nil }

func (f *fakeIssueRepo) SaveResponse(id, reply, action string) error {
	for i := range f.issues {
		if f.issues[i].ID == id {
			f.issues[i].Reply = reply
			f.issues[i].Action = action
			return nil
		}
	}
	return errors.New("issue not found")
}

func (f *fakeIssueRepo) Count() (int64, error) { return int64(len(f.issues)), nil }

func TestReportIssueDefaultsStatusOpen(t *testing.T) {
	repo := &fakeIssueRepo{}
	svc := &DefaultIssueService{Repo: repo}

	issue := models.ReportedIssue{Title: "  Missed collection on Elm St ", Category: "Collection"}
	require.NoError(t, svc.ReportIssue(&issue))
	assert.Equal(t, "Missed collection on Elm St", repo.issues[0].Title)
	assert.Equal(t, "Open", repo.issues[0].Status)
}

func TestReportIssueValidatesTitleAndCategory(t *testing.T) {
	svc := &DefaultIssueService{Repo: &fakeIssueRepo{}}

	assert.Error(t, svc.ReportIssue(&models.ReportedIssue{Title: "   ", Category: "Collection"}))
	assert.Error(t, svc.ReportIssue(&models.ReportedIssue{Title: "Damaged bin"}))
}

func TestRespondStoresReplyAndAction(t *testing.T) {
	repo := &fakeIssueRepo{issues: []models.ReportedIssue{{ID: "i-1", Title: "Damaged bin"}}}
	svc := &DefaultIssueService{Repo: repo}

	require.NoError(t, svc.Respond("i-1", "Replacement scheduled", "Replace bin"))
	assert.Equal(t, "Replacement scheduled", repo.issues[0].Reply)
	assert.Equal(t, "Replace bin", repo.issues[0].Action)
}

func TestRespondRequiresReplyOrAction(t *testing.T) {
	svc := &DefaultIssueService{Repo: &fakeIssueRepo{}}

	assert.Error(t, svc.Respond("i-1", "  ", ""))
}
