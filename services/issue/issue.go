package issue

import (
	"fmt"
	"strings"

	issueRepo "wastewise/database/repository/issue"
	"wastewise/models"
)

// IssueService defines business logic for reported issues.
type IssueService interface {
	// GetIssues lists every reported issue.
	GetIssues() ([]models.ReportedIssue, error)
	// ReportIssue records a new issue.
	ReportIssue(issue *models.ReportedIssue) error
	// Respond stores the staff reply and the action taken on an issue.
	Respond(issueID, reply, action string) error
}

// DefaultIssueService is the production implementation.
type DefaultIssueService struct {
	Repo issueRepo.IssueRepository
}

// GetIssues lists every reported issue.
func (s *DefaultIssueService) GetIssues() ([]models.ReportedIssue, error) {
	return s.Repo.GetAll()
}

// ReportIssue records a new issue. Title and category are required;
// status defaults to Open.
func (s *DefaultIssueService) ReportIssue(issue *models.ReportedIssue) error {
	issue.Title = strings.TrimSpace(issue.Title)
	if issue.Title == "" {
		return fmt.Errorf("issue title is required")
	}
	if issue.Category == "" {
		return fmt.Errorf("issue category is required")
	}
	if issue.Status == "" {
		issue.Status = "Open"
	}
	return s.Repo.Create(issue)
}

// Respond stores the staff reply and action on an issue. At least one of
// the two must be provided.
func (s *DefaultIssueService) Respond(issueID, reply, action string) error {
	reply = strings.TrimSpace(reply)
	action = strings.TrimSpace(action)
	if reply == "" && action == "" {
		return fmt.Errorf("a reply or an action is required")
	}
	return s.Repo.SaveResponse(issueID, reply, action)
}
