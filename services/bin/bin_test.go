package bin

import (
	"errors"
	"testing"

	"wastewise/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeBinRepo struct {
	bins     []models.Bin
	requests []models.BinRequest

	createErr error
	deleteErr error

	statusUpdates map[string]string
}

func newFakeBinRepo() *fakeBinRepo {
	return &fakeBinRepo{statusUpdates: map[string]string{}}
}

func (f *fakeBinRepo) CreateBin(bin *models.Bin) error {
	if f.createErr != nil {
		return f.createErr
	}
	if bin.ID == "" {
		bin.ID = "generated"
	}
	f.bins = append(f.bins, *bin)
	return nil
}

func (f *fakeBinRepo) GetAllBins() ([]models.Bin, error) { return f.bins, nil }

func (f *fakeBinRepo) GetBinsByHomeNumber(homeNumber string) ([]models.Bin, error) {
	var out []models.Bin
	for _, b := range f.bins {
		if b.HomeNumber == homeNumber {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeBinRepo) UpdateBinStatus(id, status string) error {
	f.statusUpdates[id] = status
	for i := range f.bins {
		if f.bins[i].ID == id {
			f.bins[i].Status = status
		}
	}
	return nil
}

func (f *fakeBinRepo) CountBins() (int64, error) { return int64(len(f.bins)), nil }

func (f *fakeBinRepo) GetAllRequests() ([]models.BinRequest, error) { return f.requests, nil }

func (f *fakeBinRepo) UpdateRequestStatus(id, status string) error {
	for i := range f.requests {
		if f.requests[i].ID == id {
			f.requests[i].Status = status
		}
	}
	return nil
}

func (f *fakeBinRepo) DeleteRequest(id string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	for i, r := range f.requests {
		if r.ID == id {
			f.requests = append(f.requests[:i], f.requests[i+1:]...)
			return nil
		}
	}
	return errors.New("bin request not found")
}

func (f *fakeBinRepo) CountRequests() (int64, error) { return int64(len(f.requests)), nil }

func TestGetHomeNumbersDistinctSorted(t *testing.T) {
	repo := newFakeBinRepo()
	repo.bins = []models.Bin{
		{ID: "1", HomeNumber: "B-12", Status: models.BinStatusActive},
		{ID: "2", HomeNumber: "A-07", Status: models.BinStatusActive},
		{ID: "3", HomeNumber: "B-12", Status: models.BinStatusInactive},
		{ID: "4", HomeNumber: "", Status: models.BinStatusActive},
	}
	svc := &DefaultBinService{Repo: repo}

	homes, err := svc.GetHomeNumbers()
	require.NoError(t, err)
	assert.Equal(t, []string{"A-07", "B-12"}, homes)
}

func TestGetBinsForHomeRequiresHomeNumber(t *testing.T) {
	svc := &DefaultBinService{Repo: newFakeBinRepo()}

	_, err := svc.GetBinsForHome("")
	assert.Error(t, err)
}

func TestActivateBin(t *testing.T) {
	repo := newFakeBinRepo()
	repo.bins = []models.Bin{{ID: "bin-1", HomeNumber: "A-07", Status: models.BinStatusInactive}}
	svc := &DefaultBinService{Repo: repo}

	require.NoError(t, svc.ActivateBin("bin-1"))
	assert.Equal(t, models.BinStatusActive, repo.bins[0].Status)
}

func TestApproveRequestProvisionsInactiveBinAndConsumesRequest(t *testing.T) {
	repo := newFakeBinRepo()
	repo.requests = []models.BinRequest{{ID: "req-1", HomeNumber: "C-03"}}
	svc := &DefaultBinService{Repo: repo}

	created, err := svc.ApproveRequest("req-1", "C-03")
	require.NoError(t, err)
	assert.Equal(t, "C-03", created.HomeNumber)
	assert.Equal(t, models.BinStatusInactive, created.Status)
	assert.Empty(t, repo.requests)
}

func TestApproveRequestKeepsBinWhenRequestDeleteFails(t *testing.T) {
	repo := newFakeBinRepo()
	repo.requests = []models.BinRequest{{ID: "req-1", HomeNumber: "C-03"}}
	repo.deleteErr = errors.New("write conflict")
	svc := &DefaultBinService{Repo: repo}

	created, err := svc.ApproveRequest("req-1", "C-03")
	require.Error(t, err)
	require.NotNil(t, created)
	assert.Len(t, repo.bins, 1)
	assert.Len(t, repo.requests, 1)
}

func TestApproveRequestValidatesInput(t *testing.T) {
	svc := &DefaultBinService{Repo: newFakeBinRepo()}

	_, err := svc.ApproveRequest("", "C-03")
	assert.Error(t, err)
	_, err = svc.ApproveRequest("req-1", "")
	assert.Error(t, err)
}

func TestConfirmRequest(t *testing.T) {
	repo := newFakeBinRepo()
	repo.requests = []models.BinRequest{{ID: "req-1", HomeNumber: "C-03", Status: models.PickupStatusPending}}
	svc := &DefaultBinService{Repo: repo}

	require.NoError(t, svc.ConfirmRequest("req-1"))
	assert.Equal(t, models.PickupStatusConfirmed, repo.requests[0].Status)
}
