package community

import (
	"context"
	"errors"
	"testing"

	"wastewise/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCommunityRepo struct {
	items   []models.SharedItem
	details []models.AwarenessDetail
}

func (f *fakeCommunityRepo) GetSharedItems() ([]models.SharedItem, error) { return f.items, nil }

func (f *fakeCommunityRepo) GetSharedItemByID(id string) (*models.SharedItem, error) {
	for i := range f.items {
		if f.items[i].ID == id {
			return &f.items[i], nil
		}
	}
	return nil, nil
}

func (f *fakeCommunityRepo) CreateSharedItem(item *models.SharedItem) error {
	if item.ID == "" {
		item.ID = "generated"
	}
	f.items = append(f.items, *item)
	return nil
}

func (f *fakeCommunityRepo) UpdateSharedItemPhoto(id, photoURL string) error {
	for i := range f.items {
		if f.items[i].ID == id {
			f.items[i].PhotoURL = photoURL
			return nil
		}
	}
	return errors.New("shared item not found")
}

func (f *fakeCommunityRepo) DeleteSharedItem(id string) error {
	for i, item := range f.items {
		if item.ID == id {
			f.items = append(f.items[:i], f.items[i+1:]...)
			return nil
		}
	}
	return errors.New("shared item not found")
}

func (f *fakeCommunityRepo) GetAwarenessDetails() ([]models.AwarenessDetail, error) {
	return f.details, nil
}

func (f *fakeCommunityRepo) CreateAwarenessDetail(detail *models.AwarenessDetail) error {
	f.details = append(f.details, *detail)
	return nil
}

type fakeStorage struct {
	url       string
	uploadErr error
}

func (f *fakeStorage) UploadPhoto(ctx context.Context, localFilePath, destFolder string) (string, error) {
	if f.uploadErr != nil {
		return "", f.uploadErr
	}
	return f.url, nil
}

func (f *fakeStorage) DeletePhoto(ctx context.Context, publicID string) error { return nil }

func TestSearchSharedItemsMatchesTitleAndOwner(t *testing.T) {
	repo := &fakeCommunityRepo{items: []models.SharedItem{
		{ID: "1", Title: "Garden compost bin", Owner: "Amina"},
		{ID: "2", Title: "Old ladder", Owner: "Brian"},
		{ID: "3", Title: "Compost starter", Owner: "Chen"},
	}}
	svc := &DefaultCommunityService{Repo: repo}

	matches, err := svc.SearchSharedItems("compost")
	require.NoError(t, err)
	assert.Len(t, matches, 2)

	matches, err = svc.SearchSharedItems("brian")
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, "Old ladder", matches[0].Title)

	all, err := svc.SearchSharedItems("  ")
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestGetSharedItemNotFound(t *testing.T) {
	svc := &DefaultCommunityService{Repo: &fakeCommunityRepo{}}

	_, err := svc.GetSharedItem("missing")
	assert.Error(t, err)
}

func TestShareItemValidatesAndStampsCreatedAt(t *testing.T) {
	repo := &fakeCommunityRepo{}
	svc := &DefaultCommunityService{Repo: repo}

	assert.Error(t, svc.ShareItem(&models.SharedItem{Title: " ", Owner: "Amina"}))
	assert.Error(t, svc.ShareItem(&models.SharedItem{Title: "Ladder"}))

	item := models.SharedItem{Title: "Ladder", Owner: "Brian"}
	require.NoError(t, svc.ShareItem(&item))
	assert.False(t, repo.items[0].CreatedAt.IsZero())
}

func TestAttachPhotoStoresDeliveryURL(t *testing.T) {
	repo := &fakeCommunityRepo{items: []models.SharedItem{{ID: "1", Title: "Ladder", Owner: "Brian"}}}
	svc := &DefaultCommunityService{
		Repo:    repo,
		Storage: &fakeStorage{url: "https://cdn.example.com/shared-items/ladder.jpg"},
	}

	url, err := svc.AttachPhoto(context.Background(), "1", "/tmp/ladder.jpg")
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/shared-items/ladder.jpg", url)
	assert.Equal(t, url, repo.items[0].PhotoURL)
}

func TestAttachPhotoUploadFailureLeavesItemUntouched(t *testing.T) {
	repo := &fakeCommunityRepo{items: []models.SharedItem{{ID: "1", Title: "Ladder", Owner: "Brian"}}}
	svc := &DefaultCommunityService{Repo: repo, Storage: &fakeStorage{uploadErr: errors.New("network")}}

	_, err := svc.AttachPhoto(context.Background(), "1", "/tmp/ladder.jpg")
	require.Error(t, err)
	assert.Empty(t, repo.items[0].PhotoURL)
}

func TestGetAwarenessGroupsBySectionWithAllSectionsPresent(t *testing.T) {
	repo := &fakeCommunityRepo{details: []models.AwarenessDetail{
		{ID: "1", Type: "healthAlerts", Description: "Cholera alert in ward 4"},
		{ID: "2", Type: "ongoingCampaigns", Description: "Clean-up drive Saturday"},
		{ID: "3", Type: "healthAlerts", Description: "Boil water advisory"},
	}}
	svc := &DefaultCommunityService{Repo: repo}

	grouped, err := svc.GetAwareness()
	require.NoError(t, err)
	assert.Len(t, grouped, len(models.AwarenessSections))
	assert.Len(t, grouped["healthAlerts"], 2)
	assert.Len(t, grouped["ongoingCampaigns"], 1)
	assert.Empty(t, grouped["childrenZone"])
}

func TestAddAwarenessDetailRejectsUnknownSection(t *testing.T) {
	svc := &DefaultCommunityService{Repo: &fakeCommunityRepo{}}

	err := svc.AddAwarenessDetail(&models.AwarenessDetail{Type: "rumors", Description: "x"})
	assert.Error(t, err)

	err = svc.AddAwarenessDetail(&models.AwarenessDetail{Type: "healthAlerts", Description: " "})
	assert.Error(t, err)
}
