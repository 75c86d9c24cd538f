package community

import (
	"testing"

	"wastewise/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRecyclingRepo struct {
	categories  []models.RecyclingCategory
	segregation []models.WasteSegregation
	motivations []models.RecyclingMotivation
	centers     []models.RecyclingCenter
}

func (f *fakeRecyclingRepo) GetCategories() ([]models.RecyclingCategory, error) {
	return f.categories, nil
}

func (f *fakeRecyclingRepo) CreateCategory(c *models.RecyclingCategory) error {
	f.categories = append(f.categories, *c)
	return nil
}

func (f *fakeRecyclingRepo) GetSegregationGuide() ([]models.WasteSegregation, error) {
	return f.segregation, nil
}

func (f *fakeRecyclingRepo) CreateSegregation(e *models.WasteSegregation) error {
	f.segregation = append(f.segregation, *e)
	return nil
}

func (f *fakeRecyclingRepo) GetMotivations() ([]models.RecyclingMotivation, error) {
	return f.motivations, nil
}

func (f *fakeRecyclingRepo) CreateMotivation(m *models.RecyclingMotivation) error {
	f.motivations = append(f.motivations, *m)
	return nil
}

func (f *fakeRecyclingRepo) GetCenters() ([]models.RecyclingCenter, error) { return f.centers, nil }

func (f *fakeRecyclingRepo) CreateCenter(c *models.RecyclingCenter) error {
	f.centers = append(f.centers, *c)
	return nil
}

func TestGetRecyclingInfoAssemblesAllCollections(t *testing.T) {
	repo := &fakeRecyclingRepo{
		categories:  []models.RecyclingCategory{{ID: "1", Name: "Plastics"}},
		segregation: []models.WasteSegregation{{ID: "1", Type: "Organic"}},
		motivations: []models.RecyclingMotivation{{ID: "1", Tip: "One bottle saves energy for 3 hours of TV"}},
		centers:     []models.RecyclingCenter{{ID: "1", Name: "North Depot", Address: "12 Mill Rd"}},
	}
	svc := &DefaultRecyclingService{Repo: repo}

	info, err := svc.GetRecyclingInfo()
	require.NoError(t, err)
	assert.Len(t, info.Categories, 1)
	assert.Len(t, info.WasteSegregation, 1)
	assert.Len(t, info.Motivations, 1)
	assert.Len(t, info.RecyclingCenters, 1)
}

func TestAddValidation(t *testing.T) {
	svc := &DefaultRecyclingService{Repo: &fakeRecyclingRepo{}}

	assert.Error(t, svc.AddCategory(&models.RecyclingCategory{Name: " "}))
	assert.Error(t, svc.AddSegregation(&models.WasteSegregation{Type: ""}))
	assert.Error(t, svc.AddMotivation(&models.RecyclingMotivation{Tip: ""}))
	assert.Error(t, svc.AddCenter(&models.RecyclingCenter{Name: "Depot"}))

	require.NoError(t, svc.AddCenter(&models.RecyclingCenter{Name: "Depot", Address: "12 Mill Rd"}))
}
