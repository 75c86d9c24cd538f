package user

import (
	"errors"
	"testing"

	"wastewise/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"golang.org/x/crypto/bcrypt"
)

type fakeUserRepo struct {
	users []models.User

	setDocs map[string]bson.M
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{setDocs: map[string]bson.M{}}
}

func (f *fakeUserRepo) GetByID(id string) (*models.User, error) {
	for i := range f.users {
		if f.users[i].ID == id {
			return &f.users[i], nil
		}
	}
	return nil, errors.New("user not found")
}

func (f *fakeUserRepo) GetByEmail(email string) (*models.User, error) {
	for i := range f.users {
		if f.users[i].Email == email {
			return &f.users[i], nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) GetByTokenHash(hash string) (*models.User, error) {
	for i := range f.users {
		if f.users[i].TokenHash == hash {
			return &f.users[i], nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) GetAll() ([]models.User, error) { return f.users, nil }

func (f *fakeUserRepo) Create(u *models.User) error {
	f.users = append(f.users, *u)
	return nil
}

func (f *fakeUserRepo) Update(u *models.User) error { return nil }

func (f *fakeUserRepo) UpdateSetDocument(id string, doc bson.M) error {
	f.setDocs[id] = doc
	for i := range f.users {
		if f.users[i].ID == id {
			if name, ok := doc["name"].(string); ok {
				f.users[i].Name = name
			}
			if hash, ok := doc["tokenHash"].(string); ok {
				f.users[i].TokenHash = hash
			}
			return nil
		}
	}
	return errors.New("user not found")
}

func (f *fakeUserRepo) Delete(id string) error { return nil }

func (f *fakeUserRepo) Count() (int64, error) { return int64(len(f.users)), nil }

func mustHash(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

func TestRegisterAdminCreatesStaffAccount(t *testing.T) {
	repo := newFakeUserRepo()
	svc := &DefaultUserService{Repo: repo}

	resp, err := svc.RegisterAdmin(models.User{
		Name: "Grace", Email: "grace@town.gov", Password: "s3cret",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.ID)
	assert.NotEmpty(t, resp.Token)

	require.Len(t, repo.users, 1)
	stored := repo.users[0]
	assert.Equal(t, models.PositionAdmin, stored.Position)
	assert.Empty(t, stored.Password)
	assert.NotEmpty(t, stored.PasswordHash)
	assert.NotEmpty(t, stored.TokenHash)
}

func TestRegisterAdminRejectsDuplicateEmail(t *testing.T) {
	repo := newFakeUserRepo()
	repo.users = []models.User{{ID: "u-1", Email: "grace@town.gov"}}
	svc := &DefaultUserService{Repo: repo}

	_, err := svc.RegisterAdmin(models.User{Name: "Grace", Email: "grace@town.gov", Password: "x"})
	assert.Error(t, err)
}

func TestAuthenticateRotatesTokenHash(t *testing.T) {
	repo := newFakeUserRepo()
	repo.users = []models.User{{
		ID: "u-1", Name: "Grace", Email: "grace@town.gov",
		PasswordHash: mustHash(t, "s3cret"), TokenHash: "old",
	}}
	svc := &DefaultUserService{Repo: repo}

	resp, err := svc.Authenticate("grace@town.gov", "s3cret")
	require.NoError(t, err)
	assert.Equal(t, "u-1", resp.ID)
	assert.NotEmpty(t, resp.Token)
	assert.NotEqual(t, "old", repo.users[0].TokenHash)
}

func TestAuthenticateRejectsBadPassword(t *testing.T) {
	repo := newFakeUserRepo()
	repo.users = []models.User{{
		ID: "u-1", Email: "grace@town.gov", PasswordHash: mustHash(t, "s3cret"),
	}}
	svc := &DefaultUserService{Repo: repo}

	_, err := svc.Authenticate("grace@town.gov", "wrong")
	assert.Error(t, err)

	_, err = svc.Authenticate("nobody@town.gov", "s3cret")
	assert.Error(t, err)
}

func TestUpdateProfileAppliesOnlyGivenFields(t *testing.T) {
	repo := newFakeUserRepo()
	repo.users = []models.User{{ID: "u-1", Name: "Grace", Address: "4 Elm St"}}
	svc := &DefaultUserService{Repo: repo}

	_, err := svc.UpdateProfile(models.User{ID: "u-1", Name: "Grace H."})
	require.NoError(t, err)
	doc := repo.setDocs["u-1"]
	assert.Equal(t, bson.M{"name": "Grace H."}, doc)

	_, err = svc.UpdateProfile(models.User{ID: "u-1"})
	assert.Error(t, err)
}

func TestRevokeAuthTokenClearsHash(t *testing.T) {
	repo := newFakeUserRepo()
	repo.users = []models.User{{ID: "u-1", TokenHash: "live"}}
	svc := &DefaultUserService{Repo: repo}

	require.NoError(t, svc.RevokeAuthToken("u-1"))
	assert.Empty(t, repo.users[0].TokenHash)
}

func TestGetResidentsFiltersAndStripsSecrets(t *testing.T) {
	repo := newFakeUserRepo()
	repo.users = []models.User{
		{ID: "1", Name: "Amina", Email: "amina@mail.com", Address: "12 Mill Road",
			HomeNumber: "A-07", PasswordHash: "h", TokenHash: "t"},
		{ID: "2", Name: "Brian", Email: "brian@mail.com", Address: "3 Elm Street",
			Position: models.PositionResidential},
		{ID: "3", Name: "Grace", Email: "grace@town.gov", Position: models.PositionAdmin},
	}
	svc := &DefaultUserService{Repo: repo}

	residents, err := svc.GetResidents("", "")
	require.NoError(t, err)
	assert.Len(t, residents, 2)
	for _, r := range residents {
		assert.Empty(t, r.PasswordHash)
		assert.Empty(t, r.TokenHash)
	}

	byRoad, err := svc.GetResidents("", "mill road")
	require.NoError(t, err)
	require.Len(t, byRoad, 1)
	assert.Equal(t, "Amina", byRoad[0].Name)

	bySearch, err := svc.GetResidents("a-07", "")
	require.NoError(t, err)
	require.Len(t, bySearch, 1)
	assert.Equal(t, "Amina", bySearch[0].Name)
}
