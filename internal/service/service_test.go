package service

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"jobboard/internal/apperr"
	"jobboard/internal/models"
	"jobboard/internal/sqlutil"
)

type fakeOrgRepo struct {
	byHandle map[string]*models.Organization
	all      []models.Organization
	updated  []sqlutil.Field
}

func (f *fakeOrgRepo) Create(org *models.Organization) error { return nil }

func (f *fakeOrgRepo) GetAll() ([]models.Organization, error) { return f.all, nil }

func (f *fakeOrgRepo) GetByHandle(handle string) (*models.Organization, error) {
	if org, ok := f.byHandle[handle]; ok {
		return org, nil
	}
	return nil, sql.ErrNoRows
}

func (f *fakeOrgRepo) Update(handle string, fields []sqlutil.Field) (*models.Organization, error) {
	if _, ok := f.byHandle[handle]; !ok {
		return nil, sql.ErrNoRows
	}
	if len(fields) == 0 {
		return nil, apperr.BadRequest("No data")
	}
	f.updated = fields
	return f.byHandle[handle], nil
}

func (f *fakeOrgRepo) Delete(handle string) error {
	if _, ok := f.byHandle[handle]; !ok {
		return sql.ErrNoRows
	}
	delete(f.byHandle, handle)
	return nil
}

type fakeJobRepo struct {
	byOrg map[string][]models.Job
}

func (f *fakeJobRepo) Create(job *models.Job) error { return nil }

func (f *fakeJobRepo) GetAll() ([]models.Job, error) { return nil, nil }

func (f *fakeJobRepo) GetByID(id int64) (*models.Job, error) { return nil, sql.ErrNoRows }

func (f *fakeJobRepo) GetByOrgHandle(handle string) ([]models.Job, error) {
	return f.byOrg[handle], nil
}

func (f *fakeJobRepo) Update(id int64, fields []sqlutil.Field) (*models.Job, error) {
	return nil, sql.ErrNoRows
}
func (f *fakeJobRepo) Delete(id int64) error { return sql.ErrNoRows }

func TestOrganizationServiceCreateRejectsDuplicate(t *testing.T) {
	repo := &fakeOrgRepo{byHandle: map[string]*models.Organization{
		"acme": {Handle: "acme", Name: "Acme Corp"},
	}}
	svc := NewOrganizationService(repo, &fakeJobRepo{}, zap.NewNop())

	_, err := svc.Create(&models.Organization{Handle: "acme", Name: "Acme Again"})
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindBadRequest))
}

func TestOrganizationServiceGetEmbedsJobs(t *testing.T) {
	orgs := &fakeOrgRepo{byHandle: map[string]*models.Organization{
		"acme": {Handle: "acme", Name: "Acme Corp"},
	}}
	jobs := &fakeJobRepo{byOrg: map[string][]models.Job{
		"acme": {{ID: 1, Title: "Engineer", OrgHandle: "acme"}},
	}}
	svc := NewOrganizationService(orgs, jobs, zap.NewNop())

	org, err := svc.Get("acme")
	require.NoError(t, err)
	require.Len(t, org.Jobs, 1)
	assert.Equal(t, "Engineer", org.Jobs[0].Title)
}

func TestOrganizationServiceGetUnknownHandle(t *testing.T) {
	svc := NewOrganizationService(&fakeOrgRepo{byHandle: map[string]*models.Organization{}}, &fakeJobRepo{}, zap.NewNop())

	_, err := svc.Get("ghost")
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindNotFound))
}

func TestOrganizationServiceUpdateNoFields(t *testing.T) {
	repo := &fakeOrgRepo{byHandle: map[string]*models.Organization{
		"acme": {Handle: "acme"},
	}}
	svc := NewOrganizationService(repo, &fakeJobRepo{}, zap.NewNop())

	_, err := svc.Update("acme", OrganizationUpdate{})
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindBadRequest))
}

func TestOrganizationUpdateFieldOrder(t *testing.T) {
	update := OrganizationUpdate{
		Name:         strPtr("Acme Corp"),
		NumEmployees: intPtr(42),
		LogoURL:      strPtr("https://acme.example/logo.png"),
	}
	fields := update.fields()
	require.Len(t, fields, 3)
	assert.Equal(t, "name", fields[0].Name)
	assert.Equal(t, "numEmployees", fields[1].Name)
	assert.Equal(t, "logoUrl", fields[2].Name)
}

func TestJobUpdateFieldOrder(t *testing.T) {
	update := JobUpdate{Salary: intPtr(90000), Equity: floatPtr(0.1)}
	fields := update.fields()
	require.Len(t, fields, 2)
	assert.Equal(t, "salary", fields[0].Name)
	assert.Equal(t, "equity", fields[1].Name)
}

func TestUserUpdatePasswordBecomesHash(t *testing.T) {
	update := UserUpdate{FirstName: strPtr("Aliya"), Password: strPtr("hunter2")}
	fields := update.fields("$argon2id$hash")
	require.Len(t, fields, 2)
	assert.Equal(t, "firstName", fields[0].Name)
	assert.Equal(t, "password", fields[1].Name)
	assert.Equal(t, "$argon2id$hash", fields[1].Value)
}

func TestJobServiceCreateUnknownOrganization(t *testing.T) {
	svc := NewJobService(&fakeJobRepo{}, &fakeOrgRepo{byHandle: map[string]*models.Organization{}}, zap.NewNop())

	_, err := svc.Create(&models.Job{Title: "Engineer", OrgHandle: "ghost"})
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindNotFound))
}
