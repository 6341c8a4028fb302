package repository

import (
	"database/sql"

	"jobboard/internal/models"
	"jobboard/internal/sqlutil"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

// orgColumns maps logical update-field names to physical columns. Only names
// in this closed map (or logical names that already are column names) can ever
// reach a SET clause.
var orgColumns = map[string]string{
	"numEmployees": "num_employees",
	"logoUrl":      "logo_url",
}

type OrganizationRepository interface {
	Create(org *models.Organization) error
	GetAll() ([]models.Organization, error)
	GetByHandle(handle string) (*models.Organization, error)
	Update(handle string, fields []sqlutil.Field) (*models.Organization, error)
	Delete(handle string) error
}

type organizationRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewOrganizationRepository(db *sqlx.DB, logger *zap.Logger) OrganizationRepository {
	return &organizationRepository{db: db, logger: logger}
}

func (r *organizationRepository) Create(org *models.Organization) error {
	query := `INSERT INTO organizations (handle, name, description, num_employees, logo_url)
	          VALUES ($1, $2, $3, $4, $5)
	          RETURNING handle, name, description, num_employees, logo_url`
	return r.db.QueryRowx(query, org.Handle, org.Name, org.Description, org.NumEmployees, org.LogoURL).StructScan(org)
}

func (r *organizationRepository) GetAll() ([]models.Organization, error) {
	var orgs []models.Organization
	query := `SELECT handle, name, description, num_employees, logo_url FROM organizations ORDER BY name`
	err := r.db.Select(&orgs, query)
	if err != nil {
		return nil, err
	}
	return orgs, nil
}

func (r *organizationRepository) GetByHandle(handle string) (*models.Organization, error) {
	var org models.Organization
	query := `SELECT handle, name, description, num_employees, logo_url FROM organizations WHERE handle = $1`
	err := r.db.Get(&org, query, handle)
	if err != nil {
		return nil, err
	}
	return &org, nil
}

// Update applies a partial update. The trailing handle parameter is numbered
// right after the generated SET placeholders.
func (r *organizationRepository) Update(handle string, fields []sqlutil.Field) (*models.Organization, error) {
	setClause, values, err := sqlutil.BuildPartialUpdate(fields, orgColumns)
	if err != nil {
		return nil, err
	}

	query := `UPDATE organizations SET ` + setClause +
		` WHERE handle = ` + sqlutil.Placeholder(len(values)+1) +
		` RETURNING handle, name, description, num_employees, logo_url`
	values = append(values, handle)

	var org models.Organization
	if err := r.db.QueryRowx(query, values...).StructScan(&org); err != nil {
		return nil, err
	}
	return &org, nil
}

func (r *organizationRepository) Delete(handle string) error {
	result, err := r.db.Exec(`DELETE FROM organizations WHERE handle = $1`, handle)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return sql.ErrNoRows
	}
	return nil
}
