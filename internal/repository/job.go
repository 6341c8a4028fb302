package repository

import (
	"database/sql"

	"jobboard/internal/models"
	"jobboard/internal/sqlutil"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

// Job postings carry no camelCase-to-snake_case renames; logical names are the
// column names, so the map stays empty and the builder's fallback applies.
var jobColumns = map[string]string{}

type JobRepository interface {
	Create(job *models.Job) error
	GetAll() ([]models.Job, error)
	GetByID(id int64) (*models.Job, error)
	GetByOrgHandle(handle string) ([]models.Job, error)
	Update(id int64, fields []sqlutil.Field) (*models.Job, error)
	Delete(id int64) error
}

type jobRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewJobRepository(db *sqlx.DB, logger *zap.Logger) JobRepository {
	return &jobRepository{db: db, logger: logger}
}

func (r *jobRepository) Create(job *models.Job) error {
	query := `INSERT INTO jobs (title, salary, equity, org_handle)
	          VALUES ($1, $2, $3, $4)
	          RETURNING id, title, salary, equity, org_handle`
	return r.db.QueryRowx(query, job.Title, job.Salary, job.Equity, job.OrgHandle).StructScan(job)
}

func (r *jobRepository) GetAll() ([]models.Job, error) {
	var jobs []models.Job
	query := `SELECT id, title, salary, equity, org_handle FROM jobs ORDER BY id`
	err := r.db.Select(&jobs, query)
	if err != nil {
		return nil, err
	}
	return jobs, nil
}

func (r *jobRepository) GetByID(id int64) (*models.Job, error) {
	var job models.Job
	query := `SELECT id, title, salary, equity, org_handle FROM jobs WHERE id = $1`
	err := r.db.Get(&job, query, id)
	if err != nil {
		return nil, err
	}
	return &job, nil
}

func (r *jobRepository) GetByOrgHandle(handle string) ([]models.Job, error) {
	var jobs []models.Job
	query := `SELECT id, title, salary, equity, org_handle FROM jobs WHERE org_handle = $1 ORDER BY id`
	err := r.db.Select(&jobs, query, handle)
	if err != nil {
		return nil, err
	}
	return jobs, nil
}

func (r *jobRepository) Update(id int64, fields []sqlutil.Field) (*models.Job, error) {
	setClause, values, err := sqlutil.BuildPartialUpdate(fields, jobColumns)
	if err != nil {
		return nil, err
	}

	query := `UPDATE jobs SET ` + setClause +
		` WHERE id = ` + sqlutil.Placeholder(len(values)+1) +
		` RETURNING id, title, salary, equity, org_handle`
	values = append(values, id)

	var job models.Job
	if err := r.db.QueryRowx(query, values...).StructScan(&job); err != nil {
		return nil, err
	}
	return &job, nil
}

func (r *jobRepository) Delete(id int64) error {
	result, err := r.db.Exec(`DELETE FROM jobs WHERE id = $1`, id)
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
