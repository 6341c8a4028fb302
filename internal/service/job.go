package service

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"jobboard/internal/apperr"
	"jobboard/internal/models"
	"jobboard/internal/repository"
	"jobboard/internal/sqlutil"

	"go.uber.org/zap"
)

// JobUpdate holds the updatable subset of job posting fields. The organization
// a posting belongs to is fixed at creation.
type JobUpdate struct {
	Title  *string
	Salary *int
	Equity *float64
}

func (u JobUpdate) fields() []sqlutil.Field {
	var fields []sqlutil.Field
	if u.Title != nil {
		fields = append(fields, sqlutil.Field{Name: "title", Value: *u.Title})
	}
	if u.Salary != nil {
		fields = append(fields, sqlutil.Field{Name: "salary", Value: *u.Salary})
	}
	if u.Equity != nil {
		fields = append(fields, sqlutil.Field{Name: "equity", Value: *u.Equity})
	}
	return fields
}

type JobService interface {
	Create(job *models.Job) (*models.Job, error)
	List(filter models.JobFilter) ([]models.Job, error)
	Get(id int64) (*models.Job, error)
	Update(id int64, update JobUpdate) (*models.Job, error)
	Delete(id int64) error
}

type jobService struct {
	jobs   repository.JobRepository
	orgs   repository.OrganizationRepository
	logger *zap.Logger
}

func NewJobService(jobs repository.JobRepository, orgs repository.OrganizationRepository, logger *zap.Logger) JobService {
	return &jobService{jobs: jobs, orgs: orgs, logger: logger}
}

func (s *jobService) Create(job *models.Job) (*models.Job, error) {
	if _, err := s.orgs.GetByHandle(job.OrgHandle); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.NotFound(fmt.Sprintf("No organization: %s", job.OrgHandle))
		}
		s.logger.Error("Failed to check job organization", zap.Error(err))
		return nil, fmt.Errorf("failed to check job organization: %w", err)
	}

	if err := s.jobs.Create(job); err != nil {
		s.logger.Error("Failed to create job", zap.Error(err))
		return nil, fmt.Errorf("failed to create job: %w", err)
	}
	return job, nil
}

func (s *jobService) List(filter models.JobFilter) ([]models.Job, error) {
	jobs, err := s.jobs.GetAll()
	if err != nil {
		s.logger.Error("Failed to list jobs", zap.Error(err))
		return nil, fmt.Errorf("failed to list jobs: %w", err)
	}
	return FilterJobs(jobs, filter)
}

func (s *jobService) Get(id int64) (*models.Job, error) {
	job, err := s.jobs.GetByID(id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.NotFound(fmt.Sprintf("No job: %d", id))
		}
		s.logger.Error("Failed to get job", zap.Error(err))
		return nil, fmt.Errorf("failed to get job: %w", err)
	}
	return job, nil
}

func (s *jobService) Update(id int64, update JobUpdate) (*models.Job, error) {
	job, err := s.jobs.Update(id, update.fields())
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.NotFound(fmt.Sprintf("No job: %d", id))
		}
		var appErr *apperr.Error
		if errors.As(err, &appErr) {
			return nil, err
		}
		s.logger.Error("Failed to update job", zap.Error(err))
		return nil, fmt.Errorf("failed to update job: %w", err)
	}
	return job, nil
}

func (s *jobService) Delete(id int64) error {
	if err := s.jobs.Delete(id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return apperr.NotFound(fmt.Sprintf("No job: %d", id))
		}
		s.logger.Error("Failed to delete job", zap.Error(err))
		return fmt.Errorf("failed to delete job: %w", err)
	}
	return nil
}

// FilterJobs narrows jobs by the supplied options, AND-composed. hasEquity is
// deliberately asymmetric: true keeps only postings with equity above zero,
// while false filters nothing, same as leaving it out.
func FilterJobs(jobs []models.Job, filter models.JobFilter) ([]models.Job, error) {
	filtered := make([]models.Job, 0, len(jobs))
	for _, job := range jobs {
		if filter.Title != nil && !strings.Contains(strings.ToLower(job.Title), strings.ToLower(*filter.Title)) {
			continue
		}
		if filter.MinSalary != nil && (job.Salary == nil || *job.Salary < *filter.MinSalary) {
			continue
		}
		if filter.HasEquity != nil && *filter.HasEquity && (job.Equity == nil || *job.Equity <= 0) {
			continue
		}
		filtered = append(filtered, job)
	}

	if len(filtered) == 0 {
		return nil, apperr.NotFound("No jobs match the given filters")
	}
	return filtered, nil
}
