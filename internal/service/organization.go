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

// OrganizationUpdate holds the updatable subset of organization fields. Nil
// means "leave untouched"; field declaration order fixes parameter order.
type OrganizationUpdate struct {
	Name         *string
	Description  *string
	NumEmployees *int
	LogoURL      *string
}

func (u OrganizationUpdate) fields() []sqlutil.Field {
	var fields []sqlutil.Field
	if u.Name != nil {
		fields = append(fields, sqlutil.Field{Name: "name", Value: *u.Name})
	}
	if u.Description != nil {
		fields = append(fields, sqlutil.Field{Name: "description", Value: *u.Description})
	}
	if u.NumEmployees != nil {
		fields = append(fields, sqlutil.Field{Name: "numEmployees", Value: *u.NumEmployees})
	}
	if u.LogoURL != nil {
		fields = append(fields, sqlutil.Field{Name: "logoUrl", Value: *u.LogoURL})
	}
	return fields
}

type OrganizationService interface {
	Create(org *models.Organization) (*models.Organization, error)
	List(filter models.OrganizationFilter) ([]models.Organization, error)
	Get(handle string) (*models.Organization, error)
	Update(handle string, update OrganizationUpdate) (*models.Organization, error)
	Delete(handle string) error
}

type organizationService struct {
	orgs   repository.OrganizationRepository
	jobs   repository.JobRepository
	logger *zap.Logger
}

func NewOrganizationService(orgs repository.OrganizationRepository, jobs repository.JobRepository, logger *zap.Logger) OrganizationService {
	return &organizationService{orgs: orgs, jobs: jobs, logger: logger}
}

func (s *organizationService) Create(org *models.Organization) (*models.Organization, error) {
	existing, err := s.orgs.GetByHandle(org.Handle)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		s.logger.Error("Failed to check for existing organization", zap.Error(err))
		return nil, fmt.Errorf("failed to check existing organization: %w", err)
	}
	if existing != nil {
		return nil, apperr.BadRequest(fmt.Sprintf("Duplicate organization: %s", org.Handle))
	}

	if err := s.orgs.Create(org); err != nil {
		s.logger.Error("Failed to create organization", zap.Error(err))
		return nil, fmt.Errorf("failed to create organization: %w", err)
	}
	return org, nil
}

func (s *organizationService) List(filter models.OrganizationFilter) ([]models.Organization, error) {
	orgs, err := s.orgs.GetAll()
	if err != nil {
		s.logger.Error("Failed to list organizations", zap.Error(err))
		return nil, fmt.Errorf("failed to list organizations: %w", err)
	}
	return FilterOrganizations(orgs, filter)
}

func (s *organizationService) Get(handle string) (*models.Organization, error) {
	org, err := s.orgs.GetByHandle(handle)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.NotFound(fmt.Sprintf("No organization: %s", handle))
		}
		s.logger.Error("Failed to get organization", zap.Error(err))
		return nil, fmt.Errorf("failed to get organization: %w", err)
	}

	jobs, err := s.jobs.GetByOrgHandle(handle)
	if err != nil {
		s.logger.Error("Failed to load organization jobs", zap.Error(err))
		return nil, fmt.Errorf("failed to load organization jobs: %w", err)
	}
	org.Jobs = jobs
	return org, nil
}

func (s *organizationService) Update(handle string, update OrganizationUpdate) (*models.Organization, error) {
	org, err := s.orgs.Update(handle, update.fields())
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.NotFound(fmt.Sprintf("No organization: %s", handle))
		}
		var appErr *apperr.Error
		if errors.As(err, &appErr) {
			return nil, err
		}
		s.logger.Error("Failed to update organization", zap.Error(err))
		return nil, fmt.Errorf("failed to update organization: %w", err)
	}
	return org, nil
}

func (s *organizationService) Delete(handle string) error {
	if err := s.orgs.Delete(handle); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return apperr.NotFound(fmt.Sprintf("No organization: %s", handle))
		}
		s.logger.Error("Failed to delete organization", zap.Error(err))
		return fmt.Errorf("failed to delete organization: %w", err)
	}
	return nil
}

// FilterOrganizations narrows orgs by the supplied options, AND-composed.
// Substring matching is case-insensitive and bounds are inclusive; records
// with no employee count cannot satisfy a bound. An empty final result is a
// NotFound error by API policy, not an empty 200.
func FilterOrganizations(orgs []models.Organization, filter models.OrganizationFilter) ([]models.Organization, error) {
	filtered := make([]models.Organization, 0, len(orgs))
	for _, org := range orgs {
		if filter.Name != nil && !strings.Contains(strings.ToLower(org.Name), strings.ToLower(*filter.Name)) {
			continue
		}
		if filter.MinEmployees != nil && (org.NumEmployees == nil || *org.NumEmployees < *filter.MinEmployees) {
			continue
		}
		if filter.MaxEmployees != nil && (org.NumEmployees == nil || *org.NumEmployees > *filter.MaxEmployees) {
			continue
		}
		filtered = append(filtered, org)
	}

	if len(filtered) == 0 {
		return nil, apperr.NotFound("No organizations match the given filters")
	}
	return filtered, nil
}
