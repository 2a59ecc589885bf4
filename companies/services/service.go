package services

import (
	"context"
	"fmt"

	companyErrors "github.com/hirelink/hirelink-api/companies/errors"
	"github.com/hirelink/hirelink-api/companies/models"
	"github.com/hirelink/hirelink-api/companies/repository"
	"github.com/hirelink/hirelink-api/internal/database/sqlbuilder"
)

// Service defines company operations.
type Service interface {
	// ListCompanies returns summaries matching the optional filters.
	ListCompanies(ctx context.Context, filter *models.CompanyListFilter) ([]models.CompanySummary, error)

	// GetCompany returns the full record with its jobs attached.
	GetCompany(ctx context.Context, handle string) (*models.CompanyDetails, error)

	// CreateCompany inserts a new company; a duplicate handle fails with
	// ErrCompanyExists.
	CreateCompany(ctx context.Context, req *models.CreateCompanyRequest) (*models.Company, error)

	// UpdateCompany applies a partial update and returns the updated record.
	UpdateCompany(ctx context.Context, handle string, req *models.UpdateCompanyRequest) (*models.Company, error)

	// RemoveCompany deletes a company; ErrCompanyNotFound when absent.
	RemoveCompany(ctx context.Context, handle string) error
}

type service struct {
	repo repository.Repository
}

// NewService constructs a company service.
func NewService(repo repository.Repository) Service {
	return &service{repo: repo}
}

func (s *service) ListCompanies(ctx context.Context, filter *models.CompanyListFilter) ([]models.CompanySummary, error) {
	if filter != nil {
		// Range validation fails before any store call.
		if err := sqlbuilder.ValidateRange(filter.MinEmployees, filter.MaxEmployees); err != nil {
			return nil, err
		}
	}
	return s.repo.Find(ctx, filter)
}

func (s *service) GetCompany(ctx context.Context, handle string) (*models.CompanyDetails, error) {
	company, err := s.repo.FindByHandle(ctx, handle)
	if err != nil {
		return nil, err
	}

	jobs, err := s.repo.FindJobs(ctx, handle)
	if err != nil {
		return nil, fmt.Errorf("attach jobs: %w", err)
	}

	return &models.CompanyDetails{Company: *company, Jobs: jobs}, nil
}

func (s *service) CreateCompany(ctx context.Context, req *models.CreateCompanyRequest) (*models.Company, error) {
	// Fast-path rejection; the store's unique constraint is the arbiter.
	exists, err := s.repo.ExistsByHandle(ctx, req.Handle)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, companyErrors.ErrCompanyExists
	}

	return s.repo.Create(ctx, req)
}

func (s *service) UpdateCompany(ctx context.Context, handle string, req *models.UpdateCompanyRequest) (*models.Company, error) {
	return s.repo.Update(ctx, handle, req)
}

func (s *service) RemoveCompany(ctx context.Context, handle string) error {
	deleted, err := s.repo.Delete(ctx, handle)
	if err != nil {
		return err
	}
	if !deleted {
		return companyErrors.ErrCompanyNotFound
	}
	return nil
}
