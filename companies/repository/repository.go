package repository

import (
	"context"

	"github.com/hirelink/hirelink-api/companies/models"
)

// Repository defines data access for companies.
type Repository interface {
	// Find returns company summaries matching the optional filters, ordered
	// by name.
	Find(ctx context.Context, filter *models.CompanyListFilter) ([]models.CompanySummary, error)

	// FindByHandle returns the full company row or ErrCompanyNotFound.
	FindByHandle(ctx context.Context, handle string) (*models.Company, error)

	// FindJobs returns the jobs owned by a company, ordered by id.
	FindJobs(ctx context.Context, handle string) ([]models.CompanyJob, error)

	// ExistsByHandle reports whether a company with the handle exists.
	ExistsByHandle(ctx context.Context, handle string) (bool, error)

	// Create inserts a company; a unique-constraint violation surfaces as
	// ErrCompanyExists.
	Create(ctx context.Context, req *models.CreateCompanyRequest) (*models.Company, error)

	// Update applies a partial update and returns the updated row, or
	// ErrCompanyNotFound / ErrEmptyUpdate.
	Update(ctx context.Context, handle string, req *models.UpdateCompanyRequest) (*models.Company, error)

	// Delete removes a company; returns true when a row was deleted.
	Delete(ctx context.Context, handle string) (bool, error)
}
