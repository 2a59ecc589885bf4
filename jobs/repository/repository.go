package repository

import (
	"context"

	"github.com/hirelink/hirelink-api/jobs/models"
)

// Repository defines job persistence operations.
type Repository interface {
	// Find returns job summaries matching the optional filters.
	Find(ctx context.Context, filter *models.JobListFilter) ([]models.JobSummary, error)

	// FindByID returns the full job record.
	FindByID(ctx context.Context, id int64) (*models.Job, error)

	// FindCompany returns the owning company of a job.
	FindCompany(ctx context.Context, handle string) (*models.JobCompany, error)

	// Create inserts a new job and returns the stored record.
	Create(ctx context.Context, req *models.CreateJobRequest) (*models.Job, error)

	// Update applies a partial update and returns the updated record.
	Update(ctx context.Context, id int64, req *models.UpdateJobRequest) (*models.Job, error)

	// Delete removes a job, reporting whether a row was removed.
	Delete(ctx context.Context, id int64) (bool, error)
}
