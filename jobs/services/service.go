package services

import (
	"context"
	"fmt"

	jobErrors "github.com/hirelink/hirelink-api/jobs/errors"
	"github.com/hirelink/hirelink-api/jobs/models"
	"github.com/hirelink/hirelink-api/jobs/repository"
)

// Service defines job operations.
type Service interface {
	// ListJobs returns summaries matching the optional filters.
	ListJobs(ctx context.Context, filter *models.JobListFilter) ([]models.JobSummary, error)

	// GetJob returns the full record with its owning company attached.
	GetJob(ctx context.Context, id int64) (*models.JobDetails, error)

	// CreateJob inserts a new job; a missing company fails with
	// ErrCompanyNotFound.
	CreateJob(ctx context.Context, req *models.CreateJobRequest) (*models.Job, error)

	// UpdateJob applies a partial update and returns the updated record.
	UpdateJob(ctx context.Context, id int64, req *models.UpdateJobRequest) (*models.Job, error)

	// RemoveJob deletes a job; ErrJobNotFound when absent.
	RemoveJob(ctx context.Context, id int64) error
}

type service struct {
	repo repository.Repository
}

// NewService constructs a job service.
func NewService(repo repository.Repository) Service {
	return &service{repo: repo}
}

func (s *service) ListJobs(ctx context.Context, filter *models.JobListFilter) ([]models.JobSummary, error) {
	return s.repo.Find(ctx, filter)
}

func (s *service) GetJob(ctx context.Context, id int64) (*models.JobDetails, error) {
	job, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	company, err := s.repo.FindCompany(ctx, job.CompanyHandle)
	if err != nil {
		return nil, fmt.Errorf("attach company: %w", err)
	}

	return &models.JobDetails{Job: *job, Company: *company}, nil
}

func (s *service) CreateJob(ctx context.Context, req *models.CreateJobRequest) (*models.Job, error) {
	return s.repo.Create(ctx, req)
}

func (s *service) UpdateJob(ctx context.Context, id int64, req *models.UpdateJobRequest) (*models.Job, error) {
	return s.repo.Update(ctx, id, req)
}

func (s *service) RemoveJob(ctx context.Context, id int64) error {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return jobErrors.ErrJobNotFound
	}
	return nil
}
