package services

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/hirelink/hirelink-api/jobs/models"
)

// MockRepository is a testify mock of the job repository.
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Find(ctx context.Context, filter *models.JobListFilter) ([]models.JobSummary, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.JobSummary), args.Error(1)
}

func (m *MockRepository) FindByID(ctx context.Context, id int64) (*models.Job, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Job), args.Error(1)
}

func (m *MockRepository) FindCompany(ctx context.Context, handle string) (*models.JobCompany, error) {
	args := m.Called(ctx, handle)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.JobCompany), args.Error(1)
}

func (m *MockRepository) Create(ctx context.Context, req *models.CreateJobRequest) (*models.Job, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Job), args.Error(1)
}

func (m *MockRepository) Update(ctx context.Context, id int64, req *models.UpdateJobRequest) (*models.Job, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Job), args.Error(1)
}

func (m *MockRepository) Delete(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}
