package services

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/hirelink/hirelink-api/companies/models"
)

// MockRepository is a mock implementation of the company Repository interface.
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Find(ctx context.Context, filter *models.CompanyListFilter) ([]models.CompanySummary, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.CompanySummary), args.Error(1)
}

func (m *MockRepository) FindByHandle(ctx context.Context, handle string) (*models.Company, error) {
	args := m.Called(ctx, handle)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Company), args.Error(1)
}

func (m *MockRepository) FindJobs(ctx context.Context, handle string) ([]models.CompanyJob, error) {
	args := m.Called(ctx, handle)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.CompanyJob), args.Error(1)
}

func (m *MockRepository) ExistsByHandle(ctx context.Context, handle string) (bool, error) {
	args := m.Called(ctx, handle)
	return args.Bool(0), args.Error(1)
}

func (m *MockRepository) Create(ctx context.Context, req *models.CreateCompanyRequest) (*models.Company, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Company), args.Error(1)
}

func (m *MockRepository) Update(ctx context.Context, handle string, req *models.UpdateCompanyRequest) (*models.Company, error) {
	args := m.Called(ctx, handle, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Company), args.Error(1)
}

func (m *MockRepository) Delete(ctx context.Context, handle string) (bool, error) {
	args := m.Called(ctx, handle)
	return args.Bool(0), args.Error(1)
}
