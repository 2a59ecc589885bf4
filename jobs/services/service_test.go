package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	jobErrors "github.com/hirelink/hirelink-api/jobs/errors"
	"github.com/hirelink/hirelink-api/jobs/models"
)

func floatPtr(v float64) *float64 { return &v }

func TestListJobs_PassesFilterThrough(t *testing.T) {
	mockRepo := new(MockRepository)
	svc := NewService(mockRepo)

	filter := &models.JobListFilter{Search: "engineer", MinSalary: "50000"}
	mockRepo.On("Find", mock.Anything, filter).
		Return([]models.JobSummary{{ID: 1, Title: "Engineer", CompanyHandle: "rithm"}}, nil)

	jobs, err := svc.ListJobs(context.Background(), filter)
	require.NoError(t, err)
	require.Len(t, jobs, 1)
	assert.Equal(t, "Engineer", jobs[0].Title)
	mockRepo.AssertExpectations(t)
}

func TestGetJob_AttachesCompany(t *testing.T) {
	mockRepo := new(MockRepository)
	svc := NewService(mockRepo)

	job := &models.Job{ID: 7, Title: "Engineer", Salary: floatPtr(90000), CompanyHandle: "rithm"}
	company := &models.JobCompany{Handle: "rithm", Name: "Rithm School"}
	mockRepo.On("FindByID", mock.Anything, int64(7)).Return(job, nil)
	mockRepo.On("FindCompany", mock.Anything, "rithm").Return(company, nil)

	details, err := svc.GetJob(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, "Engineer", details.Title)
	assert.Equal(t, "Rithm School", details.Company.Name)
	mockRepo.AssertExpectations(t)
}

func TestGetJob_NotFoundSkipsCompanyLookup(t *testing.T) {
	mockRepo := new(MockRepository)
	svc := NewService(mockRepo)

	mockRepo.On("FindByID", mock.Anything, int64(99)).Return(nil, jobErrors.ErrJobNotFound)

	_, err := svc.GetJob(context.Background(), 99)
	assert.ErrorIs(t, err, jobErrors.ErrJobNotFound)
	mockRepo.AssertNotCalled(t, "FindCompany", mock.Anything, mock.Anything)
}

func TestCreateJob_MissingCompany(t *testing.T) {
	mockRepo := new(MockRepository)
	svc := NewService(mockRepo)

	req := &models.CreateJobRequest{Title: "Engineer", CompanyHandle: "ghost"}
	mockRepo.On("Create", mock.Anything, req).Return(nil, jobErrors.ErrCompanyNotFound)

	_, err := svc.CreateJob(context.Background(), req)
	assert.ErrorIs(t, err, jobErrors.ErrCompanyNotFound)
}

func TestRemoveJob_Idempotence(t *testing.T) {
	mockRepo := new(MockRepository)
	svc := NewService(mockRepo)

	mockRepo.On("Delete", mock.Anything, int64(7)).Return(true, nil).Once()
	mockRepo.On("Delete", mock.Anything, int64(7)).Return(false, nil).Once()

	require.NoError(t, svc.RemoveJob(context.Background(), 7))
	assert.ErrorIs(t, svc.RemoveJob(context.Background(), 7), jobErrors.ErrJobNotFound)
}
