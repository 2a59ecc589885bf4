package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	companyErrors "github.com/hirelink/hirelink-api/companies/errors"
	"github.com/hirelink/hirelink-api/companies/models"
	"github.com/hirelink/hirelink-api/internal/database/sqlbuilder"
)

func intPtr(n int) *int          { return &n }
func strPtr(s string) *string    { return &s }

func TestListCompanies_InvalidRangeBeforeStore(t *testing.T) {
	mockRepo := new(MockRepository)
	svc := NewService(mockRepo)

	_, err := svc.ListCompanies(context.Background(), &models.CompanyListFilter{
		MinEmployees: "500",
		MaxEmployees: "10",
	})

	assert.ErrorIs(t, err, sqlbuilder.ErrInvalidRange)
	mockRepo.AssertNotCalled(t, "Find", mock.Anything, mock.Anything)
}

func TestListCompanies_PassesFilterThrough(t *testing.T) {
	mockRepo := new(MockRepository)
	svc := NewService(mockRepo)

	filter := &models.CompanyListFilter{Search: "rithm", MinEmployees: "10", MaxEmployees: "500"}
	summaries := []models.CompanySummary{{Handle: "rithm", Name: "Rithm School"}}
	mockRepo.On("Find", mock.Anything, filter).Return(summaries, nil)

	got, err := svc.ListCompanies(context.Background(), filter)
	require.NoError(t, err)
	assert.Equal(t, summaries, got)
	mockRepo.AssertExpectations(t)
}

func TestGetCompany_AttachesJobs(t *testing.T) {
	mockRepo := new(MockRepository)
	svc := NewService(mockRepo)

	company := &models.Company{Handle: "rithm", Name: "Rithm School", NumEmployees: intPtr(50)}
	jobs := []models.CompanyJob{{ID: 1, Title: "Instructor"}}
	mockRepo.On("FindByHandle", mock.Anything, "rithm").Return(company, nil)
	mockRepo.On("FindJobs", mock.Anything, "rithm").Return(jobs, nil)

	got, err := svc.GetCompany(context.Background(), "rithm")
	require.NoError(t, err)
	assert.Equal(t, "rithm", got.Handle)
	assert.Equal(t, jobs, got.Jobs)
}

func TestGetCompany_NotFound(t *testing.T) {
	mockRepo := new(MockRepository)
	svc := NewService(mockRepo)

	mockRepo.On("FindByHandle", mock.Anything, "nope").Return(nil, companyErrors.ErrCompanyNotFound)

	_, err := svc.GetCompany(context.Background(), "nope")
	assert.ErrorIs(t, err, companyErrors.ErrCompanyNotFound)
	mockRepo.AssertNotCalled(t, "FindJobs", mock.Anything, mock.Anything)
}

func TestCreateCompany_ConflictOnProbe(t *testing.T) {
	mockRepo := new(MockRepository)
	svc := NewService(mockRepo)

	req := &models.CreateCompanyRequest{Handle: "rithm", Name: "Rithm School"}
	mockRepo.On("ExistsByHandle", mock.Anything, "rithm").Return(true, nil)

	_, err := svc.CreateCompany(context.Background(), req)
	assert.ErrorIs(t, err, companyErrors.ErrCompanyExists)
	mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateCompany_ConflictFromConstraint(t *testing.T) {
	// The probe can race; the unique constraint remains the arbiter.
	mockRepo := new(MockRepository)
	svc := NewService(mockRepo)

	req := &models.CreateCompanyRequest{Handle: "rithm", Name: "Rithm School"}
	mockRepo.On("ExistsByHandle", mock.Anything, "rithm").Return(false, nil)
	mockRepo.On("Create", mock.Anything, req).Return(nil, companyErrors.ErrCompanyExists)

	_, err := svc.CreateCompany(context.Background(), req)
	assert.ErrorIs(t, err, companyErrors.ErrCompanyExists)
}

func TestCreateCompany_Success(t *testing.T) {
	mockRepo := new(MockRepository)
	svc := NewService(mockRepo)

	req := &models.CreateCompanyRequest{
		Handle:       "rithm",
		Name:         "Rithm School",
		NumEmployees: intPtr(50),
		Description:  strPtr("coding school"),
	}
	created := &models.Company{Handle: "rithm", Name: "Rithm School", NumEmployees: intPtr(50)}
	mockRepo.On("ExistsByHandle", mock.Anything, "rithm").Return(false, nil)
	mockRepo.On("Create", mock.Anything, req).Return(created, nil)

	got, err := svc.CreateCompany(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, created, got)
}

func TestUpdateCompany_EmptyUpdatePropagates(t *testing.T) {
	mockRepo := new(MockRepository)
	svc := NewService(mockRepo)

	req := &models.UpdateCompanyRequest{}
	mockRepo.On("Update", mock.Anything, "rithm", req).Return(nil, sqlbuilder.ErrEmptyUpdate)

	_, err := svc.UpdateCompany(context.Background(), "rithm", req)
	assert.ErrorIs(t, err, sqlbuilder.ErrEmptyUpdate)
}

func TestRemoveCompany_Idempotence(t *testing.T) {
	mockRepo := new(MockRepository)
	svc := NewService(mockRepo)

	mockRepo.On("Delete", mock.Anything, "rithm").Return(true, nil).Once()
	mockRepo.On("Delete", mock.Anything, "rithm").Return(false, nil).Once()

	require.NoError(t, svc.RemoveCompany(context.Background(), "rithm"))
	err := svc.RemoveCompany(context.Background(), "rithm")
	assert.ErrorIs(t, err, companyErrors.ErrCompanyNotFound)
}
