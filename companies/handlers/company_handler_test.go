package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/hirelink/hirelink-api/companies/models"
	"github.com/hirelink/hirelink-api/companies/services"
)

func newTestApp() (*fiber.App, *services.MockRepository) {
	mockRepo := new(services.MockRepository)
	handler := NewCompanyHandler(services.NewService(mockRepo))

	app := fiber.New()
	app.Get("/companies", handler.List)
	app.Get("/companies/:handle", handler.Get)
	app.Post("/companies", handler.Create)
	app.Patch("/companies/:handle", handler.Update)
	app.Delete("/companies/:handle", handler.Delete)
	return app, mockRepo
}

func decodeBody(t *testing.T, resp *http.Response) map[string]interface{} {
	t.Helper()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &body))
	return body
}

func TestCompanyList_Envelope(t *testing.T) {
	app, mockRepo := newTestApp()
	mockRepo.On("Find", mock.Anything, mock.Anything).
		Return([]models.CompanySummary{{Handle: "rithm", Name: "Rithm School"}}, nil)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/companies", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Contains(t, body, "companies")
}

func TestCompanyList_InvalidRange(t *testing.T) {
	app, mockRepo := newTestApp()

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/companies?min_employees=500&max_employees=10", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	mockRepo.AssertNotCalled(t, "Find", mock.Anything, mock.Anything)
}

func TestCompanyCreate_Returns201(t *testing.T) {
	app, mockRepo := newTestApp()
	created := &models.Company{Handle: "rithm", Name: "Rithm School"}
	mockRepo.On("ExistsByHandle", mock.Anything, "rithm").Return(false, nil)
	mockRepo.On("Create", mock.Anything, mock.Anything).Return(created, nil)

	req := httptest.NewRequest(http.MethodPost, "/companies",
		strings.NewReader(`{"handle":"rithm","name":"Rithm School"}`))
	req.Header.Set("Content-Type", fiber.MIMEApplicationJSON)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Contains(t, body, "company")
}

func TestCompanyCreate_ValidationFailure(t *testing.T) {
	app, mockRepo := newTestApp()

	req := httptest.NewRequest(http.MethodPost, "/companies", strings.NewReader(`{"name":"No Handle"}`))
	req.Header.Set("Content-Type", fiber.MIMEApplicationJSON)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCompanyUpdate_RejectsHandleChange(t *testing.T) {
	app, mockRepo := newTestApp()

	// Regardless of other fields, a handle in the payload is rejected
	// before any store call.
	req := httptest.NewRequest(http.MethodPatch, "/companies/rithm",
		strings.NewReader(`{"handle":"newhandle","name":"New Name"}`))
	req.Header.Set("Content-Type", fiber.MIMEApplicationJSON)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, "You are not allowed to change the handle.", body["message"])
	mockRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
}

func TestCompanyDelete_NotFound(t *testing.T) {
	app, mockRepo := newTestApp()
	mockRepo.On("Delete", mock.Anything, "ghost").Return(false, nil)

	resp, err := app.Test(httptest.NewRequest(http.MethodDelete, "/companies/ghost", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestCompanyDelete_Message(t *testing.T) {
	app, mockRepo := newTestApp()
	mockRepo.On("Delete", mock.Anything, "rithm").Return(true, nil)

	resp, err := app.Test(httptest.NewRequest(http.MethodDelete, "/companies/rithm", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, "Company deleted", body["message"])
}
