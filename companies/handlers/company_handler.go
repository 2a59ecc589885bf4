package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/hirelink/hirelink-api/companies/errors"
	"github.com/hirelink/hirelink-api/companies/models"
	"github.com/hirelink/hirelink-api/companies/services"
	"github.com/hirelink/hirelink-api/companies/validation"
	"github.com/hirelink/hirelink-api/internal/pkg/parser"
)

type CompanyHandler struct {
	service services.Service
}

func NewCompanyHandler(service services.Service) *CompanyHandler {
	return &CompanyHandler{service: service}
}

// List returns company summaries matching the optional filters.
// Endpoint: GET /companies?search=...&min_employees=...&max_employees=...
func (h *CompanyHandler) List(c *fiber.Ctx) error {
	var filter models.CompanyListFilter
	if err := parser.DecodeQuery(c, &filter); err != nil {
		return errors.HandleInvalidRequestError(c, "invalid query parameters")
	}

	companies, err := h.service.ListCompanies(c.Context(), &filter)
	if err != nil {
		return errors.HandleServiceError(c, err)
	}

	return c.JSON(fiber.Map{"companies": companies})
}

// Get returns a company with its jobs attached.
// Endpoint: GET /companies/:handle
func (h *CompanyHandler) Get(c *fiber.Ctx) error {
	company, err := h.service.GetCompany(c.Context(), c.Params("handle"))
	if err != nil {
		return errors.HandleServiceError(c, err)
	}

	return c.JSON(fiber.Map{"company": company})
}

// Create adds a company.
// Endpoint: POST /companies
func (h *CompanyHandler) Create(c *fiber.Ctx) error {
	var req models.CreateCompanyRequest
	if err := c.BodyParser(&req); err != nil {
		return errors.HandleInvalidRequestError(c, "invalid request body")
	}

	if violations := validation.ValidateCreateCompanyRequest(&req); len(violations) > 0 {
		return errors.HandleValidationError(c, violations...)
	}

	company, err := h.service.CreateCompany(c.Context(), &req)
	if err != nil {
		return errors.HandleServiceError(c, err)
	}

	return c.Status(http.StatusCreated).JSON(fiber.Map{"company": company})
}

// Update applies a partial update.
// Endpoint: PATCH /companies/:handle
func (h *CompanyHandler) Update(c *fiber.Ctx) error {
	// The handle is an immutable identity key; its presence in the payload
	// is rejected before anything reaches the store.
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(c.Body(), &raw); err != nil {
		return errors.HandleInvalidRequestError(c, "invalid request body")
	}
	if _, ok := raw["handle"]; ok {
		return errors.HandleInvalidRequestError(c, "You are not allowed to change the handle.")
	}

	var req models.UpdateCompanyRequest
	if err := c.BodyParser(&req); err != nil {
		return errors.HandleInvalidRequestError(c, "invalid request body")
	}

	if violations := validation.ValidateUpdateCompanyRequest(&req); len(violations) > 0 {
		return errors.HandleValidationError(c, violations...)
	}

	company, err := h.service.UpdateCompany(c.Context(), c.Params("handle"), &req)
	if err != nil {
		return errors.HandleServiceError(c, err)
	}

	return c.JSON(fiber.Map{"company": company})
}

// Delete removes a company.
// Endpoint: DELETE /companies/:handle
func (h *CompanyHandler) Delete(c *fiber.Ctx) error {
	if err := h.service.RemoveCompany(c.Context(), c.Params("handle")); err != nil {
		return errors.HandleServiceError(c, err)
	}

	return c.JSON(fiber.Map{"message": "Company deleted"})
}
