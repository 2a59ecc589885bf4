package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/hirelink/hirelink-api/internal/pkg/parser"
	"github.com/hirelink/hirelink-api/jobs/errors"
	"github.com/hirelink/hirelink-api/jobs/models"
	"github.com/hirelink/hirelink-api/jobs/services"
	"github.com/hirelink/hirelink-api/jobs/validation"
)

type JobHandler struct {
	service services.Service
}

func NewJobHandler(service services.Service) *JobHandler {
	return &JobHandler{service: service}
}

func parseJobID(c *fiber.Ctx) (int64, error) {
	return strconv.ParseInt(c.Params("id"), 10, 64)
}

// List returns job summaries matching the optional filters.
// Endpoint: GET /jobs?search=...&min_salary=...&min_equity=...
func (h *JobHandler) List(c *fiber.Ctx) error {
	var filter models.JobListFilter
	if err := parser.DecodeQuery(c, &filter); err != nil {
		return errors.HandleInvalidRequestError(c, "invalid query parameters")
	}

	jobs, err := h.service.ListJobs(c.Context(), &filter)
	if err != nil {
		return errors.HandleServiceError(c, err)
	}

	return c.JSON(fiber.Map{"jobs": jobs})
}

// Get returns a job with its owning company attached.
// Endpoint: GET /jobs/:id
func (h *JobHandler) Get(c *fiber.Ctx) error {
	id, err := parseJobID(c)
	if err != nil {
		return errors.HandleInvalidRequestError(c, "invalid job id")
	}

	job, err := h.service.GetJob(c.Context(), id)
	if err != nil {
		return errors.HandleServiceError(c, err)
	}

	return c.JSON(fiber.Map{"job": job})
}

// Create adds a job.
// Endpoint: POST /jobs
func (h *JobHandler) Create(c *fiber.Ctx) error {
	var req models.CreateJobRequest
	if err := c.BodyParser(&req); err != nil {
		return errors.HandleInvalidRequestError(c, "invalid request body")
	}

	if violations := validation.ValidateCreateJobRequest(&req); len(violations) > 0 {
		return errors.HandleValidationError(c, violations...)
	}

	job, err := h.service.CreateJob(c.Context(), &req)
	if err != nil {
		return errors.HandleServiceError(c, err)
	}

	return c.Status(http.StatusCreated).JSON(fiber.Map{"job": job})
}

// Update applies a partial update.
// Endpoint: PATCH /jobs/:id
func (h *JobHandler) Update(c *fiber.Ctx) error {
	id, err := parseJobID(c)
	if err != nil {
		return errors.HandleInvalidRequestError(c, "invalid job id")
	}

	// The id is an immutable identity key; its presence in the payload is
	// rejected before anything reaches the store.
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(c.Body(), &raw); err != nil {
		return errors.HandleInvalidRequestError(c, "invalid request body")
	}
	if _, ok := raw["id"]; ok {
		return errors.HandleInvalidRequestError(c, "You are not allowed to change the ID")
	}

	var req models.UpdateJobRequest
	if err := c.BodyParser(&req); err != nil {
		return errors.HandleInvalidRequestError(c, "invalid request body")
	}

	if violations := validation.ValidateUpdateJobRequest(&req); len(violations) > 0 {
		return errors.HandleValidationError(c, violations...)
	}

	job, err := h.service.UpdateJob(c.Context(), id, &req)
	if err != nil {
		return errors.HandleServiceError(c, err)
	}

	return c.JSON(fiber.Map{"job": job})
}

// Delete removes a job.
// Endpoint: DELETE /jobs/:id
func (h *JobHandler) Delete(c *fiber.Ctx) error {
	id, err := parseJobID(c)
	if err != nil {
		return errors.HandleInvalidRequestError(c, "invalid job id")
	}

	if err := h.service.RemoveJob(c.Context(), id); err != nil {
		return errors.HandleServiceError(c, err)
	}

	return c.JSON(fiber.Map{"message": "Job deleted"})
}
