package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/hirelink/hirelink-api/users/errors"
	"github.com/hirelink/hirelink-api/users/models"
	"github.com/hirelink/hirelink-api/users/services"
	"github.com/hirelink/hirelink-api/users/validation"
)

type UserHandler struct {
	service services.Service
}

func NewUserHandler(service services.Service) *UserHandler {
	return &UserHandler{service: service}
}

// List returns summaries of all users.
// Endpoint: GET /users
func (h *UserHandler) List(c *fiber.Ctx) error {
	users, err := h.service.ListUsers(c.Context())
	if err != nil {
		return errors.HandleServiceError(c, err)
	}

	return c.JSON(fiber.Map{"users": users})
}

// Get returns a user with their job applications attached.
// Endpoint: GET /users/:username
func (h *UserHandler) Get(c *fiber.Ctx) error {
	user, err := h.service.GetUser(c.Context(), c.Params("username"))
	if err != nil {
		return errors.HandleServiceError(c, err)
	}

	return c.JSON(fiber.Map{"user": user})
}

// Create registers a user and returns the record with a fresh access token.
// Endpoint: POST /users
func (h *UserHandler) Create(c *fiber.Ctx) error {
	var req models.CreateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return errors.HandleInvalidRequestError(c, "invalid request body")
	}

	if violations := validation.ValidateCreateUserRequest(&req); len(violations) > 0 {
		return errors.HandleValidationError(c, violations...)
	}

	user, token, err := h.service.CreateUser(c.Context(), &req)
	if err != nil {
		return errors.HandleServiceError(c, err)
	}

	return c.Status(http.StatusCreated).JSON(fiber.Map{"user": user, "token": token})
}

// Update applies a partial update.
// Endpoint: PATCH /users/:username
func (h *UserHandler) Update(c *fiber.Ctx) error {
	// Identity and privilege fields are immutable through this surface;
	// their presence in the payload is rejected before anything reaches the
	// store.
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(c.Body(), &raw); err != nil {
		return errors.HandleInvalidRequestError(c, "invalid request body")
	}
	_, hasUsername := raw["username"]
	_, hasIsAdmin := raw["is_admin"]
	if hasUsername || hasIsAdmin {
		return errors.HandleInvalidRequestError(c, "You are not allowed to change username or is_admin properties.")
	}

	var req models.UpdateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return errors.HandleInvalidRequestError(c, "invalid request body")
	}

	if violations := validation.ValidateUpdateUserRequest(&req); len(violations) > 0 {
		return errors.HandleValidationError(c, violations...)
	}

	user, err := h.service.UpdateUser(c.Context(), c.Params("username"), &req)
	if err != nil {
		return errors.HandleServiceError(c, err)
	}

	return c.JSON(fiber.Map{"user": user})
}

// Delete removes a user.
// Endpoint: DELETE /users/:username
func (h *UserHandler) Delete(c *fiber.Ctx) error {
	if err := h.service.RemoveUser(c.Context(), c.Params("username")); err != nil {
		return errors.HandleServiceError(c, err)
	}

	return c.JSON(fiber.Map{"message": "User deleted"})
}
