package handlers

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/hirelink/hirelink-api/auth/models"
	"github.com/hirelink/hirelink-api/auth/services"
)

type AuthHandler struct {
	service services.Service
}

func NewAuthHandler(service services.Service) *AuthHandler {
	return &AuthHandler{service: service}
}

// Login exchanges credentials for an access token.
// Endpoint: POST /login
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req models.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"code":    "INVALID_REQUEST",
			"message": "invalid request body",
		})
	}

	token, err := h.service.Login(c.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			return c.Status(http.StatusUnauthorized).JSON(fiber.Map{
				"code":    "INVALID_CREDENTIALS",
				"message": services.ErrInvalidCredentials.Error(),
			})
		}
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{
			"code":    "INTERNAL_ERROR",
			"message": "An unexpected error occurred",
		})
	}

	return c.JSON(fiber.Map{"token": token})
}
