package auth

import (
	"github.com/gofiber/fiber/v2"

	"github.com/hirelink/hirelink-api/auth/handlers"
)

// RegisterRoutes wires the public login endpoint.
func RegisterRoutes(app *fiber.App, handler *handlers.AuthHandler) {
	app.Post("/login", handler.Login)
}
