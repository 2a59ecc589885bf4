package admin

import (
	"github.com/gofiber/fiber/v2"

	"github.com/hirelink/hirelink-api/internal/types"
)

type Config struct {
	UserCtxName string
}

// New creates a middleware requiring an admin caller. It must run after the
// authentication middleware; a valid but non-admin identity is rejected
// with 403.
func New(config Config) fiber.Handler {
	userKey := config.UserCtxName
	if userKey == "" {
		userKey = types.UserCtxName
	}
	return func(c *fiber.Ctx) error {
		user, ok := c.Locals(userKey).(types.UserContext)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"code":    "UNAUTHORIZED",
				"message": "You must authenticate first",
			})
		}
		if !user.IsAdmin {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"code":    "FORBIDDEN",
				"message": "You must be an admin to access",
			})
		}
		return c.Next()
	}
}
