package selfonly

import (
	"github.com/gofiber/fiber/v2"

	"github.com/hirelink/hirelink-api/internal/types"
)

type Config struct {
	UserCtxName string
	// ParamName is the route parameter holding the owner identity.
	ParamName string
}

// New creates a middleware requiring the verified caller to match the
// resource owner named in the route. It must run after the authentication
// middleware; a valid but mismatched identity is rejected with 403.
func New(config Config) fiber.Handler {
	userKey := config.UserCtxName
	if userKey == "" {
		userKey = types.UserCtxName
	}
	paramName := config.ParamName
	if paramName == "" {
		paramName = "username"
	}
	return func(c *fiber.Ctx) error {
		user, ok := c.Locals(userKey).(types.UserContext)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"code":    "UNAUTHORIZED",
				"message": "You must authenticate first",
			})
		}
		if user.Username != c.Params(paramName) {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"code":    "FORBIDDEN",
				"message": "Unauthorized",
			})
		}
		return c.Next()
	}
}
