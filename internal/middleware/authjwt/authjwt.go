package authjwt

import (
	"encoding/json"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/hirelink/hirelink-api/internal/types"
	"github.com/hirelink/hirelink-api/internal/utils"
)

// Config defines the config for the token middleware.
type Config struct {
	// Secret is the shared secret used to verify tokens.
	Secret string
	// UserCtxName overrides the Locals key for the verified identity.
	UserCtxName string
}

// New creates a middleware handler enforcing an authenticated caller. The
// credential is accepted from the Authorization header, the `_token` query
// parameter, or the `_token` field of a JSON body. Missing, malformed, or
// wrongly-signed tokens are rejected with 401.
func New(cfg Config) fiber.Handler {
	userKey := cfg.UserCtxName
	if userKey == "" {
		userKey = types.UserCtxName
	}
	secret := []byte(cfg.Secret)

	return func(c *fiber.Ctx) error {
		tokenString := extractToken(c)
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"code":    "UNAUTHORIZED",
				"message": "You must authenticate first",
			})
		}

		user, err := utils.ValidateToken(secret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"code":    "UNAUTHORIZED",
				"message": "You must authenticate first",
				"details": err.Error(),
			})
		}

		c.Locals(userKey, *user)
		return c.Next()
	}
}

func extractToken(c *fiber.Ctx) string {
	// 1. Authorization header (API clients)
	authHeader := c.Get(types.HeaderAuthorization)
	if strings.HasPrefix(authHeader, types.BearerPrefix) {
		parts := strings.Split(authHeader, " ")
		if len(parts) == 2 {
			return parts[1]
		}
	}

	// 2. `_token` query parameter
	if token := c.Query(types.TokenField); token != "" {
		return token
	}

	// 3. `_token` field of a JSON body
	body := c.Body()
	if len(body) > 0 {
		var payload struct {
			Token string `json:"_token"`
		}
		if err := json.Unmarshal(body, &payload); err == nil {
			return payload.Token
		}
	}

	return ""
}
