package companies

import (
	"github.com/gofiber/fiber/v2"

	"github.com/hirelink/hirelink-api/companies/handlers"
	"github.com/hirelink/hirelink-api/internal/middleware/admin"
	"github.com/hirelink/hirelink-api/internal/middleware/authjwt"
	platformconfig "github.com/hirelink/hirelink-api/internal/platform/config"
)

// RegisterRoutes wires company endpoints. Reads require an authenticated
// caller; writes require an admin.
func RegisterRoutes(app *fiber.App, handler *handlers.CompanyHandler, cfg *platformconfig.Config) {
	authed := authjwt.New(authjwt.Config{Secret: cfg.JWT.Secret})
	adminOnly := admin.New(admin.Config{})

	group := app.Group("/companies", authed)

	group.Get("/", handler.List)
	group.Get("/:handle", handler.Get)
	group.Post("/", adminOnly, handler.Create)
	group.Patch("/:handle", adminOnly, handler.Update)
	group.Delete("/:handle", adminOnly, handler.Delete)
}
