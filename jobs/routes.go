package jobs

import (
	"github.com/gofiber/fiber/v2"

	"github.com/hirelink/hirelink-api/internal/middleware/admin"
	"github.com/hirelink/hirelink-api/internal/middleware/authjwt"
	platformconfig "github.com/hirelink/hirelink-api/internal/platform/config"
	"github.com/hirelink/hirelink-api/jobs/handlers"
)

// RegisterRoutes wires job endpoints. Reads require an authenticated
// caller; writes require an admin.
func RegisterRoutes(app *fiber.App, handler *handlers.JobHandler, cfg *platformconfig.Config) {
	authed := authjwt.New(authjwt.Config{Secret: cfg.JWT.Secret})
	adminOnly := admin.New(admin.Config{})

	group := app.Group("/jobs", authed)

	group.Get("/", handler.List)
	group.Get("/:id", handler.Get)
	group.Post("/", adminOnly, handler.Create)
	group.Patch("/:id", adminOnly, handler.Update)
	group.Delete("/:id", adminOnly, handler.Delete)
}
