package users

import (
	"github.com/gofiber/fiber/v2"

	"github.com/hirelink/hirelink-api/internal/middleware/authjwt"
	"github.com/hirelink/hirelink-api/internal/middleware/selfonly"
	platformconfig "github.com/hirelink/hirelink-api/internal/platform/config"
	"github.com/hirelink/hirelink-api/users/handlers"
)

// RegisterRoutes wires user endpoints. Registration is public; reads
// require an authenticated caller; updates and deletes are restricted to
// the account owner.
func RegisterRoutes(app *fiber.App, handler *handlers.UserHandler, cfg *platformconfig.Config) {
	authed := authjwt.New(authjwt.Config{Secret: cfg.JWT.Secret})
	self := selfonly.New(selfonly.Config{})

	// Middleware goes per-route here: a group-level guard would also cover
	// the public registration endpoint.
	app.Post("/users", handler.Create)
	app.Get("/users", authed, handler.List)
	app.Get("/users/:username", authed, handler.Get)
	app.Patch("/users/:username", authed, self, handler.Update)
	app.Delete("/users/:username", authed, self, handler.Delete)
}
