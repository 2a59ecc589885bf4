package main

import (
	"context"
	"fmt"
	stdlog "log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"

	"github.com/hirelink/hirelink-api/auth"
	authHandlers "github.com/hirelink/hirelink-api/auth/handlers"
	authServices "github.com/hirelink/hirelink-api/auth/services"
	"github.com/hirelink/hirelink-api/companies"
	companyHandlers "github.com/hirelink/hirelink-api/companies/handlers"
	companyRepository "github.com/hirelink/hirelink-api/companies/repository"
	companyServices "github.com/hirelink/hirelink-api/companies/services"
	"github.com/hirelink/hirelink-api/internal/database/postgres"
	"github.com/hirelink/hirelink-api/internal/middleware/requestid"
	"github.com/hirelink/hirelink-api/internal/pkg/log"
	platformconfig "github.com/hirelink/hirelink-api/internal/platform/config"
	"github.com/hirelink/hirelink-api/jobs"
	jobHandlers "github.com/hirelink/hirelink-api/jobs/handlers"
	jobRepository "github.com/hirelink/hirelink-api/jobs/repository"
	jobServices "github.com/hirelink/hirelink-api/jobs/services"
	"github.com/hirelink/hirelink-api/users"
	userHandlers "github.com/hirelink/hirelink-api/users/handlers"
	userRepository "github.com/hirelink/hirelink-api/users/repository"
	userServices "github.com/hirelink/hirelink-api/users/services"
)

func main() {
	cfg, err := platformconfig.LoadFromEnv()
	if err != nil {
		stdlog.Fatalf("Failed to load platform config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		stdlog.Fatalf("Invalid config: %v", err)
	}

	app := fiber.New(fiber.Config{
		AppName: cfg.App.Name,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}

			// A handler may have written its own error envelope already.
			if len(c.Response().Body()) > 0 {
				return nil
			}

			return c.Status(code).JSON(fiber.Map{
				"error": err.Error(),
			})
		},
	})

	app.Use(requestid.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.Server.WebDomain,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST, PATCH, DELETE, OPTIONS",
	}))

	ctx := context.Background()
	pgClient, err := postgres.NewClient(ctx, &cfg.Database.Postgres)
	if err != nil {
		stdlog.Fatalf("Failed to create postgres client: %v", err)
	}
	defer pgClient.Close()

	tokenSecret := []byte(cfg.JWT.Secret)
	tokenTTL := cfg.JWT.ExpiresIn

	companyRepo := companyRepository.NewPostgresRepository(pgClient)
	jobRepo := jobRepository.NewPostgresRepository(pgClient)
	userRepo := userRepository.NewPostgresRepository(pgClient)

	companyService := companyServices.NewService(companyRepo)
	jobService := jobServices.NewService(jobRepo)
	userService := userServices.NewService(userRepo, tokenSecret, tokenTTL)
	authService := authServices.NewService(userRepo, tokenSecret, tokenTTL)

	auth.RegisterRoutes(app, authHandlers.NewAuthHandler(authService))
	companies.RegisterRoutes(app, companyHandlers.NewCompanyHandler(companyService), cfg)
	jobs.RegisterRoutes(app, jobHandlers.NewJobHandler(jobService), cfg)
	users.RegisterRoutes(app, userHandlers.NewUserHandler(userService), cfg)

	app.Get("/healthz", func(c *fiber.Ctx) error {
		if err := pgClient.HealthCheck(c.Context()); err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"status": "unhealthy"})
		}
		return c.JSON(fiber.Map{"status": "ok"})
	})

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	log.Info("Starting %s on %s", cfg.App.Name, addr)
	stdlog.Fatal(app.Listen(addr))
}
