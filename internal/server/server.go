package server

import (
	"log"

	"proofly-be/internal/bootstrap"
	"proofly-be/internal/config"
	"proofly-be/internal/pkg/serverutils"
	"proofly-be/internal/pkg/storage"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

type Server struct {
	app       *fiber.App
	cfg       *config.Config
	container *bootstrap.Container
}

func New(cfg *config.Config, container *bootstrap.Container) *Server {
	app := fiber.New(fiber.Config{
		// Video uploads are the largest accepted payload.
		BodyLimit: storage.MaxVideoBytes + 1024*1024,
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.App.CorsAllowedOrigins,
		AllowCredentials: true,
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization, x-proofly-api-key",
		AllowMethods:     "GET, POST, PUT, PATCH, DELETE, OPTIONS",
		ExposeHeaders:    "Content-Length, Content-Type, Authorization",
	}))

	// OpenTelemetry tracing middleware (traces all HTTP requests)
	app.Use(otelfiber.Middleware())

	app.Use(serverutils.ErrorHandlerMiddleware(container.Logger))

	registerRoutes(app, container)

	return &Server{
		app:       app,
		cfg:       cfg,
		container: container,
	}
}

func (s *Server) GetApp() *fiber.App {
	return s.app
}

func (s *Server) Run() error {
	log.Printf("Server is running on http://localhost:%s", s.cfg.App.Port)
	return s.app.Listen(":" + s.cfg.App.Port)
}

func registerRoutes(app *fiber.App, c *bootstrap.Container) {
	api := app.Group("/api")

	c.ProjectController.RegisterRoutes(api)
	c.CategoryController.RegisterRoutes(api)
	c.QuestionController.RegisterRoutes(api)
	c.TestimonialController.RegisterRoutes(api)
	c.ApiKeyController.RegisterRoutes(api)
	c.RequestController.RegisterRoutes(api)
	c.PublicController.RegisterRoutes(api)
}
