package server

import (
	"log"
	"time"

	"promptlink-be/internal/bootstrap"
	"promptlink-be/internal/config"
	"promptlink-be/internal/pkg/serverutils"

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
		BodyLimit: 1 * 1024 * 1024, // 1MB; prompts are text
	})

	// Middleware
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.App.CorsAllowedOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST, PUT, PATCH, DELETE, OPTIONS",
	}))

	// OpenTelemetry tracing middleware (traces all HTTP requests)
	app.Use(otelfiber.Middleware())

	app.Use(serverutils.ErrorHandlerMiddleware())

	// Routes
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
	app.Get("/health", healthCheck)
	app.Get("/", root)

	api := app.Group("/api")

	c.RelayController.RegisterRoutes(api)
	c.SessionStreamHandler.RegisterRoutes(api)
}

func healthCheck(ctx *fiber.Ctx) error {
	return ctx.JSON(fiber.Map{
		"status":  "healthy",
		"service": "PromptLink Relay Backend",
		"version": "2.0.0",
		"features": fiber.Map{
			"agents":              "20 AI agents available",
			"revolutionary_relay": "Expert Panel + Conference Chain modes",
		},
		"timestamp": time.Now().UTC(),
	})
}

func root(ctx *fiber.Ctx) error {
	return ctx.JSON(fiber.Map{
		"message": "PromptLink Relay Backend API",
		"version": "2.0.0",
		"endpoints": fiber.Map{
			"/api/revolutionary-relay": "Revolutionary 20-agent relay system",
			"/health":                  "Service health",
		},
	})
}
