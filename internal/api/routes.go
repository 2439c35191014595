package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

// SetupRoutes sets up all ops API routes
func SetupRoutes(app *fiber.App, handler *Handler) {
	// Middleware
	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept",
		AllowMethods: "GET, OPTIONS",
	}))

	// Health check
	app.Get("/health", handler.Health)

	// API v1 routes
	v1 := app.Group("/api/v1")

	// Faucet info
	v1.Get("/info", handler.GetInfo)

	// Balance lookup
	v1.Get("/balance/:address", handler.GetBalance)
}
