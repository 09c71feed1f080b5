package http

import (
	"crypto/subtle"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/keyauth"
)

// SetupRoutes configures all HTTP routes
func SetupRoutes(app *fiber.App, handler *Handler, masterAPIKey string) {
	// Public endpoints
	app.Get("/", handler.Root)
	app.Get("/health", handler.HealthCheck)

	// API v1 routes, protected by the X-API-Key header
	api := app.Group("/api/v1")
	api.Use(keyauth.New(keyauth.Config{
		KeyLookup: "header:X-API-Key",
		Validator: func(c *fiber.Ctx, key string) (bool, error) {
			if subtle.ConstantTimeCompare([]byte(key), []byte(masterAPIKey)) == 1 {
				return true, nil
			}
			return false, keyauth.ErrMissingOrMalformedAPIKey
		},
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error":   true,
				"message": "Invalid API Key",
			})
		},
	}))
	{
		api.Post("/chat", handler.Chat)
		api.Get("/islands/:code/summary", handler.IslandSummary)
	}
}
