package handlers

import "github.com/gofiber/fiber/v2"

// HealthCheck handles GET /health.
func HealthCheck(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "ok",
		"version": "1.0.0",
	})
}
