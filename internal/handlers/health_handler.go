package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

// HandleHealth reports that the API is up.
func HandleHealth(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":    "OK",
		"message":   "Afiya Zone API is running",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
