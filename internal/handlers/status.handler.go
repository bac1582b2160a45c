package handlers

import (
	"github.com/gofiber/fiber/v2"
)

// StatusHandler keeps the test-bench liveness contract: reachable service
// means the bench is online.
func StatusHandler(router fiber.Router) {
	router.Get("/status", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "success", "message": "Test bench is online"})
	})
}
