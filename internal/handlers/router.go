package handlers

import (
	"errors"
	"server/internal/app"
	"server/internal/apperrors"
	"server/internal/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
)

type Handler struct {
	log    logger.Logger
	router fiber.Router
}

func Router(router fiber.Router, app *app.App) (err error) {
	setupWebSocketRoute(router, app)

	StatusHandler(router)
	NewTestHandler(*app, router).Register()
	NewUserHandler(*app, router).Register()

	return nil
}

func setupWebSocketRoute(router fiber.Router, app *app.App) {
	router.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			c.Locals("allowed", true)
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	})
	router.Get("/ws", websocket.New(func(c *websocket.Conn) {
		app.Websocket.HandleWebSocket(c)
	}))
}

// failureJSON translates the error taxonomy to the envelope once, at the
// route boundary: missing fields are the client's fault, everything else
// is a store fault reported as 500.
func failureJSON(c *fiber.Ctx, err error) error {
	var validationErr *apperrors.ValidationError
	if errors.As(err, &validationErr) {
		return c.Status(fiber.StatusBadRequest).
			JSON(fiber.Map{"status": "failure", "error": validationErr.Error()})
	}

	return c.Status(fiber.StatusInternalServerError).
		JSON(fiber.Map{"status": "failure", "error": err.Error()})
}
