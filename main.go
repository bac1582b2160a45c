package main

import (
	"fmt"
	"os"
	"os/signal"
	"server/cmd/migration/seed"
	"server/internal/app"
	"server/internal/handlers"
	"server/internal/logger"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
)

func main() {
	log := logger.New("main")

	application, err := app.New()
	if err != nil {
		log.Er("failed to create app", err)
		os.Exit(1)
	}
	defer func() {
		if err := application.Close(); err != nil {
			log.Er("failed to close app", err)
		}
	}()

	if err := seed.Seed(application.Database.SQL, application.Config, log); err != nil {
		log.Er("failed to seed admin user", err)
		os.Exit(1)
	}

	fiberApp := fiber.New(fiber.Config{
		AppName: "testbench-api",
		// Anything a handler did not translate itself surfaces here as a
		// generic failure envelope; nothing propagates to the process.
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).
				JSON(fiber.Map{"status": "failure", "error": err.Error()})
		},
	})

	fiberApp.Use(requestid.New())
	fiberApp.Use(recover.New())
	fiberApp.Use(cors.New(cors.Config{
		AllowOrigins: application.Config.CorsAllowOrigins,
	}))

	if err := handlers.Router(fiberApp, application); err != nil {
		log.Er("failed to register routes", err)
		os.Exit(1)
	}

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-shutdown
		log.Info("shutting down")
		if err := fiberApp.Shutdown(); err != nil {
			log.Er("failed to shut down server", err)
		}
	}()

	addr := fmt.Sprintf(":%d", application.Config.Port)
	log.Info("listening", "addr", addr)
	if err := fiberApp.Listen(addr); err != nil {
		log.Er("server stopped", err)
		os.Exit(1)
	}
}
