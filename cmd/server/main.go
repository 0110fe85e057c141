package main

import (
	"errors"
	"log"
	"os"

	"github.com/gofiber/fiber/v2"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"

	"github.com/example/electromart/internal/config"
	"github.com/example/electromart/internal/routes"
	"github.com/example/electromart/internal/storage"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer logger.Sync()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("failed to load config", zap.Error(err))
	}

	if err := os.MkdirAll(cfg.UploadDir, 0o755); err != nil {
		logger.Fatal("failed to create upload directory", zap.Error(err))
	}

	store := storage.NewMemStorage()

	app := fiber.New(fiber.Config{
		AppName:      "ElectroMart Backend",
		ErrorHandler: errorHandler(logger),
	})

	app.Use(recover.New())
	app.Use(fiberlogger.New())

	app.Static("/uploads", cfg.UploadDir)
	routes.Register(app, store, cfg, logger)

	logger.Info("starting server", zap.String("port", cfg.Port))
	if err := app.Listen(":" + cfg.Port); err != nil {
		logger.Fatal("fiber.Listen error", zap.Error(err))
	}
}

// errorHandler renders every error as a JSON message, hiding internal
// fault details from clients.
func errorHandler(logger *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		message := "internal server error"

		var fe *fiber.Error
		if errors.As(err, &fe) {
			code = fe.Code
			message = fe.Message
		}

		if code == fiber.StatusInternalServerError {
			logger.Error("request failed",
				zap.String("path", c.Path()),
				zap.Error(err))
		}

		return c.Status(code).JSON(fiber.Map{"message": message})
	}
}
