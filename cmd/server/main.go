package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/example/blossom/internal/config"
	"github.com/example/blossom/internal/database"
	"github.com/example/blossom/internal/routes"
	"github.com/example/blossom/internal/services"
)

func main() {
	cfg := config.Load()
	db := database.Connect(cfg.DatabaseURL)

	app := fiber.New(fiber.Config{
		AppName:      "Blossom Backend",
		ErrorHandler: errorHandler,
	})

	app.Use(recover.New())
	app.Use(logger.New())

	mailer := services.NewMailer(cfg)
	payos := services.NewPayOSClient(cfg)

	routes.Register(app, db, cfg, mailer, payos, services.LogListener{})

	if cfg.PayOSWebhookURL != "" {
		if err := payos.ConfirmWebhook(cfg.PayOSWebhookURL); err != nil {
			log.Printf("[PayOS] webhook confirmation failed: %v", err)
		}
	}

	sweeper := services.NewSweeper(db)
	sweeper.Start()

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		<-quit

		log.Println("Shutting down...")
		sweeper.Stop()
		if err := app.Shutdown(); err != nil {
			log.Printf("fiber.Shutdown error: %v", err)
		}
	}()

	log.Printf("Starting server on :%s", cfg.AppPort)
	if err := app.Listen(":" + cfg.AppPort); err != nil {
		log.Fatalf("fiber.Listen error: %v", err)
	}
}

// errorHandler renders every error as a JSON body with a human-readable
// message, matching what the storefront expects.
func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Server Error"

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
		message = e.Message
	}

	return c.Status(code).JSON(fiber.Map{
		"message": message,
	})
}
