package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"

	"nskk-web/client"
	"nskk-web/config"
	"nskk-web/controller"
	"nskk-web/handlers"
	"nskk-web/middleware"
	"nskk-web/scheduler"
	"nskk-web/session"
)

func newLogger(cfg *config.Config) (*zap.Logger, error) {
	if cfg.IsDev() {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

func main() {
	cfg := config.Load()

	zl, err := newLogger(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer zl.Sync()

	api := client.New(cfg.APIBaseURL, cfg.APITimeout)
	store := session.NewStore(controller.NewApp(api, zl, cfg.NotificationDelay))

	ctx, stop := context.WithCancel(context.Background())
	defer stop()
	scheduler.StartSweeper(ctx, store, cfg.SessionSweepInterval, cfg.SessionTTL, zl)

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName: cfg.AppName,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(middleware.CORS(cfg.CORSAllowOrigins))

	// Health check
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.SendString("OK")
	})

	// Pages and fragments
	handlers.New(zl, cfg.APITimeout).Register(app,
		middleware.Session(store, cfg.SessionTTL),
		middleware.Resume(store, cfg.SessionTTL))

	// Graceful shutdown
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		zl.Info("shutting down server")
		stop()
		app.Shutdown()
	}()

	zl.Info("server starting",
		zap.String("port", cfg.Port),
		zap.String("env", cfg.AppEnv),
		zap.String("api", cfg.APIBaseURL))
	if err := app.Listen(":" + cfg.Port); err != nil {
		zl.Fatal("server failed", zap.Error(err))
	}
}
