package main

import (
	"context"
	"errors"
	"os"
	"time"

	"watchlog/internal/database"
	"watchlog/internal/handlers"
	"watchlog/internal/routes"
	"watchlog/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	fiberSwagger "github.com/swaggo/fiber-swagger"
)

func newServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer(cmd.Context())
		},
	}
}

func runServer(ctx context.Context) error {
	a, err := newApp(os.Stdout)
	if err != nil {
		return err
	}
	defer a.Close()

	app := newServer(a)

	// Graceful shutdown
	go gracefulShutdown(ctx, app, a.log)

	a.log.Infof("watchlog API starting on port %s", a.cfg.Server.Port)
	if err := app.Listen(":" + a.cfg.Server.Port); err != nil {
		return err
	}
	return nil
}

func newServer(a *application) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "watchlog API",
		ReadTimeout:           a.cfg.Server.ReadTimeout,
		WriteTimeout:          a.cfg.Server.WriteTimeout,
		IdleTimeout:           120 * time.Second,
		DisableStartupMessage: false,
		ErrorHandler:          customErrorHandler(a.log),
	})

	setupMiddleware(app)

	app.Get("/health", healthCheckHandler(a.db))

	// Swagger documentation
	app.Get("/swagger/*", fiberSwagger.WrapHandler)

	routes.Setup(app,
		handlers.NewMediaHandler(a.media, a.log),
		handlers.NewBackfillHandler(a.backfill, a.log),
		handlers.NewSnapshotHandler(a.snapshots, a.log),
	)

	return app
}

func setupMiddleware(app *fiber.App) {
	app.Use(recover.New(recover.Config{
		EnableStackTrace: true,
	}))

	// Logger middleware
	app.Use(logger.New(logger.Config{
		Format:     "${time} | ${status} | ${latency} | ${ip} | ${method} | ${path} | ${error}\n",
		TimeFormat: "15:04:05",
		TimeZone:   "Local",
	}))

	app.Use(cors.New(cors.Config{
		AllowOrigins:     "*",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization, X-Request-ID",
		AllowMethods:     "GET, POST, PUT, DELETE, OPTIONS, PATCH",
		AllowCredentials: false,
		MaxAge:           86400, // 24 hours
	}))
}

func healthCheckHandler(db *database.Database) fiber.Handler {
	return func(c *fiber.Ctx) error {
		dbStatus := "healthy"
		if err := db.HealthCheck(); err != nil {
			dbStatus = "unhealthy"
		}

		return c.JSON(fiber.Map{
			"status":    "ok",
			"service":   "watchlog",
			"version":   "1.0.0",
			"database":  dbStatus,
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	}
}

func customErrorHandler(log *logrus.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError

		var e *fiber.Error
		if errors.As(err, &e) {
			code = e.Code
		}

		log.WithError(err).WithFields(logrus.Fields{
			"method": c.Method(),
			"path":   c.Path(),
			"status": code,
		}).Error("Request error")

		return utils.ErrorResponse(c, code, err.Error())
	}
}

func gracefulShutdown(ctx context.Context, app *fiber.App, log *logrus.Logger) {
	<-ctx.Done()

	log.Info("Shutting down server...")

	if err := app.ShutdownWithTimeout(30 * time.Second); err != nil {
		log.Errorf("Error during shutdown: %v", err)
	}

	log.Info("Server shutdown complete")
}
