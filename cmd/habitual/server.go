package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/sirupsen/logrus"
	"github.com/terraincognita07/habitual/internal/api"
	"github.com/terraincognita07/habitual/internal/config"
	"github.com/terraincognita07/habitual/internal/db"
	"github.com/terraincognita07/habitual/internal/metrics"
	"github.com/terraincognita07/habitual/internal/services"
	"gorm.io/gorm"
)

const (
	metricsPath     = "/metrics"
	shutdownTimeout = 10 * time.Second
)

func runServer(rt *commandEnv, database *gorm.DB) error {
	if err := ensureFirstSuperuser(rt.settings, database, rt.logger); err != nil {
		return err
	}

	app, err := newApp(rt.settings, database, rt.logger)
	if err != nil {
		return err
	}

	sigCtx, stopSignals := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	go func() {
		<-sigCtx.Done()
		rt.logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			rt.logger.WithError(err).Error("server shutdown failed")
		}
	}()

	rt.logger.WithFields(logrus.Fields{
		"address":     rt.settings.ListenAddress(),
		"host":        rt.settings.ServerHost(),
		"db":          rt.settings.SQLiteFileName,
		"environment": rt.settings.Environment,
		"tz":          rt.settings.Location().String(),
	}).Info("habitual listening")
	if err := app.Listen(rt.settings.ListenAddress()); err != nil {
		return fmt.Errorf("server exited: %w", err)
	}
	return nil
}

// newApp wires middleware, metrics and the API routes onto a fresh fiber app.
func newApp(settings config.Settings, database *gorm.DB, log *logrus.Logger) (*fiber.App, error) {
	handler, err := api.NewHandler(database, settings.SecretKey, settings.AccessTokenTTL(), log)
	if err != nil {
		return nil, fmt.Errorf("handler init failed: %w", err)
	}

	collector := metrics.NewHTTP()
	handler.ObserveLogins(collector)

	app := fiber.New(fiber.Config{
		AppName:               settings.ProjectName,
		DisableStartupMessage: true,
	})

	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(logger.New(logger.Config{
		Format: "${time} ${locals:requestid} ${status} ${method} ${path} ${latency}\n",
		Output: log.Writer(),
	}))
	app.Use(compress.New())
	app.Use(collector.Middleware(metricsPath))

	app.Get(metricsPath, collector.Handler())
	api.RegisterRoutes(app, handler, settings.APIPrefix)
	app.Use(handler.NotFound)
	return app, nil
}

func ensureFirstSuperuser(settings config.Settings, database *gorm.DB, log logrus.FieldLogger) error {
	if settings.FirstSuperuser == "" {
		return nil
	}

	users := db.NewUserRepository(database)
	setup := services.NewSetupService(users, services.NewUserService(users))
	created, err := setup.EnsureFirstSuperuser(settings.FirstSuperuser, settings.FirstSuperuserPassword)
	if err != nil {
		return fmt.Errorf("bootstrap first superuser: %w", err)
	}
	if created {
		log.WithField("email", settings.FirstSuperuser).Info("created first superuser")
	}
	return nil
}
