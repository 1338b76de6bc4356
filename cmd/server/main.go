package main

import (
	"context"
	"database/sql"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/newrelic/go-agent/v3/newrelic"

	"github.com/brandonkimmmm/backend-coding-test/internal/app"
	"github.com/brandonkimmmm/backend-coding-test/internal/config"
	"github.com/brandonkimmmm/backend-coding-test/internal/handler"
	"github.com/brandonkimmmm/backend-coding-test/internal/logger"
	"github.com/brandonkimmmm/backend-coding-test/internal/repository/sqlite"
	"github.com/brandonkimmmm/backend-coding-test/internal/service"
)

func main() {
	// Load configuration and build the process-wide logger.
	cfg := config.Load()
	log := logger.New(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Initialize New Relic if enabled.
	var nrApp *newrelic.Application
	var err error
	if cfg.NewRelic.Enabled && cfg.NewRelic.LicenseKey != "" {
		nrApp, err = newrelic.NewApplication(
			newrelic.ConfigAppName(cfg.NewRelic.AppName),
			newrelic.ConfigLicense(cfg.NewRelic.LicenseKey),
			newrelic.ConfigDistributedTracerEnabled(true),
		)
		if err != nil {
			log.Error("failed to initialize New Relic", "error", err)
		} else {
			log.Info("New Relic enabled", "app", cfg.NewRelic.AppName)
		}
	}

	// Open the embedded database and create the Rides schema.
	db, err := app.NewDatabase(ctx, cfg.Database)
	if err != nil {
		log.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer db.Close()
	log.Info("database ready", "dsn", cfg.Database.DSN)

	// Wire dependencies.
	server := wireServer(db, nrApp, cfg, log)

	// Start server in goroutine.
	go func() {
		log.Info("starting server", "port", cfg.Server.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("shutting down server")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	log.Info("server exited")
}

// wireServer wires all dependencies and returns the HTTP server.
func wireServer(db *sql.DB, nrApp *newrelic.Application, cfg *config.Config, log *slog.Logger) *http.Server {
	rideRepo := sqlite.NewRideRepository(db)
	rideService := service.NewRideService(rideRepo, log)
	rideHandler := handler.NewRideHandler(rideService, log)

	router := app.NewRouter(app.RouterDeps{
		RideHandler: rideHandler,
		Logger:      log,
		NewRelicApp: nrApp,
	})

	return &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}
}
