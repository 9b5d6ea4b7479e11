package main

import (
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	sentryfiber "github.com/getsentry/sentry-go/fiber"
	"github.com/gofiber/fiber/v2"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/ahmetcoskunkizilkaya/sifter-admin/internal/config"
	"github.com/ahmetcoskunkizilkaya/sifter-admin/internal/database"
	"github.com/ahmetcoskunkizilkaya/sifter-admin/internal/fixtures"
	"github.com/ahmetcoskunkizilkaya/sifter-admin/internal/handlers"
	"github.com/ahmetcoskunkizilkaya/sifter-admin/internal/logging"
	"github.com/ahmetcoskunkizilkaya/sifter-admin/internal/middleware"
	"github.com/ahmetcoskunkizilkaya/sifter-admin/internal/routes"
	"github.com/ahmetcoskunkizilkaya/sifter-admin/internal/services"
	"gorm.io/gorm"
)

func main() {
	// .env is optional; real environment variables win
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		logging.Setup(slog.LevelInfo)
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	// Structured logging (JSON to stdout)
	logging.Setup(cfg.SlogLevel())

	if err := cfg.Validate(); err != nil {
		slog.Error("invalid config", "error", err)
		os.Exit(1)
	}

	// Fixtures
	set, err := fixtures.Load(cfg.FixturesPath)
	if err != nil {
		slog.Error("failed to load fixtures", "path", cfg.FixturesPath, "error", err)
		os.Exit(1)
	}
	slog.Info("fixtures loaded",
		"users", len(set.Users), "chat_rooms", len(set.ChatRooms), "reports", len(set.Reports))

	// Optional log database
	var db *gorm.DB
	var pgLogHandler *logging.PGHandler
	cleanupDone := make(chan struct{})
	if cfg.LogDBEnabled {
		db, err = database.Connect(cfg)
		if err != nil {
			slog.Error("database connection failed", "error", err)
			os.Exit(1)
		}
		if err := database.Migrate(db); err != nil {
			slog.Error("log table migration failed", "error", err)
			os.Exit(1)
		}

		// PostgreSQL log handler (ERROR+ async batch)
		pgLogHandler = logging.NewPGHandler(db)
		slog.SetDefault(slog.New(logging.NewMultiHandler(
			logging.NewJSONHandler(os.Stdout, cfg.SlogLevel()),
			pgLogHandler,
		)))

		// Log cleanup (30-day retention)
		logging.StartCleanup(db, cleanupDone)
	}

	// Services
	provider := services.NewMockDataProvider(set)
	authService, err := services.NewAuthService(cfg)
	if err != nil {
		slog.Error("auth setup failed", "error", err)
		os.Exit(1)
	}

	// Sentry error tracking
	if cfg.SentryDSN != "" {
		if err := sentry.Init(sentry.ClientOptions{
			Dsn:              cfg.SentryDSN,
			EnableTracing:    true,
			TracesSampleRate: 0.2,
			Environment:      cfg.AppEnv,
		}); err != nil {
			slog.Error("sentry init failed", "error", err)
		}
	}

	// Metrics
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	metrics := middleware.NewMetrics(cfg.MetricsNamespace, registry)

	// Fiber app
	app := fiber.New(fiber.Config{
		BodyLimit:    1 * 1024 * 1024,
		ErrorHandler: handlers.ErrorHandler,
	})

	// Sentry middleware
	app.Use(sentryfiber.New(sentryfiber.Options{
		Repanic:         true,
		WaitForDelivery: false,
	}))

	// Global middleware
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(fiberlogger.New(fiberlogger.Config{
		Format: "${time} | ${status} | ${latency} | ${ip} | ${method} | ${path}\n",
	}))
	app.Use(metrics.Handler())
	app.Use(middleware.CORS(cfg))
	app.Use(middleware.SecurityHeaders())

	// Routes
	routes.Setup(app, cfg, authService, registry, routes.Handlers{
		Auth:   handlers.NewAuthHandler(authService, cfg),
		Pages:  handlers.NewPageHandler(provider),
		Data:   handlers.NewDataHandler(provider),
		Health: handlers.NewHealthHandler(db),
	})

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		slog.Info("server starting", "port", cfg.Port, "env", cfg.AppEnv)
		if err := app.Listen(":" + cfg.Port); err != nil {
			slog.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	<-quit
	slog.Info("shutting down server...")

	close(cleanupDone)
	if pgLogHandler != nil {
		pgLogHandler.Stop()
	}
	sentry.Flush(2 * time.Second)

	if err := app.Shutdown(); err != nil {
		slog.Error("server shutdown error", "error", err)
	}

	if err := database.Close(db); err != nil {
		slog.Error("database close error", "error", err)
	}

	slog.Info("server stopped")
}
