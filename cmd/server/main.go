package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"household-finance/internal/config"
	"household-finance/internal/database"
	"household-finance/internal/handlers"
	appmiddleware "household-finance/internal/middleware"
	"household-finance/internal/repositories"
	"household-finance/internal/services"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	cfg := config.Load()

	setupLogger(cfg)

	db, err := database.New(&cfg.Database)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err.Error())
		os.Exit(1)
	}
	defer func() {
		if err := db.Close(); err != nil {
			slog.Error("Failed to close database", "error", err.Error())
		}
	}()

	sqlDB, err := db.DB.DB()
	if err != nil {
		slog.Error("Failed to get sql.DB", "error", err.Error())
		os.Exit(1)
	}

	migrationRunner := database.NewMigrationRunner(sqlDB)
	if err := migrationRunner.WaitForDatabase(); err != nil {
		slog.Error("Database never became ready", "error", err.Error())
		os.Exit(1)
	}
	if err := migrationRunner.RunMigrations(); err != nil {
		slog.Error("Failed to run migrations", "error", err.Error())
		os.Exit(1)
	}

	// Repositories
	transactionRepo := repositories.NewTransactionRepository(db.DB)
	templateRepo := repositories.NewTemplateRepository(db.DB)
	accountRepo := repositories.NewAccountRepository(db.DB)
	householdRepo := repositories.NewHouseholdRepository(db.DB)

	// Services
	metrics := services.NewPrometheusMetrics()
	detector := services.NewRecurrenceDetector(transactionRepo, templateRepo, metrics)
	scheduler := services.NewTemplateScheduler(templateRepo, transactionRepo, metrics)

	// Handlers
	transactionHandler := handlers.NewTransactionHandler(transactionRepo)
	templateHandler := handlers.NewTemplateHandler(templateRepo)
	suggestionHandler := handlers.NewSuggestionHandler(detector, scheduler)
	householdHandler := handlers.NewHouseholdHandler(householdRepo, accountRepo)
	healthHandler := handlers.NewHealthCheckHandler(db.DB)

	e := newRouter(cfg, transactionHandler, templateHandler, suggestionHandler, householdHandler, healthHandler)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if cfg.Scheduler.Enabled {
		trigger := services.NewScheduleTrigger(scheduler, cfg.Scheduler.Interval, cfg.Scheduler.RunAt)
		go trigger.Start(ctx)
		slog.Info("Template scheduler started",
			"interval", cfg.Scheduler.Interval.String(),
			"run_at", cfg.Scheduler.RunAt,
		)
	}

	go func() {
		address := cfg.Server.Host + ":" + cfg.Server.Port
		slog.Info("Starting server", "address", address, "environment", cfg.Server.Environment)
		if err := e.Start(address); err != nil && err != http.ErrServerClosed {
			slog.Error("Server stopped unexpectedly", "error", err.Error())
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("Shutting down server")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		slog.Error("Failed to shut down server gracefully", "error", err.Error())
	}
}

func setupLogger(cfg *config.Config) {
	var handler slog.Handler
	if cfg.IsProduction() {
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})
	} else {
		handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug})
	}
	slog.SetDefault(slog.New(handler))
}

func newRouter(
	cfg *config.Config,
	transactionHandler *handlers.TransactionHandler,
	templateHandler *handlers.TemplateHandler,
	suggestionHandler *handlers.SuggestionHandler,
	householdHandler *handlers.HouseholdHandler,
	healthHandler *handlers.HealthCheckHandler,
) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handlers.NewValidator()
	e.HTTPErrorHandler = appmiddleware.CustomHTTPErrorHandler

	e.Use(appmiddleware.RequestID())
	e.Use(appmiddleware.PanicRecovery())
	e.Use(appmiddleware.SecurityHeaders())
	e.Use(appmiddleware.RateLimiter(cfg.Server.RateLimit))
	e.Use(echomiddleware.GzipWithConfig(echomiddleware.GzipConfig{
		Skipper: func(c echo.Context) bool {
			return c.Path() == "/metrics"
		},
	}))

	e.GET("/health", healthHandler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := e.Group("/api/v1")

	api.POST("/households", householdHandler.CreateHousehold)
	api.GET("/households/:householdId", householdHandler.GetHousehold)
	api.POST("/households/:householdId/accounts", householdHandler.CreateAccount)
	api.GET("/households/:householdId/accounts", householdHandler.ListAccounts)

	api.POST("/transactions", transactionHandler.CreateTransaction)
	api.GET("/transactions/:id", transactionHandler.GetTransaction)
	api.GET("/households/:householdId/transactions", transactionHandler.ListTransactions)

	api.POST("/templates", templateHandler.CreateTemplate)
	api.GET("/templates/:id", templateHandler.GetTemplate)
	api.DELETE("/templates/:id", templateHandler.DeleteTemplate)
	api.GET("/households/:householdId/templates", templateHandler.ListTemplates)

	api.GET("/households/:householdId/suggestions", suggestionHandler.GetSuggestions)
	api.POST("/scheduler/run", suggestionHandler.RunScheduler)

	return e
}
