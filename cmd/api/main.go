package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/amirhossein-jamali/library-lending/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/library-lending/internal/infrastructure/adapter/api/routes"
	"github.com/amirhossein-jamali/library-lending/internal/infrastructure/adapter/auth"
	"github.com/amirhossein-jamali/library-lending/internal/infrastructure/adapter/logger"
	timeProvider "github.com/amirhossein-jamali/library-lending/internal/infrastructure/adapter/time"
	"github.com/amirhossein-jamali/library-lending/internal/infrastructure/bootstrap"
	"github.com/amirhossein-jamali/library-lending/internal/infrastructure/config"

	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Set Gin mode based on environment
	if cfg.Environment == config.Production {
		gin.SetMode(gin.ReleaseMode)
	}

	appLogger := logger.NewZapLogger(cfg.Logger, cfg.Environment == config.Production)
	defer func() { _ = appLogger.Flush() }()

	tp := timeProvider.NewRealTimeProvider()

	// Connect, migrate and wire use cases
	container, err := bootstrap.New(cfg, appLogger, tp)
	if err != nil {
		appLogger.Error("Failed to connect to database", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}
	defer container.Close()

	if err := container.Migrate(context.Background()); err != nil {
		appLogger.Error("Failed to run migrations", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}

	handlers := routes.Handlers{
		Student: handler.NewStudentHandler(container.Catalog, appLogger),
		Book:    handler.NewBookHandler(container.Catalog, appLogger),
		Loan:    handler.NewLoanHandler(container.Loans, appLogger),
		Report:  handler.NewReportHandler(container.Reports, appLogger),
		Health:  handler.NewHealthHandler(container.DB, appLogger),
	}

	// Optional login gate
	var sessions *auth.SessionManager
	if cfg.Auth.Enabled {
		sessions, err = auth.NewSessionManager(cfg.Auth.SessionSecret, cfg.Auth.SessionMaxAge, cfg.Environment == config.Production)
		if err != nil {
			appLogger.Error("Failed to create session store", map[string]any{
				"error": err.Error(),
			})
			os.Exit(1)
		}
		authenticator := auth.NewAllowListAuthenticator(cfg.Auth.Users, appLogger)
		handlers.Auth = handler.NewAuthHandler(authenticator, sessions, appLogger)

		appLogger.Info("Login gate enabled", map[string]any{
			"operators": authenticator.Users(),
		})
	}

	router := gin.New()
	routes.SetupMiddlewares(router, appLogger, tp)
	routes.SetupRoutes(router, handlers, sessions)

	server := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	// Start the server in a goroutine
	go func() {
		appLogger.Info("Starting server", map[string]any{
			"addr":     server.Addr,
			"env":      cfg.Environment,
			"driver":   container.DB.Dialect(),
			"timezone": cfg.Library.Location().String(),
		})

		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Error("Failed to start server", map[string]any{
				"error": err.Error(),
			})
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...", nil)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		appLogger.Error("Server forced to shutdown", map[string]any{
			"error": err.Error(),
		})
	}

	appLogger.Info("Server exited gracefully", nil)
}
