package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/forgo/chrono/api/internal/config"
	"github.com/forgo/chrono/api/internal/database"
	"github.com/forgo/chrono/api/internal/handler"
	"github.com/forgo/chrono/api/internal/middleware"
	"github.com/forgo/chrono/api/internal/repository"
	"github.com/forgo/chrono/api/internal/service"
)

func main() {
	// Initialize structured logging
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		slog.Error("invalid configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Initialize database connection
	db := database.NewSurrealDB(database.Config{
		Host:      cfg.Database.Host,
		Port:      cfg.Database.Port,
		User:      cfg.Database.User,
		Password:  cfg.Database.Password,
		Namespace: cfg.Database.Namespace,
		Database:  cfg.Database.Database,
	})

	ctx := context.Background()
	if err := db.Connect(ctx); err != nil {
		slog.Error("failed to connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer func() { _ = db.Close() }()

	slog.Info("connected to database",
		slog.String("host", cfg.Database.Host),
		slog.String("database", cfg.Database.Database),
	)

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	plannerRepo := repository.NewPlannerRepository(db)
	eventRepo := repository.NewEventRepository(db)

	// One lock set shared by both services, so concurrent planner and
	// event creation serialize on the same parent records.
	refLocks := service.NewRefLocks()

	// Initialize services
	accountService := service.NewAccountService(service.AccountServiceConfig{
		UserRepo: userRepo,
	})

	plannerService := service.NewPlannerService(service.PlannerServiceConfig{
		PlannerRepo: plannerRepo,
		UserRepo:    userRepo,
		Locks:       refLocks,
	})

	eventService := service.NewEventService(service.EventServiceConfig{
		EventRepo:   eventRepo,
		PlannerRepo: plannerRepo,
		UserRepo:    userRepo,
		Locks:       refLocks,
	})

	// Initialize handlers
	accountHandler := handler.NewAccountHandler(accountService)
	plannerHandler := handler.NewPlannerHandler(plannerService)
	eventHandler := handler.NewEventHandler(eventService)
	healthHandler := handler.NewHealthHandler(db)

	// Create router and register routes
	mux := http.NewServeMux()

	// Health check endpoint
	mux.HandleFunc("GET /health", healthHandler.Check)

	// Account endpoints
	mux.HandleFunc("POST /v1/accounts/register", accountHandler.Register)
	mux.HandleFunc("POST /v1/accounts/login", accountHandler.Login)

	// Planner endpoints
	mux.HandleFunc("POST /v1/planners", plannerHandler.Create)
	mux.HandleFunc("GET /v1/planners/{plannerId}", plannerHandler.Get)

	// Event endpoints
	mux.HandleFunc("POST /v1/events", eventHandler.Create)
	mux.HandleFunc("GET /v1/events/{eventId}", eventHandler.Get)

	// Apply global middleware
	wrapped := middleware.Chain(
		mux,
		middleware.RequestID,
		middleware.Logger,
		middleware.Recovery,
		middleware.CORS(cfg.Server.AllowedOrigins),
		middleware.Compress,
	)

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      wrapped,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  120 * time.Second,
	}

	// Start server in goroutine
	go func() {
		slog.Info("starting server",
			slog.String("port", cfg.Server.Port),
			slog.String("env", cfg.Server.Env),
		)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("server forced to shutdown", slog.String("error", err.Error()))
	}

	slog.Info("server exited")
}
