package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"

	"github.com/lunarbyte-dev/member-credits/internal/domain/entity"
	ledgerUseCase "github.com/lunarbyte-dev/member-credits/internal/domain/usecase/ledger"
	memberUseCase "github.com/lunarbyte-dev/member-credits/internal/domain/usecase/member"
	meteringUseCase "github.com/lunarbyte-dev/member-credits/internal/domain/usecase/metering"
	reconcileUseCase "github.com/lunarbyte-dev/member-credits/internal/domain/usecase/reconcile"

	"github.com/lunarbyte-dev/member-credits/internal/infrastructure/adapter/api/handler"
	"github.com/lunarbyte-dev/member-credits/internal/infrastructure/adapter/api/routes"
	"github.com/lunarbyte-dev/member-credits/internal/infrastructure/adapter/database"
	"github.com/lunarbyte-dev/member-credits/internal/infrastructure/adapter/identity"
	"github.com/lunarbyte-dev/member-credits/internal/infrastructure/adapter/logger"
	"github.com/lunarbyte-dev/member-credits/internal/infrastructure/adapter/metrics"
	"github.com/lunarbyte-dev/member-credits/internal/infrastructure/adapter/repository"
	"github.com/lunarbyte-dev/member-credits/internal/infrastructure/adapter/session"
	timeProvider "github.com/lunarbyte-dev/member-credits/internal/infrastructure/adapter/time"
	"github.com/lunarbyte-dev/member-credits/internal/infrastructure/adapter/tokencache"
	"github.com/lunarbyte-dev/member-credits/internal/infrastructure/config"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := validateConfig(cfg); err != nil {
		log.Fatalf("Configuration validation failed: %v", err)
	}

	if cfg.Environment == config.Production {
		gin.SetMode(gin.ReleaseMode)
	}

	appLogger := logger.NewZapLogger(cfg.Environment == config.Production)
	defer func() { _ = appLogger.Flush() }()

	tp := timeProvider.NewRealTimeProvider()

	// Connect to the database and run migrations
	db, err := database.Connect(cfg.Database, appLogger)
	if err != nil {
		appLogger.Error("Failed to connect to database", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}
	defer func() {
		if sqlDB, dbErr := db.DB(); dbErr == nil {
			_ = sqlDB.Close()
		}
	}()

	if err := database.Migrate(db, appLogger); err != nil {
		appLogger.Error("Failed to run migrations", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}

	// Infrastructure adapters
	prom := metrics.NewPrometheus("member_credits")
	platformClient := identity.NewClient(cfg.Platform, appLogger)
	uow := database.NewUnitOfWork(db, appLogger)
	memberRepo := repository.NewMemberRepository(db, appLogger)

	adminTokens := tokencache.New(cfg.Session.AdminTTL, cfg.Session.SweepInterval, tp)
	defer adminTokens.Stop()
	adminSessions := session.NewAdminSessions(cfg.Session.AdminKey, adminTokens)
	memberSessions := session.NewService(cfg.Session.JWTSecret, cfg.Session.MemberTTL, tp)

	// Use cases
	classifier := entity.NewTagClassifier(cfg.Credits.PaidKeywords, cfg.Credits.PurchaseMin, cfg.Credits.PurchaseMax)
	directory := memberUseCase.NewDirectory(memberRepo, tp, appLogger)
	ledgerUC := ledgerUseCase.NewUseCase(uow, tp, appLogger, ledgerUseCase.Config{
		InitialFree: cfg.Credits.InitialFree,
		InitialPaid: cfg.Credits.InitialPaid,
		MonthlyFree: cfg.Credits.MonthlyFree,
		MonthlyPaid: cfg.Credits.MonthlyPaid,
	})
	meteringUC := meteringUseCase.NewUseCase(ledgerUC, appLogger)
	reconciler := reconcileUseCase.NewReconciler(directory, ledgerUC, classifier, platformClient, prom, tp, appLogger)

	// API handlers
	authHandler := handler.NewAuthHandler(reconciler, memberSessions, appLogger)
	creditsHandler := handler.NewCreditsHandler(meteringUC, cfg.Credits.HistoryPageSize, appLogger)
	adminHandler := handler.NewAdminHandler(
		adminSessions,
		int64(cfg.Session.AdminTTL.Seconds()),
		directory,
		ledgerUC,
		cfg.Credits.HistoryPageSize,
		appLogger,
	)
	healthHandler := handler.NewHealthHandler(db, appLogger)

	router := gin.New()
	routes.SetupMiddlewares(router, cfg.Server.AllowedOrigins, prom, appLogger)
	routes.SetupRoutes(
		router,
		authHandler,
		creditsHandler,
		adminHandler,
		healthHandler,
		memberSessions,
		adminSessions,
		prom,
		appLogger,
	)

	server := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	go func() {
		appLogger.Info("Starting server", map[string]any{
			"port": cfg.Server.Port,
			"env":  cfg.Environment,
		})

		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
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

// validateConfig ensures all required configuration values are present
func validateConfig(cfg *config.Config) error {
	var missing []string

	if cfg.Server.Port == 0 {
		missing = append(missing, "server.port")
	}
	if cfg.Server.ShutdownTimeout == 0 {
		missing = append(missing, "server.shutdownTimeout")
	}

	if cfg.Database.Host == "" {
		missing = append(missing, "database.host (or MC_DB_HOST environment variable)")
	}
	if cfg.Database.Username == "" {
		missing = append(missing, "database.username (or MC_DB_USERNAME environment variable)")
	}
	if cfg.Database.Database == "" {
		missing = append(missing, "database.database (or MC_DB_NAME environment variable)")
	}

	if cfg.Platform.BaseURL == "" {
		missing = append(missing, "platform.baseUrl (or MC_PLATFORM_BASE_URL environment variable)")
	}
	if cfg.Platform.APIToken == "" {
		missing = append(missing, "platform.apiToken (or MC_PLATFORM_API_TOKEN environment variable)")
	}

	if cfg.Session.JWTSecret == "" {
		missing = append(missing, "session.jwtSecret (or MC_SESSION_JWT_SECRET environment variable)")
	}

	if cfg.Environment != config.Development &&
		cfg.Environment != config.Production &&
		cfg.Environment != config.Test {
		return fmt.Errorf("invalid environment value: %s, must be one of: %s, %s, or %s",
			cfg.Environment, config.Development, config.Production, config.Test)
	}

	if len(missing) > 0 {
		return fmt.Errorf("missing required configurations: %v", missing)
	}
	return nil
}
