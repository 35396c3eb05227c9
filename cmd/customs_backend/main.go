package main

import (
	"context"
	"database/sql"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	memorystore "github.com/ulule/limiter/v3/drivers/store/memory"

	"github.com/klearr/customs-calculator/internal/core/domain"
	"github.com/klearr/customs-calculator/internal/core/services"
	"github.com/klearr/customs-calculator/internal/handlers"
	"github.com/klearr/customs-calculator/internal/middleware"
	"github.com/klearr/customs-calculator/internal/platform/scraper"
	"github.com/klearr/customs-calculator/internal/platform/seed"
	"github.com/klearr/customs-calculator/internal/repositories/database/pgsql"
	"github.com/klearr/customs-calculator/pkg/config"
	"github.com/klearr/customs-calculator/pkg/database"

	migrate "github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/jackc/pgx/v5/stdlib"
)

// @title Customs Calculator API
// @version 1.0
// @description Import duty and CIF valuation service for Jamaican customs declarations.

// @host localhost:8080
// @BasePath /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dbPool, err := database.NewPgxPool(ctx, cfg.DatabaseURL)
	if err != nil {
		logger.Error("Failed to initialize database pool", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer dbPool.Close()
	logger.Info("Database connection pool established.")

	if err := runMigrations(cfg, logger); err != nil {
		os.Exit(1)
	}

	// Repositories
	currencyRepo := pgsql.NewPgxCurrencyRepository(dbPool)
	rateRepo := pgsql.NewPgxFXRateRepository(dbPool)
	taxRepo := pgsql.NewPgxTaxRateRepository(dbPool)

	// Seed reference data; inserts skip rows that already exist.
	seeder := seed.NewSeeder(currencyRepo, rateRepo, taxRepo, cfg.SeedDataDir, logger)
	if err := seeder.Run(ctx); err != nil {
		logger.Error("Seed failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Services
	fetcher := scraper.NewBOJFetcher(cfg.BOJRatesURL, cfg.ScrapeHTTPTimeout, cfg.ScrapeMaxRetries, cfg.ScrapeRetryDelay)
	container := services.NewServiceContainer(
		cfg,
		currencyRepo,
		rateRepo,
		taxRepo,
		fetcher,
		domain.DefaultCurrencyTable(),
		domain.DefaultJamaicaCalendar(),
	)

	// Background rate refresh
	if cfg.DisableRateScraper {
		logger.Info("Rate scraper disabled by configuration")
	} else {
		scheduler := scraper.NewScheduler(container.FXRate, cfg.ScrapeInterval, cfg.ScrapeOnStartup, logger)
		go scheduler.Run(ctx)
	}

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	middleware.RegisterCustomValidators()

	// Global middleware (logging, recovery, CORS)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())
	r.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders: []string{"X-Request-ID"},
	}))

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	calcLimiter, err := newCalculationLimiter(cfg.CalculateRateLimit)
	if err != nil {
		logger.Error("Invalid calculation rate limit", slog.String("error", err.Error()))
		os.Exit(1)
	}

	handlers.RegisterRoutes(r, cfg, container, calcLimiter)

	logger.Info("Server starting", slog.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// newCalculationLimiter builds the per-IP limiter for the public calculation
// endpoints from its "count-period" notation (e.g. "60-M").
func newCalculationLimiter(formatted string) (*limiter.Limiter, error) {
	rate, err := limiter.NewRateFromFormatted(formatted)
	if err != nil {
		return nil, err
	}
	return limiter.New(memorystore.NewStore(), rate), nil
}

// runMigrations applies all pending migrations over a temporary database/sql
// connection. Using the pgx stdlib driver keeps it compatible with the pool.
func runMigrations(cfg *config.Config, logger *slog.Logger) error {
	logger.Info("Running database migrations...")

	migrationDB, err := sql.Open("pgx", cfg.DatabaseURL)
	if err != nil {
		logger.Error("Failed to open database connection for migrations", slog.String("error", err.Error()))
		return err
	}
	defer func() {
		if cerr := migrationDB.Close(); cerr != nil {
			logger.Error("Error closing migration DB connection", slog.String("error", cerr.Error()))
		}
	}()

	if err := migrationDB.Ping(); err != nil {
		logger.Error("Failed to ping database for migrations", slog.String("error", err.Error()))
		return err
	}

	driver, err := postgres.WithInstance(migrationDB, &postgres.Config{})
	if err != nil {
		logger.Error("Could not create postgres driver instance for migrations", slog.String("error", err.Error()))
		return err
	}

	m, err := migrate.NewWithDatabaseInstance("file://migrations", "postgres", driver)
	if err != nil {
		logger.Error("Could not create migrate instance", slog.String("error", err.Error()))
		return err
	}

	err = m.Up()
	if err != nil && err != migrate.ErrNoChange {
		logger.Error("Failed to apply migrations", slog.String("error", err.Error()))
		return err
	}

	sourceErr, dbErr := m.Close()
	if sourceErr != nil {
		logger.Error("Migration source error", slog.String("error", sourceErr.Error()))
		return sourceErr
	}
	if dbErr != nil {
		logger.Error("Migration database error", slog.String("error", dbErr.Error()))
		return dbErr
	}

	if err == migrate.ErrNoChange {
		logger.Info("No new migrations to apply.")
	} else {
		logger.Info("Database migrations applied successfully.")
	}
	return nil
}
