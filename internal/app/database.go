// Package app provides database initialization and setup.
package app

import (
	"context"
	"time"

	"github.com/guttosm/quote-service/config"
	"github.com/guttosm/quote-service/internal/circuitbreaker"
	"github.com/guttosm/quote-service/internal/domain/model"
	"github.com/guttosm/quote-service/internal/middleware"
	"github.com/guttosm/quote-service/internal/repository"
	"github.com/guttosm/quote-service/internal/service"
	"github.com/rs/zerolog/log"
)

// DatabaseComponents holds database-related components.
type DatabaseComponents struct {
	DB                  *repository.MongoDB
	RatesRepo           repository.RatesRepositoryInterface
	LoggingService      service.LoggingService
	RatesCircuitBreaker *circuitbreaker.CircuitBreaker
	LogsCircuitBreaker  *circuitbreaker.CircuitBreaker
}

// InitializeDatabase initializes MongoDB connection and creates required repositories and services.
// Returns nil if database is disabled or connection fails.
func InitializeDatabase(cfg config.DatabaseConfig, defaultRates model.RateTable) *DatabaseComponents {
	if !cfg.Enabled {
		return nil
	}

	db, err := repository.NewMongoDB(cfg.URI, cfg.DatabaseName)
	if err != nil {
		log.Error().Err(err).Msg("Failed to connect to MongoDB - continuing without database")
		return nil
	}

	log.Info().Msg("Connected to MongoDB")

	// Set TTL for logs
	ttlDays := int(cfg.LogsTTL.Hours() / 24)
	if err := db.SetLogsTTL(context.Background(), ttlDays); err != nil {
		log.Warn().Err(err).Msg("Failed to set logs TTL index (may already exist)")
	}

	// Initialize circuit breakers
	ratesCB := circuitbreaker.New(circuitbreaker.Config{
		FailureThreshold: cfg.CircuitBreakerFailureThreshold,
		SuccessThreshold: cfg.CircuitBreakerSuccessThreshold,
		Timeout:          cfg.CircuitBreakerTimeout,
		Name:             "mongodb-rates",
	})

	logsCB := circuitbreaker.New(circuitbreaker.Config{
		FailureThreshold: cfg.CircuitBreakerFailureThreshold,
		SuccessThreshold: cfg.CircuitBreakerSuccessThreshold,
		Timeout:          cfg.CircuitBreakerTimeout,
		Name:             "mongodb-logs",
	})

	// Initialize repositories
	logsRepo := repository.NewLogsRepository(db)
	logsRepoWithCB := repository.NewLogsRepositoryWithCircuitBreaker(logsRepo, logsCB)
	loggingService := service.NewLoggingService(logsRepoWithCB)

	ratesRepo := repository.NewRatesRepository(db)
	ratesRepoWithCB := repository.NewRatesRepositoryWithCircuitBreaker(ratesRepo, ratesCB)

	// Start the async log writer worker pool
	middleware.InitAsyncLogger(loggingService, middleware.DefaultAsyncLoggerConfig())

	// Initialize default rate table if none exists
	if err := initializeDefaultRates(ratesRepoWithCB, defaultRates); err != nil {
		log.Warn().Err(err).Msg("Failed to initialize default rate table")
	}

	return &DatabaseComponents{
		DB:                  db,
		RatesRepo:           ratesRepoWithCB,
		LoggingService:      loggingService,
		RatesCircuitBreaker: ratesCB,
		LogsCircuitBreaker:  logsCB,
	}
}

// initializeDefaultRates creates a default rate table configuration if none exists.
func initializeDefaultRates(repo repository.RatesRepositoryInterface, defaults model.RateTable) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	active, err := repo.GetActive(ctx)
	if err != nil {
		return err
	}

	if active == nil {
		// No active config, create default
		if err := defaults.Validate(); err != nil {
			defaults = model.DefaultRateTable()
		}
		_, err := repo.Create(ctx, defaults, "system")
		if err != nil {
			return err
		}
		log.Info().
			Float64("base_price", defaults.BasePrice).
			Str("currency", defaults.Currency).
			Msg("Created default rate table")
	}

	return nil
}
