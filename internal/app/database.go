// Package app provides database initialization and setup.
package app

import (
	"context"

	"github.com/guttosm/fulfillment-service/config"
	"github.com/guttosm/fulfillment-service/internal/circuitbreaker"
	"github.com/guttosm/fulfillment-service/internal/repository"
	"github.com/guttosm/fulfillment-service/internal/service"
	"github.com/rs/zerolog/log"
)

// DatabaseComponents holds database-related components.
type DatabaseComponents struct {
	DB               *repository.MongoDB
	StockRepo        repository.StockRepositoryInterface
	PackageTypesRepo repository.PackageTypesRepositoryInterface
	CourierRatesRepo repository.CourierRatesRepositoryInterface
	LoggingService   service.LoggingService

	StockCircuitBreaker        *circuitbreaker.CircuitBreaker
	PackageTypesCircuitBreaker *circuitbreaker.CircuitBreaker
	CourierRatesCircuitBreaker *circuitbreaker.CircuitBreaker
	LogsCircuitBreaker         *circuitbreaker.CircuitBreaker
}

// InitializeDatabase initializes MongoDB connection and creates required repositories and services.
// Returns nil if database is disabled or connection fails.
func InitializeDatabase(cfg config.DatabaseConfig) *DatabaseComponents {
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

	newBreaker := func(name string) *circuitbreaker.CircuitBreaker {
		return circuitbreaker.New(circuitbreaker.Config{
			FailureThreshold: cfg.CircuitBreakerFailureThreshold,
			SuccessThreshold: cfg.CircuitBreakerSuccessThreshold,
			Timeout:          cfg.CircuitBreakerTimeout,
			Name:             name,
		})
	}

	stockCB := newBreaker("mongodb-stock")
	packageTypesCB := newBreaker("mongodb-package-types")
	courierRatesCB := newBreaker("mongodb-courier-rates")
	logsCB := newBreaker("mongodb-logs")

	logsRepo := repository.NewLogsRepository(db)
	loggingService := service.NewLoggingService(repository.NewLogsRepositoryWithCircuitBreaker(logsRepo, logsCB))

	stockRepo := repository.NewStockRepositoryWithCircuitBreaker(repository.NewStockRepository(db), stockCB)
	packageTypesRepo := repository.NewPackageTypesRepositoryWithCircuitBreaker(repository.NewPackageTypesRepository(db), packageTypesCB)
	courierRatesRepo := repository.NewCourierRatesRepositoryWithCircuitBreaker(repository.NewCourierRatesRepository(db), courierRatesCB)

	return &DatabaseComponents{
		DB:               db,
		StockRepo:        stockRepo,
		PackageTypesRepo: packageTypesRepo,
		CourierRatesRepo: courierRatesRepo,
		LoggingService:   loggingService,

		StockCircuitBreaker:        stockCB,
		PackageTypesCircuitBreaker: packageTypesCB,
		CourierRatesCircuitBreaker: courierRatesCB,
		LogsCircuitBreaker:         logsCB,
	}
}
