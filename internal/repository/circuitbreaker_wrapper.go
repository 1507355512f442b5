// Package repository provides circuit breaker wrappers for MongoDB operations.
package repository

import (
	"context"

	"github.com/guttosm/fulfillment-service/internal/circuitbreaker"
	"github.com/guttosm/fulfillment-service/internal/domain/model"
)

// StockRepositoryWithCircuitBreaker wraps StockRepository with circuit breaker protection.
type StockRepositoryWithCircuitBreaker struct {
	repo           *StockRepository
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewStockRepositoryWithCircuitBreaker creates a new repository wrapper with circuit breaker.
func NewStockRepositoryWithCircuitBreaker(repo *StockRepository, cb *circuitbreaker.CircuitBreaker) *StockRepositoryWithCircuitBreaker {
	return &StockRepositoryWithCircuitBreaker{
		repo:           repo,
		circuitBreaker: cb,
	}
}

// GetByProducts returns stock rows with circuit breaker protection.
func (r *StockRepositoryWithCircuitBreaker) GetByProducts(ctx context.Context, productIDs []string) ([]model.LocationStock, error) {
	var result []model.LocationStock
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.GetByProducts(ctx, productIDs)
		return cbErr
	})
	return result, err
}

// Upsert replaces stock rows with circuit breaker protection.
func (r *StockRepositoryWithCircuitBreaker) Upsert(ctx context.Context, items []model.LocationStock) error {
	return r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.Upsert(ctx, items)
	})
}

// List returns stock rows with circuit breaker protection.
func (r *StockRepositoryWithCircuitBreaker) List(ctx context.Context, limit int) ([]model.LocationStock, error) {
	var result []model.LocationStock
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.List(ctx, limit)
		return cbErr
	})
	return result, err
}

// GetCircuitBreaker returns the underlying circuit breaker for monitoring.
func (r *StockRepositoryWithCircuitBreaker) GetCircuitBreaker() *circuitbreaker.CircuitBreaker {
	return r.circuitBreaker
}

// PackageTypesRepositoryWithCircuitBreaker wraps PackageTypesRepository with circuit breaker protection.
type PackageTypesRepositoryWithCircuitBreaker struct {
	repo           *PackageTypesRepository
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewPackageTypesRepositoryWithCircuitBreaker creates a new repository wrapper with circuit breaker.
func NewPackageTypesRepositoryWithCircuitBreaker(repo *PackageTypesRepository, cb *circuitbreaker.CircuitBreaker) *PackageTypesRepositoryWithCircuitBreaker {
	return &PackageTypesRepositoryWithCircuitBreaker{
		repo:           repo,
		circuitBreaker: cb,
	}
}

// GetActive returns the active package type configuration with circuit breaker protection.
func (r *PackageTypesRepositoryWithCircuitBreaker) GetActive(ctx context.Context) (*PackageTypeConfig, error) {
	var result *PackageTypeConfig
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.GetActive(ctx)
		return cbErr
	})
	if err == circuitbreaker.ErrCircuitOpen {
		// Circuit is open - return nil to use built-in defaults
		return nil, nil
	}
	return result, err
}

// Create inserts a new package type configuration with circuit breaker protection.
func (r *PackageTypesRepositoryWithCircuitBreaker) Create(ctx context.Context, types []model.PackageType, createdBy string) (*PackageTypeConfig, error) {
	var result *PackageTypeConfig
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.Create(ctx, types, createdBy)
		return cbErr
	})
	return result, err
}

// List returns package type configurations with circuit breaker protection.
func (r *PackageTypesRepositoryWithCircuitBreaker) List(ctx context.Context, limit int) ([]PackageTypeConfig, error) {
	var result []PackageTypeConfig
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.List(ctx, limit)
		return cbErr
	})
	return result, err
}

// GetCircuitBreaker returns the underlying circuit breaker for monitoring.
func (r *PackageTypesRepositoryWithCircuitBreaker) GetCircuitBreaker() *circuitbreaker.CircuitBreaker {
	return r.circuitBreaker
}

// CourierRatesRepositoryWithCircuitBreaker wraps CourierRatesRepository with circuit breaker protection.
type CourierRatesRepositoryWithCircuitBreaker struct {
	repo           *CourierRatesRepository
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewCourierRatesRepositoryWithCircuitBreaker creates a new repository wrapper with circuit breaker.
func NewCourierRatesRepositoryWithCircuitBreaker(repo *CourierRatesRepository, cb *circuitbreaker.CircuitBreaker) *CourierRatesRepositoryWithCircuitBreaker {
	return &CourierRatesRepositoryWithCircuitBreaker{
		repo:           repo,
		circuitBreaker: cb,
	}
}

// GetActive returns the active courier rate table with circuit breaker protection.
// An open circuit surfaces as an error: rate lookups must not silently fall back.
func (r *CourierRatesRepositoryWithCircuitBreaker) GetActive(ctx context.Context) (*CourierRateConfig, error) {
	var result *CourierRateConfig
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.GetActive(ctx)
		return cbErr
	})
	return result, err
}

// Create inserts a new courier rate table with circuit breaker protection.
func (r *CourierRatesRepositoryWithCircuitBreaker) Create(ctx context.Context, slabs []model.CourierRateSlab, createdBy string) (*CourierRateConfig, error) {
	var result *CourierRateConfig
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.Create(ctx, slabs, createdBy)
		return cbErr
	})
	return result, err
}

// List returns courier rate tables with circuit breaker protection.
func (r *CourierRatesRepositoryWithCircuitBreaker) List(ctx context.Context, limit int) ([]CourierRateConfig, error) {
	var result []CourierRateConfig
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.List(ctx, limit)
		return cbErr
	})
	return result, err
}

// GetCircuitBreaker returns the underlying circuit breaker for monitoring.
func (r *CourierRatesRepositoryWithCircuitBreaker) GetCircuitBreaker() *circuitbreaker.CircuitBreaker {
	return r.circuitBreaker
}

// LogsRepositoryWithCircuitBreaker wraps LogsRepository with circuit breaker protection.
type LogsRepositoryWithCircuitBreaker struct {
	repo           *LogsRepository
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewLogsRepositoryWithCircuitBreaker creates a new repository wrapper with circuit breaker.
func NewLogsRepositoryWithCircuitBreaker(repo *LogsRepository, cb *circuitbreaker.CircuitBreaker) *LogsRepositoryWithCircuitBreaker {
	return &LogsRepositoryWithCircuitBreaker{
		repo:           repo,
		circuitBreaker: cb,
	}
}

// Create stores a single log entry with circuit breaker protection.
// If circuit is open, silently fails (logging is non-critical).
func (r *LogsRepositoryWithCircuitBreaker) Create(ctx context.Context, entry *LogEntryDocument) error {
	err := r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.Create(ctx, entry)
	})
	if err == circuitbreaker.ErrCircuitOpen {
		return nil
	}
	return err
}

// CreateMany stores multiple log entries with circuit breaker protection.
// If circuit is open, silently fails (logging is non-critical).
func (r *LogsRepositoryWithCircuitBreaker) CreateMany(ctx context.Context, entries []*LogEntryDocument) error {
	err := r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.CreateMany(ctx, entries)
	})
	if err == circuitbreaker.ErrCircuitOpen {
		return nil
	}
	return err
}

// Query retrieves log entries with circuit breaker protection.
func (r *LogsRepositoryWithCircuitBreaker) Query(ctx context.Context, opts LogQueryOptions) ([]*LogEntryDocument, error) {
	var result []*LogEntryDocument
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.Query(ctx, opts)
		return cbErr
	})
	return result, err
}

// Count returns the count of log entries with circuit breaker protection.
func (r *LogsRepositoryWithCircuitBreaker) Count(ctx context.Context, opts LogQueryOptions) (int64, error) {
	var result int64
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.Count(ctx, opts)
		return cbErr
	})
	return result, err
}

// GetCircuitBreaker returns the underlying circuit breaker for monitoring.
func (r *LogsRepositoryWithCircuitBreaker) GetCircuitBreaker() *circuitbreaker.CircuitBreaker {
	return r.circuitBreaker
}
