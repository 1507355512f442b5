package service

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/guttosm/fulfillment-service/internal/domain/model"
	"github.com/guttosm/fulfillment-service/internal/repository"
)

// ReferenceDataService defines the interface for managing the optimizer's
// reference data: package types, courier rate tables and stock snapshots.
type ReferenceDataService interface {
	// ActivePackageTypes returns the active package type set, falling back
	// to the built-in defaults when no configuration is active or the
	// store is unavailable.
	ActivePackageTypes(ctx context.Context) []model.PackageType

	// UpdatePackageTypes replaces the active package type configuration.
	UpdatePackageTypes(ctx context.Context, types []model.PackageType, createdBy string) (*repository.PackageTypeConfig, error)
	// ListPackageTypeConfigs returns package type configurations, newest first.
	ListPackageTypeConfigs(ctx context.Context, limit int) ([]repository.PackageTypeConfig, error)

	// ActiveCourierRates returns the active courier rate table, or an
	// empty slice when no table has been configured.
	ActiveCourierRates(ctx context.Context) ([]model.CourierRateSlab, error)
	// UpdateCourierRates replaces the active courier rate table and
	// invalidates cached quotes.
	UpdateCourierRates(ctx context.Context, slabs []model.CourierRateSlab, createdBy string) (*repository.CourierRateConfig, error)
	// ListCourierRateConfigs returns courier rate tables, newest first.
	ListCourierRateConfigs(ctx context.Context, limit int) ([]repository.CourierRateConfig, error)

	// UpsertStock replaces stock snapshot rows.
	UpsertStock(ctx context.Context, items []model.LocationStock) error
	// ListStock returns stock snapshot rows.
	ListStock(ctx context.Context, limit int) ([]model.LocationStock, error)
}

// ReferenceDataServiceImpl implements ReferenceDataService on top of the
// Mongo repositories.
type ReferenceDataServiceImpl struct {
	packageTypes repository.PackageTypesRepositoryInterface
	courierRates repository.CourierRatesRepositoryInterface
	stock        repository.StockRepositoryInterface
	rates        CourierRateResolver
	defaults     []model.PackageType
}

// NewReferenceDataService creates a new reference data service. The rate
// resolver may be nil; when present its quote cache is invalidated after
// every rate table update.
func NewReferenceDataService(
	packageTypes repository.PackageTypesRepositoryInterface,
	courierRates repository.CourierRatesRepositoryInterface,
	stock repository.StockRepositoryInterface,
	rates CourierRateResolver,
) *ReferenceDataServiceImpl {
	return &ReferenceDataServiceImpl{
		packageTypes: packageTypes,
		courierRates: courierRates,
		stock:        stock,
		rates:        rates,
		defaults:     DefaultPackageTypes,
	}
}

// ActivePackageTypes returns the active package type set or the defaults.
// Store errors degrade to defaults so an optimization run can still proceed.
func (s *ReferenceDataServiceImpl) ActivePackageTypes(ctx context.Context) []model.PackageType {
	if s.packageTypes == nil {
		return s.defaults
	}

	config, err := s.packageTypes.GetActive(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("Failed to load package types, using defaults")
		return s.defaults
	}
	if config == nil {
		return s.defaults
	}

	types, err := config.PackageTypes()
	if err != nil {
		log.Warn().Err(err).Msg("Failed to decode package types, using defaults")
		return s.defaults
	}
	if len(types) == 0 {
		return s.defaults
	}
	return types
}

// UpdatePackageTypes replaces the active package type configuration.
func (s *ReferenceDataServiceImpl) UpdatePackageTypes(ctx context.Context, types []model.PackageType, createdBy string) (*repository.PackageTypeConfig, error) {
	return s.packageTypes.Create(ctx, types, createdBy)
}

// ListPackageTypeConfigs returns package type configurations, newest first.
func (s *ReferenceDataServiceImpl) ListPackageTypeConfigs(ctx context.Context, limit int) ([]repository.PackageTypeConfig, error) {
	return s.packageTypes.List(ctx, limit)
}

// ActiveCourierRates returns the active courier rate table. Unlike package
// types there is no defaults fallback; couriers cannot be guessed.
func (s *ReferenceDataServiceImpl) ActiveCourierRates(ctx context.Context) ([]model.CourierRateSlab, error) {
	if s.courierRates == nil {
		return nil, nil
	}

	config, err := s.courierRates.GetActive(ctx)
	if err != nil {
		return nil, err
	}
	if config == nil {
		return []model.CourierRateSlab{}, nil
	}
	return config.RateSlabs()
}

// UpdateCourierRates replaces the active courier rate table. Cached quotes
// are invalidated so the new table takes effect immediately.
func (s *ReferenceDataServiceImpl) UpdateCourierRates(ctx context.Context, slabs []model.CourierRateSlab, createdBy string) (*repository.CourierRateConfig, error) {
	config, err := s.courierRates.Create(ctx, slabs, createdBy)
	if err != nil {
		return nil, err
	}
	if s.rates != nil {
		s.rates.InvalidateCache()
	}
	return config, nil
}

// ListCourierRateConfigs returns courier rate tables, newest first.
func (s *ReferenceDataServiceImpl) ListCourierRateConfigs(ctx context.Context, limit int) ([]repository.CourierRateConfig, error) {
	return s.courierRates.List(ctx, limit)
}

// UpsertStock replaces stock snapshot rows.
func (s *ReferenceDataServiceImpl) UpsertStock(ctx context.Context, items []model.LocationStock) error {
	return s.stock.Upsert(ctx, items)
}

// ListStock returns stock snapshot rows.
func (s *ReferenceDataServiceImpl) ListStock(ctx context.Context, limit int) ([]model.LocationStock, error) {
	return s.stock.List(ctx, limit)
}
