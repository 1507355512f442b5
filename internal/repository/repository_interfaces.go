// Package repository provides interfaces for repository operations.
package repository

import (
	"context"

	"github.com/guttosm/fulfillment-service/internal/domain/model"
)

// StockRepositoryInterface defines the interface for stock snapshot operations.
type StockRepositoryInterface interface {
	GetByProducts(ctx context.Context, productIDs []string) ([]model.LocationStock, error)
	Upsert(ctx context.Context, items []model.LocationStock) error
	List(ctx context.Context, limit int) ([]model.LocationStock, error)
}

// PackageTypesRepositoryInterface defines the interface for package type configuration operations.
type PackageTypesRepositoryInterface interface {
	GetActive(ctx context.Context) (*PackageTypeConfig, error)
	Create(ctx context.Context, types []model.PackageType, createdBy string) (*PackageTypeConfig, error)
	List(ctx context.Context, limit int) ([]PackageTypeConfig, error)
}

// CourierRatesRepositoryInterface defines the interface for courier rate table operations.
type CourierRatesRepositoryInterface interface {
	GetActive(ctx context.Context) (*CourierRateConfig, error)
	Create(ctx context.Context, slabs []model.CourierRateSlab, createdBy string) (*CourierRateConfig, error)
	List(ctx context.Context, limit int) ([]CourierRateConfig, error)
}

// LogsRepositoryInterface defines the interface for logs repository operations.
type LogsRepositoryInterface interface {
	Create(ctx context.Context, entry *LogEntryDocument) error
	CreateMany(ctx context.Context, entries []*LogEntryDocument) error
	Query(ctx context.Context, opts LogQueryOptions) ([]*LogEntryDocument, error)
	Count(ctx context.Context, opts LogQueryOptions) (int64, error)
}
