package service

import (
	"context"
	"errors"
	"sort"

	"github.com/guttosm/fulfillment-service/internal/domain/model"
	"github.com/guttosm/fulfillment-service/internal/repository"
)

// ErrStockSourceUnavailable is returned when the stock snapshot cannot be read.
var ErrStockSourceUnavailable = errors.New("stock source unavailable")

// ErrInvalidDemand is returned when the demand set is empty or contains a
// non-positive quantity. Validated before any lookup happens.
var ErrInvalidDemand = errors.New("demands must be non-empty with positive quantities")

// StockSnapshot maps locationID -> productID -> stock row. It is read once
// per optimization run and never mutated afterwards.
type StockSnapshot map[string]map[string]model.LocationStock

// Locations returns the snapshot's location IDs in sorted order.
func (s StockSnapshot) Locations() []string {
	ids := make([]string, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Available returns the available quantity of a product at a location.
func (s StockSnapshot) Available(locationID, productID string) int {
	if rows, ok := s[locationID]; ok {
		return rows[productID].Available
	}
	return 0
}

// StockResolver defines the interface for stock availability resolution.
type StockResolver interface {
	// Resolve returns the per-location availability snapshot for the given
	// demands. Locations with no matching stock are absent from the result.
	Resolve(ctx context.Context, demands []model.ProductDemand) (StockSnapshot, error)
}

// StockResolverService implements StockResolver on top of the stock repository.
type StockResolverService struct {
	repo repository.StockRepositoryInterface
}

// NewStockResolverService creates a new stock resolver.
func NewStockResolverService(repo repository.StockRepositoryInterface) *StockResolverService {
	return &StockResolverService{repo: repo}
}

// Resolve reads the availability snapshot for the demanded products.
// Total-shortfall detection is deferred to the candidate generator; a product
// with zero availability everywhere is simply absent from every location.
func (s *StockResolverService) Resolve(ctx context.Context, demands []model.ProductDemand) (StockSnapshot, error) {
	if len(demands) == 0 {
		return nil, ErrInvalidDemand
	}
	productIDs := make([]string, 0, len(demands))
	for _, d := range demands {
		if d.Quantity <= 0 {
			return nil, ErrInvalidDemand
		}
		productIDs = append(productIDs, d.ProductID)
	}
	sort.Strings(productIDs)

	if s.repo == nil {
		return nil, ErrStockSourceUnavailable
	}

	rows, err := s.repo.GetByProducts(ctx, productIDs)
	if err != nil {
		return nil, err
	}

	snapshot := make(StockSnapshot)
	for _, row := range rows {
		if row.Available <= 0 {
			continue
		}
		if _, ok := snapshot[row.LocationID]; !ok {
			snapshot[row.LocationID] = make(map[string]model.LocationStock)
		}
		snapshot[row.LocationID][row.ProductID] = row
	}
	return snapshot, nil
}
