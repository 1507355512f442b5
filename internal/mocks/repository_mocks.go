// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/guttosm/fulfillment-service/internal/domain/model"
	"github.com/guttosm/fulfillment-service/internal/repository"
)

type MockStockRepositoryInterface struct {
	mock.Mock
}

func (m *MockStockRepositoryInterface) GetByProducts(ctx context.Context, productIDs []string) ([]model.LocationStock, error) {
	args := m.Called(ctx, productIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.LocationStock), args.Error(1)
}

func (m *MockStockRepositoryInterface) Upsert(ctx context.Context, items []model.LocationStock) error {
	args := m.Called(ctx, items)
	return args.Error(0)
}

func (m *MockStockRepositoryInterface) List(ctx context.Context, limit int) ([]model.LocationStock, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.LocationStock), args.Error(1)
}

type MockPackageTypesRepositoryInterface struct {
	mock.Mock
}

func (m *MockPackageTypesRepositoryInterface) GetActive(ctx context.Context) (*repository.PackageTypeConfig, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.PackageTypeConfig), args.Error(1)
}

func (m *MockPackageTypesRepositoryInterface) Create(ctx context.Context, types []model.PackageType, createdBy string) (*repository.PackageTypeConfig, error) {
	args := m.Called(ctx, types, createdBy)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.PackageTypeConfig), args.Error(1)
}

func (m *MockPackageTypesRepositoryInterface) List(ctx context.Context, limit int) ([]repository.PackageTypeConfig, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.PackageTypeConfig), args.Error(1)
}

type MockCourierRatesRepositoryInterface struct {
	mock.Mock
}

func (m *MockCourierRatesRepositoryInterface) GetActive(ctx context.Context) (*repository.CourierRateConfig, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.CourierRateConfig), args.Error(1)
}

func (m *MockCourierRatesRepositoryInterface) Create(ctx context.Context, slabs []model.CourierRateSlab, createdBy string) (*repository.CourierRateConfig, error) {
	args := m.Called(ctx, slabs, createdBy)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.CourierRateConfig), args.Error(1)
}

func (m *MockCourierRatesRepositoryInterface) List(ctx context.Context, limit int) ([]repository.CourierRateConfig, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.CourierRateConfig), args.Error(1)
}

type MockLogsRepositoryInterface struct {
	mock.Mock
}

func (m *MockLogsRepositoryInterface) Create(ctx context.Context, entry *repository.LogEntryDocument) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockLogsRepositoryInterface) CreateMany(ctx context.Context, entries []*repository.LogEntryDocument) error {
	args := m.Called(ctx, entries)
	return args.Error(0)
}

func (m *MockLogsRepositoryInterface) Query(ctx context.Context, opts repository.LogQueryOptions) ([]*repository.LogEntryDocument, error) {
	args := m.Called(ctx, opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*repository.LogEntryDocument), args.Error(1)
}

func (m *MockLogsRepositoryInterface) Count(ctx context.Context, opts repository.LogQueryOptions) (int64, error) {
	args := m.Called(ctx, opts)
	return args.Get(0).(int64), args.Error(1)
}
