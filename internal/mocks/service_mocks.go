// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/guttosm/fulfillment-service/internal/domain/dto"
	"github.com/guttosm/fulfillment-service/internal/domain/model"
	"github.com/guttosm/fulfillment-service/internal/repository"
)

type MockFulfillmentOptimizer struct {
	mock.Mock
}

func (m *MockFulfillmentOptimizer) Optimize(ctx context.Context, req dto.OptimizeFulfillmentRequest) (*dto.OptimizationResult, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.OptimizationResult), args.Error(1)
}

func (m *MockFulfillmentOptimizer) CalculateShipping(ctx context.Context, req dto.CalculateShippingRequest) (*dto.ShippingResult, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ShippingResult), args.Error(1)
}

type MockReferenceDataService struct {
	mock.Mock
}

func (m *MockReferenceDataService) ActivePackageTypes(ctx context.Context) []model.PackageType {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]model.PackageType)
}

func (m *MockReferenceDataService) UpdatePackageTypes(ctx context.Context, types []model.PackageType, createdBy string) (*repository.PackageTypeConfig, error) {
	args := m.Called(ctx, types, createdBy)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.PackageTypeConfig), args.Error(1)
}

func (m *MockReferenceDataService) ListPackageTypeConfigs(ctx context.Context, limit int) ([]repository.PackageTypeConfig, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.PackageTypeConfig), args.Error(1)
}

func (m *MockReferenceDataService) ActiveCourierRates(ctx context.Context) ([]model.CourierRateSlab, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.CourierRateSlab), args.Error(1)
}

func (m *MockReferenceDataService) UpdateCourierRates(ctx context.Context, slabs []model.CourierRateSlab, createdBy string) (*repository.CourierRateConfig, error) {
	args := m.Called(ctx, slabs, createdBy)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.CourierRateConfig), args.Error(1)
}

func (m *MockReferenceDataService) ListCourierRateConfigs(ctx context.Context, limit int) ([]repository.CourierRateConfig, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.CourierRateConfig), args.Error(1)
}

func (m *MockReferenceDataService) UpsertStock(ctx context.Context, items []model.LocationStock) error {
	args := m.Called(ctx, items)
	return args.Error(0)
}

func (m *MockReferenceDataService) ListStock(ctx context.Context, limit int) ([]model.LocationStock, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.LocationStock), args.Error(1)
}

type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Login(ctx context.Context, email, password string) (*dto.LoginResponse, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.LoginResponse), args.Error(1)
}

func (m *MockAuthService) ValidateToken(ctx context.Context, tokenString string) (*dto.Claims, error) {
	args := m.Called(ctx, tokenString)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.Claims), args.Error(1)
}

type MockLoggingService struct {
	mock.Mock
}

func (m *MockLoggingService) CreateLog(ctx context.Context, entry *model.LogEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockLoggingService) CreateLogs(ctx context.Context, entries []*model.LogEntry) error {
	args := m.Called(ctx, entries)
	return args.Error(0)
}

func (m *MockLoggingService) QueryLogs(ctx context.Context, opts model.LogQueryOptions) ([]model.LogEntry, error) {
	args := m.Called(ctx, opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.LogEntry), args.Error(1)
}

func (m *MockLoggingService) CountLogs(ctx context.Context, opts model.LogQueryOptions) (int64, error) {
	args := m.Called(ctx, opts)
	return args.Get(0).(int64), args.Error(1)
}
