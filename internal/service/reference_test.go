package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/fulfillment-service/internal/domain/model"
	"github.com/guttosm/fulfillment-service/internal/mocks"
	"github.com/guttosm/fulfillment-service/internal/repository"
)

func TestReferenceDataService_ActivePackageTypes(t *testing.T) {
	custom := []model.PackageType{
		{PackageID: "CRATE", MaxWeight: 50, CapacityUnits: 40, CostPerUse: decimal.NewFromFloat(9.00)},
	}

	tests := []struct {
		name       string
		setupMocks func(*mocks.MockPackageTypesRepositoryInterface)
		nilRepo    bool
		wantIDs    []string
	}{
		{
			name:    "nil repository falls back to defaults",
			nilRepo: true,
			wantIDs: []string{"BOX-S", "BOX-M", "BOX-L"},
		},
		{
			name: "store error falls back to defaults",
			setupMocks: func(repo *mocks.MockPackageTypesRepositoryInterface) {
				repo.On("GetActive", mock.Anything).Return(nil, errors.New("server selection timeout"))
			},
			wantIDs: []string{"BOX-S", "BOX-M", "BOX-L"},
		},
		{
			name: "no active configuration falls back to defaults",
			setupMocks: func(repo *mocks.MockPackageTypesRepositoryInterface) {
				repo.On("GetActive", mock.Anything).Return(nil, nil)
			},
			wantIDs: []string{"BOX-S", "BOX-M", "BOX-L"},
		},
		{
			name: "empty configuration falls back to defaults",
			setupMocks: func(repo *mocks.MockPackageTypesRepositoryInterface) {
				repo.On("GetActive", mock.Anything).Return(repository.NewPackageTypeConfig(nil, "test"), nil)
			},
			wantIDs: []string{"BOX-S", "BOX-M", "BOX-L"},
		},
		{
			name: "active configuration is used",
			setupMocks: func(repo *mocks.MockPackageTypesRepositoryInterface) {
				repo.On("GetActive", mock.Anything).Return(repository.NewPackageTypeConfig(custom, "test"), nil)
			},
			wantIDs: []string{"CRATE"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var service *ReferenceDataServiceImpl
			if tt.nilRepo {
				service = NewReferenceDataService(nil, nil, nil, nil)
			} else {
				repo := new(mocks.MockPackageTypesRepositoryInterface)
				tt.setupMocks(repo)
				service = NewReferenceDataService(repo, nil, nil, nil)
			}

			types := service.ActivePackageTypes(context.Background())

			ids := make([]string, 0, len(types))
			for _, pt := range types {
				ids = append(ids, pt.PackageID)
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

func TestReferenceDataService_UpdatePackageTypes(t *testing.T) {
	repo := new(mocks.MockPackageTypesRepositoryInterface)
	types := []model.PackageType{{PackageID: "BOX-S", MaxWeight: 5, CapacityUnits: 4, CostPerUse: decimal.NewFromFloat(1.50)}}
	config := repository.NewPackageTypeConfig(types, "ops@example.com")
	repo.On("Create", mock.Anything, types, "ops@example.com").Return(config, nil)

	service := NewReferenceDataService(repo, nil, nil, nil)
	got, err := service.UpdatePackageTypes(context.Background(), types, "ops@example.com")

	require.NoError(t, err)
	assert.Equal(t, config, got)
	repo.AssertExpectations(t)
}

func TestReferenceDataService_ActiveCourierRates(t *testing.T) {
	t.Run("nil repository returns nil", func(t *testing.T) {
		service := NewReferenceDataService(nil, nil, nil, nil)
		slabs, err := service.ActiveCourierRates(context.Background())
		require.NoError(t, err)
		assert.Nil(t, slabs)
	})

	t.Run("no active table returns empty slice", func(t *testing.T) {
		repo := new(mocks.MockCourierRatesRepositoryInterface)
		repo.On("GetActive", mock.Anything).Return(nil, nil)

		service := NewReferenceDataService(nil, repo, nil, nil)
		slabs, err := service.ActiveCourierRates(context.Background())
		require.NoError(t, err)
		assert.Empty(t, slabs)
	})

	t.Run("store error propagates", func(t *testing.T) {
		repo := new(mocks.MockCourierRatesRepositoryInterface)
		repo.On("GetActive", mock.Anything).Return(nil, errors.New("server selection timeout"))

		service := NewReferenceDataService(nil, repo, nil, nil)
		_, err := service.ActiveCourierRates(context.Background())
		assert.Error(t, err)
	})

	t.Run("active table round-trips", func(t *testing.T) {
		stored := testRateSlabs()
		repo := new(mocks.MockCourierRatesRepositoryInterface)
		repo.On("GetActive", mock.Anything).Return(repository.NewCourierRateConfig(stored, "test"), nil)

		service := NewReferenceDataService(nil, repo, nil, nil)
		slabs, err := service.ActiveCourierRates(context.Background())
		require.NoError(t, err)
		require.Len(t, slabs, len(stored))
		assert.Equal(t, stored[0].CourierID, slabs[0].CourierID)
		assert.True(t, slabs[0].Rate.Equal(stored[0].Rate))
	})
}

func TestReferenceDataService_UpdateCourierRates_InvalidatesQuoteCache(t *testing.T) {
	// Resolve once to warm the cache, update the rate table, then resolve
	// again: the second resolve must hit the repository.
	ratesRepo := newRatesRepoWith(testRateSlabs())
	resolver := NewRateResolverService(ratesRepo, WithQuoteCache(100, time.Minute))

	_, err := resolver.Resolve(context.Background(), "WH-BLR", "560001", 8, false)
	require.NoError(t, err)

	courierRepo := new(mocks.MockCourierRatesRepositoryInterface)
	newSlabs := testRateSlabs()
	courierRepo.On("Create", mock.Anything, newSlabs, "ops@example.com").
		Return(repository.NewCourierRateConfig(newSlabs, "ops@example.com"), nil)

	service := NewReferenceDataService(nil, courierRepo, nil, resolver)
	_, err = service.UpdateCourierRates(context.Background(), newSlabs, "ops@example.com")
	require.NoError(t, err)

	_, err = resolver.Resolve(context.Background(), "WH-BLR", "560001", 8, false)
	require.NoError(t, err)
	ratesRepo.AssertNumberOfCalls(t, "GetActive", 2)
}

func TestReferenceDataService_UpdateCourierRates_StoreFailureSkipsInvalidation(t *testing.T) {
	courierRepo := new(mocks.MockCourierRatesRepositoryInterface)
	slabs := testRateSlabs()
	courierRepo.On("Create", mock.Anything, slabs, "").Return(nil, errors.New("write concern error"))

	service := NewReferenceDataService(nil, courierRepo, nil, nil)
	_, err := service.UpdateCourierRates(context.Background(), slabs, "")

	assert.Error(t, err)
}

func TestReferenceDataService_StockPassthrough(t *testing.T) {
	stockRepo := new(mocks.MockStockRepositoryInterface)
	items := []model.LocationStock{
		{LocationID: "WH-BLR", ProductID: "P1", Available: 5, UnitWeight: 2},
	}
	stockRepo.On("Upsert", mock.Anything, items).Return(nil)
	stockRepo.On("List", mock.Anything, 10).Return(items, nil)

	service := NewReferenceDataService(nil, nil, stockRepo, nil)

	require.NoError(t, service.UpsertStock(context.Background(), items))
	rows, err := service.ListStock(context.Background(), 10)
	require.NoError(t, err)
	assert.Equal(t, items, rows)
	stockRepo.AssertExpectations(t)
}

func TestReferenceDataService_ListConfigs(t *testing.T) {
	pkgRepo := new(mocks.MockPackageTypesRepositoryInterface)
	pkgRepo.On("List", mock.Anything, 5).Return([]repository.PackageTypeConfig{{Version: 1}}, nil)
	courierRepo := new(mocks.MockCourierRatesRepositoryInterface)
	courierRepo.On("List", mock.Anything, 0).Return([]repository.CourierRateConfig{{Version: 1}, {Version: 2}}, nil)

	service := NewReferenceDataService(pkgRepo, courierRepo, nil, nil)

	pkgConfigs, err := service.ListPackageTypeConfigs(context.Background(), 5)
	require.NoError(t, err)
	assert.Len(t, pkgConfigs, 1)

	rateConfigs, err := service.ListCourierRateConfigs(context.Background(), 0)
	require.NoError(t, err)
	assert.Len(t, rateConfigs, 2)
}
