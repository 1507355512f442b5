//go:build integration

package app

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/fulfillment-service/config"
	"github.com/guttosm/fulfillment-service/internal/domain/model"
)

func TestInitializeDatabase_Integration(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	// Use shared container with unique database names for each subtest
	uri := getSharedContainerURI()

	t.Run("initialize with enabled database", func(t *testing.T) {
		t.Parallel()
		dbName := sanitizeDBNameForApp(t.Name())
		cfg := config.DatabaseConfig{
			URI:                            uri,
			DatabaseName:                   dbName,
			LogsTTL:                        30 * 24 * time.Hour,
			Enabled:                        true,
			CircuitBreakerFailureThreshold: 5,
			CircuitBreakerSuccessThreshold: 2,
			CircuitBreakerTimeout:          30 * time.Second,
		}

		components := InitializeDatabase(cfg)

		require.NotNil(t, components)
		assert.NotNil(t, components.StockRepo)
		assert.NotNil(t, components.PackageTypesRepo)
		assert.NotNil(t, components.CourierRatesRepo)
		assert.NotNil(t, components.LoggingService)
		assert.NotNil(t, components.StockCircuitBreaker)
		assert.NotNil(t, components.LogsCircuitBreaker)

		// Repositories are usable through the circuit breaker wrappers.
		err := components.StockRepo.Upsert(ctx, []model.LocationStock{
			{LocationID: "WH-BLR", ProductID: "P1", Available: 5, UnitWeight: 2},
		})
		require.NoError(t, err)

		rows, err := components.StockRepo.List(ctx, 0)
		require.NoError(t, err)
		assert.Len(t, rows, 1)
	})

	t.Run("initialize with disabled database", func(t *testing.T) {
		t.Parallel()
		components := InitializeDatabase(config.DatabaseConfig{Enabled: false})
		assert.Nil(t, components)
	})
}
