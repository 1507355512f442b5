//go:build integration

package repository

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/fulfillment-service/internal/domain/model"
)

func TestPackageTypesRepository_Integration(t *testing.T) {
	t.Parallel()
	db := setupTestDBFromSharedContainer(t)
	defer func() {
		_ = db.Close(context.Background())
	}()

	repo := NewPackageTypesRepository(db)
	ctx := context.Background()

	t.Run("no active configuration returns nil", func(t *testing.T) {
		config, err := repo.GetActive(ctx)
		require.NoError(t, err)
		assert.Nil(t, config)
	})

	first := []model.PackageType{
		{PackageID: "BOX-S", MaxWeight: 5, Dims: model.Dimensions{Length: 25, Breadth: 20, Height: 15}, CapacityUnits: 4, CostPerUse: decimal.NewFromFloat(1.50)},
	}
	second := []model.PackageType{
		{PackageID: "BOX-M", LocationID: "WH-BLR", MaxWeight: 15, Dims: model.Dimensions{Length: 45, Breadth: 35, Height: 25}, CapacityUnits: 10, CostPerUse: decimal.NewFromFloat(2.75)},
	}

	t.Run("create activates and deactivates previous", func(t *testing.T) {
		_, err := repo.Create(ctx, first, "ops@example.com")
		require.NoError(t, err)
		_, err = repo.Create(ctx, second, "ops@example.com")
		require.NoError(t, err)

		active, err := repo.GetActive(ctx)
		require.NoError(t, err)
		require.NotNil(t, active)
		assert.True(t, active.Active)
		assert.Equal(t, "ops@example.com", active.CreatedBy)

		types, err := active.PackageTypes()
		require.NoError(t, err)
		require.Len(t, types, 1)
		// The decimal survives the string round-trip exactly.
		assert.Equal(t, "BOX-M", types[0].PackageID)
		assert.Equal(t, "WH-BLR", types[0].LocationID)
		assert.True(t, types[0].CostPerUse.Equal(decimal.NewFromFloat(2.75)))
	})

	t.Run("list returns newest first", func(t *testing.T) {
		configs, err := repo.List(ctx, 0)
		require.NoError(t, err)
		require.Len(t, configs, 2)
		assert.True(t, configs[0].Active)
		assert.False(t, configs[1].Active)

		limited, err := repo.List(ctx, 1)
		require.NoError(t, err)
		assert.Len(t, limited, 1)
	})
}
