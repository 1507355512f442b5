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

// testRateSlabs builds a two-courier table for one origin. Bluedart covers
// 56xxxx postcodes in two brackets; delhivery covers only 560xxx with a
// single bracket and a COD surcharge.
func testRateSlabs() []model.CourierRateSlab {
	return []model.CourierRateSlab{
		{
			CourierID: "bluedart", OriginLocationID: "WH-BLR",
			MinWeight: 0, MaxWeight: 10,
			Rate:                       decimal.NewFromFloat(50),
			CODSurcharge:               decimal.NewFromFloat(10),
			ServiceablePostcodePattern: `^56\d{4}$`,
			EstimatedDays:              3,
		},
		{
			CourierID: "bluedart", OriginLocationID: "WH-BLR",
			MinWeight: 10, MaxWeight: 20,
			Rate:                       decimal.NewFromFloat(80),
			CODSurcharge:               decimal.NewFromFloat(10),
			ServiceablePostcodePattern: `^56\d{4}$`,
			EstimatedDays:              3,
		},
		{
			CourierID: "delhivery", OriginLocationID: "WH-BLR",
			MinWeight: 0, MaxWeight: 20,
			Rate:                       decimal.NewFromFloat(65),
			CODSurcharge:               decimal.NewFromFloat(15),
			ServiceablePostcodePattern: `^560\d{3}$`,
			EstimatedDays:              2,
		},
	}
}

func newRatesRepoWith(slabs []model.CourierRateSlab) *mocks.MockCourierRatesRepositoryInterface {
	repo := new(mocks.MockCourierRatesRepositoryInterface)
	repo.On("GetActive", mock.Anything).Return(repository.NewCourierRateConfig(slabs, "test"), nil)
	return repo
}

func TestRateResolverService_Resolve_BracketPricing(t *testing.T) {
	resolver := NewRateResolverService(newRatesRepoWith(testRateSlabs()))

	quotes, err := resolver.Resolve(context.Background(), "WH-BLR", "560001", 8, false)

	require.NoError(t, err)
	require.Len(t, quotes, 2)
	// Cheapest first.
	assert.Equal(t, "bluedart", quotes[0].CourierID)
	assert.True(t, quotes[0].Price.Equal(decimal.NewFromFloat(50)))
	assert.Equal(t, "delhivery", quotes[1].CourierID)
	assert.True(t, quotes[1].Price.Equal(decimal.NewFromFloat(65)))
	assert.False(t, quotes[0].CODApplied)
}

func TestRateResolverService_Resolve_BoundaryWeightBelongsToLowerBracket(t *testing.T) {
	resolver := NewRateResolverService(newRatesRepoWith(testRateSlabs()))

	quotes, err := resolver.Resolve(context.Background(), "WH-BLR", "560001", 10, false)

	require.NoError(t, err)
	require.NotEmpty(t, quotes)
	// Exactly 10kg prices at the 0-10 bracket, not 10-20.
	assert.Equal(t, "bluedart", quotes[0].CourierID)
	assert.True(t, quotes[0].Price.Equal(decimal.NewFromFloat(50)))
}

func TestRateResolverService_Resolve_OverweightExtrapolation(t *testing.T) {
	resolver := NewRateResolverService(newRatesRepoWith(testRateSlabs()))

	// 25kg is above every bracket. Bluedart top bracket: 80 at 20kg, so the
	// extrapolated price is 80 + (80/20)*5 = 100. Delhivery: 65 + (65/20)*5
	// = 81.25.
	quotes, err := resolver.Resolve(context.Background(), "WH-BLR", "560001", 25, false)

	require.NoError(t, err)
	require.Len(t, quotes, 2)
	assert.Equal(t, "delhivery", quotes[0].CourierID)
	assert.True(t, quotes[0].Price.Equal(decimal.NewFromFloat(81.25)), "got %s", quotes[0].Price)
	assert.Equal(t, "bluedart", quotes[1].CourierID)
	assert.True(t, quotes[1].Price.Equal(decimal.NewFromFloat(100)), "got %s", quotes[1].Price)
}

func TestRateResolverService_Resolve_CODSurcharge(t *testing.T) {
	resolver := NewRateResolverService(newRatesRepoWith(testRateSlabs()))

	quotes, err := resolver.Resolve(context.Background(), "WH-BLR", "560001", 8, true)

	require.NoError(t, err)
	require.Len(t, quotes, 2)
	// 50+10 vs 65+15.
	assert.Equal(t, "bluedart", quotes[0].CourierID)
	assert.True(t, quotes[0].Price.Equal(decimal.NewFromFloat(60)))
	assert.True(t, quotes[0].CODApplied)
	assert.True(t, quotes[1].Price.Equal(decimal.NewFromFloat(80)))
}

func TestRateResolverService_Resolve_ServiceabilityFiltering(t *testing.T) {
	resolver := NewRateResolverService(newRatesRepoWith(testRateSlabs()))

	// 561234 matches bluedart's ^56\d{4}$ but not delhivery's ^560\d{3}$.
	quotes, err := resolver.Resolve(context.Background(), "WH-BLR", "561234", 8, false)

	require.NoError(t, err)
	require.Len(t, quotes, 1)
	assert.Equal(t, "bluedart", quotes[0].CourierID)
}

func TestRateResolverService_Resolve_NoServiceableCourier(t *testing.T) {
	resolver := NewRateResolverService(newRatesRepoWith(testRateSlabs()))

	quotes, err := resolver.Resolve(context.Background(), "WH-BLR", "110001", 8, false)

	require.NoError(t, err)
	assert.Empty(t, quotes)
}

func TestRateResolverService_Resolve_InvalidPatternExcludesCourier(t *testing.T) {
	slabs := testRateSlabs()
	slabs[0].ServiceablePostcodePattern = `^56[`
	slabs[1].ServiceablePostcodePattern = `^56[`
	resolver := NewRateResolverService(newRatesRepoWith(slabs))

	quotes, err := resolver.Resolve(context.Background(), "WH-BLR", "560001", 8, false)

	require.NoError(t, err)
	require.Len(t, quotes, 1)
	assert.Equal(t, "delhivery", quotes[0].CourierID)
}

func TestRateResolverService_Resolve_UnknownOrigin(t *testing.T) {
	resolver := NewRateResolverService(newRatesRepoWith(testRateSlabs()))

	quotes, err := resolver.Resolve(context.Background(), "WH-MUM", "560001", 8, false)

	require.NoError(t, err)
	assert.Empty(t, quotes)
}

func TestRateResolverService_Resolve_TieBreaks(t *testing.T) {
	slabs := []model.CourierRateSlab{
		{CourierID: "beta", OriginLocationID: "WH-BLR", MinWeight: 0, MaxWeight: 10, Rate: decimal.NewFromFloat(50), ServiceablePostcodePattern: `^560\d{3}$`, EstimatedDays: 3},
		{CourierID: "alpha", OriginLocationID: "WH-BLR", MinWeight: 0, MaxWeight: 10, Rate: decimal.NewFromFloat(50), ServiceablePostcodePattern: `^560\d{3}$`, EstimatedDays: 3},
		{CourierID: "gamma", OriginLocationID: "WH-BLR", MinWeight: 0, MaxWeight: 10, Rate: decimal.NewFromFloat(50), ServiceablePostcodePattern: `^560\d{3}$`, EstimatedDays: 2},
	}
	resolver := NewRateResolverService(newRatesRepoWith(slabs))

	quotes, err := resolver.Resolve(context.Background(), "WH-BLR", "560001", 5, false)

	require.NoError(t, err)
	require.Len(t, quotes, 3)
	// Equal price: fewer estimated days wins, then courier ID.
	assert.Equal(t, "gamma", quotes[0].CourierID)
	assert.Equal(t, "alpha", quotes[1].CourierID)
	assert.Equal(t, "beta", quotes[2].CourierID)
}

func TestRateResolverService_Resolve_NilRepository(t *testing.T) {
	resolver := NewRateResolverService(nil)

	_, err := resolver.Resolve(context.Background(), "WH-BLR", "560001", 8, false)

	assert.ErrorIs(t, err, ErrRateSourceUnavailable)
}

func TestRateResolverService_Resolve_RepositoryError(t *testing.T) {
	repo := new(mocks.MockCourierRatesRepositoryInterface)
	repo.On("GetActive", mock.Anything).Return(nil, errors.New("server selection timeout"))
	resolver := NewRateResolverService(repo)

	_, err := resolver.Resolve(context.Background(), "WH-BLR", "560001", 8, false)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "loading courier rates")
}

func TestRateResolverService_Resolve_NoActiveTable(t *testing.T) {
	repo := new(mocks.MockCourierRatesRepositoryInterface)
	repo.On("GetActive", mock.Anything).Return(nil, nil)
	resolver := NewRateResolverService(repo)

	quotes, err := resolver.Resolve(context.Background(), "WH-BLR", "560001", 8, false)

	require.NoError(t, err)
	assert.Empty(t, quotes)
}

func TestRateResolverService_QuoteCache(t *testing.T) {
	repo := newRatesRepoWith(testRateSlabs())
	resolver := NewRateResolverService(repo, WithQuoteCache(100, time.Minute))

	first, err := resolver.Resolve(context.Background(), "WH-BLR", "560001", 8, false)
	require.NoError(t, err)
	second, err := resolver.Resolve(context.Background(), "WH-BLR", "560001", 8, false)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	repo.AssertNumberOfCalls(t, "GetActive", 1)

	// A different weight is a different key.
	_, err = resolver.Resolve(context.Background(), "WH-BLR", "560001", 12, false)
	require.NoError(t, err)
	repo.AssertNumberOfCalls(t, "GetActive", 2)
}

func TestRateResolverService_InvalidateCache(t *testing.T) {
	repo := newRatesRepoWith(testRateSlabs())
	resolver := NewRateResolverService(repo, WithQuoteCache(100, time.Minute))

	_, err := resolver.Resolve(context.Background(), "WH-BLR", "560001", 8, false)
	require.NoError(t, err)

	resolver.InvalidateCache()

	_, err = resolver.Resolve(context.Background(), "WH-BLR", "560001", 8, false)
	require.NoError(t, err)
	repo.AssertNumberOfCalls(t, "GetActive", 2)
}

func TestCourierRateSlab_Contains(t *testing.T) {
	slab := model.CourierRateSlab{MinWeight: 5, MaxWeight: 10}

	assert.False(t, slab.Contains(5), "weight on min boundary belongs to the bracket below")
	assert.True(t, slab.Contains(5.001))
	assert.True(t, slab.Contains(10), "weight on max boundary belongs to this bracket")
	assert.False(t, slab.Contains(10.001))
}
