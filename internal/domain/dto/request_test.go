package dto

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/fulfillment-service/internal/domain/model"
)

func TestValidatePostcode(t *testing.T) {
	tests := []struct {
		name     string
		postcode string
		want     bool
	}{
		{"indian pincode", "560001", true},
		{"uk style with space", "SW1A 1AA", true},
		{"dashed", "12345-6789", true},
		{"minimum length", "A1B", true},
		{"too short", "56", false},
		{"too long", "12345678901", false},
		{"leading space", " 560001", false},
		{"double space", "SW1A  1AA", false},
		{"punctuation", "560@01", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidatePostcode(tt.postcode))
		})
	}
}

func TestOptimizeFulfillmentRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		req     OptimizeFulfillmentRequest
		wantErr *ValidationError
	}{
		{
			name:    "valid",
			req:     OptimizeFulfillmentRequest{Demands: map[string]int{"P1": 5}, Postcode: "560001"},
			wantErr: nil,
		},
		{
			name:    "nil demands",
			req:     OptimizeFulfillmentRequest{Postcode: "560001"},
			wantErr: ErrEmptyDemands,
		},
		{
			name:    "empty demands",
			req:     OptimizeFulfillmentRequest{Demands: map[string]int{}, Postcode: "560001"},
			wantErr: ErrEmptyDemands,
		},
		{
			name:    "zero quantity",
			req:     OptimizeFulfillmentRequest{Demands: map[string]int{"P1": 0}, Postcode: "560001"},
			wantErr: ErrNonPositiveQuantity,
		},
		{
			name:    "negative quantity",
			req:     OptimizeFulfillmentRequest{Demands: map[string]int{"P1": -2}, Postcode: "560001"},
			wantErr: ErrNonPositiveQuantity,
		},
		{
			name:    "bad postcode",
			req:     OptimizeFulfillmentRequest{Demands: map[string]int{"P1": 1}, Postcode: "!!"},
			wantErr: ErrInvalidPostcode,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.Equal(t, tt.wantErr, err)
		})
	}
}

func TestOptimizeFulfillmentRequest_Demand(t *testing.T) {
	req := OptimizeFulfillmentRequest{Demands: map[string]int{"P1": 5, "P2": 2}}

	demands := req.Demand()
	require.Len(t, demands, 2)

	byProduct := make(map[string]int, len(demands))
	for _, d := range demands {
		byProduct[d.ProductID] = d.Quantity
	}
	assert.Equal(t, map[string]int{"P1": 5, "P2": 2}, byProduct)
}

func TestCalculateShippingRequest_Validate(t *testing.T) {
	valid := CalculateShippingRequest{
		Postcode:  "560001",
		Shipments: []ShipmentInput{{LocationID: "WH-BLR", Weight: 12.5}},
	}
	assert.NoError(t, valid.Validate())

	tests := []struct {
		name      string
		req       CalculateShippingRequest
		wantField string
	}{
		{
			name:      "no shipments",
			req:       CalculateShippingRequest{Postcode: "560001"},
			wantField: "shipments",
		},
		{
			name: "missing location",
			req: CalculateShippingRequest{
				Postcode:  "560001",
				Shipments: []ShipmentInput{{Weight: 5}},
			},
			wantField: "shipments",
		},
		{
			name: "zero weight",
			req: CalculateShippingRequest{
				Postcode:  "560001",
				Shipments: []ShipmentInput{{LocationID: "WH-BLR", Weight: 0}},
			},
			wantField: "shipments",
		},
		{
			name: "bad postcode",
			req: CalculateShippingRequest{
				Postcode:  "x",
				Shipments: []ShipmentInput{{LocationID: "WH-BLR", Weight: 5}},
			},
			wantField: "postcode",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			var validationErr *ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.Equal(t, tt.wantField, validationErr.Field)
		})
	}
}

func TestUpdatePackageTypesRequest_Validate(t *testing.T) {
	good := PackageTypeInput{
		PackageID:     "BOX-M",
		MaxWeight:     15,
		Dims:          model.Dimensions{Length: 45, Breadth: 35, Height: 25},
		CapacityUnits: 10,
		CostPerUse:    decimal.NewFromFloat(2.75),
	}

	assert.NoError(t, (&UpdatePackageTypesRequest{Types: []PackageTypeInput{good}}).Validate())

	tests := []struct {
		name   string
		mutate func(*PackageTypeInput)
	}{
		{"missing package id", func(p *PackageTypeInput) { p.PackageID = "" }},
		{"zero max weight", func(p *PackageTypeInput) { p.MaxWeight = 0 }},
		{"zero capacity", func(p *PackageTypeInput) { p.CapacityUnits = 0 }},
		{"negative cost", func(p *PackageTypeInput) { p.CostPerUse = decimal.NewFromFloat(-1) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bad := good
			tt.mutate(&bad)
			err := (&UpdatePackageTypesRequest{Types: []PackageTypeInput{bad}}).Validate()
			var validationErr *ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.Equal(t, "types", validationErr.Field)
		})
	}

	t.Run("empty types", func(t *testing.T) {
		assert.Error(t, (&UpdatePackageTypesRequest{}).Validate())
	})
}

func TestUpdateCourierRatesRequest_Validate(t *testing.T) {
	slab := func(courier, origin string, min, max float64) model.CourierRateSlab {
		return model.CourierRateSlab{
			CourierID:        courier,
			OriginLocationID: origin,
			MinWeight:        min,
			MaxWeight:        max,
			Rate:             decimal.NewFromFloat(50),
		}
	}

	t.Run("valid contiguous brackets", func(t *testing.T) {
		req := UpdateCourierRatesRequest{Slabs: []model.CourierRateSlab{
			slab("bluedart", "WH-BLR", 0, 10),
			slab("bluedart", "WH-BLR", 10, 20),
		}}
		assert.NoError(t, req.Validate())
	})

	t.Run("same bracket for different couriers is allowed", func(t *testing.T) {
		req := UpdateCourierRatesRequest{Slabs: []model.CourierRateSlab{
			slab("bluedart", "WH-BLR", 0, 10),
			slab("delhivery", "WH-BLR", 0, 10),
		}}
		assert.NoError(t, req.Validate())
	})

	t.Run("same bracket for different origins is allowed", func(t *testing.T) {
		req := UpdateCourierRatesRequest{Slabs: []model.CourierRateSlab{
			slab("bluedart", "WH-BLR", 0, 10),
			slab("bluedart", "WH-DEL", 0, 10),
		}}
		assert.NoError(t, req.Validate())
	})

	t.Run("overlapping brackets rejected", func(t *testing.T) {
		req := UpdateCourierRatesRequest{Slabs: []model.CourierRateSlab{
			slab("bluedart", "WH-BLR", 0, 10),
			slab("bluedart", "WH-BLR", 5, 15),
		}}
		err := req.Validate()
		var validationErr *ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Contains(t, validationErr.Message, "overlap")
	})

	t.Run("inverted bracket rejected", func(t *testing.T) {
		req := UpdateCourierRatesRequest{Slabs: []model.CourierRateSlab{
			slab("bluedart", "WH-BLR", 10, 10),
		}}
		assert.Error(t, req.Validate())
	})

	t.Run("negative rate rejected", func(t *testing.T) {
		s := slab("bluedart", "WH-BLR", 0, 10)
		s.Rate = decimal.NewFromFloat(-1)
		assert.Error(t, (&UpdateCourierRatesRequest{Slabs: []model.CourierRateSlab{s}}).Validate())
	})

	t.Run("missing courier id rejected", func(t *testing.T) {
		req := UpdateCourierRatesRequest{Slabs: []model.CourierRateSlab{
			slab("", "WH-BLR", 0, 10),
		}}
		assert.Error(t, req.Validate())
	})

	t.Run("empty slabs rejected", func(t *testing.T) {
		assert.Error(t, (&UpdateCourierRatesRequest{}).Validate())
	})
}

func TestUpsertStockRequest_Validate(t *testing.T) {
	good := StockItemInput{
		LocationID: "WH-BLR",
		ProductID:  "P1",
		Available:  10,
		UnitWeight: 2,
		UnitDims:   model.Dimensions{Length: 30, Breadth: 20, Height: 10},
	}

	assert.NoError(t, (&UpsertStockRequest{Items: []StockItemInput{good}}).Validate())

	t.Run("zero available is a valid tombstone", func(t *testing.T) {
		row := good
		row.Available = 0
		assert.NoError(t, (&UpsertStockRequest{Items: []StockItemInput{row}}).Validate())
	})

	tests := []struct {
		name   string
		mutate func(*StockItemInput)
	}{
		{"missing location", func(s *StockItemInput) { s.LocationID = "" }},
		{"missing product", func(s *StockItemInput) { s.ProductID = "" }},
		{"negative available", func(s *StockItemInput) { s.Available = -1 }},
		{"zero unit weight", func(s *StockItemInput) { s.UnitWeight = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bad := good
			tt.mutate(&bad)
			assert.Error(t, (&UpsertStockRequest{Items: []StockItemInput{bad}}).Validate())
		})
	}

	t.Run("empty items", func(t *testing.T) {
		assert.Error(t, (&UpsertStockRequest{}).Validate())
	})
}

func TestLoginRequest_Validate(t *testing.T) {
	assert.NoError(t, (&LoginRequest{Email: "ops@example.com", Password: "secret"}).Validate())
	assert.Error(t, (&LoginRequest{Password: "secret"}).Validate())
	assert.Error(t, (&LoginRequest{Email: "ops@example.com"}).Validate())
}
