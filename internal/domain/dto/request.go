// Package dto defines Data Transfer Objects for HTTP request and response handling.
//
// DTOs are used to decouple the HTTP layer from the domain model,
// providing validation and serialization for API communication.
package dto

import (
	"regexp"

	"github.com/shopspring/decimal"

	"github.com/guttosm/fulfillment-service/internal/domain/model"
)

// postcodePattern accepts alphanumeric groups with optional single spaces or
// dashes between them.
var postcodePattern = regexp.MustCompile(`^[A-Za-z0-9]+(?:[ -][A-Za-z0-9]+)*$`)

// OptimizeFulfillmentRequest represents the JSON request body for the full
// optimization endpoint.
//
// @Description Request to compute ranked fulfillment allocations for an order
// @Example {"demands": {"P1": 5, "P2": 2}, "postcode": "560001", "cod": true}
type OptimizeFulfillmentRequest struct {
	// Demands maps product ID to requested quantity. Must be non-empty and
	// every quantity must be greater than 0.
	Demands map[string]int `json:"demands" binding:"required"`
	// Postcode is the delivery destination postcode.
	Postcode string `json:"postcode" binding:"required" example:"560001"`
	// COD indicates the order is cash-on-delivery.
	COD bool `json:"cod" example:"true"`
} // @name OptimizeFulfillmentRequest

// ValidationError represents a field validation error.
type ValidationError struct {
	Field   string
	Message string
}

// Error returns the error message for ValidationError.
func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

var (
	// ErrEmptyDemands is returned when the demand map is missing or empty.
	ErrEmptyDemands = &ValidationError{
		Field:   "demands",
		Message: "must contain at least one product",
	}
	// ErrNonPositiveQuantity is returned when a demanded quantity is not positive.
	ErrNonPositiveQuantity = &ValidationError{
		Field:   "demands",
		Message: "quantities must be positive integers",
	}
	// ErrInvalidPostcode is returned when the postcode is malformed.
	ErrInvalidPostcode = &ValidationError{
		Field:   "postcode",
		Message: "must be 3-10 alphanumeric characters",
	}
)

// ValidatePostcode reports whether the given postcode is well formed.
func ValidatePostcode(postcode string) bool {
	if len(postcode) < 3 || len(postcode) > 10 {
		return false
	}
	return postcodePattern.MatchString(postcode)
}

// Validate performs custom validation on the request.
// Returns an error if validation fails, nil otherwise.
func (r *OptimizeFulfillmentRequest) Validate() error {
	if len(r.Demands) == 0 {
		return ErrEmptyDemands
	}
	for _, qty := range r.Demands {
		if qty <= 0 {
			return ErrNonPositiveQuantity
		}
	}
	if !ValidatePostcode(r.Postcode) {
		return ErrInvalidPostcode
	}
	return nil
}

// Demand converts the request's demand map into model demands.
func (r *OptimizeFulfillmentRequest) Demand() []model.ProductDemand {
	demands := make([]model.ProductDemand, 0, len(r.Demands))
	for productID, qty := range r.Demands {
		demands = append(demands, model.ProductDemand{ProductID: productID, Quantity: qty})
	}
	return demands
}

// ShipmentInput is one explicit (pickup location, weight) pair for the plain
// shipping calculation endpoint.
type ShipmentInput struct {
	// LocationID is the pickup location the shipment leaves from.
	LocationID string `json:"location_id" binding:"required" example:"WH-BLR"`
	// Weight is the total shipment weight in kilograms.
	Weight float64 `json:"weight" binding:"required,gt=0" example:"12.5"`
} // @name ShipmentInput

// CalculateShippingRequest represents the JSON request body for the plain
// shipping calculation endpoint. It skips allocation search entirely and
// quotes couriers for an allocation the caller has already decided.
//
// @Description Request to quote couriers for explicit location/weight pairs
// @Example {"postcode": "560001", "cod": false, "shipments": [{"location_id": "WH-BLR", "weight": 12.5}]}
type CalculateShippingRequest struct {
	// Postcode is the delivery destination postcode.
	Postcode string `json:"postcode" binding:"required" example:"560001"`
	// COD indicates the order is cash-on-delivery.
	COD bool `json:"cod" example:"false"`
	// Shipments lists the pickup locations and their shipment weights.
	Shipments []ShipmentInput `json:"shipments" binding:"required,min=1"`
} // @name CalculateShippingRequest

// Validate performs custom validation on the request.
func (r *CalculateShippingRequest) Validate() error {
	if len(r.Shipments) == 0 {
		return &ValidationError{Field: "shipments", Message: "must contain at least one shipment"}
	}
	for _, s := range r.Shipments {
		if s.LocationID == "" {
			return &ValidationError{Field: "shipments", Message: "location_id is required"}
		}
		if s.Weight <= 0 {
			return &ValidationError{Field: "shipments", Message: "weight must be positive"}
		}
	}
	if !ValidatePostcode(r.Postcode) {
		return ErrInvalidPostcode
	}
	return nil
}

// PackageTypeInput is one package type definition in an update request.
type PackageTypeInput struct {
	PackageID     string           `json:"package_id" binding:"required" example:"BOX-M"`
	LocationID    string           `json:"location_id,omitempty" example:"WH-BLR"`
	MaxWeight     float64          `json:"max_weight" binding:"required,gt=0" example:"20"`
	Dims          model.Dimensions `json:"dims"`
	CapacityUnits int              `json:"capacity_units" binding:"required,gt=0" example:"12"`
	CostPerUse    decimal.Decimal  `json:"cost_per_use" example:"3.50"`
} // @name PackageTypeInput

// UpdatePackageTypesRequest represents the JSON request body for replacing
// the active package type set.
type UpdatePackageTypesRequest struct {
	// Types is the list of package types to activate.
	Types []PackageTypeInput `json:"types" binding:"required,min=1"`
	// CreatedBy is the identifier of who created this configuration.
	CreatedBy string `json:"created_by,omitempty"`
} // @name UpdatePackageTypesRequest

// Validate performs custom validation on the request.
func (r *UpdatePackageTypesRequest) Validate() error {
	if len(r.Types) == 0 {
		return &ValidationError{Field: "types", Message: "must contain at least one package type"}
	}
	for _, t := range r.Types {
		if t.PackageID == "" {
			return &ValidationError{Field: "types", Message: "package_id is required"}
		}
		if t.MaxWeight <= 0 || t.CapacityUnits <= 0 {
			return &ValidationError{Field: "types", Message: "max_weight and capacity_units must be positive"}
		}
		if t.CostPerUse.IsNegative() {
			return &ValidationError{Field: "types", Message: "cost_per_use must not be negative"}
		}
	}
	return nil
}

// UpdateCourierRatesRequest represents the JSON request body for replacing
// courier slab tables.
type UpdateCourierRatesRequest struct {
	// Slabs is the ordered slab table. Brackets must not overlap per
	// courier per origin.
	Slabs []model.CourierRateSlab `json:"slabs" binding:"required,min=1"`
	// CreatedBy is the identifier of who created this configuration.
	CreatedBy string `json:"created_by,omitempty"`
} // @name UpdateCourierRatesRequest

// Validate checks that the slab table is well formed: positive brackets,
// non-negative rates, and no overlapping weight ranges per courier.
func (r *UpdateCourierRatesRequest) Validate() error {
	if len(r.Slabs) == 0 {
		return &ValidationError{Field: "slabs", Message: "must contain at least one slab"}
	}
	byCourier := make(map[string][]model.CourierRateSlab)
	for _, s := range r.Slabs {
		if s.CourierID == "" || s.OriginLocationID == "" {
			return &ValidationError{Field: "slabs", Message: "courier_id and origin_location_id are required"}
		}
		if s.MinWeight < 0 || s.MaxWeight <= s.MinWeight {
			return &ValidationError{Field: "slabs", Message: "brackets must satisfy 0 <= min_weight < max_weight"}
		}
		if s.Rate.IsNegative() || s.CODSurcharge.IsNegative() {
			return &ValidationError{Field: "slabs", Message: "rate and cod_surcharge must not be negative"}
		}
		key := s.OriginLocationID + "/" + s.CourierID
		byCourier[key] = append(byCourier[key], s)
	}
	for _, slabs := range byCourier {
		for i, a := range slabs {
			for _, b := range slabs[i+1:] {
				if a.MinWeight < b.MaxWeight && b.MinWeight < a.MaxWeight {
					return &ValidationError{Field: "slabs", Message: "weight brackets must not overlap"}
				}
			}
		}
	}
	return nil
}

// StockItemInput is one stock snapshot row in an upsert request.
type StockItemInput struct {
	LocationID string           `json:"location_id" binding:"required" example:"WH-BLR"`
	ProductID  string           `json:"product_id" binding:"required" example:"P1"`
	Available  int              `json:"available" example:"10"`
	UnitWeight float64          `json:"unit_weight" binding:"required,gt=0" example:"2"`
	UnitDims   model.Dimensions `json:"unit_dims"`
} // @name StockItemInput

// UpsertStockRequest represents the JSON request body for upserting location
// stock snapshot rows.
type UpsertStockRequest struct {
	Items []StockItemInput `json:"items" binding:"required,min=1"`
} // @name UpsertStockRequest

// Validate performs custom validation on the request.
func (r *UpsertStockRequest) Validate() error {
	if len(r.Items) == 0 {
		return &ValidationError{Field: "items", Message: "must contain at least one item"}
	}
	for _, item := range r.Items {
		if item.LocationID == "" || item.ProductID == "" {
			return &ValidationError{Field: "items", Message: "location_id and product_id are required"}
		}
		if item.Available < 0 {
			return &ValidationError{Field: "items", Message: "available must not be negative"}
		}
		if item.UnitWeight <= 0 {
			return &ValidationError{Field: "items", Message: "unit_weight must be positive"}
		}
	}
	return nil
}
