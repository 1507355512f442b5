package dto

import (
	"github.com/guttosm/fulfillment-service/internal/domain/model"
)

// Failure reasons carried by OptimizationResult when Success is false.
// Stock shortfall and rate lookup failure are deliberately distinct: the
// first means inventory cannot cover the order, the second means couriers
// could not be priced for any usable location.
const (
	// ReasonStockShortfall indicates no candidate fully covers the order.
	ReasonStockShortfall = "stock_shortfall"
	// ReasonNoServiceableCourier indicates no courier services the
	// destination from any usable location, or every rate lookup failed.
	ReasonNoServiceableCourier = "no_serviceable_courier"
	// ReasonPackagingInfeasible indicates no location could physically
	// package its assigned bundle.
	ReasonPackagingInfeasible = "packaging_infeasible"
	// ReasonRateLookupFailed indicates the rate source was unreachable or
	// timed out for every usable location. Kept distinct from
	// ReasonNoServiceableCourier so operators can tell an outage from a
	// coverage gap.
	ReasonRateLookupFailed = "rate_lookup_failed"
)

// ProductShortfall reports unmet quantity for one product.
type ProductShortfall struct {
	ProductID string `json:"product_id" example:"P1"`
	Unmet     int    `json:"unmet" example:"1"`
} // @name ProductShortfall

// OptimizationResult is the payload of the optimize endpoint.
//
// @Description Ranked fulfillment options, or a diagnostic failure payload
type OptimizationResult struct {
	// Success is true when at least one fully resolved, fully covering
	// option exists.
	Success bool `json:"success" example:"true"`
	// Options holds the ranked allocation options, best first. Present on
	// success; on failure it may carry the best partial option for
	// diagnosis.
	Options []model.RankedAllocationOption `json:"options,omitempty"`
	// Reason is a machine-readable failure reason when Success is false.
	Reason string `json:"reason,omitempty" example:"stock_shortfall"`
	// Message is a human-readable explanation when Success is false.
	Message string `json:"message,omitempty" example:"insufficient stock for 1 product(s)"`
	// Shortfalls lists unmet quantities per product when stock is short.
	Shortfalls []ProductShortfall `json:"shortfalls,omitempty"`
} // @name OptimizationResult

// LocationQuotes holds the courier quotes for one pickup location.
type LocationQuotes struct {
	LocationID string `json:"location_id" example:"WH-BLR"`
	// Quotes is empty when no courier services the destination from this
	// location; that is a per-location outcome, not an error.
	Quotes []model.CourierQuote `json:"quotes"`
} // @name LocationQuotes

// ShippingResult is the payload of the plain shipping calculation endpoint:
// available courier quotes per explicit pickup location.
//
// @Description Courier quotes per pickup location
type ShippingResult struct {
	Locations []LocationQuotes `json:"locations"`
} // @name ShippingResult
