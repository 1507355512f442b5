// Package model defines the core domain entities for the fulfillment service.
package model

import (
	"sort"

	"github.com/shopspring/decimal"
)

// ProductDemand is a single line of an incoming order: a product and the
// quantity the customer wants. Quantity must be positive.
type ProductDemand struct {
	// ProductID identifies the product being ordered.
	ProductID string `json:"product_id" example:"P1"`
	// Quantity is the number of units requested. Must be greater than 0.
	Quantity int `json:"quantity" example:"5" minimum:"1"`
}

// Dimensions describes the physical size of an item or package in centimeters.
type Dimensions struct {
	Length  float64 `json:"length" example:"30"`
	Breadth float64 `json:"breadth" example:"20"`
	Height  float64 `json:"height" example:"10"`
}

// Volume returns the volume in cubic centimeters.
func (d Dimensions) Volume() float64 {
	return d.Length * d.Breadth * d.Height
}

// FitsWithin reports whether these dimensions fit inside the given outer
// dimensions, allowing rotation (sides are compared sorted).
func (d Dimensions) FitsWithin(outer Dimensions) bool {
	a := []float64{d.Length, d.Breadth, d.Height}
	b := []float64{outer.Length, outer.Breadth, outer.Height}
	sort.Float64s(a)
	sort.Float64s(b)
	return a[0] <= b[0] && a[1] <= b[1] && a[2] <= b[2]
}

// LocationStock is a read-only availability snapshot for one product at one
// pickup location, taken once per optimization run. The optimizer never
// mutates or reserves it.
type LocationStock struct {
	LocationID string     `json:"location_id" example:"WH-BLR"`
	ProductID  string     `json:"product_id" example:"P1"`
	Available  int        `json:"available" example:"10"`
	UnitWeight float64    `json:"unit_weight" example:"2"`
	UnitDims   Dimensions `json:"unit_dims"`
}

// PackageType is static reference data describing one physical package that a
// location can ship in. A package type fits a bundle when the bundle weight
// does not exceed MaxWeight and the bundle unit count does not exceed
// CapacityUnits.
type PackageType struct {
	// PackageID identifies the package type.
	PackageID string `json:"package_id" example:"BOX-M"`
	// LocationID scopes the package type to a location; empty means global.
	LocationID string `json:"location_id,omitempty" example:"WH-BLR"`
	// MaxWeight is the maximum bundle weight in kilograms.
	MaxWeight float64 `json:"max_weight" example:"20"`
	// Dims are the inner dimensions of the package.
	Dims Dimensions `json:"dims"`
	// CapacityUnits is the number of item units the package can hold.
	CapacityUnits int `json:"capacity_units" example:"12"`
	// CostPerUse is the packaging cost each time this type is opened.
	CostPerUse decimal.Decimal `json:"cost_per_use" example:"3.50"`
}

// CanHold reports whether a single item of the given weight and dimensions
// can be placed in an empty package of this type.
func (p PackageType) CanHold(unitWeight float64, unitDims Dimensions) bool {
	return unitWeight <= p.MaxWeight && p.CapacityUnits >= 1 && unitDims.FitsWithin(p.Dims)
}

// CourierRateSlab is one weight bracket of a courier's tiered price table for
// a given origin. Brackets are ordered and non-overlapping per courier per
// origin; a shipment weight maps to exactly one bracket.
type CourierRateSlab struct {
	CourierID        string `json:"courier_id" example:"bluedart"`
	OriginLocationID string `json:"origin_location_id" example:"WH-BLR"`
	// MinWeight is the exclusive lower bound of the bracket in kilograms.
	MinWeight float64 `json:"min_weight" example:"0"`
	// MaxWeight is the inclusive upper bound of the bracket in kilograms.
	MaxWeight float64 `json:"max_weight" example:"20"`
	// Rate is the shipping price for weights inside the bracket.
	Rate decimal.Decimal `json:"rate" example:"50.00"`
	// CODSurcharge is added when the shipment is cash-on-delivery.
	CODSurcharge decimal.Decimal `json:"cod_surcharge" example:"10.00"`
	// ServiceablePostcodePattern is an anchored regular expression matched
	// against the destination postcode.
	ServiceablePostcodePattern string `json:"serviceable_postcode_pattern" example:"^56\\d{4}$"`
	// EstimatedDays is the courier's historical delivery estimate, if known.
	EstimatedDays int `json:"estimated_days,omitempty" example:"3"`
}

// Contains reports whether the given shipment weight falls inside this
// bracket. A weight exactly on MaxWeight belongs to this bracket; a weight
// exactly on MinWeight belongs to the bracket below.
func (s CourierRateSlab) Contains(weight float64) bool {
	return weight > s.MinWeight && weight <= s.MaxWeight
}

// CourierQuote is the computed price of one serviceable courier for a
// shipment of a given weight from a given origin.
type CourierQuote struct {
	CourierID string `json:"courier_id" example:"bluedart"`
	// Price is the slab rate plus the COD surcharge when applicable.
	Price decimal.Decimal `json:"price" example:"60.00"`
	// CODApplied indicates whether the COD surcharge is included in Price.
	CODApplied bool `json:"cod_applied" example:"true"`
	// EstimatedDays carries the slab's delivery estimate, 0 when unknown.
	EstimatedDays int `json:"estimated_days,omitempty" example:"3"`
}

// Assignment is a (product, quantity) pair allocated to one location within
// a candidate.
type Assignment struct {
	ProductID string `json:"product_id" example:"P1"`
	Quantity  int    `json:"quantity" example:"5"`
}

// AllocationCandidate is one possible way to split the order across pickup
// locations. For a non-partial candidate the assigned quantities per product
// sum exactly to the requested quantity; a partial candidate records the
// unmet remainder per product in Shortfall.
type AllocationCandidate struct {
	// Assignments maps location ID to the products and quantities assigned
	// to that location.
	Assignments map[string][]Assignment `json:"assignments"`
	// Partial marks a candidate that cannot fully cover the order.
	Partial bool `json:"partial"`
	// Shortfall records unmet quantity per product for partial candidates.
	Shortfall map[string]int `json:"shortfall,omitempty"`
}

// Locations returns the candidate's location IDs in sorted order.
func (c AllocationCandidate) Locations() []string {
	ids := make([]string, 0, len(c.Assignments))
	for id := range c.Assignments {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Package is one physical package opened by the packaging planner.
type Package struct {
	PackageID string       `json:"package_id" example:"BOX-M"`
	Items     []Assignment `json:"items"`
	// Weight is the total item weight placed in this package.
	Weight float64 `json:"weight" example:"8"`
	// Units is the number of item units placed in this package.
	Units int `json:"units" example:"4"`
	// Cost is the package type's cost per use.
	Cost decimal.Decimal `json:"cost" example:"3.50"`
}

// PackagingPlan is the result of packing one location's bundle.
type PackagingPlan struct {
	Packages []Package `json:"packages"`
	// TotalCost is the sum of cost-per-use over all opened packages.
	TotalCost decimal.Decimal `json:"total_cost" example:"7.00"`
	// TotalWeight is the item weight across all packages in kilograms.
	TotalWeight float64 `json:"total_weight" example:"10"`
}

// ShipmentCostBreakdown is the evaluated cost of one location's shipment
// within a candidate. Unresolved marks a location whose packaging was
// infeasible or for which no courier was serviceable.
type ShipmentCostBreakdown struct {
	LocationID    string          `json:"location_id" example:"WH-BLR"`
	Items         []Assignment    `json:"items"`
	PackagingCost decimal.Decimal `json:"packaging_cost" example:"7.00"`
	PackagingPlan PackagingPlan   `json:"packaging_plan"`
	ShippingCost  decimal.Decimal `json:"shipping_cost" example:"50.00"`
	ChosenCourier *CourierQuote   `json:"chosen_courier,omitempty"`
	TotalWeight   float64         `json:"total_weight" example:"10"`
	Unresolved    bool            `json:"unresolved,omitempty"`
	// Reason explains why the location is unresolved, empty otherwise.
	Reason string `json:"reason,omitempty"`
}

// Cost returns packaging plus shipping cost for a resolved location.
func (b ShipmentCostBreakdown) Cost() decimal.Decimal {
	return b.PackagingCost.Add(b.ShippingCost)
}

// RankedAllocationOption is one entry of the ranked response. Options are
// ordered by ascending total cost; ties prefer fewer locations, then a lower
// maximum single-location weight.
type RankedAllocationOption struct {
	Candidate AllocationCandidate `json:"candidate"`
	// Breakdown holds one entry per location, sorted by location ID.
	Breakdown []ShipmentCostBreakdown `json:"breakdown"`
	TotalCost decimal.Decimal         `json:"total_cost" example:"57.00"`
	Rank      int                     `json:"rank" example:"1"`
	// Unresolved marks an option containing at least one unresolved
	// location; such options sort after every resolved option.
	Unresolved bool `json:"unresolved,omitempty"`
}

// LocationCount returns the number of distinct locations the option uses.
func (o RankedAllocationOption) LocationCount() int {
	return len(o.Candidate.Assignments)
}

// MaxLocationWeight returns the heaviest single-location shipment weight.
func (o RankedAllocationOption) MaxLocationWeight() float64 {
	var max float64
	for _, b := range o.Breakdown {
		if b.TotalWeight > max {
			max = b.TotalWeight
		}
	}
	return max
}
