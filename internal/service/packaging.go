package service

import (
	"errors"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/guttosm/fulfillment-service/internal/domain/model"
)

// ErrPackagingInfeasible is returned when at least one item fits in no
// available package type. Callers exclude the affected location from the
// candidate instead of failing the whole computation.
var ErrPackagingInfeasible = errors.New("no package type can hold every item")

// DefaultPackageTypes defines the standard package types used when no
// configuration is active. They are global (not scoped to a location).
var DefaultPackageTypes = []model.PackageType{
	{PackageID: "BOX-S", MaxWeight: 5, Dims: model.Dimensions{Length: 25, Breadth: 20, Height: 15}, CapacityUnits: 4, CostPerUse: decimal.NewFromFloat(1.50)},
	{PackageID: "BOX-M", MaxWeight: 15, Dims: model.Dimensions{Length: 45, Breadth: 35, Height: 25}, CapacityUnits: 10, CostPerUse: decimal.NewFromFloat(2.75)},
	{PackageID: "BOX-L", MaxWeight: 30, Dims: model.Dimensions{Length: 60, Breadth: 45, Height: 40}, CapacityUnits: 20, CostPerUse: decimal.NewFromFloat(4.50)},
}

// PackItem is one product line handed to the planner: quantity, unit weight
// and unit dimensions come from the location's stock snapshot.
type PackItem struct {
	ProductID  string
	Quantity   int
	UnitWeight float64
	UnitDims   model.Dimensions
}

// PackagingPlanner defines the interface for packaging plan computation.
type PackagingPlanner interface {
	// Plan packs the given items into packages drawn from the available
	// types. Returns ErrPackagingInfeasible when an item fits no type.
	Plan(items []PackItem, availableTypes []model.PackageType) (model.PackagingPlan, error)
}

// PackagingOption configures a PackagingService.
type PackagingOption func(*PackagingService)

// PackagingService implements PackagingPlanner using first-fit-decreasing
// bin packing by weight. It is a bounded-time heuristic, not an exact
// minimum-cost solver.
type PackagingService struct {
	defaultTypes []model.PackageType
}

// NewPackagingService creates a new PackagingService with the given options.
func NewPackagingService(opts ...PackagingOption) *PackagingService {
	s := &PackagingService{
		defaultTypes: make([]model.PackageType, len(DefaultPackageTypes)),
	}
	copy(s.defaultTypes, DefaultPackageTypes)

	for _, opt := range opts {
		opt(s)
	}
	return s
}

// WithDefaultPackageTypes sets the package types used when a plan request
// passes none.
func WithDefaultPackageTypes(types []model.PackageType) PackagingOption {
	return func(s *PackagingService) {
		if len(types) > 0 {
			s.defaultTypes = make([]model.PackageType, len(types))
			copy(s.defaultTypes, types)
		}
	}
}

// packUnit is a single physical unit of a product during packing.
type packUnit struct {
	productID string
	weight    float64
	dims      model.Dimensions
}

// openPackage tracks an in-progress package during packing.
type openPackage struct {
	packageType model.PackageType
	weight      float64
	units       int
	counts      map[string]int
}

func (p *openPackage) fits(u packUnit) bool {
	return p.weight+u.weight <= p.packageType.MaxWeight &&
		p.units+1 <= p.packageType.CapacityUnits &&
		u.dims.FitsWithin(p.packageType.Dims)
}

func (p *openPackage) add(u packUnit) {
	p.weight += u.weight
	p.units++
	p.counts[u.productID]++
}

// Plan packs items first-fit-decreasing by unit weight: units are placed into
// the first open package with room; when none has room, a new package of the
// cheapest type that can hold the unit is opened.
func (s *PackagingService) Plan(items []PackItem, availableTypes []model.PackageType) (model.PackagingPlan, error) {
	if len(availableTypes) == 0 {
		availableTypes = s.defaultTypes
	}
	if len(items) == 0 {
		return model.PackagingPlan{TotalCost: decimal.Zero}, nil
	}

	// Cheapest-first type order; ties prefer smaller volume, then ID for
	// determinism.
	types := make([]model.PackageType, len(availableTypes))
	copy(types, availableTypes)
	sort.Slice(types, func(i, j int) bool {
		if !types[i].CostPerUse.Equal(types[j].CostPerUse) {
			return types[i].CostPerUse.LessThan(types[j].CostPerUse)
		}
		if vi, vj := types[i].Dims.Volume(), types[j].Dims.Volume(); vi != vj {
			return vi < vj
		}
		return types[i].PackageID < types[j].PackageID
	})

	units := expandUnits(items)
	sort.SliceStable(units, func(i, j int) bool {
		if units[i].weight != units[j].weight {
			return units[i].weight > units[j].weight
		}
		return units[i].productID < units[j].productID
	})

	var opened []*openPackage
	for _, u := range units {
		placed := false
		for _, p := range opened {
			if p.fits(u) {
				p.add(u)
				placed = true
				break
			}
		}
		if placed {
			continue
		}

		var chosen *model.PackageType
		for i := range types {
			if types[i].CanHold(u.weight, u.dims) {
				chosen = &types[i]
				break
			}
		}
		if chosen == nil {
			return model.PackagingPlan{}, ErrPackagingInfeasible
		}

		p := &openPackage{packageType: *chosen, counts: make(map[string]int)}
		p.add(u)
		opened = append(opened, p)
	}

	plan := model.PackagingPlan{
		Packages:  make([]model.Package, 0, len(opened)),
		TotalCost: decimal.Zero,
	}
	for _, p := range opened {
		pkg := model.Package{
			PackageID: p.packageType.PackageID,
			Items:     assignmentsFromCounts(p.counts),
			Weight:    p.weight,
			Units:     p.units,
			Cost:      p.packageType.CostPerUse,
		}
		plan.Packages = append(plan.Packages, pkg)
		plan.TotalCost = plan.TotalCost.Add(pkg.Cost)
		plan.TotalWeight += pkg.Weight
	}
	return plan, nil
}

// expandUnits flattens item lines into individual physical units.
func expandUnits(items []PackItem) []packUnit {
	total := 0
	for _, item := range items {
		total += item.Quantity
	}
	units := make([]packUnit, 0, total)
	for _, item := range items {
		for i := 0; i < item.Quantity; i++ {
			units = append(units, packUnit{
				productID: item.ProductID,
				weight:    item.UnitWeight,
				dims:      item.UnitDims,
			})
		}
	}
	return units
}

// assignmentsFromCounts converts per-product counts into sorted assignments.
func assignmentsFromCounts(counts map[string]int) []model.Assignment {
	out := make([]model.Assignment, 0, len(counts))
	for productID, qty := range counts {
		out = append(out, model.Assignment{ProductID: productID, Quantity: qty})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ProductID < out[j].ProductID })
	return out
}

// TypesForLocation filters package types applicable to a location: types
// scoped to the location plus global ones.
func TypesForLocation(types []model.PackageType, locationID string) []model.PackageType {
	out := make([]model.PackageType, 0, len(types))
	for _, t := range types {
		if t.LocationID == "" || t.LocationID == locationID {
			out = append(out, t)
		}
	}
	return out
}
