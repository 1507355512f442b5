package service

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/guttosm/fulfillment-service/internal/domain/dto"
	"github.com/guttosm/fulfillment-service/internal/domain/model"
)

// CostEvaluator defines the interface for candidate cost evaluation and ranking.
type CostEvaluator interface {
	// Evaluate prices every candidate and returns ranked options, best
	// first, capped to the configured maximum.
	Evaluate(ctx context.Context, candidates []model.AllocationCandidate, snapshot StockSnapshot, availableTypes []model.PackageType, postcode string, cod bool) []model.RankedAllocationOption
}

// EvaluatorOption configures a CostEvaluatorService.
type EvaluatorOption func(*CostEvaluatorService)

// CostEvaluatorService implements CostEvaluator. Locations within a candidate
// are evaluated concurrently with a bounded worker pool since each packaging
// and rate computation is independent.
type CostEvaluatorService struct {
	planner    PackagingPlanner
	rates      CourierRateResolver
	workers    int
	maxOptions int
}

// NewCostEvaluatorService creates a new cost evaluator with the given options.
func NewCostEvaluatorService(planner PackagingPlanner, rates CourierRateResolver, opts ...EvaluatorOption) *CostEvaluatorService {
	s := &CostEvaluatorService{
		planner:    planner,
		rates:      rates,
		workers:    4,
		maxOptions: 5,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// WithEvaluatorWorkers bounds concurrent per-location evaluation.
func WithEvaluatorWorkers(workers int) EvaluatorOption {
	return func(s *CostEvaluatorService) {
		if workers > 0 {
			s.workers = workers
		}
	}
}

// WithMaxOptions caps the number of ranked options returned.
func WithMaxOptions(maxOptions int) EvaluatorOption {
	return func(s *CostEvaluatorService) {
		if maxOptions > 0 {
			s.maxOptions = maxOptions
		}
	}
}

// Evaluate prices each candidate location by location, demotes candidates
// with unresolved locations behind every resolved one, and returns the top
// options in deterministic order.
func (s *CostEvaluatorService) Evaluate(ctx context.Context, candidates []model.AllocationCandidate, snapshot StockSnapshot, availableTypes []model.PackageType, postcode string, cod bool) []model.RankedAllocationOption {
	options := make([]model.RankedAllocationOption, 0, len(candidates))
	for _, candidate := range candidates {
		options = append(options, s.evaluateCandidate(ctx, candidate, snapshot, availableTypes, postcode, cod))
	}

	sort.SliceStable(options, func(i, j int) bool {
		return lessOption(options[i], options[j])
	})

	if len(options) > s.maxOptions {
		options = options[:s.maxOptions]
	}
	for i := range options {
		options[i].Rank = i + 1
	}
	return options
}

// evaluateCandidate computes per-location breakdowns concurrently and
// aggregates them into one option.
func (s *CostEvaluatorService) evaluateCandidate(ctx context.Context, candidate model.AllocationCandidate, snapshot StockSnapshot, availableTypes []model.PackageType, postcode string, cod bool) model.RankedAllocationOption {
	locations := candidate.Locations()
	breakdowns := make([]model.ShipmentCostBreakdown, len(locations))

	var mu sync.Mutex
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)

	for i, locationID := range locations {
		i, locationID := i, locationID
		g.Go(func() error {
			b := s.evaluateLocation(gctx, locationID, candidate.Assignments[locationID], snapshot, availableTypes, postcode, cod)
			mu.Lock()
			breakdowns[i] = b
			mu.Unlock()
			return nil
		})
	}
	// Workers never return errors; unresolved locations are recorded in
	// their breakdowns instead.
	_ = g.Wait()

	option := model.RankedAllocationOption{
		Candidate: candidate,
		Breakdown: breakdowns,
		TotalCost: decimal.Zero,
	}
	for _, b := range breakdowns {
		if b.Unresolved {
			option.Unresolved = true
			continue
		}
		option.TotalCost = option.TotalCost.Add(b.Cost())
	}
	return option
}

// evaluateLocation packs one location's bundle and quotes its couriers.
func (s *CostEvaluatorService) evaluateLocation(ctx context.Context, locationID string, items []model.Assignment, snapshot StockSnapshot, availableTypes []model.PackageType, postcode string, cod bool) model.ShipmentCostBreakdown {
	breakdown := model.ShipmentCostBreakdown{
		LocationID:    locationID,
		Items:         items,
		PackagingCost: decimal.Zero,
		ShippingCost:  decimal.Zero,
	}

	packItems := make([]PackItem, 0, len(items))
	for _, item := range items {
		row := snapshot[locationID][item.ProductID]
		packItems = append(packItems, PackItem{
			ProductID:  item.ProductID,
			Quantity:   item.Quantity,
			UnitWeight: row.UnitWeight,
			UnitDims:   row.UnitDims,
		})
	}

	plan, err := s.planner.Plan(packItems, TypesForLocation(availableTypes, locationID))
	if err != nil {
		if !errors.Is(err, ErrPackagingInfeasible) {
			log.Warn().Str("location_id", locationID).Err(err).Msg("Packaging plan failed")
		}
		breakdown.Unresolved = true
		breakdown.Reason = dto.ReasonPackagingInfeasible
		return breakdown
	}
	breakdown.PackagingPlan = plan
	breakdown.PackagingCost = plan.TotalCost
	breakdown.TotalWeight = plan.TotalWeight

	quotes, err := s.rates.Resolve(ctx, locationID, postcode, plan.TotalWeight, cod)
	if err != nil {
		log.Warn().Str("location_id", locationID).Err(err).Msg("Rate lookup failed")
		breakdown.Unresolved = true
		breakdown.Reason = dto.ReasonRateLookupFailed
		return breakdown
	}
	if len(quotes) == 0 {
		breakdown.Unresolved = true
		breakdown.Reason = dto.ReasonNoServiceableCourier
		return breakdown
	}

	// Quotes arrive cheapest first with deterministic tie-breaks.
	chosen := quotes[0]
	breakdown.ChosenCourier = &chosen
	breakdown.ShippingCost = chosen.Price
	return breakdown
}

// lessOption orders options: resolved before unresolved, then ascending
// total cost, then fewer locations, then lower maximum location weight, with
// a final location-ID comparison so equal-cost options keep a stable order.
func lessOption(a, b model.RankedAllocationOption) bool {
	if a.Unresolved != b.Unresolved {
		return !a.Unresolved
	}
	if !a.TotalCost.Equal(b.TotalCost) {
		return a.TotalCost.LessThan(b.TotalCost)
	}
	if a.LocationCount() != b.LocationCount() {
		return a.LocationCount() < b.LocationCount()
	}
	if aw, bw := a.MaxLocationWeight(), b.MaxLocationWeight(); aw != bw {
		return aw < bw
	}
	return strings.Join(a.Candidate.Locations(), ",") < strings.Join(b.Candidate.Locations(), ",")
}
