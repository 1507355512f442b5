package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/guttosm/fulfillment-service/internal/domain/dto"
	"github.com/guttosm/fulfillment-service/internal/domain/model"
	"github.com/guttosm/fulfillment-service/internal/metrics"
)

// FulfillmentOptimizer defines the top-level interface for fulfillment
// optimization operations.
type FulfillmentOptimizer interface {
	// Optimize runs the full allocation search for an order and returns
	// ranked fulfillment options. Domain infeasibility is reported inside
	// the result with Success=false; an error return means the request was
	// invalid or a required source was unusable before any planning began.
	Optimize(ctx context.Context, req dto.OptimizeFulfillmentRequest) (*dto.OptimizationResult, error)

	// CalculateShipping quotes couriers for explicit (location, weight)
	// pairs, skipping stock resolution, candidate generation and packaging
	// entirely.
	CalculateShipping(ctx context.Context, req dto.CalculateShippingRequest) (*dto.ShippingResult, error)
}

// OptimizerService implements FulfillmentOptimizer by driving the pipeline:
// stock snapshot, candidate generation, per-candidate packaging and rate
// evaluation, ranking.
type OptimizerService struct {
	stock     StockResolver
	generator CandidateGenerator
	evaluator CostEvaluator
	rates     CourierRateResolver
	reference ReferenceDataService
}

// NewOptimizerService creates a new optimizer orchestrator.
func NewOptimizerService(
	stock StockResolver,
	generator CandidateGenerator,
	evaluator CostEvaluator,
	rates CourierRateResolver,
	reference ReferenceDataService,
) *OptimizerService {
	return &OptimizerService{
		stock:     stock,
		generator: generator,
		evaluator: evaluator,
		rates:     rates,
		reference: reference,
	}
}

// Optimize validates the request, takes the stock snapshot, generates
// candidates, evaluates them and assembles the response.
func (s *OptimizerService) Optimize(ctx context.Context, req dto.OptimizeFulfillmentRequest) (*dto.OptimizationResult, error) {
	start := time.Now()

	if err := req.Validate(); err != nil {
		return nil, err
	}
	demands := sortedDemands(req.Demand())

	snapshot, err := s.stock.Resolve(ctx, demands)
	if err != nil {
		metrics.RecordOptimization(time.Since(start), "error", 0)
		return nil, fmt.Errorf("resolving stock: %w", err)
	}

	candidates := s.generator.Generate(demands, snapshot)
	if len(candidates) == 0 {
		metrics.RecordOptimization(time.Since(start), "infeasible", 0)
		return totalShortfallResult(demands), nil
	}

	types := s.reference.ActivePackageTypes(ctx)
	options := s.evaluator.Evaluate(ctx, candidates, snapshot, types, req.Postcode, req.COD)

	result := assembleResult(options)
	status := "success"
	if !result.Success {
		status = "infeasible"
	}
	metrics.RecordOptimization(time.Since(start), status, len(candidates))

	log.Debug().
		Int("candidates", len(candidates)).
		Int("options", len(options)).
		Bool("success", result.Success).
		Dur("duration", time.Since(start)).
		Msg("Optimization completed")

	return result, nil
}

// CalculateShipping quotes couriers per explicit pickup location. Lookup
// failures are localized to their location; only a failure of every lookup
// escalates to the caller.
func (s *OptimizerService) CalculateShipping(ctx context.Context, req dto.CalculateShippingRequest) (*dto.ShippingResult, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	result := &dto.ShippingResult{
		Locations: make([]dto.LocationQuotes, 0, len(req.Shipments)),
	}

	failures := 0
	var lastErr error
	for _, shipment := range req.Shipments {
		quotes, err := s.rates.Resolve(ctx, shipment.LocationID, req.Postcode, shipment.Weight, req.COD)
		if err != nil {
			log.Warn().
				Str("location_id", shipment.LocationID).
				Err(err).
				Msg("Rate lookup failed for shipment")
			failures++
			lastErr = err
			quotes = nil
		}
		if quotes == nil {
			quotes = []model.CourierQuote{}
		}
		result.Locations = append(result.Locations, dto.LocationQuotes{
			LocationID: shipment.LocationID,
			Quotes:     quotes,
		})
	}

	if failures == len(req.Shipments) && lastErr != nil {
		return nil, fmt.Errorf("rate lookup failed for every location: %w", lastErr)
	}
	return result, nil
}

// totalShortfallResult reports an order no location can contribute to.
func totalShortfallResult(demands []model.ProductDemand) *dto.OptimizationResult {
	shortfalls := make([]dto.ProductShortfall, 0, len(demands))
	for _, d := range demands {
		shortfalls = append(shortfalls, dto.ProductShortfall{ProductID: d.ProductID, Unmet: d.Quantity})
	}
	return &dto.OptimizationResult{
		Success:    false,
		Reason:     dto.ReasonStockShortfall,
		Message:    fmt.Sprintf("no stock available for any of %d product(s)", len(demands)),
		Shortfalls: shortfalls,
	}
}

// assembleResult turns ranked options into the response payload. The run
// succeeds when the best option is fully resolved and fully covering;
// otherwise the options are kept as diagnostic detail and a failure reason
// is derived from the best option.
func assembleResult(options []model.RankedAllocationOption) *dto.OptimizationResult {
	if len(options) == 0 {
		return &dto.OptimizationResult{
			Success: false,
			Reason:  dto.ReasonStockShortfall,
			Message: "no allocation candidate could be constructed",
		}
	}

	best := options[0]
	if !best.Unresolved && !best.Candidate.Partial {
		return &dto.OptimizationResult{Success: true, Options: options}
	}

	result := &dto.OptimizationResult{
		Success: false,
		Options: options,
	}
	if best.Candidate.Partial {
		result.Reason = dto.ReasonStockShortfall
		result.Shortfalls = shortfallList(best.Candidate.Shortfall)
		result.Message = fmt.Sprintf("insufficient stock for %d product(s)", len(result.Shortfalls))
		return result
	}

	result.Reason = failureReason(best)
	switch result.Reason {
	case dto.ReasonRateLookupFailed:
		result.Message = "courier rates could not be resolved for any usable location"
	case dto.ReasonPackagingInfeasible:
		result.Message = "no location could package the assigned items"
	default:
		result.Message = "no courier services the destination from any usable location"
	}
	return result
}

// failureReason derives the dominant failure reason from the best option's
// unresolved locations. A lookup outage outranks a coverage gap, which
// outranks a packaging failure.
func failureReason(option model.RankedAllocationOption) string {
	reasons := make(map[string]bool)
	for _, b := range option.Breakdown {
		if b.Unresolved {
			reasons[b.Reason] = true
		}
	}
	switch {
	case reasons[dto.ReasonRateLookupFailed]:
		return dto.ReasonRateLookupFailed
	case reasons[dto.ReasonNoServiceableCourier]:
		return dto.ReasonNoServiceableCourier
	default:
		return dto.ReasonPackagingInfeasible
	}
}

// shortfallList converts the shortfall map into a sorted slice.
func shortfallList(shortfall map[string]int) []dto.ProductShortfall {
	out := make([]dto.ProductShortfall, 0, len(shortfall))
	for productID, unmet := range shortfall {
		out = append(out, dto.ProductShortfall{ProductID: productID, Unmet: unmet})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ProductID < out[j].ProductID })
	return out
}
