// Package app provides service initialization.
package app

import (
	"github.com/guttosm/fulfillment-service/config"
	"github.com/guttosm/fulfillment-service/internal/repository"
	"github.com/guttosm/fulfillment-service/internal/service"
)

// ServiceComponents holds the optimization pipeline services.
type ServiceComponents struct {
	Optimizer service.FulfillmentOptimizer
	Reference service.ReferenceDataService
	Rates     service.CourierRateResolver
}

// InitializeServices wires the optimization pipeline: stock resolution,
// candidate generation, packaging, courier rate resolution and cost
// evaluation. Repositories may be nil when the database is disabled; the
// affected services then report their source as unavailable.
func InitializeServices(cfg config.OptimizerConfig, dbComponents *DatabaseComponents) *ServiceComponents {
	var stockRepo repository.StockRepositoryInterface
	var packageTypesRepo repository.PackageTypesRepositoryInterface
	var courierRatesRepo repository.CourierRatesRepositoryInterface
	if dbComponents != nil {
		stockRepo = dbComponents.StockRepo
		packageTypesRepo = dbComponents.PackageTypesRepo
		courierRatesRepo = dbComponents.CourierRatesRepo
	}

	stock := service.NewStockResolverService(stockRepo)
	generator := service.NewCandidateGeneratorService()
	planner := service.NewPackagingService()

	rateOpts := []service.RateOption{}
	if cfg.RateLookupTimeout > 0 {
		rateOpts = append(rateOpts, service.WithRateLookupTimeout(cfg.RateLookupTimeout))
	}
	if cfg.QuoteCacheSize > 0 {
		rateOpts = append(rateOpts, service.WithQuoteCache(cfg.QuoteCacheSize, cfg.QuoteCacheTTL))
	}
	rates := service.NewRateResolverService(courierRatesRepo, rateOpts...)

	evaluatorOpts := []service.EvaluatorOption{}
	if cfg.Workers > 0 {
		evaluatorOpts = append(evaluatorOpts, service.WithEvaluatorWorkers(cfg.Workers))
	}
	if cfg.MaxOptions > 0 {
		evaluatorOpts = append(evaluatorOpts, service.WithMaxOptions(cfg.MaxOptions))
	}
	evaluator := service.NewCostEvaluatorService(planner, rates, evaluatorOpts...)

	reference := service.NewReferenceDataService(packageTypesRepo, courierRatesRepo, stockRepo, rates)
	optimizer := service.NewOptimizerService(stock, generator, evaluator, rates, reference)

	return &ServiceComponents{
		Optimizer: optimizer,
		Reference: reference,
		Rates:     rates,
	}
}
