package service

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"sort"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"github.com/guttosm/fulfillment-service/internal/domain/model"
	"github.com/guttosm/fulfillment-service/internal/metrics"
	"github.com/guttosm/fulfillment-service/internal/repository"
	"github.com/guttosm/fulfillment-service/internal/service/cache"
)

// ErrRateSourceUnavailable is returned when the courier rate table cannot be
// read. Callers localize the failure to the affected location.
var ErrRateSourceUnavailable = errors.New("courier rate source unavailable")

// CourierRateResolver defines the interface for courier rate resolution.
type CourierRateResolver interface {
	// Resolve returns the serviceable couriers and their computed prices for
	// a shipment of totalWeight from the origin to the destination postcode.
	// An empty result means no courier services the destination from this
	// origin; that is a per-location outcome, not an error.
	Resolve(ctx context.Context, originLocationID, destinationPostcode string, totalWeight float64, cod bool) ([]model.CourierQuote, error)

	// InvalidateCache clears cached quotes (useful when rate tables change).
	InvalidateCache()
}

// RateOption configures a RateResolverService.
type RateOption func(*RateResolverService)

// RateResolverService implements CourierRateResolver on top of the courier
// rates repository with an optional quote cache.
type RateResolverService struct {
	repo    repository.CourierRatesRepositoryInterface
	cache   cache.Cache
	timeout time.Duration

	// compiled serviceability patterns, keyed by pattern source
	patternMu sync.RWMutex
	patterns  map[string]*regexp.Regexp
}

// NewRateResolverService creates a new rate resolver with the given options.
func NewRateResolverService(repo repository.CourierRatesRepositoryInterface, opts ...RateOption) *RateResolverService {
	s := &RateResolverService{
		repo:     repo,
		timeout:  2 * time.Second,
		patterns: make(map[string]*regexp.Regexp),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// WithRateLookupTimeout bounds each rate table lookup.
func WithRateLookupTimeout(timeout time.Duration) RateOption {
	return func(s *RateResolverService) {
		if timeout > 0 {
			s.timeout = timeout
		}
	}
}

// WithQuoteCache enables quote caching with the specified capacity and TTL.
func WithQuoteCache(capacity int, ttl time.Duration) RateOption {
	return func(s *RateResolverService) {
		if capacity > 0 {
			s.cache = NewShardedCache(capacity, ttl, 16)
		}
	}
}

// WithQuoteCacheInterface allows injecting a custom cache implementation.
func WithQuoteCacheInterface(c cache.Cache) RateOption {
	return func(s *RateResolverService) {
		s.cache = c
	}
}

// quoteCacheKey builds the cache key for one lookup.
func quoteCacheKey(origin, postcode string, weight float64, cod bool) string {
	return fmt.Sprintf("%s|%s|%.3f|%t", origin, postcode, weight, cod)
}

// Resolve computes quotes for every courier with a slab table for the origin.
// Couriers whose serviceability pattern does not match the postcode are
// excluded, not errors. Weights above a courier's top bracket are priced by
// linear extrapolation of the top bracket's per-kilogram rate.
func (s *RateResolverService) Resolve(ctx context.Context, originLocationID, destinationPostcode string, totalWeight float64, cod bool) ([]model.CourierQuote, error) {
	start := time.Now()

	key := quoteCacheKey(originLocationID, destinationPostcode, totalWeight, cod)
	if s.cache != nil {
		if quotes, ok := s.cache.Get(key); ok {
			metrics.RecordRateLookup(time.Since(start), "cache_hit")
			return quotes, nil
		}
	}

	slabs, err := s.loadSlabs(ctx, originLocationID)
	if err != nil {
		metrics.RecordRateLookup(time.Since(start), "error")
		return nil, err
	}

	quotes := s.quoteSlabs(slabs, destinationPostcode, totalWeight, cod)

	if s.cache != nil {
		s.cache.Set(key, quotes)
	}
	metrics.RecordRateLookup(time.Since(start), "success")
	return quotes, nil
}

// loadSlabs reads the active rate table for one origin within the configured
// timeout. A single bounded attempt; retries belong to a higher layer.
func (s *RateResolverService) loadSlabs(ctx context.Context, originLocationID string) ([]model.CourierRateSlab, error) {
	if s.repo == nil {
		return nil, ErrRateSourceUnavailable
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	config, err := s.repo.GetActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading courier rates: %w", err)
	}
	if config == nil {
		return nil, nil
	}

	all, err := config.RateSlabs()
	if err != nil {
		return nil, fmt.Errorf("decoding courier rates: %w", err)
	}

	slabs := make([]model.CourierRateSlab, 0, len(all))
	for _, slab := range all {
		if slab.OriginLocationID == originLocationID {
			slabs = append(slabs, slab)
		}
	}
	return slabs, nil
}

// quoteSlabs prices each serviceable courier for the given weight.
func (s *RateResolverService) quoteSlabs(slabs []model.CourierRateSlab, postcode string, weight float64, cod bool) []model.CourierQuote {
	byCourier := make(map[string][]model.CourierRateSlab)
	for _, slab := range slabs {
		byCourier[slab.CourierID] = append(byCourier[slab.CourierID], slab)
	}

	quotes := make([]model.CourierQuote, 0, len(byCourier))
	for courierID, courierSlabs := range byCourier {
		if !s.serviceable(courierSlabs, postcode) {
			continue
		}
		quote, ok := priceForWeight(courierSlabs, weight, cod)
		if !ok {
			continue
		}
		quote.CourierID = courierID
		quotes = append(quotes, quote)
	}

	// Cheapest first; ties by delivery estimate, then courier ID.
	sort.Slice(quotes, func(i, j int) bool {
		if !quotes[i].Price.Equal(quotes[j].Price) {
			return quotes[i].Price.LessThan(quotes[j].Price)
		}
		if quotes[i].EstimatedDays != quotes[j].EstimatedDays {
			return quotes[i].EstimatedDays < quotes[j].EstimatedDays
		}
		return quotes[i].CourierID < quotes[j].CourierID
	})
	return quotes
}

// serviceable reports whether any of the courier's slabs declares a pattern
// matching the destination postcode. An invalid pattern excludes the courier.
func (s *RateResolverService) serviceable(slabs []model.CourierRateSlab, postcode string) bool {
	for _, slab := range slabs {
		if slab.ServiceablePostcodePattern == "" {
			continue
		}
		re, err := s.compilePattern(slab.ServiceablePostcodePattern)
		if err != nil {
			log.Warn().
				Str("courier_id", slab.CourierID).
				Str("pattern", slab.ServiceablePostcodePattern).
				Err(err).
				Msg("Invalid serviceability pattern, courier excluded")
			return false
		}
		if re.MatchString(postcode) {
			return true
		}
	}
	return false
}

// compilePattern compiles and memoizes a serviceability pattern.
func (s *RateResolverService) compilePattern(pattern string) (*regexp.Regexp, error) {
	s.patternMu.RLock()
	re, ok := s.patterns[pattern]
	s.patternMu.RUnlock()
	if ok {
		return re, nil
	}

	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, err
	}

	s.patternMu.Lock()
	s.patterns[pattern] = re
	s.patternMu.Unlock()
	return re, nil
}

// priceForWeight maps the weight to its bracket, or extrapolates above the
// top bracket: price = topRate + (topRate / topMaxWeight) * excess. A weight
// exactly on a bracket boundary belongs to the lower bracket.
func priceForWeight(slabs []model.CourierRateSlab, weight float64, cod bool) (model.CourierQuote, bool) {
	if len(slabs) == 0 {
		return model.CourierQuote{}, false
	}

	sorted := make([]model.CourierRateSlab, len(slabs))
	copy(sorted, slabs)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].MaxWeight < sorted[j].MaxWeight })

	for _, slab := range sorted {
		if slab.Contains(weight) {
			return buildQuote(slab, slab.Rate, cod), true
		}
	}

	top := sorted[len(sorted)-1]
	if weight > top.MaxWeight && top.MaxWeight > 0 {
		excess := decimal.NewFromFloat(weight - top.MaxWeight)
		perKg := top.Rate.Div(decimal.NewFromFloat(top.MaxWeight))
		price := top.Rate.Add(perKg.Mul(excess)).Round(2)
		return buildQuote(top, price, cod), true
	}

	// Weight below every bracket or inside a gap in the table.
	return model.CourierQuote{}, false
}

func buildQuote(slab model.CourierRateSlab, price decimal.Decimal, cod bool) model.CourierQuote {
	quote := model.CourierQuote{
		Price:         price,
		EstimatedDays: slab.EstimatedDays,
	}
	if cod {
		quote.Price = quote.Price.Add(slab.CODSurcharge)
		quote.CODApplied = true
	}
	return quote
}

// InvalidateCache clears the quote cache.
func (s *RateResolverService) InvalidateCache() {
	if s.cache != nil {
		s.cache.Clear()
	}
}
