package cache

import "github.com/guttosm/fulfillment-service/internal/domain/model"

// Cache defines the interface for courier quote cache operations.
// Keys identify an (origin location, destination postcode, weight, COD)
// lookup; values are the resolved quotes.
type Cache interface {
	Get(key string) ([]model.CourierQuote, bool)
	Set(key string, value []model.CourierQuote)
	Invalidate(key string)
	Clear()
	Stop()
}

// Metrics provides cache performance metrics.
type Metrics struct {
	Hits      int64
	Misses    int64
	Evictions int64
	Size      int
	Capacity  int
}

// CacheWithMetrics extends Cache with metrics reporting.
type CacheWithMetrics interface {
	Cache
	Metrics() Metrics
}
