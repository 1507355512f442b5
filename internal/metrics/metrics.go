// Package metrics provides Prometheus metrics collection for the fulfillment service.
package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequestDuration tracks HTTP request duration by method, path, and status code.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status_code"},
	)

	// HTTPRequestTotal tracks total HTTP requests by method, path, and status code.
	HTTPRequestTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status_code"},
	)

	// OptimizationsTotal tracks optimization runs by outcome.
	OptimizationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fulfillment_optimizations_total",
			Help: "Total number of fulfillment optimization runs",
		},
		[]string{"status"},
	)

	// OptimizationDuration tracks end-to-end optimization duration.
	OptimizationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "fulfillment_optimization_duration_seconds",
			Help:    "Fulfillment optimization duration in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0},
		},
	)

	// RateLookupsTotal tracks courier rate lookups by courier and result.
	RateLookupsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "courier_rate_lookups_total",
			Help: "Total number of courier rate lookups",
		},
		[]string{"result"},
	)

	// RateLookupDuration tracks courier rate lookup duration.
	RateLookupDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "courier_rate_lookup_duration_seconds",
			Help:    "Courier rate lookup duration in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1.0, 2.5},
		},
	)

	// CandidatesGenerated tracks how many allocation candidates each run produces.
	CandidatesGenerated = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "fulfillment_candidates_generated",
			Help:    "Number of allocation candidates generated per optimization run",
			Buckets: []float64{0, 1, 2, 3, 5, 8, 13, 21},
		},
	)

	// CacheOperationsTotal tracks cache operations.
	CacheOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_operations_total",
			Help: "Total number of cache operations",
		},
		[]string{"operation", "result"},
	)

	// CacheSize tracks current cache size.
	CacheSize = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "cache_size",
			Help: "Current cache size",
		},
	)

	// CacheCapacity tracks cache capacity.
	CacheCapacity = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "cache_capacity",
			Help: "Cache capacity",
		},
	)
)

// PrometheusMiddleware returns a Gin middleware that collects HTTP metrics.
func PrometheusMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}

		c.Next()

		duration := time.Since(start).Seconds()
		statusCode := strconv.Itoa(c.Writer.Status())
		method := c.Request.Method

		HTTPRequestDuration.WithLabelValues(method, path, statusCode).Observe(duration)
		HTTPRequestTotal.WithLabelValues(method, path, statusCode).Inc()
	}
}

// RecordOptimization records metrics for one optimization run.
func RecordOptimization(duration time.Duration, status string, candidates int) {
	OptimizationDuration.Observe(duration.Seconds())
	OptimizationsTotal.WithLabelValues(status).Inc()
	CandidatesGenerated.Observe(float64(candidates))
}

// RecordRateLookup records metrics for one courier rate lookup.
func RecordRateLookup(duration time.Duration, result string) {
	RateLookupDuration.Observe(duration.Seconds())
	RateLookupsTotal.WithLabelValues(result).Inc()
}

// RecordCacheOperation records metrics for a cache operation.
func RecordCacheOperation(operation, result string) {
	CacheOperationsTotal.WithLabelValues(operation, result).Inc()
}

// UpdateCacheMetrics updates cache size and capacity metrics.
func UpdateCacheMetrics(size, capacity int) {
	CacheSize.Set(float64(size))
	CacheCapacity.Set(float64(capacity))
}
