// Package metrics provides Prometheus metrics collection for the menu service.
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

	// CacheOperationsTotal tracks cache operations.
	CacheOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_operations_total",
			Help: "Total number of cache operations",
		},
		[]string{"operation", "result"},
	)

	// CacheSize tracks current in-memory cache size.
	CacheSize = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "cache_size",
			Help: "Current cache size",
		},
	)

	// CacheCapacity tracks in-memory cache capacity.
	CacheCapacity = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "cache_capacity",
			Help: "Cache capacity",
		},
	)

	// DiscountOverlayTotal counts dish reads by whether a price override applied.
	DiscountOverlayTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dish_discount_overlay_total",
			Help: "Dish reads by discount overlay outcome",
		},
		[]string{"result"},
	)

	// InvalidationTasksTotal tracks background invalidation tasks by outcome.
	InvalidationTasksTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_invalidation_tasks_total",
			Help: "Background cache invalidation tasks by outcome",
		},
		[]string{"task", "result"},
	)

	// InvalidationDuration tracks how long an invalidation task took end to end.
	InvalidationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "cache_invalidation_duration_seconds",
			Help:    "Background cache invalidation duration in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0, 5.0},
		},
	)

	// InvalidationQueueDepth tracks tasks waiting for a worker.
	InvalidationQueueDepth = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "cache_invalidation_queue_depth",
			Help: "Invalidation tasks waiting for a worker",
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

// RecordCacheOperation records metrics for a cache operation.
func RecordCacheOperation(operation, result string) {
	CacheOperationsTotal.WithLabelValues(operation, result).Inc()
}

// UpdateCacheMetrics updates cache size and capacity metrics.
func UpdateCacheMetrics(size, capacity int) {
	CacheSize.Set(float64(size))
	CacheCapacity.Set(float64(capacity))
}

// RecordDiscountOverlay records whether a dish read had its price overridden.
func RecordDiscountOverlay(applied bool) {
	result := "absent"
	if applied {
		result = "applied"
	}
	DiscountOverlayTotal.WithLabelValues(result).Inc()
}

// RecordInvalidation records the outcome of one invalidation task.
func RecordInvalidation(task, result string, duration time.Duration) {
	InvalidationTasksTotal.WithLabelValues(task, result).Inc()
	if duration > 0 {
		InvalidationDuration.Observe(duration.Seconds())
	}
}

// SetInvalidationQueueDepth sets the number of queued invalidation tasks.
func SetInvalidationQueueDepth(n int) {
	InvalidationQueueDepth.Set(float64(n))
}
