package metrics

import (
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	once sync.Once

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "findmygym",
			Name:      "http_requests_total",
			Help:      "HTTP requests by route, method and status.",
		},
		[]string{"route", "method", "status"},
	)

	httpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "findmygym",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by route.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"route", "method"},
	)

	cacheLookups = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "findmygym",
			Name:      "cache_lookups_total",
			Help:      "Cache lookups by cache name and result.",
		},
		[]string{"cache", "result"},
	)

	degradedResponses = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "findmygym",
			Name:      "degraded_responses_total",
			Help:      "List endpoints that answered with an empty result after a store failure.",
		},
		[]string{"endpoint"},
	)
)

// Register registers Prometheus metrics. Safe to call multiple times.
func Register() {
	once.Do(func() {
		prometheus.MustRegister(httpRequests, httpDuration, cacheLookups, degradedResponses)
	})
}

// Middleware records request counts and latency labelled by the matched route template.
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		httpRequests.WithLabelValues(route, c.Request.Method, strconv.Itoa(c.Writer.Status())).Inc()
		httpDuration.WithLabelValues(route, c.Request.Method).Observe(time.Since(start).Seconds())
	}
}

// Handler exposes the default registry.
func Handler() gin.HandlerFunc {
	return gin.WrapH(promhttp.Handler())
}

// CacheHit and CacheMiss count lookups of a named cache.
func CacheHit(cache string) {
	cacheLookups.WithLabelValues(cache, "hit").Inc()
}

func CacheMiss(cache string) {
	cacheLookups.WithLabelValues(cache, "miss").Inc()
}

// IncDegraded counts an endpoint that masked a store failure with an empty result.
func IncDegraded(endpoint string) {
	degradedResponses.WithLabelValues(endpoint).Inc()
}
