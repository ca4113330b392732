package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "giftlist_http_requests_total",
		Help: "Total number of HTTP requests processed.",
	}, []string{"method", "route"})

	httpErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "giftlist_http_errors_total",
		Help: "Total number of HTTP requests resulting in server errors.",
	}, []string{"method", "route", "status"})

	httpRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "giftlist_http_request_duration_seconds",
		Help:    "Histogram of latencies for HTTP requests.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route", "status"})

	claimConflictsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "giftlist_claim_conflicts_total",
		Help: "Number of claim attempts rejected because the item was already claimed.",
	})
)

// Metrics records per-route request counters and latency histograms. Routes
// are labelled by gin's route pattern, not the raw path, to keep cardinality
// bounded.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}

		status := c.Writer.Status()
		statusCode := strconv.Itoa(status)
		method := c.Request.Method
		duration := time.Since(start).Seconds()

		httpRequestsTotal.WithLabelValues(method, route).Inc()
		httpRequestDuration.WithLabelValues(method, route, statusCode).Observe(duration)
		if status >= 500 {
			httpErrorsTotal.WithLabelValues(method, route, statusCode).Inc()
		}
	}
}

// MetricsHandler exposes the Prometheus scrape endpoint.
func MetricsHandler() gin.HandlerFunc {
	return gin.WrapH(promhttp.Handler())
}

// ObserveClaimConflict counts a lost claim race.
func ObserveClaimConflict() {
	claimConflictsTotal.Inc()
}
