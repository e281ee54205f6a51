package middleware

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

var (
	requests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "imdb_api_requests_total",
			Help: "Total API requests",
		},
		[]string{"path", "method", "status"},
	)
	latency = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "imdb_api_request_duration_seconds",
			Help:    "Request handling time",
			Buckets: prometheus.DefBuckets,
		},
	)
)

func RegisterMetrics() {
	prometheus.MustRegister(requests, latency)
}

// Metrics records a counter and latency sample per request.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		timer := prometheus.NewTimer(latency)
		c.Next()
		timer.ObserveDuration()

		requests.WithLabelValues(
			c.FullPath(),
			c.Request.Method,
			strconv.Itoa(c.Writer.Status()),
		).Inc()
	}
}
