package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// MetricsPath is where the registry is exposed. Requests to it are not recorded.
const MetricsPath = "/metrics"

// staticPathLabel groups every request served by the static fallback so the
// path label stays bounded.
const staticPathLabel = "static"

// Metrics records request duration and count per method, route and status
type Metrics struct {
	registry *prometheus.Registry
	duration *prometheus.HistogramVec
	total    *prometheus.CounterVec
}

// NewMetrics creates the HTTP collectors on their own registry, alongside the
// Go runtime and process collectors.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path", "status"},
		),
		total: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
	}

	m.registry.MustRegister(
		m.duration,
		m.total,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// Middleware records each request after the rest of the chain has run
func (m *Metrics) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == MetricsPath {
			return
		}
		if path == "" {
			path = staticPathLabel
		}

		status := strconv.Itoa(c.Writer.Status())
		m.duration.WithLabelValues(c.Request.Method, path, status).Observe(time.Since(start).Seconds())
		m.total.WithLabelValues(c.Request.Method, path, status).Inc()
	}
}

// Handler exposes the registry in the Prometheus text format
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
