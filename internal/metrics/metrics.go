// Package metrics exposes Prometheus collectors for the portfolio server.
package metrics

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics groups the collectors. Each instance owns its registry so tests
// can build as many as they like.
type Metrics struct {
	Registry     *prometheus.Registry
	CVFetch      *prometheus.CounterVec
	CVDownloads  prometheus.Counter
	ThemeToggles *prometheus.CounterVec
	Requests     *prometheus.CounterVec
}

func New() *Metrics {
	m := &Metrics{
		Registry: prometheus.NewRegistry(),
		CVFetch: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "portfolio",
			Name:      "cv_fetch_total",
			Help:      "CV retrievals by result.",
		}, []string{"result"}),
		CVDownloads: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "portfolio",
			Name:      "cv_downloads_total",
			Help:      "CV downloads served.",
		}),
		ThemeToggles: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "portfolio",
			Name:      "theme_toggles_total",
			Help:      "Theme changes by resulting mode.",
		}, []string{"mode"}),
		Requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "portfolio",
			Name:      "http_requests_total",
			Help:      "HTTP requests by route and status.",
		}, []string{"method", "route", "status"}),
	}
	m.Registry.MustRegister(m.CVFetch, m.CVDownloads, m.ThemeToggles, m.Requests)
	return m
}

// ObserveCVFetch records the outcome of the CV retrieval.
func (m *Metrics) ObserveCVFetch(err error) {
	result := "success"
	if err != nil {
		result = "failure"
	}
	m.CVFetch.WithLabelValues(result).Inc()
}

// Middleware counts requests by matched route.
func (m *Metrics) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.Requests.WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).Inc()
	}
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() gin.HandlerFunc {
	return gin.WrapH(promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{}))
}
