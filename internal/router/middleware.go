package router

import (
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/twigs-app/backend/internal/models"
	"github.com/twigs-app/backend/internal/overview"
)

func URLMiddleware(url *url.URL) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(string(models.DBContextURL), url.String())
		c.Next()
	}
}

// collectors are all Prometheus metrics of the service.
var collectors = append([]prometheus.Collector{
	requestCount,
	requestDuration,
}, overview.Collectors...)

// registerMetrics registers all collectors with the registerer. If one of
// them cannot be registered, the ones registered before it are unregistered.
func registerMetrics(registerer prometheus.Registerer) error {
	for i, c := range collectors {
		if err := registerer.Register(c); err != nil {
			unregisterMetrics(registerer, collectors[:i])
			return fmt.Errorf("could not register %s with Prometheus: %w", c, err)
		}
	}

	return nil
}

// unregisterMetrics unregisters the collectors and reports if all of them
// were registered.
func unregisterMetrics(registerer prometheus.Registerer, collectors []prometheus.Collector) bool {
	ok := true
	for _, c := range collectors {
		ok = registerer.Unregister(c) && ok
	}

	return ok
}

var requestCount = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "requests_total",
		Help: "How many HTTP requests processed, partitioned by status code and HTTP method.",
	},
	[]string{"code", "method", "url"},
)

var requestDuration = prometheus.NewHistogramVec(
	prometheus.HistogramOpts{
		Name: "request_duration_seconds",
		Help: "The HTTP request latencies in seconds.",
	},
	[]string{"code", "method", "url"},
)

// MetricsMiddleware records the count and duration of requests.
//
// Requests are labelled with the route they matched, e.g. /v4/budgets/:id,
// so that IDs do not end up as label values. Requests that do not match any
// route share the "unmatched" label.
func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}

		labels := prometheus.Labels{
			"code":   strconv.Itoa(c.Writer.Status()),
			"method": c.Request.Method,
			"url":    route,
		}

		requestDuration.With(labels).Observe(time.Since(start).Seconds())
		requestCount.With(labels).Inc()
	}
}
