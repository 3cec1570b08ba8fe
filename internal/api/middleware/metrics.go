// Package middleware provides Echo middleware for listing-aggregator.
package middleware

import (
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/donaldgifford/listing-aggregator/internal/metrics"
)

// metricsSkipPaths are operational endpoints excluded from HTTP request
// metrics.
var metricsSkipPaths = map[string]struct{}{
	"/metrics":      {},
	"/healthz":      {},
	"/readyz":       {},
	"/openapi.json": {},
	"/openapi.yaml": {},
}

// healthGauges maps probe paths to their up/down gauge.
var healthGauges = map[string]prometheus.Gauge{
	"/healthz": metrics.HealthzUp,
	"/readyz":  metrics.ReadyzUp,
}

// Metrics returns Echo middleware that records request duration and status
// by route template. Operational paths and the Swagger UI are excluded;
// probe paths update their gauges instead.
func Metrics() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			path := c.Path()
			if path == "" {
				path = c.Request().URL.Path
			}

			if skipMetrics(path) {
				err := next(c)
				updateHealthGauge(path, c.Response().Status)
				return err
			}

			start := time.Now()

			err := next(c)

			duration := time.Since(start).Seconds()
			status := strconv.Itoa(c.Response().Status)
			method := c.Request().Method

			metrics.HTTPRequestDuration.
				WithLabelValues(method, path, status).
				Observe(duration)
			metrics.HTTPRequestsTotal.
				WithLabelValues(method, path, status).
				Inc()

			return err
		}
	}
}

func skipMetrics(path string) bool {
	if _, ok := metricsSkipPaths[path]; ok {
		return true
	}
	return strings.HasPrefix(path, "/swagger")
}

// updateHealthGauge sets the gauge for a health path to 1 (success) or 0 (failure).
func updateHealthGauge(path string, status int) {
	gauge, ok := healthGauges[path]
	if !ok {
		return
	}

	if status >= 200 && status < 300 {
		gauge.Set(1)
	} else {
		gauge.Set(0)
	}
}
