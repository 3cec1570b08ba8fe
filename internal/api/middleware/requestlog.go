package middleware

import (
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.opentelemetry.io/otel/trace"

	"github.com/donaldgifford/listing-aggregator/pkg/logger"
)

const requestIDHeader = "X-Request-ID"

// RequestIDKey is the echo context key holding the request ID.
const RequestIDKey = "request_id"

// quietPaths are probe endpoints whose repeated successes are logged once.
var quietPaths = map[string]struct{}{
	"/healthz": {},
	"/readyz":  {},
}

// RequestLog returns Echo middleware that logs requests with structured fields.
// It generates a request ID if none is provided, propagates it through the
// response header and echo context, and stores a request-scoped logger in the
// request context for handlers to use.
//
// Probe paths log their first success and every failure; later successes are
// suppressed until a failure resets them.
func RequestLog(log *slog.Logger) echo.MiddlewareFunc {
	var mu sync.Mutex
	healthy := make(map[string]bool)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			req := c.Request()

			reqID := req.Header.Get(requestIDHeader)
			if reqID == "" {
				reqID = uuid.NewString()
			}

			c.Set(RequestIDKey, reqID)
			c.Response().Header().Set(requestIDHeader, reqID)

			scoped := log.With("request_id", reqID)
			if sc := trace.SpanContextFromContext(req.Context()); sc.HasTraceID() {
				scoped = scoped.With("trace_id", sc.TraceID().String())
			}
			c.SetRequest(req.WithContext(logger.IntoContext(req.Context(), scoped)))

			err := next(c)

			path := req.URL.Path
			status := c.Response().Status
			failed := status >= 400

			_, quiet := quietPaths[path]
			if quiet {
				mu.Lock()
				skip := !failed && healthy[path]
				healthy[path] = !failed
				mu.Unlock()
				if skip {
					return err
				}
			}

			// Probe failures report dependency state, not a fault in this server.
			level := slog.LevelInfo
			switch {
			case failed && quiet:
				level = slog.LevelWarn
			case status >= 500:
				level = slog.LevelError
			case failed:
				level = slog.LevelWarn
			}

			scoped.Log(req.Context(), level, "request",
				"method", req.Method,
				"path", path,
				"status", status,
				"duration_ms", time.Since(start).Milliseconds(),
			)

			return err
		}
	}
}
