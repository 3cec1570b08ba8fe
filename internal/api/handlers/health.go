package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/donaldgifford/listing-aggregator/pkg/logger"
)

const readyTimeout = 2 * time.Second

// Dependency check results.
const (
	checkOK          = "ok"
	checkUnavailable = "unavailable"
	checkDegraded    = "degraded"
	checkDisabled    = "disabled"
)

// Pinger is a dependency that can report whether it is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler provides health and readiness endpoints.
type HealthHandler struct {
	db    Pinger
	index Pinger
	cache Pinger
}

// NewHealthHandler creates a new HealthHandler. The database and index gate
// readiness; the cache is reported but never fails the probe. A nil cache is
// reported as disabled.
func NewHealthHandler(db, index, cache Pinger) *HealthHandler {
	return &HealthHandler{db: db, index: index, cache: cache}
}

// Healthz returns 200 if the process is running.
//
// @Summary Liveness check
// @Description Returns 200 if the process is running.
// @Tags health
// @Produce json
// @Success 200 {object} StatusResponse
// @Router /healthz [get]
func (*HealthHandler) Healthz(c echo.Context) error {
	return c.JSON(http.StatusOK, StatusResponse{Status: "ok"})
}

// Readyz returns 200 if the database and search index are reachable, 503
// otherwise.
//
// @Summary Readiness check
// @Description Returns 200 if the database and search index are reachable, 503 otherwise.
// @Tags health
// @Produce json
// @Success 200 {object} ReadinessResponse
// @Failure 503 {object} ReadinessResponse
// @Router /readyz [get]
func (h *HealthHandler) Readyz(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), readyTimeout)
	defer cancel()

	log := logger.FromContext(ctx, nil)
	resp := ReadinessResponse{Status: "ready", Checks: make(map[string]string, 3)}

	if err := h.db.Ping(ctx); err != nil {
		log.Warn("readiness: database unreachable", "error", err)
		resp.Checks["database"] = checkUnavailable
		resp.Status = checkUnavailable
	} else {
		resp.Checks["database"] = checkOK
	}

	if err := h.index.Ping(ctx); err != nil {
		log.Warn("readiness: search index unreachable", "error", err)
		resp.Checks["search_index"] = checkUnavailable
		resp.Status = checkUnavailable
	} else {
		resp.Checks["search_index"] = checkOK
	}

	switch {
	case h.cache == nil:
		resp.Checks["cache"] = checkDisabled
	case h.cache.Ping(ctx) != nil:
		resp.Checks["cache"] = checkDegraded
	default:
		resp.Checks["cache"] = checkOK
	}

	if resp.Status != "ready" {
		return c.JSON(http.StatusServiceUnavailable, resp)
	}
	return c.JSON(http.StatusOK, resp)
}
