package api

import (
	"context"
	"net/http"
	"time"

	echo "github.com/labstack/echo/v5"

	"github.com/lorekeep/lorekeep/pkg/database"
	"github.com/lorekeep/lorekeep/pkg/queue"
)

const (
	healthStatusHealthy   = "healthy"
	healthStatusDegraded  = "degraded"
	healthStatusUnhealthy = "unhealthy"
)

// HealthCheck is the per-component entry of the health response.
type HealthCheck struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status string                 `json:"status"`
	Checks map[string]HealthCheck `json:"checks"`
	Pool   *queue.PoolHealth      `json:"worker_pool,omitempty"`
}

// healthHandler handles GET /health. Only our own components (database,
// worker pool) are probed; external dependencies are excluded so an LLM or
// store outage does not make the orchestrator restart this process.
func (s *Server) healthHandler(c *echo.Context) error {
	reqCtx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	resp := HealthResponse{
		Status: healthStatusHealthy,
		Checks: make(map[string]HealthCheck),
	}

	if _, err := database.Health(reqCtx, s.dbClient.DB()); err != nil {
		resp.Status = healthStatusUnhealthy
		resp.Checks["database"] = HealthCheck{Status: healthStatusUnhealthy, Message: err.Error()}
	} else {
		resp.Checks["database"] = HealthCheck{Status: healthStatusHealthy}
	}

	if s.workerPool != nil {
		pool := s.workerPool.Health()
		resp.Pool = pool
		if pool != nil && !pool.IsHealthy {
			if resp.Status == healthStatusHealthy {
				resp.Status = healthStatusDegraded
			}
			check := HealthCheck{Status: healthStatusDegraded}
			if pool.DBError != "" {
				check.Message = pool.DBError
			}
			resp.Checks["worker_pool"] = check
		} else {
			resp.Checks["worker_pool"] = HealthCheck{Status: healthStatusHealthy}
		}
	}

	httpStatus := http.StatusOK
	if resp.Status == healthStatusUnhealthy {
		httpStatus = http.StatusServiceUnavailable
	}
	return c.JSON(httpStatus, resp)
}
