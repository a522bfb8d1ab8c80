// Package http exposes the service's operational endpoints, currently the
// health probes used by deploy checks and uptime monitors.
package http

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

const dbPingTimeout = 1 * time.Second

type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Service   string    `json:"service"`
	Version   string    `json:"version"`
	DB        string    `json:"db,omitempty"`
}

// HealthHandler reports liveness plus reachability of the projects row
// store. Object storage and the image endpoint are deliberately not probed;
// their failures are per-request conditions the API reports inline.
type HealthHandler struct {
	serviceName string
	version     string
	db          *pgxpool.Pool
}

// NewHealthHandler accepts a nil pool; the db probe then reports "disabled".
func NewHealthHandler(serviceName, version string, db *pgxpool.Pool) *HealthHandler {
	return &HealthHandler{
		serviceName: serviceName,
		version:     version,
		db:          db,
	}
}

// HealthCheck always answers 200 so an unreachable database degrades the
// report instead of flapping the liveness probe.
func (h *HealthHandler) HealthCheck(c *gin.Context) {
	status := "healthy"
	dbStatus := "disabled"

	if h.db != nil {
		pingCtx, cancel := context.WithTimeout(c.Request.Context(), dbPingTimeout)
		defer cancel()

		if err := h.db.Ping(pingCtx); err != nil {
			status = "degraded"
			dbStatus = "down"
		} else {
			dbStatus = "up"
		}
	}

	c.JSON(http.StatusOK, HealthResponse{
		Status:    status,
		Timestamp: time.Now().UTC(),
		Service:   h.serviceName,
		Version:   h.version,
		DB:        dbStatus,
	})
}

func (h *HealthHandler) RegisterRoutes(r gin.IRouter) {
	r.GET("/health", h.HealthCheck)
	r.GET("/healthz", h.HealthCheck)
}
