package handler

import (
	"context"
	"net/http"

	coreport "github.com/amirhossein-jamali/library-lending/internal/domain/port/core"
	"github.com/amirhossein-jamali/library-lending/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/library-lending/internal/infrastructure/adapter/database"
	"github.com/gin-gonic/gin"
)

// Banner is the body of GET /
const Banner = "Library lending API is running"

// DatabaseProbe reports database health
type DatabaseProbe interface {
	Ping(ctx context.Context) error
	PoolMetrics() database.ConnectionPoolMetrics
}

// HealthHandler serves liveness and readiness endpoints
type HealthHandler struct {
	db     DatabaseProbe
	logger coreport.Logger
}

// NewHealthHandler creates a new health handler instance
func NewHealthHandler(db DatabaseProbe, logger coreport.Logger) *HealthHandler {
	return &HealthHandler{
		db:     db,
		logger: logger,
	}
}

// Home handles the GET / endpoint
func (h *HealthHandler) Home(c *gin.Context) {
	c.String(http.StatusOK, Banner)
}

// Healthz handles the GET /healthz endpoint
func (h *HealthHandler) Healthz(c *gin.Context) {
	resp := dto.HealthResponse{
		Status:   "ok",
		Database: "up",
		Pool:     h.db.PoolMetrics(),
	}

	if err := h.db.Ping(c.Request.Context()); err != nil {
		h.logger.Error("Health check failed", map[string]any{"error": err.Error()})
		resp.Status = "degraded"
		resp.Database = "down"
		c.JSON(http.StatusServiceUnavailable, resp)
		return
	}

	c.JSON(http.StatusOK, resp)
}
