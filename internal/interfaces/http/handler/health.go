package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/inventory/backend/internal/infrastructure/logger"
	"github.com/inventory/backend/internal/interfaces/http/dto"
	"github.com/inventory/backend/internal/interfaces/http/router"
	"go.uber.org/zap"
)

// Pinger measures round-trip time to the document store
type Pinger interface {
	PingLatency(ctx context.Context) (time.Duration, error)
}

// HealthHandler reports document store connectivity
type HealthHandler struct {
	BaseHandler
	pinger Pinger
}

// NewHealthHandler creates a new HealthHandler
func NewHealthHandler(pinger Pinger) *HealthHandler {
	return &HealthHandler{pinger: pinger}
}

// Routes returns the route group for the health endpoint
func (h *HealthHandler) Routes() *router.DomainGroup {
	g := router.NewDomainGroup("health", "/health")
	g.GET("", h.Check)
	return g
}

// Check pings the store and reports latency
func (h *HealthHandler) Check(c *gin.Context) {
	latency, err := h.pinger.PingLatency(c.Request.Context())
	if err != nil {
		logger.GetGinLogger(c).Error("Health check failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, dto.HealthErrorResponse{
			Error:     "Database connection failed",
			Timestamp: time.Now().UTC(),
		})
		return
	}

	c.JSON(http.StatusOK, dto.HealthResponse{
		Status:    "connected",
		LatencyMs: latency.Milliseconds(),
		Timestamp: time.Now().UTC(),
	})
}
