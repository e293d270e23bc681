package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"cylindertrack/internal/port"
)

// HealthHandler handles health check endpoints.
type HealthHandler struct {
	store port.Pinger
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(store port.Pinger) *HealthHandler {
	return &HealthHandler{store: store}
}

// Liveness handles GET /healthz
func (h *HealthHandler) Liveness(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Readiness handles GET /readyz
func (h *HealthHandler) Readiness(c *gin.Context) {
	if err := h.store.PingContext(c.Request.Context()); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "error": "store not reachable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
