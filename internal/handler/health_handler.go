package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"stratoview-taxonomy-api/internal/database"
)

// HealthHandler serves liveness and readiness probes
type HealthHandler struct{}

// NewHealthHandler creates a new HealthHandler
func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

// Health godoc
// @Summary      Liveness probe
// @Description  Returns 200 while the process is running, regardless of
// @Description  downstream dependency state.
// @Tags         health
// @Produce      json
// @Success      200 {object} map[string]string
// @Router       /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Ready godoc
// @Summary      Readiness probe
// @Description  Returns 200 once the database connection is established.
// @Tags         health
// @Produce      json
// @Success      200 {object} map[string]string
// @Failure      503 {object} map[string]string
// @Router       /ready [get]
func (h *HealthHandler) Ready(c *gin.Context) {
	if !database.IsConnected() {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "reason": "database not connected"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ready"})
}
