package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// HealthHandler exposes liveness information.
type HealthHandler struct{}

// NewHealthHandler builds a new health handler instance.
func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

// Status godoc
// @Summary Service health check
// @Description Returns the status and current server time.
// @Tags Health
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /api/health [get]
func (h *HealthHandler) Status(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{
		Status:    "OK",
		Timestamp: time.Now().UTC(),
	})
}
