package handler

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/nihonga/admin-console/internal/utils"
	"github.com/nihonga/admin-console/pkg/storefront"
)

var startTime = time.Now()

// HealthHandler provides health endpoint.
type HealthHandler struct {
	storefront *storefront.Client
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(client *storefront.Client) *HealthHandler {
	return &HealthHandler{storefront: client}
}

// GetHealth responds with service and storefront backend status.
func (h *HealthHandler) GetHealth(c *gin.Context) {
	summary, err := h.storefront.StockSummary(c.Request.Context())

	backendStatus := "connected"
	var productCount int
	if err != nil {
		backendStatus = "disconnected"
	} else {
		productCount = summary.Total
	}

	utils.Success(c, 200, "Service is healthy", gin.H{
		"status":  "healthy",
		"version": "1.0.0",
		"uptime":  int(time.Since(startTime).Seconds()),
		"storefront": gin.H{
			"status":   backendStatus,
			"products": productCount,
		},
	})
}
