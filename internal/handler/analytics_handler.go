package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nihonga/admin-console/internal/service"
	"github.com/nihonga/admin-console/internal/utils"
)

// AnalyticsHandler exposes the cart and wishlist report screens.
type AnalyticsHandler struct {
	analytics *service.AnalyticsService
}

// NewAnalyticsHandler constructs an AnalyticsHandler.
func NewAnalyticsHandler(analytics *service.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{analytics: analytics}
}

// Carts handles GET /screens/analytics/carts.
func (h *AnalyticsHandler) Carts(c *gin.Context) {
	report, err := h.analytics.Carts(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, http.StatusOK, "Cart report retrieved", report)
}

// Wishlists handles GET /screens/analytics/wishlists.
func (h *AnalyticsHandler) Wishlists(c *gin.Context) {
	report, err := h.analytics.Wishlists(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, http.StatusOK, "Wishlist report retrieved", report)
}
