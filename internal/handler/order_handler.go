package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nihonga/admin-console/internal/service"
	"github.com/nihonga/admin-console/internal/utils"
	"github.com/nihonga/admin-console/pkg/storefront"
)

// OrderHandler handles the order list and order detail workflow endpoints.
type OrderHandler struct {
	orders *service.OrderService
}

// NewOrderHandler constructs an OrderHandler.
func NewOrderHandler(orders *service.OrderService) *OrderHandler {
	return &OrderHandler{orders: orders}
}

// List handles GET /screens/orders?search=.
func (h *OrderHandler) List(c *gin.Context) {
	_ = h.orders.Refresh(c.Request.Context())
	items, loading, err := h.orders.State(c.Query("search"))
	utils.Success(c, http.StatusOK, "Orders retrieved", newListState(items, loading, err))
}

// orderDetail is the detail view payload: the order snapshot, its read-only
// timeline and the transitions currently offered.
type orderDetail struct {
	Order      storefront.Order                `json:"order"`
	Timeline   []storefront.StatusHistoryEntry `json:"timeline"`
	Actions    service.OrderActions            `json:"actions"`
	Statuses   []string                        `json:"statuses"`
	InvoiceURL string                          `json:"invoiceUrl"`
}

func (h *OrderHandler) detail(c *gin.Context) (*service.OrderWorkflow, bool) {
	w, err := h.orders.Workflow(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return nil, false
	}
	return w, true
}

func renderDetail(c *gin.Context, w *service.OrderWorkflow, code int, message string) {
	utils.Success(c, code, message, orderDetail{
		Order:      w.Order(),
		Timeline:   w.Timeline(),
		Actions:    w.Actions(),
		Statuses:   service.OrderStatuses(),
		InvoiceURL: w.InvoiceURL(),
	})
}

// Get handles GET /screens/orders/:id.
func (h *OrderHandler) Get(c *gin.Context) {
	w, ok := h.detail(c)
	if !ok {
		return
	}
	renderDetail(c, w, http.StatusOK, "Order retrieved")
}

type changeStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// ChangeStatus handles PUT /screens/orders/:id/status.
func (h *OrderHandler) ChangeStatus(c *gin.Context) {
	var req changeStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid request body")
		return
	}
	w, ok := h.detail(c)
	if !ok {
		return
	}
	if err := w.ChangeStatus(c.Request.Context(), req.Status); err != nil {
		respondError(c, err)
		return
	}
	renderDetail(c, w, http.StatusOK, "Order status updated")
}

// Cancel handles POST /screens/orders/:id/cancel.
func (h *OrderHandler) Cancel(c *gin.Context) {
	w, ok := h.detail(c)
	if !ok {
		return
	}
	if err := w.Cancel(c.Request.Context()); err != nil {
		respondError(c, err)
		return
	}
	renderDetail(c, w, http.StatusOK, "Order cancelled")
}

// Refund handles POST /screens/orders/:id/refund.
func (h *OrderHandler) Refund(c *gin.Context) {
	w, ok := h.detail(c)
	if !ok {
		return
	}
	if err := w.Refund(c.Request.Context()); err != nil {
		respondError(c, err)
		return
	}
	renderDetail(c, w, http.StatusOK, "Payment refunded")
}

// Invoice handles GET /screens/orders/:id/invoice by redirecting to the
// backend's invoice document.
func (h *OrderHandler) Invoice(c *gin.Context) {
	w, ok := h.detail(c)
	if !ok {
		return
	}
	c.Redirect(http.StatusTemporaryRedirect, w.InvoiceURL())
}
