package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nihonga/admin-console/internal/service"
	"github.com/nihonga/admin-console/internal/utils"
	"github.com/nihonga/admin-console/pkg/storefront"
)

// StockHandler handles the stock screen endpoints.
type StockHandler struct {
	stock *service.StockService
}

// NewStockHandler constructs a StockHandler.
func NewStockHandler(stock *service.StockService) *StockHandler {
	return &StockHandler{stock: stock}
}

// List handles GET /screens/stock?search=. The search term is applied
// server-side by the backend.
func (h *StockHandler) List(c *gin.Context) {
	_ = h.stock.Search(c.Request.Context(), c.Query("search"))
	items, loading, err := h.stock.State()
	utils.Success(c, http.StatusOK, "Stock retrieved", newListState(items, loading, err))
}

type updateStockRequest struct {
	Stock *int `json:"stock" binding:"required"`
}

// Update handles PUT /screens/stock/:id.
func (h *StockHandler) Update(c *gin.Context) {
	var req updateStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid request body")
		return
	}
	if err := h.stock.SetStock(c.Request.Context(), c.Param("id"), *req.Stock); err != nil {
		respondError(c, err)
		return
	}
	items, loading, stateErr := h.stock.State()
	utils.Success(c, http.StatusOK, "Stock updated", newListState(items, loading, stateErr))
}

// BulkUpdate handles PUT /screens/stock/bulk.
func (h *StockHandler) BulkUpdate(c *gin.Context) {
	var updates []storefront.StockUpdate
	if err := c.ShouldBindJSON(&updates); err != nil || len(updates) == 0 {
		utils.Error(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid request body")
		return
	}
	if err := h.stock.BulkSetStock(c.Request.Context(), updates); err != nil {
		respondError(c, err)
		return
	}
	items, loading, stateErr := h.stock.State()
	utils.Success(c, http.StatusOK, "Stock updated", newListState(items, loading, stateErr))
}

// Summary handles GET /screens/stock/summary.
func (h *StockHandler) Summary(c *gin.Context) {
	summary, err := h.stock.Summary(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, http.StatusOK, "Stock summary retrieved", summary)
}
