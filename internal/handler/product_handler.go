package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nihonga/admin-console/internal/service"
	"github.com/nihonga/admin-console/internal/utils"
)

// ProductHandler handles the product screen endpoints.
type ProductHandler struct {
	products    *service.ProductService
	collections *service.CollectionService
}

// NewProductHandler constructs a ProductHandler.
func NewProductHandler(products *service.ProductService, collections *service.CollectionService) *ProductHandler {
	return &ProductHandler{products: products, collections: collections}
}

// List handles GET /screens/products: refetch, then render the list state.
// A fetch failure stays inline in the state, it is not a request failure.
func (h *ProductHandler) List(c *gin.Context) {
	_ = h.products.Refresh(c.Request.Context())
	items, loading, err := h.products.State()
	utils.Success(c, http.StatusOK, "Products retrieved", newListState(items, loading, err))
}

// Schema handles GET /screens/products/schema?mode=add|edit. Collection
// select options reflect the current collection list.
func (h *ProductHandler) Schema(c *gin.Context) {
	collections := h.collections.Items()
	if len(collections) == 0 {
		if err := h.collections.Refresh(c.Request.Context()); err == nil {
			collections = h.collections.Items()
		}
	}
	if c.Query("mode") == "edit" {
		utils.Success(c, http.StatusOK, "Schema retrieved", h.products.EditSchema(collections))
		return
	}
	utils.Success(c, http.StatusOK, "Schema retrieved", h.products.AddSchema(collections))
}

// Create handles POST /screens/products (multipart).
func (h *ProductHandler) Create(c *gin.Context) {
	sub, err := submissionFromRequest(c)
	if err != nil {
		utils.Error(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid multipart form")
		return
	}
	if err := h.products.Add(c.Request.Context(), sub); err != nil {
		respondError(c, err)
		return
	}
	items, loading, stateErr := h.products.State()
	utils.Success(c, http.StatusCreated, "Product created", newListState(items, loading, stateErr))
}

// Update handles PUT /screens/products/:id (multipart).
func (h *ProductHandler) Update(c *gin.Context) {
	sub, err := submissionFromRequest(c)
	if err != nil {
		utils.Error(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid multipart form")
		return
	}
	if err := h.products.Edit(c.Request.Context(), c.Param("id"), sub); err != nil {
		respondError(c, err)
		return
	}
	items, loading, stateErr := h.products.State()
	utils.Success(c, http.StatusOK, "Product updated", newListState(items, loading, stateErr))
}

// Delete handles DELETE /screens/products/:id. The removal is optimistic; on
// backend rejection the restored list rides along with the error state.
func (h *ProductHandler) Delete(c *gin.Context) {
	if err := h.products.Remove(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	items, loading, stateErr := h.products.State()
	utils.Success(c, http.StatusOK, "Product deleted", newListState(items, loading, stateErr))
}

// ByCollection handles GET /screens/products/by-collection/:id.
func (h *ProductHandler) ByCollection(c *gin.Context) {
	products, err := h.products.ByCollection(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, http.StatusOK, "Products retrieved", products)
}
