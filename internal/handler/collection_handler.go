package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nihonga/admin-console/internal/service"
	"github.com/nihonga/admin-console/internal/utils"
)

// CollectionHandler handles the collections screen endpoints.
type CollectionHandler struct {
	collections *service.CollectionService
}

// NewCollectionHandler constructs a CollectionHandler.
func NewCollectionHandler(collections *service.CollectionService) *CollectionHandler {
	return &CollectionHandler{collections: collections}
}

// List handles GET /screens/collections.
func (h *CollectionHandler) List(c *gin.Context) {
	_ = h.collections.Refresh(c.Request.Context())
	items, loading, err := h.collections.State()
	utils.Success(c, http.StatusOK, "Collections retrieved", newListState(items, loading, err))
}

// Schema handles GET /screens/collections/schema?mode=add|edit.
func (h *CollectionHandler) Schema(c *gin.Context) {
	if c.Query("mode") == "edit" {
		utils.Success(c, http.StatusOK, "Schema retrieved", h.collections.EditSchema())
		return
	}
	utils.Success(c, http.StatusOK, "Schema retrieved", h.collections.AddSchema())
}

// Create handles POST /screens/collections (multipart).
func (h *CollectionHandler) Create(c *gin.Context) {
	sub, err := submissionFromRequest(c)
	if err != nil {
		utils.Error(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid multipart form")
		return
	}
	if err := h.collections.Add(c.Request.Context(), sub); err != nil {
		respondError(c, err)
		return
	}
	items, loading, stateErr := h.collections.State()
	utils.Success(c, http.StatusCreated, "Collection created", newListState(items, loading, stateErr))
}

// Update handles PUT /screens/collections/:id (multipart).
func (h *CollectionHandler) Update(c *gin.Context) {
	sub, err := submissionFromRequest(c)
	if err != nil {
		utils.Error(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid multipart form")
		return
	}
	if err := h.collections.Edit(c.Request.Context(), c.Param("id"), sub); err != nil {
		respondError(c, err)
		return
	}
	items, loading, stateErr := h.collections.State()
	utils.Success(c, http.StatusOK, "Collection updated", newListState(items, loading, stateErr))
}

// Delete handles DELETE /screens/collections/:id.
func (h *CollectionHandler) Delete(c *gin.Context) {
	if err := h.collections.Remove(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	items, loading, stateErr := h.collections.State()
	utils.Success(c, http.StatusOK, "Collection deleted", newListState(items, loading, stateErr))
}
