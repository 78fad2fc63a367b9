package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nihonga/admin-console/internal/form"
	"github.com/nihonga/admin-console/internal/service"
	"github.com/nihonga/admin-console/internal/utils"
)

// AdminHandler handles the admin management screen.
type AdminHandler struct {
	admins *service.AdminService
}

// NewAdminHandler constructs an AdminHandler.
func NewAdminHandler(admins *service.AdminService) *AdminHandler {
	return &AdminHandler{admins: admins}
}

// List handles GET /screens/admins.
func (h *AdminHandler) List(c *gin.Context) {
	if err := h.admins.Refresh(c.Request.Context()); err != nil {
		respondError(c, err)
		return
	}
	items, loading, stateErr := h.admins.State()
	utils.Success(c, http.StatusOK, "Admins retrieved", newListState(items, loading, stateErr))
}

// Schema handles GET /screens/admins/schema.
func (h *AdminHandler) Schema(c *gin.Context) {
	utils.Success(c, http.StatusOK, "Schema retrieved", h.admins.AddSchema())
}

type createAdminRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Create handles POST /screens/admins.
func (h *AdminHandler) Create(c *gin.Context) {
	var req createAdminRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid request body")
		return
	}
	sub := form.Submission{Values: map[string]string{
		"name":     req.Name,
		"email":    req.Email,
		"password": req.Password,
	}}
	if err := h.admins.Add(c.Request.Context(), sub); err != nil {
		respondError(c, err)
		return
	}
	items, loading, stateErr := h.admins.State()
	utils.Success(c, http.StatusCreated, "Admin created", newListState(items, loading, stateErr))
}

// Delete handles DELETE /screens/admins/:id.
func (h *AdminHandler) Delete(c *gin.Context) {
	if err := h.admins.Remove(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	items, loading, stateErr := h.admins.State()
	utils.Success(c, http.StatusOK, "Admin deleted", newListState(items, loading, stateErr))
}
