package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nihonga/admin-console/internal/form"
	"github.com/nihonga/admin-console/internal/service"
	"github.com/nihonga/admin-console/internal/utils"
)

// UserHandler handles the customer management screen.
type UserHandler struct {
	users *service.UserService
}

// NewUserHandler constructs a UserHandler.
func NewUserHandler(users *service.UserService) *UserHandler {
	return &UserHandler{users: users}
}

// List handles GET /screens/users. An optional ?search= filters by name
// or phone number.
func (h *UserHandler) List(c *gin.Context) {
	if err := h.users.Refresh(c.Request.Context()); err != nil {
		respondError(c, err)
		return
	}
	items, loading, stateErr := h.users.State(c.Query("search"))
	utils.Success(c, http.StatusOK, "Users retrieved", newListState(items, loading, stateErr))
}

// Schema handles GET /screens/users/schema.
func (h *UserHandler) Schema(c *gin.Context) {
	utils.Success(c, http.StatusOK, "Schema retrieved", h.users.EditSchema())
}

// Update handles PUT /screens/users/:id. The body is a flat object of
// field values matching the edit schema.
func (h *UserHandler) Update(c *gin.Context) {
	var values map[string]string
	if err := c.ShouldBindJSON(&values); err != nil {
		utils.Error(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid request body")
		return
	}
	if err := h.users.Edit(c.Request.Context(), c.Param("id"), form.Submission{Values: values}); err != nil {
		respondError(c, err)
		return
	}
	items, loading, stateErr := h.users.State("")
	utils.Success(c, http.StatusOK, "User updated", newListState(items, loading, stateErr))
}
