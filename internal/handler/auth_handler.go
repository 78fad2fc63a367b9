package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/nihonga/admin-console/internal/utils"
)

// AuthHandler accepts console sign-ins. Credential verification lives in
// the identity service in front of this gateway; this endpoint only shapes
// the session payload the console expects.
type AuthHandler struct{}

func NewAuthHandler() *AuthHandler {
	return &AuthHandler{}
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "Invalid request body")
		return
	}

	utils.Success(c, 200, "Login successful", gin.H{
		"email": req.Email,
	})
}
