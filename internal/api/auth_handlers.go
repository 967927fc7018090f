// internal/api/auth_handlers.go
// Authentication-related HTTP handlers

package api

import (
	"net/http"

	"swiss-pairing-engine/internal/apperr"
	"swiss-pairing-engine/internal/middleware"
	"swiss-pairing-engine/internal/models"
	"swiss-pairing-engine/internal/services"

	"github.com/gin-gonic/gin"
)

// HandleRegister handles user registration
func HandleRegister(authService *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.RegisterRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			middleware.RespondError(c, apperr.InvalidJSON.WithCause(err))
			return
		}

		user, tokens, err := authService.Register(c.Request.Context(), req)
		if err != nil {
			middleware.RespondError(c, err)
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"user": user,
			"auth": tokens,
		})
	}
}

// HandleLogin handles user login
func HandleLogin(authService *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.LoginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			middleware.RespondError(c, apperr.InvalidJSON.WithCause(err))
			return
		}

		user, tokens, err := authService.Login(c.Request.Context(), req.Username, req.Password)
		if err != nil {
			middleware.RespondError(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"user": user,
			"auth": tokens,
		})
	}
}

// HandleChangePassword handles password change for authenticated users
func HandleChangePassword(authService *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.MustGet("user_id").(uint32)

		var req struct {
			CurrentPassword string `json:"current_password" binding:"required"`
			NewPassword     string `json:"new_password" binding:"required,min=8"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			middleware.RespondError(c, apperr.InvalidJSON.WithCause(err))
			return
		}

		if err := authService.ChangePassword(c.Request.Context(), userID, req.CurrentPassword, req.NewPassword); err != nil {
			middleware.RespondError(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "password changed successfully"})
	}
}
