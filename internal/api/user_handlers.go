// internal/api/user_handlers.go
// User profile HTTP handlers

package api

import (
	"net/http"

	"swiss-pairing-engine/internal/middleware"
	"swiss-pairing-engine/internal/services"

	"github.com/gin-gonic/gin"
)

// HandleGetCurrentUser retrieves the current user's profile
func HandleGetCurrentUser(userService *services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.MustGet("user_id").(uint32)

		user, err := userService.GetByID(c.Request.Context(), userID)
		if err != nil {
			middleware.RespondError(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"user": user})
	}
}
