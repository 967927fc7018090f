// internal/api/admin_handlers.go
// Admin-only HTTP handlers

package api

import (
	"net/http"
	"strconv"

	"swiss-pairing-engine/internal/apperr"
	"swiss-pairing-engine/internal/middleware"
	"swiss-pairing-engine/internal/models"
	"swiss-pairing-engine/internal/repositories"
	"swiss-pairing-engine/internal/services"

	"github.com/gin-gonic/gin"
)

// HandleListUsers lists all users (admin only)
func HandleListUsers(userService *services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		users, err := userService.List(c.Request.Context())
		if err != nil {
			middleware.RespondError(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"users": users})
	}
}

// HandleUpdateUserRole updates a user's role
func HandleUpdateUserRole(userService *services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 32)
		if err != nil {
			middleware.RespondError(c, apperr.InvalidPlayerID.WithCause(err))
			return
		}

		var req struct {
			Role string `json:"role" binding:"required,oneof=standard admin"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			middleware.RespondError(c, apperr.InvalidJSON.WithCause(err))
			return
		}

		if err := userService.UpdateRole(c.Request.Context(), uint32(id), models.UserRole(req.Role)); err != nil {
			middleware.RespondError(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "role updated successfully"})
	}
}

// HandleListAllTournaments lists every tournament regardless of creator (admin only)
func HandleListAllTournaments(tournamentService *services.TournamentService) gin.HandlerFunc {
	return func(c *gin.Context) {
		page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
		limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

		filter := repositories.ListFilter{
			Page:   page,
			Limit:  limit,
			Search: c.Query("search"),
		}

		tournaments, total, err := tournamentService.List(c.Request.Context(), filter)
		if err != nil {
			middleware.RespondError(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"tournaments": tournaments,
			"total":       total,
		})
	}
}
