// internal/api/player_handlers.go
// Player pool HTTP handlers

package api

import (
	"net/http"
	"strconv"

	"swiss-pairing-engine/internal/apperr"
	"swiss-pairing-engine/internal/middleware"
	"swiss-pairing-engine/internal/services"

	"github.com/gin-gonic/gin"
)

// HandleCreatePlayer adds a new player to the pool
func HandleCreatePlayer(playerService *services.PlayerService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req services.CreatePlayerRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			middleware.RespondError(c, apperr.InvalidJSON.WithCause(err))
			return
		}

		player, err := playerService.Create(c.Request.Context(), req)
		if err != nil {
			middleware.RespondError(c, err)
			return
		}

		c.JSON(http.StatusCreated, gin.H{"player": player})
	}
}

// HandleGetPlayer retrieves a player by ID
func HandleGetPlayer(playerService *services.PlayerService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := parseUintParam(c, "id")
		if err != nil {
			middleware.RespondError(c, apperr.PlayerNotFound.WithCause(err))
			return
		}

		player, err := playerService.GetByID(c.Request.Context(), id)
		if err != nil {
			middleware.RespondError(c, apperr.PlayerNotFound.WithCause(err))
			return
		}

		c.JSON(http.StatusOK, gin.H{"player": player})
	}
}

// HandleRefreshPlayerRatings overwrites a player's ratings from an
// external source (e.g. a FIDE lookup)
func HandleRefreshPlayerRatings(playerService *services.PlayerService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := parseUintParam(c, "id")
		if err != nil {
			middleware.RespondError(c, apperr.PlayerNotFound.WithCause(err))
			return
		}

		var req services.RefreshRatingsRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			middleware.RespondError(c, apperr.InvalidJSON.WithCause(err))
			return
		}

		if err := playerService.RefreshRatings(c.Request.Context(), id, req); err != nil {
			middleware.RespondError(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "ratings updated"})
	}
}

// HandleSearchPlayers searches the player pool by name
func HandleSearchPlayers(playerService *services.PlayerService) gin.HandlerFunc {
	return func(c *gin.Context) {
		limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

		players, err := playerService.Search(c.Request.Context(), c.Query("q"), limit)
		if err != nil {
			middleware.RespondError(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"players": players})
	}
}
