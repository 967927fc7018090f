// internal/api/tournament_handlers.go
// Tournament management HTTP handlers

package api

import (
	"net/http"
	"strconv"

	"swiss-pairing-engine/internal/apperr"
	"swiss-pairing-engine/internal/engine"
	"swiss-pairing-engine/internal/middleware"
	"swiss-pairing-engine/internal/repositories"
	"swiss-pairing-engine/internal/services"

	"github.com/gin-gonic/gin"
)

func parseUintParam(c *gin.Context, name string) (uint32, error) {
	v, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint32(v), nil
}

// HandleCreateTournament handles tournament creation
func HandleCreateTournament(tournamentService *services.TournamentService) gin.HandlerFunc {
	return func(c *gin.Context) {
		createdBy := c.MustGet("user_id").(uint32)

		var req services.CreateTournamentRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			middleware.RespondError(c, apperr.InvalidJSON.WithCause(err))
			return
		}

		tournament, err := tournamentService.Create(c.Request.Context(), createdBy, req)
		if err != nil {
			middleware.RespondError(c, err)
			return
		}

		c.JSON(http.StatusCreated, gin.H{"tournament": tournament})
	}
}

// HandleGetTournament retrieves a single tournament
func HandleGetTournament(tournamentService *services.TournamentService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := parseUintParam(c, "id")
		if err != nil {
			middleware.RespondError(c, apperr.TournamentNotFound.WithCause(err))
			return
		}

		tournament, err := tournamentService.GetByID(c.Request.Context(), id)
		if err != nil {
			middleware.RespondError(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"tournament": tournament})
	}
}

// HandleListTournaments lists tournaments with filters
func HandleListTournaments(tournamentService *services.TournamentService) gin.HandlerFunc {
	return func(c *gin.Context) {
		page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
		limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

		var createdBy uint32
		if v := c.Query("created_by"); v != "" {
			if id, err := strconv.ParseUint(v, 10, 32); err == nil {
				createdBy = uint32(id)
			}
		}

		filter := repositories.ListFilter{
			Page:      page,
			Limit:     limit,
			CreatedBy: createdBy,
			Active:    c.Query("active") == "true",
			Search:    c.Query("search"),
		}

		tournaments, total, err := tournamentService.List(c.Request.Context(), filter)
		if err != nil {
			middleware.RespondError(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"tournaments": tournaments,
			"pagination": gin.H{
				"page":  page,
				"limit": limit,
				"total": total,
			},
		})
	}
}

// HandleRegisterPlayer registers a player onto a tournament's roster
func HandleRegisterPlayer(tournamentService *services.TournamentService) gin.HandlerFunc {
	return func(c *gin.Context) {
		tournamentID, err := parseUintParam(c, "id")
		if err != nil {
			middleware.RespondError(c, apperr.TournamentNotFound.WithCause(err))
			return
		}

		var req struct {
			PlayerID uint32 `json:"player_id" binding:"required"`
			Rating   uint32 `json:"rating" binding:"required"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			middleware.RespondError(c, apperr.InvalidJSON.WithCause(err))
			return
		}

		registration, err := tournamentService.Register(c.Request.Context(), tournamentID, req.PlayerID, req.Rating)
		if err != nil {
			middleware.RespondError(c, err)
			return
		}

		c.JSON(http.StatusCreated, gin.H{"registration": registration})
	}
}

// HandleGetRegistrations retrieves a tournament's roster
func HandleGetRegistrations(tournamentService *services.TournamentService) gin.HandlerFunc {
	return func(c *gin.Context) {
		tournamentID, err := parseUintParam(c, "id")
		if err != nil {
			middleware.RespondError(c, apperr.TournamentNotFound.WithCause(err))
			return
		}

		regs, err := tournamentService.Registrations(c.Request.Context(), tournamentID)
		if err != nil {
			middleware.RespondError(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"registrations": regs})
	}
}

// HandleGetPairings retrieves every committed board for a tournament
func HandleGetPairings(tournamentService *services.TournamentService) gin.HandlerFunc {
	return func(c *gin.Context) {
		tournamentID, err := parseUintParam(c, "id")
		if err != nil {
			middleware.RespondError(c, apperr.TournamentNotFound.WithCause(err))
			return
		}

		pairings, err := tournamentService.Pairings(c.Request.Context(), tournamentID)
		if err != nil {
			middleware.RespondError(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"pairings": pairings})
	}
}

// HandleGeneratePairings generates the next round's pairings
func HandleGeneratePairings(tournamentService *services.TournamentService) gin.HandlerFunc {
	return func(c *gin.Context) {
		tournamentID, err := parseUintParam(c, "id")
		if err != nil {
			middleware.RespondError(c, apperr.TournamentNotFound.WithCause(err))
			return
		}

		var req struct {
			FirstColor string `json:"first_color" binding:"omitempty,oneof=white black"`
		}
		if err := c.ShouldBindJSON(&req); err != nil && err.Error() != "EOF" {
			middleware.RespondError(c, apperr.InvalidJSON.WithCause(err))
			return
		}

		firstColor := engine.White
		if req.FirstColor == "black" {
			firstColor = engine.Black
		}

		pairings, err := tournamentService.GeneratePairings(c.Request.Context(), tournamentID, firstColor)
		if err != nil {
			middleware.RespondError(c, err)
			return
		}

		c.JSON(http.StatusCreated, gin.H{"pairings": pairings})
	}
}

// HandleSubmitResult records a board's result for a given round
func HandleSubmitResult(tournamentService *services.TournamentService) gin.HandlerFunc {
	return func(c *gin.Context) {
		tournamentID, err := parseUintParam(c, "id")
		if err != nil {
			middleware.RespondError(c, apperr.TournamentNotFound.WithCause(err))
			return
		}
		round, err := parseUintParam(c, "round")
		if err != nil {
			middleware.RespondError(c, apperr.RoundNotFound.WithCause(err))
			return
		}
		board, err := parseUintParam(c, "board")
		if err != nil {
			middleware.RespondError(c, apperr.GameNotFound.WithCause(err))
			return
		}

		var req struct {
			Result string `json:"result" binding:"required"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			middleware.RespondError(c, apperr.InvalidJSON.WithCause(err))
			return
		}

		result, err := tournamentService.SubmitResult(c.Request.Context(), tournamentID, round, board, req.Result)
		if err != nil {
			middleware.RespondError(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"result": result.String()})
	}
}

// HandleGetStandings computes the standings table through a given round,
// or the full per-round standings history when asked for one.
func HandleGetStandings(tournamentService *services.TournamentService) gin.HandlerFunc {
	return func(c *gin.Context) {
		tournamentID, err := parseUintParam(c, "id")
		if err != nil {
			middleware.RespondError(c, apperr.TournamentNotFound.WithCause(err))
			return
		}

		if c.Query("history") != "" {
			history, err := tournamentService.StandingsHistory(c.Request.Context(), tournamentID)
			if err != nil {
				middleware.RespondError(c, err)
				return
			}
			c.JSON(http.StatusOK, gin.H{"standings_by_round": history})
			return
		}

		throughRound := -1
		if v := c.Query("through_round"); v != "" {
			if r, err := strconv.Atoi(v); err == nil {
				throughRound = r
			}
		}

		standings, err := tournamentService.Standings(c.Request.Context(), tournamentID, throughRound)
		if err != nil {
			middleware.RespondError(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"standings": standings})
	}
}

// HandleEndTournament closes out a tournament once all rounds are played
func HandleEndTournament(tournamentService *services.TournamentService) gin.HandlerFunc {
	return func(c *gin.Context) {
		tournamentID, err := parseUintParam(c, "id")
		if err != nil {
			middleware.RespondError(c, apperr.TournamentNotFound.WithCause(err))
			return
		}

		if err := tournamentService.End(c.Request.Context(), tournamentID); err != nil {
			middleware.RespondError(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "tournament ended"})
	}
}
