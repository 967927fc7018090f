// internal/api/routes.go
// Central route registration for all API endpoints

package api

import (
	"swiss-pairing-engine/internal/middleware"
	"swiss-pairing-engine/internal/services"

	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes registers authentication-related routes
func RegisterAuthRoutes(router *gin.RouterGroup, svc *services.Container) {
	auth := router.Group("/auth")
	{
		auth.POST("/register", HandleRegister(svc.Auth))
		auth.POST("/login", HandleLogin(svc.Auth))
		auth.PUT("/password", middleware.RequireAuth(svc.Auth), HandleChangePassword(svc.Auth))
	}
}

// RegisterUserRoutes registers user-related routes
func RegisterUserRoutes(router *gin.RouterGroup, svc *services.Container) {
	users := router.Group("/users")
	users.Use(middleware.RequireAuth(svc.Auth))
	{
		users.GET("/me", HandleGetCurrentUser(svc.User))
	}
}

// RegisterPlayerRoutes registers player pool routes
func RegisterPlayerRoutes(router *gin.RouterGroup, svc *services.Container) {
	players := router.Group("/players")
	{
		players.GET("", HandleSearchPlayers(svc.Player))
		players.GET("/:id", HandleGetPlayer(svc.Player))

		players.Use(middleware.RequireAuth(svc.Auth))
		players.POST("", HandleCreatePlayer(svc.Player))
	}
}

// RegisterTournamentRoutes registers tournament-related routes
func RegisterTournamentRoutes(router *gin.RouterGroup, svc *services.Container) {
	tournaments := router.Group("/tournaments")
	{
		// Public routes
		tournaments.GET("", HandleListTournaments(svc.Tournament))
		tournaments.GET("/:id", HandleGetTournament(svc.Tournament))
		tournaments.GET("/:id/registrations", HandleGetRegistrations(svc.Tournament))
		tournaments.GET("/:id/pairings", HandleGetPairings(svc.Tournament))
		tournaments.GET("/:id/standings", HandleGetStandings(svc.Tournament))

		// Protected routes
		tournaments.Use(middleware.RequireAuth(svc.Auth))
		tournaments.POST("", HandleCreateTournament(svc.Tournament))
		tournaments.POST("/:id/registrations", middleware.RequireTournamentOwner(svc), HandleRegisterPlayer(svc.Tournament))
		tournaments.POST("/:id/pairings", middleware.RequireTournamentOwner(svc), HandleGeneratePairings(svc.Tournament))
		tournaments.PUT("/:id/pairings/:round/:board", middleware.RequireTournamentOwner(svc), HandleSubmitResult(svc.Tournament))
		tournaments.POST("/:id/end", middleware.RequireTournamentOwner(svc), HandleEndTournament(svc.Tournament))
	}
}

// RegisterAdminRoutes registers admin-only routes
func RegisterAdminRoutes(router *gin.RouterGroup, svc *services.Container) {
	admin := router.Group("/admin")
	admin.Use(middleware.RequireAuth(svc.Auth))
	admin.Use(middleware.RequireAdmin())
	{
		admin.GET("/users", HandleListUsers(svc.User))
		admin.PUT("/users/:id/role", HandleUpdateUserRole(svc.User))
		admin.GET("/tournaments", HandleListAllTournaments(svc.Tournament))
		admin.PUT("/players/:id/ratings", HandleRefreshPlayerRatings(svc.Player))
	}
}
