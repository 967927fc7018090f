// internal/server/server.go
// HTTP server setup with dependency injection

package server

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"swiss-pairing-engine/internal/api"
	"swiss-pairing-engine/internal/config"
	"swiss-pairing-engine/internal/database"
	"swiss-pairing-engine/internal/middleware"
	"swiss-pairing-engine/internal/services"
	"swiss-pairing-engine/internal/websocket"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Server represents the HTTP server
type Server struct {
	config   *config.Config
	router   *gin.Engine
	services *services.Container
	logger   *log.Logger
	server   *http.Server
}

// New creates a new server with all dependencies
func New(cfg *config.Config, db *database.Connections, logger *log.Logger) *Server {
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	var hub *websocket.Hub
	if cfg.Features.EnableWebSocket {
		hub = websocket.NewHub(logger)
	}

	var broadcaster services.Broadcaster
	if hub != nil {
		broadcaster = hub
	}
	serviceContainer := services.NewContainer(db, cfg, broadcaster, logger)

	if cfg.Admin.Username != "" {
		if err := serviceContainer.Auth.EnsureAdmin(context.Background(), cfg.Admin.Username, cfg.Admin.Password); err != nil {
			logger.Printf("failed to bootstrap admin user: %v", err)
		}
	}

	router := setupRouter(cfg, serviceContainer, hub, logger)

	if hub != nil {
		go hub.Run()
	}

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	return &Server{
		config:   cfg,
		router:   router,
		services: serviceContainer,
		logger:   logger,
		server:   srv,
	}
}

// setupRouter configures all routes and middleware
func setupRouter(cfg *config.Config, svc *services.Container, hub *websocket.Hub, logger *log.Logger) *gin.Engine {
	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(middleware.Logger(logger))
	router.Use(middleware.RequestID())
	router.Use(middleware.RateLimiter(svc.Cache))

	router.Use(cors.New(cors.Config{
		AllowAllOrigins:  true,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: false,
		MaxAge:           12 * 3600,
	}))

	if cfg.Features.MaintenanceMode {
		router.Use(middleware.MaintenanceMode())
	}

	router.GET("/health", api.HealthCheck(cfg))

	v1 := router.Group("/api/v1")
	{
		api.RegisterAuthRoutes(v1, svc)
		api.RegisterUserRoutes(v1, svc)
		api.RegisterPlayerRoutes(v1, svc)
		api.RegisterTournamentRoutes(v1, svc)
		api.RegisterAdminRoutes(v1, svc)
	}

	if cfg.Features.EnableWebSocket && hub != nil {
		router.GET("/ws", middleware.OptionalAuth(svc.Auth), websocket.HandleConnection(hub))
	}

	return router
}

// Start begins listening for HTTP requests
func (s *Server) Start() error {
	return s.server.ListenAndServe()
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Println("Shutting down server...")
	return s.server.Shutdown(ctx)
}
