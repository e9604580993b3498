package handlers

import (
	_ "stockcast/docs"
	"stockcast/internal/logger"
	"stockcast/internal/service"

	"github.com/gin-gonic/gin"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Handler wires HTTP layer to services and logging.
type Handler struct {
	services *service.Service
	log      *logger.Logger
}

// NewHandler constructs a new HTTP handler with dependencies.
func NewHandler(services *service.Service, log *logger.Logger) *Handler {
	return &Handler{services: services, log: log}
}

// InitRoutes builds and returns the Gin router with all routes registered.
func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health endpoint
	router.GET("/health", h.health)

	// Auth endpoints (paths fixed by the dashboard frontend)
	router.POST("/signup", h.signUp)
	router.POST("/login", h.logIn)

	// Protected API endpoints
	h.registerAPIRoutes(router)

	// WebSocket activity feed, served on the same port via HTTP upgrade
	router.GET("/ws", h.wsConnect)

	return router
}

func (h *Handler) registerAPIRoutes(r *gin.Engine) {
	api := r.Group("/api", h.identityMiddleware)
	{
		api.POST("/forecast", h.forecast)
		api.POST("/analysis", h.analysis)
		api.POST("/compare", h.compare)
		api.GET("/history", h.getHistory)
	}
}
