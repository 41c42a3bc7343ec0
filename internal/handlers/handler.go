package handlers

import (
	_ "catalog_service/docs"
	"catalog_service/internal/logger"
	"catalog_service/internal/service"

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
	router.HandleMethodNotAllowed = true
	router.Use(gin.Recovery(), h.requestLogger, corsMiddleware)
	router.NoMethod(h.methodNotAllowed)
	router.NoRoute(h.notFound)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health endpoint
	router.GET("/health", h.health)

	h.registerAuthRoutes(router)
	h.registerAdminRoutes(router)
	h.registerCatalogRoutes(router)

	return router
}

func (h *Handler) registerAuthRoutes(r *gin.Engine) {
	r.OPTIONS("/auth", preflight(authAllowMethods, authAllowHeaders))
	r.POST("/auth", h.signIn)
	r.GET("/auth", h.checkSession)
}

func (h *Handler) registerAdminRoutes(r *gin.Engine) {
	r.OPTIONS("/admin", preflight(adminAllowMethods, defaultAllowHeaders))
	r.POST("/admin", h.admin)
}

func (h *Handler) registerCatalogRoutes(r *gin.Engine) {
	r.OPTIONS("/catalog", preflight(catalogAllowMethods, defaultAllowHeaders))
	r.GET("/catalog", h.listCatalog)
}
