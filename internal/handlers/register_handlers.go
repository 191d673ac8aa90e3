package handlers

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/govportal/citizen_services_backend/cmd/docs"
	portssvc "github.com/govportal/citizen_services_backend/internal/core/ports/services"
	"github.com/govportal/citizen_services_backend/internal/middleware"
	"github.com/govportal/citizen_services_backend/internal/platform/config"
)

// ErrorResponse is a generic error response structure for handlers.
type ErrorResponse struct {
	Error string `json:"error"`
}

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	// Register public authentication routes
	registerAuthRoutes(r, cfg, services.Auth)

	// Public routes: service catalog and anonymous-capable feedback submission
	public := r.Group("/api/v1")
	registerServiceRoutes(public, services.Catalog)
	registerFeedbackSubmitRoute(public, cfg, services.Feedback)

	// Citizen routes behind citizen JWT auth
	citizen := r.Group("/api/v1", middleware.AuthMiddleware(cfg.JWTSecret))
	registerProfileRoutes(citizen, services.Profile)
	RegisterApplicationRoutes(citizen, services.Application)
	registerPaymentRoutes(citizen, services.Payment)

	// Admin routes behind admin JWT auth
	admin := r.Group("/api/v1/admin", middleware.AdminAuthMiddleware(cfg.JWTSecret))
	registerAdminRoutes(admin, services.Application)
	registerFeedbackTriageRoutes(admin, services.Feedback)

	// Swagger routes (typically public or conditionally available)
	setupSwaggerRoutes(r, cfg)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
