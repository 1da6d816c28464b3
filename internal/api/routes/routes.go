// internal/api/routes/routes.go
package routes

import (
	"log"

	"applicant-intake/internal/api/handlers"
	"applicant-intake/internal/api/middleware"
	"applicant-intake/internal/app"

	"github.com/gin-gonic/gin"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes sets up the API routes by calling resource-specific registration functions
func RegisterRoutes(router *gin.Engine, app *app.Application) {

	// --- Base API Group ---
	apiV1 := router.Group("/api/v1")

	//Create handlers
	applicationHandler := handlers.NewApplicationHandler(app.AppRepo, app.Validator)
	exportHandler := handlers.NewExportHandler(app.Exporter)
	authHandler := handlers.NewAuthHandler(app.Auth, app.Validator)

	// --- Middleware ---
	authMiddleware := middleware.JWTAuthMiddleware(app.Config.JWT.Secret)

	// --- Register Resource Routes ---
	RegisterApplicationRoutes(apiV1, applicationHandler, exportHandler)
	RegisterAdminRoutes(apiV1, applicationHandler, authHandler, authMiddleware)

	// --- Health Check ---
	router.GET("/health", handlers.HealthCheck)

	log.Println("Configuring Swagger UI handler")
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
