package routes

import (
	"applicant-intake/internal/api/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterAdminRoutes registers the dashboard routes. Everything except login
// sits behind the JWT gate.
func RegisterAdminRoutes(rg *gin.RouterGroup, applicationHandler handlers.ApplicationHandlerInterface, authHandler handlers.AuthHandlerInterface, authMiddleware gin.HandlerFunc) {
	admin := rg.Group("/admin")

	admin.POST("/login", authHandler.AdminLogin)

	applications := admin.Group("/applications")
	applications.Use(authMiddleware)
	{
		applications.GET("", applicationHandler.GetApplications)
		applications.GET("/:id", applicationHandler.GetApplicationByID)
		applications.PUT("/:id", applicationHandler.ReplaceApplication)
		applications.DELETE("/:id", applicationHandler.DeleteApplication)
	}
}
