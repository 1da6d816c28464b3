package routes

import (
	"applicant-intake/internal/api/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterApplicationRoutes registers the public intake routes: form
// submission and PDF export of a submitted application.
func RegisterApplicationRoutes(rg *gin.RouterGroup, applicationHandler handlers.ApplicationHandlerInterface, exportHandler handlers.ExportHandlerInterface) {
	applications := rg.Group("/applications")
	{
		applications.POST("", applicationHandler.SubmitApplication)
		applications.GET("/:id/pdf", exportHandler.ExportApplicationPDF)
	}
}
