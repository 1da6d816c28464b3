// internal/api/handlers/interfaces.go
package handlers

import "github.com/gin-gonic/gin"

// ApplicationHandlerInterface defines the methods needed by the application routes.
type ApplicationHandlerInterface interface {
	SubmitApplication(c *gin.Context)
	GetApplications(c *gin.Context)
	GetApplicationByID(c *gin.Context)
	ReplaceApplication(c *gin.Context)
	DeleteApplication(c *gin.Context)
}

// ExportHandlerInterface defines the methods needed by the export route.
type ExportHandlerInterface interface {
	ExportApplicationPDF(c *gin.Context)
}

// AuthHandlerInterface defines the methods needed by the admin login route.
type AuthHandlerInterface interface {
	AdminLogin(c *gin.Context)
}

// Ensure handlers implement the interfaces (compile-time check)
var _ ApplicationHandlerInterface = (*ApplicationHandler)(nil)
var _ ExportHandlerInterface = (*ExportHandler)(nil)
var _ AuthHandlerInterface = (*AuthHandler)(nil)
