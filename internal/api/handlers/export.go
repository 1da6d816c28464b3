package handlers

import (
	"errors"
	"fmt"
	"log"
	"net/http"

	"applicant-intake/internal/services"

	"github.com/gin-gonic/gin"
)

// ExportHandler holds the export service dependency
type ExportHandler struct {
	exporter services.ExportService
}

// NewExportHandler creates a new ExportHandler with the given service
func NewExportHandler(exporter services.ExportService) *ExportHandler {
	return &ExportHandler{exporter: exporter}
}

// ExportApplicationPDF godoc
// @Summary      Export an application as PDF
// @Description  Renders the full application form for one applicant ID as a downloadable PDF document.
// @Tags         applications
// @Produce      application/pdf
// @Param        id   path      string  true  "Applicant ID"
// @Success      200  {file}    file "PDF document"
// @Failure      404  {object}  map[string]string{error=string} "Application Not Found"
// @Failure      500  {object}  map[string]string{error=string} "Internal Server Error"
// @Router       /applications/{id}/pdf [get]
func (h *ExportHandler) ExportApplicationPDF(c *gin.Context) {
	id := c.Param("id")

	pdfBytes, err := h.exporter.ExportPDF(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Application not found"})
		} else {
			log.Printf("Error exporting application %s: %v", id, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate PDF. Please try again."})
		}
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", "application-"+id+".pdf"))
	c.Data(http.StatusOK, "application/pdf", pdfBytes)
}
