package handlers

import (
	"errors"
	"log"
	"net/http"

	"applicant-intake/internal/storage"
	"applicant-intake/internal/transport/dto"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// ApplicationHandler holds the repository dependency for application operations
type ApplicationHandler struct {
	repo      storage.ApplicationRepository
	validator *validator.Validate
}

// NewApplicationHandler creates a new ApplicationHandler with the given repository
func NewApplicationHandler(repo storage.ApplicationRepository, validate *validator.Validate) *ApplicationHandler {
	return &ApplicationHandler{repo: repo, validator: validate}
}

// SubmitApplication godoc
// @Summary      Submit a new job application
// @Description  Creates the applicant, application metadata and any education/employment records in one transaction. Returns the allocated applicant ID and control number.
// @Tags         applications
// @Accept       json
// @Produce      json
// @Param        application body      dto.SubmitApplicationRequest true  "Application payload"
// @Success      201  {object}  models.ApplicationReceipt "Application submitted"
// @Failure      400  {object}  map[string]string{error=string} "Bad Request - Invalid input"
// @Failure      500  {object}  map[string]string{error=string} "Internal Server Error"
// @Router       /applications [post]
func (h *ApplicationHandler) SubmitApplication(c *gin.Context) {
	var req dto.SubmitApplicationRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	if err := h.validator.Struct(req); err != nil {
		validationErrors := err.(validator.ValidationErrors)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": formatValidationErrors(validationErrors)})
		return
	}

	receipt, err := h.repo.Create(c.Request.Context(), &req)
	if err != nil {
		log.Printf("Error creating application: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to submit application"})
		return
	}

	c.JSON(http.StatusCreated, receipt)
}

// GetApplications godoc
// @Summary      List all applications
// @Description  Retrieves every application aggregate, most recent first, with full education and employment collections.
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   models.ApplicationRecord "Successfully retrieved applications"
// @Failure      500  {object}  map[string]string{error=string} "Internal Server Error"
// @Router       /admin/applications [get]
func (h *ApplicationHandler) GetApplications(c *gin.Context) {
	records, err := h.repo.GetAll(c.Request.Context())
	if err != nil {
		log.Printf("Error fetching applications: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve applications"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"applications": records})
}

// GetApplicationByID godoc
// @Summary      Get one application
// @Description  Retrieves the full aggregate for one applicant ID.
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Applicant ID"
// @Success      200  {object}  models.ApplicationRecord "Successfully retrieved application"
// @Failure      404  {object}  map[string]string{error=string} "Application Not Found"
// @Failure      500  {object}  map[string]string{error=string} "Internal Server Error"
// @Router       /admin/applications/{id} [get]
func (h *ApplicationHandler) GetApplicationByID(c *gin.Context) {
	req := dto.GetApplicationRequest{ApplicantID: c.Param("id")}

	if err := h.validator.Struct(req); err != nil {
		validationErrors := err.(validator.ValidationErrors)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": formatValidationErrors(validationErrors)})
		return
	}

	record, err := h.repo.GetByID(c.Request.Context(), req.ApplicantID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Application not found"})
		} else {
			log.Printf("Error fetching application %s: %v", req.ApplicantID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve application"})
		}
		return
	}
	c.JSON(http.StatusOK, record)
}

// ReplaceApplication godoc
// @Summary      Replace an existing application
// @Description  Updates the applicant and metadata rows in place and fully rewrites the education and employment collections from the payload. The control number is never changed.
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id          path      string                        true  "Applicant ID"
// @Param        application body      dto.ReplaceApplicationRequest true  "Full replacement payload"
// @Success      200  {object}  map[string]bool{success=bool} "Application replaced"
// @Failure      400  {object}  map[string]string{error=string} "Bad Request - Invalid input"
// @Failure      404  {object}  map[string]string{error=string} "Application Not Found"
// @Failure      500  {object}  map[string]string{error=string} "Internal Server Error"
// @Router       /admin/applications/{id} [put]
func (h *ApplicationHandler) ReplaceApplication(c *gin.Context) {
	var req dto.ReplaceApplicationRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}
	req.ApplicantID = c.Param("id")

	if err := h.validator.Struct(req); err != nil {
		validationErrors := err.(validator.ValidationErrors)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": formatValidationErrors(validationErrors)})
		return
	}

	err := h.repo.Replace(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Application not found"})
		} else {
			log.Printf("Error replacing application %s: %v", req.ApplicantID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update application"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// DeleteApplication godoc
// @Summary      Delete an application
// @Description  Removes every row for the applicant ID across all four tables, children first. Deleting an unknown ID succeeds with no effect.
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Applicant ID"
// @Success      204  {object}  nil "Application deleted"
// @Failure      500  {object}  map[string]string{error=string} "Internal Server Error"
// @Router       /admin/applications/{id} [delete]
func (h *ApplicationHandler) DeleteApplication(c *gin.Context) {
	req := dto.DeleteApplicationRequest{ApplicantID: c.Param("id")}

	if err := h.validator.Struct(req); err != nil {
		validationErrors := err.(validator.ValidationErrors)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": formatValidationErrors(validationErrors)})
		return
	}

	if err := h.repo.Delete(c.Request.Context(), req.ApplicantID); err != nil {
		log.Printf("Error deleting application %s: %v", req.ApplicantID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete application"})
		return
	}

	c.Status(http.StatusNoContent)
}
