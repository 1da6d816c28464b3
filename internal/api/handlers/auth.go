package handlers

import (
	"errors"
	"log"
	"net/http"

	"applicant-intake/internal/services"
	"applicant-intake/internal/transport/dto"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// AuthHandler holds the auth service dependency for the admin gate
type AuthHandler struct {
	auth      services.AuthService
	validator *validator.Validate
}

// NewAuthHandler creates a new AuthHandler with the given service
func NewAuthHandler(auth services.AuthService, validate *validator.Validate) *AuthHandler {
	return &AuthHandler{auth: auth, validator: validate}
}

// AdminLogin godoc
// @Summary      Admin login
// @Description  Checks the configured dashboard credentials and returns a bearer token for the admin routes.
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        credentials body      dto.AdminLoginRequest true  "Admin credentials"
// @Success      200  {object}  dto.AdminLoginResponse "Token issued"
// @Failure      400  {object}  map[string]string{error=string} "Bad Request - Invalid input"
// @Failure      401  {object}  map[string]string{error=string} "Invalid credentials"
// @Failure      500  {object}  map[string]string{error=string} "Internal Server Error"
// @Router       /admin/login [post]
func (h *AuthHandler) AdminLogin(c *gin.Context) {
	var req dto.AdminLoginRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	if err := h.validator.Struct(req); err != nil {
		validationErrors := err.(validator.ValidationErrors)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": formatValidationErrors(validationErrors)})
		return
	}

	token, err := h.auth.Login(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		} else {
			log.Printf("Error during admin login: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Login failed"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.AdminLoginResponse{Token: token})
}
