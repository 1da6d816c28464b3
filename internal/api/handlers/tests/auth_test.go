package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"applicant-intake/internal/api/handlers"
	"applicant-intake/internal/api/middleware"
	"applicant-intake/internal/services"
	"applicant-intake/internal/transport/dto"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testJWTSecret = "handler-test-secret"

func setupAuthRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	auth, err := services.NewAuthService("admin", "correct-horse", testJWTSecret, time.Hour)
	require.NoError(t, err)
	handler := handlers.NewAuthHandler(auth, validator.New())

	router := gin.New()
	router.POST("/admin/login", handler.AdminLogin)

	// A trivially guarded route to exercise the gate end to end.
	guarded := router.Group("/admin", middleware.JWTAuthMiddleware(testJWTSecret))
	guarded.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	return router
}

func TestAdminLoginIssuesUsableToken(t *testing.T) {
	router := setupAuthRouter(t)

	body, _ := json.Marshal(dto.AdminLoginRequest{Username: "admin", Password: "correct-horse"})
	req := httptest.NewRequest(http.MethodPost, "/admin/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var resp dto.AdminLoginResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)

	// The issued token must pass the admin gate.
	pingReq := httptest.NewRequest(http.MethodGet, "/admin/ping", nil)
	pingReq.Header.Set("Authorization", "Bearer "+resp.Token)
	pingW := httptest.NewRecorder()
	router.ServeHTTP(pingW, pingReq)
	assert.Equal(t, http.StatusOK, pingW.Code)
}

func TestAdminLoginRejectsBadCredentials(t *testing.T) {
	router := setupAuthRouter(t)

	body, _ := json.Marshal(dto.AdminLoginRequest{Username: "admin", Password: "wrong"})
	req := httptest.NewRequest(http.MethodPost, "/admin/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAdminRoutesRequireToken(t *testing.T) {
	router := setupAuthRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/admin/ping", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)

	req = httptest.NewRequest(http.MethodGet, "/admin/ping", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
