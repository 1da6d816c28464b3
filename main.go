package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"applicant-intake/config"
	"applicant-intake/internal/app"
	"applicant-intake/internal/database"
	"applicant-intake/internal/server"
	"applicant-intake/internal/services"
	"applicant-intake/internal/storage/postgres"

	_ "applicant-intake/docs" // Generated swagger docs

	"github.com/go-playground/validator/v10"
)

// @title           Applicant Intake API
// @version         1.0
// @description     Job-application intake and review service: public submission form backend, admin review dashboard API and PDF export.

// @host      localhost:8080
// @BasePath  /api/v1
// @schemes   http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	dbPool, err := database.NewConnectionPool(cfg.DB)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer dbPool.Close()

	appRepo := postgres.NewApplicationRepo(dbPool)

	exporter := services.NewExportService(appRepo, cfg.Export.MaxRetries, cfg.Export.RetryDelay)

	auth, err := services.NewAuthService(cfg.Admin.Username, cfg.Admin.Password, cfg.JWT.Secret, cfg.JWT.Expiration)
	if err != nil {
		log.Fatalf("Failed to initialize auth service: %v", err)
	}

	validate := validator.New()

	application := &app.Application{
		Config:    cfg,
		DBPool:    dbPool,
		AppRepo:   appRepo,
		Exporter:  exporter,
		Auth:      auth,
		Validator: validate,
	}

	srv := server.NewServer(application)

	// --- Graceful Shutdown Handling ---
	go func() {
		if err := srv.Start(); err != nil {
			log.Printf("Server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit // Block until a signal is received

	log.Println("Shutting down server...")

	//Gin shutdowns on its own; the deferred pool close releases connections.

	log.Println("Application gracefully stopped.")
}
