// internal/app/app.go
package app

import (
	"applicant-intake/config"
	"applicant-intake/internal/services"
	"applicant-intake/internal/storage"

	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Application holds core application dependencies. It is constructed once in
// main and passed down; nothing below it reaches for ambient state.
type Application struct {
	Config    *config.Config
	DBPool    *pgxpool.Pool
	AppRepo   storage.ApplicationRepository
	Exporter  services.ExportService
	Auth      services.AuthService
	Validator *validator.Validate
}
