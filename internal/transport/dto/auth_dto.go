// internal/transport/dto/auth_dto.go
package dto

// AdminLoginRequest defines the structure for the admin dashboard login.
type AdminLoginRequest struct {
	Username string `json:"username" validate:"required,max=100"`
	Password string `json:"password" validate:"required,max=100"`
}

// AdminLoginResponse carries the bearer token for the admin routes.
type AdminLoginResponse struct {
	Token string `json:"token"`
}
