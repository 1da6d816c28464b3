package services

import (
	"context"
	"crypto/subtle"
	"fmt"
	"log"
	"time"

	"applicant-intake/internal/transport/dto"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type authService struct {
	username      string
	passwordHash  []byte
	jwtSecret     string
	jwtExpiration time.Duration
}

// NewAuthService creates the admin gate. The configured password is hashed
// once at startup so the plaintext never sits in the service struct.
func NewAuthService(username, password, jwtSecret string, jwtExpiration time.Duration) (AuthService, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash admin password: %w", err)
	}
	return &authService{
		username:      username,
		passwordHash:  hash,
		jwtSecret:     jwtSecret,
		jwtExpiration: jwtExpiration,
	}, nil
}

// Login validates the admin credentials and issues a signed HS256 token.
func (s *authService) Login(ctx context.Context, req *dto.AdminLoginRequest) (string, error) {
	usernameMatch := subtle.ConstantTimeCompare([]byte(req.Username), []byte(s.username)) == 1
	passwordErr := bcrypt.CompareHashAndPassword(s.passwordHash, []byte(req.Password))
	if !usernameMatch || passwordErr != nil {
		log.Printf("Login: rejected credentials for username %q", req.Username)
		return "", ErrInvalidCredentials
	}

	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   s.username,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.jwtExpiration)),
		ID:        uuid.NewString(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.jwtSecret))
	if err != nil {
		log.Printf("Login: error signing token: %v", err)
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	log.Printf("Login: admin %s authenticated", s.username)
	return signed, nil
}
