package users

import (
	"context"
	"errors"
	"time"

	"rayo-courier/internal/models"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// ServiceInterface defines the contract for the auth service.
type ServiceInterface interface {
	Login(ctx context.Context, req models.LoginRequest) (*models.AuthResponse, error)
}

// Service implements the auth logic.
type Service struct {
	repo      RepositoryInterface
	jwtSecret string
}

// NewService creates a new user service.
func NewService(repo RepositoryInterface, jwtSecret string) *Service {
	return &Service{repo: repo, jwtSecret: jwtSecret}
}

// Login verifies credentials and issues a signed token carrying the role and,
// for couriers, their courier id.
func (s *Service) Login(ctx context.Context, req models.LoginRequest) (*models.AuthResponse, error) {
	user, err := s.repo.FindByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, models.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, models.ErrInvalidCredentials
	}

	claims := &models.JwtCustomClaims{
		Username: user.Username,
		Role:     user.Role,
		KurirID:  user.KurirID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.jwtSecret))
	if err != nil {
		return nil, err
	}

	return &models.AuthResponse{AccessToken: signed, User: user}, nil
}
