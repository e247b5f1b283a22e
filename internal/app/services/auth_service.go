package services

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/certivo/certivo/internal/app/models"
	"github.com/certivo/certivo/internal/app/models/dto"
	"github.com/certivo/certivo/internal/pkg/apperrors"
	"github.com/certivo/certivo/internal/pkg/auth"
)

// adminStore is the store view consumed by the auth service.
type adminStore interface {
	Create(ctx context.Context, admin *models.Admin) error
	GetByID(ctx context.Context, id int64) (*models.Admin, error)
	GetByUsername(ctx context.Context, username string) (*models.Admin, error)
}

// AuthService handles admin registration and login
type AuthService struct {
	adminRepo  adminStore
	jwtService *auth.JWTService
	logger     zerolog.Logger
}

// NewAuthService creates a new auth service
func NewAuthService(adminRepo adminStore, jwtService *auth.JWTService, logger zerolog.Logger) *AuthService {
	return &AuthService{
		adminRepo:  adminRepo,
		jwtService: jwtService,
		logger:     logger,
	}
}

// Register creates a new admin account with a hashed password
func (s *AuthService) Register(ctx context.Context, req *dto.RegisterRequest) (*models.Admin, error) {
	if strings.TrimSpace(req.Username) == "" || strings.TrimSpace(req.Email) == "" || req.Password == "" {
		return nil, apperrors.NewValidationError("username, email and password are required")
	}

	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	admin := &models.Admin{
		Username: req.Username,
		Password: hashed,
		Email:    req.Email,
	}

	if err := s.adminRepo.Create(ctx, admin); err != nil {
		return nil, err
	}

	s.logger.Info().Str("username", admin.Username).Msg("Admin account registered")
	return admin, nil
}

// Login verifies credentials and issues a JWT. Unknown usernames and wrong
// passwords are reported identically.
func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error) {
	if strings.TrimSpace(req.Username) == "" || req.Password == "" {
		return nil, apperrors.NewValidationError("username and password are required")
	}

	admin, err := s.adminRepo.GetByUsername(ctx, req.Username)
	if err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	if !auth.CheckPassword(admin.Password, req.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	token, expiresIn, err := s.jwtService.GenerateToken(admin)
	if err != nil {
		return nil, err
	}

	return &dto.TokenResponse{
		Token:     token,
		ExpiresIn: expiresIn,
		Admin: dto.AdminInfo{
			ID:       admin.ID,
			Username: admin.Username,
			Email:    admin.Email,
		},
	}, nil
}

// GetAdminByID retrieves an admin account for the /auth/me endpoint
func (s *AuthService) GetAdminByID(ctx context.Context, id int64) (*models.Admin, error) {
	return s.adminRepo.GetByID(ctx, id)
}
