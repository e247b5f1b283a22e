package services

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/certivo/certivo/internal/app/models"
	"github.com/certivo/certivo/internal/app/models/dto"
	"github.com/certivo/certivo/internal/pkg/apperrors"
	"github.com/certivo/certivo/internal/pkg/auth"
)

// fakeAdminStore is an in-memory stand-in for the admin repository.
type fakeAdminStore struct {
	nextID int64
	admins map[int64]*models.Admin
}

func newFakeAdminStore() *fakeAdminStore {
	return &fakeAdminStore{
		nextID: 1,
		admins: make(map[int64]*models.Admin),
	}
}

func (f *fakeAdminStore) Create(_ context.Context, admin *models.Admin) error {
	for _, existing := range f.admins {
		if existing.Username == admin.Username {
			return apperrors.ErrAdminAlreadyExists
		}
	}
	admin.ID = f.nextID
	f.nextID++
	stored := *admin
	f.admins[admin.ID] = &stored
	return nil
}

func (f *fakeAdminStore) GetByID(_ context.Context, id int64) (*models.Admin, error) {
	admin, ok := f.admins[id]
	if !ok {
		return nil, apperrors.ErrAdminNotFound
	}
	result := *admin
	return &result, nil
}

func (f *fakeAdminStore) GetByUsername(_ context.Context, username string) (*models.Admin, error) {
	for _, admin := range f.admins {
		if admin.Username == username {
			result := *admin
			return &result, nil
		}
	}
	return nil, apperrors.ErrAdminNotFound
}

func newAuthService() *AuthService {
	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:   "test-secret",
		TokenExp:    time.Hour,
		TokenIssuer: "certivo.test",
	})
	return NewAuthService(newFakeAdminStore(), jwtService, zerolog.Nop())
}

func registerRequest() *dto.RegisterRequest {
	return &dto.RegisterRequest{
		Username: "admin",
		Email:    "admin@certivo.app",
		Password: "secret-password",
	}
}

func TestRegisterAdmin(t *testing.T) {
	service := newAuthService()

	admin, err := service.Register(context.Background(), registerRequest())
	require.NoError(t, err)

	assert.Equal(t, "admin", admin.Username)
	assert.NotZero(t, admin.ID)
	assert.NotEqual(t, "secret-password", admin.Password, "password must be stored hashed")
}

func TestRegisterDuplicateAdmin(t *testing.T) {
	service := newAuthService()

	_, err := service.Register(context.Background(), registerRequest())
	require.NoError(t, err)

	_, err = service.Register(context.Background(), registerRequest())
	assert.ErrorIs(t, err, apperrors.ErrAdminAlreadyExists)
}

func TestLogin(t *testing.T) {
	service := newAuthService()

	_, err := service.Register(context.Background(), registerRequest())
	require.NoError(t, err)

	token, err := service.Login(context.Background(), &dto.LoginRequest{
		Username: "admin",
		Password: "secret-password",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, token.Token)
	assert.Equal(t, int(time.Hour.Seconds()), token.ExpiresIn)
	assert.Equal(t, "admin", token.Admin.Username)
}

func TestLoginWrongPassword(t *testing.T) {
	service := newAuthService()

	_, err := service.Register(context.Background(), registerRequest())
	require.NoError(t, err)

	_, err = service.Login(context.Background(), &dto.LoginRequest{
		Username: "admin",
		Password: "wrong",
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestLoginUnknownUsername(t *testing.T) {
	service := newAuthService()

	_, err := service.Login(context.Background(), &dto.LoginRequest{
		Username: "nobody",
		Password: "whatever",
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestLoginTokenIsVerifiable(t *testing.T) {
	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:   "test-secret",
		TokenExp:    time.Hour,
		TokenIssuer: "certivo.test",
	})
	service := NewAuthService(newFakeAdminStore(), jwtService, zerolog.Nop())

	_, err := service.Register(context.Background(), registerRequest())
	require.NoError(t, err)

	token, err := service.Login(context.Background(), &dto.LoginRequest{
		Username: "admin",
		Password: "secret-password",
	})
	require.NoError(t, err)

	claims, err := jwtService.ValidateToken(token.Token)
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Username)
	assert.Equal(t, token.Admin.ID, claims.AdminID)
}
